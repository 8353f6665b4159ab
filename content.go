package main

// Static page content. Everything here is fixed at build time.

var (
	OwnerName     = "Stephen Antoni"
	OwnerInitials = "SA"
	OwnerRole     = "Backend Engineer"

	AboutMe = []string{
		`I'm a highly experienced software developer with a strong background in financial trading automation, 
	blockchain development, and AI modeling. With over 10 years of experience in C, and 4 years each in Node.js and Golang, 
	I've successfully led and overseen large-scale operations, including acting as Wallet Lead Dev for Tokenomy, acting as 
	core developer for Jagad's open-source ICSI ICP Smart-Contract Project, and managing an 80Kwh crypto mining farm and 
	overseeing blockchain funding processes for a crypto exchange.`,
		`My expertise spans across various domains, including trading system development, Machine Learning model training 
	& deployment, blockchain middleware implementation and smart contract development. I'm passionate about leveraging 
	technology to create efficient, scalable, and innovative solutions in the financial and blockchain sectors.`,
	}

	Skills = []string{
		"Node.js", "MongoDB", "ICP", "Solidity", "Git", "C++", "Rust", "Python", "Docker",
		"Golang", "JavaScript", "PHP", "MySQL", "Machine Learning", "Linux/Unix", "MQL4",
		"PineScript", "Elixir",
	}

	ContactBlurb = "Interested in collaborating or discussing a project? Let's connect!"
	FooterYear   = 2024
)

// Job is one entry in the experience section.
type Job struct {
	Title        string
	Period       string
	BulletPoints []string
}

var Experience = []Job{
	{
		Title:  "Backend Engineer at Jagad",
		Period: "January 2024 - Present",
		BulletPoints: []string{
			"Research and develop technical plan for microservices architecture",
			"Implement smart contract interaction API",
			"Develop and maintain RESTful API for blockchain asset management",
		},
	},
	{
		Title:  "Backend Engineer at Tokenomy",
		Period: "January 2021 - December 2023",
		BulletPoints: []string{
			"Create and manage middleware that interacts with blockchain networks",
			"Implement alerting systems and accounting for blockchain assets",
			"Oversee wallet operations supporting blockchain-origin funding and security",
		},
	},
	{
		Title:  "Machine Learning Engineer (Private Contractor)",
		Period: "January 2019 - December 2019",
		BulletPoints: []string{
			"Researched and implemented neural network architectures for trading system optimization",
			"Designed reinforcement learning systems for trading",
			"Developed complete AI architecture from feature engineering to model prediction API",
		},
	},
	{
		Title:  "Crypto Mining Operations Manager at MMT Tech",
		Period: "December 2017 - December 2019",
		BulletPoints: []string{
			"Managed an 80Kwh crypto mining farm",
			"Optimized hardware and software configurations for maximum profitability",
			"Trained staff in hardware assembly, software installation, and maintenance",
		},
	},
}

// SocialLink is an icon link in the contact section.
type SocialLink struct {
	Icon     string
	Href     string
	External bool
}

var SocialLinks = []SocialLink{
	{Icon: "github", Href: "https://github.com/luxeave", External: true},
	{Icon: "linkedin", Href: "https://www.linkedin.com/in/stephen-antoni-33840258/", External: true},
	{Icon: "mail", Href: "mailto:stephen@luxeave.com"},
}

var Projects = []ProjectEntry{
	{
		Slug:        "trading-automation",
		Title:       "Trading Automation System",
		Description: "Developed advanced trading automations for forex, commodities, and stock markets using C and Python, incorporating machine learning techniques for improved efficiency and accuracy.",
		Icon:        IconCode,
		SubProjects: []SubProject{
			{Title: "Forex Trading Bot", Description: "Automated forex trading system with real-time market analysis", Technologies: "C, Python"},
			{Title: "Commodity Price Predictor", Description: "Machine learning model for predicting commodity prices", Technologies: "Python, TensorFlow"},
			{Title: "Stock Market Scanner", Description: "High-speed scanner for identifying trading opportunities", Technologies: "C++, Python"},
			{Title: "Backtesting Framework", Description: "Robust framework for testing trading strategies on historical data", Technologies: "Python, Pandas"},
			{Title: "Risk Management Module", Description: "Advanced risk calculation and position sizing module", Technologies: "C, Python"},
		},
	},
	{
		Slug:        "blockchain-middleware",
		Title:       "Blockchain Middleware",
		Description: "Implemented blockchain middleware on multiple protocols, including deposit and withdrawal functionality, using Node.js and Golang for reliable and scalable solutions.",
		Icon:        IconServer,
		SubProjects: []SubProject{
			{Title: "Multi-Chain Wallet", Description: "Unified wallet system supporting multiple blockchain protocols", Technologies: "Node.js, Golang"},
			{Title: "Transaction Monitoring Service", Description: "Real-time monitoring and alerting for blockchain transactions", Technologies: "Golang, RabbitMQ"},
			{Title: "Smart Contract Integrator", Description: "Middleware for interacting with various smart contracts", Technologies: "Node.js, Web3.js"},
			{Title: "Blockchain Explorer API", Description: "RESTful API for querying blockchain data across multiple networks", Technologies: "Golang, GraphQL"},
			{Title: "Gas Fee Optimizer", Description: "Dynamic gas fee calculation and optimization for Ethereum transactions", Technologies: "Node.js, Ethers.js"},
		},
	},
	{
		Slug:        "ai-trading-model",
		Title:       "AI Trading Model",
		Description: "Created and trained AI models for financial trading, resulting in increased profitability and improved risk management capabilities.",
		Icon:        IconDatabase,
		SubProjects: []SubProject{
			{Title: "Deep Learning Price Predictor", Description: "LSTM-based model for predicting short-term price movements", Technologies: "Python, Keras"},
			{Title: "Sentiment Analysis Engine", Description: "NLP model for analyzing market sentiment from news and social media", Technologies: "Python, NLTK, PyTorch"},
			{Title: "Reinforcement Learning Trader", Description: "RL agent for optimizing trading decisions in various market conditions", Technologies: "Python, TensorFlow"},
			{Title: "Feature Engineering Pipeline", Description: "Automated feature generation and selection for trading models", Technologies: "Python, Scikit-learn"},
			{Title: "Model Ensemble Framework", Description: "System for combining multiple AI models for robust trading decisions", Technologies: "Python, XGBoost, LightGBM"},
		},
	},
}
