package main

import (
	"context"
	"fmt"
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "portfolio",
		Short:        "Portfolio site with a contact relay",
		SilenceUsage: true,
		RunE:         func(cmd *cobra.Command, args []string) error { return runServe() },
	}
	root.AddCommand(newServeCmd(), newExportCmd(), newSendCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the page and the /api/contact relay",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)

	mailer, err := NewMailer(cfg)
	if err != nil {
		return err
	}

	site := NewSite(Projects, NewHTTPRelay(cfg.ContactRelayURL()))
	r, err := newRouter(site, NewContactRelay(cfg, mailer))
	if err != nil {
		return err
	}

	log.Printf("Serving portfolio on %s (mail provider: %s)", cfg.Addr(), cfg.MailProvider)
	return r.Run(cfg.Addr())
}

func newExportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the rendered page and static assets to a directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := exportSite(out, NewSite(Projects, nil)); err != nil {
				return fmt.Errorf("export to %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported site to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "dist", "output directory")
	return cmd
}

// newSendCmd posts one submission to a running relay, for checking a
// deployment's mail configuration end to end.
func newSendCmd() *cobra.Command {
	var (
		url string
		sub ContactSubmission
	)
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a test submission through the contact relay",
		RunE: func(cmd *cobra.Command, args []string) error {
			if url == "" {
				cfg, err := LoadConfig()
				if err != nil {
					return err
				}
				url = cfg.ContactRelayURL()
			}
			if err := NewHTTPRelay(url).Relay(context.Background(), sub); err != nil {
				return fmt.Errorf("send to %s: %w", url, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Submission relayed to %s\n", url)
			return nil
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "relay URL (default: CONTACT_RELAY_URL or this host's /api/contact)")
	cmd.Flags().StringVar(&sub.Name, "name", "Relay check", "submitter name")
	cmd.Flags().StringVar(&sub.Email, "email", "", "submitter email")
	cmd.Flags().StringVar(&sub.Message, "message", "Test message from portfolio send", "message body")
	return cmd
}
