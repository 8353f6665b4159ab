package main

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Section identifies one scrollable region of the page.
type Section string

const (
	SectionHome       Section = "home"
	SectionAbout      Section = "about"
	SectionSkills     Section = "skills"
	SectionExperience Section = "experience"
	SectionProjects   Section = "projects"
	SectionContact    Section = "contact"
)

// Sections is the fixed page order. Tracking walks it front to back.
var Sections = []Section{
	SectionHome,
	SectionAbout,
	SectionSkills,
	SectionExperience,
	SectionProjects,
	SectionContact,
}

// NavSections are the sections linked from the header.
var NavSections = Sections[1:]

// ReferenceLine is the distance in px from the viewport top that a section
// must straddle to be considered active.
const ReferenceLine = 100

var titleCaser = cases.Title(language.English)

func ParseSection(s string) (Section, error) {
	for _, sec := range Sections {
		if string(sec) == s {
			return sec, nil
		}
	}
	return "", fmt.Errorf("unknown section %q", s)
}

func (s Section) Label() string {
	return titleCaser.String(string(s))
}

// SectionGeometry is a section's bounding box relative to the viewport top.
type SectionGeometry struct {
	Section Section
	Top     float64
	Bottom  float64
}

func (g SectionGeometry) straddles(line float64) bool {
	return g.Top <= line && g.Bottom >= line
}

// ParseGeometry decodes "home:-820:80,about:80:900" as sent by nav.js.
func ParseGeometry(raw string) ([]SectionGeometry, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	out := make([]SectionGeometry, 0, len(parts))
	for _, part := range parts {
		fields := strings.Split(part, ":")
		if len(fields) != 3 {
			return nil, fmt.Errorf("geometry entry %q: want section:top:bottom", part)
		}
		sec, err := ParseSection(fields[0])
		if err != nil {
			return nil, err
		}
		top, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("geometry entry %q: top: %w", part, err)
		}
		bottom, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("geometry entry %q: bottom: %w", part, err)
		}
		out = append(out, SectionGeometry{Section: sec, Top: top, Bottom: bottom})
	}
	return out, nil
}

// NavigationState drives the header: which link is highlighted and whether
// the mobile menu is open.
type NavigationState struct {
	Active   Section
	MenuOpen bool
}

func NewNavigationState() NavigationState {
	return NavigationState{Active: SectionHome}
}

// Track picks the first section, in page order, straddling ReferenceLine.
// When nothing qualifies the current section stays active.
func (n NavigationState) Track(geoms []SectionGeometry) NavigationState {
	bySection := make(map[Section]SectionGeometry, len(geoms))
	for _, g := range geoms {
		if _, seen := bySection[g.Section]; !seen {
			bySection[g.Section] = g
		}
	}
	for _, sec := range Sections {
		g, ok := bySection[sec]
		if ok && g.straddles(ReferenceLine) {
			n.Active = sec
			return n
		}
	}
	return n
}

func (n NavigationState) Toggle() NavigationState {
	n.MenuOpen = !n.MenuOpen
	return n
}

// Select closes the menu. The browser then scrolls to the section and the
// resulting scroll events move the highlight.
func (n NavigationState) Select(Section) NavigationState {
	n.MenuOpen = false
	return n
}

// NavLink is a rendered header link.
type NavLink struct {
	Section Section
	Label   string
	Active  bool
}

func (n NavigationState) Links() []NavLink {
	links := make([]NavLink, len(NavSections))
	for i, sec := range NavSections {
		links[i] = NavLink{Section: sec, Label: sec.Label(), Active: sec == n.Active}
	}
	return links
}
