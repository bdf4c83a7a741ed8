package tui

import "github.com/charmbracelet/lipgloss"

// Theme bundles the styles that differ between light and dark mode.
type Theme struct {
	Name string

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	TabBar      lipgloss.Style

	StatusBar   lipgloss.Style
	StatusError lipgloss.Style

	Heading     lipgloss.Style
	Emphasis    lipgloss.Style
	CodeBlock   lipgloss.Style
	CodeHeader  lipgloss.Style
	CodeLineNum lipgloss.Style
	Highlighted lipgloss.Style
	Rule        lipgloss.Style
	Blockquote  lipgloss.Style

	SidebarBorder   lipgloss.Style
	SidebarSelected lipgloss.Style
	SidebarDir      lipgloss.Style

	PromptLabel lipgloss.Style
}

// DarkTheme returns the default dark color scheme.
func DarkTheme() Theme {
	return Theme{
		Name: "dark",

		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 1),
		TabBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),

		StatusBar: lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1),
		StatusError: lipgloss.NewStyle().
			Background(lipgloss.Color("196")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1),

		Heading:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170")),
		Emphasis:    lipgloss.NewStyle().Italic(true),
		CodeBlock:   lipgloss.NewStyle().Foreground(lipgloss.Color("150")),
		CodeHeader:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		CodeLineNum: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlighted: lipgloss.NewStyle().Foreground(lipgloss.Color("150")).Background(lipgloss.Color("237")),
		Rule:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Blockquote:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),

		SidebarBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		SidebarSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")),
		SidebarDir: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),

		PromptLabel: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
	}
}

// LightTheme returns the light color scheme.
func LightTheme() Theme {
	return Theme{
		Name: "light",

		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("97")).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 1),
		TabBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")),

		StatusBar: lipgloss.NewStyle().
			Background(lipgloss.Color("97")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1),
		StatusError: lipgloss.NewStyle().
			Background(lipgloss.Color("124")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1),

		Heading:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("91")),
		Emphasis:    lipgloss.NewStyle().Italic(true),
		CodeBlock:   lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
		CodeHeader:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		CodeLineNum: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Highlighted: lipgloss.NewStyle().Foreground(lipgloss.Color("22")).Background(lipgloss.Color("254")),
		Rule:        lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Blockquote:  lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true),

		SidebarBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("250")),
		SidebarSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("97")),
		SidebarDir: lipgloss.NewStyle().Foreground(lipgloss.Color("26")),

		PromptLabel: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("130")),
	}
}

// ThemeByName resolves a settings value to a theme, defaulting to dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}
