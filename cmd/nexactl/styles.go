package main

import "github.com/charmbracelet/lipgloss"

type printStyles struct {
	header lipgloss.Style
	good   lipgloss.Style
	warn   lipgloss.Style
	bad    lipgloss.Style
	dim    lipgloss.Style
}

func newPrintStyles() printStyles {
	return printStyles{
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		good:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		warn:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		bad:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// grade picks the colour for a grade class
func (s printStyles) grade(class string) lipgloss.Style {
	switch class {
	case "excellent", "good":
		return s.good
	case "partial":
		return s.warn
	default:
		return s.bad
	}
}
