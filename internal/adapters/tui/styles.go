package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/compass/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	failureTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				Background(style.Red).
				Foreground(style.White)

	loadingStyle = lipgloss.NewStyle().
			Foreground(style.Iris)

	sectionStyle = lipgloss.NewStyle().
			Foreground(style.Green).
			Bold(true)

	detailStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	noticeStyle = lipgloss.NewStyle().
			Foreground(style.Yellow)

	helpStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)
)
