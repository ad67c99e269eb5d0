package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Studioline theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconStudio  = "🎙️"
	IconNote    = "🎵"
	IconDisc    = "💿"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconMoney   = "💰"
	IconStar    = "⭐"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconStaff   = "🎧"
	IconSleep   = "🌙"
	IconChart   = "📈"
	IconScroll  = "📜"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp  = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
	BadgeCritical = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("CRITICAL SUCCESS")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Money renders a dollar amount, red when negative.
func Money(amount int) string {
	s := fmt.Sprintf("$%d", amount)
	if amount < 0 {
		return Bad.Render(s)
	}
	return Gold.Render(s)
}

// Stars renders a 1-5 star rating.
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return Gold.Render(strings.Repeat("★", rating)) + Muted.Render(strings.Repeat("☆", 5-rating))
}

// StaffStatusText colors a staff status label.
func StaffStatusText(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "working":
		return Good.Render("working")
	case "resting":
		return Warn.Render("resting")
	case "training":
		return H2.Render("training")
	default:
		return Muted.Render("idle")
	}
}

// MatchText colors a project match rating.
func MatchText(rating string) string {
	switch strings.ToLower(strings.TrimSpace(rating)) {
	case "excellent":
		return Good.Render("excellent")
	case "poor":
		return Bad.Render("poor")
	default:
		return Warn.Render("good")
	}
}

// EnergyText colors an energy value by how worn the member is.
func EnergyText(energy int) string {
	s := fmt.Sprintf("%d%%", energy)
	switch {
	case energy < 20:
		return Bad.Render(s)
	case energy < 50:
		return Warn.Render(s)
	default:
		return Good.Render(s)
	}
}
