// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/ideaspark/pkg/types"
)

// palette maps the 500 shades used by the category gradients to terminal
// colors.
var palette = map[string]lipgloss.Color{
	"blue":    lipgloss.Color("#3B82F6"),
	"cyan":    lipgloss.Color("#06B6D4"),
	"purple":  lipgloss.Color("#A855F7"),
	"pink":    lipgloss.Color("#EC4899"),
	"orange":  lipgloss.Color("#F97316"),
	"red":     lipgloss.Color("#EF4444"),
	"green":   lipgloss.Color("#22C55E"),
	"emerald": lipgloss.Color("#10B981"),
	"indigo":  lipgloss.Color("#6366F1"),
	"rose":    lipgloss.Color("#F43F5E"),
}

var defaultAccent = lipgloss.Color("#64748B")

// accent returns the starting color of a category gradient such as
// "from-blue-500 to-cyan-500".
func accent(info types.CategoryInfo) lipgloss.Color {
	for _, f := range strings.Fields(info.Gradient) {
		name, ok := strings.CutPrefix(f, "from-")
		if !ok {
			continue
		}
		name, _, _ = strings.Cut(name, "-")
		if c, ok := palette[name]; ok {
			return c
		}
	}
	return defaultAccent
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0F172A")).
			Background(lipgloss.Color("#FACC15")).Padding(0, 1)
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#475569"))
	focusedLabel = labelStyle.Foreground(lipgloss.Color("#F59E0B"))
	chipStyle    = lipgloss.NewStyle().Padding(0, 1).MarginRight(1).
			Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#CBD5E1"))
	buttonStyle = lipgloss.NewStyle().Bold(true).Padding(0, 2).
			Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#F59E0B"))
	disabledButton = buttonStyle.Foreground(lipgloss.Color("#E2E8F0")).Background(lipgloss.Color("#94A3B8"))
	cardStyle      = lipgloss.NewStyle().Padding(0, 1).MarginBottom(1).
			Border(lipgloss.NormalBorder(), false, false, false, true)
	ideaTitle = lipgloss.NewStyle().Bold(true)
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
)
