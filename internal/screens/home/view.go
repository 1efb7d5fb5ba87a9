package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/ui/theme"
)

// Block-letter title for full-size terminals.
const titleFull = ` ███████╗██╗   ██╗     ██╗██╗
 ██╔════╝██║   ██║     ██║██║
 █████╗  ██║   ██║     ██║██║
 ██╔══╝  ██║   ██║██   ██║██║
 ██║     ╚██████╔╝╚█████╔╝██║
 ╚═╝      ╚═════╝  ╚════╝ ╚═╝`

const titleCompact = "F · U · J · I   富士"

// contentWidth returns the uniform inner width used for all sections.
// All boxes are rendered at this width so they visually align.
func contentWidth(frameWidth int) int {
	// Leave room for outer border (2) + inner padding (4)
	w := frameWidth - 6
	// Cap so it doesn't stretch absurdly wide
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	title := titleFull
	if compact {
		title = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(learned, streak int, avgAccuracy float64, cw int, compact bool) string {
	learnedStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	accStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			learnedStyle.Render(fmt.Sprintf("学%d", learned)),
			accStyle.Render(fmt.Sprintf("◎%.0f%%", avgAccuracy*100)),
			streakText(streak, true, streakStyle, dimStyle),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			learnedStyle.Render(fmt.Sprintf("学 %d LEARNED", learned)),
			accStyle.Render(fmt.Sprintf("◎ %.0f%% ACCURACY", avgAccuracy*100)),
			streakText(streak, false, streakStyle, dimStyle),
		)
	}

	// Wrap in a double-border box at the same content width
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func streakText(streak int, compact bool, active, dim lipgloss.Style) string {
	if streak == 0 {
		if compact {
			return dim.Render("★0")
		}
		return dim.Render("★ NO STREAK")
	}
	if compact {
		return active.Render(fmt.Sprintf("★%d", streak))
	}
	return active.Render(fmt.Sprintf("★ %d DAY STREAK", streak))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.Text).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderTutorBanner renders a warning banner when no LLM API key is configured.
func renderTutorBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Set an LLM API key to enable the tutor (see fuji --help)")
}

// renderFujiBox renders the mountain centered in a box matching content width.
func renderFujiBox(variant FujiVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderFuji(variant))
}

// renderGateFrame wraps content in a double-border frame, centering it
// vertically and horizontally within the given dimensions.
func renderGateFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).   // account for border chars
		Height(height - 2). // account for border chars
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
