package home

import (
	"charm.land/lipgloss/v2"

	"github.com/FUJI-ZPI/FUJI-frontend-sub000/internal/ui/theme"
)

// FujiVariant selects which mountain art to display.
type FujiVariant int

const (
	FujiDawn    FujiVariant = iota // Default indigo
	FujiSunrise                    // Vermillion — streak running
)

const fujiDawn = `      ▁▂▄▇▄▂▁
    ▁▄█▀▔▔▔▀█▄▁
  ▁▄█▀       ▀█▄▁
▄█▀▔           ▔▀█▄`

const fujiSunrise = `   ☀    ▁▂▄▇▄▂▁
    ▁▄█▀▔▔▔▀█▄▁
  ▁▄█▀       ▀█▄▁
▄█▀▔           ▔▀█▄`

// RenderFuji returns the mountain art for the given variant.
func RenderFuji(variant ...FujiVariant) string {
	v := FujiDawn
	if len(variant) > 0 {
		v = variant[0]
	}

	art := fujiDawn
	fg := theme.Secondary
	if v == FujiSunrise {
		art = fujiSunrise
		fg = theme.Primary
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
