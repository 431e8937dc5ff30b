package extract

import (
	"fmt"
	"math"

	"github.com/custodia-labs/designctx-cli/internal/core/domain"
)

// HexColor converts a normalised RGBA colour (channels in [0,1]) to
// "#RRGGBB". The alpha channel is dropped; callers carry opacity
// separately. Out-of-range channels are clamped.
func HexColor(c *domain.RawColor) string {
	if c == nil {
		return ""
	}
	return fmt.Sprintf("#%02X%02X%02X", channelByte(c.R), channelByte(c.G), channelByte(c.B))
}

func channelByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	scaled := math.Round(v * 255)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}

// firstVisibleFillColor returns the hex colour of the first visible solid
// fill, or "" when the node has none.
func firstVisibleFillColor(fills []domain.RawPaint) string {
	for i := range fills {
		paint := &fills[i]
		if !paint.IsVisible() || paint.Color == nil {
			continue
		}
		return HexColor(paint.Color)
	}
	return ""
}
