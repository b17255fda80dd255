package balloons

import (
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/balloon-math/internal/config"
	"github.com/vovakirdan/balloon-math/internal/core"
)

// skin is a resolved balloon look.
type skin struct {
	open, close rune
	color       core.Color
}

// plainSkin is drawn when a configured skin cannot be used.
var plainSkin = skin{open: '(', close: ')', color: core.ColorGray}

const (
	ropeRune   = '│'
	groundRune = '─'
	playerRune = '█'
)

// ScreenRenderer rasterizes frames onto a character screen, scaling the
// logical play area to the screen's cell grid.
type ScreenRenderer struct {
	dst   *core.Screen
	skins []skin
}

// NewScreenRenderer resolves the configured skins and draws onto dst.
// Skins that cannot be resolved are replaced by the plain look.
func NewScreenRenderer(dst *core.Screen, skins []config.SkinConfig, logger *log.Logger) *ScreenRenderer {
	r := &ScreenRenderer{dst: dst, skins: make([]skin, len(skins))}
	for i, sc := range skins {
		r.skins[i] = resolveSkin(sc, logger)
	}
	return r
}

func resolveSkin(sc config.SkinConfig, logger *log.Logger) skin {
	color, ok := core.ParseColor(sc.Color)
	if !ok || !sc.Usable() {
		if logger != nil {
			logger.Warn("skin not usable, drawing plain balloons", "skin", sc.Name, "color", sc.Color, "frame", sc.Frame)
		}
		return plainSkin
	}
	glyphs := []rune(sc.Frame)
	return skin{open: glyphs[0], close: glyphs[1], color: color}
}

// Draw implements Renderer.
func (r *ScreenRenderer) Draw(f Frame) {
	r.dst.Clear()
	if f.Surface.Width <= 0 || f.Surface.Height <= 0 {
		return
	}

	sx := float64(r.dst.Width()) / f.Surface.Width
	sy := float64(r.dst.Height()) / f.Surface.Height

	r.dst.DrawHLine(0, r.dst.Height()-1, r.dst.Width(), groundRune, core.ColorGreen)

	for _, b := range f.Balloons {
		sk := r.skinFor(b.Variant)
		label := string(sk.open) + strconv.Itoa(b.Value) + string(sk.close)

		cx := int((b.X + f.Radius) * sx)
		cy := int((b.Y + f.Radius) * sy)
		x := cx - len([]rune(label))/2

		r.dst.DrawTextColored(x, cy, label, sk.color)
		r.dst.DrawVLine(cx, cy+1, 1, ropeRune, core.ColorGray)
	}

	p := f.Player
	rect := core.NewRect(
		int(p.X*sx),
		int(p.Y*sy),
		core.Max(int(p.Size*sx), 1),
		core.Max(int(p.Size*sy), 1),
	)
	r.dst.DrawRectColored(rect, playerRune, core.ColorPink)
}

func (r *ScreenRenderer) skinFor(variant int) skin {
	if variant < 0 || variant >= len(r.skins) {
		return plainSkin
	}
	return r.skins[variant]
}
