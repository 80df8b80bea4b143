package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/ByLCY/folio/catalog"
	"github.com/ByLCY/folio/page"
)

const kappa = 0.5522847498

// renderBackground 绘制页面背景。Enabled 为 false 时立即返回，
// 不读取背景的任何其他字段。
func (c *Compositor) renderBackground(s Surface, p *page.Page, reg *catalog.Registry) {
	bg := &p.Background
	if !bg.On() {
		return
	}
	pal := c.palette(reg, p)

	switch bg.Kind {
	case page.BackgroundSolid:
		color := resolveColor(bg.Color, pal, "background", "#ffffff")
		opacity := bg.Opacity
		if opacity <= 0 || opacity > 1 {
			opacity = 1
		}
		s.DrawPath(0, 0, rectPath(p.Width, p.Height), Paint{Fill: color, Opacity: opacity})
	case page.BackgroundPattern:
		c.renderPattern(s, p, reg, pal, bg.Pattern)
	case page.BackgroundImage:
		c.renderBackgroundImage(s, p, bg.Image)
	default:
		Logger().Warn("未知的背景种类", "kind", bg.Kind)
	}
}

func (c *Compositor) renderBackgroundImage(s Surface, p *page.Page, spec *page.BackgroundImageSpec) {
	if spec == nil || spec.Src == "" {
		Logger().Warn("图片背景缺少来源，背景被跳过")
		return
	}
	img := c.loadImage(spec.Src, "background")
	if img == nil {
		return
	}
	drawFitted(s, img, 0, 0, p.Width, p.Height, spec.Fit, spec.CropX, spec.CropY, 1)
}

// renderPattern 绘制重复图案背景。请求中的零值字段由目录里的
// 图案默认值补全；未知图案名记录诊断后跳过。
func (c *Compositor) renderPattern(s Surface, p *page.Page, reg *catalog.Registry, pal catalog.Palette, spec *page.PatternSpec) {
	if spec == nil || spec.Name == "" {
		Logger().Warn("图案背景缺少图案名，背景被跳过")
		return
	}
	def, ok := reg.Pattern(spec.Name)
	if !ok {
		Logger().Warn("未知的背景图案，背景被跳过", "pattern", spec.Name)
		return
	}
	color := spec.Color
	if color == "" {
		color = resolveColor(def.Color, pal, "line", defaultLine)
	}
	size := spec.Size
	if size <= 0 {
		size = def.Size
	}
	strokeWidth := spec.StrokeWidth
	if strokeWidth <= 0 {
		strokeWidth = def.StrokeWidth
	}
	opacity := spec.Opacity
	if opacity <= 0 || opacity > 1 {
		opacity = def.Opacity
	}
	if opacity <= 0 || opacity > 1 {
		opacity = 1
	}

	if spec.Fill != "" {
		s.DrawPath(0, 0, rectPath(p.Width, p.Height), Paint{Fill: spec.Fill})
	}

	paint := Paint{Stroke: color, StrokeWidth: strokeWidth, Opacity: opacity}
	switch spec.Name {
	case "dots":
		s.DrawPath(0, 0, dotsPath(p.Width, p.Height, size), Paint{Fill: color, Opacity: opacity})
	case "grid":
		s.DrawPath(0, 0, gridPath(p.Width, p.Height, size), paint)
	case "diagonal-lines":
		s.DrawPath(0, 0, diagonalPath(p.Width, p.Height, size, false), paint)
	case "cross-hatch":
		d := diagonalPath(p.Width, p.Height, size, false) + diagonalPath(p.Width, p.Height, size, true)
		s.DrawPath(0, 0, d, paint)
	case "waves":
		s.DrawPath(0, 0, wavesPath(p.Width, p.Height, size), paint)
	case "hexagons":
		s.DrawPath(0, 0, hexagonsPath(p.Width, p.Height, size), paint)
	default:
		Logger().Warn("图案在目录中注册但没有生成器", "pattern", spec.Name)
	}
}

func rectPath(w, h float64) string {
	return fmt.Sprintf("M0.00 0.00 L%.2f 0.00 L%.2f %.2f L0.00 %.2f Z", w, w, h, h)
}

// dotsPath 在 size 间距的网格交点处放置实心圆点，圆点半径为间距的 15%。
func dotsPath(w, h, size float64) string {
	var b strings.Builder
	r := size * 0.15
	for y := size / 2; y < h; y += size {
		for x := size / 2; x < w; x += size {
			appendCircle(&b, x, y, r)
		}
	}
	return b.String()
}

func gridPath(w, h, size float64) string {
	var b strings.Builder
	for x := size; x < w; x += size {
		fmt.Fprintf(&b, "M%.2f 0.00 L%.2f %.2f ", x, x, h)
	}
	for y := size; y < h; y += size {
		fmt.Fprintf(&b, "M0.00 %.2f L%.2f %.2f ", y, w, y)
	}
	return strings.TrimSpace(b.String())
}

// diagonalPath 绘制 45° 斜线族；mirror 为真时取反方向的对角线。
func diagonalPath(w, h, size float64, mirror bool) string {
	var b strings.Builder
	step := size * math.Sqrt2
	for d := step; d < w+h; d += step {
		x0 := math.Max(0, d-h)
		y0 := math.Min(d, h)
		x1 := math.Min(d, w)
		y1 := math.Max(0, d-w)
		if mirror {
			fmt.Fprintf(&b, "M%.2f %.2f L%.2f %.2f ", w-x0, y0, w-x1, y1)
		} else {
			fmt.Fprintf(&b, "M%.2f %.2f L%.2f %.2f ", x0, y0, x1, y1)
		}
	}
	return strings.TrimSpace(b.String())
}

// wavesPath 绘制水平波浪行：行距为 size，波长为 size，振幅为波长的四分之一。
func wavesPath(w, h, size float64) string {
	var b strings.Builder
	amp := size * 0.25
	for y := size / 2; y < h; y += size {
		fmt.Fprintf(&b, "M0.00 %.2f ", y)
		up := true
		for x := 0.0; x < w; x += size {
			end := math.Min(x+size, w)
			mid := amp
			if up {
				mid = -amp
			}
			fmt.Fprintf(&b, "C%.2f %.2f %.2f %.2f %.2f %.2f ",
				x+size*0.25, y+mid, end-size*0.25, y+mid, end, y)
			up = !up
		}
	}
	return strings.TrimSpace(b.String())
}

// hexagonsPath 绘制平顶六边形蜂窝网格，size 为六边形外接圆直径。
// 相邻单元共享的边会被绘制两次，视觉上无差别。
func hexagonsPath(w, h, size float64) string {
	var b strings.Builder
	r := size / 2
	colStep := r * 1.5
	rowStep := r * math.Sqrt(3)
	col := 0
	for cx := r; cx < w+r; cx += colStep {
		offset := 0.0
		if col%2 == 1 {
			offset = rowStep / 2
		}
		for cy := offset; cy < h+rowStep; cy += rowStep {
			appendHexagon(&b, cx, cy, r)
		}
		col++
	}
	return strings.TrimSpace(b.String())
}

func appendHexagon(b *strings.Builder, cx, cy, r float64) {
	for i := 0; i < 6; i++ {
		a := float64(i) * math.Pi / 3
		x := cx + r*math.Cos(a)
		y := cy + r*math.Sin(a)
		if i == 0 {
			fmt.Fprintf(b, "M%.2f %.2f ", x, y)
		} else {
			fmt.Fprintf(b, "L%.2f %.2f ", x, y)
		}
	}
	b.WriteString("Z ")
}

func appendCircle(b *strings.Builder, cx, cy, r float64) {
	k := r * kappa
	fmt.Fprintf(b, "M%.2f %.2f ", cx+r, cy)
	fmt.Fprintf(b, "C%.2f %.2f %.2f %.2f %.2f %.2f ", cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	fmt.Fprintf(b, "C%.2f %.2f %.2f %.2f %.2f %.2f ", cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	fmt.Fprintf(b, "C%.2f %.2f %.2f %.2f %.2f %.2f ", cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	fmt.Fprintf(b, "C%.2f %.2f %.2f %.2f %.2f %.2f Z ", cx+k, cy-r, cx+r, cy-k, cx+r, cy)
}
