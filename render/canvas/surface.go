// Package canvassurface 基于 github.com/tdewolff/canvas 实现绘制面，
// 供 PDF/PNG 离屏导出使用。坐标系固定为左上角原点（CartesianIV），
// 与布局结果一致。
package canvassurface

import (
	"image"
	"image/color"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/folio/fonts"
	"github.com/ByLCY/folio/layout"
	"github.com/ByLCY/folio/render"
)

// Surface 把渲染器的绘制指令落到一个 canvas.Context 上。
// 非并发安全，一次页面渲染独占一个 Surface。
type Surface struct {
	ctx *canvas.Context
	lib *fonts.Library
}

var _ render.Surface = (*Surface)(nil)

// New 将 ctx 包装为绘制面并切换到左上角原点坐标系。
func New(ctx *canvas.Context, lib *fonts.Library) *Surface {
	ctx.SetCoordSystem(canvas.CartesianIV)
	return &Surface{ctx: ctx, lib: lib}
}

// PushTransform 实现 render.Surface。
func (s *Surface) PushTransform(cx, cy, rotation float64) {
	s.ctx.Push()
	s.ctx.RotateAbout(rotation, cx, cy)
}

// Pop 实现 render.Surface。
func (s *Surface) Pop() {
	s.ctx.Pop()
}

// DrawPath 实现 render.Surface。路径字符串解析失败属于环境性问题，
// 记录诊断后跳过该路径，不影响同页其他内容。
func (s *Surface) DrawPath(x, y float64, d string, p render.Paint) {
	path, err := canvas.ParseSVGPath(d)
	if err != nil {
		render.Logger().Warn("路径解析失败，跳过绘制", "err", err)
		return
	}

	if p.Shadow.Color != "" {
		shadow, err := render.ParseHexColor(p.Shadow.Color)
		if err == nil {
			s.ctx.SetFillColor(color.RGBA{})
			s.ctx.SetStrokeColor(withOpacity(shadow, p.Opacity))
			s.ctx.SetStrokeWidth(p.StrokeWidth + p.Shadow.Blur)
			s.ctx.SetDashes(0)
			s.ctx.DrawPath(x+p.Shadow.OffsetX, y+p.Shadow.OffsetY, path.Copy())
		}
	}

	s.ctx.SetFillColor(paintColor(p.Fill, p.Opacity))
	s.ctx.SetStrokeColor(paintColor(p.Stroke, p.Opacity))
	s.ctx.SetStrokeWidth(p.StrokeWidth)
	s.ctx.SetDashes(0, p.Dash...)
	s.ctx.DrawPath(x, y, path)
}

// DrawRuns 实现 render.Surface。Run 的 Y 坐标即基线位置，
// 直接交给 DrawText。
func (s *Surface) DrawRuns(runs []layout.TextRun) {
	for _, run := range runs {
		face := s.face(run.Style)
		line := canvas.NewTextLine(face, run.Text, canvas.Left)
		s.ctx.DrawText(run.X, run.Y, line)
	}
}

// DrawImage 实现 render.Surface。目标宽度决定绘制分辨率。
func (s *Surface) DrawImage(x, y, w, h float64, img image.Image, opacity float64) {
	if img == nil || w <= 0 {
		return
	}
	drawn := img
	if opacity < 1 {
		drawn = fadeImage(img, opacity)
	}
	dpmm := float64(img.Bounds().Dx()) / w
	if dpmm <= 0 {
		dpmm = 1
	}
	s.ctx.DrawImage(x, y, drawn, canvas.DPMM(dpmm))
}

func (s *Surface) face(style layout.RichTextStyle) *canvas.FontFace {
	col := paintColor(style.Color, style.Opacity)
	fs := canvas.FontRegular
	if style.Bold {
		fs |= canvas.FontBold
	}
	if style.Italic {
		fs |= canvas.FontItalic
	}
	return s.lib.Face(style.Family, style.EffectiveSize()*layout.MmToPt, col, fs)
}

// paintColor 解析 #rrggbb(aa) 颜色并叠加不透明度；空串与非法值
// 均返回全透明。
func paintColor(hex string, opacity float64) color.RGBA {
	if hex == "" {
		return color.RGBA{}
	}
	c, err := render.ParseHexColor(hex)
	if err != nil {
		render.Logger().Warn("颜色解析失败，按透明处理", "color", hex, "err", err)
		return color.RGBA{}
	}
	return withOpacity(c, opacity)
}

func withOpacity(c color.RGBA, opacity float64) color.RGBA {
	if opacity <= 0 || opacity >= 1 {
		return c
	}
	// 预乘 alpha 表示下各通道一并缩放
	return color.RGBA{
		R: uint8(float64(c.R) * opacity),
		G: uint8(float64(c.G) * opacity),
		B: uint8(float64(c.B) * opacity),
		A: uint8(float64(c.A) * opacity),
	}
}

// fadeImage 返回整体透明度降低后的图片副本。
func fadeImage(img image.Image, opacity float64) image.Image {
	if opacity <= 0 {
		opacity = 0
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			out.SetRGBA(x-b.Min.X, y-b.Min.Y, color.RGBA{
				R: uint8(float64(r>>8) * opacity),
				G: uint8(float64(g>>8) * opacity),
				B: uint8(float64(bl>>8) * opacity),
				A: uint8(float64(a>>8) * opacity),
			})
		}
	}
	return out
}
