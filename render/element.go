package render

import (
	"github.com/ByLCY/folio/catalog"
	"github.com/ByLCY/folio/layout"
	"github.com/ByLCY/folio/page"
	"github.com/ByLCY/folio/theme"
)

// renderElement 把一个元素映射为绘制指令。元素已通过校验。
// switch 对 page.Kind 穷尽；新增种类时编译期不会报错，
// 但 Validate 会先挡下未知种类。
func (c *Compositor) renderElement(s Surface, p *page.Page, reg *catalog.Registry, el *page.Element) {
	pal := c.palette(reg, p)
	switch el.Kind {
	case page.KindRect:
		c.renderShape(s, p, reg, el, theme.ShapeRect, pal)
	case page.KindCircle:
		c.renderShape(s, p, reg, el, theme.ShapeCircle, pal)
	case page.KindLine:
		c.renderShape(s, p, reg, el, theme.ShapeLine, pal)
	case page.KindShape:
		c.renderShape(s, p, reg, el, el.Shape, pal)
	case page.KindImage:
		c.renderImage(s, el)
	case page.KindText:
		c.renderText(s, el, pal)
	case page.KindQnAInline, page.KindQnABlock:
		c.renderQnA(s, p, reg, el, pal)
	}
	if el.Border.On() {
		c.renderBorder(s, p, reg, el, pal)
	}
}

// renderShape 绘制主题化形状：装饰图形默认取 accent 角色并填充，
// 基础图形取 primary 角色且默认不填充。
func (c *Compositor) renderShape(s Surface, p *page.Page, reg *catalog.Registry, el *page.Element, kind theme.ShapeKind, pal catalog.Palette) {
	def := elementTheme(reg, p, el)
	res := def.Generate(c.Generator, kind, el.Width, el.Height, el.ID)

	role, fallback := "primary", defaultStroke
	fill := el.Fill
	if el.Kind == page.KindShape {
		role, fallback = "accent", defaultAccent
		if fill == "" {
			fill = resolveColor("", pal, "accent", defaultAccent)
		}
	}
	paint := Paint{
		Fill:        fill,
		Stroke:      resolveColor(el.Color, pal, role, fallback),
		StrokeWidth: res.StrokeWidth,
		Opacity:     res.Opacity,
		Dash:        res.Dash,
		Shadow:      res.Shadow,
	}
	if el.StrokeWidth > 0 {
		paint.StrokeWidth = el.StrokeWidth
	}
	if el.Opacity > 0 {
		paint.Opacity = el.Opacity
	}
	s.DrawPath(el.X, el.Y, res.Path, paint)
}

// renderText 排布并绘制自由文本。
func (c *Compositor) renderText(s Surface, el *page.Element, pal catalog.Palette) {
	style := el.Text.Style.Rich()
	style.Color = resolveColor(style.Color, pal, "text", defaultText)
	bounds := layout.Rect{X: el.X, Y: el.Y, W: el.Width, H: el.Height}
	res, err := layout.FlowText(el.Text.Content, style, bounds, c.Measurer)
	if err != nil {
		Logger().Warn("文本排版失败，元素被跳过", "id", el.ID, "err", err)
		return
	}
	s.DrawRuns(res.Runs)
}

// renderQnA 绘制问答元素：组合布局 → 可选文本底色 → 可选参考线 → 文本。
func (c *Compositor) renderQnA(s Surface, p *page.Page, reg *catalog.Registry, el *page.Element, pal catalog.Palette) {
	qna := el.QnA
	qs := qna.QuestionStyle.Rich()
	as := qna.AnswerStyle.Rich()
	qs.Color = resolveColor(qs.Color, pal, "text", defaultText)
	as.Color = resolveColor(as.Color, pal, "text", defaultText)

	var (
		res *layout.LayoutResult
		err error
	)
	if el.Kind == page.KindQnAInline {
		res, err = layout.ComposeInline(qna.Question, qna.Answer, qs, as, layout.InlineOptions{
			Width:     el.Width,
			Height:    el.Height,
			Padding:   qna.Padding,
			Separator: qna.Separator,
		}, c.Measurer)
	} else {
		res, err = layout.ComposeBlock(qna.Question, qna.Answer, qs, as, layout.BlockOptions{
			Width:     el.Width,
			Height:    el.Height,
			Padding:   qna.Padding,
			Gap:       qna.Gap,
			Placement: layout.Placement(qna.Placement),
		}, c.Measurer)
	}
	if err != nil {
		Logger().Warn("问答排版失败，元素被跳过", "id", el.ID, "err", err)
		return
	}

	// 文本底色回退链：元素底色 → 问样式底色 → 答样式底色 → 无。
	if bg := firstNonEmpty(qna.Background, qs.Background, as.Background); bg != "" {
		d := theme.SmoothPath(theme.ShapeRect, el.Width, el.Height)
		s.DrawPath(el.X, el.Y, d, Paint{Fill: bg, Opacity: 1})
	}

	if qna.RuledLines.On() {
		c.renderRuledLines(s, p, reg, el, res, pal)
	}

	runs := make([]layout.TextRun, len(res.Runs))
	for i, run := range res.Runs {
		run.X += el.X
		run.Y += el.Y
		runs[i] = run
	}
	s.DrawRuns(runs)
}

// renderBorder 沿元素包围盒绘制主题化外框。
func (c *Compositor) renderBorder(s Surface, p *page.Page, reg *catalog.Registry, el *page.Element, pal catalog.Palette) {
	def := elementTheme(reg, p, el)
	res := def.Generate(c.Generator, theme.ShapeRect, el.Width, el.Height, el.ID+"-border")
	paint := Paint{
		Stroke:      resolveColor(el.Border.Color, pal, "primary", defaultStroke),
		StrokeWidth: res.StrokeWidth,
		Opacity:     res.Opacity,
		Dash:        res.Dash,
	}
	if el.Border.Width > 0 {
		paint.StrokeWidth = el.Border.Width
	}
	s.DrawPath(el.X, el.Y, res.Path, paint)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
