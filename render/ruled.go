package render

import (
	"fmt"

	"github.com/ByLCY/folio/catalog"
	"github.com/ByLCY/folio/layout"
	"github.com/ByLCY/folio/page"
	"github.com/ByLCY/folio/theme"
)

// ruledLineOffset 为基线到参考线的距离（mm）。
const ruledLineOffset = 0.6

// renderRuledLines 在每一行文本下方绘制书写参考线，
// 线条与元素的形状主题保持一致（手绘主题下参考线同样带抖动）。
// 每条线以 "元素 ID-行号" 派生种子，保证逐条、逐端确定。
func (c *Compositor) renderRuledLines(s Surface, p *page.Page, reg *catalog.Registry, el *page.Element, res *layout.LayoutResult, pal catalog.Palette) {
	def := elementTheme(reg, p, el)
	color := resolveColor(el.QnA.RuledLines.Color, pal, "line", defaultLine)
	width := el.QnA.RuledLines.Width
	if width <= 0 {
		width = def.StrokeWidth
	}

	padding := el.QnA.Padding
	lineWidth := el.Width - 2*padding
	if lineWidth <= 0 {
		return
	}
	for i, line := range res.Lines {
		lineRes := def.Generate(c.Generator, theme.ShapeLine, lineWidth, 0,
			fmt.Sprintf("%s-rl%d", el.ID, i))
		y := el.Y + line.Y + layout.Baseline(line.Style) + ruledLineOffset
		s.DrawPath(el.X+padding, y, lineRes.Path, Paint{
			Stroke:      color,
			StrokeWidth: width,
			Opacity:     1,
			Dash:        lineRes.Dash,
		})
	}
}
