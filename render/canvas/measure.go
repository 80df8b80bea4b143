package canvassurface

import (
	"fmt"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/folio/fonts"
	"github.com/ByLCY/folio/layout"
)

// Measurer 用真实字体度量文本宽度，供布局阶段替换启发式测量。
// 两端共用同一布局算法，注入同一字体库即可得到一致的折行结果。
type Measurer struct {
	Library *fonts.Library
}

var _ layout.Measurer = (*Measurer)(nil)

// TextWidth 实现 layout.Measurer，返回值单位为 mm。
func (m *Measurer) TextWidth(text string, style layout.RichTextStyle) (float64, error) {
	if m == nil || m.Library == nil {
		return 0, fmt.Errorf("canvassurface: 字体库未注入")
	}
	fs := canvas.FontRegular
	if style.Bold {
		fs |= canvas.FontBold
	}
	if style.Italic {
		fs |= canvas.FontItalic
	}
	face := m.Library.Face(style.Family, style.EffectiveSize()*layout.MmToPt, canvas.Black, fs)
	if face == nil {
		return 0, fmt.Errorf("canvassurface: 无法获取字体 %s 的字形面", style.Family)
	}
	return face.TextWidth(text), nil
}
