package layout

import "unicode/utf8"

// Measurer 提供文本宽度测量能力，由调用方注入。
// 布局函数自身不感知执行环境：交互端注入真实测量面，无头端在字体
// 就绪前可以不注入，此时回退到估算。
type Measurer interface {
	// TextWidth 返回按 style 渲染 text 的宽度（mm）。
	TextWidth(text string, style RichTextStyle) (float64, error)
}

// heuristicCharWidth 为估算用的平均字符宽度系数：宽度 ≈ 字号 × 0.55 × 字符数。
// 该常量是契约的一部分，两个环境的回退路径必须一致。
const heuristicCharWidth = 0.55

// HeuristicMeasurer 按平均字符宽度估算文本宽度，永不失败。
// 用作测量能力缺失时的统一回退，也可单独注入（例如无头环境字体尚未加载完成时）。
type HeuristicMeasurer struct{}

var _ Measurer = HeuristicMeasurer{}

// TextWidth 实现 Measurer。
func (HeuristicMeasurer) TextWidth(text string, style RichTextStyle) (float64, error) {
	return style.EffectiveSize() * heuristicCharWidth * float64(utf8.RuneCountInString(text)), nil
}

// MeasureText 测量文本宽度；measurer 为空或测量失败时回退到估算，绝不失败。
func MeasureText(text string, style RichTextStyle, m Measurer) float64 {
	if m != nil {
		if w, err := m.TextWidth(text, style); err == nil && w >= 0 {
			return w
		}
	}
	w, _ := HeuristicMeasurer{}.TextWidth(text, style)
	return w
}

// TextX 根据对齐方式计算一行文本的起始 X。
// justify 作用于整段的分词间距，对单行起点而言与 left 等价。
func TextX(text string, style RichTextStyle, startX, availableWidth float64, m Measurer) float64 {
	width := MeasureText(text, style, m)
	switch style.Align {
	case AlignCenter:
		return startX + (availableWidth-width)/2
	case AlignRight:
		return startX + availableWidth - width
	default:
		return startX
	}
}
