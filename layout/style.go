package layout

import (
	"fmt"
	"strings"
)

// 该文件定义富文本样式以及字体描述、行高的纯函数。
// 约定：引擎内所有坐标与尺寸单位均为毫米（mm），与字体系统交互时在边界做 mm↔pt 换算。

// Align 表示文本水平对齐方式。
type Align string

const (
	AlignLeft    Align = "left"
	AlignCenter  Align = "center"
	AlignRight   Align = "right"
	AlignJustify Align = "justify"
)

// Spacing 表示段落间距档位，决定行高倍数。
type Spacing string

const (
	SpacingSmall  Spacing = "small"
	SpacingMedium Spacing = "medium"
	SpacingLarge  Spacing = "large"
)

// 行高契约：行高 = 字号 × baseLineFactor × 档位倍数。
// 双端渲染必须使用同一组常量，任何一侧单独调整都会破坏视觉一致性。
const (
	baseLineFactor      = 1.4
	spacingSmallFactor  = 1.0
	spacingMediumFactor = 1.2
	spacingLargeFactor  = 1.5
)

// defaultFontSize 为未指定字号时的默认值（12pt 换算为 mm）。
const defaultFontSize = 12 * PtToMm

// baselineFactor 规定基线位于行顶向下 字号×baselineFactor 处。
// 这是跨环境的度量对齐点：渲染面以布局算出的基线为准，不得改用自身字体度量。
const baselineFactor = 0.8

// RichTextStyle 描述一段文本的视觉样式，构造后不可修改。
// Color/Background 为 #rrggbb 形式，空字符串表示未设置，由调用方的回退链补全。
type RichTextStyle struct {
	Size       float64 `json:"size"` // 字号（mm）
	Family     string  `json:"family,omitempty"`
	Bold       bool    `json:"bold,omitempty"`
	Italic     bool    `json:"italic,omitempty"`
	Color      string  `json:"color,omitempty"`
	Opacity    float64 `json:"opacity,omitempty"`
	Align      Align   `json:"align,omitempty"`
	Spacing    Spacing `json:"spacing,omitempty"`
	Background string  `json:"background,omitempty"`
}

// EffectiveSize 返回字号，未设置时回退默认值。
func (s RichTextStyle) EffectiveSize() float64 {
	if s.Size > 0 {
		return s.Size
	}
	return defaultFontSize
}

// FontDescriptor 生成确定性的字体描述串，仅由字号、字族与粗斜体决定。
// 相同样式在两个执行环境中必须得到同一描述串，供测量面做缓存键。
func FontDescriptor(style RichTextStyle) string {
	var b strings.Builder
	if style.Italic {
		b.WriteString("italic ")
	}
	if style.Bold {
		b.WriteString("bold ")
	}
	fmt.Fprintf(&b, "%.2fpt ", style.EffectiveSize()*MmToPt)
	family := style.Family
	if family == "" {
		family = "Body"
	}
	b.WriteString(family)
	return b.String()
}

// LineHeight 返回样式的行高（mm）。
func LineHeight(style RichTextStyle) float64 {
	return style.EffectiveSize() * baseLineFactor * spacingFactor(style.Spacing)
}

// Baseline 返回行顶到基线的距离（mm）。
func Baseline(style RichTextStyle) float64 {
	return style.EffectiveSize() * baselineFactor
}

func spacingFactor(s Spacing) float64 {
	switch s {
	case SpacingMedium:
		return spacingMediumFactor
	case SpacingLarge:
		return spacingLargeFactor
	default:
		// small 与未指定均按 1.0 处理
		return spacingSmallFactor
	}
}
