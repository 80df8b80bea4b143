package layout

import "fmt"

// 该文件定义布局输出的数据结构与 FlowText。输出为纯数据，不触碰任何绘制面。

// Rect 表示一个轴对齐矩形（mm）。
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Intersects 判断两个矩形是否相交（共享边不算相交）。
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Inset 返回四边各收缩 d 后的矩形。
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// TextRun 表示一段落点后的文本：字面内容、基线绝对坐标与产生它的样式。
// 一串 Run 完整描述渲染结果，顺序为自上而下、行内自左向右。
type TextRun struct {
	Text  string        `json:"text"`
	X     float64       `json:"x"`
	Y     float64       `json:"y"` // 基线 Y
	Style RichTextStyle `json:"style"`
}

// LinePosition 记录一行的顶部 Y 与该行使用的样式（段距可以逐行不同）。
type LinePosition struct {
	Y     float64       `json:"y"`
	H     float64       `json:"h"`
	Style RichTextStyle `json:"style"`
}

// LayoutResult 汇总一次布局：全部 Run、内容总高、逐行位置，
// 以及 QnA 组合时的问/答子区域。
type LayoutResult struct {
	Runs         []TextRun      `json:"runs"`
	Height       float64        `json:"height"`
	Lines        []LinePosition `json:"lines"`
	QuestionArea *Rect          `json:"questionArea,omitempty"`
	AnswerArea   *Rect          `json:"answerArea,omitempty"`
}

// FlowText 将文本折行后放入 bounds，生成自上而下的 TextRun 序列。
// 基线位置 = 行顶 + Baseline(style)；水平位置由 TextX 按对齐方式决定。
// bounds 宽高为负视为契约破坏。
func FlowText(text string, style RichTextStyle, bounds Rect, m Measurer) (*LayoutResult, error) {
	if bounds.W < 0 || bounds.H < 0 {
		return nil, fmt.Errorf("layout: 非法的排版区域 %gx%g", bounds.W, bounds.H)
	}
	lines, err := WrapText(text, style, bounds.W, m)
	if err != nil {
		return nil, err
	}

	lineHeight := LineHeight(style)
	res := &LayoutResult{}
	y := bounds.Y
	for _, line := range lines {
		res.Lines = append(res.Lines, LinePosition{Y: y, H: lineHeight, Style: style})
		res.Runs = append(res.Runs, TextRun{
			Text:  line.Text,
			X:     TextX(line.Text, style, bounds.X, bounds.W, m),
			Y:     y + Baseline(style),
			Style: style,
		})
		y += lineHeight
	}
	res.Height = y - bounds.Y
	return res, nil
}
