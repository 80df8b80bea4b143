package layout

import (
	"fmt"
	"math"
	"strings"
)

// 该文件实现问答（QnA）组合：行内共享文本流与块状分区两种布局。

// Placement 表示块状 QnA 中问题相对答案的位置。
type Placement string

const (
	PlacementAbove Placement = "above"
	PlacementBelow Placement = "below"
	PlacementLeft  Placement = "left"
	PlacementRight Placement = "right"
)

// questionShare 规定左右分区时问题区占去除间隔后宽度的比例。
const questionShare = 0.4

// defaultSeparator 为行内组合在问与答之间插入的默认分隔串。
const defaultSeparator = " "

// InlineOptions 配置行内 QnA 组合。
type InlineOptions struct {
	Width     float64
	Height    float64
	Padding   float64
	Separator string // 空值使用 defaultSeparator
}

// BlockOptions 配置块状 QnA 组合。
type BlockOptions struct {
	Width     float64
	Height    float64
	Padding   float64
	Gap       float64
	Placement Placement
}

// ComposeInline 将问与答排入同一个文本流：问题（含分隔串）与答案逐词
// 贪心排布，样式切换处拆分为独立 Run。坐标相对元素左上角 (0,0)。
func ComposeInline(question, answer string, qs, as RichTextStyle, opts InlineOptions, m Measurer) (*LayoutResult, error) {
	inner, err := innerRect(opts.Width, opts.Height, opts.Padding)
	if err != nil {
		return nil, err
	}
	sep := opts.Separator
	if sep == "" {
		sep = defaultSeparator
	}

	type token struct {
		word   string
		style  RichTextStyle
		answer bool
	}
	var tokens []token
	for _, w := range strings.Fields(question + sep) {
		tokens = append(tokens, token{word: w, style: qs})
	}
	for _, w := range strings.Fields(answer) {
		tokens = append(tokens, token{word: w, style: as, answer: true})
	}

	res := &LayoutResult{}
	if len(tokens) == 0 {
		// 与 WrapText 一致：空输入也保留一行
		res.Lines = []LinePosition{{Y: inner.Y, H: LineHeight(qs), Style: qs}}
		res.Runs = []TextRun{{Text: "", X: inner.X, Y: inner.Y + Baseline(qs), Style: qs}}
		res.Height = LineHeight(qs)
		return res, nil
	}

	// 逐词贪心分行；同一行内同源且同样式的相邻词合并为一个 Run。
	// 问与答是语义上独立的 Run，即使两侧样式完全相同也不跨界合并。
	type piece struct {
		text   string
		width  float64
		style  RichTextStyle
		answer bool
	}
	var (
		lines   [][]piece
		current []piece
		lineW   float64
	)
	flush := func() {
		if len(current) > 0 {
			lines = append(lines, current)
			current = nil
			lineW = 0
		}
	}
	for _, tk := range tokens {
		wordW := MeasureText(tk.word, tk.style, m)
		spaceW := MeasureText(" ", tk.style, m)
		if len(current) == 0 {
			current = []piece{{text: tk.word, width: wordW, style: tk.style, answer: tk.answer}}
			lineW = wordW
			continue
		}
		if lineW+spaceW+wordW > inner.W {
			flush()
			current = []piece{{text: tk.word, width: wordW, style: tk.style, answer: tk.answer}}
			lineW = wordW
			continue
		}
		last := &current[len(current)-1]
		if last.answer == tk.answer && last.style == tk.style {
			last.text += " " + tk.word
			last.width += spaceW + wordW
		} else {
			current = append(current, piece{text: tk.word, width: spaceW + wordW, style: tk.style, answer: tk.answer})
		}
		lineW += spaceW + wordW
	}
	flush()

	y := inner.Y
	for _, ln := range lines {
		lineHeight, baseline, total := 0.0, 0.0, 0.0
		for _, p := range ln {
			lineHeight = math.Max(lineHeight, LineHeight(p.style))
			baseline = math.Max(baseline, Baseline(p.style))
			total += p.width
		}
		x := inner.X
		switch qs.Align {
		case AlignCenter:
			x += (inner.W - total) / 2
		case AlignRight:
			x += inner.W - total
		}
		res.Lines = append(res.Lines, LinePosition{Y: y, H: lineHeight, Style: ln[0].style})
		for _, p := range ln {
			res.Runs = append(res.Runs, TextRun{Text: p.text, X: x, Y: y + baseline, Style: p.style})
			x += p.width
		}
		y += lineHeight
	}
	res.Height = y - inner.Y
	return res, nil
}

// ComposeBlock 将问与答放入互不重叠的两个子矩形。子区域轴对齐、互斥，
// 且并集不超出 Width×Height 去除 Padding 后的内区——这是必须成立的性质。
// 坐标相对元素左上角 (0,0)。
func ComposeBlock(question, answer string, qs, as RichTextStyle, opts BlockOptions, m Measurer) (*LayoutResult, error) {
	inner, err := innerRect(opts.Width, opts.Height, opts.Padding)
	if err != nil {
		return nil, err
	}
	if opts.Gap < 0 {
		return nil, fmt.Errorf("layout: 非法的 QnA 间隔 %g", opts.Gap)
	}

	var qArea, aArea Rect
	switch opts.Placement {
	case PlacementAbove, PlacementBelow, "":
		avail := inner.H - opts.Gap
		if avail <= 0 {
			return nil, fmt.Errorf("layout: QnA 高度不足以容纳间隔（%g ≤ %g）", inner.H, opts.Gap)
		}
		qH := math.Min(naturalHeight(question, qs, inner.W, m), avail/2)
		if opts.Placement == PlacementBelow {
			aArea = Rect{X: inner.X, Y: inner.Y, W: inner.W, H: avail - qH}
			qArea = Rect{X: inner.X, Y: inner.Y + avail - qH + opts.Gap, W: inner.W, H: qH}
		} else {
			qArea = Rect{X: inner.X, Y: inner.Y, W: inner.W, H: qH}
			aArea = Rect{X: inner.X, Y: inner.Y + qH + opts.Gap, W: inner.W, H: avail - qH}
		}
	case PlacementLeft, PlacementRight:
		avail := inner.W - opts.Gap
		if avail <= 0 {
			return nil, fmt.Errorf("layout: QnA 宽度不足以容纳间隔（%g ≤ %g）", inner.W, opts.Gap)
		}
		qW := avail * questionShare
		if opts.Placement == PlacementRight {
			aArea = Rect{X: inner.X, Y: inner.Y, W: avail - qW, H: inner.H}
			qArea = Rect{X: inner.X + avail - qW + opts.Gap, Y: inner.Y, W: qW, H: inner.H}
		} else {
			qArea = Rect{X: inner.X, Y: inner.Y, W: qW, H: inner.H}
			aArea = Rect{X: inner.X + qW + opts.Gap, Y: inner.Y, W: avail - qW, H: inner.H}
		}
	default:
		return nil, fmt.Errorf("layout: 未知的 QnA 摆放方式 %q", opts.Placement)
	}

	qRes, err := FlowText(question, qs, qArea, m)
	if err != nil {
		return nil, err
	}
	aRes, err := FlowText(answer, as, aArea, m)
	if err != nil {
		return nil, err
	}

	res := &LayoutResult{
		QuestionArea: &qArea,
		AnswerArea:   &aArea,
	}
	// Run 顺序保持自上而下、自左向右：先发排靠上/靠左的区域。
	first, second := qRes, aRes
	if aArea.Y < qArea.Y || (aArea.Y == qArea.Y && aArea.X < qArea.X) {
		first, second = aRes, qRes
	}
	res.Runs = append(append(res.Runs, first.Runs...), second.Runs...)
	res.Lines = append(append(res.Lines, first.Lines...), second.Lines...)
	res.Height = inner.H
	return res, nil
}

// naturalHeight 返回文本在给定宽度内自然排布的高度。
func naturalHeight(text string, style RichTextStyle, width float64, m Measurer) float64 {
	lines, err := WrapText(text, style, width, m)
	if err != nil {
		return LineHeight(style)
	}
	return float64(len(lines)) * LineHeight(style)
}

func innerRect(width, height, padding float64) (Rect, error) {
	if width <= 0 || height <= 0 {
		return Rect{}, fmt.Errorf("layout: 非法的 QnA 尺寸 %gx%g", width, height)
	}
	if padding < 0 {
		return Rect{}, fmt.Errorf("layout: 非法的 QnA 内边距 %g", padding)
	}
	inner := Rect{X: padding, Y: padding, W: width - 2*padding, H: height - 2*padding}
	if inner.W <= 0 || inner.H <= 0 {
		return Rect{}, fmt.Errorf("layout: 内边距 %g 超出元素尺寸 %gx%g", padding, width, height)
	}
	return inner, nil
}
