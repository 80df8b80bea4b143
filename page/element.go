package page

import (
	"fmt"

	"github.com/ByLCY/folio/theme"
)

// Kind 枚举页面元素的全部种类。渲染端对 Kind 的 switch 必须穷尽本列表；
// 新增种类时同步补齐各处分支。
type Kind string

const (
	KindRect      Kind = "rect"
	KindCircle    Kind = "circle"
	KindLine      Kind = "line"
	KindImage     Kind = "image"
	KindText      Kind = "text"
	KindQnAInline Kind = "qna-inline"
	KindQnABlock  Kind = "qna-block"
	KindShape     Kind = "shape" // 装饰图形，具体形状由 Shape 字段给出
)

// Element 是页面上的一个视觉对象。Z 为显式堆叠序，绘制顺序只由它决定，
// 与元素在列表中的位置无关（同 Z 时按列表序稳定排序）。
type Element struct {
	ID       string  `json:"id"`
	Kind     Kind    `json:"kind"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation,omitempty"` // 绕中心旋转（度）
	Z        int     `json:"z"`

	// Theme 覆盖页面级主题；空值沿用页面主题。
	Theme string `json:"theme,omitempty"`
	// Color/Fill 为元素级描边与填充色，空值走调色盘回退链。
	Color       string  `json:"color,omitempty"`
	Fill        string  `json:"fill,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty"`
	Opacity     float64 `json:"opacity,omitempty"`

	Shape theme.ShapeKind `json:"shape,omitempty"` // 仅 KindShape 使用
	Text  *TextContent    `json:"text,omitempty"`
	QnA   *QnAContent     `json:"qna,omitempty"`
	Image *ImageContent   `json:"image,omitempty"`

	// Border 为元素外框子配置；Enabled 为 false 时整个外框连同
	// 其余属性一并忽略。
	Border *Border `json:"border,omitempty"`
}

// TextContent 是自由文本元素的内容。
type TextContent struct {
	Content string    `json:"content"`
	Style   TextStyle `json:"style"`
}

// QnAContent 是问答元素的内容。
type QnAContent struct {
	Question      string    `json:"question"`
	Answer        string    `json:"answer"`
	QuestionStyle TextStyle `json:"questionStyle"`
	AnswerStyle   TextStyle `json:"answerStyle"`

	// Placement 仅块状变体使用：above/below/left/right。
	Placement string  `json:"placement,omitempty"`
	Separator string  `json:"separator,omitempty"`
	Gap       float64 `json:"gap,omitempty"`
	Padding   float64 `json:"padding,omitempty"`

	// Background 为文本底色；空值依次回退问样式底色、答样式底色、无。
	Background string      `json:"background,omitempty"`
	RuledLines *RuledLines `json:"ruledLines,omitempty"`
}

// RuledLines 是书写基线参考线的子配置。
type RuledLines struct {
	Enabled *bool   `json:"enabled,omitempty"` // nil 视为 true
	Color   string  `json:"color,omitempty"`
	Width   float64 `json:"width,omitempty"`
}

// On 报告参考线是否启用。必须先于任何其他属性检查。
func (r *RuledLines) On() bool {
	return r != nil && (r.Enabled == nil || *r.Enabled)
}

// Border 是元素外框的子配置。
type Border struct {
	Enabled *bool   `json:"enabled,omitempty"`
	Color   string  `json:"color,omitempty"`
	Width   float64 `json:"width,omitempty"`
}

// On 报告外框是否启用。必须先于任何其他属性检查。
func (b *Border) On() bool {
	return b != nil && (b.Enabled == nil || *b.Enabled)
}

// ImageContent 是图片元素的内容。
type ImageContent struct {
	Src     string  `json:"src"`
	Fit     string  `json:"fit,omitempty"` // cover/contain/repeat
	CropX   float64 `json:"cropX,omitempty"`
	CropY   float64 `json:"cropY,omitempty"`
	Opacity float64 `json:"opacity,omitempty"`
}

// Validate 检查元素是否具备渲染所需的几何与内容。
// 校验失败的元素会被整页渲染跳过，绝不让单个残缺元素拖垮整页。
func (e *Element) Validate() error {
	if e.Width <= 0 || e.Height <= 0 {
		if e.Kind != KindLine {
			return fmt.Errorf("page: 元素 %s 缺少有效尺寸 %gx%g", e.ID, e.Width, e.Height)
		}
		if e.Width == 0 && e.Height == 0 {
			return fmt.Errorf("page: 线条 %s 两端重合", e.ID)
		}
	}
	switch e.Kind {
	case KindRect, KindCircle, KindLine:
		return nil
	case KindShape:
		if !e.Shape.Valid() {
			return fmt.Errorf("page: 元素 %s 使用了未知形状 %q", e.ID, e.Shape)
		}
	case KindImage:
		if e.Image == nil || e.Image.Src == "" {
			return fmt.Errorf("page: 图片元素 %s 缺少 src", e.ID)
		}
	case KindText:
		if e.Text == nil {
			return fmt.Errorf("page: 文本元素 %s 缺少内容", e.ID)
		}
	case KindQnAInline, KindQnABlock:
		if e.QnA == nil {
			return fmt.Errorf("page: 问答元素 %s 缺少内容", e.ID)
		}
	default:
		return fmt.Errorf("page: 未知的元素种类 %q", e.Kind)
	}
	return nil
}
