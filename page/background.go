package page

// BackgroundKind 枚举页面背景的种类，一页只激活一种。
type BackgroundKind string

const (
	BackgroundNone    BackgroundKind = ""
	BackgroundSolid   BackgroundKind = "solid"
	BackgroundPattern BackgroundKind = "pattern"
	BackgroundImage   BackgroundKind = "image"
)

// Background 描述页面背景。Enabled 为 false 时整个背景被抑制，
// 其余所有属性一并忽略——这一优先级是绝对的，渲染端必须最先检查，
// 不得读取任何其他字段（防御半成品配置）。
type Background struct {
	Kind    BackgroundKind `json:"kind,omitempty"`
	Enabled *bool          `json:"enabled,omitempty"` // nil 视为 true

	// solid
	Color   string  `json:"color,omitempty"`
	Opacity float64 `json:"opacity,omitempty"`

	// pattern
	Pattern *PatternSpec `json:"pattern,omitempty"`

	// image
	Image *BackgroundImageSpec `json:"image,omitempty"`
}

// On 报告背景是否启用。
func (b *Background) On() bool {
	return b != nil && b.Kind != BackgroundNone && (b.Enabled == nil || *b.Enabled)
}

// PatternSpec 配置重复图案背景；零值字段由目录中的图案默认值补全。
// Fill 为图案镂空处的底色，空值表示不铺底。
type PatternSpec struct {
	Name        string  `json:"name"`
	Color       string  `json:"color,omitempty"`
	Size        float64 `json:"size,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty"`
	Opacity     float64 `json:"opacity,omitempty"`
	Fill        string  `json:"fill,omitempty"`
}

// BackgroundImageSpec 配置图片背景。
type BackgroundImageSpec struct {
	Src   string  `json:"src"`
	Fit   string  `json:"fit,omitempty"` // cover/contain/repeat
	CropX float64 `json:"cropX,omitempty"`
	CropY float64 `json:"cropY,omitempty"`
}
