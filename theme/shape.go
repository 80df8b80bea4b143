package theme

// ShapeKind 枚举引擎支持的全部形状。新增形状时必须同步补齐
// smoothPath 与 sketchOutline 两处 switch，保持穷尽。
type ShapeKind string

const (
	ShapeRect   ShapeKind = "rect"
	ShapeCircle ShapeKind = "circle"
	ShapeLine   ShapeKind = "line"
	ShapeHeart  ShapeKind = "heart"
	ShapeStar   ShapeKind = "star"
	ShapeBubble ShapeKind = "bubble"
	ShapePaw    ShapeKind = "paw"
	ShapePawAlt ShapeKind = "paw-alt"
	ShapeSmiley ShapeKind = "smiley"
)

// Kinds 按固定顺序列出全部形状，供目录与测试遍历。
func Kinds() []ShapeKind {
	return []ShapeKind{
		ShapeRect, ShapeCircle, ShapeLine,
		ShapeHeart, ShapeStar, ShapeBubble,
		ShapePaw, ShapePawAlt, ShapeSmiley,
	}
}

// Valid 报告 kind 是否属于固定形状目录。
func (k ShapeKind) Valid() bool {
	switch k {
	case ShapeRect, ShapeCircle, ShapeLine, ShapeHeart, ShapeStar,
		ShapeBubble, ShapePaw, ShapePawAlt, ShapeSmiley:
		return true
	}
	return false
}
