package theme

import "hash/fnv"

// 该包实现主题化形状路径的生成。生成器是无状态的；关键契约在于种子：
// 每个元素提供一个稳定标识，由 SeedFor 派生确定性的整数种子。
// 同一 (标识, 形状, 尺寸) 在交互端与无头端必须产出逐字节相同的路径，
// 这是双端视觉一致性的承重保证。

// PathGenerator 是形状路径生成能力的接口，由调用方注入。
type PathGenerator interface {
	// Path 返回 kind 在 w×h 包围盒内的 SVG 路径串。
	Path(kind ShapeKind, w, h float64, seed int64) (string, error)
}

// GenKind 区分主题使用的生成策略。
type GenKind string

const (
	GenSmooth GenKind = "smooth"
	GenSketch GenKind = "sketch"
)

// Shadow 描述主题附带的投影参数。
type Shadow struct {
	Color   string  `json:"color,omitempty"`
	Blur    float64 `json:"blur,omitempty"`
	OffsetX float64 `json:"offsetX,omitempty"`
	OffsetY float64 `json:"offsetY,omitempty"`
}

// Definition 描述目录中的一种主题：生成策略与描边外观的默认值。
// 颜色留空，由渲染端按调色盘回退链补全。
type Definition struct {
	Name        string    `json:"name"`
	Kind        GenKind   `json:"kind"`
	Roughness   float64   `json:"roughness,omitempty"`
	Passes      int       `json:"passes,omitempty"`
	StrokeWidth float64   `json:"strokeWidth,omitempty"`
	Dash        []float64 `json:"dash,omitempty"`
	Shadow      Shadow    `json:"shadow,omitempty"`
}

// Result 为一次主题渲染生成的路径与描边属性。每次渲染都重新计算，
// 不做跨环境缓存：种子随机量必须在两端各自重算并得到相同结果。
type Result struct {
	Path        string
	Stroke      string
	Fill        string
	StrokeWidth float64
	Opacity     float64
	Dash        []float64
	Shadow      Shadow
}

// Generate 按主题生成路径与描边属性。gen 为空时按主题策略选择内建
// 生成器；任何生成失败都回退到平滑路径，绝不把失败抛给整页渲染。
func (d Definition) Generate(gen PathGenerator, kind ShapeKind, w, h float64, id string) Result {
	res := Result{
		StrokeWidth: d.StrokeWidth,
		Opacity:     1,
		Dash:        d.Dash,
		Shadow:      d.Shadow,
	}
	if res.StrokeWidth <= 0 {
		res.StrokeWidth = defaultStrokeWidth
	}

	if gen == nil {
		switch d.Kind {
		case GenSketch:
			gen = &Sketcher{Roughness: d.Roughness, Passes: d.Passes}
		default:
			gen = Smooth{}
		}
	}
	path, err := gen.Path(kind, w, h, SeedFor(id))
	if err != nil || path == "" {
		path = SmoothPath(kind, w, h)
	}
	res.Path = path
	return res
}

// defaultStrokeWidth 为主题未指定时的描边宽度（mm）。
const defaultStrokeWidth = 0.5

// SeedFor 从元素标识派生确定性种子：优先折叠标识中出现的十进制数字；
// 不含数字的标识改用 FNV 折叠全部字节。两端必须使用同一算法。
func SeedFor(id string) int64 {
	var seed int64
	found := false
	for _, r := range id {
		if r < '0' || r > '9' {
			continue
		}
		found = true
		seed = seed*10 + int64(r-'0')
		if seed > 1<<40 {
			seed %= 1 << 40
		}
	}
	if found {
		return seed
	}
	h := fnv.New64a()
	h.Write([]byte(id))
	return int64(h.Sum64() & (1<<62 - 1))
}
