package catalog

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ByLCY/folio/theme"
)

// Registry 保存调色盘、主题与背景图案默认值的只读目录。
// 生命周期约定：进程启动时构建一次，之后只读；并发读取无需加锁。
// 渲染器通过显式传入的 Registry 查询，不存在环境级的全局目录。
type Registry struct {
	palettes map[string]Palette
	themes   map[string]theme.Definition
	patterns map[string]PatternDefaults
}

// Palette 是角色名到 #rrggbb 颜色的映射。
type Palette map[string]string

// PatternDefaults 记录一种背景图案的默认参数。
type PatternDefaults struct {
	Color       string
	Size        float64
	StrokeWidth float64
	Opacity     float64
}

// Palette 按名称查询调色盘。
func (r *Registry) Palette(name string) (Palette, bool) {
	p, ok := r.palettes[name]
	return p, ok
}

// Theme 按名称查询主题；未命中时返回默认主题。
func (r *Registry) Theme(name string) theme.Definition {
	if t, ok := r.themes[name]; ok {
		return t
	}
	return r.themes["default"]
}

// Pattern 按名称查询图案默认值。
func (r *Registry) Pattern(name string) (PatternDefaults, bool) {
	p, ok := r.patterns[name]
	return p, ok
}

// Default 返回内建目录。
func Default() *Registry {
	return &Registry{
		palettes: map[string]Palette{
			"default": {
				"primary":    "#333333",
				"background": "#ffffff",
				"accent":     "#e07a5f",
				"text":       "#1e1e1e",
				"line":       "#9aa5b1",
			},
		},
		themes: map[string]theme.Definition{
			"default": {Name: "default", Kind: theme.GenSmooth, StrokeWidth: 0.5},
			"rough":   {Name: "rough", Kind: theme.GenSketch, Roughness: 1.0, Passes: 2, StrokeWidth: 0.6},
			"dashed":  {Name: "dashed", Kind: theme.GenSmooth, StrokeWidth: 0.5, Dash: []float64{2, 1}},
			"shadow": {Name: "shadow", Kind: theme.GenSmooth, StrokeWidth: 0.5,
				Shadow: theme.Shadow{Color: "#00000033", Blur: 1.2, OffsetX: 0.8, OffsetY: 0.8}},
		},
		patterns: map[string]PatternDefaults{
			"dots":           {Color: "#d0d0d0", Size: 6, StrokeWidth: 0.4, Opacity: 1},
			"grid":           {Color: "#d8d8d8", Size: 8, StrokeWidth: 0.3, Opacity: 1},
			"diagonal-lines": {Color: "#d8d8d8", Size: 8, StrokeWidth: 0.3, Opacity: 1},
			"cross-hatch":    {Color: "#dddddd", Size: 8, StrokeWidth: 0.25, Opacity: 1},
			"waves":          {Color: "#cfdbe6", Size: 10, StrokeWidth: 0.35, Opacity: 1},
			"hexagons":       {Color: "#dcdcdc", Size: 9, StrokeWidth: 0.3, Opacity: 1},
		},
	}
}

// Load 解析目录 DSL 并覆盖到内建目录之上，返回新的只读目录。
func Load(r io.Reader) (*Registry, error) {
	file, err := parse(r)
	if err != nil {
		return nil, err
	}
	reg := Default()
	for _, entry := range file.Entries {
		switch {
		case entry.Palette != nil:
			p := Palette{}
			for k, v := range props(entry.Palette.Props) {
				p[k] = v
			}
			reg.palettes[entry.Palette.Name] = p
		case entry.Theme != nil:
			def, err := themeFromProps(entry.Theme.Name, props(entry.Theme.Props))
			if err != nil {
				return nil, err
			}
			reg.themes[entry.Theme.Name] = def
		case entry.Pattern != nil:
			pd, err := patternFromProps(entry.Pattern.Name, props(entry.Pattern.Props), reg.patterns[entry.Pattern.Name])
			if err != nil {
				return nil, err
			}
			reg.patterns[entry.Pattern.Name] = pd
		}
	}
	return reg, nil
}

func themeFromProps(name string, p map[string]string) (theme.Definition, error) {
	def := theme.Definition{Name: name, Kind: theme.GenSmooth}
	for key, val := range p {
		switch key {
		case "style":
			switch val {
			case "sketch", "rough":
				def.Kind = theme.GenSketch
			case "smooth", "default":
				def.Kind = theme.GenSmooth
			default:
				return def, fmt.Errorf("catalog: 主题 %s 使用了未知的生成策略 %q", name, val)
			}
		case "roughness":
			f, err := parseFloat(name, key, val)
			if err != nil {
				return def, err
			}
			def.Roughness = f
		case "passes":
			n, err := strconv.Atoi(val)
			if err != nil {
				return def, fmt.Errorf("catalog: 主题 %s 的 passes 无法解析: %w", name, err)
			}
			def.Passes = n
		case "stroke-width":
			f, err := parseFloat(name, key, val)
			if err != nil {
				return def, err
			}
			def.StrokeWidth = f
		case "dash":
			dash, err := parseDash(val)
			if err != nil {
				return def, fmt.Errorf("catalog: 主题 %s 的 dash 无法解析: %w", name, err)
			}
			def.Dash = dash
		case "shadow-color":
			def.Shadow.Color = val
		case "shadow-blur":
			f, err := parseFloat(name, key, val)
			if err != nil {
				return def, err
			}
			def.Shadow.Blur = f
		case "shadow-offset-x":
			f, err := parseFloat(name, key, val)
			if err != nil {
				return def, err
			}
			def.Shadow.OffsetX = f
		case "shadow-offset-y":
			f, err := parseFloat(name, key, val)
			if err != nil {
				return def, err
			}
			def.Shadow.OffsetY = f
		default:
			// 未识别的属性忽略，保持目录文件向前兼容
		}
	}
	return def, nil
}

func patternFromProps(name string, p map[string]string, base PatternDefaults) (PatternDefaults, error) {
	out := base
	if out.Opacity == 0 {
		out.Opacity = 1
	}
	for key, val := range p {
		switch key {
		case "color":
			out.Color = val
		case "size":
			f, err := parseFloat(name, key, val)
			if err != nil {
				return out, err
			}
			out.Size = f
		case "stroke-width":
			f, err := parseFloat(name, key, val)
			if err != nil {
				return out, err
			}
			out.StrokeWidth = f
		case "opacity":
			f, err := parseFloat(name, key, val)
			if err != nil {
				return out, err
			}
			out.Opacity = f
		}
	}
	return out, nil
}

func parseFloat(owner, key, val string) (float64, error) {
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("catalog: %s 的 %s 无法解析: %w", owner, key, err)
	}
	return f, nil
}

// parseDash 解析 "2 1" 或 "2,1" 形式的虚线段。
func parseDash(val string) ([]float64, error) {
	fields := strings.FieldsFunc(val, func(r rune) bool { return r == ' ' || r == ',' })
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
