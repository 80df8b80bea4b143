package catalog

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ByLCY/folio/theme"
)

const demoCatalog = `
catalog {
  // 海边旅行簿的配色
  palette Sunset {
    primary: #e07a5f
    background: #fdf6ec
    accent: #3d405b
  }
  theme crayon {
    style: sketch
    roughness: 1.8
    passes: 3
    stroke-width: 0.7
  }
  theme dashed {
    style: smooth
    dash: "2, 1"
  }
  pattern dots {
    color: #c0c0c0
    size: 4
  }
}
`

func loadDemo(t *testing.T) *Registry {
	t.Helper()
	reg, err := Load(strings.NewReader(demoCatalog))
	if err != nil {
		t.Fatalf("装载目录失败: %v", err)
	}
	return reg
}

func TestLoadPalette(t *testing.T) {
	reg := loadDemo(t)
	pal, ok := reg.Palette("Sunset")
	if !ok {
		t.Fatal("未找到声明的调色盘")
	}
	if pal["primary"] != "#e07a5f" || pal["background"] != "#fdf6ec" {
		t.Fatalf("调色盘内容不符: %v", pal)
	}
	// 内建默认盘不被自定义目录覆盖
	if _, ok := reg.Palette("default"); !ok {
		t.Fatal("默认调色盘丢失")
	}
}

func TestLoadTheme(t *testing.T) {
	reg := loadDemo(t)
	def := reg.Theme("crayon")
	if def.Kind != theme.GenSketch {
		t.Fatalf("主题策略不符: %s", def.Kind)
	}
	if def.Roughness != 1.8 || def.Passes != 3 || def.StrokeWidth != 0.7 {
		t.Fatalf("主题参数不符: %+v", def)
	}
}

func TestLoadThemeDash(t *testing.T) {
	reg := loadDemo(t)
	def := reg.Theme("dashed")
	if !reflect.DeepEqual(def.Dash, []float64{2, 1}) {
		t.Fatalf("虚线段不符: %v", def.Dash)
	}
	// 声明覆盖了内建的 dashed 主题
	if def.StrokeWidth != 0 {
		t.Fatalf("覆盖后的主题不应保留内建字段: %+v", def)
	}
}

func TestLoadPatternMergesDefaults(t *testing.T) {
	reg := loadDemo(t)
	pd, ok := reg.Pattern("dots")
	if !ok {
		t.Fatal("未找到 dots 图案")
	}
	if pd.Color != "#c0c0c0" || pd.Size != 4 {
		t.Fatalf("图案覆盖值不符: %+v", pd)
	}
	// 未声明的字段沿用内建默认
	if pd.StrokeWidth != 0.4 || pd.Opacity != 1 {
		t.Fatalf("图案默认值未保留: %+v", pd)
	}
}

func TestThemeFallsBackToDefault(t *testing.T) {
	reg := Default()
	def := reg.Theme("no-such-theme")
	if def.Name != "default" {
		t.Fatalf("未命中主题应回退默认: %+v", def)
	}
}

func TestLoadRejectsBadInput(t *testing.T) {
	cases := []string{
		`catalog { theme t { style: cubist } }`,
		`catalog { theme t { roughness: abc } }`,
		`palette p { }`,
	}
	for i, src := range cases {
		if _, err := Load(strings.NewReader(src)); err == nil {
			t.Fatalf("用例 %d 应报错: %s", i, src)
		}
	}
}

func TestDefaultCatalogComplete(t *testing.T) {
	reg := Default()
	for _, name := range []string{"dots", "grid", "diagonal-lines", "cross-hatch", "waves", "hexagons"} {
		pd, ok := reg.Pattern(name)
		if !ok {
			t.Fatalf("内建图案 %s 缺失", name)
		}
		if pd.Color == "" || pd.Size <= 0 || pd.StrokeWidth <= 0 {
			t.Fatalf("内建图案 %s 的默认值残缺: %+v", name, pd)
		}
	}
	for _, name := range []string{"default", "rough", "dashed", "shadow"} {
		if reg.Theme(name).Name != name {
			t.Fatalf("内建主题 %s 缺失", name)
		}
	}
}
