package page

import (
	"math"
	"strings"
	"testing"

	"github.com/ByLCY/folio/layout"
)

const demoPage = `{
  "width": 210,
  "height": 210,
  "theme": "rough",
  "palette": "Sunset",
  "background": {"kind": "pattern", "pattern": {"name": "dots"}},
  "elements": [
    {"id": "title", "kind": "text", "x": 20, "y": 15, "width": 170, "height": 20, "z": 1,
     "text": {"content": "我们的海边周末", "style": {"size": "18pt", "bold": true, "align": "center"}}},
    {"id": "photo-1", "kind": "image", "x": 20, "y": 40, "width": 80, "height": 60, "z": 2, "rotation": -3,
     "image": {"src": "beach.jpg", "fit": "cover"}},
    {"id": "q-1", "kind": "qna-block", "x": 110, "y": 40, "width": 80, "height": 60, "z": 2,
     "qna": {"question": "最难忘的瞬间？", "answer": "第二天的日出",
             "questionStyle": {"bold": true}, "answerStyle": {},
             "placement": "above", "ruledLines": {"enabled": false}}}
  ]
}`

func TestDecode(t *testing.T) {
	p, err := Decode(strings.NewReader(demoPage))
	if err != nil {
		t.Fatalf("解析页面失败: %v", err)
	}
	if p.Width != 210 || p.Height != 210 {
		t.Fatalf("页面尺寸不符: %gx%g", p.Width, p.Height)
	}
	if len(p.Elements) != 3 {
		t.Fatalf("元素数量不符: %d", len(p.Elements))
	}
	title := p.Elements[0]
	// "18pt" 经单位换算为 mm
	if got := float64(title.Text.Style.Size); math.Abs(got-18*layout.PtToMm) > 1e-9 {
		t.Fatalf("字号换算不符: %g", got)
	}
	if p.Elements[2].QnA.RuledLines.On() {
		t.Fatal("enabled:false 的参考线应被关闭")
	}
	for _, el := range p.Elements {
		if err := el.Validate(); err != nil {
			t.Fatalf("示例元素不应校验失败: %v", err)
		}
	}
}

func TestDecodeRejectsBadSize(t *testing.T) {
	for _, src := range []string{
		`{"width": 0, "height": 210}`,
		`{"width": 210}`,
		`{not json`,
	} {
		if _, err := Decode(strings.NewReader(src)); err == nil {
			t.Fatalf("应报错: %s", src)
		}
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		el   Element
		ok   bool
	}{
		{"矩形", Element{ID: "r", Kind: KindRect, Width: 10, Height: 10}, true},
		{"零尺寸矩形", Element{ID: "r", Kind: KindRect}, false},
		{"水平线", Element{ID: "l", Kind: KindLine, Width: 50}, true},
		{"两端重合的线", Element{ID: "l", Kind: KindLine}, false},
		{"缺内容的文本", Element{ID: "t", Kind: KindText, Width: 10, Height: 10}, false},
		{"缺 src 的图片", Element{ID: "i", Kind: KindImage, Width: 10, Height: 10, Image: &ImageContent{}}, false},
		{"缺内容的问答", Element{ID: "q", Kind: KindQnAInline, Width: 10, Height: 10}, false},
		{"未知形状", Element{ID: "s", Kind: KindShape, Width: 10, Height: 10, Shape: "spiral"}, false},
		{"心形", Element{ID: "s", Kind: KindShape, Width: 10, Height: 10, Shape: "heart"}, true},
		{"未知种类", Element{ID: "x", Kind: "video", Width: 10, Height: 10}, false},
	}
	for _, c := range cases {
		err := c.el.Validate()
		if c.ok && err != nil {
			t.Fatalf("%s 不应失败: %v", c.name, err)
		}
		if !c.ok && err == nil {
			t.Fatalf("%s 应失败", c.name)
		}
	}
}

func TestEnabledPrecedence(t *testing.T) {
	off, on := false, true
	if (&Background{Kind: BackgroundSolid, Enabled: &off}).On() {
		t.Fatal("enabled:false 的背景应被关闭")
	}
	if !(&Background{Kind: BackgroundSolid, Enabled: &on}).On() {
		t.Fatal("enabled:true 的背景应启用")
	}
	if !(&Background{Kind: BackgroundSolid}).On() {
		t.Fatal("未写 enabled 视为启用")
	}
	if (&Background{}).On() {
		t.Fatal("无种类的背景视为关闭")
	}
	var nilBorder *Border
	if nilBorder.On() {
		t.Fatal("未配置的外框视为关闭")
	}
	if !(&RuledLines{}).On() {
		t.Fatal("未写 enabled 的参考线视为启用")
	}
}

func TestTextStyleRich(t *testing.T) {
	s := TextStyle{Size: 5, Bold: true, Align: "center", Spacing: "large", Opacity: 2}
	rich := s.Rich()
	if rich.Size != 5 || !rich.Bold {
		t.Fatalf("样式转换不符: %+v", rich)
	}
	if rich.Align != layout.AlignCenter || rich.Spacing != layout.SpacingLarge {
		t.Fatalf("枚举转换不符: %+v", rich)
	}
	// 越界的不透明度归一为 1
	if rich.Opacity != 1 {
		t.Fatalf("不透明度未归一: %g", rich.Opacity)
	}
}
