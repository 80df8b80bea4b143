package binding

import (
	"strings"
	"testing"

	"github.com/ByLCY/folio/page"
)

func demoData(t *testing.T) any {
	t.Helper()
	data, err := Load(strings.NewReader(`{
		"member": {"name": "Momo", "age": 7},
		"trip": {"photos": ["beach.jpg", "sunset.jpg"]}
	}`))
	if err != nil {
		t.Fatalf("装载绑定数据失败: %v", err)
	}
	return data
}

func TestInterpolate(t *testing.T) {
	data := demoData(t)
	cases := []struct{ in, want string }{
		{"你好 ${member.name}", "你好 Momo"},
		{"${member.age} 岁", "7 岁"},
		{"${trip.photos[1]}", "sunset.jpg"},
		{"${missing.path}", "${missing.path}"},
		{"${missing.path|匿名}", "匿名"},
		{"${member.name|fallback}", "Momo"},
		{"无占位符", "无占位符"},
		{"${trip.photos[9]}", "${trip.photos[9]}"},
		{"${trip.photos[x]}", "${trip.photos[x]}"},
	}
	for _, c := range cases {
		if got := Interpolate(c.in, data); got != c.want {
			t.Fatalf("Interpolate(%q) = %q，期望 %q", c.in, got, c.want)
		}
	}
}

func TestInterpolateNilData(t *testing.T) {
	if got := Interpolate("${member.name}", nil); got != "${member.name}" {
		t.Fatalf("无数据时应保留占位符: %q", got)
	}
}

func TestApplyPage(t *testing.T) {
	data := demoData(t)
	src := &page.Page{
		Width: 210, Height: 210,
		Elements: []page.Element{
			{ID: "t", Kind: page.KindText, Width: 100, Height: 20,
				Text: &page.TextContent{Content: "${member.name} 的相册"}},
			{ID: "q", Kind: page.KindQnAInline, Width: 100, Height: 20,
				QnA: &page.QnAContent{Question: "几岁了？", Answer: "${member.age}"}},
			{ID: "i", Kind: page.KindImage, Width: 100, Height: 60,
				Image: &page.ImageContent{Src: "${trip.photos[0]}"}},
		},
	}
	out := ApplyPage(src, data)
	if out.Elements[0].Text.Content != "Momo 的相册" {
		t.Fatalf("文本未替换: %q", out.Elements[0].Text.Content)
	}
	if out.Elements[1].QnA.Answer != "7" {
		t.Fatalf("答案未替换: %q", out.Elements[1].QnA.Answer)
	}
	if out.Elements[2].Image.Src != "beach.jpg" {
		t.Fatalf("图片路径未替换: %q", out.Elements[2].Image.Src)
	}
	// 入参不被修改
	if src.Elements[0].Text.Content != "${member.name} 的相册" {
		t.Fatal("ApplyPage 修改了入参")
	}
}
