package layout

import (
	"fmt"
	"math"
	"testing"
)

// failingMeasurer 模拟字体尚未就绪的测量面。
type failingMeasurer struct{}

func (failingMeasurer) TextWidth(string, RichTextStyle) (float64, error) {
	return 0, fmt.Errorf("字体未就绪")
}

// negativeMeasurer 返回非法宽度，用于验证回退。
type negativeMeasurer struct{}

func (negativeMeasurer) TextWidth(string, RichTextStyle) (float64, error) {
	return -1, nil
}

func TestHeuristicWidth(t *testing.T) {
	w, err := HeuristicMeasurer{}.TextWidth("abc", style10())
	if err != nil {
		t.Fatalf("估算不应失败: %v", err)
	}
	if math.Abs(w-16.5) > 1e-9 {
		t.Fatalf("估算宽度 %g != 16.5", w)
	}
}

func TestHeuristicWidthCountsRunes(t *testing.T) {
	w, _ := HeuristicMeasurer{}.TextWidth("你好", style10())
	if math.Abs(w-11) > 1e-9 {
		t.Fatalf("多字节字符应按字符数估算，得到 %g", w)
	}
}

func TestMeasureTextFallsBack(t *testing.T) {
	want := MeasureText("abc", style10(), nil)
	for _, m := range []Measurer{failingMeasurer{}, negativeMeasurer{}} {
		if got := MeasureText("abc", style10(), m); math.Abs(got-want) > 1e-9 {
			t.Fatalf("测量失败时应回退估算，得到 %g 期望 %g", got, want)
		}
	}
}

func TestTextXAlignment(t *testing.T) {
	s := style10()
	// "ab" 估算宽度 11
	cases := []struct {
		align Align
		want  float64
	}{
		{AlignLeft, 0},
		{AlignJustify, 0},
		{AlignCenter, 44.5},
		{AlignRight, 89},
	}
	for _, c := range cases {
		s.Align = c.align
		if got := TextX("ab", s, 0, 100, nil); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("对齐 %s 的起始 X %g != %g", c.align, got, c.want)
		}
	}
}

func TestLineHeightContract(t *testing.T) {
	cases := []struct {
		spacing Spacing
		want    float64
	}{
		{"", 14},
		{SpacingSmall, 14},
		{SpacingMedium, 16.8},
		{SpacingLarge, 21},
	}
	for _, c := range cases {
		s := style10()
		s.Spacing = c.spacing
		if got := LineHeight(s); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("档位 %q 的行高 %g != %g", c.spacing, got, c.want)
		}
	}
}

func TestFontDescriptorDeterministic(t *testing.T) {
	s := RichTextStyle{Size: 14 * PtToMm, Bold: true, Italic: true, Family: "Heading"}
	want := "italic bold 14.00pt Heading"
	if got := FontDescriptor(s); got != want {
		t.Fatalf("字体描述串 %q != %q", got, want)
	}
	// 与宽度无关的字段不影响描述串
	s.Color = "#ff0000"
	s.Align = AlignCenter
	if got := FontDescriptor(s); got != want {
		t.Fatalf("无关字段改变了描述串: %q", got)
	}
}

func TestFontDescriptorDefaults(t *testing.T) {
	if got := FontDescriptor(RichTextStyle{}); got != "12.00pt Body" {
		t.Fatalf("默认描述串不符: %q", got)
	}
}

func TestParseLength(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"40", 40},
		{"14pt", 14 * PtToMm},
		{"2.5cm", 25},
		{"1in", 25.4},
		{" 3 mm ", 3},
	}
	for _, c := range cases {
		got, err := ParseLength(c.in)
		if err != nil {
			t.Fatalf("解析 %q 失败: %v", c.in, err)
		}
		if math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("解析 %q 得到 %g，期望 %g", c.in, got, c.want)
		}
	}
	for _, bad := range []string{"", "abc", "12px"} {
		if _, err := ParseLength(bad); err == nil {
			t.Fatalf("解析 %q 应报错", bad)
		}
	}
}
