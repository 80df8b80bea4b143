package render

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
	}{
		{"#ffffff", color.RGBA{255, 255, 255, 255}},
		{"#1e1e1e", color.RGBA{30, 30, 30, 255}},
		{"#f0a", color.RGBA{255, 0, 170, 255}},
		{"#00000033", color.RGBA{0, 0, 0, 51}},
		{" #e07a5f ", color.RGBA{224, 122, 95, 255}},
	}
	for _, c := range cases {
		got, err := ParseHexColor(c.in)
		if err != nil {
			t.Fatalf("解析 %q 失败: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("解析 %q 得到 %+v，期望 %+v", c.in, got, c.want)
		}
	}
	for _, bad := range []string{"", "#ff", "#fffff", "red", "#zzzzzz", "#gg0011", "#0000001g"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Fatalf("解析 %q 应报错", bad)
		}
	}
}
