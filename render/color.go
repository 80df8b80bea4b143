package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHexColor 解析 #rgb/#rrggbb/#rrggbbaa 形式的颜色。
func ParseHexColor(value string) (color.RGBA, error) {
	v := strings.TrimPrefix(strings.TrimSpace(value), "#")
	switch len(v) {
	case 3:
		v = strings.Repeat(string(v[0]), 2) +
			strings.Repeat(string(v[1]), 2) +
			strings.Repeat(string(v[2]), 2)
	case 6, 8:
	default:
		return color.RGBA{}, fmt.Errorf("render: 颜色值 %q 无法解析", value)
	}
	var ch [4]uint8
	ch[3] = 255
	for i := 0; i*2 < len(v); i++ {
		n, err := strconv.ParseUint(v[i*2:i*2+2], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("render: 颜色值 %q 无法解析", value)
		}
		ch[i] = uint8(n)
	}
	return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}
