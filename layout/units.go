package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// 该文件提供长度单位换算。页面描述中的长度允许携带单位（mm/cm/in/pt），
// 解析后统一存为 mm。

// pt 与 mm 的换算常量。
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// ParseLength 将 "14pt"、"2.5cm"、"40"（默认 mm）等长度串解析为 mm。
// 无法解析时返回错误，调用方自行决定默认值。
func ParseLength(value string) (float64, error) {
	v := strings.TrimSpace(strings.ToLower(value))
	if v == "" {
		return 0, fmt.Errorf("layout: 长度值为空")
	}
	unit := "mm"
	num := v
	for _, suffix := range []string{"mm", "cm", "in", "pt"} {
		if strings.HasSuffix(v, suffix) {
			unit = suffix
			num = strings.TrimSpace(strings.TrimSuffix(v, suffix))
			break
		}
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("layout: 无法解析长度 %q: %w", value, err)
	}
	switch unit {
	case "cm":
		return f * 10, nil
	case "in":
		return f * 25.4, nil
	case "pt":
		return f * PtToMm, nil
	default:
		return f, nil
	}
}
