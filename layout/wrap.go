package layout

import (
	"fmt"
	"strings"
)

// Line 表示折行后的一行文本与其测量宽度（mm）。
type Line struct {
	Text  string
	Width float64
}

// WrapText 使用贪心算法按空白折行。契约：
//   - 超出 maxWidth 的单词独占一行，不做词内硬切（可读性优先于严格限宽）；
//   - 空文本返回恰好一个空行而非零行，调用方总能据此预留一行高度；
//   - 显式 \n 强制换行，\r 被忽略；
//   - maxWidth 为负视为上游契约破坏，直接报错；为 0 表示不限宽。
//
// 函数对相同入参返回相同结果，不读取任何环境状态。
func WrapText(text string, style RichTextStyle, maxWidth float64, m Measurer) ([]Line, error) {
	if maxWidth < 0 {
		return nil, fmt.Errorf("layout: 非法的折行宽度 %g", maxWidth)
	}
	limit := maxWidth
	if limit == 0 {
		limit = maxFloat
	}

	var lines []Line
	emit := func(words []string) {
		content := strings.Join(words, " ")
		lines = append(lines, Line{Text: content, Width: MeasureText(content, style, m)})
	}

	for _, paragraph := range strings.Split(strings.ReplaceAll(text, "\r", ""), "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, Line{Text: "", Width: 0})
			continue
		}
		var current []string
		currentWidth := 0.0
		spaceWidth := MeasureText(" ", style, m)
		for _, word := range words {
			wordWidth := MeasureText(word, style, m)
			if len(current) == 0 {
				current = append(current, word)
				currentWidth = wordWidth
				continue
			}
			if currentWidth+spaceWidth+wordWidth > limit {
				emit(current)
				current = []string{word}
				currentWidth = wordWidth
				continue
			}
			current = append(current, word)
			currentWidth += spaceWidth + wordWidth
		}
		if len(current) > 0 {
			emit(current)
		}
	}

	if len(lines) == 0 {
		lines = []Line{{Text: "", Width: 0}}
	}
	return lines, nil
}

const maxFloat = 1e306
