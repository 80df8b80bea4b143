package layout

import (
	"math"
	"reflect"
	"testing"
)

// style10 的估算字符宽度为 10×0.55=5.5mm，便于手算预期值。
func style10() RichTextStyle { return RichTextStyle{Size: 10} }

func wrapLines(t *testing.T, text string, maxWidth float64) []Line {
	t.Helper()
	lines, err := WrapText(text, style10(), maxWidth, nil)
	if err != nil {
		t.Fatalf("折行失败: %v", err)
	}
	return lines
}

func TestWrapTextGreedy(t *testing.T) {
	lines := wrapLines(t, "aa bb cc", 30)
	if len(lines) != 2 {
		t.Fatalf("期望 2 行，得到 %d 行: %v", len(lines), lines)
	}
	if lines[0].Text != "aa bb" || lines[1].Text != "cc" {
		t.Fatalf("贪心折行结果不符: %q / %q", lines[0].Text, lines[1].Text)
	}
}

func TestWrapTextLongWordKeptWhole(t *testing.T) {
	lines := wrapLines(t, "x abcdefgh y", 20)
	if len(lines) != 3 {
		t.Fatalf("期望 3 行，得到 %d 行: %v", len(lines), lines)
	}
	// 超宽单词独占一行且不被拆开
	if lines[1].Text != "abcdefgh" {
		t.Fatalf("超宽单词被改写: %q", lines[1].Text)
	}
	if lines[1].Width <= 20 {
		t.Fatalf("超宽单词的宽度应超出限宽，得到 %g", lines[1].Width)
	}
}

func TestWrapTextEmptyReturnsOneLine(t *testing.T) {
	lines := wrapLines(t, "", 100)
	if len(lines) != 1 {
		t.Fatalf("空文本应返回恰好一行，得到 %d 行", len(lines))
	}
	if lines[0].Text != "" || lines[0].Width != 0 {
		t.Fatalf("空行内容不符: %+v", lines[0])
	}
}

func TestWrapTextForcedBreaks(t *testing.T) {
	lines := wrapLines(t, "a\n\nb", 100)
	want := []string{"a", "", "b"}
	if len(lines) != len(want) {
		t.Fatalf("期望 %d 行，得到 %d 行", len(want), len(lines))
	}
	for i, w := range want {
		if lines[i].Text != w {
			t.Fatalf("第 %d 行不符: %q != %q", i, lines[i].Text, w)
		}
	}
}

func TestWrapTextStripsCarriageReturn(t *testing.T) {
	lines := wrapLines(t, "a\r\nb", 100)
	if len(lines) != 2 || lines[0].Text != "a" || lines[1].Text != "b" {
		t.Fatalf("\\r 未被忽略: %v", lines)
	}
}

func TestWrapTextZeroWidthUnbounded(t *testing.T) {
	lines := wrapLines(t, "a b c d e f g h", 0)
	if len(lines) != 1 {
		t.Fatalf("不限宽时应只有一行，得到 %d 行", len(lines))
	}
}

func TestWrapTextNegativeWidth(t *testing.T) {
	if _, err := WrapText("abc", style10(), -1, nil); err == nil {
		t.Fatal("负限宽应报错")
	}
}

func TestWrapTextDeterministic(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog"
	a, err := WrapText(text, style10(), 60, nil)
	if err != nil {
		t.Fatalf("折行失败: %v", err)
	}
	b, err := WrapText(text, style10(), 60, nil)
	if err != nil {
		t.Fatalf("折行失败: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("相同入参的两次折行结果不一致")
	}
}

func TestFlowTextBaselines(t *testing.T) {
	res, err := FlowText("aa bb cc", style10(), Rect{X: 5, Y: 7, W: 30, H: 100}, nil)
	if err != nil {
		t.Fatalf("排版失败: %v", err)
	}
	if len(res.Runs) != 2 {
		t.Fatalf("期望 2 个 Run，得到 %d", len(res.Runs))
	}
	// 行高 10×1.4=14，基线在行顶向下 10×0.8=8 处
	wantY := []float64{7 + 8, 7 + 14 + 8}
	for i, run := range res.Runs {
		if math.Abs(run.Y-wantY[i]) > 1e-9 {
			t.Fatalf("第 %d 个 Run 的基线 %g != %g", i, run.Y, wantY[i])
		}
		if run.X != 5 {
			t.Fatalf("左对齐的起始 X 应为 5，得到 %g", run.X)
		}
	}
	if math.Abs(res.Height-28) > 1e-9 {
		t.Fatalf("内容高度 %g != 28", res.Height)
	}
}

func TestFlowTextNegativeBounds(t *testing.T) {
	if _, err := FlowText("a", style10(), Rect{W: -1, H: 10}, nil); err == nil {
		t.Fatal("负尺寸区域应报错")
	}
}
