package layout

import (
	"math"
	"testing"
)

func TestComposeInlineSharedFlow(t *testing.T) {
	qs := RichTextStyle{Size: 8, Bold: true}
	as := RichTextStyle{Size: 8}
	res, err := ComposeInline("What is your name?", "Momo", qs, as,
		InlineOptions{Width: 200, Height: 40, Padding: 10}, nil)
	if err != nil {
		t.Fatalf("行内组合失败: %v", err)
	}
	if len(res.Lines) != 1 {
		t.Fatalf("问答应排入同一行，得到 %d 行", len(res.Lines))
	}
	if len(res.Runs) != 2 {
		t.Fatalf("样式切换处应拆成 2 个 Run，得到 %d", len(res.Runs))
	}
	if !res.Runs[0].Style.Bold || res.Runs[1].Style.Bold {
		t.Fatal("Run 的样式归属不符")
	}
	if res.Runs[0].Text != "What is your name?" || res.Runs[1].Text != "Momo" {
		t.Fatalf("Run 内容不符: %q / %q", res.Runs[0].Text, res.Runs[1].Text)
	}
	// 答案紧跟问题与分隔空格之后：8×0.55×18 个字符 + 一个空格
	wantX := 10 + 8*0.55*float64(len("What is your name?")+1)
	if math.Abs(res.Runs[1].X-wantX) > 1e-9 {
		t.Fatalf("答案起始 X %g != %g", res.Runs[1].X, wantX)
	}
	// 两个 Run 共享同一条基线
	if res.Runs[0].Y != res.Runs[1].Y {
		t.Fatalf("同行 Run 的基线不一致: %g / %g", res.Runs[0].Y, res.Runs[1].Y)
	}
	if math.Abs(res.Height-LineHeight(qs)) > 1e-9 {
		t.Fatalf("单行高度 %g != %g", res.Height, LineHeight(qs))
	}
}

func TestComposeInlineKeepsQuestionAnswerRunsApart(t *testing.T) {
	// 问与答样式完全相同也不得合并：两者是语义独立的 Run
	s := RichTextStyle{Size: 14 * PtToMm}
	res, err := ComposeInline("What is your name?", "My name is John", s, s,
		InlineOptions{Width: 200, Height: 80, Padding: 10}, nil)
	if err != nil {
		t.Fatalf("行内组合失败: %v", err)
	}
	if len(res.Runs) != 2 {
		t.Fatalf("同样式的问答应保持 2 个 Run，得到 %d: %+v", len(res.Runs), res.Runs)
	}
	if res.Runs[0].Text != "What is your name?" || res.Runs[1].Text != "My name is John" {
		t.Fatalf("Run 的问答归属不符: %q / %q", res.Runs[0].Text, res.Runs[1].Text)
	}
}

func TestComposeInlineEmpty(t *testing.T) {
	qs := RichTextStyle{Size: 10}
	res, err := ComposeInline("", "", qs, qs, InlineOptions{Width: 100, Height: 30}, nil)
	if err != nil {
		t.Fatalf("空输入不应失败: %v", err)
	}
	if len(res.Runs) != 1 || res.Runs[0].Text != "" {
		t.Fatalf("空输入应保留一个空 Run: %+v", res.Runs)
	}
	if len(res.Lines) != 1 {
		t.Fatalf("空输入应保留一行，得到 %d", len(res.Lines))
	}
}

func TestComposeInlineWrapsAnswer(t *testing.T) {
	qs := RichTextStyle{Size: 10, Bold: true}
	as := RichTextStyle{Size: 10}
	// 内区宽 40，问题 "Q:" 宽 11，答案单词各 22：第二个答案词折到下一行
	res, err := ComposeInline("Q:", "aaaa bbbb", qs, as,
		InlineOptions{Width: 40, Height: 60}, nil)
	if err != nil {
		t.Fatalf("行内组合失败: %v", err)
	}
	if len(res.Lines) != 2 {
		t.Fatalf("期望折成 2 行，得到 %d 行", len(res.Lines))
	}
	last := res.Runs[len(res.Runs)-1]
	if last.Text != "bbbb" {
		t.Fatalf("折行后的末 Run 不符: %q", last.Text)
	}
	if last.Y <= res.Runs[0].Y {
		t.Fatal("次行基线应低于首行")
	}
}

func TestComposeInlineCustomSeparator(t *testing.T) {
	qs := RichTextStyle{Size: 10, Bold: true}
	as := RichTextStyle{Size: 10}
	res, err := ComposeInline("Age", "7", qs, as,
		InlineOptions{Width: 200, Height: 40, Separator: ": "}, nil)
	if err != nil {
		t.Fatalf("行内组合失败: %v", err)
	}
	if res.Runs[0].Text != "Age:" {
		t.Fatalf("分隔串未并入问题: %q", res.Runs[0].Text)
	}
}

func TestComposeInlineContract(t *testing.T) {
	qs := RichTextStyle{Size: 10}
	cases := []InlineOptions{
		{Width: 0, Height: 40},
		{Width: 100, Height: -1},
		{Width: 100, Height: 40, Padding: -2},
		{Width: 100, Height: 40, Padding: 60},
	}
	for i, opts := range cases {
		if _, err := ComposeInline("q", "a", qs, qs, opts, nil); err == nil {
			t.Fatalf("用例 %d 应报错: %+v", i, opts)
		}
	}
}

func TestComposeBlockAreasDisjoint(t *testing.T) {
	qs := RichTextStyle{Size: 8, Bold: true}
	as := RichTextStyle{Size: 8}
	question := "Which moment of this trip do you want to keep forever?"
	answer := "The sunrise on the second day, all of us on the beach."
	for _, placement := range []Placement{PlacementAbove, PlacementBelow, PlacementLeft, PlacementRight} {
		for _, padding := range []float64{0, 3} {
			for _, gap := range []float64{0, 2, 5} {
				opts := BlockOptions{Width: 120, Height: 80, Padding: padding, Gap: gap, Placement: placement}
				res, err := ComposeBlock(question, answer, qs, as, opts, nil)
				if err != nil {
					t.Fatalf("%s/p=%g/g=%g 组合失败: %v", placement, padding, gap, err)
				}
				q, a := res.QuestionArea, res.AnswerArea
				if q == nil || a == nil {
					t.Fatalf("%s 未给出子区域", placement)
				}
				if q.Intersects(*a) {
					t.Fatalf("%s/p=%g/g=%g 问答区域重叠: %+v %+v", placement, padding, gap, q, a)
				}
				for _, r := range []*Rect{q, a} {
					if r.X < padding-1e-9 || r.Y < padding-1e-9 ||
						r.X+r.W > opts.Width-padding+1e-9 || r.Y+r.H > opts.Height-padding+1e-9 {
						t.Fatalf("%s/p=%g/g=%g 区域越出内区: %+v", placement, padding, gap, r)
					}
				}
			}
		}
	}
}

func TestComposeBlockQuestionShare(t *testing.T) {
	qs := RichTextStyle{Size: 8}
	res, err := ComposeBlock("q", "a", qs, qs,
		BlockOptions{Width: 110, Height: 60, Padding: 5, Gap: 4, Placement: PlacementLeft}, nil)
	if err != nil {
		t.Fatalf("块状组合失败: %v", err)
	}
	// 内区宽 100，去掉间隔 4 后问题区占 40%
	if math.Abs(res.QuestionArea.W-38.4) > 1e-9 {
		t.Fatalf("问题区宽度 %g != 38.4", res.QuestionArea.W)
	}
	if math.Abs(res.AnswerArea.W-57.6) > 1e-9 {
		t.Fatalf("答案区宽度 %g != 57.6", res.AnswerArea.W)
	}
}

func TestComposeBlockBelowOrdersRunsTopFirst(t *testing.T) {
	qs := RichTextStyle{Size: 8, Bold: true}
	as := RichTextStyle{Size: 8}
	res, err := ComposeBlock("question", "answer", qs, as,
		BlockOptions{Width: 100, Height: 60, Placement: PlacementBelow}, nil)
	if err != nil {
		t.Fatalf("块状组合失败: %v", err)
	}
	if res.Runs[0].Style.Bold {
		t.Fatal("below 摆放时答案 Run 应在前")
	}
	if res.AnswerArea.Y >= res.QuestionArea.Y {
		t.Fatal("below 摆放时答案区应在上方")
	}
}

func TestComposeBlockGapTooLarge(t *testing.T) {
	qs := RichTextStyle{Size: 8}
	if _, err := ComposeBlock("q", "a", qs, qs,
		BlockOptions{Width: 100, Height: 20, Gap: 30, Placement: PlacementAbove}, nil); err == nil {
		t.Fatal("间隔超过可用高度应报错")
	}
	if _, err := ComposeBlock("q", "a", qs, qs,
		BlockOptions{Width: 100, Height: 20, Gap: 30, Placement: "diagonal"}, nil); err == nil {
		t.Fatal("未知摆放方式应报错")
	}
}

func TestComposeBlockQuestionHeightCapped(t *testing.T) {
	qs := RichTextStyle{Size: 10}
	longQuestion := "one two three four five six seven eight nine ten eleven twelve"
	res, err := ComposeBlock(longQuestion, "a", qs, qs,
		BlockOptions{Width: 60, Height: 50, Placement: PlacementAbove}, nil)
	if err != nil {
		t.Fatalf("块状组合失败: %v", err)
	}
	// 问题自然高度超过可用高度一半时被截到一半
	if math.Abs(res.QuestionArea.H-25) > 1e-9 {
		t.Fatalf("问题区高度 %g != 25", res.QuestionArea.H)
	}
}
