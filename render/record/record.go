// Package record 提供一个把绘制指令记录为类型化操作序列的 Surface。
// 记录结果可按序检查，是离屏测试与交互端指令回放的公共地基：
// 引擎对任何 Surface 的输出序列一致，断言记录序列即断言渲染语义。
package record

import (
	"image"

	"github.com/ByLCY/folio/layout"
	"github.com/ByLCY/folio/render"
)

// OpKind 标识一次被记录的绘制操作。
type OpKind uint8

const (
	OpPush OpKind = iota
	OpPop
	OpPath
	OpRuns
	OpImage
)

var opNames = [...]string{
	OpPush:  "Push",
	OpPop:   "Pop",
	OpPath:  "Path",
	OpRuns:  "Runs",
	OpImage: "Image",
}

// String 返回操作种类名。
func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return "Unknown"
}

// Op 是一条被记录的绘制操作，按种类填充对应字段。
type Op struct {
	Kind OpKind

	// Push
	CX, CY, Rotation float64

	// Path / Image 共用的定位
	X, Y float64

	// Path
	D     string
	Paint render.Paint

	// Runs
	Runs []layout.TextRun

	// Image
	W, H    float64
	Img     image.Image
	Opacity float64
}

// Surface 记录所有收到的绘制指令，顺序即引擎的发出顺序。
// 非并发安全。
type Surface struct {
	Ops []Op
}

var _ render.Surface = (*Surface)(nil)

// New 返回一个空的记录面。
func New() *Surface {
	return &Surface{}
}

// PushTransform 实现 render.Surface。
func (s *Surface) PushTransform(cx, cy, rotation float64) {
	s.Ops = append(s.Ops, Op{Kind: OpPush, CX: cx, CY: cy, Rotation: rotation})
}

// Pop 实现 render.Surface。
func (s *Surface) Pop() {
	s.Ops = append(s.Ops, Op{Kind: OpPop})
}

// DrawPath 实现 render.Surface。
func (s *Surface) DrawPath(x, y float64, d string, p render.Paint) {
	s.Ops = append(s.Ops, Op{Kind: OpPath, X: x, Y: y, D: d, Paint: p})
}

// DrawRuns 实现 render.Surface。记录保存 Run 切片的一份拷贝，
// 调用方之后复用底层数组不会污染记录。
func (s *Surface) DrawRuns(runs []layout.TextRun) {
	copied := make([]layout.TextRun, len(runs))
	copy(copied, runs)
	s.Ops = append(s.Ops, Op{Kind: OpRuns, Runs: copied})
}

// DrawImage 实现 render.Surface。
func (s *Surface) DrawImage(x, y, w, h float64, img image.Image, opacity float64) {
	s.Ops = append(s.Ops, Op{Kind: OpImage, X: x, Y: y, W: w, H: h, Img: img, Opacity: opacity})
}

// Reset 清空已记录的操作。
func (s *Surface) Reset() {
	s.Ops = s.Ops[:0]
}

// PathOps 返回全部路径绘制操作，测试断言常用。
func (s *Surface) PathOps() []Op {
	return s.byKind(OpPath)
}

// RunOps 返回全部文本绘制操作。
func (s *Surface) RunOps() []Op {
	return s.byKind(OpRuns)
}

func (s *Surface) byKind(k OpKind) []Op {
	var out []Op
	for _, op := range s.Ops {
		if op.Kind == k {
			out = append(out, op)
		}
	}
	return out
}
