package render

import (
	"image"

	"github.com/ByLCY/folio/layout"
	"github.com/ByLCY/folio/theme"
)

// Paint 描述一次路径绘制的填充与描边属性。
// Fill/Stroke 为 #rrggbb(aa) 颜色，空字符串表示不填充/不描边。
type Paint struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
	Opacity     float64
	Dash        []float64
	Shadow      theme.Shadow
}

// Surface 是绘制指令的目标抽象。交互画布与离屏导出实现同一接口，
// 引擎的输出对两者完全一致；除对 Surface 的副作用外引擎没有返回值。
type Surface interface {
	// PushTransform 压入一层绕 (cx,cy) 旋转 rotation 度的变换。
	PushTransform(cx, cy, rotation float64)
	// Pop 弹出最近一层变换。
	Pop()
	// DrawPath 在 (x,y) 处绘制 SVG 路径。
	DrawPath(x, y float64, d string, p Paint)
	// DrawRuns 绘制一组文本 Run；Run 坐标为绝对基线位置，
	// 样式中的颜色已由渲染器按回退链补全。
	DrawRuns(runs []layout.TextRun)
	// DrawImage 将图片缩放绘制到 (x,y,w,h)。
	DrawImage(x, y, w, h float64, img image.Image, opacity float64)
}

// ImageLoader 提供图片读取能力。图片获取是环境相关的异步协作点，
// 引擎不拥有它：加载失败属于非致命错误，对应区域保持透明。
type ImageLoader interface {
	Load(src string) (image.Image, error)
}
