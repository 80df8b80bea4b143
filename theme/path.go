package theme

import (
	"fmt"
	"strings"
)

// pathBuilder 以固定两位小数输出 SVG 路径指令。
// 固定精度保证相同输入得到逐字节一致的路径串，这是双端一致性的前提。
type pathBuilder struct {
	b strings.Builder
}

func (p *pathBuilder) moveTo(x, y float64) {
	fmt.Fprintf(&p.b, "M%.2f %.2f", x, y)
}

func (p *pathBuilder) lineTo(x, y float64) {
	fmt.Fprintf(&p.b, "L%.2f %.2f", x, y)
}

func (p *pathBuilder) curveTo(c1x, c1y, c2x, c2y, x, y float64) {
	fmt.Fprintf(&p.b, "C%.2f %.2f %.2f %.2f %.2f %.2f", c1x, c1y, c2x, c2y, x, y)
}

func (p *pathBuilder) quadTo(cx, cy, x, y float64) {
	fmt.Fprintf(&p.b, "Q%.2f %.2f %.2f %.2f", cx, cy, x, y)
}

func (p *pathBuilder) close() {
	p.b.WriteString("Z")
}

func (p *pathBuilder) String() string { return p.b.String() }

// kappa 为四段三次贝塞尔逼近圆弧的经典系数。
const kappa = 0.5522847498

// ellipse 以四段三次曲线绘制中心 (cx,cy)、半径 (rx,ry) 的椭圆子路径。
func (p *pathBuilder) ellipse(cx, cy, rx, ry float64) {
	p.moveTo(cx+rx, cy)
	p.curveTo(cx+rx, cy+ry*kappa, cx+rx*kappa, cy+ry, cx, cy+ry)
	p.curveTo(cx-rx*kappa, cy+ry, cx-rx, cy+ry*kappa, cx-rx, cy)
	p.curveTo(cx-rx, cy-ry*kappa, cx-rx*kappa, cy-ry, cx, cy-ry)
	p.curveTo(cx+rx*kappa, cy-ry, cx+rx, cy-ry*kappa, cx+rx, cy)
	p.close()
}
