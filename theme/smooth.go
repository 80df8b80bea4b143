package theme

import "math"

// 该文件给出每种形状的固定公式平滑路径。除了作为默认主题的输出，
// 它也是草图生成失败时的兜底：渲染宁可退化为平滑轮廓，也不允许整页中断。

// Smooth 是固定公式的平滑路径生成器。
type Smooth struct{}

var _ PathGenerator = Smooth{}

// Path 实现 PathGenerator。平滑路径与种子无关。
func (Smooth) Path(kind ShapeKind, w, h float64, _ int64) (string, error) {
	return SmoothPath(kind, w, h), nil
}

// SmoothPath 返回 kind 在 w×h 包围盒内的平滑路径；
// 未知形状退化为矩形，保证总有可绘制的输出。
func SmoothPath(kind ShapeKind, w, h float64) string {
	var p pathBuilder
	switch kind {
	case ShapeRect:
		p.moveTo(0, 0)
		p.lineTo(w, 0)
		p.lineTo(w, h)
		p.lineTo(0, h)
		p.close()
	case ShapeCircle:
		p.ellipse(w/2, h/2, w/2, h/2)
	case ShapeLine:
		p.moveTo(0, 0)
		p.lineTo(w, h)
	case ShapeHeart:
		heartOutline(&p, w, h)
	case ShapeStar:
		starOutline(&p, w, h)
	case ShapeBubble:
		bubbleOutline(&p, w, h)
	case ShapePaw:
		pawOutline(&p, w, h, false)
	case ShapePawAlt:
		pawOutline(&p, w, h, true)
	case ShapeSmiley:
		smileyOutline(&p, w, h)
	default:
		p.moveTo(0, 0)
		p.lineTo(w, 0)
		p.lineTo(w, h)
		p.lineTo(0, h)
		p.close()
	}
	return p.String()
}

func heartOutline(p *pathBuilder, w, h float64) {
	// 底尖在 (w/2, h)，两瓣由对称的三次曲线构成。
	p.moveTo(w/2, h)
	p.curveTo(-0.10*w, 0.62*h, 0.02*w, -0.08*h, w/2, 0.30*h)
	p.curveTo(0.98*w, -0.08*h, 1.10*w, 0.62*h, w/2, h)
	p.close()
}

func starOutline(p *pathBuilder, w, h float64) {
	const points = 5
	const innerRatio = 0.42
	cx, cy := w/2, h/2
	for i := 0; i < points*2; i++ {
		angle := -math.Pi/2 + float64(i)*math.Pi/points
		rx, ry := w/2, h/2
		if i%2 == 1 {
			rx *= innerRatio
			ry *= innerRatio
		}
		x := cx + rx*math.Cos(angle)
		y := cy + ry*math.Sin(angle)
		if i == 0 {
			p.moveTo(x, y)
		} else {
			p.lineTo(x, y)
		}
	}
	p.close()
}

func bubbleOutline(p *pathBuilder, w, h float64) {
	// 上 3/4 为圆角矩形，左下伸出说话的尾巴。
	body := 0.75 * h
	r := math.Min(w, body) * 0.15
	p.moveTo(r, 0)
	p.lineTo(w-r, 0)
	p.quadTo(w, 0, w, r)
	p.lineTo(w, body-r)
	p.quadTo(w, body, w-r, body)
	p.lineTo(0.42*w, body)
	p.lineTo(0.22*w, h)
	p.lineTo(0.28*w, body)
	p.lineTo(r, body)
	p.quadTo(0, body, 0, body-r)
	p.lineTo(0, r)
	p.quadTo(0, 0, r, 0)
	p.close()
}

func pawOutline(p *pathBuilder, w, h float64, alt bool) {
	// 大掌垫加脚趾；alt 变体为四趾展开。
	p.ellipse(0.50*w, 0.70*h, 0.32*w, 0.28*h)
	if alt {
		p.ellipse(0.14*w, 0.38*h, 0.10*w, 0.13*h)
		p.ellipse(0.38*w, 0.18*h, 0.10*w, 0.13*h)
		p.ellipse(0.62*w, 0.18*h, 0.10*w, 0.13*h)
		p.ellipse(0.86*w, 0.38*h, 0.10*w, 0.13*h)
	} else {
		p.ellipse(0.22*w, 0.26*h, 0.11*w, 0.14*h)
		p.ellipse(0.50*w, 0.15*h, 0.11*w, 0.14*h)
		p.ellipse(0.78*w, 0.26*h, 0.11*w, 0.14*h)
	}
}

func smileyOutline(p *pathBuilder, w, h float64) {
	p.ellipse(w/2, h/2, w/2, h/2)
	p.ellipse(0.34*w, 0.38*h, 0.06*w, 0.08*h)
	p.ellipse(0.66*w, 0.38*h, 0.06*w, 0.08*h)
	p.moveTo(0.28*w, 0.60*h)
	p.curveTo(0.38*w, 0.80*h, 0.62*w, 0.80*h, 0.72*w, 0.60*h)
}
