package theme

import (
	"fmt"
	"math"
	"math/rand"
)

// 该文件实现手绘风格的路径生成。所有随机量都来自以元素种子初始化的本地
// 随机源，绝不读取全局随机数——同一 (种子, 形状, 尺寸) 的两次调用，
// 无论发生在交互端还是无头导出端，都必须产出逐字节相同的路径。

// Sketcher 以抖动折线模拟手绘轮廓。
type Sketcher struct {
	// Roughness 控制抖动幅度，0 或负值时退化为平滑路径。
	Roughness float64
	// Passes 为描边重复次数，手绘主题通常叠两道线；小于 1 时按 1 处理。
	Passes int
}

var _ PathGenerator = (*Sketcher)(nil)

type point struct{ x, y float64 }

type subpath struct {
	points []point
	closed bool
}

// Path 实现 PathGenerator。
func (s *Sketcher) Path(kind ShapeKind, w, h float64, seed int64) (string, error) {
	// 线条允许退化为水平或垂直（一个维度为 0），其余形状要求正尺寸。
	if kind == ShapeLine {
		if w <= 0 && h <= 0 {
			return "", fmt.Errorf("theme: 非法的形状尺寸 %gx%g", w, h)
		}
		if w < 0 || h < 0 {
			return "", fmt.Errorf("theme: 非法的形状尺寸 %gx%g", w, h)
		}
	} else if w <= 0 || h <= 0 {
		return "", fmt.Errorf("theme: 非法的形状尺寸 %gx%g", w, h)
	}
	if !kind.Valid() {
		return "", fmt.Errorf("theme: 未知的形状 %q", kind)
	}
	if s.Roughness <= 0 {
		return SmoothPath(kind, w, h), nil
	}

	rng := rand.New(rand.NewSource(seed))
	amplitude := jitterAmplitude(s.Roughness, w, h)
	passes := s.Passes
	if passes < 1 {
		passes = 1
	}

	var p pathBuilder
	outline := sketchOutline(kind, w, h)
	for pass := 0; pass < passes; pass++ {
		for _, sp := range outline {
			sketchSubpath(&p, sp, amplitude, rng)
		}
	}
	return p.String(), nil
}

// jitterAmplitude 将粗糙度换算为抖动幅度（mm），并限制在可用范围内，
// 避免小元素被抖成一团。
func jitterAmplitude(roughness, w, h float64) float64 {
	a := roughness * 0.015 * math.Min(w, h)
	return math.Min(math.Max(a, 0.15), 2.0)
}

// sketchSubpath 逐边输出抖动后的二次曲线：控制点取抖动中点，
// 端点也带少量偏移，两道叠线时各自使用后续的随机量。
func sketchSubpath(p *pathBuilder, sp subpath, amplitude float64, rng *rand.Rand) {
	pts := sp.points
	if len(pts) < 2 {
		return
	}
	jitter := func(pt point) point {
		return point{
			x: pt.x + (rng.Float64()*2-1)*amplitude,
			y: pt.y + (rng.Float64()*2-1)*amplitude,
		}
	}
	start := jitter(pts[0])
	p.moveTo(start.x, start.y)
	prev := pts[0]
	for i := 1; i < len(pts); i++ {
		mid := jitter(point{x: (prev.x + pts[i].x) / 2, y: (prev.y + pts[i].y) / 2})
		next := jitter(pts[i])
		p.quadTo(mid.x, mid.y, next.x, next.y)
		prev = pts[i]
	}
	if sp.closed {
		mid := jitter(point{x: (prev.x + pts[0].x) / 2, y: (prev.y + pts[0].y) / 2})
		p.quadTo(mid.x, mid.y, start.x, start.y)
		p.close()
	}
}

// sketchOutline 给出形状的折线近似，供抖动使用。
// 与 SmoothPath 的 switch 保持同样的穷尽范围。
func sketchOutline(kind ShapeKind, w, h float64) []subpath {
	switch kind {
	case ShapeRect:
		return []subpath{{closed: true, points: []point{{0, 0}, {w, 0}, {w, h}, {0, h}}}}
	case ShapeCircle:
		return []subpath{{closed: true, points: ellipsePoints(w/2, h/2, w/2, h/2, 16)}}
	case ShapeLine:
		return []subpath{{points: []point{{0, 0}, {w / 4, h / 4}, {w / 2, h / 2}, {3 * w / 4, 3 * h / 4}, {w, h}}}}
	case ShapeHeart:
		return []subpath{{closed: true, points: heartPoints(w, h, 24)}}
	case ShapeStar:
		return []subpath{{closed: true, points: starPoints(w, h)}}
	case ShapeBubble:
		body := 0.75 * h
		return []subpath{{closed: true, points: []point{
			{0, 0}, {w, 0}, {w, body},
			{0.42 * w, body}, {0.22 * w, h}, {0.28 * w, body},
			{0, body},
		}}}
	case ShapePaw:
		return pawSubpaths(w, h, false)
	case ShapePawAlt:
		return pawSubpaths(w, h, true)
	case ShapeSmiley:
		return []subpath{
			{closed: true, points: ellipsePoints(w/2, h/2, w/2, h/2, 16)},
			{closed: true, points: ellipsePoints(0.34*w, 0.38*h, 0.06*w, 0.08*h, 8)},
			{closed: true, points: ellipsePoints(0.66*w, 0.38*h, 0.06*w, 0.08*h, 8)},
			{points: smilePoints(w, h, 6)},
		}
	default:
		return []subpath{{closed: true, points: []point{{0, 0}, {w, 0}, {w, h}, {0, h}}}}
	}
}

func ellipsePoints(cx, cy, rx, ry float64, n int) []point {
	pts := make([]point, 0, n)
	for i := 0; i < n; i++ {
		a := float64(i) / float64(n) * 2 * math.Pi
		pts = append(pts, point{x: cx + rx*math.Cos(a), y: cy + ry*math.Sin(a)})
	}
	return pts
}

// heartPoints 采样经典心形参数曲线并缩放到 w×h 包围盒。
func heartPoints(w, h float64, n int) []point {
	pts := make([]point, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n) * 2 * math.Pi
		x := 16 * math.Pow(math.Sin(t), 3)
		y := 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)
		// 参数曲线范围约 x∈[-16,16]、y∈[-17,12]，翻转 y 并归一化。
		pts = append(pts, point{
			x: (x + 16) / 32 * w,
			y: (12 - y) / 29 * h,
		})
	}
	return pts
}

func starPoints(w, h float64) []point {
	const points = 5
	const innerRatio = 0.42
	cx, cy := w/2, h/2
	pts := make([]point, 0, points*2)
	for i := 0; i < points*2; i++ {
		angle := -math.Pi/2 + float64(i)*math.Pi/points
		rx, ry := w/2, h/2
		if i%2 == 1 {
			rx *= innerRatio
			ry *= innerRatio
		}
		pts = append(pts, point{x: cx + rx*math.Cos(angle), y: cy + ry*math.Sin(angle)})
	}
	return pts
}

func pawSubpaths(w, h float64, alt bool) []subpath {
	out := []subpath{{closed: true, points: ellipsePoints(0.50*w, 0.70*h, 0.32*w, 0.28*h, 12)}}
	if alt {
		out = append(out,
			subpath{closed: true, points: ellipsePoints(0.14*w, 0.38*h, 0.10*w, 0.13*h, 8)},
			subpath{closed: true, points: ellipsePoints(0.38*w, 0.18*h, 0.10*w, 0.13*h, 8)},
			subpath{closed: true, points: ellipsePoints(0.62*w, 0.18*h, 0.10*w, 0.13*h, 8)},
			subpath{closed: true, points: ellipsePoints(0.86*w, 0.38*h, 0.10*w, 0.13*h, 8)},
		)
	} else {
		out = append(out,
			subpath{closed: true, points: ellipsePoints(0.22*w, 0.26*h, 0.11*w, 0.14*h, 8)},
			subpath{closed: true, points: ellipsePoints(0.50*w, 0.15*h, 0.11*w, 0.14*h, 8)},
			subpath{closed: true, points: ellipsePoints(0.78*w, 0.26*h, 0.11*w, 0.14*h, 8)},
		)
	}
	return out
}

func smilePoints(w, h float64, n int) []point {
	// 采样 SmoothPath 中微笑曲线对应的三次贝塞尔。
	p0 := point{0.28 * w, 0.60 * h}
	c1 := point{0.38 * w, 0.80 * h}
	c2 := point{0.62 * w, 0.80 * h}
	p1 := point{0.72 * w, 0.60 * h}
	pts := make([]point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		u := 1 - t
		pts = append(pts, point{
			x: u*u*u*p0.x + 3*u*u*t*c1.x + 3*u*t*t*c2.x + t*t*t*p1.x,
			y: u*u*u*p0.y + 3*u*u*t*c1.y + 3*u*t*t*c2.y + t*t*t*p1.y,
		})
	}
	return pts
}
