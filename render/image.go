package render

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/ByLCY/folio/page"
)

// mmPerPx 为按 96dpi 折算的像素物理尺寸，repeat 模式按图片原始大小平铺时使用。
const mmPerPx = 25.4 / 96

// FileLoader 从文件系统读取图片，相对路径基于 BaseDir 解析。
type FileLoader struct {
	BaseDir string
}

var _ ImageLoader = FileLoader{}

// Load 实现 ImageLoader。
func (l FileLoader) Load(src string) (image.Image, error) {
	path := src
	if !filepath.IsAbs(path) {
		if l.BaseDir == "" {
			return nil, fmt.Errorf("render: 未指定资源目录时不允许使用相对路径 %s", src)
		}
		path = filepath.Join(l.BaseDir, path)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("render: 读取图片 %s 失败: %w", src, err)
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("render: 解码图片 %s 失败: %w", src, err)
	}
	return img, nil
}

// MemoryLoader 从内存提供图片，测试与内置资源使用。
type MemoryLoader map[string]image.Image

var _ ImageLoader = MemoryLoader{}

// Load 实现 ImageLoader。
func (l MemoryLoader) Load(src string) (image.Image, error) {
	if img, ok := l[src]; ok {
		return img, nil
	}
	return nil, fmt.Errorf("render: 找不到图片资源 %s", src)
}

// renderImage 绘制图片元素。加载失败是环境性问题：记录诊断后跳过，
// 该区域保持透明，整页渲染继续。
func (c *Compositor) renderImage(s Surface, el *page.Element) {
	img := c.loadImage(el.Image.Src, el.ID)
	if img == nil {
		return
	}
	opacity := el.Image.Opacity
	if opacity <= 0 || opacity > 1 {
		opacity = 1
	}
	drawFitted(s, img, el.X, el.Y, el.Width, el.Height,
		el.Image.Fit, el.Image.CropX, el.Image.CropY, opacity)
}

func (c *Compositor) loadImage(src, owner string) image.Image {
	if c.Images == nil {
		Logger().Warn("未注入图片加载器，图片被跳过", "src", src, "owner", owner)
		return nil
	}
	img, err := c.Images.Load(src)
	if err != nil {
		Logger().Warn("图片加载失败，区域保持透明", "src", src, "owner", owner, "err", err)
		return nil
	}
	return img
}

// drawFitted 按适配模式把图片绘制到目标矩形。
//   - cover：等比放大铺满，裁剪溢出部分，裁剪原点由 cropX/cropY（0..1）决定；
//   - contain：等比缩小完整可见，空白处由 cropX/cropY 决定对齐；
//   - repeat：按图片原始尺寸平铺。
func drawFitted(s Surface, img image.Image, x, y, w, h float64, fit string, cropX, cropY, opacity float64) {
	bounds := img.Bounds()
	imgW := float64(bounds.Dx())
	imgH := float64(bounds.Dy())
	if imgW <= 0 || imgH <= 0 || w <= 0 || h <= 0 {
		return
	}
	cropX = clamp01(cropX)
	cropY = clamp01(cropY)

	switch fit {
	case "contain":
		scale := math.Min(w/imgW, h/imgH)
		dw, dh := imgW*scale, imgH*scale
		s.DrawImage(x+cropX*(w-dw), y+cropY*(h-dh), dw, dh, img, opacity)
	case "repeat":
		tileW := imgW * mmPerPx
		tileH := imgH * mmPerPx
		if tileW <= 0 || tileH <= 0 {
			return
		}
		for ty := 0.0; ty < h; ty += tileH {
			for tx := 0.0; tx < w; tx += tileW {
				s.DrawImage(x+tx, y+ty, math.Min(tileW, w-tx), math.Min(tileH, h-ty),
					cropImage(img, math.Min(tileW, w-tx)/tileW, math.Min(tileH, h-ty)/tileH), opacity)
			}
		}
	default: // cover
		scale := math.Max(w/imgW, h/imgH)
		visW := w / scale
		visH := h / scale
		sx := bounds.Min.X + int(cropX*(imgW-visW))
		sy := bounds.Min.Y + int(cropY*(imgH-visH))
		sub := subImage(img, image.Rect(sx, sy, sx+int(visW), sy+int(visH)))
		s.DrawImage(x, y, w, h, sub, opacity)
	}
}

// cropImage 截取图片左上角的比例区域（repeat 模式的边缘瓦片）。
func cropImage(img image.Image, fx, fy float64) image.Image {
	if fx >= 1 && fy >= 1 {
		return img
	}
	b := img.Bounds()
	return subImage(img, image.Rect(b.Min.X, b.Min.Y,
		b.Min.X+int(float64(b.Dx())*fx), b.Min.Y+int(float64(b.Dy())*fy)))
}

func subImage(img image.Image, r image.Rectangle) image.Image {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return img
	}
	if si, ok := img.(interface {
		SubImage(image.Rectangle) image.Image
	}); ok {
		return si.SubImage(r)
	}
	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), img, r.Min, draw.Src)
	return out
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
