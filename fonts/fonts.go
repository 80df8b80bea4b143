// Package fonts 管理渲染所需的字体族。内置 Go 字体作为兜底，
// 调用方可在构建期注册额外字体；注册完成后 Library 只读，
// 并发取字形面无需额外同步（内部锁只保护惰性缓存）。
package fonts

import (
	"fmt"
	"image/color"
	"os"
	"sync"

	"github.com/tdewolff/canvas"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// FallbackFamily 是内置兜底字体族的注册名。
const FallbackFamily = "Go"

// Library 按名称保存字体族，未命中的名称回退到内置 Go 字体。
type Library struct {
	mu       sync.Mutex
	families map[string]*canvas.FontFamily
	fallback *canvas.FontFamily
}

// NewLibrary 构建字体库并装入内置 Go 字体的四个样式。
func NewLibrary() (*Library, error) {
	fallback := canvas.NewFontFamily(FallbackFamily)
	blobs := []struct {
		data  []byte
		style canvas.FontStyle
	}{
		{goregular.TTF, canvas.FontRegular},
		{gobold.TTF, canvas.FontBold},
		{goitalic.TTF, canvas.FontItalic},
		{gobolditalic.TTF, canvas.FontBold | canvas.FontItalic},
	}
	for _, b := range blobs {
		if err := fallback.LoadFont(b.data, 0, b.style); err != nil {
			return nil, fmt.Errorf("fonts: 装载内置字体失败: %w", err)
		}
	}
	return &Library{
		families: map[string]*canvas.FontFamily{FallbackFamily: fallback},
		fallback: fallback,
	}, nil
}

// Register 以给定名称注册一份字体数据。同名同族可多次调用以
// 补齐 bold/italic 等样式。
func (l *Library) Register(name string, data []byte, style canvas.FontStyle) error {
	if name == "" {
		return fmt.Errorf("fonts: 字体名不能为空")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	family, ok := l.families[name]
	if !ok {
		family = canvas.NewFontFamily(name)
		l.families[name] = family
	}
	if err := family.LoadFont(data, 0, style); err != nil {
		// 本次新建的族才回收；已注册族保留既有样式。
		if !ok {
			delete(l.families, name)
		}
		return fmt.Errorf("fonts: 装载字体 %s 失败: %w", name, err)
	}
	return nil
}

// RegisterFile 从文件注册字体。
func (l *Library) RegisterFile(name, path string, style canvas.FontStyle) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("fonts: 读取字体文件 %s 失败: %w", path, err)
	}
	return l.Register(name, data, style)
}

// Face 返回指定字体族的字形面，size 单位为 pt。
// 未注册的族名回退到内置 Go 字体，保证总能返回可用的面。
func (l *Library) Face(family string, sizePt float64, col color.Color, style canvas.FontStyle) *canvas.FontFace {
	l.mu.Lock()
	f, ok := l.families[family]
	l.mu.Unlock()
	if !ok {
		f = l.fallback
	}
	return f.Face(sizePt, col, style, canvas.FontNormal)
}
