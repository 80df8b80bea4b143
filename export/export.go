// Package export 把页面描述渲染为 PDF 与 PNG 文件。离屏导出与
// 交互画布共享同一渲染器，这里只负责把 canvas 输出落到文件格式。
package export

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/folio/catalog"
	"github.com/ByLCY/folio/fonts"
	"github.com/ByLCY/folio/page"
	"github.com/ByLCY/folio/render"
	canvassurface "github.com/ByLCY/folio/render/canvas"
)

// 默认栅格分辨率：300dpi。
const defaultDPMM = 300.0 / 25.4

// Meta 为导出文档的元信息，写入 PDF 的 Info 字典。
type Meta struct {
	Title    string   `json:"title,omitempty"`
	Subject  string   `json:"subject,omitempty"`
	Author   string   `json:"author,omitempty"`
	Creator  string   `json:"creator,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

// Document 是一次导出的输入：元信息加上有序的页面列表。
type Document struct {
	Meta  Meta        `json:"meta"`
	Pages []page.Page `json:"pages"`
}

// Exporter 持有导出所需的只读协作者。并发导出多个文档时可共享
// 同一个 Exporter：字体库与目录均为只读。
type Exporter struct {
	Compositor *render.Compositor
	Library    *fonts.Library
	DPMM       float64 // PNG 分辨率，零值按 300dpi
}

// NewExporter 组装一个使用真实字体测量的导出器。
func NewExporter(reg *catalog.Registry, lib *fonts.Library, images render.ImageLoader) *Exporter {
	return &Exporter{
		Compositor: &render.Compositor{
			Registry: reg,
			Measurer: &canvassurface.Measurer{Library: lib},
			Images:   images,
		},
		Library: lib,
	}
}

// PDF 将文档的全部页面写为一个 PDF。页与页之间检查 ctx，
// 取消的导出尽早放弃。
func (e *Exporter) PDF(ctx context.Context, w io.Writer, doc *Document) error {
	if doc == nil || len(doc.Pages) == 0 {
		return fmt.Errorf("export: 缺少可导出的页面")
	}
	first := &doc.Pages[0]
	writer := pdf.New(w, first.Width, first.Height, nil)
	writer.SetInfo(doc.Meta.Title, doc.Meta.Subject,
		strings.Join(doc.Meta.Keywords, ", "), doc.Meta.Author, doc.Meta.Creator)

	for i := range doc.Pages {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("export: 导出被取消: %w", err)
		}
		p := &doc.Pages[i]
		if i > 0 {
			writer.NewPage(p.Width, p.Height)
		}
		c, err := e.renderPage(p)
		if err != nil {
			return fmt.Errorf("export: 渲染第 %d 页失败: %w", i+1, err)
		}
		c.RenderTo(writer)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("export: 写入 PDF 失败: %w", err)
	}
	return nil
}

// PNG 将单页栅格化为 PNG。
func (e *Exporter) PNG(ctx context.Context, w io.Writer, p *page.Page) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("export: 导出被取消: %w", err)
	}
	c, err := e.renderPage(p)
	if err != nil {
		return fmt.Errorf("export: 渲染页面失败: %w", err)
	}
	dpmm := e.DPMM
	if dpmm <= 0 {
		dpmm = defaultDPMM
	}
	if err := renderers.PNG(canvas.DPMM(dpmm))(w, c); err != nil {
		return fmt.Errorf("export: 写入 PNG 失败: %w", err)
	}
	return nil
}

func (e *Exporter) renderPage(p *page.Page) (*canvas.Canvas, error) {
	if p == nil {
		return nil, fmt.Errorf("页面描述不能为空")
	}
	c := canvas.New(p.Width, p.Height)
	surf := canvassurface.New(canvas.NewContext(c), e.Library)
	if err := e.Compositor.RenderPage(surf, p); err != nil {
		return nil, err
	}
	return c, nil
}
