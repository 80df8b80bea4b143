package render

import (
	"fmt"
	"sort"

	"github.com/ByLCY/folio/catalog"
	"github.com/ByLCY/folio/layout"
	"github.com/ByLCY/folio/page"
	"github.com/ByLCY/folio/theme"
)

// 固定默认色：调色盘回退链的最后一环。
const (
	defaultStroke = "#333333"
	defaultText   = "#1e1e1e"
	defaultLine   = "#9aa5b1"
	defaultAccent = "#e07a5f"
)

// Compositor 将整页合成到一个 Surface 上。引擎自身同步、单线程、
// 不持有可变共享状态；目录、测量面、路径生成器与图片加载器均为
// 显式注入的只读协作者。
type Compositor struct {
	Registry  *catalog.Registry
	Measurer  layout.Measurer
	Generator theme.PathGenerator // 可空：按主题策略选择内建生成器
	Images    ImageLoader         // 可空：图片一律跳过并记录诊断
}

// RenderPage 渲染一页：背景、按堆叠序排序的元素、最后把绘制指令
// 交给 surface。函数不修改传入的页面描述。
//
// 错误策略：测量缺失、路径生成失败、图片加载失败与残缺元素均在
// 内部恢复（回退或跳过并记录诊断），不会以页级失败上抛；
// 只有调用契约被破坏（空入参）才返回错误。
func (c *Compositor) RenderPage(s Surface, p *page.Page) error {
	if s == nil {
		return fmt.Errorf("render: surface 不能为空")
	}
	if p == nil {
		return fmt.Errorf("render: 页面描述不能为空")
	}
	reg := c.Registry
	if reg == nil {
		reg = catalog.Default()
	}

	c.renderBackground(s, p, reg)

	// 显式堆叠序：只按 Z 排序，同 Z 保持列表序（稳定排序）。
	// 两个环境不允许依赖偶然的数组顺序。
	elements := make([]*page.Element, 0, len(p.Elements))
	for i := range p.Elements {
		elements = append(elements, &p.Elements[i])
	}
	sort.SliceStable(elements, func(i, j int) bool { return elements[i].Z < elements[j].Z })

	for _, el := range elements {
		if err := el.Validate(); err != nil {
			// 单个残缺元素不允许拖垮整页
			Logger().Warn("跳过残缺元素", "id", el.ID, "err", err)
			continue
		}
		rotated := el.Rotation != 0
		if rotated {
			s.PushTransform(el.X+el.Width/2, el.Y+el.Height/2, el.Rotation)
		}
		c.renderElement(s, p, reg, el)
		if rotated {
			s.Pop()
		}
	}
	return nil
}

// palette 返回页面调色盘；未命中时使用内建默认盘。
func (c *Compositor) palette(reg *catalog.Registry, p *page.Page) catalog.Palette {
	if pal, ok := reg.Palette(p.Palette); ok {
		return pal
	}
	pal, _ := reg.Palette("default")
	return pal
}

// resolveColor 实现颜色回退链：元素级颜色优先，其次调色盘角色色，
// 最后是固定默认值。
func resolveColor(explicit string, pal catalog.Palette, role, fallback string) string {
	if explicit != "" {
		return explicit
	}
	if c, ok := pal[role]; ok && c != "" {
		return c
	}
	return fallback
}

// elementTheme 返回元素生效的主题：元素覆盖优先于页面主题。
func elementTheme(reg *catalog.Registry, p *page.Page, el *page.Element) theme.Definition {
	if el.Theme != "" {
		return reg.Theme(el.Theme)
	}
	return reg.Theme(p.Theme)
}
