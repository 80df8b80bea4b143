// Package page 定义完全解析后的页面描述：背景、元素列表与主题/调色盘
// 标识。页面描述由上游编辑器产出（JSON），引擎只读不写。
package page

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/ByLCY/folio/layout"
)

// Page 是一次渲染调用的完整输入。页级与簿级覆盖的合并发生在上游，
// 这里拿到的主题与调色盘均已解析完毕。
type Page struct {
	Width      float64    `json:"width"`  // mm
	Height     float64    `json:"height"` // mm
	Background Background `json:"background"`
	Elements   []Element  `json:"elements"`
	Theme      string     `json:"theme,omitempty"`
	Palette    string     `json:"palette,omitempty"`
}

// Decode 从 JSON 读取页面描述。
func Decode(r io.Reader) (*Page, error) {
	var p Page
	dec := json.NewDecoder(r)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("page: 解析页面描述失败: %w", err)
	}
	if p.Width <= 0 || p.Height <= 0 {
		return nil, fmt.Errorf("page: 非法的页面尺寸 %gx%g", p.Width, p.Height)
	}
	return &p, nil
}

// Length 是可带单位的长度：JSON 中既可以写数字（mm），
// 也可以写 "14pt" 这样的字符串，解析后统一为 mm。
type Length float64

// UnmarshalJSON 实现 json.Unmarshaler。
func (l *Length) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		mm, err := layout.ParseLength(s)
		if err != nil {
			return err
		}
		*l = Length(mm)
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("page: 无法解析长度 %s: %w", b, err)
	}
	*l = Length(f)
	return nil
}

// TextStyle 是页面描述中的文本样式，转换为布局样式后使用。
type TextStyle struct {
	Size       Length `json:"size,omitempty"`
	Family     string `json:"family,omitempty"`
	Bold       bool   `json:"bold,omitempty"`
	Italic     bool   `json:"italic,omitempty"`
	Color      string `json:"color,omitempty"`
	Opacity    float64 `json:"opacity,omitempty"`
	Align      string `json:"align,omitempty"`
	Spacing    string `json:"spacing,omitempty"`
	Background string `json:"background,omitempty"`
}

// Rich 转换为布局层的富文本样式。
func (s TextStyle) Rich() layout.RichTextStyle {
	opacity := s.Opacity
	if opacity <= 0 || opacity > 1 {
		opacity = 1
	}
	return layout.RichTextStyle{
		Size:       float64(s.Size),
		Family:     s.Family,
		Bold:       s.Bold,
		Italic:     s.Italic,
		Color:      s.Color,
		Opacity:    opacity,
		Align:      layout.Align(s.Align),
		Spacing:    layout.Spacing(s.Spacing),
		Background: s.Background,
	}
}
