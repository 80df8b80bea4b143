// Package binding 实现模板文本的数据绑定。页面里的文本可以写
// ${path.to.value} 占位符，导出前用会员数据替换；缺失路径保留
// 原占位符，写 ${path|fallback} 可改为落到给定的兜底文本。
package binding

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/ByLCY/folio/page"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Load 解析一份 JSON 绑定数据。
func Load(r io.Reader) (any, error) {
	var data any
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("binding: 解析绑定数据失败: %w", err)
	}
	return data, nil
}

// Interpolate 将文本中的 ${path} 占位符替换为 data 中的值。
// 路径段用 . 分隔，数组下标写作 name[0]；路径后可跟 |fallback
// 指定缺失时的兜底文本。data 为空或路径不存在且无兜底时，
// 占位符原样保留。
func Interpolate(text string, data any) string {
	if data == nil || !strings.Contains(text, "${") {
		return text
	}
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := exprPattern.FindStringSubmatch(match)
		if len(groups) < 2 {
			return match
		}
		expr := groups[1]
		path := expr
		fallback := ""
		hasFallback := false
		if i := strings.IndexByte(expr, '|'); i >= 0 {
			path = expr[:i]
			fallback = expr[i+1:]
			hasFallback = true
		}
		path = strings.TrimSpace(path)
		if path == "" {
			return match
		}
		if val, ok := resolvePath(data, path); ok {
			return fmt.Sprint(val)
		}
		if hasFallback {
			return fallback
		}
		return match
	})
}

// ApplyPage 对页面中所有可绑定的文本字段做占位符替换，
// 返回替换后的副本，入参不被修改。
func ApplyPage(p *page.Page, data any) *page.Page {
	if p == nil {
		return nil
	}
	out := *p
	out.Elements = make([]page.Element, len(p.Elements))
	copy(out.Elements, p.Elements)
	if data == nil {
		return &out
	}
	for i := range out.Elements {
		el := &out.Elements[i]
		if el.Text != nil {
			t := *el.Text
			t.Content = Interpolate(t.Content, data)
			el.Text = &t
		}
		if el.QnA != nil {
			q := *el.QnA
			q.Question = Interpolate(q.Question, data)
			q.Answer = Interpolate(q.Answer, data)
			el.QnA = &q
		}
		if el.Image != nil {
			img := *el.Image
			img.Src = Interpolate(img.Src, data)
			el.Image = &img
		}
	}
	return &out
}

func resolvePath(data any, path string) (any, bool) {
	current := data
	for _, segment := range strings.Split(path, ".") {
		name, indexes := parseSegment(segment)
		if name != "" {
			m, ok := current.(map[string]any)
			if !ok {
				return nil, false
			}
			if current, ok = m[name]; !ok {
				return nil, false
			}
		}
		for _, idxStr := range indexes {
			idx, err := strconv.Atoi(idxStr)
			if err != nil {
				return nil, false
			}
			arr, ok := current.([]any)
			if !ok || idx < 0 || idx >= len(arr) {
				return nil, false
			}
			current = arr[idx]
		}
	}
	return current, true
}

func parseSegment(segment string) (string, []string) {
	name := segment
	var indexes []string
	if i := strings.IndexByte(segment, '['); i != -1 {
		name = segment[:i]
		rest := segment[i:]
		for strings.HasPrefix(rest, "[") {
			end := strings.IndexByte(rest, ']')
			if end == -1 {
				break
			}
			indexes = append(indexes, rest[1:end])
			rest = rest[end+1:]
		}
	}
	return name, indexes
}
