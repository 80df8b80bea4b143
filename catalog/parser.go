package catalog

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// 该文件定义目录 DSL 的词法与文法。目录文件描述调色盘、主题与背景
// 图案的默认值，进程启动时装载一次。示例：
//
//	catalog {
//	  palette Sunset {
//	    primary: #e07a5f
//	    background: #fdf6ec
//	    accent: #3d405b
//	  }
//	  theme rough { style: sketch roughness: 1.2 passes: 2 }
//	  pattern dots { color: #d0d0d0 size: 6 stroke-width: 0.4 }
//	}
var (
	catalogLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})`},
		{Name: "Number", Pattern: `-?(?:\d+\.\d+|\d+)`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Colon", Pattern: `:`},
		{Name: "LBrace", Pattern: `{`},
		{Name: "RBrace", Pattern: `}`},
	})

	fileParser = participle.MustBuild[File](
		participle.Lexer(catalogLexer),
		participle.Elide("Whitespace", "LineComment"),
		participle.Unquote("String"),
	)
)

// File 是目录 DSL 的根节点。
type File struct {
	Pos     lexer.Position `parser:""`
	Entries []*Entry       `parser:"Newline* 'catalog' '{' Newline* ( @@ Newline* )* '}' Newline*"`
}

// Entry 是目录中的一条声明。
type Entry struct {
	Palette *PaletteDecl `parser:"  @@"`
	Theme   *ThemeDecl   `parser:"| @@"`
	Pattern *PatternDecl `parser:"| @@"`
}

// PaletteDecl 声明一个调色盘：角色名到颜色的映射。
type PaletteDecl struct {
	Name  string  `parser:"'palette' @Ident"`
	Props []*Prop `parser:"'{' Newline* ( @@ Newline* )* '}'"`
}

// ThemeDecl 声明一个主题。
type ThemeDecl struct {
	Name  string  `parser:"'theme' @Ident"`
	Props []*Prop `parser:"'{' Newline* ( @@ Newline* )* '}'"`
}

// PatternDecl 声明一种背景图案的默认参数。
type PatternDecl struct {
	Name  string  `parser:"'pattern' @Ident"`
	Props []*Prop `parser:"'{' Newline* ( @@ Newline* )* '}'"`
}

// Prop 是一条 key: value 属性。
type Prop struct {
	Key   string `parser:"@Ident Colon"`
	Value string `parser:"( @Color | @Number | @String | @Ident )"`
}

// parse 解析目录 DSL 文本。
func parse(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("catalog: 读取目录失败: %w", err)
	}
	file, err := fileParser.ParseBytes("", data)
	if err != nil {
		return nil, fmt.Errorf("catalog: 解析目录失败: %w", err)
	}
	return file, nil
}

func props(list []*Prop) map[string]string {
	out := make(map[string]string, len(list))
	for _, p := range list {
		out[p.Key] = p.Value
	}
	return out
}
