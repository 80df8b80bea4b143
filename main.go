package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ByLCY/folio/binding"
	"github.com/ByLCY/folio/catalog"
	"github.com/ByLCY/folio/export"
	"github.com/ByLCY/folio/fonts"
	"github.com/ByLCY/folio/page"
	"github.com/ByLCY/folio/render"
)

func main() {
	input := flag.String("in", "examples/demo.json", "页面或文档 JSON 路径")
	output := flag.String("out", "output/demo.pdf", "输出路径（.pdf 或 .png）")
	catalogPath := flag.String("catalog", "", "目录 DSL 路径（调色盘/主题/图案）")
	dataPath := flag.String("data", "", "绑定数据 JSON 路径")
	flag.Parse()

	if err := run(*input, *output, *catalogPath, *dataPath); err != nil {
		log.Fatalf("导出失败: %v", err)
	}
	fmt.Printf("已生成：%s\n", *output)
}

// run 串联读取、目录装载、数据绑定与导出。
func run(inputPath, outputPath, catalogPath, dataPath string) error {
	doc, err := loadDocument(inputPath)
	if err != nil {
		return err
	}

	reg := catalog.Default()
	if catalogPath != "" {
		f, err := os.Open(catalogPath)
		if err != nil {
			return fmt.Errorf("无法打开目录文件 %s: %w", catalogPath, err)
		}
		reg, err = catalog.Load(f)
		f.Close()
		if err != nil {
			return err
		}
	}

	if dataPath != "" {
		f, err := os.Open(dataPath)
		if err != nil {
			return fmt.Errorf("无法打开绑定数据 %s: %w", dataPath, err)
		}
		data, err := binding.Load(f)
		f.Close()
		if err != nil {
			return err
		}
		for i := range doc.Pages {
			doc.Pages[i] = *binding.ApplyPage(&doc.Pages[i], data)
		}
	}

	lib, err := fonts.NewLibrary()
	if err != nil {
		return err
	}
	exporter := export.NewExporter(reg, lib, render.FileLoader{BaseDir: filepath.Dir(inputPath)})

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	runner := &export.Runner{Exporter: exporter}
	return runner.Run(context.Background(), []export.Job{{Doc: doc, Out: outputPath}})
}

// loadDocument 读取输入 JSON：既接受带 pages 的文档，也接受单页描述。
func loadDocument(path string) (*export.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("无法打开输入文件 %s: %w", path, err)
	}
	defer f.Close()

	var doc export.Document
	if err := json.NewDecoder(f).Decode(&doc); err == nil && len(doc.Pages) > 0 {
		return &doc, nil
	}

	if _, err := f.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("回绕输入文件失败: %w", err)
	}
	p, err := page.Decode(f)
	if err != nil {
		return nil, err
	}
	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &export.Document{Meta: export.Meta{Title: title}, Pages: []page.Page{*p}}, nil
}
