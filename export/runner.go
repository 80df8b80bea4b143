package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Job 描述一项导出任务：输出路径的扩展名决定格式（.pdf/.png）。
// PNG 只导出文档首页。
type Job struct {
	Doc *Document
	Out string
}

// Runner 并发执行一批导出任务。Exporter 的协作者均为只读，
// 可安全地被多个任务共享。
type Runner struct {
	Exporter *Exporter
	Limit    int // 并发上限，零值表示不限
}

// Run 执行全部任务；任一任务失败会取消其余任务并返回首个错误。
func (r *Runner) Run(ctx context.Context, jobs []Job) error {
	g, ctx := errgroup.WithContext(ctx)
	if r.Limit > 0 {
		g.SetLimit(r.Limit)
	}
	for _, job := range jobs {
		job := job
		g.Go(func() error {
			return r.runOne(ctx, job)
		})
	}
	return g.Wait()
}

func (r *Runner) runOne(ctx context.Context, job Job) error {
	if job.Doc == nil || len(job.Doc.Pages) == 0 {
		return fmt.Errorf("export: 任务 %s 缺少页面", job.Out)
	}
	f, err := os.Create(job.Out)
	if err != nil {
		return fmt.Errorf("export: 创建输出文件失败: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(job.Out)) {
	case ".pdf":
		err = r.Exporter.PDF(ctx, f, job.Doc)
	case ".png":
		err = r.Exporter.PNG(ctx, f, &job.Doc.Pages[0])
	default:
		err = fmt.Errorf("export: 不支持的输出格式 %s", filepath.Ext(job.Out))
	}
	if err != nil {
		return err
	}
	return f.Close()
}
