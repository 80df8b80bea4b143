package render

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler 丢弃全部日志记录。Enabled 返回 false，调用方会跳过消息
// 格式化，关闭日志时几乎零开销。
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := slog.New(nopHandler{})
	loggerPtr.Store(l)
}

// SetLogger 配置渲染诊断日志。默认不输出任何日志；导出作业系统可以
// 注入自己的 logger 以收集图片加载失败、元素被跳过等非致命诊断。
// 传入 nil 恢复静默。并发安全。
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger 返回当前诊断 logger。
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
