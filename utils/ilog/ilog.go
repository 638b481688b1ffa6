package ilog

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Option func(o *options)

type options struct {
	level  zerolog.Level
	writer io.Writer

	// 日志文件，为空则只输出到 stderr
	file       string
	maxSizeMB  int
	maxBackups int
}

func defaultOptions() *options {
	return &options{
		level:      zerolog.InfoLevel,
		maxSizeMB:  5,
		maxBackups: 3,
	}
}

// WithLevel 日志级别，无法识别时保持 info
func WithLevel(level string) Option {
	return func(o *options) {
		if l, err := zerolog.ParseLevel(level); err == nil && level != "" {
			o.level = l
		}
	}
}

// WithWriter 自定义输出，测试用
func WithWriter(w io.Writer) Option {
	return func(o *options) { o.writer = w }
}

// WithFile 同时写入滚动日志文件
func WithFile(path string) Option {
	return func(o *options) { o.file = path }
}

// New 创建 logger
func New(opts ...Option) zerolog.Logger {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	if o.writer != nil {
		out = o.writer
	}
	if o.file != "" {
		if err := os.MkdirAll(filepath.Dir(o.file), 0775); err == nil {
			out = zerolog.MultiLevelWriter(out, &lumberjack.Logger{
				Filename:   o.file,
				MaxSize:    o.maxSizeMB,
				MaxBackups: o.maxBackups,
			})
		}
	}

	return zerolog.New(out).Level(o.level).With().Timestamp().Logger()
}

// Pkg 带包名字段的子 logger
func Pkg(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("pkg", name).Logger()
}
