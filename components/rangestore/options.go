package rangestore

import (
	"github.com/rs/zerolog"
)

const (
	defaultAppName  = "xrange"
	defaultFileName = "config.bin"
)

type Option func(o *options)

type options struct {
	// 目录，默认为 <用户配置目录>/xrange
	dir string

	fileName string

	logger zerolog.Logger
}

func defaultOptions() *options {
	return &options{
		fileName: defaultFileName,
		logger:   zerolog.Nop(),
	}
}

// WithDir 自定义配置目录
func WithDir(dir string) Option {
	return func(o *options) { o.dir = dir }
}

// WithFileName 自定义文件名
func WithFileName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.fileName = name
		}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}
