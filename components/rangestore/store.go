package rangestore

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/cute-angelia/go-xrange/syntax/ifile"
	"github.com/cute-angelia/go-xrange/utils/ilog"
)

const PackageName = "component.rangestore"

// Store 启动时读一次，关闭窗口时写一次
type Store struct {
	path   string
	logger zerolog.Logger
}

func New(opts ...Option) *Store {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	path := ifile.AppConfigPath(defaultAppName, o.fileName)
	if o.dir != "" {
		path = filepath.Join(o.dir, o.fileName)
	}
	return &Store{
		path:   path,
		logger: ilog.Pkg(o.logger, PackageName),
	}
}

func (s *Store) Path() string {
	return s.path
}

// Load 文件缺失、不可读或解码失败都返回默认值，错误只记录不上抛
func (s *Store) Load() PersistedConfig {
	if !ifile.IsExist(s.path) {
		s.logger.Debug().Str("path", s.path).Msg("config not found, using defaults")
		return DefaultConfig()
	}

	data, err := ifile.ReadFile(s.path)
	if err != nil {
		s.logger.Warn().Err(errors.Wrap(err, "read config")).Str("path", s.path).Msg("using defaults")
		return DefaultConfig()
	}

	cfg, err := Decode(data)
	if err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("using defaults")
		return DefaultConfig()
	}
	return cfg
}

// Save 创建父目录并覆盖写入，调用方按尽力而为处理错误
func (s *Store) Save(cfg PersistedConfig) error {
	if err := ifile.WriteFile(s.path, Encode(cfg)); err != nil {
		return errors.Wrapf(err, "save config %s", s.path)
	}
	s.logger.Debug().Str("path", s.path).Msg("config saved")
	return nil
}
