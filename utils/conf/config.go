package conf

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const EnvPrefix = "XRANGE"

const (
	KeyConfigDir = "config_dir"
	KeyLogLevel  = "log.level"
	KeyLogFile   = "log.file"
	KeySeed      = "seed"
)

// Settings 外壳程序的运行参数，与持久化的边界无关
type Settings struct {
	// 为空时使用 <用户配置目录>/xrange
	ConfigDir string
	LogLevel  string
	LogFile   string
	// 0 表示自动播种
	Seed uint64
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyConfigDir, "")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeySeed, 0)

	// XRANGE_LOG_LEVEL -> log.level
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load 默认值 < 配置文件 < 环境变量；cfgFile 为空时跳过文件
func Load(cfgFile string) (Settings, error) {
	v := newViper()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, errors.Wrapf(err, "read settings %s", cfgFile)
		}
	}
	return Settings{
		ConfigDir: v.GetString(KeyConfigDir),
		LogLevel:  v.GetString(KeyLogLevel),
		LogFile:   v.GetString(KeyLogFile),
		Seed:      v.GetUint64(KeySeed),
	}, nil
}
