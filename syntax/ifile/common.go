package ifile

import (
	"os"
	"path/filepath"
)

var (
	DefaultDirPerm  os.FileMode = 0775
	DefaultFilePerm os.FileMode = 0664
)

// IsExist 路径是否存在
func IsExist(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// GetHomeDir 获取当前用户家目录，失败时退回当前目录
func GetHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./"
	}
	return home
}

// GetConfigDir 用户配置目录
// Linux: $XDG_CONFIG_HOME 或 ~/.config
// Windows: %AppData%
// macOS: ~/Library/Application Support
func GetConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return GetHomeDir()
	}
	return dir
}

// AppConfigPath 固定的应用子路径 <config>/<app>/<name>
func AppConfigPath(app, name string) string {
	return filepath.Join(GetConfigDir(), app, name)
}

// ReadFile 读取整个文件
func ReadFile(fpath string) ([]byte, error) {
	return os.ReadFile(fpath)
}

// WriteFile 自动创建父目录，覆盖写入
func WriteFile(fpath string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(fpath), DefaultDirPerm); err != nil {
		return err
	}
	return os.WriteFile(fpath, data, DefaultFilePerm)
}
