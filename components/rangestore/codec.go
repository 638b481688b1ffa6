package rangestore

import (
	"github.com/pkg/errors"

	"github.com/cute-angelia/go-xrange/syntax/irange"
)

// 固定布局 [start, end, locale]，无版本号
const encodedLen = 3

// ErrDecode 配置文件内容无法还原
var ErrDecode = errors.New("config decode failed")

// PersistedConfig 只保存边界和语言，抽取结果不保存
type PersistedConfig struct {
	Start           irange.Value
	End             irange.Value
	LocaleIsChinese bool
}

func DefaultConfig() PersistedConfig {
	return PersistedConfig{
		Start: irange.Default,
		End:   irange.Default,
	}
}

func Encode(c PersistedConfig) []byte {
	var locale byte
	if c.LocaleIsChinese {
		locale = 1
	}
	return []byte{c.Start.Get(), c.End.Get(), locale}
}

func Decode(data []byte) (PersistedConfig, error) {
	if len(data) != encodedLen {
		return PersistedConfig{}, errors.Wrapf(ErrDecode, "length %d", len(data))
	}
	start, err := irange.New(int(data[0]))
	if err != nil {
		return PersistedConfig{}, errors.Wrap(ErrDecode, "start")
	}
	end, err := irange.New(int(data[1]))
	if err != nil {
		return PersistedConfig{}, errors.Wrap(ErrDecode, "end")
	}
	if data[2] > 1 {
		return PersistedConfig{}, errors.Wrapf(ErrDecode, "locale byte %d", data[2])
	}
	return PersistedConfig{Start: start, End: end, LocaleIsChinese: data[2] == 1}, nil
}
