package irange

import (
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pkg/errors"
)

const (
	MinValue = 1
	MaxValue = 255
)

// ErrInvalidRange 文本无法解析为 [1,255] 内的整数
var ErrInvalidRange = errors.New("invalid range value")

// Default 启动默认值，start = end = 1
const Default = Value(MinValue)

// Value 单字节正整数，0 永远不是合法值
type Value uint8

var rules = []validation.Rule{
	validation.Required,
	validation.Min(MinValue),
	validation.Max(MaxValue),
}

// New 唯一的构造入口，默认值也走这里
func New(n int) (Value, error) {
	if err := validation.Validate(n, rules...); err != nil {
		return 0, errors.Wrapf(ErrInvalidRange, "%d: %v", n, err)
	}
	return Value(n), nil
}

// Parse 十进制解析，接受标准整数解析器接受的写法（如 "+5"、"007"）
func Parse(text string) (Value, error) {
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidRange, "%q", text)
	}
	return New(n)
}

func MustParse(text string) Value {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}

// Valid 零值 Value(0) 不合法
func (v Value) Valid() bool {
	return v >= MinValue
}

func (v Value) Get() uint8 {
	return uint8(v)
}

// String 十进制，无前导零
func (v Value) String() string {
	return strconv.Itoa(int(v))
}

func (v Value) Compare(o Value) int {
	switch {
	case v < o:
		return -1
	case v > o:
		return 1
	}
	return 0
}

func (v Value) Less(o Value) bool {
	return v < o
}
