package main

// 界面文案，中文/英文两套
type messages struct {
	Title    string
	Start    string
	End      string
	None     string
	Gen      string
	Lang     string
	Invalid  string
	Disabled string
	Help     string
}

var (
	enUS = messages{
		Title:    "Random Number Generator",
		Start:    "Start",
		End:      "End",
		None:     "None",
		Gen:      "Generate",
		Lang:     "中文",
		Invalid:  "invalid number, expected 1-255",
		Disabled: "generate is disabled: end is less than start",
		Help:     "commands: start <n> | end <n> | gen | lang | show | quit",
	}
	zhCN = messages{
		Title:    "随机数生成器",
		Start:    "起始",
		End:      "结束",
		None:     "无",
		Gen:      "生成",
		Lang:     "English",
		Invalid:  "无效数字，应为 1-255",
		Disabled: "无法生成：结束值小于起始值",
		Help:     "命令: start <n> | end <n> | gen | lang | show | quit",
	}
)

func lookup(chinese bool) messages {
	if chinese {
		return zhCN
	}
	return enUS
}
