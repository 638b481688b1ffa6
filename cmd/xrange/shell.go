package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/cute-angelia/go-xrange/components/appstate"
	"github.com/cute-angelia/go-xrange/components/session"
	"github.com/cute-angelia/go-xrange/syntax/irange"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// shell 展示层：把文本命令转成事件，再读回状态渲染
type shell struct {
	sess     *session.Session
	out      io.Writer
	jsonMode bool
}

func (sh *shell) msg() messages {
	return lookup(sh.sess.LocaleIsChinese())
}

func (sh *shell) run(in io.Reader) error {
	sh.banner()
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if !sh.handle(sc.Text()) {
			break
		}
	}
	return sc.Err()
}

func (sh *shell) banner() {
	m := sh.msg()
	fmt.Fprintf(sh.out, "== %s ==\n%s\n", m.Title, m.Help)
	sh.render()
}

// handle 返回 false 表示退出
func (sh *shell) handle(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	state := sh.sess.State()
	m := sh.msg()

	switch cmd := strings.ToLower(fields[0]); cmd {
	case "quit", "exit", "q":
		return false
	case "start", "end":
		if len(fields) != 2 {
			fmt.Fprintln(sh.out, m.Invalid)
			return true
		}
		// 校验只在文本边界做，非法输入不进入状态机
		v, err := irange.Parse(fields[1])
		if err != nil {
			fmt.Fprintln(sh.out, m.Invalid)
			return true
		}
		if cmd == "start" {
			state.Transition(appstate.SetRangeStart{Value: v})
		} else {
			state.Transition(appstate.SetRangeEnd{Value: v})
		}
		sh.render()
	case "gen", "g":
		// 区间倒置时照常投递，由状态机忽略
		state.Transition(appstate.Generate{})
		if state.GenerationBlocked() {
			fmt.Fprintln(sh.out, m.Disabled)
			return true
		}
		sh.render()
	case "lang":
		sh.sess.ToggleLocale()
		sh.banner()
	case "show":
		sh.render()
	default:
		fmt.Fprintln(sh.out, m.Help)
	}
	return true
}

func (sh *shell) render() {
	state := sh.sess.State()
	if sh.jsonMode {
		data, err := json.Marshal(state.Snapshot())
		if err != nil {
			fmt.Fprintln(sh.out, err)
			return
		}
		fmt.Fprintln(sh.out, string(data))
		return
	}

	m := sh.msg()
	result := m.None
	if r, ok := state.Result(); ok {
		result = r.String()
	}
	gen := m.Gen
	if state.GenerationBlocked() {
		gen = "(" + m.Gen + ")"
	}
	fmt.Fprintf(sh.out, "%s: %s  %s: %s  => %s  [%s]\n", m.Start, state.Start(), m.End, state.End(), result, gen)
}
