package session

import (
	"github.com/cute-angelia/go-xrange/components/appstate"
	"github.com/cute-angelia/go-xrange/components/rangestore"
)

// Store 持久化边界，rangestore.Store 满足
type Store interface {
	Load() rangestore.PersistedConfig
	Save(cfg rangestore.PersistedConfig) error
}

// Session 进程生命周期：启动读一次配置，关闭时写一次
type Session struct {
	store  Store
	state  *appstate.State
	locale bool
	closed bool
}

// Open 读取持久化边界创建状态，结果总是从空开始
func Open(store Store, opts ...appstate.Option) *Session {
	cfg := store.Load()
	return &Session{
		store:  store,
		state:  appstate.New(cfg.Start, cfg.End, opts...),
		locale: cfg.LocaleIsChinese,
	}
}

func (s *Session) State() *appstate.State {
	return s.state
}

func (s *Session) LocaleIsChinese() bool {
	return s.locale
}

// ToggleLocale 中英文切换，只在关闭时持久化
func (s *Session) ToggleLocale() {
	s.locale = !s.locale
}

// Close 关闭钩子，只生效一次
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.store.Save(rangestore.PersistedConfig{
		Start:           s.state.Start(),
		End:             s.state.End(),
		LocaleIsChinese: s.locale,
	})
}
