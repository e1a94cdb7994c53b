package discovery

import (
	"context"
	"sync"
	"time"
)

// RegistryOption настройка Registry.
type RegistryOption func(*Registry)

// WithIdleTTL Engine, к которому не обращались дольше ttl, закрывается при Sweep.
// Ноль отключает вытеснение по времени.
func WithIdleTTL(ttl time.Duration) RegistryOption {
	return func(r *Registry) {
		r.idleTTL = ttl
	}
}

// WithMaxViews ограничивает число смонтированных Engine. При переполнении
// закрывается тот, к которому дольше всех не обращались. Ноль снимает ограничение.
func WithMaxViews(n int) RegistryOption {
	return func(r *Registry) {
		r.maxViews = n
	}
}

type entry struct {
	engine   *Engine
	lastSeen time.Time
}

// Registry хранит по одному Engine на пользователя.
// Открытие страницы монтирует новый Engine и закрывает предыдущий.
type Registry struct {
	mu       sync.Mutex
	engines  map[string]*entry
	factory  func() *Engine
	idleTTL  time.Duration
	maxViews int
	now      func() time.Time
}

// NewRegistry создаёт Registry, новые Engine создаются через factory.
func NewRegistry(factory func() *Engine, opts ...RegistryOption) *Registry {
	r := &Registry{
		engines: make(map[string]*entry),
		factory: factory,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Mount создаёт новый Engine для key, предыдущий закрывается.
func (r *Registry) Mount(key string) *Engine {
	e := r.factory()

	r.mu.Lock()
	var closing []*Engine
	if prev, ok := r.engines[key]; ok {
		closing = append(closing, prev.engine)
	} else if r.maxViews > 0 {
		for len(r.engines) >= r.maxViews {
			closing = append(closing, r.evictOldestLocked())
		}
	}
	r.engines[key] = &entry{engine: e, lastSeen: r.now()}
	r.mu.Unlock()

	for _, old := range closing {
		old.Close()
	}
	return e
}

// Get возвращает смонтированный Engine и продлевает его жизнь.
func (r *Registry) Get(key string) (*Engine, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	en, ok := r.engines[key]
	if !ok {
		return nil, false
	}
	en.lastSeen = r.now()
	return en.engine, true
}

// Drop закрывает и удаляет Engine пользователя.
func (r *Registry) Drop(key string) {
	r.mu.Lock()
	en := r.engines[key]
	delete(r.engines, key)
	r.mu.Unlock()

	if en != nil {
		en.engine.Close()
	}
}

// Sweep закрывает Engine, простаивающие дольше idle TTL. Возвращает число закрытых.
func (r *Registry) Sweep() int {
	if r.idleTTL <= 0 {
		return 0
	}

	r.mu.Lock()
	deadline := r.now().Add(-r.idleTTL)
	var idle []*Engine
	for key, en := range r.engines {
		if en.lastSeen.Before(deadline) {
			idle = append(idle, en.engine)
			delete(r.engines, key)
		}
	}
	r.mu.Unlock()

	for _, e := range idle {
		e.Close()
	}
	return len(idle)
}

// Run периодически вызывает Sweep, пока ctx не отменён.
// onSweep получает число закрытых Engine, может быть nil.
func (r *Registry) Run(ctx context.Context, interval time.Duration, onSweep func(int)) {
	if r.idleTTL <= 0 || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 && onSweep != nil {
				onSweep(n)
			}
		}
	}
}

// CloseAll закрывает все Engine, используется при остановке сервера.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	engines := r.engines
	r.engines = make(map[string]*entry)
	r.mu.Unlock()

	for _, en := range engines {
		en.engine.Close()
	}
}

// Len количество смонтированных Engine.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.engines)
}

func (r *Registry) evictOldestLocked() *Engine {
	var (
		oldestKey string
		oldest    *entry
	)
	for key, en := range r.engines {
		if oldest == nil || en.lastSeen.Before(oldest.lastSeen) {
			oldestKey, oldest = key, en
		}
	}
	delete(r.engines, oldestKey)
	return oldest.engine
}
