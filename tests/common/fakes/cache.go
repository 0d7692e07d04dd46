//go:build unit || e2e

package fakes

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"booking-calendar-sync/internal/usecase/shared"
)

// Cache keeps JSON values in memory. TTLs are ignored.
type Cache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

var _ shared.Cache = (*Cache)(nil)

func NewCache() *Cache {
	return &Cache{entries: map[string][]byte{}}
}

func (c *Cache) Get(_ context.Context, key string, dest any) (bool, error) {
	c.mu.Lock()
	raw, ok := c.entries[key]
	c.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, nil
	}
	return true, nil
}

func (c *Cache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = raw
	return nil
}

func (c *Cache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
	}
	return nil
}

func (c *Cache) DeletePrefix(_ context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
	return nil
}

func (c *Cache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

// Locker grants each key to one holder at a time.
type Locker struct {
	mu   sync.Mutex
	held map[string]bool
}

var _ shared.Locker = (*Locker)(nil)

func NewLocker() *Locker {
	return &Locker{held: map[string]bool{}}
}

func (l *Locker) TryLock(_ context.Context, key string, _ time.Duration) (func(context.Context) error, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[key] {
		return nil, false, nil
	}
	l.held[key] = true
	return func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.held, key)
		return nil
	}, true, nil
}

// Hold takes key until the returned release is called.
func (l *Locker) Hold(key string) func() {
	l.mu.Lock()
	l.held[key] = true
	l.mu.Unlock()
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.held, key)
	}
}

// Notifier records notifications.
type Notifier struct {
	mu   sync.Mutex
	sent []shared.Notification
	Err  error
}

var _ shared.Notifier = (*Notifier)(nil)

func (n *Notifier) Notify(_ context.Context, msg shared.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.Err != nil {
		return n.Err
	}
	n.sent = append(n.sent, msg)
	return nil
}

func (n *Notifier) Sent() []shared.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]shared.Notification, len(n.sent))
	copy(out, n.sent)
	return out
}

// Kinds lists the kinds sent to the audience, in order.
func (n *Notifier) Kinds(audience shared.Audience) []shared.NotificationKind {
	var out []shared.NotificationKind
	for _, s := range n.Sent() {
		if s.Audience == audience {
			out = append(out, s.Kind)
		}
	}
	return out
}
