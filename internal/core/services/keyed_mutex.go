package services

import "sync"

// keyedMutex provides mutual exclusion per string key. The lease registry
// locks per shelf so the overlap check-then-insert is atomic, and the
// settlement engine locks per (tenant, period) around persistence. Entries
// are never evicted; the key space is bounded by the shop's shelves and
// settled periods.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

func (k *keyedMutex) Lock(key string) {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()
	l.Lock()
}

func (k *keyedMutex) Unlock(key string) {
	k.mu.Lock()
	l := k.locks[key]
	k.mu.Unlock()
	l.Unlock()
}
