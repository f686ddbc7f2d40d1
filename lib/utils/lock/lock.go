package lock

import "sync"

var (
	mu   sync.Mutex
	busy = map[string]struct{}{}
)

func acquire(key string) bool {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := busy[key]; ok {
		return false
	}
	busy[key] = struct{}{}
	return true
}

func release(key string) {
	mu.Lock()
	delete(busy, key)
	mu.Unlock()
}

// TryRun runs fn only when nobody else holds key. ran is false when the key is busy.
func TryRun(key string, fn func() error) (ran bool, err error) {
	if !acquire(key) {
		return false, nil
	}
	defer release(key)
	return true, fn()
}
