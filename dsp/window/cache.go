package window

import "sync"

type cacheKey struct {
	typ  Type
	size int
}

var (
	cacheMu sync.Mutex
	cache   = map[cacheKey]*Table{}
)

// Shared returns the process-wide table for (t, size), computing it on first
// use. Later calls return the same table.
func Shared(t Type, size int) (*Table, error) {
	key := cacheKey{typ: t, size: size}

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if w, ok := cache[key]; ok {
		return w, nil
	}

	w, err := New(t, size)
	if err != nil {
		return nil, err
	}
	cache[key] = w

	return w, nil
}
