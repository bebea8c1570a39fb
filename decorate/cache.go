package decorate

import (
	"container/list"
	"sync"
)

// Cache memoizes fn for the maxSize most recently inserted keys. When full,
// the oldest insertion is evicted; lookups do not refresh an entry's age.
// maxSize <= 0 disables caching and every call reaches fn.
//
// The returned function is safe for concurrent use. Concurrent misses on
// the same key may each call fn.
func Cache[K comparable, V any](fn func(K) V, maxSize int) func(K) V {
	if maxSize <= 0 {
		return fn
	}

	var (
		mu    sync.Mutex
		order = list.New() // of K, oldest at Front
		vals  = make(map[K]V, maxSize)
	)

	return func(key K) V {
		mu.Lock()
		if v, ok := vals[key]; ok {
			mu.Unlock()
			return v
		}
		mu.Unlock()

		v := fn(key)

		mu.Lock()
		defer mu.Unlock()
		if _, ok := vals[key]; ok {
			return v
		}
		if order.Len() >= maxSize {
			oldest := order.Front()
			order.Remove(oldest)
			delete(vals, oldest.Value.(K))
		}
		order.PushBack(key)
		vals[key] = v

		return v
	}
}
