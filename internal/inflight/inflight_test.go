package inflight

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTryAcquire_ExclusivePerKey(t *testing.T) {
	m := New()

	keyA := Key("application", 1)
	keyB := Key("application", 2)

	assert.True(t, m.TryAcquire(keyA))
	// same application blocked, regardless of which action wants it
	assert.False(t, m.TryAcquire(keyA))
	// a different application stays available
	assert.True(t, m.TryAcquire(keyB))

	m.Release(keyA)
	assert.True(t, m.TryAcquire(keyA))
}

func TestRelease_UnknownKeyIsNoop(t *testing.T) {
	m := New()
	m.Release("application:999")
	assert.False(t, m.Active("application:999"))
}

func TestActive(t *testing.T) {
	m := New()
	key := Key("gig", 7)

	assert.False(t, m.Active(key))
	m.TryAcquire(key)
	assert.True(t, m.Active(key))
	m.Release(key)
	assert.False(t, m.Active(key))
}

func TestTryAcquire_Concurrent(t *testing.T) {
	m := New()
	key := Key("gig", 1)

	const goroutines = 50
	wins := make(chan struct{}, goroutines)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			if m.TryAcquire(key) {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	count := 0
	for range wins {
		count++
	}
	assert.Equal(t, 1, count, "exactly one goroutine may hold the key")
}

func TestKey(t *testing.T) {
	assert.Equal(t, "gig:42", Key("gig", 42))
	assert.NotEqual(t, Key("gig", 1), Key("application", 1))
}
