package engine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMailbox_EmptyTake(t *testing.T) {
	m := NewMailbox()

	d, ok := m.Take()
	assert.False(t, ok)
	assert.Equal(t, DirNone, d)
}

func TestMailbox_ConsumeOnRead(t *testing.T) {
	m := NewMailbox()
	m.Post(DirUp)

	d, ok := m.Take()
	assert.True(t, ok)
	assert.Equal(t, DirUp, d)

	_, ok = m.Take()
	assert.False(t, ok, "second take must find the slot empty")
}

func TestMailbox_OverwriteOnWrite(t *testing.T) {
	m := NewMailbox()
	m.Post(DirUp)
	m.Post(DirLeft)
	m.Post(DirDown)

	d, ok := m.Take()
	assert.True(t, ok)
	assert.Equal(t, DirDown, d, "only the latest command survives")

	posted, overwritten := m.Stats()
	assert.Equal(t, uint64(3), posted)
	assert.Equal(t, uint64(2), overwritten)
}

func TestMailbox_IgnoresNone(t *testing.T) {
	m := NewMailbox()
	m.Post(DirRight)
	m.Post(DirNone)

	d, ok := m.Take()
	assert.True(t, ok)
	assert.Equal(t, DirRight, d)
}

// TestMailbox_ConcurrentProducerConsumer is meaningful under -race
func TestMailbox_ConcurrentProducerConsumer(t *testing.T) {
	m := NewMailbox()
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 10000; i++ {
			m.Post(dirs[i%len(dirs)])
		}
	}()

	taken := 0
	go func() {
		defer wg.Done()
		for i := 0; i < 10000; i++ {
			if d, ok := m.Take(); ok {
				assert.NotEqual(t, DirNone, d)
				taken++
			}
		}
	}()

	wg.Wait()

	posted, overwritten := m.Stats()
	assert.Equal(t, uint64(10000), posted)
	// Every post is either consumed, overwritten, or still pending
	pending := 0
	if _, ok := m.Take(); ok {
		pending = 1
	}
	assert.Equal(t, posted, uint64(taken)+overwritten+uint64(pending))
}
