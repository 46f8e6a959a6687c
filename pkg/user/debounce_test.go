package user

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	saves []string
	done  chan struct{}
}

func (r *recorder) save(key, value string) {
	r.mu.Lock()
	r.saves = append(r.saves, key+"="+value)
	r.mu.Unlock()
	if r.done != nil {
		r.done <- struct{}{}
	}
}

func (r *recorder) got() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.saves...)
}

func TestDebouncerCollapsesBurst(t *testing.T) {
	r := &recorder{done: make(chan struct{}, 4)}
	d := NewDebouncer(40*time.Millisecond, r.save)

	d.Submit("u", "dark")
	d.Submit("u", "light")
	d.Submit("u", "dark")
	v, ok := d.Pending("u")
	require.True(t, ok)
	assert.Equal(t, "dark", v)

	select {
	case <-r.done:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced save never ran")
	}
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, []string{"u=dark"}, r.got())
	_, ok = d.Pending("u")
	assert.False(t, ok)
}

func TestDebouncerKeysAreIndependent(t *testing.T) {
	r := &recorder{done: make(chan struct{}, 4)}
	d := NewDebouncer(20*time.Millisecond, r.save)

	d.Submit("a", "light")
	d.Submit("b", "dark")
	for i := 0; i < 2; i++ {
		select {
		case <-r.done:
		case <-time.After(2 * time.Second):
			t.Fatal("timeout")
		}
	}
	assert.ElementsMatch(t, []string{"a=light", "b=dark"}, r.got())
}

func TestFlushSavesImmediately(t *testing.T) {
	r := &recorder{}
	d := NewDebouncer(time.Hour, r.save)
	d.Submit("u", "light")

	d.Flush()
	assert.Equal(t, []string{"u=light"}, r.got())
	d.Flush()
	assert.Len(t, r.got(), 1)
}
