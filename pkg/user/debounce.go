package user

import (
	"sync"
	"time"
)

// SaveFunc persists the final value of a burst.
type SaveFunc func(key, value string)

// Debouncer collapses rapid writes per key into one call to save, made after
// wait has passed with no newer write for that key.
type Debouncer struct {
	wait time.Duration
	save SaveFunc

	mu      sync.Mutex
	timers  map[string]*time.Timer
	pending map[string]string
	seq     map[string]uint64
}

func NewDebouncer(wait time.Duration, save SaveFunc) *Debouncer {
	return &Debouncer{wait: wait, save: save, timers: map[string]*time.Timer{}, pending: map[string]string{}, seq: map[string]uint64{}}
}

func (d *Debouncer) Submit(key, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending[key] = value
	if t, ok := d.timers[key]; ok {
		t.Stop()
	}
	d.seq[key]++
	n := d.seq[key]
	d.timers[key] = time.AfterFunc(d.wait, func() { d.fire(key, n) })
}

func (d *Debouncer) fire(key string, n uint64) {
	d.mu.Lock()
	if d.seq[key] != n {
		// superseded by a later Submit
		d.mu.Unlock()
		return
	}
	v, ok := d.pending[key]
	delete(d.pending, key)
	delete(d.timers, key)
	d.mu.Unlock()
	if ok {
		d.save(key, v)
	}
}

// Flush saves every pending value now. Used on shutdown.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	pending := d.pending
	for _, t := range d.timers {
		t.Stop()
	}
	d.pending = map[string]string{}
	d.timers = map[string]*time.Timer{}
	d.mu.Unlock()

	for k, v := range pending {
		d.save(k, v)
	}
}

func (d *Debouncer) Pending(key string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := d.pending[key]
	return v, ok
}
