package threadid

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/petermattis/goid"
)

var (
	// labels maps goroutine id to *string. Each key is written only by
	// its own goroutine.
	labels sync.Map

	generator atomic.Uint64

	osNaming atomic.Bool
)

// Get returns the calling goroutine's label, assigning the next counter
// value on first use.
func Get() string {
	id := goid.Get()
	if p, ok := labels.Load(id); ok {
		return *p.(*string)
	}

	label := strconv.FormatUint(generator.Add(1)-1, 10)
	labels.Store(id, &label)
	propagate(label)
	return label
}

// Set replaces the calling goroutine's label with name, creating the slot
// if needed.
func Set(name string) {
	id := goid.Get()
	if p, ok := labels.Load(id); ok {
		*p.(*string) = name
	} else {
		labels.Store(id, &name)
	}
	propagate(name)
}

// Current returns the calling goroutine's label if it has one and
// otherwise "g" followed by the runtime goroutine id. Unlike Get it never
// creates a slot, so it is safe to call from goroutines that never
// Release.
func Current() string {
	id := goid.Get()
	if p, ok := labels.Load(id); ok {
		return *p.(*string)
	}
	return "g" + strconv.FormatInt(id, 10)
}

// Lookup returns the calling goroutine's label without assigning one.
func Lookup() (string, bool) {
	p, ok := labels.Load(goid.Get())
	if !ok {
		return "", false
	}
	return *p.(*string), true
}

// Release forgets the calling goroutine's label. A later Get assigns a
// fresh number.
func Release() {
	labels.Delete(goid.Get())
}

// SetOSNaming enables or disables propagation of labels to OS thread
// names. It is disabled by default: the name lands on whichever OS thread
// runs the goroutine, which may be the main thread and so the process
// name shown by ps.
func SetOSNaming(enabled bool) {
	osNaming.Store(enabled)
}

func propagate(name string) {
	if osNaming.Load() {
		setOSThreadName(name)
	}
}
