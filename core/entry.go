package core

import (
	"sync"
	"time"
)

// Entry is one finished log line together with its metadata, as handed by
// a sink to its handlers.
type Entry struct {
	Time     time.Time
	Level    Level
	Message  string
	Thread   string
	Location Location
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves a zeroed Entry from the pool
func GetEntry() *Entry {
	return entryPool.Get().(*Entry)
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	*e = Entry{}
	entryPool.Put(e)
}
