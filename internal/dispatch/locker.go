package dispatch

import "sync"

// Locker is the exclusive/shared contract the dispatcher relies on. The default
// is one sync.RWMutex for the whole model; finer-grained schemes can be swapped
// in as long as Lock excludes every RLock holder.
type Locker interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

func newRWLocker() Locker {
	return new(sync.RWMutex)
}
