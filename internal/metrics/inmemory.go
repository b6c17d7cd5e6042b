package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersCreated     uint64
	UsersUpdated     uint64
	UsersDeleted     uint64
	PasswordsChanged uint64
	UserCacheHits    uint64
	UserCacheMisses  uint64
}

// InMemoryRecorder stores metrics in memory.
type InMemoryRecorder struct {
	usersCreated     uint64
	usersUpdated     uint64
	usersDeleted     uint64
	passwordsChanged uint64
	userCacheHits    uint64
	userCacheMisses  uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersCreated:     atomic.LoadUint64(&m.usersCreated),
		UsersUpdated:     atomic.LoadUint64(&m.usersUpdated),
		UsersDeleted:     atomic.LoadUint64(&m.usersDeleted),
		PasswordsChanged: atomic.LoadUint64(&m.passwordsChanged),
		UserCacheHits:    atomic.LoadUint64(&m.userCacheHits),
		UserCacheMisses:  atomic.LoadUint64(&m.userCacheMisses),
	}
}

// IncUserCreated increments the created counter.
func (m *InMemoryRecorder) IncUserCreated() {
	atomic.AddUint64(&m.usersCreated, 1)
}

// IncUserUpdated increments the updated counter.
func (m *InMemoryRecorder) IncUserUpdated() {
	atomic.AddUint64(&m.usersUpdated, 1)
}

// IncUserDeleted increments the deleted counter.
func (m *InMemoryRecorder) IncUserDeleted() {
	atomic.AddUint64(&m.usersDeleted, 1)
}

// IncPasswordChanged increments the password change counter.
func (m *InMemoryRecorder) IncPasswordChanged() {
	atomic.AddUint64(&m.passwordsChanged, 1)
}

// IncUserCacheHit increments the cache hit counter.
func (m *InMemoryRecorder) IncUserCacheHit() {
	atomic.AddUint64(&m.userCacheHits, 1)
}

// IncUserCacheMiss increments the cache miss counter.
func (m *InMemoryRecorder) IncUserCacheMiss() {
	atomic.AddUint64(&m.userCacheMisses, 1)
}
