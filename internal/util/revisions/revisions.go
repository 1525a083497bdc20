package revisions

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Tracker keeps a monotonically increasing revision per (table, scope)
// pair, the scope being a workspace or a narrower container such as a
// channel. Every write path bumps its pair; list endpoints expose the
// revision as an ETag so clients can poll with If-None-Match and get
// 304s while nothing changed. This is the polling flavor of live reads:
// the revision changes exactly when the latest committed write would
// change the result set visible to the caller.
type Tracker struct {
	mu   sync.RWMutex
	revs map[string]uint64
}

func NewTracker() *Tracker {
	return &Tracker{revs: make(map[string]uint64)}
}

func (t *Tracker) key(table string, scopeID uuid.UUID) string {
	return table + "/" + scopeID.String()
}

// Bump records a write against the table within the scope.
func (t *Tracker) Bump(table string, scopeID uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.revs[t.key(table, scopeID)]++
}

// ETag returns the current ETag value for the table within the scope.
func (t *Tracker) ETag(table string, scopeID uuid.UUID) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return fmt.Sprintf("\"%s-%d\"", table, t.revs[t.key(table, scopeID)])
}

var defaultTracker = NewTracker()

func GetTracker() *Tracker {
	return defaultTracker
}
