package snapshot

import (
	"time"
)

// Snapshot is one persisted beta observation: the indicator's output after a
// successful bar pairing.
type Snapshot struct {
	ID        string
	Timestamp time.Time
	Target    string
	Reference string
	Beta      float64
	Ready     bool
}

// Filter represents the filter criteria for beta snapshots.
type Filter struct {
	Target    string
	Reference string
	From      *time.Time
	To        *time.Time
	Limit     int
}
