package entity

import (
	"fmt"
	"time"
)

// PunchcardEntry is one user's session state in the ledger. LastPunchAt is
// only meaningful while PunchedIn is true; TotalSeconds accumulates on
// punch-out and only resets at the weekly report.
type PunchcardEntry struct {
	PunchedIn    bool      `json:"punched_in"`
	LastPunchAt  time.Time `json:"last_punch"`
	TotalSeconds float64   `json:"total_time"`
}

// Ledger maps Slack user IDs to their punchcard entries.
type Ledger map[string]*PunchcardEntry

// Clone returns a deep copy, safe to hand to persistence while the
// original keeps being mutated.
func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for id, e := range l {
		copied := *e
		out[id] = &copied
	}
	return out
}

// PunchResult reports the outcome of a punch toggle.
type PunchResult struct {
	PunchedIn bool
	// Duration is the length of the session that just ended; zero when the
	// toggle punched the user in.
	Duration time.Duration
}

// Classification buckets an occupancy reading.
type Classification int

const (
	ClassEmpty Classification = iota
	ClassFull
	ClassPartial
)

func (c Classification) String() string {
	switch c {
	case ClassEmpty:
		return "empty"
	case ClassFull:
		return "full"
	default:
		return "partial"
	}
}

// Occupancy is one parsed reading of the game server's player count.
type Occupancy struct {
	Current  int
	Capacity int
}

func (o Occupancy) Classification() Classification {
	switch {
	case o.Current == 0:
		return ClassEmpty
	case o.Current >= o.Capacity:
		return ClassFull
	default:
		return ClassPartial
	}
}

// String renders the reading back into the wire form "current/capacity".
func (o Occupancy) String() string {
	return fmt.Sprintf("%d/%d", o.Current, o.Capacity)
}

// LFGPost tracks one outstanding looking-for-group message so its occupancy
// text can be live-updated until the message disappears.
type LFGPost struct {
	UserID    string
	ChannelID string
	MessageID string
}
