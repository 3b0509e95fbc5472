package booking

import "time"

// Period is the requested rental window. Construction does not validate:
// date sanity is checked against the injected clock by the factory so that
// the creation-time failure order stays deterministic.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) Period {
	return Period{start: start, end: end}
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}

func (p Period) Duration() time.Duration {
	return p.end.Sub(p.start)
}

// ValidateAt rejects missing, inverted, zero-length or in-the-past windows.
// Every violation is the same failure kind.
func (p Period) ValidateAt(now time.Time) error {
	if p.start.IsZero() || p.end.IsZero() {
		return ErrInvalidPeriod
	}
	if p.end.Before(now) {
		return ErrInvalidPeriod
	}
	if !p.end.After(p.start) {
		return ErrInvalidPeriod
	}
	if p.start.Before(now) {
		return ErrInvalidPeriod
	}
	return nil
}

// Bucket is the temporal classification of a period relative to an instant.
// Computed at query time, never persisted, independent of Status.
type Bucket string

const (
	BucketPast    Bucket = "PAST"
	BucketCurrent Bucket = "CURRENT"
	BucketFuture  Bucket = "FUTURE"
)

// BucketAt partitions exhaustively: given start < end, every period falls
// into exactly one bucket for any instant t.
func (p Period) BucketAt(t time.Time) Bucket {
	switch {
	case p.end.Before(t):
		return BucketPast
	case p.start.After(t):
		return BucketFuture
	default:
		return BucketCurrent
	}
}
