package booking

import "itemshare/internal/pkg/errs"

var ErrUnknownStatusFilter = errs.New("unknown state")

// StatusFilter selects which bookings a listing returns. ALL/CURRENT/PAST/
// FUTURE classify against the query-time clock; WAITING/REJECTED match the
// stored status.
type StatusFilter string

const (
	FilterAll      StatusFilter = "ALL"
	FilterCurrent  StatusFilter = "CURRENT"
	FilterPast     StatusFilter = "PAST"
	FilterFuture   StatusFilter = "FUTURE"
	FilterWaiting  StatusFilter = "WAITING"
	FilterRejected StatusFilter = "REJECTED"
)

func (f StatusFilter) String() string {
	return string(f)
}

// ParseStatusFilter matches the exact filter token. An unrecognized value is
// an error carrying the offending string; it never falls back to ALL.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch StatusFilter(s) {
	case FilterAll, FilterCurrent, FilterPast, FilterFuture, FilterWaiting, FilterRejected:
		return StatusFilter(s), nil
	default:
		return "", errs.Mark(errs.Newf("unknown state: %s", s), ErrUnknownStatusFilter)
	}
}
