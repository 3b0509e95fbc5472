package booking

// Status is the persisted lifecycle state of a booking. Temporal
// classification (past/current/future) is never stored; see StatusFilter
// and Period.BucketAt.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	// StatusCanceled is recognized when reconstructing stored rows but no
	// operation produces it.
	StatusCanceled Status = "CANCELED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected, StatusCanceled:
		return true
	default:
		return false
	}
}

func (s Status) IsFinal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCanceled
}
