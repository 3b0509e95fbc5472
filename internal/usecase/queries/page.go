package queries

import "itemshare/internal/pkg/errs"

// DefaultPageSize is large enough that an unpaginated caller sees the whole
// result set for any realistic dataset.
const DefaultPageSize = 1000

var ErrInvalidPage = errs.New("invalid pagination parameters")

// Page converts a (record offset, page size) pair into (page number, page
// size). An offset that is not a multiple of the size lands on the page
// containing it, rounded down.
type Page struct {
	number int32
	size   int32
}

func NewPage(from, size *int32) (Page, error) {
	f := int32(0)
	if from != nil {
		f = *from
	}
	s := int32(DefaultPageSize)
	if size != nil {
		s = *size
	}

	if f < 0 || s <= 0 {
		return Page{}, ErrInvalidPage
	}

	return Page{number: f / s, size: s}, nil
}

func (p Page) Number() int32 { return p.number }
func (p Page) Size() int32   { return p.size }

func (p Page) Limit() int32  { return p.size }
func (p Page) Offset() int32 { return p.number * p.size }
