package domain

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page selects a window of a listing. Number counts from 0.
type Page struct {
	Number int
	Size   int
}

// Normalize fills in the default size and validates the window.
func (p Page) Normalize() (Page, error) {
	if p.Number < 0 {
		return p, Validationf("page must not be negative")
	}
	if p.Size == 0 {
		p.Size = DefaultPageSize
	}
	if p.Size < 0 || p.Size > MaxPageSize {
		return p, Validationf("size must be between 1 and %d", MaxPageSize)
	}
	return p, nil
}

func (p Page) Offset() int {
	return p.Number * p.Size
}
