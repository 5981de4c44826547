package entity

// PaginationParams represents pagination request parameters.
type PaginationParams struct {
	Limit  int `json:"limit" query:"limit"`
	Offset int `json:"offset" query:"offset"`
}

// Pagination bounds.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Normalize clamps the parameters into their allowed ranges. Limit and
// offset bound the result length but never change its order.
func (p *PaginationParams) Normalize() {
	if p.Limit < 1 {
		p.Limit = DefaultPageSize
	} else if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}

	if p.Offset < 0 {
		p.Offset = 0
	}
}
