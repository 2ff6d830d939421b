package domain

// StatusFilter restricts a guest query to one status, or none.
type StatusFilter string

const (
	StatusFilterAll   StatusFilter = "all"
	StatusFilterYes   StatusFilter = "yes"
	StatusFilterNo    StatusFilter = "no"
	StatusFilterMaybe StatusFilter = "maybe"
)

// SortField enumerates sortable guest columns.
type SortField string

const (
	SortByName      SortField = "name"
	SortByCreatedAt SortField = "created_at"
	SortByStatus    SortField = "status"
)

// SortOrder is the sort direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// GuestFilterCriteria is a pure value object describing one guest query.
// SearchTerm matches case-insensitively against name OR email; empty means
// no search filter.
type GuestFilterCriteria struct {
	SearchTerm string
	Status     StatusFilter
	SortBy     SortField
	SortOrder  SortOrder
}

// Normalized fills in the defaults the administration views rely on.
func (c GuestFilterCriteria) Normalized() GuestFilterCriteria {
	if c.Status == "" {
		c.Status = StatusFilterAll
	}
	if c.SortBy == "" {
		c.SortBy = SortByCreatedAt
	}
	if c.SortOrder == "" {
		c.SortOrder = SortDesc
	}
	return c
}
