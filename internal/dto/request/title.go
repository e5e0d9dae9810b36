package request

type TitleRequest struct {
	Name        string   `json:"name" validate:"required,max=256"`
	Year        int      `json:"year" validate:"required,notfutureyear"`
	Description *string  `json:"description,omitempty"`
	Genre       []string `json:"genre" validate:"required,min=1,dive,slug"`
	Category    string   `json:"category" validate:"required,slug"`
}

// TitleUpdateRequest leaves nil fields unchanged; a nil Genre keeps the
// current genre set, an empty list is rejected.
type TitleUpdateRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,max=256"`
	Year        *int     `json:"year,omitempty" validate:"omitempty,notfutureyear"`
	Description *string  `json:"description,omitempty"`
	Genre       []string `json:"genre,omitempty" validate:"omitempty,min=1,dive,slug"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,slug"`
}

// TitleQuery carries the list filters from the query string.
type TitleQuery struct {
	PaginatedRequest
	Category string
	Genre    string
	Name     string
	Year     *int
}
