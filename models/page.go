package models

// PageMeta describes one page of a list response.
type PageMeta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int64 `json:"totalPages"`
}

// NewPageMeta computes pagination metadata. TotalPages is ceiling division.
func NewPageMeta(page, pageSize int, totalItems int64) PageMeta {
	return PageMeta{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: (totalItems + int64(pageSize) - 1) / int64(pageSize),
	}
}
