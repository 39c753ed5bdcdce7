package types

// SortInput orders a list request by one key. Earlier entries take precedence.
type SortInput struct {
	Key   string `json:"key" binding:"required"`
	Order string `json:"order" binding:"omitempty,oneof=asc desc"`
}

// FilterInput narrows a list request with one case-insensitive predicate.
type FilterInput struct {
	Key      string `json:"key" binding:"required"`
	Value    any    `json:"value"`
	Operator string `json:"operator" binding:"omitempty,oneof=equals contains startsWith endsWith"`
}

// ListQuery is the generic pagination/filter/sort request body shared by every
// list endpoint. A limit of -1 disables pagination.
type ListQuery struct {
	Page    int           `json:"page" binding:"omitempty,min=1"`
	Limit   int           `json:"limit" binding:"omitempty,min=-1,max=100"`
	Sorts   []SortInput   `json:"sorts" binding:"omitempty,dive"`
	Filters []FilterInput `json:"filters" binding:"omitempty,dive"`
}

// Page is a paginated list response.
type Page[T any] struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Data  []T   `json:"data"`
}
