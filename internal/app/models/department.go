package models

// Department represents an academic department; its code prefixes course codes.
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}
