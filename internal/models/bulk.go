package models

// BulkResult aggregates the outcome of an unordered bulk upsert.
type BulkResult struct {
	Matched  int64 `json:"matched"`
	Modified int64 `json:"modified"`
	Upserted int64 `json:"upserted"`
}
