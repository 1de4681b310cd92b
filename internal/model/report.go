package model

// Report summarizes one unification run. Skipped counts records dropped for
// per-record failures; Processed == Unified + Skipped always holds.
type Report struct {
	RunID     string `json:"run_id"`
	Processed int    `json:"processed"`
	Unified   int    `json:"unified"`
	Skipped   int    `json:"skipped"`
}
