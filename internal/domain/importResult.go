package domain

// ImportResult resume uma execução do importador de métricas.
type ImportResult struct {
	RunID        string `json:"run_id"`
	File         string `json:"file"`
	Sheet        string `json:"sheet"`
	RowsRead     int    `json:"rows_read"`
	Normalized   int    `json:"normalized"`
	Inserted     int    `json:"inserted"`
	Updated      int    `json:"updated"`
	TotalMetrics int    `json:"total_metrics"`
	DryRun       bool   `json:"dry_run"`
	DurationMS   int64  `json:"duration_ms"`
}
