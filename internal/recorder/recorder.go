package recorder

// RunRecord holds the outcome of one report generation run.
type RunRecord struct {
	Mode         string // "chart" or "slides"
	Digests      int
	LatestPrice  float64
	WeeklyChange float64
	SeriesDays   int
	OutputPath   string
}

// Recorder persists run history for later inspection.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	Close() error
}
