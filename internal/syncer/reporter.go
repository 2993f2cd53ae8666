package syncer

// Reporter observes cumulative transfer progress for one file at a
// time: Start, then Add after each chunk, then Finish. Implementations
// live in internal/progress. Reporting is purely observational and
// never affects transfer control flow.
type Reporter interface {
	Start(total int64, description string)
	Add(n int64)
	Finish()
}

// nopReporter discards all progress.
type nopReporter struct{}

func (nopReporter) Start(int64, string) {}
func (nopReporter) Add(int64)           {}
func (nopReporter) Finish()             {}
