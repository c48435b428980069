package scan

// Reporter receives scan progress. Implementations can display progress
// bars, log messages, or remain silent. OnFileScanned is called from worker
// goroutines and must be safe for concurrent use.
type Reporter interface {
	// OnDiscoveryComplete is called once the files to scan are known.
	OnDiscoveryComplete(files int)

	// OnFileScanned is called after each file is measured or skipped.
	OnFileScanned(path string)

	// OnComplete is called with the finished report.
	OnComplete(report *Report)
}

// NoOpReporter is a reporter that does nothing.
// Used when progress reporting is disabled (e.g., --json output).
type NoOpReporter struct{}

func (NoOpReporter) OnDiscoveryComplete(int) {}
func (NoOpReporter) OnFileScanned(string)    {}
func (NoOpReporter) OnComplete(*Report)      {}
