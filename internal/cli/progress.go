package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/mvp-joe/synopsis/internal/extraction"
	"github.com/mvp-joe/synopsis/internal/scan"
)

// CLIProgressReporter implements scan.Reporter with a progress bar and a
// plain-text summary.
type CLIProgressReporter struct {
	out       io.Writer
	quiet     bool
	fileBar   *progressbar.ProgressBar
	startTime time.Time
}

// NewCLIProgressReporter creates a new CLI progress reporter writing to out.
func NewCLIProgressReporter(out io.Writer, quiet bool) *CLIProgressReporter {
	return &CLIProgressReporter{
		out:       out,
		quiet:     quiet,
		startTime: time.Now(),
	}
}

func (c *CLIProgressReporter) OnDiscoveryComplete(files int) {
	c.startTime = time.Now()
	if c.quiet || files < 2 {
		return
	}
	c.fileBar = progressbar.NewOptions(files,
		progressbar.OptionSetWriter(c.out),
		progressbar.OptionSetDescription("Scanning files"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

func (c *CLIProgressReporter) OnFileScanned(path string) {
	if c.fileBar != nil {
		_ = c.fileBar.Add(1)
	}
}

func (c *CLIProgressReporter) OnComplete(report *scan.Report) {
	if c.fileBar != nil {
		_ = c.fileBar.Finish()
		c.fileBar = nil
	}
	if c.quiet {
		return
	}
	writeReport(c.out, report, time.Since(c.startTime))
}

// writeReport prints one row per file followed by the per-indicator totals.
func writeReport(out io.Writer, report *scan.Report, elapsed time.Duration) {
	for _, f := range report.Files {
		fmt.Fprintf(out, "  %-50s %4d/%-4d %s\n", f.Path, f.Progress.Current, f.Progress.Total, formatPercent(f.Progress))
	}
	if len(report.Files) > 0 {
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "✓ Documented %d of %d (%s) across %d files in %.1fs\n",
		report.Total.Current, report.Total.Total, formatPercent(report.Total),
		len(report.Files), elapsed.Seconds())

	for _, ind := range extraction.AllIndicators {
		count := report.Total.Breakdown[ind]
		if count.Total == 0 {
			continue
		}
		fmt.Fprintf(out, "  %-9s %d/%d\n", string(ind)+":", count.Current, count.Total)
	}
	if report.Skipped > 0 {
		fmt.Fprintf(out, "  Skipped:  %d files\n", report.Skipped)
	}
}

func formatPercent(p extraction.Progress) string {
	return fmt.Sprintf("%.0f%%", p.Ratio()*100)
}
