package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Options configures the progress reporter.
type Options struct {
	// Output is where to write progress output.
	// Default: os.Stderr
	Output io.Writer

	// MinSize is the smallest declared download size for which progress
	// lines are emitted. Downloads below this size, or with an unknown
	// size, stay silent.
	// Default: 1MB
	MinSize int64

	// UpdateInterval is the minimum time between progress lines.
	// Default: 200ms
	UpdateInterval time.Duration
}

// Reporter outputs human-readable progress for one download at a time.
// Progress output is side-effect only; it never influences the outcome of
// a fetch.
type Reporter struct {
	opts Options

	mu         sync.Mutex
	total      int64
	done       int64
	active     bool
	lastUpdate time.Time
	startTime  time.Time
}

// NewReporter creates a new progress reporter.
func NewReporter(opts Options) *Reporter {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	if opts.MinSize == 0 {
		opts.MinSize = 1024 * 1024
	}
	if opts.UpdateInterval == 0 {
		opts.UpdateInterval = 200 * time.Millisecond
	}

	return &Reporter{opts: opts}
}

// Start begins reporting a download. total is the declared size in bytes;
// a total below MinSize (or <= 0 for unknown) suppresses output for this
// download.
func (r *Reporter) Start(url string, total int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.total = total
	r.done = 0
	r.active = total >= r.opts.MinSize
	r.startTime = time.Now()
	r.lastUpdate = time.Time{}

	if r.active {
		fmt.Fprintf(r.opts.Output, "[fetcher] Downloading: %s (%s)\n", url, formatBytes(total))
	}
}

// Advance records n more downloaded bytes and, if enough time has passed
// since the last line, prints the current percentage.
func (r *Reporter) Advance(n int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.done += n
	if !r.active {
		return
	}

	now := time.Now()
	if now.Sub(r.lastUpdate) < r.opts.UpdateInterval {
		return
	}
	r.lastUpdate = now

	percent := float64(r.done) / float64(r.total) * 100
	if percent > 100 {
		percent = 100
	}
	fmt.Fprintf(r.opts.Output, "\r[fetcher] Progress: %.1f%% | %s / %s    ",
		percent,
		formatBytes(r.done),
		formatBytes(r.total),
	)
}

// Done finishes the current download, printing a final line when progress
// output was active.
func (r *Reporter) Done() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.active {
		return
	}
	r.active = false

	duration := time.Since(r.startTime)
	fmt.Fprintf(r.opts.Output, "\r[fetcher] Progress: 100.0%% | %s / %s | %s    \n",
		formatBytes(r.done),
		formatBytes(r.total),
		formatDuration(duration),
	)
}

// formatBytes formats bytes as a human-readable string.
func formatBytes(b int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
		TB = GB * 1024
	)

	switch {
	case b >= TB:
		return fmt.Sprintf("%.2f TB", float64(b)/float64(TB))
	case b >= GB:
		return fmt.Sprintf("%.2f GB", float64(b)/float64(GB))
	case b >= MB:
		return fmt.Sprintf("%.2f MB", float64(b)/float64(MB))
	case b >= KB:
		return fmt.Sprintf("%.2f KB", float64(b)/float64(KB))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

// formatDuration formats a duration as a human-readable string.
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}

// FormatBytes is exported for use by other packages.
func FormatBytes(b int64) string {
	return formatBytes(b)
}

// ParseBytes parses a human-readable byte string (e.g., "50MB").
func ParseBytes(s string) (int64, error) {
	var multiplier int64 = 1
	s = trimSuffix(s, " ")

	switch {
	case hasSuffix(s, "TB"):
		multiplier = 1024 * 1024 * 1024 * 1024
		s = s[:len(s)-2]
	case hasSuffix(s, "GB"):
		multiplier = 1024 * 1024 * 1024
		s = s[:len(s)-2]
	case hasSuffix(s, "MB"):
		multiplier = 1024 * 1024
		s = s[:len(s)-2]
	case hasSuffix(s, "KB"):
		multiplier = 1024
		s = s[:len(s)-2]
	case hasSuffix(s, "B"):
		s = s[:len(s)-1]
	}

	var value float64
	_, err := fmt.Sscanf(s, "%f", &value)
	if err != nil {
		return 0, fmt.Errorf("invalid byte string: %s", s)
	}

	return int64(value * float64(multiplier)), nil
}

func hasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}

func trimSuffix(s, suffix string) string {
	for hasSuffix(s, suffix) {
		s = s[:len(s)-len(suffix)]
	}
	return s
}
