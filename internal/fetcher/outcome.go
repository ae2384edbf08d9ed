package fetcher

import "fmt"

// Status is the terminal state of one fetch attempt. Every fetch ends in
// exactly one status; a file is written to disk only for StatusSaved.
type Status int

const (
	// StatusSaved means the image was downloaded and written to disk.
	StatusSaved Status = iota
	// StatusSkipped means byte-identical content was already saved.
	StatusSkipped
	// StatusRejected means the response violated content-type or size policy.
	StatusRejected
	// StatusFailed means the fetch failed (network, HTTP status, filesystem).
	StatusFailed
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusSaved:
		return "saved"
	case StatusSkipped:
		return "skipped"
	case StatusRejected:
		return "rejected"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Reason qualifies a non-saved outcome.
type Reason string

const (
	ReasonDuplicate   Reason = "duplicate"
	ReasonContentType Reason = "invalid-content-type"
	ReasonTooLarge    Reason = "too-large"
	ReasonNetwork     Reason = "network"
	ReasonHTTPStatus  Reason = "http-status"
	ReasonFilesystem  Reason = "filesystem"
)

// Outcome is the result of one fetch attempt. Which fields are set depends
// on Status: Path, Size and Hash for saved; ExistingPath for skipped; Err
// carries detail for rejected and failed outcomes.
type Outcome struct {
	URL    string
	Status Status
	Reason Reason

	Path string
	Size int64
	Hash string

	ExistingPath string

	Err error
}

func saved(url, path string, size int64, hash string) Outcome {
	return Outcome{URL: url, Status: StatusSaved, Path: path, Size: size, Hash: hash}
}

func skipped(url, existingPath string) Outcome {
	return Outcome{URL: url, Status: StatusSkipped, Reason: ReasonDuplicate, ExistingPath: existingPath}
}

func rejected(url string, reason Reason, err error) Outcome {
	return Outcome{URL: url, Status: StatusRejected, Reason: reason, Err: err}
}

func failed(url string, reason Reason, err error) Outcome {
	return Outcome{URL: url, Status: StatusFailed, Reason: reason, Err: err}
}

// Summary aggregates outcomes over one batch.
type Summary struct {
	Saved    int
	Skipped  int
	Rejected int
	Failed   int

	// Dir is the target directory the batch saved into.
	Dir string
}

// Total returns the number of fetch attempts the summary covers.
func (s Summary) Total() int {
	return s.Saved + s.Skipped + s.Rejected + s.Failed
}

func (s *Summary) add(o Outcome) {
	switch o.Status {
	case StatusSaved:
		s.Saved++
	case StatusSkipped:
		s.Skipped++
	case StatusRejected:
		s.Rejected++
	case StatusFailed:
		s.Failed++
	}
}
