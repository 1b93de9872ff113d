package sync

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FailureKind classifies what went wrong during a run. The value is the
// process exit code; when several kinds are recorded the highest wins.
type FailureKind int

const (
	// ExitConfig is used by the command when the configuration is invalid,
	// before any run starts.
	ExitConfig = 2

	FailureLocked    FailureKind = 3
	FailureFetch     FailureKind = 4
	FailureStateLoad FailureKind = 5
	FailureExport    FailureKind = 6
	FailurePersist   FailureKind = 7
)

func (k FailureKind) String() string {
	switch k {
	case FailureLocked:
		return "locked"
	case FailureFetch:
		return "fetch"
	case FailureStateLoad:
		return "state load"
	case FailureExport:
		return "export"
	case FailurePersist:
		return "persist"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

type Failure struct {
	Kind FailureKind
	Op   string
	Err  error
}

func (f Failure) String() string {
	return fmt.Sprintf("%s: %s: %v", f.Kind, f.Op, f.Err)
}

// Artifact is a file a writer produced.
type Artifact struct {
	Writer string
	Path   string
}

// Report is the outcome of one run.
type Report struct {
	RunID     string
	Day       time.Time
	Started   time.Time
	Finished  time.Time
	RunNumber int

	Fetched   int
	New       int
	Customers int

	Artifacts []Artifact
	Failures  []Failure
}

func NewReport(day time.Time) *Report {
	return &Report{
		RunID:   uuid.NewString(),
		Day:     day,
		Started: time.Now(),
	}
}

func (r *Report) Fail(kind FailureKind, op string, err error) {
	r.Failures = append(r.Failures, Failure{Kind: kind, Op: op, Err: err})
}

func (r *Report) Failed(kind FailureKind) bool {
	for _, f := range r.Failures {
		if f.Kind == kind {
			return true
		}
	}
	return false
}

func (r *Report) OK() bool {
	return len(r.Failures) == 0
}

// ExitCode is 0 for a clean run, otherwise the most severe failure kind.
func (r *Report) ExitCode() int {
	code := 0
	for _, f := range r.Failures {
		if int(f.Kind) > code {
			code = int(f.Kind)
		}
	}
	return code
}

// Message renders the report for the chat.
func (r *Report) Message() string {
	var b strings.Builder
	status := "ok"
	if !r.OK() {
		status = "FAILED"
	}
	fmt.Fprintf(&b, "WooCommerce orders %s, run %s: %s\n", r.Day.Format("02-01-2006"), r.RunID, status)
	fmt.Fprintf(&b, "fetched %d, new %d, customers %d", r.Fetched, r.New, r.Customers)
	if r.RunNumber > 0 {
		fmt.Fprintf(&b, ", run number %d", r.RunNumber)
	}
	for _, a := range r.Artifacts {
		fmt.Fprintf(&b, "\n%s: %s", a.Writer, a.Path)
	}
	for _, f := range r.Failures {
		fmt.Fprintf(&b, "\n%s", f)
	}
	return b.String()
}
