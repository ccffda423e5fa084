package golden

// #region imports
import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// #endregion

// #region types

// Failure records one diverging case.
type Failure struct {
	Index    int
	Msg      string
	Expected string
	Got      string
	Note     string
}

// Report aggregates one harness run.
type Report struct {
	RunID    string
	Total    int
	Passed   int
	Failures []Failure
}

// OK reports whether every case matched.
func (r Report) OK() bool { return len(r.Failures) == 0 }

// #endregion

// #region run

// Run replays every case through classify and collects divergences.
// classify is the classifier's single public seam: text in, label out.
func Run(cases []Case, classify func(text string) string) Report {
	report := Report{
		RunID: uuid.New().String(),
		Total: len(cases),
	}
	for i, c := range cases {
		got := classify(c.Msg)
		if got == c.Expected {
			report.Passed++
			continue
		}
		report.Failures = append(report.Failures, Failure{
			Index:    i + 1,
			Msg:      c.Msg,
			Expected: c.Expected,
			Got:      got,
			Note:     c.Note,
		})
	}
	return report
}

// #endregion

// #region format

// Format renders the run as a pass/fail table plus summary line.
func (r Report) Format() string {
	var b strings.Builder
	for _, f := range r.Failures {
		preview := f.Msg
		if len(preview) > 70 {
			preview = preview[:70] + "..."
		}
		fmt.Fprintf(&b, "  FAIL [%d] expected=%s, got=%s\n", f.Index, f.Expected, f.Got)
		fmt.Fprintf(&b, "         msg: %s\n", preview)
		if f.Note != "" {
			fmt.Fprintf(&b, "         note: %s\n", f.Note)
		}
	}
	fmt.Fprintf(&b, "\nrun %s: %d/%d passed", r.RunID, r.Passed, r.Total)
	if len(r.Failures) > 0 {
		fmt.Fprintf(&b, ", %d FAILED\n", len(r.Failures))
	} else {
		b.WriteString(", all good\n")
	}
	return b.String()
}

// #endregion
