package trip

import (
	"bytes"
	"fmt"
	"io"
	"math"
)

// Step is one numbered line of directions.
type Step struct {
	Number int
	Road   string
	Dir    Direction
	Length float64
	// To is the stop reached at the end of this step, set only on the last
	// step of each leg.
	To string
}

// String renders the step as in the report, without a trailing newline.
func (s Step) String() string {
	dest := ""
	if s.To != "" {
		dest = " to " + s.To
	}
	return fmt.Sprintf("%d. Take %s %s for %.1f miles%s.",
		s.Number, s.Road, s.Dir.FullName(), roundTenth(s.Length), dest)
}

// Report is the written description of a planned trip.
type Report struct {
	Start string
	Steps []Step
	// Distance is the total length of the trip.
	Distance float64
}

// WriteTo writes the report in its text format.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From %s:\n\n", r.Start)
	for _, s := range r.Steps {
		buf.WriteString(s.String())
		buf.WriteByte('\n')
	}
	return buf.WriteTo(w)
}

// String returns the text form of the report.
func (r *Report) String() string {
	var buf bytes.Buffer
	_, _ = r.WriteTo(&buf)
	return buf.String()
}

func roundTenth(x float64) float64 {
	return math.Round(x*10) / 10
}
