// Structured parse diagnostics.
//
// The table never aborts a parse over bad data; it records what went wrong
// and keeps going. Each problem becomes a Diag the caller can inspect
// afterwards to decide whether the best-effort result is acceptable.
package proptab

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Diag records one non-fatal parse problem: a malformed range (the whole
// line was skipped) or a field that failed its column's grammar (the field
// kept its zero value and the rest of the line was still parsed).
type Diag struct {
	Line   int    // 1-based source line
	Column int    // column index, -1 for range errors
	Field  string // column name, "" for range errors
	Token  string // the offending input
	Err    error  // the sentinel that classifies the problem
}

func (d Diag) Error() string {
	if d.Column < 0 {
		return fmt.Sprintf("line %d: range %q: %v", d.Line, d.Token, d.Err)
	}
	return fmt.Sprintf("line %d: column %d (%s): %v", d.Line, d.Column, d.Field, d.Err)
}

func (d Diag) Unwrap() error { return d.Err }

// MarshalJSON renders the diagnostic for tooling, flattening Err into its
// message.
func (d Diag) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Line   int    `json:"line"`
		Column int    `json:"column"`
		Field  string `json:"field,omitempty"`
		Token  string `json:"token"`
		Error  string `json:"error"`
	}{d.Line, d.Column, d.Field, d.Token, d.Err.Error()})
}
