package catalog

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/wikiai/wikiai/pkg/errors"
)

// Export serializes all current tools as an indented JSON array,
// losslessly round-trippable back through Import.
func (r *Repository) Export() ([]byte, error) {
	data, err := json.MarshalIndent(r.List(), "", "  ")
	if err != nil {
		return nil, errors.WrapParse("json", "export", err)
	}
	return data, nil
}

// ImportFailure reports one rejected record from a bulk import.
type ImportFailure struct {
	Index int    // Position in the imported payload
	Name  string // Name of the record, when present
	Err   error
}

// String returns a human-readable description of the failure.
func (f ImportFailure) String() string {
	if f.Name != "" {
		return fmt.Sprintf("record %d (%s): %v", f.Index, f.Name, f.Err)
	}
	return fmt.Sprintf("record %d: %v", f.Index, f.Err)
}

// ImportReport summarizes a bulk import: how many records were accepted
// and which ones were rejected and why.
type ImportReport struct {
	Imported int
	Failures []ImportFailure
}

// Import decodes a JSON array of tool records and creates each one,
// validated exactly as Create. Import is not all-or-nothing: records
// that validate are committed, the rest are reported per-record in the
// returned report. A payload that does not decode at all is a ParseError
// and commits nothing.
func (r *Repository) Import(data []byte) (*ImportReport, error) {
	var drafts []Tool
	if err := json.Unmarshal(data, &drafts); err != nil {
		return nil, errors.WrapParse("json", "import payload", err)
	}

	report := &ImportReport{}
	for i, draft := range drafts {
		if _, err := r.Create(draft); err != nil {
			report.Failures = append(report.Failures, ImportFailure{
				Index: i,
				Name:  draft.Name,
				Err:   err,
			})
			continue
		}
		report.Imported++
	}
	return report, nil
}
