package batch

import (
	"encoding/json"
	"fmt"
	"io"

	"uploader/pkg/domain"
)

const (
	ciSummaryHeader = "--- UPLOAD_RESULTS_JSON ---"
	ciSummaryFooter = "--- END_UPLOAD_RESULTS_JSON ---"
)

// WriteCISummary writes the machine-readable result block that a CI pipeline
// parses out of the captured output. The JSON payload sits between two fixed
// marker lines.
func WriteCISummary(w io.Writer, report domain.Report) error {
	summary := struct {
		Successful []domain.UploadResult `json:"successful"`
		Failed     []domain.UploadResult `json:"failed"`
		Total      int                   `json:"total"`
	}{
		Successful: report.Successful(),
		Failed:     report.Failed(),
		Total:      report.Total(),
	}

	b, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal summary: %w", err)
	}

	if _, err := fmt.Fprintf(w, "%s\n%s\n%s\n", ciSummaryHeader, b, ciSummaryFooter); err != nil {
		return fmt.Errorf("could not write summary: %w", err)
	}

	return nil
}
