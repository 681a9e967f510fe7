package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"asmkit/internal/jsonutil"
	"asmkit/internal/output"
	"asmkit/pkg/api"
)

// WriteSummary writes s as text, json or jsonl.
func WriteSummary(w io.Writer, format string, s api.SummaryV1) error {
	var err error
	switch format {
	case "text", "tsv":
		err = output.WriteSummaryText(w, s)
	case "json":
		err = jsonutil.EncodePretty(w, s)
	case "jsonl":
		err = json.NewEncoder(w).Encode(s)
	default:
		return fmt.Errorf("unknown summary format %q", format)
	}
	if IsBrokenPipe(err) {
		return nil
	}
	return err
}
