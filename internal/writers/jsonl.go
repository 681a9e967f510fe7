package writers

import (
	"encoding/json"
	"io"

	"asmkit/internal/assembly"
	"asmkit/internal/jsonlutil"
	"asmkit/internal/output"
)

// startJSONL streams each layout as one JSON line (v1).
func startJSONL(out io.Writer, bufSize int) (chan<- assembly.Layout, <-chan error) {
	return jsonlutil.Start[assembly.Layout](out, bufSize,
		func(enc *json.Encoder, l assembly.Layout) error {
			return enc.Encode(output.ToAPILayout(l))
		},
		IsBrokenPipe,
	)
}
