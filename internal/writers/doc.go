// Package writers turns rebuilt layouts and file summaries into serialized
// outputs.
//
// Design:
//   • Writers own all presentation knowledge (tiling, TSV, JSON/JSONL, FASTA).
//   • asmstore stays domain-only; the cli stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
