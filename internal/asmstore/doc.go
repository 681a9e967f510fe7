// Package asmstore serves contigs and unitigs out of an ASM file.
//
// Design:
//   • BuildIndex makes one forward pass and keeps a bookmark per record id.
//     Memory is O(records), not O(file).
//   • Get re-parses the file three times per lookup: from the bookmark to
//     list the record's reads, from the start to collect exactly those clear
//     ranges (halting at the first layout message), and from the bookmark
//     again to rebuild the record.
//   • Load* reads everything in two passes when the whole file is wanted.
package asmstore
