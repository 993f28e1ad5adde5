// Package naming provides the fixed-width sequence encoding used to order
// report files on disk. Prefixes are zero-padded so that a plain directory
// listing reproduces the logical order of support specs and data records.
package naming

import (
	"fmt"

	"github.com/arthur-debert/specreport/pkg/types"
)

// SequenceWidth is the zero-pad width of sequence prefixes. Lexicographic
// order matches numeric order for up to 9999 items; larger sequences widen
// the prefix but stay fixed-width within a run.
const SequenceWidth = 4

// EncodeSequence zero-pads a 1-based ordinal to at least SequenceWidth
// digits (1 -> "0001").
func EncodeSequence(n int) string {
	return fmt.Sprintf("%0*d", SequenceWidth, n)
}

// RecordPrefix returns the file-name prefix for an optional data record:
// "0007-" for record number 7, "" when no record is present.
func RecordPrefix(record *types.DataRecord) string {
	if record == nil {
		return ""
	}
	return EncodeSequence(record.Number) + "-"
}

// SequencePrefix returns the file-name prefix for a 1-based ordinal,
// e.g. "0002-" for the second support spec of a feature.
func SequencePrefix(n int) string {
	return EncodeSequence(n) + "-"
}
