package model

// Section describes one removable span of markup, delimited by a
// start marker and an end marker.
//
// Start is matched verbatim. End is split on whitespace into
// fragments; the span ends at the nearest position after the start
// marker where the fragments occur in order, separated only by
// whitespace.
type Section struct {
	Name  string
	Start string
	End   string
}

// Removal records one deleted span.
type Removal struct {
	Section string
	Offset  int // byte offset of the removed span in the old document
	Chars   int // number of characters removed
}

// Step is one line of the size report: the document size in
// characters after the named operation. The first step of a report is
// always labeled "original".
type Step struct {
	Label string
	Size  int
}

// FileReport holds the size progression for one processed document.
type FileReport struct {
	Path    string
	Steps   []Step
	Changed bool
}

// Summary holds the results of an operation for display.
type Summary struct {
	Modified  []string
	Unchanged []string
	Reports   []FileReport
	Message   string
}
