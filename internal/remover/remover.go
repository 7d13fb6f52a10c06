package remover

import (
	"strings"
	"unicode/utf8"

	"github.com/sokinpui/snip/model"
)

// Remove deletes the first span of doc delimited by the section's
// markers, together with the run of whitespace immediately before the
// start marker. The span ends at the nearest end marker after the
// start marker, so a recurring end-marker string never causes
// over-deletion.
//
// If the start marker is absent, or no end marker follows it, doc is
// returned unchanged and ok is false.
func Remove(doc string, sec model.Section) (result string, removal model.Removal, ok bool) {
	start := strings.Index(doc, sec.Start)
	if start < 0 {
		return doc, model.Removal{}, false
	}

	end, found := findEnd(doc, sec.End, start+len(sec.Start))
	if !found {
		return doc, model.Removal{}, false
	}

	// The span swallows the whitespace run directly before the start
	// marker, so the surrounding lines close up cleanly.
	for start > 0 && isSpace(doc[start-1]) {
		start--
	}

	removal = model.Removal{
		Section: sec.Name,
		Offset:  start,
		Chars:   utf8.RuneCountInString(doc[start:end]),
	}
	return doc[:start] + doc[end:], removal, true
}

// RemoveAll applies Remove until the section no longer occurs.
func RemoveAll(doc string, sec model.Section) (string, []model.Removal) {
	var removals []model.Removal
	for {
		next, removal, ok := Remove(doc, sec)
		if !ok {
			return doc, removals
		}
		doc = next
		removals = append(removals, removal)
	}
}

// HasStart reports whether the section's start marker occurs in doc.
func HasStart(doc string, sec model.Section) bool {
	return strings.Contains(doc, sec.Start)
}

// findEnd locates the nearest end marker at or after from, returning
// the index just past it. The marker string is split on whitespace
// into fragments; each fragment is matched verbatim, with only
// whitespace (possibly none) allowed between fragments.
func findEnd(doc, marker string, from int) (int, bool) {
	frags := strings.Fields(marker)
	if len(frags) == 0 {
		return 0, false
	}

	for from <= len(doc) {
		i := strings.Index(doc[from:], frags[0])
		if i < 0 {
			return 0, false
		}
		pos := from + i
		if end, ok := matchAt(doc, frags, pos); ok {
			return end, true
		}
		from = pos + 1
	}
	return 0, false
}

// matchAt matches every fragment in order starting at pos and returns
// the index just past the last one.
func matchAt(doc string, frags []string, pos int) (int, bool) {
	for i, frag := range frags {
		if i > 0 {
			for pos < len(doc) && isSpace(doc[pos]) {
				pos++
			}
		}
		if !strings.HasPrefix(doc[pos:], frag) {
			return 0, false
		}
		pos += len(frag)
	}
	return pos, true
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
