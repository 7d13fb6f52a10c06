package snip

import (
	"github.com/sokinpui/snip/internal/remover"
	"github.com/sokinpui/snip/model"
)

// Strip removes the first occurrence of each section from content and
// returns the stripped content together with a record of each deleted
// span. Sections whose markers are absent are skipped.
func Strip(content string, sections []model.Section) (string, []model.Removal) {
	var removals []model.Removal
	for _, sec := range sections {
		next, removal, ok := remover.Remove(content, sec)
		if !ok {
			continue
		}
		content = next
		removals = append(removals, removal)
	}
	return content, removals
}

// StripAll removes every occurrence of each section.
func StripAll(content string, sections []model.Section) (string, []model.Removal) {
	var removals []model.Removal
	for _, sec := range sections {
		var rs []model.Removal
		content, rs = remover.RemoveAll(content, sec)
		removals = append(removals, rs...)
	}
	return content, removals
}

// Sections returns the built-in section descriptors.
func Sections() []model.Section {
	return remover.Builtin()
}
