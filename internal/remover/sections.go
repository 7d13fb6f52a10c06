package remover

import "github.com/sokinpui/snip/model"

// Marker literals for the two cards the tool was written to delete
// from the timing page. Both cards close with a nested pair of divs.
const (
	resultsStart = "{/* Right Column: Optimization Results */}"
	bandsStart   = "{/* Unified Forecast Bands Card - Full Width */}"
	cardEnd      = "</div> </div>"
)

// Builtin returns the section descriptors the tool knows by name, in
// removal order.
func Builtin() []model.Section {
	return []model.Section{
		{Name: "results", Start: resultsStart, End: cardEnd},
		{Name: "bands", Start: bandsStart, End: cardEnd},
	}
}

// Lookup returns the built-in section with the given name.
func Lookup(name string) (model.Section, bool) {
	for _, sec := range Builtin() {
		if sec.Name == name {
			return sec, true
		}
	}
	return model.Section{}, false
}

// Names lists the built-in section names.
func Names() []string {
	sections := Builtin()
	names := make([]string, len(sections))
	for i, sec := range sections {
		names[i] = sec.Name
	}
	return names
}
