package config

import "sort"

// Preset is a named input array.
type Preset struct {
	Description string
	Values      []int
	Target      int
}

var Presets = map[string]*Preset{
	"example": {
		Description: "the classic four-element walkthrough",
		Values:      []int{5, 3, 8, 1},
	},
	"reversed": {
		Description: "worst case for the exchange sorts",
		Values:      []int{45, 39, 33, 27, 21, 15, 9, 3},
	},
	"sorted": {
		Description: "already ordered input",
		Values:      []int{3, 9, 15, 21, 27, 33, 39, 45},
		Target:      33,
	},
	"nearly_sorted": {
		Description: "one element out of place",
		Values:      []int{4, 8, 15, 16, 42, 23, 30, 50},
	},
	"few_unique": {
		Description: "many duplicates",
		Values:      []int{7, 3, 7, 3, 12, 7, 3, 12},
		Target:      12,
	},
	"single": {
		Description: "one element",
		Values:      []int{25},
		Target:      25,
	},
	"missing": {
		Description: "search target not present",
		Values:      []int{2, 11, 19, 24, 31, 38, 44, 49},
		Target:      20,
	},
}

func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p
}

// ListPresets returns preset names sorted alphabetically.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
