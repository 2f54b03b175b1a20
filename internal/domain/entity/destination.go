package entity

import "strings"

// Language identifies a supported display language
type Language string

const (
	LangJa Language = "ja"
	LangEn Language = "en"
	LangZh Language = "zh"
)

// SupportedLanguages lists every language a destination is rendered in
var SupportedLanguages = []Language{LangJa, LangEn, LangZh}

// DestinationNames holds one display string per supported language
type DestinationNames struct {
	Ja string `json:"ja" bson:"ja"`
	En string `json:"en" bson:"en"`
	Zh string `json:"zh" bson:"zh"`
}

// SameForAll returns names with name used for every language
func SameForAll(name string) DestinationNames {
	return DestinationNames{Ja: name, En: name, Zh: name}
}

// Get returns the string for lang, falling back to English
func (n DestinationNames) Get(lang Language) string {
	switch lang {
	case LangJa:
		return n.Ja
	case LangZh:
		return n.Zh
	default:
		return n.En
	}
}

// Map applies fn to every language variant
func (n DestinationNames) Map(fn func(string) string) DestinationNames {
	return DestinationNames{Ja: fn(n.Ja), En: fn(n.En), Zh: fn(n.Zh)}
}

// Destination is one row of localization data, keyed by the canonical
// city or airport name the feed reports.
type Destination struct {
	ID            uint
	CanonicalName string
	Names         DestinationNames
	MultiAirport  bool
	SuppressCode  bool
}

// LocalizationTable is a read-only lookup built once per process. It copies
// its inputs so later changes to the source rows never leak in.
type LocalizationTable struct {
	names        map[string]DestinationNames
	multiAirport map[string]bool
	suppressCode map[string]bool
}

// NewLocalizationTable builds a table from destination rows. Later rows
// override earlier ones with the same canonical name.
func NewLocalizationTable(destinations ...[]Destination) *LocalizationTable {
	t := &LocalizationTable{
		names:        make(map[string]DestinationNames),
		multiAirport: make(map[string]bool),
		suppressCode: make(map[string]bool),
	}
	for _, set := range destinations {
		for _, d := range set {
			key := canonicalKey(d.CanonicalName)
			if key == "" {
				continue
			}
			t.names[key] = fillMissing(d.Names, d.CanonicalName)
			t.multiAirport[key] = d.MultiAirport
			t.suppressCode[key] = d.SuppressCode
		}
	}
	return t
}

// Lookup returns the localized names for a canonical name
func (t *LocalizationTable) Lookup(name string) (DestinationNames, bool) {
	if t == nil {
		return DestinationNames{}, false
	}
	n, ok := t.names[canonicalKey(name)]
	return n, ok
}

// IsMultiAirport reports whether name is a city served by several airports
func (t *LocalizationTable) IsMultiAirport(name string) bool {
	return t != nil && t.multiAirport[canonicalKey(name)]
}

// SuppressesCode reports whether the airport code is omitted for name even
// though it is a multi-airport city.
func (t *LocalizationTable) SuppressesCode(name string) bool {
	return t != nil && t.suppressCode[canonicalKey(name)]
}

// Len returns the number of destinations in the table
func (t *LocalizationTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}

func canonicalKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func fillMissing(n DestinationNames, fallback string) DestinationNames {
	fallback = strings.TrimSpace(fallback)
	if n.En == "" {
		n.En = fallback
	}
	if n.Ja == "" {
		n.Ja = n.En
	}
	if n.Zh == "" {
		n.Zh = n.En
	}
	return n
}
