/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package league computes standings, tiebreak orderings, and playoff
// seeding for an NFL-shaped league from raw game results.
package league

// ConferenceStructure names one conference and its divisions in display
// order.
type ConferenceStructure struct {
	Name      string
	Divisions []string
}

// Structure describes a league's topology. It is passed in as data rather
// than hard-coded so the same engine can be parameterized for other seasons
// or league shapes.
type Structure struct {
	Conferences   []ConferenceStructure
	WildcardSlots int
}

// NFL returns the current league topology: two conferences of four
// divisions each, with three wildcard qualifiers per conference for seven
// playoff seeds a side.
func NFL() Structure {
	return Structure{
		Conferences: []ConferenceStructure{
			{Name: "AFC", Divisions: []string{"East", "North", "South", "West"}},
			{Name: "NFC", Divisions: []string{"East", "North", "South", "West"}},
		},
		WildcardSlots: 3,
	}
}

// SeedCount returns the number of playoff seeds the given conference fills.
func (s Structure) SeedCount(conf ConferenceStructure) int {
	return len(conf.Divisions) + s.WildcardSlots
}

// FindConference returns the named conference's structure.
func (s Structure) FindConference(name string) (ConferenceStructure, bool) {
	for _, conf := range s.Conferences {
		if conf.Name == name {
			return conf, true
		}
	}
	return ConferenceStructure{}, false
}

// HasDivision reports whether the named division exists within the named
// conference.
func (s Structure) HasDivision(conference, division string) bool {
	conf, ok := s.FindConference(conference)
	if !ok {
		return false
	}
	for _, div := range conf.Divisions {
		if div == division {
			return true
		}
	}
	return false
}
