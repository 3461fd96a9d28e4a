/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package league

import (
	"fmt"
	"sort"
)

// OpponentSummary tallies, per opponent name, how many times a team beat
// and played that opponent across the games fed into it.
type OpponentSummary struct {
	Beaten map[string]int
	Played map[string]int
}

// SummarizeOpponents tallies t's game log into an OpponentSummary.
func SummarizeOpponents(t *Team) *OpponentSummary {
	summary := &OpponentSummary{
		Beaten: make(map[string]int),
		Played: make(map[string]int),
	}

	for _, g := range t.Games {
		summary.Played[g.Opponent]++
		if g.Outcome == OutcomeWin {
			summary.Beaten[g.Opponent]++
		}
	}

	return summary
}

// FilterTo returns a copy of the summary restricted to the named opponents.
// Tallies against opponents outside the set are dropped entirely.
func (summary *OpponentSummary) FilterTo(
	names map[string]bool) *OpponentSummary {

	filtered := &OpponentSummary{
		Beaten: make(map[string]int),
		Played: make(map[string]int),
	}

	for opp, count := range summary.Beaten {
		if names[opp] {
			filtered.Beaten[opp] = count
		}
	}
	for opp, count := range summary.Played {
		if names[opp] {
			filtered.Played[opp] = count
		}
	}

	return filtered
}

// UniqueBeaten returns the number of distinct opponents beaten at least
// once.
func (summary *OpponentSummary) UniqueBeaten() int {
	return len(summary.Beaten)
}

// ExtraBeaten returns the number of wins beyond the first against each
// beaten opponent.
func (summary *OpponentSummary) ExtraBeaten() int {
	return extras(summary.Beaten)
}

// UniquePlayed returns the number of distinct opponents faced.
func (summary *OpponentSummary) UniquePlayed() int {
	return len(summary.Played)
}

// ExtraPlayed returns the number of meetings beyond the first against each
// opponent faced.
func (summary *OpponentSummary) ExtraPlayed() int {
	return extras(summary.Played)
}

func extras(counts map[string]int) int {
	total := 0
	for _, count := range counts {
		if count > 1 {
			total += count - 1
		}
	}

	return total
}

// TotalBeaten returns the total wins tallied, rematch wins included.
func (summary *OpponentSummary) TotalBeaten() int {
	total := 0
	for _, count := range summary.Beaten {
		total += count
	}

	return total
}

// BeatenNames returns the distinct beaten opponents sorted by name.
func (summary *OpponentSummary) BeatenNames() []string {
	return sortedKeys(summary.Beaten)
}

// BeatenList renders the beaten opponents sorted by name with repeat wins
// annotated, e.g. "New York Jets x2".
func (summary *OpponentSummary) BeatenList() []string {
	entries := make([]string, 0, len(summary.Beaten))
	for _, name := range summary.BeatenNames() {
		if count := summary.Beaten[name]; count > 1 {
			entries = append(entries, fmt.Sprintf("%v x%v", name, count))
		} else {
			entries = append(entries, name)
		}
	}

	return entries
}

// PlayedNames returns the distinct opponents faced sorted by name.
func (summary *OpponentSummary) PlayedNames() []string {
	return sortedKeys(summary.Played)
}

func sortedKeys(counts map[string]int) []string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// FormatCount renders a distinct-opponent count with its repeat surplus,
// e.g. "3 (1)" for 3 distinct opponents one of whom was faced a second
// time. The surplus is omitted when zero.
func FormatCount(unique int, extra int) string {
	if extra == 0 {
		return fmt.Sprintf("%v", unique)
	}
	return fmt.Sprintf("%v (%v)", unique, extra)
}

// BeatenDisplay renders the beaten tally in FormatCount form.
func (summary *OpponentSummary) BeatenDisplay() string {
	return FormatCount(summary.UniqueBeaten(), summary.ExtraBeaten())
}

// PlayedDisplay renders the played tally in FormatCount form.
func (summary *OpponentSummary) PlayedDisplay() string {
	return FormatCount(summary.UniquePlayed(), summary.ExtraPlayed())
}
