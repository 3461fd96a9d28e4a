/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package league

import (
	"sort"
)

// tieGroup pairs a set of still tied teams with the index of the next
// criterion to try against them.
type tieGroup struct {
	teams    []*Team
	nextCrit int
}

type criterion struct {
	name  string
	split func(teams []*Team) [][]*Team
}

// criteria in application order. Each split returns sub-groups best first;
// a single returned group means the criterion could not separate anyone.
var criteria = []criterion{
	{name: "head-to-head sweep", split: splitHeadToHeadSweep},
	{name: "division record", split: splitDivisionRecord},
	{name: "point differential", split: splitPointDiff},
}

// BreakTie orders the supplied teams best first by applying, in order:
//
//  1. Head-to-head sweep: when exactly one team of the group holds more
//     aggregate wins than losses across all intra-group meetings, that team
//     ranks ahead of the remainder.
//  2. Division record: higher division winning percentage ranks ahead.
//  3. Point differential: higher points scored minus points allowed ranks
//     ahead.
//
// Whenever a criterion splits the group, each resulting sub-group restarts
// at criterion 1; a criterion that leaves the group unchanged falls through
// to the next. Exhausting all criteria with two or more teams still tied
// yields an UnresolvedTieError rather than an invented order.
func BreakTie(teams []*Team) ([]*Team, error) {
	ordered := make([]*Team, 0, len(teams))
	err := resolveGroup(tieGroup{teams: teams}, &ordered)
	if err != nil {
		return nil, err
	}

	return ordered, nil
}

func resolveGroup(group tieGroup, ordered *[]*Team) error {
	if len(group.teams) == 0 {
		return nil
	}
	if len(group.teams) == 1 {
		*ordered = append(*ordered, group.teams[0])
		return nil
	}

	for idx := group.nextCrit; idx < len(criteria); idx++ {
		parts := criteria[idx].split(group.teams)
		if len(parts) <= 1 {
			continue
		}
		for _, part := range parts {
			err := resolveGroup(tieGroup{teams: part}, ordered)
			if err != nil {
				return err
			}
		}
		return nil
	}

	names := make([]string, 0, len(group.teams))
	for _, t := range group.teams {
		names = append(names, t.Name)
	}

	return &UnresolvedTieError{Teams: names}
}

// splitHeadToHeadSweep separates out the single team, if any, holding more
// aggregate wins than losses across all meetings within the group. All
// meetings count, including rematches; teams that never met inside the
// group contribute nothing to each other's tallies.
func splitHeadToHeadSweep(teams []*Team) [][]*Team {
	members := make(map[string]bool, len(teams))
	for _, t := range teams {
		members[t.Name] = true
	}

	var sweeper *Team
	for _, t := range teams {
		wins := 0
		losses := 0
		for _, g := range t.Games {
			if !members[g.Opponent] {
				continue
			}
			if g.Outcome == OutcomeWin {
				wins++
			} else {
				losses++
			}
		}
		if wins > losses {
			if sweeper != nil {
				// more than one winning team; criterion does not apply
				return [][]*Team{teams}
			}
			sweeper = t
		}
	}
	if sweeper == nil {
		return [][]*Team{teams}
	}

	rest := make([]*Team, 0, len(teams)-1)
	for _, t := range teams {
		if t != sweeper {
			rest = append(rest, t)
		}
	}

	return [][]*Team{{sweeper}, rest}
}

func splitDivisionRecord(teams []*Team) [][]*Team {
	return splitByComparator(teams, func(t1 *Team, t2 *Team) int {
		return compareRecord(t1.DivisionWins, t1.DivisionLosses,
			t2.DivisionWins, t2.DivisionLosses)
	})
}

func splitPointDiff(teams []*Team) [][]*Team {
	return splitByComparator(teams, func(t1 *Team, t2 *Team) int {
		diff1 := t1.PointDiff()
		diff2 := t2.PointDiff()
		if diff1 > diff2 {
			return 1
		} else if diff1 < diff2 {
			return -1
		}
		return 0
	})
}

// splitByComparator partitions teams into runs of equal comparator value,
// best run first. Within a run the original team order is preserved.
func splitByComparator(teams []*Team,
	cmp func(t1 *Team, t2 *Team) int) [][]*Team {

	sorted := make([]*Team, len(teams))
	copy(sorted, teams)
	sort.SliceStable(sorted, func(i, j int) bool {
		return cmp(sorted[i], sorted[j]) > 0
	})

	parts := make([][]*Team, 0, 1)
	for _, t := range sorted {
		lastIdx := len(parts) - 1
		if lastIdx >= 0 && cmp(parts[lastIdx][0], t) == 0 {
			parts[lastIdx] = append(parts[lastIdx], t)
		} else {
			parts = append(parts, []*Team{t})
		}
	}

	return parts
}

// compareRecord compares two win/loss records by winning percentage without
// resorting to floating point; cross multiplying keeps exact ties exact. A
// record with no games counts as .000.
func compareRecord(wins1 int, losses1 int, wins2 int, losses2 int) int {
	games1 := wins1 + losses1
	games2 := wins2 + losses2
	if games1 == 0 && games2 == 0 {
		return 0
	} else if games1 == 0 {
		if wins2 > 0 {
			return -1
		}
		return 0
	} else if games2 == 0 {
		if wins1 > 0 {
			return 1
		}
		return 0
	}

	lhs := wins1 * games2
	rhs := wins2 * games1
	if lhs > rhs {
		return 1
	} else if lhs < rhs {
		return -1
	}
	return 0
}
