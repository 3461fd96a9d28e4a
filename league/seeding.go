/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package league

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

type SeedSource int

const (
	// SeedComputed seeds were derived from game results alone
	SeedComputed SeedSource = iota
	// SeedExternal seeds were taken from the upstream data source's
	// published bracket, overriding the computed order
	SeedExternal
)

func (src SeedSource) String() string {
	if src == SeedComputed {
		return "computed"
	} else if src == SeedExternal {
		return "externally-overridden"
	}

	return "unknown"
}

// Seed is one playoff slot in a conference bracket.
type Seed struct {
	Number int
	Team   *Team
	Source SeedSource
}

// RankedTeam is a team outside the bracket with its position below the cut
// line. Teams whose relative order could not be established share a rank
// and carry Tied.
type RankedTeam struct {
	Rank int
	Team *Team
	Tied bool
}

// ConferencePicture is one conference's playoff bracket plus the ranked
// teams that missed it.
type ConferencePicture struct {
	Conference string
	Seeds      []Seed
	AlsoRans   []RankedTeam
}

// Picture is the league-wide playoff picture.
type Picture struct {
	Conferences []ConferencePicture
}

// BuildPicture seeds each conference's playoff bracket: division winners
// take the top seeds ordered best first, then the best remaining teams fill
// the wildcard slots. Authoritative seeds published upstream override the
// computed order slot by slot; each seed records which source produced it.
//
// A conference whose bracket cannot be filled is omitted rather than
// aborting the league; the returned picture holds every conference that
// resolved and err reports the first failure.
func BuildPicture(s Structure, teams []*Team) (*Picture, error) {
	pic := &Picture{}
	var firstErr error

	for _, conf := range s.Conferences {
		confPic, err := buildConferencePicture(s, conf, teams)
		if err != nil {
			if _, ok := AsIncompleteLeagueDataError(err); !ok {
				err = fmt.Errorf("unable to seed %v: %w", conf.Name, err)
			}
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		pic.Conferences = append(pic.Conferences, confPic)
	}

	return pic, firstErr
}

func buildConferencePicture(s Structure, conf ConferenceStructure,
	teams []*Team) (ConferencePicture, error) {

	confPic := ConferencePicture{Conference: conf.Name}

	confTeams := make([]*Team, 0, len(teams))
	for _, t := range teams {
		if t.Conference == conf.Name {
			confTeams = append(confTeams, t)
		}
	}

	winners := make([]*Team, 0, len(conf.Divisions))
	for _, div := range conf.Divisions {
		divTeams := make([]*Team, 0)
		for _, t := range confTeams {
			if t.Division == div {
				divTeams = append(divTeams, t)
			}
		}
		if len(divTeams) == 0 {
			return confPic, &IncompleteLeagueDataError{
				Conference: conf.Name,
				Detail:     fmt.Sprintf("division %v has no teams", div),
			}
		}
		winner, err := divisionWinner(divTeams)
		if err != nil {
			return confPic, fmt.Errorf("unable to pick %v winner: %w", div,
				err)
		}
		winners = append(winners, winner)
	}

	isWinner := make(map[string]bool, len(winners))
	for _, t := range winners {
		isWinner[t.Name] = true
	}
	rest := make([]*Team, 0, len(confTeams))
	for _, t := range confTeams {
		if !isWinner[t.Name] {
			rest = append(rest, t)
		}
	}
	if len(rest) < s.WildcardSlots {
		return confPic, &IncompleteLeagueDataError{
			Conference: conf.Name,
			Detail: fmt.Sprintf("need %v wildcard candidates but have %v",
				s.WildcardSlots, len(rest)),
		}
	}

	winners, err := orderTeams(winners)
	if err != nil {
		return confPic, fmt.Errorf("unable to order division winners: %w",
			err)
	}

	wildcards, err := orderTopN(rest, s.WildcardSlots)
	if err != nil {
		return confPic, fmt.Errorf("unable to order wildcards: %w", err)
	}

	computed := append(append([]*Team{}, winners...), wildcards...)
	seeds, err := reconcileSeeds(s, conf, confTeams, computed)
	if err != nil {
		return confPic, err
	}
	confPic.Seeds = seeds

	seeded := make(map[string]bool, len(seeds))
	for _, seed := range seeds {
		seeded[seed.Team.Name] = true
	}
	remainder := make([]*Team, 0, len(confTeams))
	for _, t := range confTeams {
		if !seeded[t.Name] {
			remainder = append(remainder, t)
		}
	}
	confPic.AlsoRans = rankRemainder(remainder, len(seeds)+1)

	return confPic, nil
}

// divisionWinner picks the division's best team. Only the leading record
// group needs tiebreaking; teams below it cannot win the division.
func divisionWinner(divTeams []*Team) (*Team, error) {
	parts := splitByComparator(divTeams, compareOverall)
	leaders := parts[0]
	if len(leaders) == 1 {
		return leaders[0], nil
	}

	leaders, err := breakTieWithFallback(leaders)
	if err != nil {
		return nil, err
	}

	return leaders[0], nil
}

// orderTeams fully orders teams best first: record groups first, ties
// within a group broken by BreakTie.
func orderTeams(teams []*Team) ([]*Team, error) {
	ordered := make([]*Team, 0, len(teams))
	for _, part := range splitByComparator(teams, compareOverall) {
		if len(part) > 1 {
			resolved, err := breakTieWithFallback(part)
			if err != nil {
				return nil, err
			}
			part = resolved
		}
		ordered = append(ordered, part...)
	}

	return ordered, nil
}

// orderTopN strictly orders the best n of teams. Record groups entirely
// below the cut line are never tiebroken; a group straddling the line must
// resolve so the line lands on the right teams.
func orderTopN(teams []*Team, n int) ([]*Team, error) {
	ordered := make([]*Team, 0, n)
	for _, part := range splitByComparator(teams, compareOverall) {
		if len(ordered) >= n {
			break
		}
		if len(part) > 1 {
			resolved, err := breakTieWithFallback(part)
			if err != nil {
				return nil, err
			}
			part = resolved
		}
		ordered = append(ordered, part...)
	}

	return ordered[:n], nil
}

// breakTieWithFallback applies BreakTie, falling back to the upstream
// source's published seeds when the criteria exhaust and every tied team
// carries a distinct one. The fallback defers to the same authority that
// reconciliation would; without it the unresolved tie propagates.
func breakTieWithFallback(teams []*Team) ([]*Team, error) {
	ordered, err := BreakTie(teams)
	if err == nil {
		return ordered, nil
	}
	tieErr, ok := AsUnresolvedTieError(err)
	if !ok {
		return nil, err
	}

	ordered, ok = orderByAuthoritativeSeed(teams)
	if !ok {
		return nil, tieErr
	}
	logrus.Debugf("tiebreak criteria exhausted for %v; deferring to published seeds",
		tieErr.Teams)

	return ordered, nil
}

func orderByAuthoritativeSeed(teams []*Team) ([]*Team, bool) {
	seen := make(map[int]bool, len(teams))
	for _, t := range teams {
		if t.AuthoritativeSeed <= 0 || seen[t.AuthoritativeSeed] {
			return nil, false
		}
		seen[t.AuthoritativeSeed] = true
	}

	ordered := make([]*Team, len(teams))
	copy(ordered, teams)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].AuthoritativeSeed < ordered[j].AuthoritativeSeed
	})

	return ordered, true
}

// reconcileSeeds overlays upstream published seeds onto the computed order.
// A published claim on a slot wins it outright; unclaimed slots are filled
// from the computed order, skipping teams already holding a published slot.
func reconcileSeeds(s Structure, conf ConferenceStructure, confTeams []*Team,
	computed []*Team) ([]Seed, error) {

	seats := s.SeedCount(conf)
	claimed := make(map[int]*Team)
	claimedTeams := make(map[string]bool)
	for _, t := range confTeams {
		if t.AuthoritativeSeed >= 1 && t.AuthoritativeSeed <= seats {
			claimed[t.AuthoritativeSeed] = t
			claimedTeams[t.Name] = true
		}
	}

	seeds := make([]Seed, 0, seats)
	nextComputed := 0
	for num := 1; num <= seats; num++ {
		if t, ok := claimed[num]; ok {
			seeds = append(seeds, Seed{Number: num, Team: t,
				Source: SeedExternal})
			continue
		}
		for nextComputed < len(computed) &&
			claimedTeams[computed[nextComputed].Name] {
			nextComputed++
		}
		if nextComputed >= len(computed) {
			return nil, &IncompleteLeagueDataError{
				Conference: conf.Name,
				Detail:     fmt.Sprintf("no candidate left for seed %v", num),
			}
		}
		seeds = append(seeds, Seed{Number: num, Team: computed[nextComputed],
			Source: SeedComputed})
		nextComputed++
	}

	return seeds, nil
}

// rankRemainder ranks teams below the cut line starting at startRank.
// Record groups that tiebreak cleanly get sequential ranks; groups that
// cannot be separated share a rank and are flagged Tied.
func rankRemainder(teams []*Team, startRank int) []RankedTeam {
	ranked := make([]RankedTeam, 0, len(teams))
	rank := startRank
	for _, part := range splitByComparator(teams, compareOverall) {
		resolved, err := breakTieWithFallback(part)
		if err != nil {
			for _, t := range part {
				ranked = append(ranked, RankedTeam{Rank: rank, Team: t,
					Tied: len(part) > 1})
			}
		} else {
			for idx, t := range resolved {
				ranked = append(ranked, RankedTeam{Rank: rank + idx, Team: t})
			}
		}
		rank += len(part)
	}

	return ranked
}

func compareOverall(t1 *Team, t2 *Team) int {
	return compareRecord(t1.Wins, t1.Losses, t2.Wins, t2.Losses)
}

// QualifiedTeams returns the names of every seeded team league-wide.
func (pic *Picture) QualifiedTeams() map[string]bool {
	qualified := make(map[string]bool)
	for _, confPic := range pic.Conferences {
		for _, seed := range confPic.Seeds {
			qualified[seed.Team.Name] = true
		}
	}

	return qualified
}

func (pic *Picture) seedOf(name string) (Seed, bool) {
	for _, confPic := range pic.Conferences {
		for _, seed := range confPic.Seeds {
			if seed.Team.Name == name {
				return seed, true
			}
		}
	}

	return Seed{}, false
}
