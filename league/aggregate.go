/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package league

import (
	"fmt"
	"sort"
)

// BuildStandings folds a season's raw game results into per-team standings.
// Every team referenced by infos or games must belong to the supplied
// structure, and each game's divisional flag must agree with the two teams'
// division memberships; any contradiction yields a DataIntegrityError rather
// than a partial result. The returned teams are sorted by name.
func BuildStandings(s Structure, infos []TeamInfo,
	games []GameRecord) ([]*Team, error) {

	teams, err := teamsFromInfos(s, infos)
	if err != nil {
		return nil, err
	}

	for idx, g := range games {
		if err := applyGame(s, teams, g); err != nil {
			return nil, fmt.Errorf("unable to apply game %v: %w", idx, err)
		}
	}

	if err := checkBalance(teams); err != nil {
		return nil, err
	}

	ret := make([]*Team, 0, len(teams))
	for _, t := range teams {
		sort.SliceStable(t.Games, func(i, j int) bool {
			if t.Games[i].Week != t.Games[j].Week {
				return t.Games[i].Week < t.Games[j].Week
			}
			return t.Games[i].Date.Before(t.Games[j].Date)
		})
		ret = append(ret, t)
	}
	sort.Slice(ret, func(i, j int) bool {
		return ret[i].Name < ret[j].Name
	})

	return ret, nil
}

func teamsFromInfos(s Structure, infos []TeamInfo) (map[string]*Team, error) {
	teams := make(map[string]*Team)
	seedsSeen := make(map[string]map[int]string)

	for _, info := range infos {
		if info.Name == "" {
			return nil, &DataIntegrityError{
				Detail: "team with empty name",
			}
		}
		if _, ok := teams[info.Name]; ok {
			return nil, &DataIntegrityError{
				Team:   info.Name,
				Detail: "listed more than once",
			}
		}
		if !s.HasDivision(info.Conference, info.Division) {
			return nil, &DataIntegrityError{
				Team: info.Name,
				Detail: fmt.Sprintf("unknown conference/division %v/%v",
					info.Conference, info.Division),
			}
		}
		if info.AuthoritativeSeed < 0 {
			return nil, &DataIntegrityError{
				Team: info.Name,
				Detail: fmt.Sprintf("negative seed %v",
					info.AuthoritativeSeed),
			}
		}
		if info.AuthoritativeSeed > 0 {
			if seedsSeen[info.Conference] == nil {
				seedsSeen[info.Conference] = make(map[int]string)
			}
			if prior, ok := seedsSeen[info.Conference][info.AuthoritativeSeed]; ok {
				return nil, &DataIntegrityError{
					Team: info.Name,
					Detail: fmt.Sprintf("seed %v already held by %v",
						info.AuthoritativeSeed, prior),
				}
			}
			seedsSeen[info.Conference][info.AuthoritativeSeed] = info.Name
		}

		teams[info.Name] = &Team{
			Name:              info.Name,
			Conference:        info.Conference,
			Division:          info.Division,
			AuthoritativeSeed: info.AuthoritativeSeed,
		}
	}

	return teams, nil
}

func applyGame(s Structure, teams map[string]*Team, g GameRecord) error {
	t, ok := teams[g.Team]
	if !ok {
		return &DataIntegrityError{
			Team:   g.Team,
			Detail: "game result for unknown team",
		}
	}
	opp, ok := teams[g.Opponent]
	if !ok {
		return &DataIntegrityError{
			Team:   g.Team,
			Detail: fmt.Sprintf("game result vs unknown team %v", g.Opponent),
		}
	}
	if g.Team == g.Opponent {
		return &DataIntegrityError{
			Team:   g.Team,
			Detail: "game result against itself",
		}
	}

	sameDiv := t.Conference == opp.Conference && t.Division == opp.Division
	if g.Divisional != sameDiv {
		return &DataIntegrityError{
			Team: g.Team,
			Detail: fmt.Sprintf("divisional flag %v contradicts memberships vs %v",
				g.Divisional, g.Opponent),
		}
	}
	if g.PointsFor < 0 || g.PointsAgainst < 0 {
		return &DataIntegrityError{
			Team:   g.Team,
			Detail: fmt.Sprintf("negative score vs %v", g.Opponent),
		}
	}

	switch g.Outcome {
	case OutcomeWin:
		t.Wins++
		if g.Divisional {
			t.DivisionWins++
		}
	case OutcomeLoss:
		t.Losses++
		if g.Divisional {
			t.DivisionLosses++
		}
	default:
		return &DataIntegrityError{
			Team:   g.Team,
			Detail: fmt.Sprintf("invalid outcome vs %v", g.Opponent),
		}
	}

	t.PointsFor += g.PointsFor
	t.PointsAgainst += g.PointsAgainst
	t.Games = append(t.Games, Game{
		Opponent:      g.Opponent,
		Outcome:       g.Outcome,
		Divisional:    g.Divisional,
		PointsFor:     g.PointsFor,
		PointsAgainst: g.PointsAgainst,
		Week:          g.Week,
		Date:          g.Date,
	})

	return nil
}

// checkBalance sanity checks the aggregate: every win some team records must
// be a loss some other team records. Results are per-team rows rather than
// shared fixtures, so an unbalanced league means a missing or duplicated row.
func checkBalance(teams map[string]*Team) error {
	totalWins := 0
	totalLosses := 0
	for _, t := range teams {
		totalWins += t.Wins
		totalLosses += t.Losses
	}
	if totalWins != totalLosses {
		return &DataIntegrityError{
			Detail: fmt.Sprintf("league has %v wins but %v losses",
				totalWins, totalLosses),
		}
	}

	return nil
}
