/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package league

import (
	"time"

	"github.com/mikeb26/nfl-seedbot/internal"
)

type Outcome int

const (
	OutcomeWin Outcome = iota
	OutcomeLoss
)

func (o Outcome) String() string {
	if o == OutcomeWin {
		return "W"
	} else if o == OutcomeLoss {
		return "L"
	} else {
		return "?"
	}
}

// Game records one team's view of a single decided game. Tie games are not
// modeled; undecided events are excluded upstream.
type Game struct {
	Opponent      string
	Outcome       Outcome
	Divisional    bool
	PointsFor     int
	PointsAgainst int
	Week          int
	Date          time.Time
}

// Team accumulates a single team's season to date.
type Team struct {
	Name       string
	Conference string
	Division   string

	Wins           int
	Losses         int
	DivisionWins   int
	DivisionLosses int
	PointsFor      int
	PointsAgainst  int

	// Games holds the team's decided games ordered by week.
	Games []Game

	// AuthoritativeSeed is the playoff seed reported by the upstream data
	// source, or 0 when the source does not supply one.
	AuthoritativeSeed int
}

func (t *Team) PointDiff() int {
	return t.PointsFor - t.PointsAgainst
}

// WinPct returns the team's overall winning percentage. A team with no
// decided games counts as .000.
func (t *Team) WinPct() float64 {
	total := t.Wins + t.Losses
	if total == 0 {
		return 0
	}
	return float64(t.Wins) / float64(total)
}

func (t *Team) Record() string {
	return internal.FormatRecord(t.Wins, t.Losses)
}

func (t *Team) DivisionRecord() string {
	return internal.FormatRecord(t.DivisionWins, t.DivisionLosses)
}

// TeamInfo identifies a team and its league membership as supplied by the
// data source.
type TeamInfo struct {
	Name              string
	Conference        string
	Division          string
	AuthoritativeSeed int
}

// GameRecord is one team's perspective of one game in a flat game log. A
// decided game normally appears twice, once per participant.
type GameRecord struct {
	Team          string
	Opponent      string
	Outcome       Outcome
	Divisional    bool
	PointsFor     int
	PointsAgainst int
	Week          int
	Date          time.Time
}
