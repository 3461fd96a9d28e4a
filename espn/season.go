/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package espn

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/mikeb26/nfl-seedbot/league"
)

// FetchSeason retrieves the published standings plus every team's schedule
// and assembles them into league inputs: membership metadata with any
// published playoff seats, and the flat game log. Divisional flags are
// derived from the two participants' memberships; an opponent the
// standings don't list passes through unflagged for the aggregation layer
// to reject.
//
// The web-scrape standings fallback carries no team ids, so no schedules
// can be fetched in that mode; FetchSeason fails rather than hand the
// league layer an empty game log that would contradict the records the
// standings themselves report.
func (client *Client) FetchSeason(ctx context.Context) ([]league.TeamInfo,
	[]league.GameRecord, error) {

	standings, err := client.GetStandings(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to fetch standings: %w", err)
	}

	withIds := 0
	for _, ts := range standings {
		if ts.ID != "" {
			withIds++
		}
	}
	if withIds == 0 {
		return nil, nil, fmt.Errorf("unable to fetch schedules: standings source lists no team ids")
	}

	schedules := make([][]TeamGame, len(standings))
	g, ctx := errgroup.WithContext(ctx)
	for idx := range standings {
		idx := idx
		if standings[idx].ID == "" {
			logrus.Warnf("no team id for %v; skipping schedule",
				standings[idx].Name)
			continue
		}
		g.Go(func() error {
			sched, err := client.GetSchedule(ctx, standings[idx].ID)
			if err != nil {
				return fmt.Errorf("unable to fetch %v schedule: %w",
					standings[idx].Name, err)
			}
			schedules[idx] = sched
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	type membership struct {
		conference string
		division   string
	}
	members := make(map[string]membership, len(standings))
	infos := make([]league.TeamInfo, 0, len(standings))
	for _, ts := range standings {
		members[ts.Name] = membership{
			conference: ts.Conference,
			division:   ts.Division,
		}
		infos = append(infos, league.TeamInfo{
			Name:              ts.Name,
			Conference:        ts.Conference,
			Division:          ts.Division,
			AuthoritativeSeed: ts.PlayoffSeat,
		})
	}

	games := make([]league.GameRecord, 0)
	for idx, ts := range standings {
		wins := 0
		losses := 0
		for _, game := range schedules[idx] {
			outcome := league.OutcomeLoss
			if game.Won {
				outcome = league.OutcomeWin
				wins++
			} else {
				losses++
			}

			divisional := false
			if oppMem, ok := members[game.Opponent]; ok {
				divisional = oppMem.conference == ts.Conference &&
					oppMem.division == ts.Division
			}

			games = append(games, league.GameRecord{
				Team:          ts.Name,
				Opponent:      game.Opponent,
				Outcome:       outcome,
				Divisional:    divisional,
				PointsFor:     game.PointsFor,
				PointsAgainst: game.PointsAgainst,
				Week:          game.Week,
				Date:          game.Date,
			})
		}

		// the published standings can run ahead of the schedule feed
		// shortly after games go final
		if len(schedules[idx]) != 0 &&
			(wins != ts.Wins || losses != ts.Losses) {
			logrus.Warnf("standings list %v at %v-%v but schedule yields %v-%v",
				ts.Name, ts.Wins, ts.Losses, wins, losses)
		}
	}

	return infos, games, nil
}
