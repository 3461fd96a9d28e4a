/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mikeb26/nfl-seedbot/internal"
)

// TeamGame is one decided game from a team's schedule, seen from that
// team's side. Undecided and tied events never surface here.
type TeamGame struct {
	Opponent      string
	Won           bool
	PointsFor     int
	PointsAgainst int
	Week          int
	Date          time.Time
}

// vended by https://site.api.espn.com/apis/site/v2/sports/football/nfl/teams/<id>/schedule?seasontype=2
type apiScheduleResponse struct {
	Team struct {
		ID          string `json:"id"`
		DisplayName string `json:"displayName"`
	} `json:"team"`
	Events []struct {
		Date string `json:"date"`
		Week struct {
			Number int `json:"number"`
		} `json:"week"`
		Competitions []struct {
			Status struct {
				Type struct {
					Completed bool `json:"completed"`
				} `json:"type"`
			} `json:"status"`
			Competitors []apiCompetitor `json:"competitors"`
		} `json:"competitions"`
	} `json:"events"`
}

type apiCompetitor struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Winner      *bool  `json:"winner"`
	Team        struct {
		ID          string `json:"id"`
		DisplayName string `json:"displayName"`
	} `json:"team"`
	Score struct {
		Value float64 `json:"value"`
	} `json:"score"`
}

func (c *apiCompetitor) name() string {
	if c.DisplayName != "" {
		return c.DisplayName
	}

	return c.Team.DisplayName
}

func (c *apiCompetitor) won() bool {
	return c.Winner != nil && *c.Winner
}

// GetSchedule fetches a team's regular season game log. Events not yet
// decided are skipped, as are the rare ties.
func (client *Client) GetSchedule(ctx context.Context,
	teamID string) ([]TeamGame, error) {

	url := fmt.Sprintf(
		"%v/apis/site/v2/sports/football/nfl/teams/%v/schedule?seasontype=2",
		client.siteBase, teamID)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch nfl schedule (new): %w", err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.httpClient6hr.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch nfl schedule (do): %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unable to fetch %v: http status: %v", url,
			resp.StatusCode)
	}

	var data apiScheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("unable to parse nfl schedule: %w", err)
	}

	teamName := data.Team.DisplayName
	ret := make([]TeamGame, 0, len(data.Events))
	for _, event := range data.Events {
		if len(event.Competitions) == 0 {
			continue
		}
		comp := event.Competitions[0]

		var me, opp *apiCompetitor
		for idx := range comp.Competitors {
			if comp.Competitors[idx].ID == teamID {
				me = &comp.Competitors[idx]
			} else {
				opp = &comp.Competitors[idx]
			}
		}
		if me == nil || opp == nil {
			continue
		}

		if !comp.Status.Type.Completed {
			logrus.Debugf("skipping undecided week %v game for %v",
				event.Week.Number, teamName)
			continue
		}
		if !me.won() && !opp.won() {
			logrus.Debugf("skipping tied week %v game for %v",
				event.Week.Number, teamName)
			continue
		}

		date, err := internal.ParseDateOrZero(event.Date)
		if err != nil {
			logrus.Warnf("unable to parse date %q in %v schedule: %v",
				event.Date, teamName, err)
		}

		ret = append(ret, TeamGame{
			Opponent:      opp.name(),
			Won:           me.won(),
			PointsFor:     int(me.Score.Value),
			PointsAgainst: int(opp.Score.Value),
			Week:          event.Week.Number,
			Date:          date,
		})
	}

	return ret, nil
}
