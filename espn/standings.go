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
	"strconv"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/mikeb26/nfl-seedbot/internal"
)

// TeamStanding is one team's row from the published standings: identity,
// league membership, and the results the source itself reports. ID and
// PlayoffSeat are only available from the JSON API; the website fallback
// leaves them zero.
type TeamStanding struct {
	ID          string
	Name        string
	Conference  string
	Division    string
	Wins        int
	Losses      int
	WinPct      float64
	PlayoffSeat int
}

// vended by https://site.web.api.espn.com/apis/v2/sports/football/nfl/standings?level=3
type apiStandingsResponse struct {
	Children []struct {
		Name      string `json:"name"`
		Standings struct {
			Entries []apiStandingsEntry `json:"entries"`
		} `json:"standings"`
	} `json:"children"`
}

type apiStandingsEntry struct {
	Team struct {
		ID          string `json:"id"`
		DisplayName string `json:"displayName"`
	} `json:"team"`
	Stats []struct {
		Name  string  `json:"name"`
		Value float64 `json:"value"`
	} `json:"stats"`
}

func (entry *apiStandingsEntry) stat(name string) float64 {
	for _, s := range entry.Stats {
		if s.Name == name {
			return s.Value
		}
	}

	return 0
}

// GetStandings retrieves the current league standings, preferring the JSON
// API and falling back to scraping the public standings page when the API
// is unavailable.
func (client *Client) GetStandings(ctx context.Context) ([]TeamStanding,
	error) {

	var wg sync.WaitGroup
	var viaApi, viaWeb []TeamStanding
	var apiErr, webErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		viaApi, apiErr = client.getStandingsViaApi(ctx)
	}()
	go func() {
		defer wg.Done()
		viaWeb, webErr = client.getStandingsViaWeb(ctx)
	}()
	wg.Wait()

	// prefer the api response
	if apiErr != nil {
		if webErr != nil {
			return viaApi, apiErr
		} // else
		return viaWeb, nil
	} // else

	return viaApi, apiErr
}

// getStandingsViaApi fetches division level standings from the JSON API.
// Each child group is one division named like "AFC East".
func (client *Client) getStandingsViaApi(
	ctx context.Context) ([]TeamStanding, error) {

	url := fmt.Sprintf(
		"%v/apis/v2/sports/football/nfl/standings?level=3", client.apiBase)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch nfl standings (new): %w",
			err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.httpClient6hr.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch nfl standings (do): %w",
			err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unable to fetch %v: http status: %v", url,
			resp.StatusCode)
	}

	var data apiStandingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("unable to parse nfl standings: %w", err)
	}

	ret := make([]TeamStanding, 0)
	for _, child := range data.Children {
		conference, division, err := parseGroupName(child.Name)
		if err != nil {
			return nil, err
		}
		for _, entry := range child.Standings.Entries {
			ret = append(ret, TeamStanding{
				ID:          entry.Team.ID,
				Name:        entry.Team.DisplayName,
				Conference:  conference,
				Division:    division,
				Wins:        int(entry.stat("wins")),
				Losses:      int(entry.stat("losses")),
				WinPct:      entry.stat("winPercent"),
				PlayoffSeat: int(entry.stat("playoffSeat")),
			})
		}
	}
	if len(ret) == 0 {
		return nil, fmt.Errorf("nfl standings API returned an empty response")
	}

	return ret, nil
}

// getStandingsViaWeb scrapes the public standings page. Each conference
// renders as a pair of aligned tables, team names on the left and stats on
// the right, with division header rows interleaved at matching indices.
func (client *Client) getStandingsViaWeb(
	ctx context.Context) ([]TeamStanding, error) {

	url := fmt.Sprintf("%v/nfl/standings", client.webBase)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch standings page (new): %w",
			err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)

	resp, err := client.httpClient24hr.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch standings page (do): %w",
			err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unable to fetch %v: http status: %v", url,
			resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to parse standings page: %w", err)
	}

	ret := parseStandingsDoc(doc)
	if len(ret) == 0 {
		return nil, fmt.Errorf("standings page yielded no teams")
	}

	return ret, nil
}

func parseStandingsDoc(doc *goquery.Document) []TeamStanding {
	ret := make([]TeamStanding, 0)

	doc.Find("div.standings__table").Each(func(_ int, tbl *goquery.Selection) {
		tables := tbl.Find("table.Table")
		nameRows := tables.First().Find("tbody tr")
		statRows := tables.Last().Find("tbody tr")

		conference := ""
		division := ""
		nameRows.Each(func(idx int, row *goquery.Selection) {
			if row.HasClass("subgroup-headers") {
				conf, div, err := parseGroupName(
					strings.TrimSpace(row.Text()))
				if err == nil {
					conference = conf
					division = div
				}
				return
			}
			name := strings.TrimSpace(row.Find("a.AnchorLink").Last().Text())
			if name == "" || conference == "" {
				return
			}

			cells := statRows.Eq(idx).Find("td")
			wins, _ := strconv.Atoi(strings.TrimSpace(cells.Eq(0).Text()))
			losses, _ := strconv.Atoi(strings.TrimSpace(cells.Eq(1).Text()))
			winPct, _ := strconv.ParseFloat(
				strings.TrimSpace(cells.Eq(3).Text()), 64)

			ret = append(ret, TeamStanding{
				Name:       name,
				Conference: conference,
				Division:   division,
				Wins:       wins,
				Losses:     losses,
				WinPct:     winPct,
			})
		})
	})

	return ret
}

// parseGroupName splits a division group name like "AFC East" into its
// conference and division parts.
func parseGroupName(name string) (string, string, error) {
	fields := strings.Fields(name)
	if len(fields) < 2 {
		return "", "", fmt.Errorf("unable to parse group name %q", name)
	}

	return fields[0], strings.Join(fields[1:], " "), nil
}
