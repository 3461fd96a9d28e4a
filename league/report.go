/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package league

import (
	"sort"
)

// TeamReport pairs a team with its opponent tallies and playoff standing.
// PlayoffSummary restricts the tallies to opponents that made the final
// bracket; Seed is 0 for teams outside it.
type TeamReport struct {
	Team           *Team
	Summary        *OpponentSummary
	PlayoffSummary *OpponentSummary
	Seed           int
	SeedSource     SeedSource
	InPlayoffs     bool
}

// BuildReports assembles one report per team. Teams appear in picture
// order, seeds before also-rans within each conference; teams from
// conferences absent from the picture follow, sorted by name.
func BuildReports(teams []*Team, pic *Picture) []TeamReport {
	qualified := pic.QualifiedTeams()

	reportOf := func(t *Team) TeamReport {
		summary := SummarizeOpponents(t)
		report := TeamReport{
			Team:           t,
			Summary:        summary,
			PlayoffSummary: summary.FilterTo(qualified),
		}
		if seed, ok := pic.seedOf(t.Name); ok {
			report.Seed = seed.Number
			report.SeedSource = seed.Source
			report.InPlayoffs = true
		}
		return report
	}

	reports := make([]TeamReport, 0, len(teams))
	covered := make(map[string]bool, len(teams))
	for _, confPic := range pic.Conferences {
		for _, seed := range confPic.Seeds {
			reports = append(reports, reportOf(seed.Team))
			covered[seed.Team.Name] = true
		}
		for _, ranked := range confPic.AlsoRans {
			reports = append(reports, reportOf(ranked.Team))
			covered[ranked.Team.Name] = true
		}
	}

	uncovered := make([]*Team, 0)
	for _, t := range teams {
		if !covered[t.Name] {
			uncovered = append(uncovered, t)
		}
	}
	sort.Slice(uncovered, func(i, j int) bool {
		return uncovered[i].Name < uncovered[j].Name
	})
	for _, t := range uncovered {
		reports = append(reports, reportOf(t))
	}

	return reports
}
