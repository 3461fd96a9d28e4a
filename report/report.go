/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package report renders team reports as CSV and HTML files.
package report

import (
	"sort"
	"strconv"

	"github.com/mikeb26/nfl-seedbot/league"
)

// orderReports sorts bracket teams ahead of the rest; within each
// partition, teams order by wins over playoff opponents, then overall
// wins, then winning percentage.
func orderReports(reports []league.TeamReport) []league.TeamReport {
	ordered := make([]league.TeamReport, len(reports))
	copy(ordered, reports)

	sort.SliceStable(ordered, func(i, j int) bool {
		lhs := ordered[i]
		rhs := ordered[j]
		if lhs.InPlayoffs != rhs.InPlayoffs {
			return lhs.InPlayoffs
		}
		lhsPlayoffWins := lhs.PlayoffSummary.TotalBeaten()
		rhsPlayoffWins := rhs.PlayoffSummary.TotalBeaten()
		if lhsPlayoffWins != rhsPlayoffWins {
			return lhsPlayoffWins > rhsPlayoffWins
		}
		if lhs.Team.Wins != rhs.Team.Wins {
			return lhs.Team.Wins > rhs.Team.Wins
		}
		return lhs.Team.WinPct() > rhs.Team.WinPct()
	})

	return ordered
}

func seedDisplay(report league.TeamReport) (string, string) {
	if !report.InPlayoffs {
		return "", ""
	}

	return strconv.Itoa(report.Seed), report.SeedSource.String()
}
