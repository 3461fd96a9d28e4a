/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package league

import (
	"fmt"
	"strings"

	"github.com/mikeb26/nfl-seedbot/internal"
)

// BuildStandingsOutput renders per-division standings tables in structure
// order. Teams whose relative order could not be established repeat the
// rank with a blank in the rank column, matching how tied scores are shown
// on published standings pages.
func BuildStandingsOutput(s Structure, teams []*Team) string {
	var sb strings.Builder

	for _, conf := range s.Conferences {
		for _, div := range conf.Divisions {
			divTeams := make([]*Team, 0)
			for _, t := range teams {
				if t.Conference == conf.Name && t.Division == div {
					divTeams = append(divTeams, t)
				}
			}
			if len(divTeams) == 0 {
				continue
			}

			sb.WriteString(fmt.Sprintf("%v %v\n\n", conf.Name, div))

			rows := [][]string{{"#", "Team", "W-L", "Pct", "Div", "PD"}}
			priorRank := -1
			for _, ranked := range rankRemainder(divTeams, 1) {
				rankStr := fmt.Sprintf("%v", ranked.Rank)
				if ranked.Rank == priorRank {
					rankStr = ""
				}
				priorRank = ranked.Rank

				t := ranked.Team
				rows = append(rows, []string{rankStr, t.Name, t.Record(),
					internal.FormatWinPct(t.WinPct()), t.DivisionRecord(),
					internal.FormatSigned(t.PointDiff())})
			}
			sb.WriteString(buildTable(rows))
			sb.WriteString("\n")
		}
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// BuildPictureOutput renders each conference's playoff bracket followed by
// the teams that missed it. Seeds taken from the upstream source's
// published bracket rather than computed here are marked with '*'.
func BuildPictureOutput(pic *Picture) string {
	var sb strings.Builder

	for _, confPic := range pic.Conferences {
		sb.WriteString(fmt.Sprintf("%v\n\n", confPic.Conference))

		haveExternal := false
		rows := [][]string{{"Seed", "Team", "W-L", "Pct"}}
		for _, seed := range confPic.Seeds {
			seedStr := fmt.Sprintf("%v", seed.Number)
			if seed.Source == SeedExternal {
				seedStr = seedStr + "*"
				haveExternal = true
			}
			t := seed.Team
			rows = append(rows, []string{seedStr, t.Name, t.Record(),
				internal.FormatWinPct(t.WinPct())})
		}
		sb.WriteString(buildTable(rows))

		if haveExternal {
			sb.WriteString("\n* seed from published standings\n")
		}

		if len(confPic.AlsoRans) != 0 {
			sb.WriteString("\nIn the hunt:\n")
			rows = [][]string{{"#", "Team", "W-L", "Pct"}}
			priorRank := -1
			for _, ranked := range confPic.AlsoRans {
				rankStr := fmt.Sprintf("%v", ranked.Rank)
				if ranked.Rank == priorRank {
					rankStr = ""
				}
				priorRank = ranked.Rank

				t := ranked.Team
				rows = append(rows, []string{rankStr, t.Name, t.Record(),
					internal.FormatWinPct(t.WinPct())})
			}
			sb.WriteString(buildTable(rows))
		}
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// BuildTeamOutput renders one team's season detail: record summary, game
// log, and opponent tallies. Repeat-opponent surpluses render in
// parentheses after the distinct count.
func BuildTeamOutput(report TeamReport) string {
	t := report.Team
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%v (%v %v)\n", t.Name, t.Conference,
		t.Division))
	sb.WriteString(fmt.Sprintf("Record: %v (%v)  Division: %v  Point diff: %v\n",
		t.Record(), internal.FormatWinPct(t.WinPct()), t.DivisionRecord(),
		internal.FormatSigned(t.PointDiff())))
	if report.InPlayoffs {
		sb.WriteString(fmt.Sprintf("Seed: %v (%v)\n", report.Seed,
			report.SeedSource))
	}
	sb.WriteString("\n")

	haveDivGame := false
	rows := [][]string{{"Week", "Date", "Opponent", "Result"}}
	for _, g := range t.Games {
		oppStr := g.Opponent
		if g.Divisional {
			oppStr = oppStr + "*"
			haveDivGame = true
		}
		dateStr := ""
		if !g.Date.IsZero() {
			dateStr = g.Date.Format("Jan 2")
		}
		rows = append(rows, []string{fmt.Sprintf("%v", g.Week), dateStr,
			oppStr, fmt.Sprintf("%v %v-%v", g.Outcome, g.PointsFor,
				g.PointsAgainst)})
	}
	sb.WriteString(buildTable(rows))
	if haveDivGame {
		sb.WriteString("\n* division game\n")
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Distinct opponents defeated: %v\n",
		report.Summary.BeatenDisplay()))
	sb.WriteString(fmt.Sprintf("Distinct opponents played: %v\n",
		report.Summary.PlayedDisplay()))
	sb.WriteString(fmt.Sprintf("Playoff teams defeated: %v\n",
		report.PlayoffSummary.BeatenDisplay()))
	sb.WriteString(fmt.Sprintf("Playoff teams played: %v\n",
		report.PlayoffSummary.PlayedDisplay()))

	if beaten := report.Summary.BeatenList(); len(beaten) != 0 {
		sb.WriteString(fmt.Sprintf("Defeated: %v\n",
			strings.Join(beaten, ", ")))
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// FindTeam locates a team by name, first by exact match then by unique
// substring match, both case insensitive. It returns nil when no team or
// more than one team matches.
func FindTeam(teams []*Team, name string) *Team {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil
	}

	var partial *Team
	partialCount := 0
	for _, t := range teams {
		haystack := strings.ToLower(t.Name)
		if haystack == needle {
			return t
		}
		if strings.Contains(haystack, needle) {
			partial = t
			partialCount++
		}
	}
	if partialCount == 1 {
		return partial
	}

	return nil
}

func buildTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	colWidths := make([]int, len(rows[0]))
	for _, row := range rows {
		for idx, cell := range row {
			if len(cell) > colWidths[idx] {
				colWidths[idx] = len(cell)
			}
		}
	}
	fmtStr := ""
	for _, width := range colWidths {
		fmtStr += fmt.Sprintf("%%-%vv  ", width)
	}
	fmtStr = strings.TrimSuffix(fmtStr, "  ")

	var sb strings.Builder
	for _, row := range rows {
		line := fmt.Sprintf(fmtStr, toAnySlice(row)...)
		sb.WriteString(strings.TrimRight(line, " "))
		sb.WriteString("\n")
	}

	return sb.String()
}

func toAnySlice(strs []string) []any {
	ret := make([]any, len(strs))
	for idx, s := range strs {
		ret[idx] = s
	}

	return ret
}
