/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mikeb26/nfl-seedbot/internal"
	"github.com/mikeb26/nfl-seedbot/league"
)

var csvHeader = []string{
	"team",
	"conference",
	"division",
	"wins",
	"losses",
	"win_pct",
	"division_record",
	"point_diff",
	"seed",
	"seed_source",
	"in_playoffs",
	"opponents_beaten_count",
	"opponents_played_count",
	"playoff_beaten_count",
	"playoff_played_count",
	"opponents_beaten",
}

// WriteCSV emits one row per team. Opponent counts carry their repeat
// surplus in parentheses, e.g. "3 (1)" for three distinct opponents one of
// whom was faced twice.
func WriteCSV(w io.Writer, reports []league.TeamReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("unable to write csv header: %w", err)
	}

	for _, report := range orderReports(reports) {
		if err := cw.Write(csvRow(report)); err != nil {
			return fmt.Errorf("unable to write csv row for %v: %w",
				report.Team.Name, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

func csvRow(report league.TeamReport) []string {
	t := report.Team
	seed, seedSource := seedDisplay(report)

	return []string{
		t.Name,
		t.Conference,
		t.Division,
		strconv.Itoa(t.Wins),
		strconv.Itoa(t.Losses),
		internal.FormatWinPct(t.WinPct()),
		t.DivisionRecord(),
		internal.FormatSigned(t.PointDiff()),
		seed,
		seedSource,
		strconv.FormatBool(report.InPlayoffs),
		report.Summary.BeatenDisplay(),
		report.Summary.PlayedDisplay(),
		report.PlayoffSummary.BeatenDisplay(),
		report.PlayoffSummary.PlayedDisplay(),
		strings.Join(report.Summary.BeatenList(), ", "),
	}
}
