/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package report

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/mikeb26/nfl-seedbot/league"
)

func testReports(t *testing.T) []league.TeamReport {
	t.Helper()

	structure := league.Structure{
		Conferences: []league.ConferenceStructure{
			{Name: "AFC", Divisions: []string{"East", "West"}},
		},
		WildcardSlots: 0,
	}
	infos := []league.TeamInfo{
		{Name: "Buffalo Bills", Conference: "AFC", Division: "East"},
		{Name: "New York Jets", Conference: "AFC", Division: "East"},
		{Name: "Kansas City Chiefs", Conference: "AFC", Division: "West"},
		{Name: "Las Vegas Raiders", Conference: "AFC", Division: "West"},
	}
	games := []league.GameRecord{
		{Team: "Buffalo Bills", Opponent: "New York Jets",
			Outcome: league.OutcomeWin, Divisional: true, PointsFor: 24,
			PointsAgainst: 10, Week: 1},
		{Team: "New York Jets", Opponent: "Buffalo Bills",
			Outcome: league.OutcomeLoss, Divisional: true, PointsFor: 10,
			PointsAgainst: 24, Week: 1},
		{Team: "Kansas City Chiefs", Opponent: "Las Vegas Raiders",
			Outcome: league.OutcomeWin, Divisional: true, PointsFor: 30,
			PointsAgainst: 20, Week: 1},
		{Team: "Las Vegas Raiders", Opponent: "Kansas City Chiefs",
			Outcome: league.OutcomeLoss, Divisional: true, PointsFor: 20,
			PointsAgainst: 30, Week: 1},
		{Team: "Buffalo Bills", Opponent: "Kansas City Chiefs",
			Outcome: league.OutcomeWin, Divisional: false, PointsFor: 21,
			PointsAgainst: 14, Week: 2},
		{Team: "Kansas City Chiefs", Opponent: "Buffalo Bills",
			Outcome: league.OutcomeLoss, Divisional: false, PointsFor: 14,
			PointsAgainst: 21, Week: 2},
	}

	teams, err := league.BuildStandings(structure, infos, games)
	if err != nil {
		t.Fatalf("unable to build standings: %v", err)
	}
	pic, err := league.BuildPicture(structure, teams)
	if err != nil {
		t.Fatalf("unable to build picture: %v", err)
	}

	return league.BuildReports(teams, pic)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, testReports(t)); err != nil {
		t.Fatalf("unable to write csv: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("unable to parse csv: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected a header and 4 rows; got %v rows", len(rows))
	}
	if rows[0][0] != "team" || rows[0][8] != "seed" {
		t.Errorf("unexpected header: %v", rows[0])
	}

	// the Bills hold the only playoff win over a playoff team, so they
	// lead; non-bracket teams follow the bracket
	bills := rows[1]
	if bills[0] != "Buffalo Bills" {
		t.Errorf("expected the Bills first; got %v", bills[0])
	}
	if bills[1] != "AFC" || bills[2] != "East" {
		t.Errorf("unexpected Bills membership: %v", bills)
	}
	if bills[3] != "2" || bills[4] != "0" || bills[5] != "1.000" {
		t.Errorf("unexpected Bills record columns: %v", bills)
	}
	if bills[8] != "1" || bills[9] != "computed" || bills[10] != "true" {
		t.Errorf("unexpected Bills seed columns: %v", bills)
	}
	if bills[13] != "1" {
		t.Errorf("expected 1 playoff team beaten; got %v", bills[13])
	}
	if bills[15] != "Kansas City Chiefs, New York Jets" {
		t.Errorf("unexpected beaten list: %v", bills[15])
	}

	if rows[2][0] != "Kansas City Chiefs" {
		t.Errorf("expected the Chiefs second; got %v", rows[2][0])
	}
	for _, row := range rows[3:] {
		if row[10] != "false" || row[8] != "" || row[9] != "" {
			t.Errorf("expected an unseeded row; got %v", row)
		}
	}
}
