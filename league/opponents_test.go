/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package league

import (
	"reflect"
	"testing"
)

func summaryTestTeam() *Team {
	return &Team{
		Name: "Buffalo Bills",
		Games: []Game{
			{Opponent: "Miami Dolphins", Outcome: OutcomeWin},
			{Opponent: "New York Jets", Outcome: OutcomeWin},
			{Opponent: "Miami Dolphins", Outcome: OutcomeWin},
			{Opponent: "Kansas City Chiefs", Outcome: OutcomeLoss},
			{Opponent: "Miami Dolphins", Outcome: OutcomeLoss},
		},
	}
}

func TestSummarizeOpponents(t *testing.T) {
	summary := SummarizeOpponents(summaryTestTeam())

	if summary.UniqueBeaten() != 2 {
		t.Errorf("expected 2 distinct beaten; got %v",
			summary.UniqueBeaten())
	}
	if summary.ExtraBeaten() != 1 {
		t.Errorf("expected 1 extra beaten; got %v", summary.ExtraBeaten())
	}
	if summary.UniquePlayed() != 3 {
		t.Errorf("expected 3 distinct played; got %v",
			summary.UniquePlayed())
	}
	if summary.ExtraPlayed() != 2 {
		t.Errorf("expected 2 extra played; got %v", summary.ExtraPlayed())
	}

	if summary.BeatenDisplay() != "2 (1)" {
		t.Errorf("expected \"2 (1)\"; got %q", summary.BeatenDisplay())
	}
	if summary.PlayedDisplay() != "3 (2)" {
		t.Errorf("expected \"3 (2)\"; got %q", summary.PlayedDisplay())
	}

	expectedBeaten := []string{"Miami Dolphins", "New York Jets"}
	if !reflect.DeepEqual(summary.BeatenNames(), expectedBeaten) {
		t.Errorf("expected beaten %v; got %v", expectedBeaten,
			summary.BeatenNames())
	}
	expectedPlayed := []string{"Kansas City Chiefs", "Miami Dolphins",
		"New York Jets"}
	if !reflect.DeepEqual(summary.PlayedNames(), expectedPlayed) {
		t.Errorf("expected played %v; got %v", expectedPlayed,
			summary.PlayedNames())
	}

	if summary.TotalBeaten() != 3 {
		t.Errorf("expected 3 total wins; got %v", summary.TotalBeaten())
	}
	expectedList := []string{"Miami Dolphins x2", "New York Jets"}
	if !reflect.DeepEqual(summary.BeatenList(), expectedList) {
		t.Errorf("expected list %v; got %v", expectedList,
			summary.BeatenList())
	}
}

func TestFilterTo(t *testing.T) {
	summary := SummarizeOpponents(summaryTestTeam())
	filtered := summary.FilterTo(map[string]bool{
		"Miami Dolphins":     true,
		"Kansas City Chiefs": true,
	})

	if filtered.UniqueBeaten() != 1 || filtered.ExtraBeaten() != 1 {
		t.Errorf("expected beaten 1 (1); got %v", filtered.BeatenDisplay())
	}
	if filtered.UniquePlayed() != 2 || filtered.ExtraPlayed() != 2 {
		t.Errorf("expected played 2 (2); got %v", filtered.PlayedDisplay())
	}
	if len(filtered.Beaten) != 1 || filtered.Beaten["Miami Dolphins"] != 2 {
		t.Errorf("unexpected filtered beaten tallies: %v", filtered.Beaten)
	}

	// the original is untouched
	if summary.UniquePlayed() != 3 {
		t.Errorf("filtering mutated the source summary")
	}
}

func TestFormatCount(t *testing.T) {
	testCases := []struct {
		unique   int
		extra    int
		expected string
	}{
		{0, 0, "0"},
		{3, 0, "3"},
		{3, 1, "3 (1)"},
		{14, 3, "14 (3)"},
	}

	for _, tc := range testCases {
		actual := FormatCount(tc.unique, tc.extra)
		if actual != tc.expected {
			t.Errorf("expected %q for %v/%v; got %q", tc.expected,
				tc.unique, tc.extra, actual)
		}
	}
}
