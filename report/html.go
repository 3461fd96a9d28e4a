/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package report

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/mikeb26/nfl-seedbot/internal"
	"github.com/mikeb26/nfl-seedbot/league"
)

//go:embed report.html.tmpl
var htmlTemplateText string

var htmlTemplate = template.Must(template.New("report").Parse(htmlTemplateText))

type htmlRow struct {
	Team          string
	Conference    string
	Division      string
	Record        string
	WinPct        string
	DivRecord     string
	PointDiff     string
	Seed          string
	SeedSource    string
	Beaten        string
	Played        string
	PlayoffBeaten string
	PlayoffPlayed string
	BeatenList    string
}

type htmlData struct {
	Title      string
	Playoff    []htmlRow
	NonPlayoff []htmlRow
}

// WriteHTML emits the report as a page with one table of bracket teams and
// one of everyone else.
func WriteHTML(w io.Writer, reports []league.TeamReport) error {
	data := htmlData{
		Title: "NFL Teams & Playoff Picture",
	}
	for _, report := range orderReports(reports) {
		row := htmlRowFor(report)
		if report.InPlayoffs {
			data.Playoff = append(data.Playoff, row)
		} else {
			data.NonPlayoff = append(data.NonPlayoff, row)
		}
	}

	if err := htmlTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("unable to render html report: %w", err)
	}

	return nil
}

func htmlRowFor(report league.TeamReport) htmlRow {
	t := report.Team
	seed, seedSource := seedDisplay(report)

	return htmlRow{
		Team:          t.Name,
		Conference:    t.Conference,
		Division:      t.Division,
		Record:        t.Record(),
		WinPct:        internal.FormatWinPct(t.WinPct()),
		DivRecord:     t.DivisionRecord(),
		PointDiff:     internal.FormatSigned(t.PointDiff()),
		Seed:          seed,
		SeedSource:    seedSource,
		Beaten:        report.Summary.BeatenDisplay(),
		Played:        report.Summary.PlayedDisplay(),
		PlayoffBeaten: report.PlayoffSummary.BeatenDisplay(),
		PlayoffPlayed: report.PlayoffSummary.PlayedDisplay(),
		BeatenList:    strings.Join(report.Summary.BeatenList(), ", "),
	}
}
