/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/mikeb26/nfl-seedbot/espn"
	"github.com/mikeb26/nfl-seedbot/internal"
	"github.com/mikeb26/nfl-seedbot/league"
	"github.com/mikeb26/nfl-seedbot/report"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(ctx context.Context, args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":      handleHelp,
	"standings": handleStandings,
	"picture":   handlePicture,
	"team":      handleTeam,
	"report":    handleReport,
}

func main() {
	internal.InitLogLevel()
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(ctx, os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(ctx context.Context, args []string) {
	usage()
}

// fetchTeams pulls the season to date and folds it into standings.
func fetchTeams(ctx context.Context) []*league.Team {
	client := espn.NewClient(ctx)
	infos, games, err := client.FetchSeason(ctx)
	if err != nil {
		logrus.Fatalf("Error fetching season: %v", err)
	}
	teams, err := league.BuildStandings(league.NFL(), infos, games)
	if err != nil {
		logrus.Fatalf("Error building standings: %v", err)
	}

	return teams
}

func handleStandings(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("standings", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	teams := fetchTeams(ctx)
	fmt.Println(league.BuildStandingsOutput(league.NFL(), teams))
}

func handlePicture(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("picture", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	teams := fetchTeams(ctx)
	pic, err := league.BuildPicture(league.NFL(), teams)
	if err != nil {
		// a conference that failed to seed is omitted from the picture;
		// show whatever resolved
		logrus.Warnf("playoff picture incomplete: %v", err)
	}
	if len(pic.Conferences) == 0 {
		logrus.Fatalf("Error building playoff picture: %v", err)
	}
	fmt.Println(league.BuildPictureOutput(pic))
}

func handleTeam(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("team", flag.ExitOnError)
	name := fs.String("name", "", "Team name (full or unique substring)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *name == "" && fs.NArg() > 0 {
		*name = fs.Arg(0)
	}
	if *name == "" {
		fmt.Fprintln(os.Stderr, "Please provide a team via --name.")
		fs.Usage()
		os.Exit(1)
	}

	teams := fetchTeams(ctx)
	t := league.FindTeam(teams, *name)
	if t == nil {
		logrus.Fatalf("No unique team matches %q", *name)
	}

	pic, err := league.BuildPicture(league.NFL(), teams)
	if err != nil {
		logrus.Warnf("playoff picture incomplete: %v", err)
	}
	for _, rpt := range league.BuildReports(teams, pic) {
		if rpt.Team == t {
			fmt.Println(league.BuildTeamOutput(rpt))
			return
		}
	}
}

func handleReport(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	csvPath := fs.String("csv", "nfl_team_records.csv", "CSV output path")
	htmlPath := fs.String("html", "nfl_team_records.html", "HTML output path")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	teams := fetchTeams(ctx)
	pic, err := league.BuildPicture(league.NFL(), teams)
	if err != nil {
		logrus.Warnf("playoff picture incomplete: %v", err)
	}
	reports := league.BuildReports(teams, pic)

	csvFile, err := os.Create(*csvPath)
	if err != nil {
		logrus.Fatalf("Error creating %v: %v", *csvPath, err)
	}
	defer csvFile.Close()
	if err := report.WriteCSV(csvFile, reports); err != nil {
		logrus.Fatalf("Error writing %v: %v", *csvPath, err)
	}

	htmlFile, err := os.Create(*htmlPath)
	if err != nil {
		logrus.Fatalf("Error creating %v: %v", *htmlPath, err)
	}
	defer htmlFile.Close()
	if err := report.WriteHTML(htmlFile, reports); err != nil {
		logrus.Fatalf("Error writing %v: %v", *htmlPath, err)
	}

	fmt.Printf("wrote %v and %v\n", *csvPath, *htmlPath)
}
