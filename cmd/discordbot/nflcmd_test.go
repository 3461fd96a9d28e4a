/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"

	"github.com/mikeb26/nfl-seedbot/league"
)

// fixtureLeague builds a full 32 team league with distinct records within
// each conference so no tiebreaking is needed.
func fixtureLeague() []*league.Team {
	teams := make([]*league.Team, 0, 32)
	for _, conf := range league.NFL().Conferences {
		for divIdx, div := range conf.Divisions {
			for teamIdx := 0; teamIdx < 4; teamIdx++ {
				wins := divIdx*4 + teamIdx
				teams = append(teams, &league.Team{
					Name:       fmt.Sprintf("%v %v %v", conf.Name, div, teamIdx+1),
					Conference: conf.Name,
					Division:   div,
					Wins:       wins,
					Losses:     17 - wins,
				})
			}
		}
	}

	return teams
}

func withFixtureLeague(t *testing.T) {
	t.Helper()

	oldFetch := fetchLeague
	fetchLeague = func(ctx context.Context) ([]*league.Team, error) {
		return fixtureLeague(), nil
	}
	t.Cleanup(func() {
		fetchLeague = oldFetch
	})
}

func subCmdInteraction(subCmd string,
	opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.Interaction {

	return &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{
			Name: string(NflCmd),
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{
					Name:    subCmd,
					Type:    discordgo.ApplicationCommandOptionSubCommand,
					Options: opts,
				},
			},
		},
	}
}

func TestNflStandingsCmdHandler(t *testing.T) {
	withFixtureLeague(t)

	resp := nflCmdHandler(subCmdInteraction(string(NflStandingsCmd)))
	if resp == nil || resp.Data == nil {
		t.Fatal("expected a response with data")
	}
	if resp.Type != discordgo.InteractionResponseChannelMessageWithSource {
		t.Errorf("expected channel message response; got %v", resp.Type)
	}
	if !strings.HasPrefix(resp.Data.Content, "```\n") {
		t.Errorf("expected code block content; got %q", resp.Data.Content)
	}
	if !strings.Contains(resp.Data.Content, "AFC East") {
		t.Errorf("expected AFC East in standings; got %q", resp.Data.Content)
	}
	if resp.Data.Flags != discordgo.MessageFlagsEphemeral {
		t.Errorf("expected ephemeral response by default")
	}
}

func TestNflStandingsCmdHandlerBroadcast(t *testing.T) {
	withFixtureLeague(t)

	resp := nflCmdHandler(subCmdInteraction(string(NflStandingsCmd),
		&discordgo.ApplicationCommandInteractionDataOption{
			Name:  "broadcast",
			Type:  discordgo.ApplicationCommandOptionBoolean,
			Value: true,
		}))
	if resp == nil || resp.Data == nil {
		t.Fatal("expected a response with data")
	}
	if resp.Data.Flags != 0 {
		t.Errorf("expected non-ephemeral response with broadcast:true")
	}
}

func TestNflPictureCmdHandler(t *testing.T) {
	withFixtureLeague(t)

	resp := nflCmdHandler(subCmdInteraction(string(NflPictureCmd)))
	if resp == nil || resp.Data == nil {
		t.Fatal("expected a response with data")
	}
	if !strings.Contains(resp.Data.Content, "Seed") {
		t.Errorf("expected seed table in picture; got %q", resp.Data.Content)
	}
	// the best team in each division wears jersey number 4 in the fixture
	if !strings.Contains(resp.Data.Content, "AFC West 4") {
		t.Errorf("expected top seed AFC West 4; got %q", resp.Data.Content)
	}
}

func TestNflTeamCmdHandler(t *testing.T) {
	withFixtureLeague(t)

	resp := nflCmdHandler(subCmdInteraction(string(NflTeamCmd),
		&discordgo.ApplicationCommandInteractionDataOption{
			Name:  "name",
			Type:  discordgo.ApplicationCommandOptionString,
			Value: "NFC North 2",
		}))
	if resp == nil || resp.Data == nil {
		t.Fatal("expected a response with data")
	}
	if !strings.Contains(resp.Data.Content, "NFC North 2") {
		t.Errorf("expected team detail; got %q", resp.Data.Content)
	}
	if !strings.Contains(resp.Data.Content, "Record: 5-12") {
		t.Errorf("expected record in team detail; got %q", resp.Data.Content)
	}
}

func TestNflTeamCmdHandlerMissingName(t *testing.T) {
	withFixtureLeague(t)

	resp := nflCmdHandler(subCmdInteraction(string(NflTeamCmd)))
	if resp == nil || resp.Data == nil {
		t.Fatal("expected a response with data")
	}
	if !strings.Contains(resp.Data.Content, "Please provide a team name") {
		t.Errorf("expected prompt for team name; got %q", resp.Data.Content)
	}
}

func TestNflHelpFallback(t *testing.T) {
	// an unknown subcommand falls back to help
	resp := nflCmdHandler(subCmdInteraction("bogus"))
	if resp == nil || resp.Data == nil {
		t.Fatal("expected a response with data")
	}
	if resp.Data.Content != truncateContent(helpText) {
		t.Errorf("expected help text; got %q", resp.Data.Content)
	}
}

func TestTruncateContent(t *testing.T) {
	short := "hello"
	if got := truncateContent(short); got != short {
		t.Errorf("expected short content unchanged; got %q", got)
	}

	long := strings.Repeat("x", 4000)
	got := truncateContent(long)
	if len([]rune(got)) != 1991 {
		t.Errorf("expected truncation to 1988 runes plus ellipsis; got %v",
			len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected ellipsis suffix; got %q", got[len(got)-8:])
	}
}
