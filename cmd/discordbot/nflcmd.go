/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/mikeb26/nfl-seedbot/espn"
	"github.com/mikeb26/nfl-seedbot/league"
)

type NflSubCommand string

const (
	NflAboutCmd     NflSubCommand = "about"
	NflHelpCmd      NflSubCommand = "help"
	NflStandingsCmd NflSubCommand = "standings"
	NflPictureCmd   NflSubCommand = "picture"
	NflTeamCmd      NflSubCommand = "team"
)

var nflSubCmdHdlrs = map[NflSubCommand]CmdHandler{
	NflAboutCmd:     nflAboutCmdHandler,
	NflHelpCmd:      nflHelpCmdHandler,
	NflStandingsCmd: nflStandingsCmdHandler,
	NflPictureCmd:   nflPictureCmdHandler,
	NflTeamCmd:      nflTeamCmdHandler,
}

func nflCmdHandler(inter *discordgo.Interaction) *discordgo.InteractionResponse {
	data := inter.ApplicationCommandData()
	hdlr := nflHelpCmdHandler
	if len(data.Options) > 0 {
		if subName := data.Options[0].Name; subName != "" {
			h, ok := nflSubCmdHdlrs[NflSubCommand(subName)]
			if ok {
				hdlr = h
			}
		}
	}
	return hdlr(inter)
}

//go:embed about.txt
var aboutText string

func nflAboutCmdHandler(
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	resp.Data.Content = truncateContent(aboutText)

	return resp
}

//go:embed help.md
var helpText string

func nflHelpCmdHandler(
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	resp.Data.Content = truncateContent(helpText)
	return resp
}

// fetchLeague pulls the season to date and folds it into standings; tests
// replace it to avoid the network.
var fetchLeague = func(ctx context.Context) ([]*league.Team, error) {
	client := espn.NewClient(ctx)
	infos, games, err := client.FetchSeason(ctx)
	if err != nil {
		return nil, err
	}
	return league.BuildStandings(league.NFL(), infos, games)
}

// subCmdOpts extracts the named subcommand's options along with the shared
// broadcast flag.
func subCmdOpts(
	inter *discordgo.Interaction) (map[string]*discordgo.ApplicationCommandInteractionDataOption, bool) {

	opts := make(map[string]*discordgo.ApplicationCommandInteractionDataOption)
	broadcast := false
	data := inter.ApplicationCommandData()
	if len(data.Options) > 0 {
		for _, opt := range data.Options[0].Options {
			opts[opt.Name] = opt
			if opt.Name == "broadcast" {
				broadcast = opt.BoolValue()
			}
		}
	}

	return opts, broadcast
}

func nflStandingsCmdHandler(
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}
	_, broadcast := subCmdOpts(inter)

	teams, err := fetchLeague(context.Background())
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error fetching standings: %v", err)
		logrus.Warnf("discordbot.standings: %v", resp.Data.Content)
		return resp
	}

	// Wrap output in code block for monospace formatting in Discord
	resp.Data.Content = fmt.Sprintf("```\n%s```",
		truncateContent(league.BuildStandingsOutput(league.NFL(), teams)))

	if broadcast {
		resp.Data.Flags = 0
	}

	return resp
}

func nflPictureCmdHandler(
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}
	_, broadcast := subCmdOpts(inter)

	teams, err := fetchLeague(context.Background())
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error fetching standings: %v", err)
		logrus.Warnf("discordbot.picture: %v", resp.Data.Content)
		return resp
	}

	pic, err := league.BuildPicture(league.NFL(), teams)
	if err != nil {
		logrus.Warnf("discordbot.picture: incomplete: %v", err)
	}
	if len(pic.Conferences) == 0 {
		resp.Data.Content = fmt.Sprintf("Error building playoff picture: %v",
			err)
		logrus.Warnf("discordbot.picture: %v", resp.Data.Content)
		return resp
	}

	resp.Data.Content = fmt.Sprintf("```\n%s```",
		truncateContent(league.BuildPictureOutput(pic)))

	if broadcast {
		resp.Data.Flags = 0
	}

	return resp
}

func nflTeamCmdHandler(
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}
	opts, broadcast := subCmdOpts(inter)

	nameOpt, ok := opts["name"]
	if !ok || nameOpt.StringValue() == "" {
		resp.Data.Content = "Please provide a team name."
		logrus.Warnf("discordbot.team: %v", resp.Data.Content)
		return resp
	}
	name := nameOpt.StringValue()

	teams, err := fetchLeague(context.Background())
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error fetching standings: %v", err)
		logrus.Warnf("discordbot.team: %v", resp.Data.Content)
		return resp
	}

	t := league.FindTeam(teams, name)
	if t == nil {
		resp.Data.Content = fmt.Sprintf("No unique team matches %q.", name)
		logrus.Warnf("discordbot.team: %v", resp.Data.Content)
		return resp
	}

	pic, err := league.BuildPicture(league.NFL(), teams)
	if err != nil {
		logrus.Warnf("discordbot.team: picture incomplete: %v", err)
	}
	for _, rpt := range league.BuildReports(teams, pic) {
		if rpt.Team != t {
			continue
		}
		resp.Data.Content = fmt.Sprintf("```\n%s```",
			truncateContent(league.BuildTeamOutput(rpt)))
		if broadcast {
			resp.Data.Flags = 0
		}
		return resp
	}

	resp.Data.Content = fmt.Sprintf("No report available for %v.", t.Name)
	return resp
}

// https://discord.com/developers/docs/resources/channel#start-thread-in-forum-or-media-channel-forum-and-media-thread-message-params-object
// limits messages to 2k characters
func truncateContent(s string) string {
	const MsgLimit = 1988 // keep space for newlines and markdown
	runes := []rune(s)
	if len(runes) > MsgLimit {
		s = fmt.Sprintf("%v...", string(runes[:MsgLimit]))
	}
	return s
}
