/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/mikeb26/nfl-seedbot/internal"

	_ "embed"
)

//go:embed token.priv
var botPrivToken string

//go:embed key.pub
var botPubKeyText string
var botPubKey ed25519.PublicKey

//go:embed app.id
var botAppId string

// set to the command id logged by the create path once registered
const NflCmdId = ""

var client *discordgo.Session

type TopLevelCommand string

const (
	NflCmd TopLevelCommand = "nfl"
)

type CmdHandler func(inter *discordgo.Interaction) *discordgo.InteractionResponse

var topLevelCmdHdlrs = map[TopLevelCommand]CmdHandler{
	NflCmd: nflCmdHandler,
}

func interactionHandler(w http.ResponseWriter, r *http.Request) {
	if !discordgo.VerifyInteraction(r, botPubKey) {
		logrus.Warnf("discordbot.int: failed to verify")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logrus.Warnf("discordbot.int: failed to read request body: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var inter discordgo.Interaction
	if err := inter.UnmarshalJSON(body); err != nil {
		logrus.Warnf("discordbot.int: failed to unmarshal interaction: err:%v body:%v",
			err, body)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	resp := &discordgo.InteractionResponse{}
	if inter.Type == discordgo.InteractionPing {
		resp.Type = discordgo.InteractionResponsePong
	} else if inter.Type == discordgo.InteractionApplicationCommand {
		hdlr, ok :=
			topLevelCmdHdlrs[TopLevelCommand(inter.ApplicationCommandData().Name)]
		if !ok {
			resp.Type = discordgo.InteractionResponseChannelMessageWithSource
			resp.Data = &discordgo.InteractionResponseData{
				Content: fmt.Sprintf("unknown command '%v'",
					inter.ApplicationCommandData().Name),
				Flags: discordgo.MessageFlagsEphemeral,
			}
		} else {
			resp = hdlr(&inter)
		}
	} else {
		logrus.Warnf("discordbot.int: unimplemented interaction type %v: inter:%v",
			inter.Type, inter)
		w.WriteHeader(http.StatusNotImplemented)
		return
	}

	rawResp, err := json.Marshal(resp)
	if err != nil {
		logrus.Errorf("discordbot.int: failed to marshal resp: err:%v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	_, err = w.Write(rawResp)
	if err != nil {
		logrus.Errorf("discordbot.int: failed to write resp: err:%v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
}

func init() {
	internal.InitLogLevel()

	pubKeyBytes, err := hex.DecodeString(botPubKeyText)
	if err != nil {
		logrus.Fatalf("discordbot.init: failed to parse public key: %v", err)
	}
	botPubKey = ed25519.PublicKey(pubKeyBytes)

	client, err = discordgo.New("Bot " + botPrivToken)
	if err != nil {
		logrus.Fatalf("discordbot.init: failed to initialize discord client: %v",
			err)
	}
}

//go:embed lastupdate.hash
var lastCmdUpdateHash string

func shouldUpdateCmdRegistration(cmd *discordgo.ApplicationCommand) bool {
	cmdJson, err := json.Marshal(cmd)
	if err != nil {
		logrus.Errorf("discordbot.reg: failed to marshal cmd: %v", err)
		return false
	}
	hasher := sha256.New()
	hasher.Write(cmdJson)
	hash := hasher.Sum(nil)
	hexString := hex.EncodeToString(hash)

	shouldUpdate := (hexString != lastCmdUpdateHash)

	if shouldUpdate {
		logrus.Infof("discordbot.reg: updating cmd reg; please update lastupdate.hash to %v",
			hexString)
	}

	return shouldUpdate
}

func registerSlashCommands() {
	broadcastOpt := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionBoolean,
		Name:        "broadcast",
		Description: "Share with the rest of the channel instead of only to you (default is false)",
		Required:    false,
	}

	nflCmd := &discordgo.ApplicationCommand{
		Name:        string(NflCmd),
		Description: "NFL standings and playoff picture; try /nfl help to start",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(NflHelpCmd),
				Description: "Show usage for nfl",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(NflAboutCmd),
				Description: "Show information about nfl-seedbot",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(NflStandingsCmd),
				Description: "Show current standings by division",
				Options: []*discordgo.ApplicationCommandOption{
					broadcastOpt,
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(NflPictureCmd),
				Description: "Show the current playoff picture",
				Options: []*discordgo.ApplicationCommandOption{
					broadcastOpt,
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(NflTeamCmd),
				Description: "Show one team's season detail",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "Team name (full or unique substring)",
						Required:    true,
					},
					broadcastOpt,
				},
			},
		},
	}

	if NflCmdId == "" {
		cmd, err := client.ApplicationCommandCreate(botAppId, "", nflCmd)
		if err != nil {
			logrus.Errorf("discordbot.reg: failed to register %v: %v",
				nflCmd.Name, err)
			return
		}

		logrus.Infof("discordbot.reg: registered %v(cmdID:%v)", cmd.Name,
			cmd.ID)
	} else if shouldUpdateCmdRegistration(nflCmd) {
		cmd, err := client.ApplicationCommandEdit(botAppId, "", NflCmdId,
			nflCmd)
		if err != nil {
			logrus.Errorf("discordbot.reg: failed to update %v: %v",
				nflCmd.Name, err)
			return
		}

		logrus.Infof("discordbot.reg: updated %v(cmdID:%v)", cmd.Name, cmd.ID)
	}
}

func main() {
	go registerSlashCommands()

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}
	logrus.Infof("discordbot.main: starting server on %v:8080", hostname)

	http.HandleFunc("/DiscordBot/Interaction", interactionHandler)
	if err := http.ListenAndServe(":8080", nil); err != nil {
		logrus.Fatalf("discordbot.main: Serve failed: %v", err)
	}

	logrus.Infof("discordbot.main: exiting")
}
