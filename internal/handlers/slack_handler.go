package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/mfalcao/slack-punchcard-bot/internal/domain/contract"
	slackcmd "github.com/mfalcao/slack-punchcard-bot/internal/domain/slack"
	"github.com/mfalcao/slack-punchcard-bot/internal/domain/service"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	punchService  contract.PunchService
	lfgService    contract.LFGService
	signingSecret string
}

func New(punchService contract.PunchService, lfgService contract.LFGService, signingSecret string) *SlackHandler {
	return &SlackHandler{
		punchService:  punchService,
		lfgService:    lfgService,
		signingSecret: signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var response *slack.Msg
	switch s.Command {
	case "/punch":
		response = h.handlePunch(r, &s)
	case "/lfg":
		response = h.handleLFG(r, &s)
	default:
		response = h.createErrorResponse(fmt.Sprintf("Unknown command: %s", s.Command))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handlePunch(r *http.Request, slashCmd *slack.SlashCommand) *slack.Msg {
	cmd, err := slackcmd.ParseCommand(slashCmd.Text)
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	switch cmd.Type {
	case slackcmd.CmdToggle:
		return h.handleToggle(r, slashCmd)
	case slackcmd.CmdStatus:
		return h.handleStatus(slashCmd)
	default:
		return h.createEphemeralResponse(slackcmd.GetHelpText())
	}
}

func (h *SlackHandler) handleToggle(r *http.Request, slashCmd *slack.SlashCommand) *slack.Msg {
	result, err := h.punchService.TogglePunch(r.Context(), slashCmd.UserID)
	if err != nil {
		log.Printf("Toggle failed for %s: %v", slashCmd.UserID, err)
		return h.createErrorResponse("Could not update your punchcard, try again.")
	}

	if result.PunchedIn {
		return h.createEphemeralResponse("🟢 You are punched in. `/punch` again to end the session.")
	}
	return h.createEphemeralResponse(fmt.Sprintf("🔴 You are punched out. Session length: %s.", service.FormatDuration(result.Duration)))
}

func (h *SlackHandler) handleStatus(slashCmd *slack.SlashCommand) *slack.Msg {
	entry, ok := h.punchService.StatusOf(slashCmd.UserID)
	if !ok {
		return h.createEphemeralResponse("No tracked sessions yet this week. `/punch` to start one.")
	}

	state := "punched out"
	if entry.PunchedIn {
		state = "punched in"
	}
	return h.createEphemeralResponse(fmt.Sprintf("You are %s with %.2f h recorded this week.", state, entry.TotalSeconds/3600))
}

func (h *SlackHandler) handleLFG(r *http.Request, slashCmd *slack.SlashCommand) *slack.Msg {
	ack, err := h.lfgService.PostLFG(r.Context(), slashCmd.UserID)
	if err != nil {
		var cooldownErr service.ErrLFGCooldown
		if errors.As(err, &cooldownErr) {
			return h.createEphemeralResponse("⏳ " + cooldownErr.Error())
		}
		log.Printf("LFG post failed for %s: %v", slashCmd.UserID, err)
		return h.createErrorResponse("Could not send the LFG ping, try again.")
	}

	return h.createEphemeralResponse("📣 " + ack)
}

func (h *SlackHandler) createEphemeralResponse(text string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}

func (h *SlackHandler) createErrorResponse(text string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "❌ " + text,
	}
}
