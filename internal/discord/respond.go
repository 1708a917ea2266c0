package discord

import (
	"errors"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/neppath/convoybot/internal/domain"
	"github.com/wb-go/wbf/logger"
)

func (b *Bot) replyEphemeral(i *discordgo.InteractionCreate, content string) {
	err := b.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		b.logger.Error("failed to respond to interaction",
			logger.String("error", err.Error()),
		)
	}
}

func (b *Bot) replyEmbedsEphemeral(i *discordgo.InteractionCreate, embeds []*discordgo.MessageEmbed) {
	err := b.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: embeds,
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		b.logger.Error("failed to respond to interaction",
			logger.String("error", err.Error()),
		)
	}
}

func (b *Bot) deferEphemeral(i *discordgo.InteractionCreate) error {
	return b.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
}

func (b *Bot) followUp(i *discordgo.InteractionCreate, content string) {
	_, err := b.session.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		b.logger.Error("failed to send follow-up",
			logger.String("error", err.Error()),
		)
	}
}

func (b *Bot) followUpEmbeds(i *discordgo.InteractionCreate, embeds []*discordgo.MessageEmbed) {
	_, err := b.session.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Embeds: embeds,
		Flags:  discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		b.logger.Error("failed to send follow-up",
			logger.String("error", err.Error()),
		)
	}
}

// replyError maps a service error onto the user-facing message for the
// invoking interaction. Unknown errors get logged and a generic reply;
// the interaction always gets an answer.
func (b *Bot) replyError(i *discordgo.InteractionCreate, err error) {
	b.reportError(i, err, b.replyEphemeral)
}

// followUpError is replyError for already-deferred interactions.
func (b *Bot) followUpError(i *discordgo.InteractionCreate, err error) {
	b.reportError(i, err, func(i *discordgo.InteractionCreate, msg string) {
		b.followUp(i, msg)
	})
}

func (b *Bot) reportError(i *discordgo.InteractionCreate, err error, send func(*discordgo.InteractionCreate, string)) {
	switch {
	case errors.Is(err, domain.ErrBoardNotFound):
		send(i, "❌ Booking data not found. Create a new booking with /create.")
	case errors.Is(err, domain.ErrSlotNotFound):
		send(i, "❌ That slot does not exist on this board.")
	case errors.Is(err, domain.ErrClaimNotFound):
		send(i, "❌ This request no longer exists.")
	case errors.Is(err, domain.ErrSlotApproved):
		send(i, "❌ That slot is already approved for another VTC.")
	case errors.Is(err, domain.ErrSlotRequested):
		send(i, "❌ That slot already has a pending request.")
	case errors.Is(err, domain.ErrDuplicateClaim):
		send(i, "❌ You already submitted a request for this slot.")
	case errors.Is(err, domain.ErrClaimNotPending):
		send(i, "❌ This request has already been decided.")
	case errors.Is(err, domain.ErrClaimNotApproved):
		send(i, "❌ This request is not approved.")
	case errors.Is(err, domain.ErrNoOpenSlots):
		send(i, "❌ No available slots in this booking message.")
	case errors.Is(err, domain.ErrUnauthorized):
		send(i, "❌ You are not staff.")
	case errors.Is(err, domain.ErrValidation):
		send(i, "❌ "+validationMessage(err))
	case errors.Is(err, domain.ErrUpstream):
		send(i, "❌ TruckersMP API is unavailable right now, try again later.")
	default:
		b.logger.Error("interaction failed",
			logger.String("error", err.Error()),
		)
		send(i, "❌ An internal error occurred while handling this interaction.")
	}
}

// validationMessage cuts wrap prefixes so the user sees the rule, not
// the call chain.
func validationMessage(err error) string {
	msg := err.Error()
	sentinel := domain.ErrValidation.Error()
	if idx := strings.Index(msg, sentinel); idx >= 0 {
		msg = strings.TrimPrefix(strings.TrimPrefix(msg[idx:], sentinel), ": ")
	}
	if msg == "" {
		return "Invalid input."
	}
	return msg
}
