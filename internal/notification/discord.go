package notification

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/neppath/convoybot/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Component custom IDs carried by the decision buttons. The bot's
// interaction router matches on these prefixes.
const (
	CustomIDApprovePrefix = "claim:approve:"
	CustomIDDenyPrefix    = "claim:deny:"
	CustomIDRevokePrefix  = "claim:revoke:"
)

const (
	colorOrange = 0xE67E22
	colorGreen  = 0x2ECC71
	colorRed    = 0xE74C3C
)

// DiscordNotifier implements the claim and staff notifier ports over a
// live Discord session: decision requests go to the staff log channel,
// decision outcomes go to the claimant's DMs.
type DiscordNotifier struct {
	session      *discordgo.Session
	staffLogChID string
	logger       logger.Logger
}

func NewDiscordNotifier(session *discordgo.Session, staffLogChannelID string, logger logger.Logger) *DiscordNotifier {
	return &DiscordNotifier{
		session:      session,
		staffLogChID: staffLogChannelID,
		logger:       logger,
	}
}

func (n *DiscordNotifier) NotifyClaimSubmitted(ctx context.Context, c *domain.Claim, b *domain.Board, userName string) {
	if err := ctx.Err(); err != nil {
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: "📥 Slot Booking Request",
		Color: colorOrange,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "User", Value: fmt.Sprintf("<@%s> (%s)", c.UserID, userName)},
			{Name: "VTC Name", Value: c.Company},
			{Name: "Slot", Value: c.SlotName},
			{Name: "Board", Value: b.Title},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Waiting for staff action"},
	}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "✅ Approve",
					Style:    discordgo.SuccessButton,
					CustomID: CustomIDApprovePrefix + c.ID,
				},
				discordgo.Button{
					Label:    "❌ Deny",
					Style:    discordgo.DangerButton,
					CustomID: CustomIDDenyPrefix + c.ID,
				},
				discordgo.Button{
					Label:    "♻ Remove Approval",
					Style:    discordgo.SecondaryButton,
					CustomID: CustomIDRevokePrefix + c.ID,
				},
			},
		},
	}

	_, err := n.session.ChannelMessageSendComplex(n.staffLogChID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	})
	if err != nil {
		n.logger.Error("failed to post decision request",
			logger.String("claim_id", c.ID),
			logger.String("channel_id", n.staffLogChID),
			logger.String("error", err.Error()),
		)
	}
}

func (n *DiscordNotifier) NotifyClaimApproved(ctx context.Context, c *domain.Claim, b *domain.Board) {
	n.dm(ctx, c.UserID, fmt.Sprintf(
		"✅ Your slot **%s** on **%s** has been approved! VTC: **%s**",
		c.SlotName, b.Title, c.Company,
	))
}

func (n *DiscordNotifier) NotifyClaimDenied(ctx context.Context, c *domain.Claim, b *domain.Board) {
	n.dm(ctx, c.UserID, fmt.Sprintf(
		"❌ Your request for slot **%s** on **%s** has been denied.",
		c.SlotName, b.Title,
	))
}

func (n *DiscordNotifier) NotifyApprovalRevoked(ctx context.Context, c *domain.Claim, b *domain.Board) {
	n.dm(ctx, c.UserID, fmt.Sprintf(
		"♻ Approval of your slot **%s** on **%s** has been removed. The slot is open again.",
		c.SlotName, b.Title,
	))
}

func (n *DiscordNotifier) NotifyClaimExpired(ctx context.Context, c *domain.Claim, b *domain.Board) {
	n.dm(ctx, c.UserID, fmt.Sprintf(
		"⌛ Your request for slot **%s** on **%s** expired without a staff decision. You may submit it again.",
		c.SlotName, b.Title,
	))
}

func (n *DiscordNotifier) dm(ctx context.Context, userID, text string) {
	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.String("user_id", userID),
		)
		return
	}

	ch, err := n.session.UserChannelCreate(userID)
	if err != nil {
		n.logger.Error("failed to open dm channel",
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
		return
	}

	if _, err = n.session.ChannelMessageSend(ch.ID, text); err != nil {
		n.logger.Error("failed to send dm",
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
	}
}
