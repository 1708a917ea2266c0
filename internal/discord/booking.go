package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/neppath/convoybot/internal/domain"
	"github.com/neppath/convoybot/internal/notification"
	"github.com/neppath/convoybot/internal/render"
	"github.com/wb-go/wbf/logger"
)

type decisionKind int

const (
	decisionApprove decisionKind = iota
	decisionDeny
	decisionRevoke
)

// handleBookButton opens the claim modal for the board behind the
// pressed message. The placeholder previews the open slot numbers.
func (b *Bot) handleBookButton(i *discordgo.InteractionCreate) {
	board, err := b.boards.GetByMessage(context.Background(), i.Message.ID)
	if err != nil {
		b.replyError(i, err)
		return
	}

	if !board.HasOpenSlots() {
		b.replyError(i, domain.ErrNoOpenSlots)
		return
	}

	err = b.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: customIDClaimModal + i.Message.ID,
			Title:    "Book Your Slot",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    "company",
							Label:       "Your VTC/Company Name",
							Style:       discordgo.TextInputShort,
							Placeholder: "NepPath Logistics",
							Required:    true,
							MaxLength:   100,
						},
					},
				},
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    "slot_number",
							Label:       "Slot Number",
							Style:       discordgo.TextInputShort,
							Placeholder: openSlotsPlaceholder(board),
							Required:    true,
							MaxLength:   3,
						},
					},
				},
			},
		},
	})
	if err != nil {
		b.logger.Error("failed to open claim modal",
			logger.String("board_id", board.ID),
			logger.String("error", err.Error()),
		)
	}
}

// openSlotsPlaceholder previews available slot numbers, capped at the
// 100-char placeholder limit.
func openSlotsPlaceholder(board *domain.Board) string {
	var open []string
	for idx := range board.Slots {
		s := &board.Slots[idx]
		if s.Status == domain.SlotStatusOpen {
			open = append(open, strings.TrimPrefix(s.Name, "Slot "))
		}
	}
	if len(open) == 0 {
		return "No slots available."
	}

	preview := "Available: " + strings.Join(open, ", ")
	if len(preview) > 100 {
		preview = preview[:97] + "..."
	}
	return preview
}

func (b *Bot) handleClaimModal(i *discordgo.InteractionCreate, messageID string) {
	if i.Member == nil {
		b.replyEphemeral(i, "❌ Slot booking only works inside a server.")
		return
	}

	data := i.ModalSubmitData()
	company := modalValue(data, "company")
	slotName, err := parseSlotNumber(modalValue(data, "slot_number"))
	if err != nil {
		b.replyError(i, err)
		return
	}

	claim, err := b.claims.Submit(context.Background(), domain.SubmitClaimInput{
		MessageID: messageID,
		SlotName:  slotName,
		Company:   company,
		UserID:    i.Member.User.ID,
		UserName:  i.Member.User.Username,
	})
	if err != nil {
		b.replyError(i, err)
		return
	}

	b.replyEphemeral(i, fmt.Sprintf("✅ Request submitted for **%s** as **%s**. Staff will review it shortly.",
		claim.SlotName, claim.Company))
}

func (b *Bot) handleDecision(i *discordgo.InteractionCreate, kind decisionKind, claimID string) {
	if !b.isStaff(i) {
		b.replyError(i, domain.ErrUnauthorized)
		return
	}

	actor := domain.Actor{ID: i.Member.User.ID, Name: i.Member.User.Username}
	ctx := context.Background()

	var (
		claim *domain.Claim
		board *domain.Board
		err   error
	)
	switch kind {
	case decisionApprove:
		claim, board, err = b.decisions.Approve(ctx, claimID, actor)
	case decisionDeny:
		claim, board, err = b.decisions.Deny(ctx, claimID, actor)
	case decisionRevoke:
		claim, board, err = b.decisions.RemoveApproval(ctx, claimID, actor)
	}
	if err != nil {
		b.replyError(i, err)
		return
	}

	var reply string
	switch kind {
	case decisionApprove:
		reply = fmt.Sprintf("✅ Approved %s for %s.", claim.SlotName, claim.Company)
	case decisionDeny:
		reply = fmt.Sprintf("❌ Denied the request for %s.", claim.SlotName)
	case decisionRevoke:
		reply = fmt.Sprintf("♻ Removed approval for %s.", claim.SlotName)
	}

	b.updateStaffLogMessage(i, kind, actor)
	b.refreshBoardMessage(board)

	b.replyEphemeral(i, reply)
}

// updateStaffLogMessage recolors the decision-request embed and
// disables the buttons that no longer apply. Best-effort: the decision
// already happened.
func (b *Bot) updateStaffLogMessage(i *discordgo.InteractionCreate, kind decisionKind, actor domain.Actor) {
	if i.Message == nil || len(i.Message.Embeds) == 0 {
		return
	}

	embed := i.Message.Embeds[0]
	switch kind {
	case decisionApprove:
		embed.Color = 0x2ECC71
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "✅ Approved by " + actor.Name}
	case decisionDeny:
		embed.Color = 0xE74C3C
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "❌ Denied by " + actor.Name}
	case decisionRevoke:
		embed.Color = 0x95A5A6
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "♻ Approval removed by " + actor.Name}
	}

	components := decisionComponents(i.Message.Components, kind)

	_, err := b.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    i.ChannelID,
		ID:         i.Message.ID,
		Embeds:     &[]*discordgo.MessageEmbed{embed},
		Components: &components,
	})
	if err != nil {
		b.logger.Error("failed to update staff log message",
			logger.String("message_id", i.Message.ID),
			logger.String("error", err.Error()),
		)
	}
}

// decisionComponents rebuilds the button row with spent actions
// disabled: approve leaves only Remove Approval live, deny and revoke
// disable everything.
func decisionComponents(rows []discordgo.MessageComponent, kind decisionKind) []discordgo.MessageComponent {
	out := make([]discordgo.MessageComponent, 0, len(rows))
	for _, row := range rows {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			out = append(out, row)
			continue
		}

		newRow := discordgo.ActionsRow{}
		for _, comp := range actionsRow.Components {
			button, ok := comp.(*discordgo.Button)
			if !ok {
				newRow.Components = append(newRow.Components, comp)
				continue
			}

			disabled := true
			if kind == decisionApprove && strings.HasPrefix(button.CustomID, notification.CustomIDRevokePrefix) {
				disabled = false
			}

			copied := *button
			copied.Disabled = disabled
			newRow.Components = append(newRow.Components, copied)
		}
		out = append(out, newRow)
	}
	return out
}

// refreshBoardMessage re-renders the public booking embed after a
// decision. Best-effort as well.
func (b *Bot) refreshBoardMessage(board *domain.Board) {
	if board.MessageID == "" {
		return
	}

	msg, err := b.session.ChannelMessage(board.ChannelID, board.MessageID)
	if err != nil || len(msg.Embeds) == 0 {
		b.logger.Error("failed to load board message for refresh",
			logger.String("board_id", board.ID),
			logger.String("message_id", board.MessageID),
		)
		return
	}

	embed := msg.Embeds[0]
	embed.Description = render.Board(board)
	embed.Footer = &discordgo.MessageEmbedFooter{Text: render.Footer(board)}

	_, err = b.session.ChannelMessageEditEmbed(board.ChannelID, board.MessageID, embed)
	if err != nil {
		b.logger.Error("failed to refresh board message",
			logger.String("board_id", board.ID),
			logger.String("error", err.Error()),
		)
	}
}

func modalValue(data discordgo.ModalSubmitInteractionData, customID string) string {
	for _, row := range data.Components {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, comp := range actionsRow.Components {
			input, ok := comp.(*discordgo.TextInput)
			if !ok {
				continue
			}
			if input.CustomID == customID {
				return strings.TrimSpace(input.Value)
			}
		}
	}
	return ""
}
