package discord

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/neppath/convoybot/internal/domain"
	"github.com/neppath/convoybot/internal/render"
	"github.com/wb-go/wbf/logger"
)

const brandColor = 0xFF5A20

func commandDefinitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "create",
			Description: "Staff only: create a slot booking board",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionChannel,
					Name:        "channel",
					Description: "Channel to post the booking board in",
					Required:    true,
					ChannelTypes: []discordgo.ChannelType{
						discordgo.ChannelTypeGuildText,
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "title",
					Description: "Board title",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "slot_range",
					Description: "Example: 1-20",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "color",
					Description: "Color name or #RRGGBB hex",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "image",
					Description: "Optional image URL",
					Required:    false,
				},
			},
		},
		{
			Name:        "announcement",
			Description: "Staff only: create a convoy announcement",
		},
		{
			Name:        "mark",
			Description: "Staff only: create a mark-attendance embed from a TruckersMP event link",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "event_link",
					Description: "TruckersMP event URL, e.g. https://truckersmp.com/events/12345",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionChannel,
					Name:        "channel",
					Description: "Channel to post the embed in",
					Required:    true,
					ChannelTypes: []discordgo.ChannelType{
						discordgo.ChannelTypeGuildText,
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "color",
					Description: "Embed color name or hex (optional)",
					Required:    false,
				},
			},
		},
		{
			Name:        "vtcinfo",
			Description: "Fetch TruckersMP VTC info by link or ID",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "link",
					Description: "VTC link or ID",
					Required:    true,
				},
			},
		},
		{
			Name:        "events",
			Description: "Show our VTC's events on a specific date",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "date",
					Description: "Date in dd/mm/yy format, e.g. 25/12/25",
					Required:    true,
				},
			},
		},
		{
			Name:        "decline",
			Description: "Staff only: send an invitation-declined reply",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "vtc_name",
					Description: "VTC name",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User to mention",
					Required:    true,
				},
			},
		},
		{
			Name:        "review",
			Description: "Staff only: send an invitation-under-review reply",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "vtc_name",
					Description: "VTC name",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User to mention",
					Required:    true,
				},
			},
		},
	}
}

func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

func (b *Bot) handleCreate(i *discordgo.InteractionCreate) {
	if !b.isStaff(i) {
		b.replyError(i, domain.ErrUnauthorized)
		return
	}

	opts := optionMap(i)
	channel := opts["channel"].ChannelValue(b.session)
	title := opts["title"].StringValue()

	slotNames, err := parseSlotRange(opts["slot_range"].StringValue())
	if err != nil {
		b.replyError(i, err)
		return
	}

	color, err := parseColor(opts["color"].StringValue())
	if err != nil {
		b.replyError(i, err)
		return
	}

	imageURL := ""
	if opt, ok := opts["image"]; ok {
		imageURL = strings.TrimSpace(opt.StringValue())
	}

	// Posting the board and validating the image can outlive the 3s
	// interaction window.
	if err = b.deferEphemeral(i); err != nil {
		b.logger.Error("failed to defer interaction", logger.String("error", err.Error()))
		return
	}

	ctx := context.Background()
	board, err := b.boards.Create(ctx, domain.CreateBoardInput{
		GuildID:   i.GuildID,
		ChannelID: channel.ID,
		Title:     title,
		SlotNames: slotNames,
	})
	if err != nil {
		b.followUpError(i, err)
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       board.Title,
		Description: render.Board(board),
		Color:       color,
		Footer:      &discordgo.MessageEmbedFooter{Text: render.Footer(board)},
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	if imageURL != "" && checkImageURL(ctx, imageURL) {
		embed.Image = &discordgo.MessageEmbedImage{URL: imageURL}
	}

	msg, err := b.session.ChannelMessageSendComplex(channel.ID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "📌 Book Slot",
						Style:    discordgo.SuccessButton,
						CustomID: customIDBookButton,
					},
				},
			},
		},
	})
	if err != nil {
		b.followUpError(i, fmt.Errorf("post board message: %w", err))
		return
	}

	if err = b.boards.AttachMessage(ctx, board.ID, msg.ID); err != nil {
		b.followUpError(i, err)
		return
	}

	b.followUp(i, fmt.Sprintf("✅ Booking board created with %d slots in <#%s>.", len(board.Slots), channel.ID))
}

func (b *Bot) handleVTCInfo(i *discordgo.InteractionCreate) {
	opts := optionMap(i)

	vtcID, err := extractVTCID(opts["link"].StringValue())
	if err != nil {
		b.replyError(i, err)
		return
	}

	if err = b.deferEphemeral(i); err != nil {
		b.logger.Error("failed to defer interaction", logger.String("error", err.Error()))
		return
	}

	vtc, err := b.tmp.VTC(context.Background(), vtcID)
	if err != nil {
		b.followUpError(i, err)
		return
	}

	members := fmt.Sprintf("%d members", vtc.MembersCount)
	if vtc.MembersCount >= 1000 {
		members = fmt.Sprintf("%.1fK members", float64(vtc.MembersCount)/1000)
	}

	description := vtc.Information
	if description == "" {
		description = "No description provided"
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s [%s]", vtc.Name, vtc.Tag),
		URL:   fmt.Sprintf("https://truckersmp.com/vtc/%d", vtc.ID),
		Color: brandColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "📌 VTC ID", Value: fmt.Sprintf("%d", vtc.ID), Inline: true},
			{Name: "📅 Created", Value: orUnknown(vtc.CreatedAt), Inline: true},
			{Name: "📈 Recruitment", Value: orUnknown(vtc.Recruitment), Inline: true},
			{Name: "👥 Members", Value: members, Inline: true},
			{Name: "📜 Description", Value: description},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Powered by NepPath | TruckersMP API"},
	}
	if vtc.Logo != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: vtc.Logo}
	}

	b.followUpEmbeds(i, []*discordgo.MessageEmbed{embed})
}

func (b *Bot) handleEvents(i *discordgo.InteractionCreate) {
	opts := optionMap(i)

	day, err := parseEventDate(opts["date"].StringValue())
	if err != nil {
		b.replyError(i, err)
		return
	}

	if err = b.deferEphemeral(i); err != nil {
		b.logger.Error("failed to defer interaction", logger.String("error", err.Error()))
		return
	}

	events, err := b.tmp.Events(context.Background())
	if err != nil {
		b.followUpError(i, err)
		return
	}

	var embeds []*discordgo.MessageEmbed
	for _, evt := range events {
		if !strings.EqualFold(evt.VTC.Name, b.cfg.VTCName) {
			continue
		}
		start, ok := parseAPITime(evt.MeetupAt)
		if !ok || !sameDay(start, day) {
			continue
		}

		embed := &discordgo.MessageEmbed{
			Title: fmt.Sprintf("%s | %s", evt.Name, b.cfg.VTCName),
			Description: fmt.Sprintf("**Start:** %s\n[Event Link](https://truckersmp.com/events/%d)",
				formatEventTime(evt.MeetupAt), evt.ID),
			Color:  brandColor,
			Footer: &discordgo.MessageEmbedFooter{Text: "VTC: " + b.cfg.VTCName},
		}
		if evt.Banner != "" {
			embed.Image = &discordgo.MessageEmbedImage{URL: evt.Banner}
		}
		embeds = append(embeds, embed)
		if len(embeds) == 5 {
			break
		}
	}

	if len(embeds) == 0 {
		b.followUp(i, fmt.Sprintf("❌ No events found for %s on %s.", b.cfg.VTCName, day.Format("02/01/06")))
		return
	}

	b.followUpEmbeds(i, embeds)
}

func (b *Bot) handleDecline(i *discordgo.InteractionCreate) {
	if !b.isStaff(i) {
		b.replyError(i, domain.ErrUnauthorized)
		return
	}

	opts := optionMap(i)
	vtcName := opts["vtc_name"].StringValue()
	user := opts["user"].UserValue(b.session)

	embed := &discordgo.MessageEmbed{
		Title: "🔴 Invitation Declined",
		Description: fmt.Sprintf(
			"Dear **%s**, %s 🙏\n\n"+
				"Thank you for your kind invitation to your event. "+
				"We truly appreciate the opportunity to connect. "+
				"Unfortunately, we already have a VTC event scheduled on the same day "+
				"and won't be able to attend.\n\n"+
				"**`We look forward to finding another opportunity to collaborate in the future. "+
				"Thank you for your understanding, and we wish you a highly successful event!`**\n\n"+
				"Warm regards,\nNepPath",
			vtcName, user.Mention(),
		),
		Color:     brandColor,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Footer:    &discordgo.MessageEmbedFooter{Text: "NepPath"},
	}

	if _, err := b.session.ChannelMessageSendEmbed(i.ChannelID, embed); err != nil {
		b.replyError(i, fmt.Errorf("send decline embed: %w", err))
		return
	}

	b.replyEphemeral(i, "✅ Decline embed sent.")
}

func (b *Bot) handleReview(i *discordgo.InteractionCreate) {
	if !b.isStaff(i) {
		b.replyError(i, domain.ErrUnauthorized)
		return
	}

	opts := optionMap(i)
	vtcName := opts["vtc_name"].StringValue()
	user := opts["user"].UserValue(b.session)

	embed := &discordgo.MessageEmbed{
		Title: "🟠 Reviewing Your Invitation 👁️",
		Description: fmt.Sprintf(
			"Dear **%s**, %s. 🙏\n\n"+
				"Thank you for your invitation to NepPath. "+
				"We are currently reviewing the details and will get back to you shortly.\n\n"+
				"**``We appreciate the opportunity and look forward to connecting soon!``**\n\n"+
				"Best regards,\nNepPath",
			vtcName, user.Mention(),
		),
		Color:     brandColor,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Footer:    &discordgo.MessageEmbedFooter{Text: "NepPath"},
	}

	if _, err := b.session.ChannelMessageSendEmbed(i.ChannelID, embed); err != nil {
		b.replyError(i, fmt.Errorf("send review embed: %w", err))
		return
	}

	b.replyEphemeral(i, "✅ Review embed sent.")
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
