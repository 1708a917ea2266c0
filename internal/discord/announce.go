package discord

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/neppath/convoybot/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const previewTTL = 10 * time.Minute

// previewStore holds announcement drafts between the preview reply and
// the Send/Cancel click. Entries older than previewTTL are pruned
// lazily.
type previewStore struct {
	mu      sync.Mutex
	entries map[string]previewEntry
}

type previewEntry struct {
	embed     *discordgo.MessageEmbed
	eventURL  string
	createdAt time.Time
}

func newPreviewStore() *previewStore {
	return &previewStore{entries: make(map[string]previewEntry)}
}

func (s *previewStore) put(embed *discordgo.MessageEmbed, eventURL string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prune()
	id := uuid.NewString()
	s.entries[id] = previewEntry{embed: embed, eventURL: eventURL, createdAt: time.Now()}
	return id
}

func (s *previewStore) take(id string) (previewEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prune()
	entry, ok := s.entries[id]
	if ok {
		delete(s.entries, id)
	}
	return entry, ok
}

func (s *previewStore) prune() {
	cutoff := time.Now().Add(-previewTTL)
	for id, entry := range s.entries {
		if entry.createdAt.Before(cutoff) {
			delete(s.entries, id)
		}
	}
}

func (b *Bot) handleAnnouncement(i *discordgo.InteractionCreate) {
	if !b.isStaff(i) {
		b.replyError(i, domain.ErrUnauthorized)
		return
	}

	err := b.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: customIDAnnounceModal,
			Title:    "Create Convoy Announcement",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    "event_link",
							Label:       "TruckersMP Event Link",
							Style:       discordgo.TextInputShort,
							Placeholder: "https://truckersmp.com/events/12345",
							Required:    true,
						},
					},
				},
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    "distance",
							Label:       "Distance (e.g. 1,234 km)",
							Style:       discordgo.TextInputShort,
							Placeholder: "1,234 km",
							Required:    true,
						},
					},
				},
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    "vtc_slot",
							Label:       "Our VTC Slot",
							Style:       discordgo.TextInputShort,
							Placeholder: "7",
							Required:    true,
						},
					},
				},
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    "manual_route",
							Label:       "Manual Route (Optional)",
							Style:       discordgo.TextInputShort,
							Placeholder: "Start City | Finish City, empty uses the API",
							Required:    false,
							MaxLength:   200,
						},
					},
				},
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    "route_img",
							Label:       "Route Image URL (Optional)",
							Style:       discordgo.TextInputShort,
							Placeholder: "https://i.imgur.com/...",
							Required:    false,
						},
					},
				},
			},
		},
	})
	if err != nil {
		b.logger.Error("failed to open announcement modal", logger.String("error", err.Error()))
	}
}

func (b *Bot) handleAnnounceModal(i *discordgo.InteractionCreate) {
	data := i.ModalSubmitData()
	eventLink := modalValue(data, "event_link")
	distance := modalValue(data, "distance")
	vtcSlot := modalValue(data, "vtc_slot")
	manualRoute := modalValue(data, "manual_route")
	routeImg := modalValue(data, "route_img")

	eventID, err := extractEventID(eventLink)
	if err != nil {
		b.replyError(i, err)
		return
	}

	if err = b.deferEphemeral(i); err != nil {
		b.logger.Error("failed to defer interaction", logger.String("error", err.Error()))
		return
	}

	eventURL := fmt.Sprintf("https://truckersmp.com/events/%d", eventID)

	// Fallbacks keep the announcement usable when the API is down; a
	// warning is attached to the preview instead of failing the flow.
	name := "Unknown Convoy"
	game := "ETS2"
	server := "Event Server"
	startAt := ""
	meetupAt := ""
	departure := "Unknown"
	arrival := "Unknown"
	dlcs := "None"
	banner := ""

	ctx := context.Background()
	warning := ""
	event, err := b.tmp.Event(ctx, eventID)
	if err != nil {
		b.logger.Error("failed to fetch event for announcement",
			logger.Int("event_id", eventID),
			logger.String("error", err.Error()),
		)
		warning = "⚠️ Could not reach the TruckersMP API, using fallback details.\n"
	} else {
		name = event.Name
		if !strings.EqualFold(event.Game, "ets2") {
			game = "ATS"
		}
		if event.Server.Name != "" {
			server = event.Server.Name
		}
		startAt = event.StartAt
		meetupAt = event.MeetupAt
		if meetupAt == "" {
			meetupAt = event.StartAt
		}
		if event.Departure.City != "" {
			departure = event.Departure.City
		}
		if event.Arrive.City != "" {
			arrival = event.Arrive.City
		}
		if names := event.DLCs.Names(); len(names) > 0 {
			dlcs = strings.Join(names, ", ")
		}
		banner = event.Banner
	}

	start, finish, manual := splitRoute(manualRoute)
	if manual {
		departure = start + " (manual)"
		arrival = finish + " (manual)"
	}

	embed := &discordgo.MessageEmbed{
		Title:     name,
		URL:       eventURL,
		Color:     brandColor,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Game", Value: game, Inline: true},
			{Name: "Date", Value: formatEventDate(startAt), Inline: true},
			{Name: "Server", Value: server, Inline: true},
			{Name: "Meetup", Value: formatEventTime(meetupAt), Inline: true},
			{Name: "Departure", Value: formatEventTime(startAt), Inline: true},
			{Name: "​", Value: "​"},
			{Name: "Distance", Value: distance, Inline: true},
			{Name: "Our Slot", Value: fmt.Sprintf("**%s**", vtcSlot), Inline: true},
			{Name: "​", Value: "​"},
			{Name: "Start", Value: departure, Inline: true},
			{Name: "Finish", Value: arrival, Inline: true},
			{Name: "Required DLCs", Value: dlcs},
		},
		Author: &discordgo.MessageEmbedAuthor{Name: "Announced by " + i.Member.User.Username},
	}
	if routeImg != "" && checkImageURL(ctx, routeImg) {
		embed.Image = &discordgo.MessageEmbedImage{URL: routeImg}
	}
	if banner != "" && checkImageURL(ctx, banner) {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "Official Event", IconURL: banner}
	}

	previewID := b.previews.put(embed, eventURL)

	_, err = b.session.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: warning + "Preview ready, click Send!",
		Embeds:  []*discordgo.MessageEmbed{embed},
		Flags:   discordgo.MessageFlagsEphemeral,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Send Announcement",
						Style:    discordgo.SuccessButton,
						CustomID: customIDAnnounceSend + previewID,
					},
					discordgo.Button{
						Label:    "Cancel",
						Style:    discordgo.DangerButton,
						CustomID: customIDAnnounceCancel + previewID,
					},
				},
			},
		},
	})
	if err != nil {
		b.logger.Error("failed to send announcement preview", logger.String("error", err.Error()))
	}
}

func (b *Bot) handleAnnounceSend(i *discordgo.InteractionCreate, previewID string) {
	entry, ok := b.previews.take(previewID)
	if !ok {
		b.updatePreviewMessage(i, "❌ This preview has expired, run /announcement again.")
		return
	}

	_, err := b.session.ChannelMessageSendComplex(b.cfg.AnnouncementChannelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{entry.embed},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label: "View on TruckersMP",
						Style: discordgo.LinkButton,
						URL:   entry.eventURL,
					},
				},
			},
		},
	})
	if err != nil {
		b.logger.Error("failed to post announcement",
			logger.String("channel_id", b.cfg.AnnouncementChannelID),
			logger.String("error", err.Error()),
		)
		b.updatePreviewMessage(i, "❌ Could not post to the announcement channel.")
		return
	}

	b.updatePreviewMessage(i, "✅ Posted!")
}

func (b *Bot) handleAnnounceCancel(i *discordgo.InteractionCreate, previewID string) {
	b.previews.take(previewID)
	b.updatePreviewMessage(i, "Cancelled.")
}

// updatePreviewMessage replaces the preview content and strips the
// embed and buttons so the draft cannot be acted on twice.
func (b *Bot) updatePreviewMessage(i *discordgo.InteractionCreate, content string) {
	err := b.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Embeds:     []*discordgo.MessageEmbed{},
			Components: []discordgo.MessageComponent{},
		},
	})
	if err != nil {
		b.logger.Error("failed to update announcement preview", logger.String("error", err.Error()))
	}
}

// splitRoute parses the optional "Start | Finish" override.
func splitRoute(s string) (start, finish string, ok bool) {
	if s == "" {
		return "", "", false
	}
	parts := strings.SplitN(s, "|", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	start = strings.TrimSpace(parts[0])
	finish = strings.TrimSpace(parts[1])
	if start == "" || finish == "" {
		return "", "", false
	}
	return start, finish, true
}

func (b *Bot) handleMark(i *discordgo.InteractionCreate) {
	if !b.isStaff(i) {
		b.replyError(i, domain.ErrUnauthorized)
		return
	}

	opts := optionMap(i)
	eventLink := opts["event_link"].StringValue()
	channel := opts["channel"].ChannelValue(b.session)

	color := brandColor
	if opt, ok := opts["color"]; ok {
		parsed, err := parseColor(opt.StringValue())
		if err != nil {
			b.replyError(i, err)
			return
		}
		color = parsed
	}

	eventID, err := extractEventID(eventLink)
	if err != nil {
		b.replyError(i, err)
		return
	}

	if err = b.deferEphemeral(i); err != nil {
		b.logger.Error("failed to defer interaction", logger.String("error", err.Error()))
		return
	}

	// Unlike /announcement there is no fallback here: an attendance
	// embed without real event details is useless.
	event, err := b.tmp.Event(context.Background(), eventID)
	if err != nil {
		b.followUpError(i, err)
		return
	}

	dateLine := "📅 Event Date: Unknown"
	if start, ok := parseAPITime(event.MeetupAt); ok {
		npt := start.Add(nptOffset)
		dateLine = fmt.Sprintf("📅 Event Date: %s | %s NPT",
			start.Format("02 Jan 2006 / 15:04 UTC"), npt.Format("15:04"))
	}

	embed := &discordgo.MessageEmbed{
		Title:       event.Name,
		Description: fmt.Sprintf("**🙏 Please kindly mark your attendance on this event ❤️**\n\n%s", dateLine),
		Color:       color,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Powered by NepPath"},
	}
	if event.Banner != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: event.Banner}
	}
	if event.Creator.Avatar != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: event.Creator.Avatar}
	}

	eventURL := "https://truckersmp.com/events/" + strconv.Itoa(eventID)
	_, err = b.session.ChannelMessageSendComplex(channel.ID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label: "I Will Be There",
						Style: discordgo.LinkButton,
						URL:   eventURL,
					},
				},
			},
		},
	})
	if err != nil {
		b.followUpError(i, fmt.Errorf("send attendance embed: %w", err))
		return
	}

	b.followUp(i, fmt.Sprintf("✅ Attendance embed sent to <#%s>.", channel.ID))
}
