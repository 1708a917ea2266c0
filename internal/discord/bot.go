// Package discord is the platform surface of the bot: slash commands,
// modals, buttons and embeds. It validates input, checks staff roles
// and delegates every state change to the services.
package discord

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/neppath/convoybot/internal/config"
	"github.com/neppath/convoybot/internal/notification"
	"github.com/neppath/convoybot/internal/service"
	"github.com/neppath/convoybot/internal/truckersmp"
	"github.com/wb-go/wbf/logger"
)

const (
	customIDBookButton     = "board:book"
	customIDClaimModal     = "claim_modal:"
	customIDAnnounceModal  = "announce_modal"
	customIDAnnounceSend   = "announce:send:"
	customIDAnnounceCancel = "announce:cancel:"
)

type Bot struct {
	session   *discordgo.Session
	cfg       config.DiscordConfig
	boards    *service.BoardService
	claims    *service.ClaimService
	decisions *service.DecisionService
	tmp       *truckersmp.Client
	previews  *previewStore
	logger    logger.Logger
}

func New(
	session *discordgo.Session,
	cfg config.DiscordConfig,
	boards *service.BoardService,
	claims *service.ClaimService,
	decisions *service.DecisionService,
	tmp *truckersmp.Client,
	logger logger.Logger,
) *Bot {
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessages

	return &Bot{
		session:   session,
		cfg:       cfg,
		boards:    boards,
		claims:    claims,
		decisions: decisions,
		tmp:       tmp,
		previews:  newPreviewStore(),
		logger:    logger,
	}
}

// Start opens the gateway connection and registers the command set.
func (b *Bot) Start(ctx context.Context) error {
	b.session.AddHandler(b.onReady)
	b.session.AddHandler(b.onInteraction)

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}

	appID := b.session.State.User.ID
	if _, err := b.session.ApplicationCommandBulkOverwrite(appID, b.cfg.GuildID, commandDefinitions()); err != nil {
		return fmt.Errorf("register commands: %w", err)
	}

	b.logger.Info("discord commands registered",
		logger.String("app_id", appID),
		logger.String("guild_id", b.cfg.GuildID),
	)

	return nil
}

func (b *Bot) Stop() error {
	return b.session.Close()
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.logger.Info("discord session ready",
		logger.String("user", r.User.Username),
		logger.Int("guilds", len(r.Guilds)),
	)
}

// onInteraction routes every inbound interaction. The deferred recover
// keeps the "always answer" promise: no interaction is left hanging
// because a handler panicked.
func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("panic in interaction handler",
				logger.Any("panic", r),
				logger.String("stack", string(debug.Stack())),
			)
			b.replyEphemeral(i, "❌ An internal error occurred while handling this interaction.")
		}
	}()

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.onCommand(i)
	case discordgo.InteractionMessageComponent:
		b.onComponent(i)
	case discordgo.InteractionModalSubmit:
		b.onModalSubmit(i)
	}
}

func (b *Bot) onCommand(i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "create":
		b.handleCreate(i)
	case "announcement":
		b.handleAnnouncement(i)
	case "mark":
		b.handleMark(i)
	case "vtcinfo":
		b.handleVTCInfo(i)
	case "events":
		b.handleEvents(i)
	case "decline":
		b.handleDecline(i)
	case "review":
		b.handleReview(i)
	default:
		b.replyEphemeral(i, "❌ Unknown command.")
	}
}

func (b *Bot) onComponent(i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID

	switch {
	case customID == customIDBookButton:
		b.handleBookButton(i)
	case strings.HasPrefix(customID, notification.CustomIDApprovePrefix):
		b.handleDecision(i, decisionApprove, strings.TrimPrefix(customID, notification.CustomIDApprovePrefix))
	case strings.HasPrefix(customID, notification.CustomIDDenyPrefix):
		b.handleDecision(i, decisionDeny, strings.TrimPrefix(customID, notification.CustomIDDenyPrefix))
	case strings.HasPrefix(customID, notification.CustomIDRevokePrefix):
		b.handleDecision(i, decisionRevoke, strings.TrimPrefix(customID, notification.CustomIDRevokePrefix))
	case strings.HasPrefix(customID, customIDAnnounceSend):
		b.handleAnnounceSend(i, strings.TrimPrefix(customID, customIDAnnounceSend))
	case strings.HasPrefix(customID, customIDAnnounceCancel):
		b.handleAnnounceCancel(i, strings.TrimPrefix(customID, customIDAnnounceCancel))
	default:
		b.replyEphemeral(i, "❌ This button is no longer wired to anything.")
	}
}

func (b *Bot) onModalSubmit(i *discordgo.InteractionCreate) {
	customID := i.ModalSubmitData().CustomID

	switch {
	case strings.HasPrefix(customID, customIDClaimModal):
		b.handleClaimModal(i, strings.TrimPrefix(customID, customIDClaimModal))
	case customID == customIDAnnounceModal:
		b.handleAnnounceModal(i)
	default:
		b.replyEphemeral(i, "❌ Unknown form.")
	}
}

// isStaff reports whether the interaction comes from a member holding
// one of the configured staff roles. Fails closed on missing member
// data.
func (b *Bot) isStaff(i *discordgo.InteractionCreate) bool {
	if i.Member == nil {
		return false
	}
	for _, roleID := range i.Member.Roles {
		for _, staffID := range b.cfg.StaffRoleIDs {
			if roleID == staffID {
				return true
			}
		}
	}
	return false
}
