package bot

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"github.com/ByPavel22/ByPavel22Bot/internal/service"
)

const (
	cbFeedbackGood    = "feedback_good"
	cbFeedbackBad     = "feedback_bad"
	cbFeedbackSuggest = "feedback_suggest"
)

const (
	ackDelivered      = "✅ Ваше сообщение доставлено администратору!"
	ackPhotoDelivered = "✅ Фото доставлено!"
	noticeSendFailed  = "❌ Ошибка отправки. Попробуйте позже."
	noticeStoreFailed = "⚠️ Не получилось сохранить сообщение. Попробуйте позже."
	noticeAdminOnly   = "❌ Эта команда только для администратора"
)

// NewAPI authorizes against Telegram. The HTTP client timeout bounds every
// outbound call; it must exceed the long-poll timeout used by Start.
func NewAPI(token string) (*tgbotapi.BotAPI, error) {
	client := &http.Client{Timeout: 90 * time.Second}
	api, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}
	log.Info().Str("account", api.Self.UserName).Msg("bot authorized")
	return api, nil
}

// Sender adapts the Telegram API to the service.Sender collaborator.
type Sender struct {
	api *tgbotapi.BotAPI
}

func NewSender(api *tgbotapi.BotAPI) *Sender {
	return &Sender{api: api}
}

func (s *Sender) SendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	_, err := s.api.Send(msg)
	return err
}

func (s *Sender) SendPhoto(chatID int64, fileID, caption string) error {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(fileID))
	photo.Caption = caption
	_, err := s.api.Send(photo)
	return err
}

// Bot routes Telegram updates to the relay, reply and stats services.
type Bot struct {
	api      *tgbotapi.BotAPI
	relaySvc *service.RelayService
	replySvc *service.ReplyService
	statsSvc *service.StatsService
	admin    service.AdminGate
}

func New(api *tgbotapi.BotAPI, relaySvc *service.RelayService, replySvc *service.ReplyService, statsSvc *service.StatsService, admin service.AdminGate) *Bot {
	return &Bot{
		api:      api,
		relaySvc: relaySvc,
		replySvc: replySvc,
		statsSvc: statsSvc,
		admin:    admin,
	}
}

// Start begins polling updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	log.Info().Msg("start polling updates")

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		switch {
		case update.CallbackQuery != nil:
			if err := b.handleCallback(ctx, update.CallbackQuery); err != nil {
				log.Error().Err(err).Msg("handle callback")
			}
		case update.Message != nil:
			if update.Message.Chat == nil || !update.Message.Chat.IsPrivate() {
				continue
			}
			if err := b.handleMessage(ctx, update.Message); err != nil {
				log.Error().Err(err).Msg("handle message")
			}
		}
	}

	return nil
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.From == nil {
		return nil
	}

	if msg.IsCommand() {
		log.Info().Int64("from", msg.From.ID).Str("command", msg.Command()).Msg("command")
		return b.handleCommand(ctx, msg)
	}

	if len(msg.Photo) > 0 {
		return b.handlePhoto(ctx, msg)
	}

	if msg.Text != "" {
		return b.handleText(ctx, msg)
	}

	return b.sendText(msg.Chat.ID, "Я умею пересылать текст и фото. Отправьте сообщение, и я передам его администратору.")
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) error {
	switch cmd := msg.Command(); cmd {
	case "start":
		return b.handleStart(ctx, msg)
	case "help":
		return b.sendText(msg.Chat.ID, helpText)
	case "feedback":
		return b.handleFeedback(msg)
	case "about":
		return b.sendText(msg.Chat.ID, aboutText)
	case "stats":
		return b.handleStats(ctx, msg)
	default:
		if strings.HasPrefix(cmd, service.ReplyTokenPrefix) {
			return b.handleReply(ctx, msg)
		}
		return b.sendText(msg.Chat.ID, "Команда не поддерживается. Загляните в /help.")
	}
}

func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) error {
	if _, err := b.relaySvc.Register(ctx, profileFrom(msg.From)); err != nil {
		log.Error().Err(err).Int64("from", msg.From.ID).Msg("register user")
		return b.sendText(msg.Chat.ID, noticeStoreFailed)
	}

	name := strings.TrimSpace(msg.From.FirstName)
	return b.sendText(msg.Chat.ID, fmt.Sprintf(welcomeText, escape(name)))
}

// handleText пересылает обычное сообщение администратору.
func (b *Bot) handleText(ctx context.Context, msg *tgbotapi.Message) error {
	err := b.relaySvc.RelayText(ctx, profileFrom(msg.From), msg.Text)
	return b.relayOutcome(msg.Chat.ID, err, ackDelivered)
}

func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message) error {
	// Telegram supplies several sizes, the last one is the largest.
	photo := msg.Photo[len(msg.Photo)-1]
	err := b.relaySvc.RelayPhoto(ctx, profileFrom(msg.From), photo.FileID, msg.Caption)
	return b.relayOutcome(msg.Chat.ID, err, ackPhotoDelivered)
}

// relayOutcome reports the relay result to the originating user: an
// acknowledgment, or a failure notice instead of a raw internal error.
func (b *Bot) relayOutcome(chatID int64, err error, ack string) error {
	switch {
	case err == nil:
		return b.sendText(chatID, ack)
	case errors.Is(err, service.ErrDeliveryFailed):
		return b.sendText(chatID, noticeSendFailed)
	default:
		log.Error().Err(err).Int64("chat", chatID).Msg("relay")
		return b.sendText(chatID, noticeStoreFailed)
	}
}

func (b *Bot) handleReply(ctx context.Context, msg *tgbotapi.Message) error {
	body := strings.TrimSpace(msg.CommandArguments())
	if body == "" {
		return b.sendText(msg.Chat.ID, "Добавьте текст ответа: /reply_123456 Ваш ответ")
	}

	target, err := b.replySvc.Reply(ctx, msg.From.ID, msg.Command(), body)
	switch {
	case err == nil:
		return b.sendText(msg.Chat.ID, fmt.Sprintf("✅ Ответ отправлен пользователю %s.", escape(target.DisplayName())))
	case errors.Is(err, service.ErrUnauthorized):
		return b.sendText(msg.Chat.ID, noticeAdminOnly)
	case errors.Is(err, service.ErrBadReplyToken):
		return b.sendText(msg.Chat.ID, "Не понимаю, кому ответить. Используйте команду вида /reply_123456 из уведомления.")
	case errors.Is(err, service.ErrUnknownTarget):
		return b.sendText(msg.Chat.ID, "Пользователь с таким ID не найден.")
	case errors.Is(err, service.ErrDeliveryFailed):
		return b.sendText(msg.Chat.ID, "❌ Не удалось доставить ответ. Попробуйте позже.")
	default:
		log.Error().Err(err).Msg("route reply")
		return b.sendText(msg.Chat.ID, noticeStoreFailed)
	}
}

func (b *Bot) handleStats(ctx context.Context, msg *tgbotapi.Message) error {
	stats, err := b.statsSvc.Stats(ctx, msg.From.ID)
	switch {
	case err == nil:
		return b.sendText(msg.Chat.ID, formatStats(stats))
	case errors.Is(err, service.ErrUnauthorized):
		return b.sendText(msg.Chat.ID, noticeAdminOnly)
	default:
		log.Error().Err(err).Msg("build stats")
		return b.sendText(msg.Chat.ID, "Не удалось собрать статистику. Попробуйте позже.")
	}
}

func (b *Bot) handleFeedback(msg *tgbotapi.Message) error {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("👍 Хорошо", cbFeedbackGood)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("👎 Плохо", cbFeedbackBad)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("💡 Предложение", cbFeedbackSuggest)),
	)
	out := tgbotapi.NewMessage(msg.Chat.ID, "Пожалуйста, выберите тип отзыва:")
	out.ReplyMarkup = keyboard
	_, err := b.api.Send(out)
	return err
}

// handleCallback relays a feedback button press to the administrator like a
// regular message, so it lands in the same history.
func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	if cb.From == nil || cb.Message == nil {
		return nil
	}

	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		log.Error().Err(err).Msg("callback ack")
	}

	label, ok := feedbackLabel(cb.Data)
	if !ok {
		return nil
	}

	err := b.relaySvc.RelayText(ctx, profileFrom(cb.From), "📝 Отзыв: "+label)
	return b.relayOutcome(cb.Message.Chat.ID, err, "Спасибо за отзыв! 🙌")
}

func feedbackLabel(data string) (string, bool) {
	switch data {
	case cbFeedbackGood:
		return "👍 Хорошо", true
	case cbFeedbackBad:
		return "👎 Плохо", true
	case cbFeedbackSuggest:
		return "💡 Предложение", true
	default:
		return "", false
	}
}

// SendStatsDigest pushes the usage summary to the administrator's chat,
// used by the periodic digest job.
func (b *Bot) SendStatsDigest(ctx context.Context) error {
	stats, err := b.statsSvc.Stats(ctx, b.admin.AdminID())
	if err != nil {
		return err
	}
	return b.sendText(b.admin.AdminID(), formatStats(stats))
}

func (b *Bot) sendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	_, err := b.api.Send(msg)
	return err
}

func profileFrom(from *tgbotapi.User) service.Profile {
	return service.Profile{
		TelegramID: from.ID,
		Username:   from.UserName,
		FirstName:  from.FirstName,
		LastName:   from.LastName,
	}
}
