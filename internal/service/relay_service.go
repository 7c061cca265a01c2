package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ByPavel22/ByPavel22Bot/internal/repository"
)

// ReplyTokenPrefix starts every reply command the administrator uses to
// answer a user: reply_<telegram id>.
const ReplyTokenPrefix = "reply_"

// noCaption замещает пустую подпись к фото.
const noCaption = "Без описания"

// RelayService copies a user's message into a durable record and an
// administrator notification. The record is always written before the send
// is attempted, so a failed delivery never loses history.
type RelayService struct {
	users    *repository.UserRepository
	messages *repository.MessageRepository
	sender   Sender
	admin    AdminGate
}

func NewRelayService(users *repository.UserRepository, messages *repository.MessageRepository, sender Sender, admin AdminGate) *RelayService {
	return &RelayService{users: users, messages: messages, sender: sender, admin: admin}
}

// Register resolves or creates the user behind a Telegram profile.
func (s *RelayService) Register(ctx context.Context, p Profile) (created bool, err error) {
	user, created, err := s.users.GetOrCreate(ctx, p.TelegramID, p.Username, p.FirstName, p.LastName)
	if err != nil {
		return false, err
	}
	if created {
		log.Info().Int64("telegram_id", p.TelegramID).Uint("user_id", user.ID).Msg("new user registered")
	}
	return created, nil
}

// RelayText records an incoming text message and notifies the administrator.
// A failed notification returns ErrDeliveryFailed; the record is kept.
func (s *RelayService) RelayText(ctx context.Context, p Profile, text string) error {
	user, _, err := s.users.GetOrCreate(ctx, p.TelegramID, p.Username, p.FirstName, p.LastName)
	if err != nil {
		return err
	}

	if _, err := s.messages.RecordIncoming(ctx, user.ID, text); err != nil {
		return err
	}

	notification := textNotification(p, user.MessagesCount+1, text)
	if err := s.sender.SendText(s.admin.AdminID(), notification); err != nil {
		log.Error().Err(err).Int64("telegram_id", p.TelegramID).Msg("notify admin")
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	return nil
}

// RelayPhoto records an incoming photo (caption or placeholder as text) and
// forwards the photo to the administrator.
func (s *RelayService) RelayPhoto(ctx context.Context, p Profile, fileID, caption string) error {
	user, _, err := s.users.GetOrCreate(ctx, p.TelegramID, p.Username, p.FirstName, p.LastName)
	if err != nil {
		return err
	}

	if caption == "" {
		caption = noCaption
	}

	if _, err := s.messages.RecordIncoming(ctx, user.ID, caption); err != nil {
		return err
	}

	notification := photoNotification(p, caption)
	if err := s.sender.SendPhoto(s.admin.AdminID(), fileID, notification); err != nil {
		log.Error().Err(err).Int64("telegram_id", p.TelegramID).Msg("forward photo to admin")
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	return nil
}

func textNotification(p Profile, count int, text string) string {
	var b strings.Builder
	b.WriteString(userLine("👤 Пользователь: ", p))
	b.WriteString(fmt.Sprintf("🆔 ID: %d\n", p.TelegramID))
	b.WriteString(fmt.Sprintf("📊 Сообщений всего: %d\n", count))
	b.WriteString("➖➖➖➖➖➖➖➖➖➖\n")
	b.WriteString("📨 Сообщение:\n")
	b.WriteString(html.EscapeString(text))
	b.WriteString("\n➖➖➖➖➖➖➖➖➖➖\n")
	b.WriteString(fmt.Sprintf("💬 Ответить: /%s%d", ReplyTokenPrefix, p.TelegramID))
	return b.String()
}

func photoNotification(p Profile, caption string) string {
	var b strings.Builder
	b.WriteString(userLine("👤 ", p))
	b.WriteString(fmt.Sprintf("🆔 ID: %d\n", p.TelegramID))
	b.WriteString("📸 Прислал фото\n")
	b.WriteString("➖➖➖➖➖➖➖➖➖➖\n")
	b.WriteString(fmt.Sprintf("📝 Описание: %s\n", html.EscapeString(caption)))
	b.WriteString(fmt.Sprintf("💬 Ответить: /%s%d", ReplyTokenPrefix, p.TelegramID))
	return b.String()
}

// userLine renders the profile header. A missing username is omitted
// entirely instead of rendering an empty @.
func userLine(prefix string, p Profile) string {
	line := prefix + html.EscapeString(strings.TrimSpace(p.FirstName))
	if p.Username != "" {
		line += fmt.Sprintf(" (@%s)", html.EscapeString(p.Username))
	}
	return line + "\n"
}
