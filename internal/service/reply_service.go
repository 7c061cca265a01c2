package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/ByPavel22/ByPavel22Bot/internal/model"
	"github.com/ByPavel22/ByPavel22Bot/internal/repository"
)

// ReplyService routes administrator answers back to a specific user.
type ReplyService struct {
	users    *repository.UserRepository
	messages *repository.MessageRepository
	sender   Sender
	admin    AdminGate
}

func NewReplyService(users *repository.UserRepository, messages *repository.MessageRepository, sender Sender, admin AdminGate) *ReplyService {
	return &ReplyService{users: users, messages: messages, sender: sender, admin: admin}
}

// ParseReplyToken extracts the target Telegram id from a reply_<id> command.
func ParseReplyToken(command string) (int64, error) {
	raw, ok := strings.CutPrefix(command, ReplyTokenPrefix)
	if !ok || raw == "" {
		return 0, fmt.Errorf("%w: %q", ErrBadReplyToken, command)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadReplyToken, command)
	}
	return id, nil
}

// Reply records an outgoing message against the target user and delivers the
// body to their chat. Only the administrator may reply; the target must be a
// known user. The record is written before the send is attempted.
func (s *ReplyService) Reply(ctx context.Context, requesterID int64, command, body string) (*model.User, error) {
	if !s.admin.IsAdmin(requesterID) {
		return nil, ErrUnauthorized
	}

	targetID, err := ParseReplyToken(command)
	if err != nil {
		return nil, err
	}

	target, err := s.users.FindByTelegramID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrUnknownTarget, targetID)
		}
		return nil, err
	}

	if _, err := s.messages.RecordOutgoing(ctx, target.ID, body); err != nil {
		return nil, err
	}

	if err := s.sender.SendText(target.TelegramID, body); err != nil {
		log.Error().Err(err).Int64("telegram_id", target.TelegramID).Msg("deliver reply")
		return target, fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	log.Info().Int64("telegram_id", target.TelegramID).Msg("admin reply delivered")
	return target, nil
}
