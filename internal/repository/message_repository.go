package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ByPavel22/ByPavel22Bot/internal/model"
)

// MessageRepository handles the append-only message history.
type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// RecordIncoming inserts a user → admin message and bumps the owner's
// messages_count in the same transaction, so the counter and the history
// can never drift apart.
func (r *MessageRepository) RecordIncoming(ctx context.Context, userID uint, text string) (*model.Message, error) {
	msg := model.Message{
		UserID:    userID,
		Text:      text,
		Direction: model.DirectionIncoming,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.User{}).
			Where("id = ?", userID).
			UpdateColumn("messages_count", gorm.Expr("messages_count + 1")).Error; err != nil {
			return err
		}
		return tx.Create(&msg).Error
	})
	if err != nil {
		return nil, classify("record incoming message", err)
	}
	return &msg, nil
}

// RecordOutgoing inserts an admin → user message. The counter tracks only
// incoming traffic and stays untouched.
func (r *MessageRepository) RecordOutgoing(ctx context.Context, userID uint, text string) (*model.Message, error) {
	msg := model.Message{
		UserID:    userID,
		Text:      text,
		Direction: model.DirectionOutgoing,
	}
	if err := r.db.WithContext(ctx).Create(&msg).Error; err != nil {
		return nil, classify("record outgoing message", err)
	}
	return &msg, nil
}

// Count returns the total number of stored messages in both directions.
func (r *MessageRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Message{}).Count(&total).Error; err != nil {
		return 0, classify("count messages", err)
	}
	return total, nil
}
