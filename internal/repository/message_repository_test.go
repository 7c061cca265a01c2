package repository

import (
	"context"
	"testing"

	"github.com/ByPavel22/ByPavel22Bot/internal/model"
)

func TestRecordIncoming_BumpsCounterWithEveryMessage(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	messages := NewMessageRepository(db)
	ctx := context.Background()

	user, _, err := users.GetOrCreate(ctx, 100, "ann", "Ann", "")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}

	const n = 4
	for i := 0; i < n; i++ {
		msg, err := messages.RecordIncoming(ctx, user.ID, "hi")
		if err != nil {
			t.Fatalf("RecordIncoming %d: %v", i, err)
		}
		if msg.ID == 0 || msg.Direction != model.DirectionIncoming || msg.Text != "hi" {
			t.Fatalf("unexpected message: %+v", msg)
		}
		if msg.CreatedAt.IsZero() {
			t.Fatalf("CreatedAt not set: %+v", msg)
		}
	}

	var got model.User
	if err := db.First(&got, user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if got.MessagesCount != n {
		t.Fatalf("expected messages_count=%d, got %d", n, got.MessagesCount)
	}

	var rows int64
	if err := db.Model(&model.Message{}).
		Where("user_id = ? AND direction = ?", user.ID, model.DirectionIncoming).
		Count(&rows).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if rows != n {
		t.Fatalf("expected %d incoming rows, got %d", n, rows)
	}
}

func TestRecordOutgoing_LeavesCounterAlone(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	messages := NewMessageRepository(db)
	ctx := context.Background()

	user, _, err := users.GetOrCreate(ctx, 200, "", "Bob", "")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}

	msg, err := messages.RecordOutgoing(ctx, user.ID, "hello")
	if err != nil {
		t.Fatalf("RecordOutgoing: %v", err)
	}
	if msg.Direction != model.DirectionOutgoing || msg.Text != "hello" {
		t.Fatalf("unexpected message: %+v", msg)
	}

	var got model.User
	if err := db.First(&got, user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if got.MessagesCount != 0 {
		t.Fatalf("outgoing message must not bump the counter, got %d", got.MessagesCount)
	}

	total, err := messages.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 message, got %d", total)
	}
}
