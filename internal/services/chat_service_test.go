package services

import (
	"context"
	"errors"
	"testing"

	"scoutline/backend/internal/apperrors"
)

func TestOpenChatReturnsExistingForPair(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := env.registerUser(t, "a@example.com")
	b := env.registerUser(t, "b@example.com")

	chat, err := env.chats.OpenChat(ctx, a.ID, b.ID)
	if err != nil {
		t.Fatal(err)
	}

	// Same pair in reversed order resolves to the same chat
	again, err := env.chats.OpenChat(ctx, b.ID, a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if again.ID != chat.ID {
		t.Errorf("reversed pair opened a new chat: %d != %d", again.ID, chat.ID)
	}
}

func TestOpenChatRejectsSelfChat(t *testing.T) {
	env := newTestEnv(t)
	a := env.registerUser(t, "a@example.com")

	_, err := env.chats.OpenChat(context.Background(), a.ID, a.ID)
	if !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestSendMessageSetsReceiver(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := env.registerUser(t, "a@example.com")
	b := env.registerUser(t, "b@example.com")
	chat, _ := env.chats.OpenChat(ctx, a.ID, b.ID)

	msg, err := env.chats.SendMessage(ctx, chat.ID, b.ID, "hi")
	if err != nil {
		t.Fatal(err)
	}
	if msg.ReceiverID != a.ID {
		t.Errorf("receiver = %s, want %s", msg.ReceiverID, a.ID)
	}
	if !msg.Timestamp.Equal(env.clock.Now()) {
		t.Errorf("timestamp = %v, want %v", msg.Timestamp, env.clock.Now())
	}
}

func TestSendMessageRejectsNonParticipant(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := env.registerUser(t, "a@example.com")
	b := env.registerUser(t, "b@example.com")
	c := env.registerUser(t, "c@example.com")
	chat, _ := env.chats.OpenChat(ctx, a.ID, b.ID)

	_, err := env.chats.SendMessage(ctx, chat.ID, c.ID, "let me in")
	if !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestDeleteChatRemovesMessages(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := env.registerUser(t, "a@example.com")
	b := env.registerUser(t, "b@example.com")
	chat, _ := env.chats.OpenChat(ctx, a.ID, b.ID)
	if _, err := env.chats.SendMessage(ctx, chat.ID, a.ID, "one"); err != nil {
		t.Fatal(err)
	}

	if err := env.chats.DeleteChat(ctx, chat.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := env.chats.ListMessages(ctx, chat.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	msgs, _ := env.store.Messages().ListByChat(ctx, chat.ID)
	if len(msgs) != 0 {
		t.Errorf("messages survived chat delete: %d", len(msgs))
	}
}
