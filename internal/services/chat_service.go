package services

import (
	"context"
	"fmt"
	"time"

	"scoutline/backend/internal/apperrors"
	"scoutline/backend/internal/constants"
	"scoutline/backend/internal/db"
	"scoutline/backend/internal/db/repositories"
	"scoutline/backend/internal/models/entities"
)

// ChatService manages conversations between two users
type ChatService struct {
	chats    repositories.ChatStore
	messages repositories.MessageStore
	users    repositories.UserStore
	alloc    db.SequenceAllocator
	now      func() time.Time
}

func NewChatService(
	chats repositories.ChatStore,
	messages repositories.MessageStore,
	users repositories.UserStore,
	alloc db.SequenceAllocator,
	now func() time.Time,
) *ChatService {
	if now == nil {
		now = time.Now
	}
	return &ChatService{chats: chats, messages: messages, users: users, alloc: alloc, now: now}
}

// OpenChat returns the existing chat for the pair, or creates one
func (s *ChatService) OpenChat(ctx context.Context, user1ID, user2ID string) (*entities.Chat, error) {
	if user1ID == "" || user2ID == "" || user1ID == user2ID {
		return nil, fmt.Errorf("two distinct participants are required: %w", apperrors.ErrInvalidArgument)
	}

	existing, err := s.chats.FindByParticipants(ctx, user1ID, user2ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	id, err := s.alloc.NextID(ctx, constants.CollChats)
	if err != nil {
		return nil, err
	}

	chat := &entities.Chat{ID: id, User1ID: user1ID, User2ID: user2ID}
	if err := s.chats.Insert(ctx, chat); err != nil {
		return nil, err
	}
	return chat, nil
}

func (s *ChatService) SendMessage(ctx context.Context, chatID int64, senderID, content string) (*entities.Message, error) {
	chat, err := s.chats.FindByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, fmt.Errorf("chat %d: %w", chatID, apperrors.ErrNotFound)
	}
	if !chat.HasParticipant(senderID) {
		return nil, fmt.Errorf("sender is not a participant: %w", apperrors.ErrInvalidArgument)
	}

	receiverID := chat.User1ID
	if senderID == chat.User1ID {
		receiverID = chat.User2ID
	}

	id, err := s.alloc.NextID(ctx, constants.CollMessages)
	if err != nil {
		return nil, err
	}

	msg := &entities.Message{
		ID:         id,
		ChatID:     chatID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		Timestamp:  s.now(),
	}
	if err := s.messages.Insert(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *ChatService) ListMessages(ctx context.Context, chatID int64) ([]entities.Message, error) {
	chat, err := s.chats.FindByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, fmt.Errorf("chat %d: %w", chatID, apperrors.ErrNotFound)
	}
	return s.messages.ListByChat(ctx, chatID)
}

func (s *ChatService) ListByParticipant(ctx context.Context, userID string) ([]entities.Chat, error) {
	return s.chats.ListByParticipant(ctx, userID)
}

// DeleteChat removes the messages first, then the chat row
func (s *ChatService) DeleteChat(ctx context.Context, chatID int64) error {
	if err := s.messages.DeleteByChat(ctx, chatID); err != nil {
		return err
	}
	return s.chats.Delete(ctx, chatID)
}
