package repositories

import (
	"context"
	"fmt"

	"scoutline/backend/internal/apperrors"
	"scoutline/backend/internal/constants"
	"scoutline/backend/internal/models/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ChatStore interface {
	FindByID(ctx context.Context, id int64) (*entities.Chat, error)
	FindByParticipants(ctx context.Context, user1ID, user2ID string) (*entities.Chat, error)
	ListByParticipant(ctx context.Context, userID string) ([]entities.Chat, error)
	Insert(ctx context.Context, chat *entities.Chat) error
	Delete(ctx context.Context, id int64) error
}

type MessageStore interface {
	ListByChat(ctx context.Context, chatID int64) ([]entities.Message, error)
	Insert(ctx context.Context, msg *entities.Message) error
	DeleteByChat(ctx context.Context, chatID int64) error
}

type ChatRepository struct {
	coll *mongo.Collection
}

func NewChatRepository(db *mongo.Database) *ChatRepository {
	return &ChatRepository{coll: db.Collection(constants.CollChats)}
}

var _ ChatStore = (*ChatRepository)(nil)

func (r *ChatRepository) FindByID(ctx context.Context, id int64) (*entities.Chat, error) {
	var chat entities.Chat
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&chat)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chat: %w", err)
	}
	return &chat, nil
}

// FindByParticipants matches the pair in either order
func (r *ChatRepository) FindByParticipants(ctx context.Context, user1ID, user2ID string) (*entities.Chat, error) {
	filter := bson.M{"$or": []bson.M{
		{"user1_id": user1ID, "user2_id": user2ID},
		{"user1_id": user2ID, "user2_id": user1ID},
	}}
	var chat entities.Chat
	err := r.coll.FindOne(ctx, filter).Decode(&chat)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chat by participants: %w", err)
	}
	return &chat, nil
}

func (r *ChatRepository) ListByParticipant(ctx context.Context, userID string) ([]entities.Chat, error) {
	filter := bson.M{"$or": []bson.M{
		{"user1_id": userID},
		{"user2_id": userID},
	}}
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list chats: %w", err)
	}
	var chats []entities.Chat
	if err := cur.All(ctx, &chats); err != nil {
		return nil, fmt.Errorf("failed to decode chats: %w", err)
	}
	return chats, nil
}

func (r *ChatRepository) Insert(ctx context.Context, chat *entities.Chat) error {
	if _, err := r.coll.InsertOne(ctx, chat); err != nil {
		return fmt.Errorf("failed to insert chat: %w", err)
	}
	return nil
}

func (r *ChatRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete chat: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("chat %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

type MessageRepository struct {
	coll *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{coll: db.Collection(constants.CollMessages)}
}

var _ MessageStore = (*MessageRepository)(nil)

func (r *MessageRepository) ListByChat(ctx context.Context, chatID int64) ([]entities.Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"chat_id": chatID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	var msgs []entities.Message
	if err := cur.All(ctx, &msgs); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	return msgs, nil
}

func (r *MessageRepository) Insert(ctx context.Context, msg *entities.Message) error {
	if _, err := r.coll.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

func (r *MessageRepository) DeleteByChat(ctx context.Context, chatID int64) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"chat_id": chatID}); err != nil {
		return fmt.Errorf("failed to delete messages for chat: %w", err)
	}
	return nil
}
