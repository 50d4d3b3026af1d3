package entities

import "time"

// Chat is a conversation between two users. Chats and their messages are
// deleted when either participant's account is removed.
type Chat struct {
	ID      int64  `bson:"_id" json:"id"`
	User1ID string `bson:"user1_id" json:"user1Id"`
	User2ID string `bson:"user2_id" json:"user2Id"`
}

// HasParticipant reports whether userID is either side of the chat
func (c *Chat) HasParticipant(userID string) bool {
	return c.User1ID == userID || c.User2ID == userID
}

type Message struct {
	ID         int64     `bson:"_id" json:"id"`
	ChatID     int64     `bson:"chat_id" json:"chatId"`
	SenderID   string    `bson:"sender_id" json:"senderId"`
	ReceiverID string    `bson:"receiver_id" json:"receiverId"`
	Content    string    `bson:"content" json:"content"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
}
