package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// ChatID returns the conversation key of two participants. It does not
// depend on the order of the arguments.
func ChatID(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "_" + b
}

// conversationKey is the pipeline expression computing ChatID from the
// sender and recipient of a message.
var conversationKey = bson.D{{Key: "$cond", Value: bson.A{
	bson.D{{Key: "$lt", Value: bson.A{"$sender_id", "$recipient_id"}}},
	bson.D{{Key: "$concat", Value: bson.A{"$sender_id", "_", "$recipient_id"}}},
	bson.D{{Key: "$concat", Value: bson.A{"$recipient_id", "_", "$sender_id"}}},
}}}

// conversationStages selects every message of participantID and keeps the
// newest one of each conversation.
func conversationStages(participantID string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "$or", Value: bson.A{
			bson.D{{Key: "sender_id", Value: participantID}},
			bson.D{{Key: "recipient_id", Value: participantID}},
		}}}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: conversationKey},
			{Key: "last_message", Value: bson.D{{Key: "$first", Value: "$$ROOT"}}},
		}}},
		{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: "$last_message"}}}},
	}
}

// ListConversations returns the latest message of every conversation the
// participant takes part in, newest conversation first.
func (store *MongoStore) ListConversations(ctx context.Context, participantID string, p PageRequest) (Page[ChatMessage], error) {
	defer observe("list_conversations", time.Now())

	order, _ := messageSorts.order(Sort{})
	return aggregatePage[ChatMessage](ctx, store.messages, conversationStages(participantID), order, p)
}

type CreateChatMessageParams struct {
	SenderID    string
	RecipientID string
	Content     string
}

func (store *MongoStore) CreateChatMessage(ctx context.Context, arg CreateChatMessageParams) (ChatMessage, error) {
	defer observe("create_chat_message", time.Now())

	if strings.TrimSpace(arg.Content) == "" {
		return ChatMessage{}, fmt.Errorf("%w: message content must not be empty", ErrInvalidCriteria)
	}

	msg := ChatMessage{
		ID:          newID(),
		ChatID:      ChatID(arg.SenderID, arg.RecipientID),
		SenderID:    arg.SenderID,
		RecipientID: arg.RecipientID,
		Content:     arg.Content,
		Status:      MessageStatusSent,
		CreatedAt:   now(),
	}
	if _, err := store.messages.InsertOne(ctx, msg); err != nil {
		return ChatMessage{}, fmt.Errorf("insert chat message: %w", err)
	}
	return msg, nil
}

// ListChatHistory pages the messages exchanged by two users, newest first.
func (store *MongoStore) ListChatHistory(ctx context.Context, userID, partnerID string, p PageRequest) (Page[ChatMessage], error) {
	defer observe("list_chat_history", time.Now())

	order, _ := messageSorts.order(Sort{})
	filter := bson.D{{Key: "chat_id", Value: ChatID(userID, partnerID)}}
	return findPage[ChatMessage](ctx, store.messages, filter, order, p)
}

// MarkConversationRead marks every message the partner sent to the reader
// as read and returns how many changed.
func (store *MongoStore) MarkConversationRead(ctx context.Context, readerID, partnerID string) (int64, error) {
	defer observe("mark_conversation_read", time.Now())

	filter := bson.D{
		{Key: "sender_id", Value: partnerID},
		{Key: "recipient_id", Value: readerID},
		{Key: "status", Value: bson.D{{Key: "$ne", Value: MessageStatusRead}}},
	}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "status", Value: MessageStatusRead}}}}

	result, err := store.messages.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("mark conversation read: %w", err)
	}
	return result.ModifiedCount, nil
}
