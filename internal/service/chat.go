package service

import (
	"context"
	"time"

	db "github.com/aalug/go-gin-job-board/internal/db/mongo"
)

// ConversationView is one entry of an inbox: the conversation with its
// latest message, seen from one participant
type ConversationView struct {
	ConversationID string    `json:"conversation_id"`
	PartnerID      string    `json:"partner_id"`
	PartnerName    string    `json:"partner_name"`
	LastMessage    string    `json:"last_message"`
	LastMessageAt  time.Time `json:"last_message_at"`
	LastSenderID   string    `json:"last_sender_id"`
	Read           bool      `json:"read"`
}

// ListConversations returns the inbox of participantID, newest
// conversation first. Partner names are loaded with one query per page.
func (s *Service) ListConversations(ctx context.Context, participantID string, p db.PageRequest) (db.Page[ConversationView], error) {
	page, err := s.store.ListConversations(ctx, participantID, p)
	if err != nil {
		return db.Page[ConversationView]{}, err
	}
	if len(page.Content) == 0 {
		return mapPage[db.ChatMessage, ConversationView](page, nil), nil
	}

	partnerOf := func(msg db.ChatMessage) string {
		if msg.SenderID == participantID {
			return msg.RecipientID
		}
		return msg.SenderID
	}

	var partners map[string]*db.User
	partnerIDs := distinct(page.Content, partnerOf)
	if err := fetchInto(ctx, &partners, partnerIDs, s.store.ListUsersByIDs, userKey, "conversation partners"); err != nil {
		return db.Page[ConversationView]{}, err
	}

	views := make([]ConversationView, len(page.Content))
	for i, msg := range page.Content {
		partnerID := partnerOf(msg)
		view := ConversationView{
			ConversationID: db.ChatID(msg.SenderID, msg.RecipientID),
			PartnerID:      partnerID,
			LastMessage:    msg.Content,
			LastMessageAt:  msg.CreatedAt,
			LastSenderID:   msg.SenderID,
			Read:           msg.SenderID == participantID || msg.Status == db.MessageStatusRead,
		}
		if partner, ok := partners[partnerID]; ok {
			view.PartnerName = partner.Name
		}
		views[i] = view
	}

	return mapPage(page, views), nil
}

func (s *Service) SendMessage(ctx context.Context, arg db.CreateChatMessageParams) (db.ChatMessage, error) {
	return s.store.CreateChatMessage(ctx, arg)
}

func (s *Service) ListChatHistory(ctx context.Context, userID, partnerID string, p db.PageRequest) (db.Page[db.ChatMessage], error) {
	return s.store.ListChatHistory(ctx, userID, partnerID, p)
}

// MarkConversationRead marks what partnerID sent to readerID as read
func (s *Service) MarkConversationRead(ctx context.Context, readerID, partnerID string) (int64, error) {
	return s.store.MarkConversationRead(ctx, readerID, partnerID)
}
