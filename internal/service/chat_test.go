package service

import (
	"context"
	"errors"
	"testing"
	"time"

	db "github.com/aalug/go-gin-job-board/internal/db/mongo"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestListConversations(t *testing.T) {
	service, store := newTestService(t)

	me := db.User{ID: "a", Name: "Alice"}
	bob := db.User{ID: "b", Name: "Bob"}
	carol := db.User{ID: "c", Name: "Carol"}
	now := time.Now().UTC()

	messages := []db.ChatMessage{
		{ID: "m3", SenderID: bob.ID, RecipientID: me.ID, Content: "see you", Status: db.MessageStatusDelivered, CreatedAt: now},
		{ID: "m2", SenderID: me.ID, RecipientID: carol.ID, Content: "hello c", Status: db.MessageStatusSent, CreatedAt: now.Add(-time.Minute)},
		{ID: "m1", SenderID: "d", RecipientID: me.ID, Content: "old", Status: db.MessageStatusRead, CreatedAt: now.Add(-time.Hour)},
	}
	page := db.Page[db.ChatMessage]{Content: messages, TotalElements: 3, PageIndex: 0, PageSize: 10, TotalPages: 1}
	pageRequest := db.PageRequest{Page: 0, Size: 10}

	store.EXPECT().
		ListConversations(gomock.Any(), gomock.Eq(me.ID), gomock.Eq(pageRequest)).
		Times(1).
		Return(page, nil)
	store.EXPECT().
		ListUsersByIDs(gomock.Any(), gomock.Eq([]string{bob.ID, carol.ID, "d"})).
		Times(1).
		Return([]db.User{carol, bob}, nil)

	views, err := service.ListConversations(context.Background(), me.ID, pageRequest)
	require.NoError(t, err)
	require.Equal(t, int64(3), views.TotalElements)
	require.Len(t, views.Content, 3)

	require.Equal(t, ConversationView{
		ConversationID: "a_b",
		PartnerID:      bob.ID,
		PartnerName:    "Bob",
		LastMessage:    "see you",
		LastMessageAt:  now,
		LastSenderID:   bob.ID,
		Read:           false,
	}, views.Content[0])

	// the participant sent the last message
	require.Equal(t, "a_c", views.Content[1].ConversationID)
	require.Equal(t, "Carol", views.Content[1].PartnerName)
	require.True(t, views.Content[1].Read)

	// unknown partner keeps an empty name
	require.Equal(t, "d", views.Content[2].PartnerID)
	require.Empty(t, views.Content[2].PartnerName)
	require.True(t, views.Content[2].Read)
}

func TestListConversationsEmptyPage(t *testing.T) {
	service, store := newTestService(t)
	pageRequest := db.PageRequest{Page: 4, Size: 10}

	store.EXPECT().
		ListConversations(gomock.Any(), gomock.Any(), gomock.Eq(pageRequest)).
		Times(1).
		Return(db.Page[db.ChatMessage]{Content: []db.ChatMessage{}, TotalElements: 12, PageIndex: 4, PageSize: 10, TotalPages: 2}, nil)
	store.EXPECT().ListUsersByIDs(gomock.Any(), gomock.Any()).Times(0)

	views, err := service.ListConversations(context.Background(), "a", pageRequest)
	require.NoError(t, err)
	require.NotNil(t, views.Content)
	require.Empty(t, views.Content)
	require.Equal(t, int64(12), views.TotalElements)
	require.Equal(t, 4, views.PageIndex)
}

func TestListConversationsStoreError(t *testing.T) {
	service, store := newTestService(t)
	storeErr := errors.New("timeout")

	store.EXPECT().
		ListConversations(gomock.Any(), gomock.Any(), gomock.Any()).
		Times(1).
		Return(db.Page[db.ChatMessage]{}, storeErr)

	_, err := service.ListConversations(context.Background(), "a", db.PageRequest{Page: 0, Size: 10})
	require.ErrorIs(t, err, storeErr)
}
