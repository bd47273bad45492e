package api

import (
	"net/http"

	db "github.com/aalug/go-gin-job-board/internal/db/mongo"
	"github.com/gin-gonic/gin"
)

// @Schemes
// @Summary List conversations
// @Description List the conversations of a user, newest first, one entry per partner with the latest message
// @Tags chat
// @Param id path string true "User ID"
// @Param page query integer false "Page number, starting at 0"
// @Param size query integer false "Page size, 20 by default"
// @Produce json
// @Success 200 {object} db.Page[service.ConversationView]
// @Failure 400 {object} ErrorResponse "Invalid ID or query"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /users/{id}/conversations [get]
func (server *Server) listConversations(ctx *gin.Context) {
	var uri idURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if err := validateIDs(uri.ID); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var request pageQuery
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	conversations, err := server.service.ListConversations(ctx, uri.ID, pageRequest(request.Page, request.Size))
	if err != nil {
		ctx.JSON(errorStatus(err), errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, conversations)
}

// @Schemes
// @Summary Chat history
// @Description List the messages exchanged by two users, newest first
// @Tags chat
// @Param id path string true "User ID"
// @Param partner_id path string true "Partner user ID"
// @Produce json
// @Success 200 {object} db.Page[db.ChatMessage]
// @Failure 400 {object} ErrorResponse "Invalid ID or query"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /users/{id}/chat/{partner_id} [get]
func (server *Server) listChatHistory(ctx *gin.Context) {
	var uri conversationURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if err := validateIDs(uri.ID, uri.PartnerID); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var request pageQuery
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	messages, err := server.service.ListChatHistory(ctx, uri.ID, uri.PartnerID, pageRequest(request.Page, request.Size))
	if err != nil {
		ctx.JSON(errorStatus(err), errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, messages)
}

type sendMessageRequest struct {
	Content string `json:"content" binding:"required,max=5000"`
}

// @Schemes
// @Summary Send message
// @Description Send a message from a user to a partner
// @Tags chat
// @Accept json
// @Produce json
// @Param id path string true "Sender ID"
// @Param partner_id path string true "Recipient ID"
// @param SendMessageRequest body sendMessageRequest true "Message"
// @Success 201 {object} db.ChatMessage
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /users/{id}/chat/{partner_id} [post]
func (server *Server) sendMessage(ctx *gin.Context) {
	var uri conversationURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if err := validateIDs(uri.ID, uri.PartnerID); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var request sendMessageRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	message, err := server.service.SendMessage(ctx, db.CreateChatMessageParams{
		SenderID:    uri.ID,
		RecipientID: uri.PartnerID,
		Content:     request.Content,
	})
	if err != nil {
		ctx.JSON(errorStatus(err), errorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated, message)
}

type markConversationReadResponse struct {
	Updated int64 `json:"updated"`
}

// @Schemes
// @Summary Mark conversation read
// @Description Mark every message the partner sent to the user as read
// @Tags chat
// @Param id path string true "Reader ID"
// @Param partner_id path string true "Partner user ID"
// @Produce json
// @Success 200 {object} markConversationReadResponse
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /users/{id}/conversations/{partner_id}/read [patch]
func (server *Server) markConversationRead(ctx *gin.Context) {
	var uri conversationURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if err := validateIDs(uri.ID, uri.PartnerID); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	updated, err := server.service.MarkConversationRead(ctx, uri.ID, uri.PartnerID)
	if err != nil {
		ctx.JSON(errorStatus(err), errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, markConversationReadResponse{Updated: updated})
}
