package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/madhuri-perumalla/CareerValidAI/internal/service"
	"github.com/madhuri-perumalla/CareerValidAI/internal/util"
)

type ChatController struct {
	chatService *service.ChatService
}

func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{chatService: chatService}
}

type chatRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// Chat answers a user message using the session's analysis data as
// context and appends the exchange to the chat log.
// @Summary Chat with the career assistant
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body chatRequest true "Chat message"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 502 {object} util.Response
// @Router /chat [post]
func (c *ChatController) Chat(ctx *gin.Context) {
	var req chatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	message, err := c.chatService.Chat(ctx.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, message)
}
