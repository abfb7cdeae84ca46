package restapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"solana_advisor/internal/app/port"
	"solana_advisor/internal/domain/entity"
)

// APIChatResponse is the webhook reply: every outbound message the chat
// turn produced, in emission order (ack first).
type APIChatResponse struct {
	Data struct {
		Messages []entity.OutboundMessage `json:"messages"`
	} `json:"data"`
	StatusMessage string `json:"status_message"`
	Error         string `json:"error,omitempty"`
}

// ChatHandler exposes the conversational surface as an HTTP webhook.
type ChatHandler struct {
	chatService port.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(cs port.ChatService) *ChatHandler {
	return &ChatHandler{chatService: cs}
}

// replyCollector implements port.Messenger by buffering replies in order so
// the webhook can return them as one body.
type replyCollector struct {
	messages []entity.OutboundMessage
}

func (r *replyCollector) Send(_ context.Context, message entity.OutboundMessage) error {
	r.messages = append(r.messages, message)
	return nil
}

// PostChatMessageHandler handles POST /api/v1/chat.
func (h *ChatHandler) PostChatMessageHandler(c *gin.Context) {
	var msg entity.InboundMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, APIChatResponse{
			StatusMessage: "Malformed chat message.",
			Error:         err.Error(),
		})
		return
	}
	if msg.Type == "" {
		msg.Type = entity.MessageText
	}
	if msg.Sender == "" {
		msg.Sender = c.ClientIP()
	}

	collector := &replyCollector{}
	h.chatService.Handle(c.Request.Context(), msg, collector)

	response := APIChatResponse{StatusMessage: "Message processed."}
	response.Data.Messages = collector.messages
	c.JSON(http.StatusOK, response)
}
