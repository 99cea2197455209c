package rest

import (
	"context"
	"log/slog"
	"net/http"

	chatsvc "github.com/heartmarshall/dialects-backend/internal/service/chat"
)

type chatService interface {
	Chat(ctx context.Context, input chatsvc.ChatInput) (*chatsvc.ChatResult, error)
}

// ChatHandler serves the AI chat proxy.
type ChatHandler struct {
	svc chatService
	log *slog.Logger
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(svc chatService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{svc: svc, log: logger.With("handler", "chat")}
}

type chatRequest struct {
	Message  string `json:"message"`
	Provider string `json:"provider"`
}

type chatResponse struct {
	Reply    string `json:"reply"`
	Provider string `json:"provider"`
	Success  bool   `json:"success"`
}

// Chat handles POST /chat.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Chat(r.Context(), chatsvc.ChatInput{
		Message:  req.Message,
		Provider: req.Provider,
	})
	if err != nil {
		handleError(w, r, h.log, err, msgChatFailed)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Reply:    result.Reply,
		Provider: result.Provider,
		Success:  true,
	})
}
