package service

import (
	"context"
	"strings"

	"github.com/careerpilot/careerpilot-go/internal/ai"
	"github.com/careerpilot/careerpilot-go/internal/model"
)

const (
	// contextWindow bounds how many stored messages are replayed to the
	// AI service per request.
	contextWindow = 20

	maxMessageLength = 4000

	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// ChatStore is the persistence surface ChatService needs.
type ChatStore interface {
	Append(ctx context.Context, msg *model.ChatMessage) error
	Recent(ctx context.Context, userID int64, limit int) ([]model.ChatMessage, error)
}

// Generator is the AI surface shared by the chat, resume, and practice
// services.
type Generator interface {
	Generate(ctx context.Context, system string, history []ai.Message) (reply, model string, err error)
}

// ChatService forwards user text to the AI service with a recency-bounded
// context window and persists both sides of the exchange.
type ChatService struct {
	store ChatStore
	gen   Generator
}

// NewChatService creates a new ChatService.
func NewChatService(store ChatStore, gen Generator) *ChatService {
	return &ChatService{store: store, gen: gen}
}

// Send persists the user's message, generates a reply in the context of
// the user's recent history, persists the reply, and relays it.
func (s *ChatService) Send(ctx context.Context, userID int64, req model.ChatRequest) (model.ChatResponse, error) {
	text := strings.TrimSpace(req.Message)
	if text == "" {
		return model.ChatResponse{}, &ValidationError{Fields: []FieldError{
			{Field: "message", Message: "message is required"},
		}}
	}
	if len(text) > maxMessageLength {
		return model.ChatResponse{}, &ValidationError{Fields: []FieldError{
			{Field: "message", Message: "message is too long"},
		}}
	}

	history, err := s.store.Recent(ctx, userID, contextWindow)
	if err != nil {
		return model.ChatResponse{}, classifyStoreErr(err)
	}

	userMsg := &model.ChatMessage{UserID: userID, Role: model.RoleUser, Content: text}
	if err := s.store.Append(ctx, userMsg); err != nil {
		return model.ChatResponse{}, classifyStoreErr(err)
	}

	window := make([]ai.Message, 0, len(history)+1)
	for _, m := range history {
		window = append(window, ai.Message{Role: m.Role, Content: m.Content})
	}
	window = append(window, ai.Message{Role: model.RoleUser, Content: text})

	reply, usedModel, err := s.gen.Generate(ctx, coachPrompt, window)
	if err != nil {
		return model.ChatResponse{}, err
	}

	assistantMsg := &model.ChatMessage{UserID: userID, Role: model.RoleAssistant, Content: reply}
	if err := s.store.Append(ctx, assistantMsg); err != nil {
		return model.ChatResponse{}, classifyStoreErr(err)
	}

	return model.ChatResponse{Reply: reply, Model: usedModel}, nil
}

// History returns the user's recent messages in insertion order.
func (s *ChatService) History(ctx context.Context, userID int64, limit int) ([]model.ChatMessage, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	messages, err := s.store.Recent(ctx, userID, limit)
	if err != nil {
		return nil, classifyStoreErr(err)
	}
	if messages == nil {
		messages = []model.ChatMessage{}
	}
	return messages, nil
}
