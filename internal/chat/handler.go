package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/liftstats/internal/telemetry/metrics"
	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=chat_test

type completionsClient interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

type systemPromptBuilder interface {
	SystemPrompt(ctx context.Context) string
}

type conversationHistory interface {
	Exchanges(ctx context.Context, clientIP string) ([]Exchange, error)
	Append(ctx context.Context, clientIP string, exchange Exchange) error
	Clear(ctx context.Context, clientIP string) error
}

type Handler struct {
	completer      completionsClient
	promptBuilder  systemPromptBuilder
	history        conversationHistory
	metricsManager *metrics.Manager
}

func NewHandler(
	completer completionsClient,
	promptBuilder systemPromptBuilder,
	history conversationHistory,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		completer:      completer,
		promptBuilder:  promptBuilder,
		history:        history,
		metricsManager: metricsManager,
	}
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

func (handler *Handler) HandleChatMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.chat.message")
	defer span.End()

	handler.metricsManager.CounterChatRequests.Inc()

	var chatReq ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&chatReq); err != nil {
		http.Error(w, "error, invalid request body", http.StatusBadRequest)
		return
	}

	message := strings.TrimSpace(chatReq.Message)
	if message == "" {
		http.Error(w, "error, message empty", http.StatusBadRequest)
		return
	}

	// history is best effort, the chat works without it
	clientIP, err := pkg.ReadUserIP(r)
	if err != nil {
		log.Errorf("handle chat message, read user ip: %s", err)
		clientIP = ""
	}

	var exchanges []Exchange
	if clientIP != "" {
		if exchanges, err = handler.history.Exchanges(ctx, clientIP); err != nil {
			log.Errorf("handle chat message, get history for [%s]: %s", clientIP, err)
			exchanges = nil
		}
	}

	messages := make([]Message, 0, 2*len(exchanges)+2)
	messages = append(messages, Message{Role: RoleSystem, Content: handler.promptBuilder.SystemPrompt(ctx)})
	for _, exchange := range exchanges {
		messages = append(messages,
			Message{Role: RoleUser, Content: exchange.UserMessage},
			Message{Role: RoleAssistant, Content: exchange.Reply},
		)
	}
	messages = append(messages, Message{Role: RoleUser, Content: message})

	reply, err := handler.completer.Complete(ctx, messages)
	if err != nil {
		handler.metricsManager.CounterChatFailures.Inc()
		if errors.Is(err, ErrRateLimited) {
			log.Errorf("handle chat message, completions rate limited: %s", err)
			http.Error(w, "assistant is busy, try again later", http.StatusServiceUnavailable)
			return
		}
		log.Errorf("handle chat message, complete: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if clientIP != "" {
		if err := handler.history.Append(ctx, clientIP, Exchange{
			UserMessage: message,
			Reply:       reply,
			CreatedAt:   time.Now(),
		}); err != nil {
			log.Errorf("handle chat message, store history for [%s]: %s", clientIP, err)
		}
	}

	respBytes, err := json.Marshal(ChatResponse{Reply: reply})
	if err != nil {
		log.Errorf("marshal chat response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, http.StatusOK)
}

func (handler *Handler) HandleClearHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.chat.clearHistory")
	defer span.End()

	clientIP, err := pkg.ReadUserIP(r)
	if err != nil {
		log.Errorf("handle clear chat history, read user ip: %s", err)
		http.Error(w, "error, client addr unknown", http.StatusBadRequest)
		return
	}

	if err := handler.history.Clear(ctx, clientIP); err != nil {
		log.Errorf("handle clear chat history for [%s]: %s", clientIP, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "chat history cleared")
}
