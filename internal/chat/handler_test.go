package chat_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/2beens/liftstats/internal/chat"
	"github.com/2beens/liftstats/internal/telemetry/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// INFO: https://github.com/go-redis/redis/issues/1029
		goleak.IgnoreTopFunction(
			"github.com/go-redis/redis/v8/internal/pool.(*ConnPool).reaper",
		),
	)
}

type handlerMocks struct {
	completer     *MockcompletionsClient
	promptBuilder *MocksystemPromptBuilder
	history       *MockconversationHistory
}

func newTestHandler(t *testing.T) (*chat.Handler, *handlerMocks, *metrics.Manager) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mocks := &handlerMocks{
		completer:     NewMockcompletionsClient(ctrl),
		promptBuilder: NewMocksystemPromptBuilder(ctrl),
		history:       NewMockconversationHistory(ctrl),
	}
	metricsManager := metrics.NewTestManager()
	handler := chat.NewHandler(mocks.completer, mocks.promptBuilder, mocks.history, metricsManager)
	return handler, mocks, metricsManager
}

func chatMessageRequest(body string) *http.Request {
	req := httptest.NewRequest("POST", "/chat", strings.NewReader(body))
	req.RemoteAddr = "83.12.53.65:2145"
	return req
}

func TestHandler_ChatMessage(t *testing.T) {
	handler, mocks, metricsManager := newTestHandler(t)

	mocks.promptBuilder.EXPECT().
		SystemPrompt(gomock.Any()).
		Return("you know the workout log").
		Times(1)

	mocks.history.EXPECT().
		Exchanges(gomock.Any(), "83.12.53.65").
		Return([]chat.Exchange{
			{UserMessage: "how is my squat?", Reply: "stalling for a month"},
		}, nil).
		Times(1)

	mocks.completer.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, messages []chat.Message) (string, error) {
			// system prompt, one stored exchange, then the new message
			require.Len(t, messages, 4)
			assert.Equal(t, chat.Message{Role: chat.RoleSystem, Content: "you know the workout log"}, messages[0])
			assert.Equal(t, chat.Message{Role: chat.RoleUser, Content: "how is my squat?"}, messages[1])
			assert.Equal(t, chat.Message{Role: chat.RoleAssistant, Content: "stalling for a month"}, messages[2])
			assert.Equal(t, chat.Message{Role: chat.RoleUser, Content: "what should i change?"}, messages[3])
			return "add a deload week", nil
		}).
		Times(1)

	mocks.history.EXPECT().
		Append(gomock.Any(), "83.12.53.65", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, exchange chat.Exchange) error {
			assert.Equal(t, "what should i change?", exchange.UserMessage)
			assert.Equal(t, "add a deload week", exchange.Reply)
			assert.False(t, exchange.CreatedAt.IsZero())
			return nil
		}).
		Times(1)

	rr := httptest.NewRecorder()
	handler.HandleChatMessage(rr, chatMessageRequest(`{"message": "what should i change?"}`))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp chat.ChatResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "add a deload week", resp.Reply)

	assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterChatRequests))
	assert.Equal(t, float64(0), testutil.ToFloat64(metricsManager.CounterChatFailures))
}

func TestHandler_ChatMessage_BadRequest(t *testing.T) {
	for name, body := range map[string]string{
		"empty message":      `{"message": ""}`,
		"whitespace message": `{"message": "   "}`,
		"not json":           `what should i change?`,
	} {
		t.Run(name, func(t *testing.T) {
			handler, _, _ := newTestHandler(t)

			rr := httptest.NewRecorder()
			handler.HandleChatMessage(rr, chatMessageRequest(body))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestHandler_ChatMessage_RateLimited(t *testing.T) {
	handler, mocks, metricsManager := newTestHandler(t)

	mocks.promptBuilder.EXPECT().SystemPrompt(gomock.Any()).Return("prompt").Times(1)
	mocks.history.EXPECT().Exchanges(gomock.Any(), "83.12.53.65").Return(nil, nil).Times(1)
	mocks.completer.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		Return("", fmt.Errorf("%w: try later", chat.ErrRateLimited)).
		Times(1)

	rr := httptest.NewRecorder()
	handler.HandleChatMessage(rr, chatMessageRequest(`{"message": "hello"}`))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Contains(t, rr.Body.String(), "assistant is busy")
	assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterChatFailures))
}

func TestHandler_ChatMessage_CompleterError(t *testing.T) {
	handler, mocks, metricsManager := newTestHandler(t)

	mocks.promptBuilder.EXPECT().SystemPrompt(gomock.Any()).Return("prompt").Times(1)
	mocks.history.EXPECT().Exchanges(gomock.Any(), "83.12.53.65").Return(nil, nil).Times(1)
	mocks.completer.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		Return("", errors.New("completions endpoint exploded")).
		Times(1)

	rr := httptest.NewRecorder()
	handler.HandleChatMessage(rr, chatMessageRequest(`{"message": "hello"}`))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterChatFailures))
}

func TestHandler_ChatMessage_HistoryUnavailable(t *testing.T) {
	handler, mocks, metricsManager := newTestHandler(t)

	mocks.promptBuilder.EXPECT().SystemPrompt(gomock.Any()).Return("prompt").Times(1)
	mocks.history.EXPECT().
		Exchanges(gomock.Any(), "83.12.53.65").
		Return(nil, errors.New("redis down")).
		Times(1)
	mocks.completer.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, messages []chat.Message) (string, error) {
			// no history, just the system prompt and the new message
			require.Len(t, messages, 2)
			return "reply without memory", nil
		}).
		Times(1)
	mocks.history.EXPECT().
		Append(gomock.Any(), "83.12.53.65", gomock.Any()).
		Return(errors.New("redis still down")).
		Times(1)

	rr := httptest.NewRecorder()
	handler.HandleChatMessage(rr, chatMessageRequest(`{"message": "hello"}`))

	// a dead history store must not take the chat down with it
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "reply without memory")
	assert.Equal(t, float64(0), testutil.ToFloat64(metricsManager.CounterChatFailures))
}

func TestHandler_ClearHistory(t *testing.T) {
	handler, mocks, _ := newTestHandler(t)

	mocks.history.EXPECT().Clear(gomock.Any(), "83.12.53.65").Return(nil).Times(1)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/chat/history", nil)
	req.RemoteAddr = "83.12.53.65:2145"
	handler.HandleClearHistory(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "chat history cleared")
}

func TestHandler_ClearHistory_UnknownClient(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/chat/history", nil)
	req.RemoteAddr = "gibberish"
	handler.HandleClearHistory(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_ClearHistory_RedisError(t *testing.T) {
	handler, mocks, _ := newTestHandler(t)

	mocks.history.EXPECT().
		Clear(gomock.Any(), "83.12.53.65").
		Return(errors.New("connection refused")).
		Times(1)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/chat/history", nil)
	req.RemoteAddr = "83.12.53.65:2145"
	handler.HandleClearHistory(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
