package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/nyayasetu/nyayasetu/internal/classifier"
	"github.com/nyayasetu/nyayasetu/internal/gateway"
	"github.com/nyayasetu/nyayasetu/internal/metrics"
	"github.com/nyayasetu/nyayasetu/internal/model"
	"github.com/nyayasetu/nyayasetu/internal/repository"
)

// Chat service errors.
var (
	ErrQueryTooShort    = errors.New("query is too short")
	ErrQueryNotLegal    = errors.New("query is outside the supported legal domains")
	ErrMissingUserID    = errors.New("user id is required")
	ErrExchangeNotFound = errors.New("no saved exchange matches that query")
)

// MinQueryLength is the minimum accepted query length in characters.
// The length gate runs before the domain classifier so short input is
// always reported as too short, never as off-domain.
const MinQueryLength = 5

// HistoryStore is the persistence surface ChatService depends on.
type HistoryStore interface {
	AppendMessage(ctx context.Context, userID, query, response string) error
	ListMessages(ctx context.Context, userID string) ([]model.Message, error)
	DeleteMessageByQuery(ctx context.Context, userID, query string) error
}

// AnswerProvider produces a completion for an accepted query.
type AnswerProvider interface {
	Answer(ctx context.Context, query string) (string, error)
}

// ChatService runs the question pipeline and manages chat history.
type ChatService struct {
	classifier *classifier.Classifier
	upstream   AnswerProvider
	history    HistoryStore
	metrics    metrics.Recorder
	logger     *slog.Logger
}

// NewChatService creates a ChatService.
func NewChatService(
	cls *classifier.Classifier,
	upstream AnswerProvider,
	history HistoryStore,
	recorder metrics.Recorder,
	logger *slog.Logger,
) *ChatService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &ChatService{
		classifier: cls,
		upstream:   upstream,
		history:    history,
		metrics:    recorder,
		logger:     logger,
	}
}

// Ask gates the query (length, then legal domain) and forwards it to
// the upstream. The answer text is returned verbatim.
func (s *ChatService) Ask(ctx context.Context, query string) (string, error) {
	if utf8.RuneCountInString(query) < MinQueryLength {
		s.metrics.IncQueryRejected(metrics.RejectTooShort)
		return "", ErrQueryTooShort
	}

	result, ok := s.classifier.Classify(query)
	if !ok {
		s.metrics.IncQueryRejected(metrics.RejectNotLegal)
		return "", ErrQueryNotLegal
	}
	s.metrics.IncQueryAccepted(result.Domain)

	start := time.Now()
	answer, err := s.upstream.Answer(ctx, query)
	s.metrics.ObserveUpstreamDuration(time.Since(start))

	if err != nil {
		switch {
		case errors.Is(err, gateway.ErrRateLimited):
			s.metrics.IncUpstreamCall(metrics.UpstreamRateLimited)
		case errors.Is(err, gateway.ErrNotConfigured):
			s.metrics.IncUpstreamCall(metrics.UpstreamNotConfigured)
		default:
			s.metrics.IncUpstreamCall(metrics.UpstreamFailed)
		}
		return "", err
	}

	s.metrics.IncUpstreamCall(metrics.UpstreamSuccess)
	s.logger.Info("query_answered", "domain", result.Domain)

	return answer, nil
}

// SaveExchange appends a question/answer pair to the user's history.
// Only the user id is validated; query and response may be empty.
func (s *ChatService) SaveExchange(ctx context.Context, userID, query, response string) error {
	if userID == "" {
		return ErrMissingUserID
	}

	if err := s.history.AppendMessage(ctx, userID, query, response); err != nil {
		return fmt.Errorf("append message: %w", err)
	}

	s.metrics.IncHistoryAppended()
	return nil
}

// History lists the user's saved exchanges, oldest first.
// A user with no history gets an empty list, not an error.
func (s *ChatService) History(ctx context.Context, userID string) ([]model.Message, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}

	messages, err := s.history.ListMessages(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	return messages, nil
}

// DeleteExchange removes the oldest saved exchange whose query exactly
// equals queryText. Duplicates are deleted one call at a time.
func (s *ChatService) DeleteExchange(ctx context.Context, userID, queryText string) error {
	if userID == "" {
		return ErrMissingUserID
	}

	if err := s.history.DeleteMessageByQuery(ctx, userID, queryText); err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return ErrExchangeNotFound
		}
		return fmt.Errorf("delete message: %w", err)
	}

	s.metrics.IncHistoryDeleted()
	return nil
}
