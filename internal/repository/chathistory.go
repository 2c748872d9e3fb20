package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/oklog/ulid/v2"

	"github.com/nyayasetu/nyayasetu/internal/model"
)

// ErrMessageNotFound is returned when a delete finds neither a history
// record nor a matching message for the user.
var ErrMessageNotFound = errors.New("chat history message not found")

// AppendMessage appends a question/answer pair to the user's history
// record, creating the record lazily on first write. The whole
// operation is a single upsert using the engine's atomic JSONB array
// push, so concurrent appends for the same user cannot lose updates.
// The timestamp is server-assigned.
func (r *Repository) AppendMessage(ctx context.Context, userID, queryText, response string) error {
	msg := model.Message{
		Query:     queryText,
		Response:  response,
		Timestamp: time.Now().UTC(),
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	query := `
		INSERT INTO chat_histories (id, user_id, messages, updated_at)
		VALUES ($1, $2, jsonb_build_array($3::jsonb), now())
		ON CONFLICT (user_id)
		DO UPDATE SET
			messages = chat_histories.messages || EXCLUDED.messages,
			updated_at = now()
	`

	if _, err := r.pool.Exec(ctx, query, ulid.Make().String(), userID, payload); err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}

	return nil
}

// ListMessages returns the user's saved messages in append order.
// A missing record yields an empty slice, not an error: the history
// view must never break for a user who has saved nothing yet.
func (r *Repository) ListMessages(ctx context.Context, userID string) ([]model.Message, error) {
	query := `
		SELECT messages
		FROM chat_histories
		WHERE user_id = $1
	`

	var raw []byte
	err := r.pool.QueryRow(ctx, query, userID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []model.Message{}, nil
		}
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	var messages []model.Message
	if err := json.Unmarshal(raw, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	if messages == nil {
		messages = []model.Message{}
	}

	return messages, nil
}

// DeleteMessageByQuery removes the first (oldest) message whose query
// field exactly equals queryText. Later duplicates are untouched.
// The match and removal happen in one UPDATE, so concurrent deletes
// and appends cannot interleave mid-document. Returns
// ErrMessageNotFound when the record or the match does not exist.
func (r *Repository) DeleteMessageByQuery(ctx context.Context, userID, queryText string) error {
	query := `
		UPDATE chat_histories
		SET messages = messages - (
			SELECT (pos - 1)::int
			FROM jsonb_array_elements(messages) WITH ORDINALITY AS m(msg, pos)
			WHERE m.msg->>'query' = $2
			ORDER BY pos
			LIMIT 1
		), updated_at = now()
		WHERE user_id = $1
		AND EXISTS (
			SELECT 1
			FROM jsonb_array_elements(messages) AS e(msg)
			WHERE e.msg->>'query' = $2
		)
	`

	tag, err := r.pool.Exec(ctx, query, userID, queryText)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrMessageNotFound
	}

	return nil
}
