// AngelaMos | 2026
// service.go

package message

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/efarmlink/efarmlink-api/internal/core"
	"github.com/efarmlink/efarmlink-api/internal/events"
)

type Service struct {
	repo   Repository
	events events.Publisher
}

func NewService(repo Repository, publisher events.Publisher) *Service {
	return &Service{repo: repo, events: publisher}
}

func (s *Service) Send(
	ctx context.Context,
	senderID string,
	req SendMessageRequest,
) (*Message, error) {
	if senderID == "" {
		return nil, fmt.Errorf("send message: %w", core.ErrUnauthorized)
	}

	receiverID, ok := core.ParseID(req.ReceiverID)
	if !ok {
		return nil, fmt.Errorf("send message: %w: receiver_id must be a valid id", core.ErrInvalidInput)
	}
	if receiverID == senderID {
		return nil, fmt.Errorf("send message: %w: you cannot message yourself", core.ErrInvalidInput)
	}

	text := strings.TrimSpace(req.MessageText)
	if text == "" {
		return nil, fmt.Errorf("send message: %w: message_text is required", core.ErrInvalidInput)
	}

	if req.OrderID != nil {
		parties, err := s.repo.OrderParties(ctx, *req.OrderID)
		if err != nil {
			return nil, fmt.Errorf("send message: order: %w", err)
		}
		if !parties.Between(senderID, receiverID) {
			return nil, fmt.Errorf("send message: order: %w", core.ErrNotFound)
		}
	}

	m := &Message{
		ID:          uuid.New().String(),
		SenderID:    senderID,
		ReceiverID:  receiverID,
		MessageText: text,
		ProductID:   req.ProductID,
		OrderID:     req.OrderID,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	events.Emit(ctx, s.events, events.New(
		events.MessageSent, receiverID, senderID, ToMessageResponse(m),
	))

	return m, nil
}

// Thread returns both directions of the conversation oldest first, then
// marks what the other user sent to the caller as read. The returned slice
// reflects the state before marking.
func (s *Service) Thread(
	ctx context.Context,
	userID, otherID string,
) ([]ThreadMessage, error) {
	if userID == "" {
		return nil, fmt.Errorf("get thread: %w", core.ErrUnauthorized)
	}

	var msgs []ThreadMessage
	err := s.repo.WithTx(ctx, func(repo Repository) error {
		var err error
		msgs, err = repo.Thread(ctx, userID, otherID)
		if err != nil {
			return err
		}

		_, err = repo.MarkRead(ctx, otherID, userID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get thread: %w", err)
	}

	return msgs, nil
}

func (s *Service) Conversations(ctx context.Context, userID string) ([]Conversation, error) {
	if userID == "" {
		return nil, fmt.Errorf("list conversations: %w", core.ErrUnauthorized)
	}

	return s.repo.Conversations(ctx, userID)
}
