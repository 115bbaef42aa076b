// AngelaMos | 2026
// service_test.go

package message

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efarmlink/efarmlink-api/internal/core"
	"github.com/efarmlink/efarmlink-api/internal/events"
)

type memoryRepo struct {
	mu       sync.Mutex
	users    map[string]string
	orders   map[string]OrderParties
	messages []Message
	clock    time.Time
}

func newMemoryRepo(users map[string]string) *memoryRepo {
	return &memoryRepo{
		users:  users,
		orders: make(map[string]OrderParties),
		clock:  time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (m *memoryRepo) OrderParties(_ context.Context, orderID string) (*OrderParties, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.orders[orderID]
	if !ok {
		return nil, fmt.Errorf("get order parties: %w", core.ErrNotFound)
	}
	return &p, nil
}

func (m *memoryRepo) WithTx(_ context.Context, fn func(Repository) error) error {
	return fn(m)
}

func (m *memoryRepo) Create(_ context.Context, msg *Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[msg.ReceiverID]; !ok {
		return fmt.Errorf("create message: %w", core.ErrNotFound)
	}
	m.clock = m.clock.Add(time.Minute)
	msg.CreatedAt = m.clock
	m.messages = append(m.messages, *msg)
	return nil
}

func (m *memoryRepo) Thread(_ context.Context, userID, otherID string) ([]ThreadMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []ThreadMessage
	for _, msg := range m.messages {
		if (msg.SenderID == userID && msg.ReceiverID == otherID) ||
			(msg.SenderID == otherID && msg.ReceiverID == userID) {
			out = append(out, ThreadMessage{Message: msg, SenderName: m.users[msg.SenderID]})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *memoryRepo) MarkRead(_ context.Context, senderID, receiverID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for i := range m.messages {
		msg := &m.messages[i]
		if msg.SenderID == senderID && msg.ReceiverID == receiverID && !msg.IsRead {
			msg.IsRead = true
			n++
		}
	}
	return n, nil
}

func (m *memoryRepo) Conversations(_ context.Context, userID string) ([]Conversation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	byOther := make(map[string]*Conversation)
	for _, msg := range m.messages {
		var other string
		switch userID {
		case msg.SenderID:
			other = msg.ReceiverID
		case msg.ReceiverID:
			other = msg.SenderID
		default:
			continue
		}

		c, ok := byOther[other]
		if !ok {
			c = &Conversation{OtherUserID: other, OtherUserName: m.users[other]}
			byOther[other] = c
		}
		if msg.CreatedAt.After(c.LastMessageTime) {
			c.LastMessageTime = msg.CreatedAt
		}
		if msg.ReceiverID == userID && !msg.IsRead {
			c.UnreadCount++
		}
	}

	out := make([]Conversation, 0, len(byOther))
	for _, c := range byOther {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastMessageTime.After(out[j].LastMessageTime) })
	return out, nil
}

const (
	buyerID  = "bbbbbbbb-0000-0000-0000-000000000001"
	farmerID = "ffffffff-0000-0000-0000-000000000002"
	otherID  = "ffffffff-0000-0000-0000-000000000003"
)

func testUsers() map[string]string {
	return map[string]string{
		buyerID:  "Otieno",
		farmerID: "Wanjiru",
		otherID:  "Kiprono",
	}
}

type countingPublisher struct {
	mu    sync.Mutex
	count int
}

func (c *countingPublisher) Publish(context.Context, events.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
	return nil
}

func (c *countingPublisher) Close() error { return nil }

func send(t *testing.T, svc *Service, from, to, text string) *Message {
	t.Helper()

	m, err := svc.Send(context.Background(), from, SendMessageRequest{
		ReceiverID:  to,
		MessageText: text,
	})
	require.NoError(t, err)
	return m
}

func TestService_Send(t *testing.T) {
	t.Parallel()

	pub := &countingPublisher{}
	svc := NewService(newMemoryRepo(testUsers()), pub)

	m := send(t, svc, buyerID, farmerID, "  Are the potatoes still available?  ")
	assert.Equal(t, buyerID, m.SenderID)
	assert.Equal(t, "Are the potatoes still available?", m.MessageText)
	assert.False(t, m.IsRead)
	assert.Equal(t, 1, pub.count)
}

func TestService_Send_Rejects(t *testing.T) {
	t.Parallel()

	svc := NewService(newMemoryRepo(testUsers()), nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		sender  string
		req     SendMessageRequest
		wantErr error
	}{
		{
			name:    "to self",
			sender:  buyerID,
			req:     SendMessageRequest{ReceiverID: buyerID, MessageText: "hi"},
			wantErr: core.ErrInvalidInput,
		},
		{
			name:    "blank text",
			sender:  buyerID,
			req:     SendMessageRequest{ReceiverID: farmerID, MessageText: "   "},
			wantErr: core.ErrInvalidInput,
		},
		{
			name:    "unknown recipient",
			sender:  buyerID,
			req:     SendMessageRequest{ReceiverID: "99999999-0000-0000-0000-000000000009", MessageText: "hi"},
			wantErr: core.ErrNotFound,
		},
		{
			name:    "anonymous",
			req:     SendMessageRequest{ReceiverID: farmerID, MessageText: "hi"},
			wantErr: core.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.Send(ctx, tt.sender, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_Send_OrderContext(t *testing.T) {
	t.Parallel()

	const (
		orderID      = "aaaaaaaa-0000-0000-0000-000000000010"
		missingOrder = "aaaaaaaa-0000-0000-0000-000000000011"
	)

	repo := newMemoryRepo(testUsers())
	repo.orders[orderID] = OrderParties{BuyerID: buyerID, FarmerID: farmerID}
	svc := NewService(repo, nil)
	ctx := context.Background()

	order := orderID
	m, err := svc.Send(ctx, farmerID, SendMessageRequest{
		ReceiverID:  buyerID,
		MessageText: "Your order is packed",
		OrderID:     &order,
	})
	require.NoError(t, err)
	require.NotNil(t, m.OrderID)
	assert.Equal(t, orderID, *m.OrderID)

	tests := []struct {
		name     string
		sender   string
		receiver string
		order    string
	}{
		{name: "outsider about someone else's order", sender: otherID, receiver: farmerID, order: orderID},
		{name: "party writing to an outsider", sender: buyerID, receiver: otherID, order: orderID},
		{name: "missing order", sender: buyerID, receiver: farmerID, order: missingOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := tt.order
			_, err := svc.Send(ctx, tt.sender, SendMessageRequest{
				ReceiverID:  tt.receiver,
				MessageText: "about the order",
				OrderID:     &order,
			})
			assert.ErrorIs(t, err, core.ErrNotFound)
		})
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Len(t, repo.messages, 1)
}

func TestService_ThreadMarksRead(t *testing.T) {
	t.Parallel()

	svc := NewService(newMemoryRepo(testUsers()), nil)
	ctx := context.Background()

	send(t, svc, buyerID, farmerID, "first")
	send(t, svc, farmerID, buyerID, "second")
	send(t, svc, buyerID, farmerID, "third")
	send(t, svc, otherID, farmerID, "unrelated")

	convs, err := svc.Conversations(ctx, farmerID)
	require.NoError(t, err)
	require.Len(t, convs, 2)
	assert.Equal(t, otherID, convs[0].OtherUserID)
	assert.Equal(t, buyerID, convs[1].OtherUserID)
	assert.Equal(t, 2, convs[1].UnreadCount)

	thread, err := svc.Thread(ctx, farmerID, buyerID)
	require.NoError(t, err)
	require.Len(t, thread, 3)
	assert.Equal(t, "first", thread[0].MessageText)
	assert.Equal(t, "Otieno", thread[0].SenderName)
	assert.Equal(t, "third", thread[2].MessageText)
	assert.False(t, thread[0].IsRead)

	again, err := svc.Thread(ctx, farmerID, buyerID)
	require.NoError(t, err)
	assert.True(t, again[0].IsRead)
	assert.True(t, again[2].IsRead)
	assert.False(t, again[1].IsRead, "the caller's own messages stay unread until the buyer opens them")

	convs, err = svc.Conversations(ctx, farmerID)
	require.NoError(t, err)
	assert.Equal(t, 0, convs[1].UnreadCount)
	assert.Equal(t, 1, convs[0].UnreadCount)
}
