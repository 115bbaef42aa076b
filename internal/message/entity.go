// AngelaMos | 2026
// entity.go

package message

import (
	"time"
)

type Message struct {
	ID          string    `db:"id"`
	SenderID    string    `db:"sender_id"`
	ReceiverID  string    `db:"receiver_id"`
	MessageText string    `db:"message_text"`
	ProductID   *string   `db:"product_id"`
	OrderID     *string   `db:"order_id"`
	IsRead      bool      `db:"is_read"`
	CreatedAt   time.Time `db:"created_at"`
}

// ThreadMessage is a message annotated with its sender's name.
type ThreadMessage struct {
	Message
	SenderName string `db:"sender_name"`
}

// Conversation summarises the messages exchanged with one counterparty.
type Conversation struct {
	OtherUserID     string    `db:"other_user_id"`
	OtherUserName   string    `db:"other_user_name"`
	LastMessageTime time.Time `db:"last_message_time"`
	UnreadCount     int       `db:"unread_count"`
}

// OrderParties are the only users who may exchange messages about an order.
type OrderParties struct {
	BuyerID  string `db:"buyer_id"`
	FarmerID string `db:"farmer_id"`
}

func (p *OrderParties) Between(a, b string) bool {
	return (p.BuyerID == a && p.FarmerID == b) || (p.BuyerID == b && p.FarmerID == a)
}
