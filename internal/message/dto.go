// AngelaMos | 2026
// dto.go

package message

import (
	"time"
)

type SendMessageRequest struct {
	ReceiverID  string  `json:"receiver_id"          validate:"required,uuid"`
	MessageText string  `json:"message_text"         validate:"required,min=1,max=5000"`
	ProductID   *string `json:"product_id,omitempty" validate:"omitempty,uuid"`
	OrderID     *string `json:"order_id,omitempty"   validate:"omitempty,uuid"`
}

type MessageResponse struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"sender_id"`
	ReceiverID  string    `json:"receiver_id"`
	MessageText string    `json:"message_text"`
	ProductID   *string   `json:"product_id"`
	OrderID     *string   `json:"order_id"`
	IsRead      bool      `json:"is_read"`
	SenderName  string    `json:"sender_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ConversationResponse struct {
	OtherUserID     string    `json:"other_user_id"`
	OtherUserName   string    `json:"other_user_name"`
	LastMessageTime time.Time `json:"last_message_time"`
	UnreadCount     int       `json:"unread_count"`
}

func ToMessageResponse(m *Message) MessageResponse {
	return MessageResponse{
		ID:          m.ID,
		SenderID:    m.SenderID,
		ReceiverID:  m.ReceiverID,
		MessageText: m.MessageText,
		ProductID:   m.ProductID,
		OrderID:     m.OrderID,
		IsRead:      m.IsRead,
		CreatedAt:   m.CreatedAt,
	}
}

func ToThreadResponse(msgs []ThreadMessage) []MessageResponse {
	out := make([]MessageResponse, 0, len(msgs))
	for i := range msgs {
		resp := ToMessageResponse(&msgs[i].Message)
		resp.SenderName = msgs[i].SenderName
		out = append(out, resp)
	}
	return out
}

func ToConversationResponseList(convs []Conversation) []ConversationResponse {
	out := make([]ConversationResponse, 0, len(convs))
	for _, c := range convs {
		out = append(out, ConversationResponse(c))
	}
	return out
}
