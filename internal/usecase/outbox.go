package usecase

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	"github.com/schnuffelll/shop-backend/internal/domain"
	"github.com/schnuffelll/shop-backend/pkg/e"
)

// OutboxStatus — статус события в таблице outbox_events
type OutboxStatus string

const (
	Pending    OutboxStatus = "PENDING"
	Processing OutboxStatus = "PROCESSING"
	Processed  OutboxStatus = "PROCESSED"
)

// OutboxEventType — тип доменного события
type OutboxEventType string

const (
	OrderCreated       OutboxEventType = "order.created"
	OrderStatusChanged OutboxEventType = "order.status_changed"
)

// OutboxEvent — запись transactional outbox. Создаётся в одной транзакции
// с заказом и асинхронно публикуется в Kafka воркером.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	OrderNumber string
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// orderEventPayload — JSON-представление заказа в событии.
type orderEventPayload struct {
	EventID     string `json:"event_id"`
	EventType   string `json:"event_type"`
	Timestamp   int64  `json:"timestamp"`
	OrderNumber string `json:"order_number"`
	UserID      string `json:"user_id"`
	Status      string `json:"status"`
	Subtotal    string `json:"subtotal"`
	Discount    string `json:"discount"`
	TotalAmount string `json:"total_amount"`
	ItemCount   int    `json:"item_count"`
}

// NewOrderEvent собирает outbox-событие по заказу.
func NewOrderEvent(eventType OutboxEventType, order *domain.Order) (*OutboxEvent, error) {
	eventID := uuid.NewString()

	payload, err := json.Marshal(orderEventPayload{
		EventID:     eventID,
		EventType:   string(eventType),
		Timestamp:   time.Now().UnixNano(),
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID,
		Status:      string(order.Status),
		Subtotal:    order.Subtotal.String(),
		Discount:    order.Discount.String(),
		TotalAmount: order.TotalAmount.String(),
		ItemCount:   len(order.Items),
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &OutboxEvent{
		EventID:     eventID,
		EventType:   eventType,
		OrderNumber: order.OrderNumber,
		Payload:     payload,
		Status:      Pending,
		CreatedAt:   time.Now(),
	}, nil
}
