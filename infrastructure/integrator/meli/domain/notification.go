package melidomain

import (
	"strconv"
	"strings"

	"github.com/valyala/fastjson"
)

const TopicOrders = "orders"

// Notification é o corpo enviado pelo Mercado Libre no webhook
type Notification struct {
	ID       int64
	Topic    string
	Resource string
	UserID   int64
}

// ParseNotification lê o payload sem exigir tipos fixos: id e user_id chegam como número ou string
func ParseNotification(body []byte) (*Notification, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(body)
	if err != nil {
		return nil, err
	}

	return &Notification{
		ID:       flexInt(v.Get("id")),
		Topic:    string(v.GetStringBytes("topic")),
		Resource: string(v.GetStringBytes("resource")),
		UserID:   flexInt(v.Get("user_id")),
	}, nil
}

// OrderID usa o id do payload e, na falta dele, o último segmento de resource (/orders/123)
func (n *Notification) OrderID() int64 {
	if n.ID > 0 {
		return n.ID
	}

	resource := strings.TrimRight(n.Resource, "/")
	if resource == "" {
		return 0
	}

	segment := resource[strings.LastIndex(resource, "/")+1:]
	id, err := strconv.ParseInt(segment, 10, 64)
	if err != nil || id <= 0 {
		return 0
	}

	return id
}

func (n *Notification) IsOrder() bool {
	return n.Topic == TopicOrders
}
