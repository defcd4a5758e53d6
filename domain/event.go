package domain

import (
	"fmt"
	"time"

	"github.com/x-xyz/settlement/base/ctx"
)

type EventType string

const (
	EventTypeRegisterCollection EventType = "register_collection"
	EventTypeUpdateCollection   EventType = "update_collection"
	EventTypeUpdateSale         EventType = "update_sale"
	EventTypeRemoveSale         EventType = "remove_sale"
	EventTypeUpdateTakerFee     EventType = "update_taker_fee"
	EventTypeBuy                EventType = "buy"
	EventTypeProposeOwner       EventType = "propose_owner"
	EventTypeAcceptOwner        EventType = "accept_owner"
	EventTypeRenounceOwner      EventType = "renounce_owner"
)

type EventAttribute struct {
	Key   string `json:"key" bson:"key"`
	Value string `json:"value" bson:"value"`
}

// Event is the structured record emitted by every mutating operation.
// Optional fields are rendered as the literal "null", never omitted.
type Event struct {
	Type       EventType        `json:"type" bson:"type"`
	Attributes []EventAttribute `json:"attributes" bson:"attributes"`
	Time       time.Time        `json:"time" bson:"time"`
}

func NewEvent(typ EventType) *Event {
	return &Event{Type: typ, Time: time.Now().UTC()}
}

func (e *Event) AddAttribute(key, value string) *Event {
	e.Attributes = append(e.Attributes, EventAttribute{Key: key, Value: value})
	return e
}

// AddNullableUint renders an absent value as "null" explicitly
func (e *Event) AddNullableUint(key string, value *uint64) *Event {
	if value == nil {
		return e.AddAttribute(key, "null")
	}
	return e.AddAttribute(key, fmt.Sprintf("%d", *value))
}

// AddNullableAddress renders an absent address as "null" explicitly
func (e *Event) AddNullableAddress(key string, value *Address) *Event {
	if value == nil {
		return e.AddAttribute(key, "null")
	}
	return e.AddAttribute(key, string(*value))
}

type EventRepo interface {
	Create(ctx.Ctx, *Event) error
}
