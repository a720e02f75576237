package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// IsValid reports membership in the enumerated set. Transition legality
// between statuses is intentionally not checked; any enumerated value is
// accepted regardless of the current one.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CartItem is an ordered service owned by the user identified by Email.
type CartItem struct {
	Id          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	ServiceId   string             `bson:"serviceId,omitempty" json:"serviceId,omitempty"`
	ServiceName string             `bson:"serviceName,omitempty" json:"serviceName,omitempty"`
	Price       float64            `bson:"price,omitempty" json:"price,omitempty"`
	Status      OrderStatus        `bson:"status" json:"status"`
}
