package domain

import (
	"context"
	"fmt"
	"math"
	"time"
)

type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

// pending 之后的状态流转由外部系统驱动，这里只提供合法流转表
var orderTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:        {StatusConfirmed, StatusCancelled},
	StatusConfirmed:      {StatusPreparing, StatusCancelled},
	StatusPreparing:      {StatusOutForDelivery},
	StatusOutForDelivery: {StatusDelivered},
}

func (s OrderStatus) CanTransition(to OrderStatus) bool {
	for _, n := range orderTransitions[s] {
		if n == to {
			return true
		}
	}
	return false
}

type PaymentMethod string

const (
	PayCash   PaymentMethod = "cash"
	PayCard   PaymentMethod = "card"
	PayOnline PaymentMethod = "online"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PayCash, PayCard, PayOnline:
		return true
	}
	return false
}

// OrderItem 按值快照：名称/单价在下单时刻拷贝进来，之后目录改价/删菜不影响已成单
type OrderItem struct {
	ID         string  `gorm:"primaryKey;size:36" json:"id"`
	OrderID    string  `gorm:"index;size:36;not null" json:"orderId"`
	MenuItemID *string `gorm:"size:36" json:"menuItemId"` // ad-hoc 行可以没有引用
	Name       string  `gorm:"size:128;not null" json:"name"`
	Price      float64 `gorm:"not null" json:"price"`
	Quantity   int     `gorm:"not null" json:"quantity"` // >= 1

	// 展示用，非权威数据
	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID" json:"menuItem,omitempty"`
}

func (OrderItem) TableName() string { return "order_items" }

// Order 创建后不可变；状态流转是外部协作方的事，本核心不改不删
type Order struct {
	ID              string        `gorm:"primaryKey;size:36" json:"id"`
	UserID          string        `gorm:"index;size:36;not null" json:"userId"`
	RestaurantID    *string       `gorm:"size:36" json:"restaurantId"`
	Restaurant      *Restaurant   `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
	Items           []OrderItem   `gorm:"foreignKey:OrderID" json:"items"`
	TotalPrice      float64       `gorm:"not null" json:"totalPrice"`
	Status          OrderStatus   `gorm:"size:24;not null;default:pending" json:"status"`
	DeliveryAddress string        `gorm:"size:512" json:"deliveryAddress"`
	PaymentMethod   PaymentMethod `gorm:"size:16;not null;default:cash" json:"paymentMethod"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

func (Order) TableName() string { return "orders" }

// ItemsTotal 从行项目重新推导总价
func (o *Order) ItemsTotal() float64 {
	var total float64
	for _, it := range o.Items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

const totalEpsilon = 1e-9

// CheckTotal 总价不变量：TotalPrice == Σ(price × quantity)。
// 下单流程在写库前后各调用一次（写后一次在事务内，基于已落库的行）
func (o *Order) CheckTotal() error {
	if got := o.ItemsTotal(); math.Abs(got-o.TotalPrice) > totalEpsilon {
		return fmt.Errorf("order total %.2f does not match items sum %.2f", o.TotalPrice, got)
	}
	return nil
}

type OrderRepository interface {
	// Create 单事务整单落库，提交前会基于已持久化的行复核总价
	Create(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id string) (*Order, error)
	ListByUser(ctx context.Context, userID string) ([]Order, error)
}
