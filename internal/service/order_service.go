package service

import (
	"context"
	"fmt"

	"food-order-api/internal/core/apperr"
	"food-order-api/internal/domain"
	"food-order-api/pkg/utils"
)

// ProposedItem 客户端提交的一行。价格/名称只在没有 menuItem 引用时才被采信，
// 否则一律以目录为准——服务端定价，客户端改不了
type ProposedItem struct {
	MenuItemID string  `json:"menuItem"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

type PlaceOrderInput struct {
	Items           []ProposedItem `json:"items"`
	Restaurant      string         `json:"restaurant"`
	DeliveryAddress string         `json:"deliveryAddress"`
	PaymentMethod   string         `json:"paymentMethod"`
}

// SnapshotResolver 下单时刻的目录快照读取
type SnapshotResolver interface {
	Resolve(ctx context.Context, menuItemID string) (*domain.ItemSnapshot, error)
}

type OrderService struct {
	orders  domain.OrderRepository
	catalog SnapshotResolver
}

func NewOrderService(orders domain.OrderRepository, catalog SnapshotResolver) *OrderService {
	return &OrderService{orders: orders, catalog: catalog}
}

// Place 下单装配流程。全有或全无：任何一行失败，整单不落库。
// 行按输入顺序逐个处理，不并发
func (s *OrderService) Place(ctx context.Context, userID string, in PlaceOrderInput) (*domain.Order, error) {
	if len(in.Items) == 0 {
		return nil, apperr.Invalid("order must contain at least one item")
	}

	lines := make([]domain.OrderItem, 0, len(in.Items))
	var total float64
	for _, item := range in.Items {
		var (
			ref   *string
			name  string
			price float64
		)
		if item.MenuItemID != "" {
			snap, err := s.catalog.Resolve(ctx, item.MenuItemID)
			if err != nil {
				return nil, apperr.Internal("resolve menu item failed", err)
			}
			if snap == nil {
				return nil, apperr.NotFound(fmt.Sprintf("menu item not found: %s", item.MenuItemID))
			}
			id := snap.ID
			ref, name, price = &id, snap.Name, snap.Price
		} else {
			// ad-hoc / 历史行：采信客户端的名称/价格
			name, price = item.Name, item.Price
			if name == "" {
				name = "Unknown Item"
			}
		}
		if price < 0 {
			return nil, apperr.Invalid(fmt.Sprintf("invalid price for item: %s", name))
		}
		qty := item.Quantity
		if qty < 1 {
			qty = 1 // 沿用既有行为：缺省/零/负数量一律按 1，上限不设
		}
		lines = append(lines, domain.OrderItem{
			ID:         utils.NewID(),
			MenuItemID: ref,
			Name:       name,
			Price:      price,
			Quantity:   qty,
		})
		total += price * float64(qty)
	}

	pm := domain.PaymentMethod(in.PaymentMethod)
	if pm == "" {
		pm = domain.PayCash
	}
	if !pm.Valid() {
		return nil, apperr.Invalid(fmt.Sprintf("invalid payment method: %s", in.PaymentMethod))
	}
	var restRef *string
	if in.Restaurant != "" {
		restRef = &in.Restaurant
	}

	o := &domain.Order{
		ID:              utils.NewID(),
		UserID:          userID,
		RestaurantID:    restRef,
		Items:           lines,
		TotalPrice:      total,
		Status:          domain.StatusPending,
		DeliveryAddress: in.DeliveryAddress,
		PaymentMethod:   pm,
	}
	// 写前校验一次；写后 repo 在事务内基于落库行再校验一次
	if err := o.CheckTotal(); err != nil {
		return nil, apperr.Internal("order total invariant violated", err)
	}
	if err := s.orders.Create(ctx, o); err != nil {
		return nil, apperr.Internal("create order failed", err)
	}

	// 带上餐厅/菜品展示字段返回
	populated, err := s.orders.FindByID(ctx, o.ID)
	if err != nil || populated == nil {
		return o, nil
	}
	return populated, nil
}

// MyOrders 用户订单流水，按创建时间倒序。只读，无更新/删除入口
func (s *OrderService) MyOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("list orders failed", err)
	}
	return orders, nil
}
