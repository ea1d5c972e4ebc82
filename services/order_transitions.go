package services

import (
	"errors"

	"gorm.io/gorm"

	"tableside/entity"
)

// itemTransitions is the full transition table for order item statuses.
// Anything not listed is rejected. COMPLETED and CANCELLED are terminal.
var itemTransitions = map[entity.OrderItemStatus][]entity.OrderItemStatus{
	entity.ItemStatusNew:       {entity.ItemStatusPreparing, entity.ItemStatusCancelled},
	entity.ItemStatusPreparing: {entity.ItemStatusReady, entity.ItemStatusCancelled},
	entity.ItemStatusReady:     {entity.ItemStatusDelivered, entity.ItemStatusCancelled},
	entity.ItemStatusDelivered: {entity.ItemStatusCompleted},
	entity.ItemStatusCompleted: {},
	entity.ItemStatusCancelled: {},
}

// orderStatusForItems maps a uniform item status to the order status.
// READY and DELIVERED deliberately collapse into PREPARING: the order stays
// "in preparation" until every line is closed out. Do not "fix" this mapping
// without a product decision; tests pin it.
var orderStatusForItems = map[entity.OrderItemStatus]entity.OrderStatus{
	entity.ItemStatusNew:       entity.OrderStatusNew,
	entity.ItemStatusPreparing: entity.OrderStatusPreparing,
	entity.ItemStatusReady:     entity.OrderStatusPreparing,
	entity.ItemStatusDelivered: entity.OrderStatusPreparing,
	entity.ItemStatusCompleted: entity.OrderStatusCompleted,
	entity.ItemStatusCancelled: entity.OrderStatusCancelled,
}

func transitionAllowed(from, to entity.OrderItemStatus) bool {
	for _, t := range itemTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// AdvanceItemStatus moves one order item to the requested status and applies
// the side effects in the same transaction: if every sibling line now shares
// one status the order status is derived from it, and when that closes the
// order the table is freed if no other active order holds it.
//
// The transition is validated against the persisted status, never a
// client-declared one, and the write itself is guarded on that status so a
// concurrent update surfaces as ErrInvalidTransition instead of clobbering.
func (s *OrderService) AdvanceItemStatus(itemID uint, target entity.OrderItemStatus) (*entity.OrderItem, error) {
	if _, known := itemTransitions[target]; !known {
		return nil, ErrInvalidTransition
	}

	var out *entity.OrderItem
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		item, err := s.Repo.GetItemTx(tx, itemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if !transitionAllowed(item.Status, target) {
			return ErrInvalidTransition
		}
		affected, err := s.Repo.UpdateItemStatusGuard(tx, item.ID, item.Status, target)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		item.Status = target

		order, err := s.Repo.GetOrderTx(tx, item.OrderID)
		if err != nil {
			return err
		}

		uniform, st, err := s.uniformItemStatus(tx, order.ID)
		if err != nil {
			return err
		}
		orderClosed := false
		if uniform {
			mapped := orderStatusForItems[st]
			if mapped != order.Status {
				if err := s.Repo.UpdateOrderStatus(tx, order.ID, mapped); err != nil {
					return err
				}
				orderClosed = mapped.Terminal()
				order.Status = mapped
			}
		}

		if target.Terminal() && orderClosed && order.TableID != nil {
			if _, err := s.TableRepo.ReleaseIfIdle(tx, *order.TableID, order.ID); err != nil {
				return err
			}
		}

		out = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AdvanceItemStatusOwned is the console entry point for AdvanceItemStatus:
// it resolves the item's restaurant first and rejects callers who may not
// manage it.
func (s *OrderService) AdvanceItemStatusOwned(userID uint, role string, itemID uint, target entity.OrderItemStatus) (*entity.OrderItem, error) {
	item, err := s.Repo.GetItem(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	order, err := s.Repo.GetOrder(item.OrderID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureCanManage(userID, role, order.RestaurantID); err != nil {
		return nil, err
	}
	return s.AdvanceItemStatus(itemID, target)
}

// uniformItemStatus reloads all lines of the order inside the transaction and
// reports whether they share a single status.
func (s *OrderService) uniformItemStatus(tx *gorm.DB, orderID uint) (bool, entity.OrderItemStatus, error) {
	items, err := s.Repo.GetItemsForOrder(tx, orderID)
	if err != nil {
		return false, "", err
	}
	if len(items) == 0 {
		return false, "", nil
	}
	st := items[0].Status
	for _, it := range items[1:] {
		if it.Status != st {
			return false, "", nil
		}
	}
	return true, st, nil
}
