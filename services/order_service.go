package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"tableside/entity"
	"tableside/repository"
)

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	TableRepo *repository.TableRepository
	MenuRepo  *repository.MenuRepository
	RestRepo  *repository.RestaurantRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	tableRepo *repository.TableRepository,
	menuRepo *repository.MenuRepository,
	restRepo *repository.RestaurantRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, TableRepo: tableRepo, MenuRepo: menuRepo, RestRepo: restRepo}
}

// ----- DTOs from controllers -----

type OrderChoiceIn struct {
	MenuItemOptionID uint `json:"menuItemOptionId"`
	OptionChoiceID   uint `json:"optionChoiceId"`
}

type OrderLineIn struct {
	MenuItemID uint            `json:"menuItemId" binding:"required"`
	Quantity   int             `json:"quantity" binding:"required,min=1"`
	Notes      string          `json:"notes"`
	Choices    []OrderChoiceIn `json:"choices"`
}

type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CreateOrderReq struct {
	RestaurantID uint          `json:"restaurantId" binding:"required"`
	TableID      uint          `json:"tableId" binding:"required"`
	Items        []OrderLineIn `json:"items" binding:"required,min=1"`
	Customer     *CustomerInfo `json:"customer"`
	Notes        string        `json:"notes"`
}

// Create validates the request, snapshots prices, writes the order with its
// lines and recorded choices, and marks the table OCCUPIED — one transaction,
// no partial writes on failure.
//
// Selected choices that do not belong to one of the item's own option groups
// are silently skipped rather than rejected. That mirrors the storefront's
// historical behavior; tests pin it down.
func (s *OrderService) Create(userID *uint, req *CreateOrderReq) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	table, err := s.TableRepo.FindForRestaurant(req.TableID, req.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}

	type lineChoice struct {
		optionID uint
		choiceID uint
		delta    int64
	}
	type line struct {
		menuItemID uint
		qty        int
		notes      string
		unitPrice  int64
		choices    []lineChoice
	}

	var total int64
	lines := make([]line, 0, len(req.Items))

	for _, in := range req.Items {
		if in.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		item, err := s.MenuRepo.FindWithOptions(in.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrMenuItemNotFound
			}
			return nil, err
		}
		if item.RestaurantID != req.RestaurantID {
			return nil, ErrMenuItemNotFound
		}

		unit := item.Price
		choices := make([]lineChoice, 0, len(in.Choices))
		for _, sel := range in.Choices {
			choice, ok := resolveChoice(item, sel.MenuItemOptionID, sel.OptionChoiceID)
			if !ok {
				continue // not a valid option on this item; skip
			}
			unit += choice.PriceAdjustment
			choices = append(choices, lineChoice{
				optionID: sel.MenuItemOptionID,
				choiceID: sel.OptionChoiceID,
				delta:    choice.PriceAdjustment,
			})
		}

		total += unit * int64(in.Quantity)
		lines = append(lines, line{
			menuItemID: item.ID,
			qty:        in.Quantity,
			notes:      in.Notes,
			unitPrice:  unit,
			choices:    choices,
		})
	}

	notes := req.Notes
	if (userID == nil || *userID == 0) && req.Customer != nil {
		guest := guestNote(req.Customer)
		if notes != "" {
			notes = guest + " | " + notes
		} else {
			notes = guest
		}
	}
	var uid *uint
	if userID != nil && *userID != 0 {
		uid = userID
	}

	var created *entity.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		tableID := table.ID
		order := entity.Order{
			Status:       entity.OrderStatusNew,
			TotalAmount:  total,
			Notes:        notes,
			RestaurantID: req.RestaurantID,
			TableID:      &tableID,
			UserID:       uid,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, l := range lines {
			oi := entity.OrderItem{
				Quantity:   l.qty,
				UnitPrice:  l.unitPrice,
				LineTotal:  l.unitPrice * int64(l.qty),
				Notes:      l.notes,
				Status:     entity.ItemStatusNew,
				OrderID:    order.ID,
				MenuItemID: l.menuItemID,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			for _, ch := range l.choices {
				oic := entity.OrderItemChoice{
					OrderItemID:      oi.ID,
					MenuItemOptionID: ch.optionID,
					OptionChoiceID:   ch.choiceID,
					PriceAdjustment:  ch.delta,
				}
				if err := s.Repo.CreateOrderItemChoice(tx, &oic); err != nil {
					return err
				}
			}
		}

		if err := s.TableRepo.UpdateStatus(tx, table.ID, entity.TableStatusOccupied); err != nil {
			return err
		}

		created = &order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetOrderWithItems(created.ID)
}

// resolveChoice checks the selection against the item's own option groups.
func resolveChoice(item *entity.MenuItem, optionID, choiceID uint) (*entity.OptionChoice, bool) {
	for i := range item.Options {
		opt := &item.Options[i]
		if opt.ID != optionID {
			continue
		}
		for j := range opt.Choices {
			if opt.Choices[j].ID == choiceID {
				return &opt.Choices[j], true
			}
		}
	}
	return nil, false
}

func guestNote(ci *CustomerInfo) string {
	name := strings.TrimSpace(ci.Name)
	email := strings.TrimSpace(ci.Email)
	switch {
	case name != "" && email != "":
		return fmt.Sprintf("guest: %s <%s>", name, email)
	case name != "":
		return "guest: " + name
	case email != "":
		return "guest: <" + email + ">"
	default:
		return "guest"
	}
}

// ----- Read side -----

// ensureCanManage gates console access to a restaurant's orders: admins see
// everything, staff only the restaurants they own.
func (s *OrderService) ensureCanManage(userID uint, role string, restID uint) error {
	if role == "admin" {
		return nil
	}
	ok, err := s.RestRepo.IsOwnedBy(restID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return nil
}

// Detail is the storefront read: no ownership check, callers gate by table token.
func (s *OrderService) Detail(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderWithItems(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

// DetailForRestaurant is the console read: the order must belong to the given
// restaurant and the caller must be allowed to manage it.
func (s *OrderService) DetailForRestaurant(userID uint, role string, restID, orderID uint) (*entity.Order, error) {
	if err := s.ensureCanManage(userID, role, restID); err != nil {
		return nil, err
	}
	if _, err := s.Repo.GetOrderForRestaurant(restID, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Repo.GetOrderWithItems(orderID)
}

type OrderListOut struct {
	Items []repository.OrderSummary `json:"items"`
	Total int64                     `json:"total"`
	Page  int                       `json:"page"`
	Limit int                       `json:"limit"`
}

func (s *OrderService) ListForRestaurant(userID uint, role string, restID uint, status *entity.OrderStatus, page, limit int) (*OrderListOut, error) {
	if err := s.ensureCanManage(userID, role, restID); err != nil {
		return nil, err
	}
	ok, err := s.RestRepo.Exists(restID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	items, total, err := s.Repo.ListForRestaurant(restID, status, page, limit)
	if err != nil {
		return nil, err
	}
	return &OrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}
