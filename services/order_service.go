package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/entity"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/payments"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/pkg/apperr"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/repository"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository

	Gateway payments.Gateway
	BaseURL string
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository, gw payments.Gateway, baseURL string) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, Gateway: gw, BaseURL: baseURL}
}

type CheckoutIn struct {
	Address       AddressIn `json:"address" binding:"required"`
	PaymentMethod string    `json:"paymentMethod" binding:"required,oneof=cod card"`
}

type CheckoutOut struct {
	OrderID     uint    `json:"orderId"`
	TotalAmount float64 `json:"totalAmount"`
	Status      string  `json:"status"`
	PaymentURL  string  `json:"paymentUrl,omitempty"`
}

// Checkout snapshots the diner's cart into a new pending order. Order
// creation, line copying and cart clearing run in one transaction, so a
// crash can never leave both a placed order and a stale cart.
func (s *OrderService) Checkout(ctx context.Context, dinerID uint, in *CheckoutIn) (*CheckoutOut, error) {
	cart, err := s.CartRepo.GetCartWithItems(dinerID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, apperr.ErrEmptyCart
	}

	addrType := NormalizeAddressType(in.Address.Type)
	if !entity.ValidAddressType(addrType) {
		return nil, apperr.Validationf("unknown address type %q", in.Address.Type)
	}

	// trust the cart's stored line totals; they were computed at add time
	var total float64
	items := make([]entity.OrderItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		total += it.LineTotal
		mods := make([]entity.OrderItemModifier, 0, len(it.Modifiers))
		for _, m := range it.Modifiers {
			mods = append(mods, entity.OrderItemModifier{
				GroupTitle: m.GroupTitle,
				ItemTitle:  m.ItemTitle,
				Price:      m.Price,
			})
		}
		items = append(items, entity.OrderItem{
			DishID:              it.DishID,
			ChefID:              it.ChefID,
			Name:                it.Name,
			Photo:               it.Photo,
			BasePrice:           it.BasePrice,
			Quantity:            it.Quantity,
			LineTotal:           it.LineTotal,
			SpecialInstructions: it.SpecialInstructions,
			Modifiers:           mods,
		})
	}

	order := entity.Order{
		DinerID:     dinerID,
		Status:      entity.OrderPending,
		TotalAmount: total,
		Address: entity.OrderAddress{
			Type:           addrType,
			BuildingNumber: in.Address.BuildingNumber,
			Street:         in.Address.Street,
			City:           in.Address.City,
			State:          in.Address.State,
			PostalCode:     in.Address.PostalCode,
			Country:        in.Address.Country,
			Phone:          in.Address.Phone,
		},
		PaymentMethod: in.PaymentMethod,
		Items:         items,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}
		// cleared last, inside the same transaction as the order write
		return s.CartRepo.ClearCart(tx, dinerID)
	})
	if err != nil {
		return nil, err
	}

	out := &CheckoutOut{OrderID: order.ID, TotalAmount: order.TotalAmount, Status: order.Status}

	if in.PaymentMethod == entity.PaymentCard {
		lineItems := make([]payments.LineItem, 0, len(order.Items))
		for _, it := range order.Items {
			lineItems = append(lineItems, payments.LineItem{
				Name:       it.Name,
				UnitAmount: it.LineTotal / float64(it.Quantity),
				Quantity:   int64(it.Quantity),
			})
		}
		session, err := s.Gateway.CreateCheckoutSession(ctx, lineItems,
			s.BaseURL+"/payments/success?session_id={CHECKOUT_SESSION_ID}",
			s.BaseURL+"/payments/cancel",
			map[string]string{"kind": "order", "id": fmt.Sprint(order.ID)},
		)
		if err != nil {
			// the order stays; the diner retries payment from the order page
			return nil, err
		}
		if err := s.Repo.SetSessionID(order.ID, session.ID); err != nil {
			return nil, err
		}
		out.PaymentURL = session.URL
	}

	return out, nil
}

func (s *OrderService) ListForDiner(dinerID uint) ([]entity.Order, error) {
	return s.Repo.ListForDiner(dinerID)
}

func (s *OrderService) DetailForDiner(dinerID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetForDiner(dinerID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("order %d", orderID)
		}
		return nil, err
	}
	return o, nil
}

// ChefOrderView is one order as a chef sees it: only their own line items,
// with a subtotal over just those lines.
type ChefOrderView struct {
	OrderID   uint               `json:"orderId"`
	Status    string             `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
	Address   entity.OrderAddress `json:"address"`
	Items     []entity.OrderItem `json:"items"`
	Subtotal  float64            `json:"subtotal"`
}

func (s *OrderService) ListForChef(chefID uint) ([]ChefOrderView, error) {
	orders, err := s.Repo.ListForChef(chefID)
	if err != nil {
		return nil, err
	}
	out := make([]ChefOrderView, 0, len(orders))
	for _, o := range orders {
		view := ChefOrderView{OrderID: o.ID, Status: o.Status, CreatedAt: o.CreatedAt, Address: o.Address}
		for _, it := range o.Items {
			if it.ChefID != chefID {
				continue
			}
			view.Items = append(view.Items, it)
			view.Subtotal += it.LineTotal
		}
		out = append(out, view)
	}
	return out, nil
}

// AdvanceStatus moves an order along the fulfillment path. Only a chef
// owning at least one line item may advance it, and only along the
// transition table.
func (s *OrderService) AdvanceStatus(chefID, orderID uint, newStatus string) error {
	if !entity.ValidOrderStatus(newStatus) {
		return apperr.Validationf("unknown order status %q", newStatus)
	}
	o, err := s.getOrder(orderID)
	if err != nil {
		return err
	}
	owns, err := s.Repo.ChefOwnsItem(orderID, chefID)
	if err != nil {
		return err
	}
	if !owns {
		return apperr.Forbiddenf("order %d has none of your dishes", orderID)
	}
	if !canTransitionOrder(o.Status, newStatus) {
		return apperr.Validationf("order cannot move from %q to %q", o.Status, newStatus)
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, orderID, o.Status, newStatus)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.Validationf("order status changed concurrently, retry")
		}
		return nil
	})
}

// Cancel sets the order to cancelled. The diner may cancel their own order,
// a chef any order carrying their dishes; terminal orders cannot be
// cancelled.
func (s *OrderService) Cancel(actorID uint, role string, orderID uint) error {
	o, err := s.getOrder(orderID)
	if err != nil {
		return err
	}
	if err := s.authorize(o, actorID, role); err != nil {
		return err
	}
	if !canTransitionOrder(o.Status, entity.OrderCancelled) {
		return apperr.Validationf("a %s order cannot be cancelled", o.Status)
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, orderID, o.Status, entity.OrderCancelled)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.Validationf("order status changed concurrently, retry")
		}
		return nil
	})
}

// SoftDelete hides the order from one party's list views only.
func (s *OrderService) SoftDelete(actorID uint, role string, orderID uint) error {
	o, err := s.getOrder(orderID)
	if err != nil {
		return err
	}
	if err := s.authorize(o, actorID, role); err != nil {
		return err
	}
	column := "is_deleted_by_diner"
	if role == entity.RoleChef {
		column = "is_deleted_by_chef"
	}
	return s.Repo.SetDeletedFlag(orderID, column)
}

// HardDelete permanently removes the order; owning diner only.
func (s *OrderService) HardDelete(dinerID, orderID uint) error {
	if _, err := s.Repo.GetForDiner(dinerID, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("order %d", orderID)
		}
		return err
	}
	return s.Repo.HardDelete(orderID)
}

// MarkPaidBySession records gateway confirmation; idempotent per session.
func (s *OrderService) MarkPaidBySession(sessionID string) error {
	_, err := s.Repo.MarkPaidBySession(sessionID, time.Now())
	return err
}

func (s *OrderService) getOrder(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.Get(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("order %d", orderID)
		}
		return nil, err
	}
	return o, nil
}

func (s *OrderService) authorize(o *entity.Order, actorID uint, role string) error {
	switch role {
	case entity.RoleDiner:
		if o.DinerID != actorID {
			return apperr.Forbiddenf("order %d is not yours", o.ID)
		}
	case entity.RoleChef:
		owns, err := s.Repo.ChefOwnsItem(o.ID, actorID)
		if err != nil {
			return err
		}
		if !owns {
			return apperr.Forbiddenf("order %d has none of your dishes", o.ID)
		}
	default:
		return apperr.ErrForbidden
	}
	return nil
}
