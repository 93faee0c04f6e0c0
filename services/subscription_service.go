package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/entity"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/payments"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/pkg/apperr"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/pricing"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/repository"
	"gorm.io/gorm"
)

type SubscriptionService struct {
	Repo     *repository.SubscriptionRepository
	PlanRepo *repository.MealPlanRepository
	UserRepo *repository.UserRepository

	Gateway payments.Gateway
	BaseURL string
}

func NewSubscriptionService(repo *repository.SubscriptionRepository, planRepo *repository.MealPlanRepository, userRepo *repository.UserRepository, gw payments.Gateway, baseURL string) *SubscriptionService {
	return &SubscriptionService{Repo: repo, PlanRepo: planRepo, UserRepo: userRepo, Gateway: gw, BaseURL: baseURL}
}

type SubscribeIn struct {
	MealPlanID   uint       `json:"mealPlanId" binding:"required"`
	AddressID    uint       `json:"addressId" binding:"required"`
	Weeks        int        `json:"weeks" binding:"required,min=1"`
	TotalPrice   float64    `json:"totalPrice" binding:"required"`
	DeliveryTime *time.Time `json:"deliveryTime"`
}

type SubscribeOut struct {
	Subscription *entity.Subscription `json:"subscription"`
	PaymentURL   string               `json:"paymentUrl,omitempty"`
}

// planTotalFromSlots reprices a stored plan from its slot snapshots.
func planTotalFromSlots(slots []entity.MealPlanSlot) float64 {
	priced := make([]pricing.Slot, 0, len(slots))
	for _, sl := range slots {
		mods := make([]pricing.ModifierItem, 0, len(sl.Modifiers))
		for _, m := range sl.Modifiers {
			mods = append(mods, pricing.ModifierItem{Title: m.ItemTitle, Price: m.Price})
		}
		priced = append(priced, pricing.Slot{
			DishPrice: sl.DishPrice,
			Modifiers: mods,
			Quantity:  sl.Quantity,
			Days:      sl.Days,
		})
	}
	return pricing.PlanTotal(priced)
}

// Subscribe creates a pending subscription at the server-computed price and
// opens a payment session for it. A gateway failure keeps the pending row
// and surfaces upstream; the diner retries, the webhook activates.
func (s *SubscriptionService) Subscribe(ctx context.Context, dinerID uint, in *SubscribeIn) (*SubscribeOut, error) {
	plan, err := s.PlanRepo.GetWithSlots(in.MealPlanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("meal plan %d", in.MealPlanID)
		}
		return nil, err
	}

	if _, err := s.UserRepo.GetAddress(dinerID, in.AddressID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("address %d", in.AddressID)
		}
		return nil, err
	}

	planTotal := planTotalFromSlots(plan.Slots)
	total := pricing.SubscriptionTotal(planTotal, in.Weeks)
	if math.Abs(in.TotalPrice-total) > priceTolerance {
		return nil, apperr.Validationf("totalPrice %.2f disagrees with computed %.2f", in.TotalPrice, total)
	}

	deliveryTime := time.Now()
	if in.DeliveryTime != nil {
		deliveryTime = *in.DeliveryTime
	}

	sub := &entity.Subscription{
		DinerID:      dinerID,
		MealPlanID:   plan.ID,
		ChefID:       plan.ChefID,
		AddressID:    in.AddressID,
		Weeks:        in.Weeks,
		TotalPrice:   total,
		DeliveryTime: deliveryTime,
		Status:       entity.SubscriptionPending,
	}
	if err := s.Repo.Create(sub); err != nil {
		return nil, err
	}

	session, err := s.Gateway.CreateCheckoutSession(ctx,
		[]payments.LineItem{{
			Name:       fmt.Sprintf("%s (weekly meal plan)", plan.Name),
			UnitAmount: planTotal,
			Quantity:   int64(in.Weeks),
		}},
		s.BaseURL+"/payments/success?session_id={CHECKOUT_SESSION_ID}",
		s.BaseURL+"/payments/cancel",
		map[string]string{"kind": "subscription", "id": fmt.Sprint(sub.ID)},
	)
	if err != nil {
		// pending row stays; no rollback, the user retries
		return nil, err
	}
	if err := s.Repo.SetSessionID(sub.ID, session.ID); err != nil {
		return nil, err
	}
	sub.PaymentSessionID = session.ID

	return &SubscribeOut{Subscription: sub, PaymentURL: session.URL}, nil
}

func (s *SubscriptionService) ListForDiner(dinerID uint) ([]entity.Subscription, error) {
	return s.Repo.ListForDiner(dinerID)
}

func (s *SubscriptionService) ListForChef(chefID uint) ([]entity.Subscription, error) {
	return s.Repo.ListForChef(chefID)
}

// UpdateStatus lets the chef owning the subscribed plan move the status
// along the transition table.
func (s *SubscriptionService) UpdateStatus(chefID, subID uint, newStatus string) error {
	if !entity.ValidSubscriptionStatus(newStatus) {
		return apperr.Validationf("unknown subscription status %q", newStatus)
	}
	sub, err := s.get(subID)
	if err != nil {
		return err
	}
	if sub.ChefID != chefID {
		return apperr.Forbiddenf("subscription %d is not on your meal plan", subID)
	}
	if !canTransitionSubscription(sub.Status, newStatus) {
		return apperr.Validationf("subscription cannot move from %q to %q", sub.Status, newStatus)
	}
	affected, err := s.Repo.UpdateStatusGuard(subID, sub.Status, newStatus)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.Validationf("subscription status changed concurrently, retry")
	}
	return nil
}

// Cancel is a status change, not a deletion; the row is kept as history.
func (s *SubscriptionService) Cancel(dinerID, subID uint) error {
	sub, err := s.get(subID)
	if err != nil {
		return err
	}
	if sub.DinerID != dinerID {
		return apperr.Forbiddenf("subscription %d is not yours", subID)
	}
	if !canTransitionSubscription(sub.Status, entity.SubscriptionCancelled) {
		return apperr.Validationf("a %s subscription cannot be cancelled", sub.Status)
	}
	affected, err := s.Repo.UpdateStatusGuard(subID, sub.Status, entity.SubscriptionCancelled)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.Validationf("subscription status changed concurrently, retry")
	}
	return nil
}

// ActivateBySession flips pending to active on gateway confirmation.
func (s *SubscriptionService) ActivateBySession(sessionID string) error {
	_, err := s.Repo.ActivateBySession(sessionID)
	return err
}

func (s *SubscriptionService) get(subID uint) (*entity.Subscription, error) {
	sub, err := s.Repo.Get(subID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("subscription %d", subID)
		}
		return nil, err
	}
	return sub, nil
}
