package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/entity"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/pkg/apperr"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/repository"
	"gorm.io/gorm"
)

func newSubscriptionService(db *gorm.DB, gw *fakeGateway) *SubscriptionService {
	return NewSubscriptionService(
		repository.NewSubscriptionRepository(db),
		repository.NewMealPlanRepository(db),
		repository.NewUserRepository(db),
		gw, "http://localhost:8000",
	)
}

// seedPlan builds a 36.00/week plan (12.00 dish, one dinner slot, three days).
func seedPlan(t *testing.T, db *gorm.DB, chefID uint) *entity.MealPlan {
	t.Helper()
	dish := seedDish(t, db, chefID)
	ids := itemIDs(dish)
	plan, err := newMealPlanService(db).Create(chefID, &MealPlanIn{
		Name: "Weekday Dinners",
		Slots: []SlotIn{{
			Slot:       entity.SlotDinner,
			DishID:     dish.ID,
			Quantity:   1,
			Days:       []string{"Monday", "Wednesday", "Friday"},
			Selections: []SelectionIn{{ModifierItemID: ids["Regular"]}},
		}},
	})
	if err != nil {
		t.Fatalf("seed plan: %v", err)
	}
	return plan
}

func TestSubscribeCreatesPendingAtServerPrice(t *testing.T) {
	db := newTestDB(t)
	chef := seedUser(t, db, entity.RoleChef)
	diner := seedUser(t, db, entity.RoleDiner)
	plan := seedPlan(t, db, chef.ID)
	addr := seedAddress(t, db, diner.ID, entity.AddressHome)

	gw := &fakeGateway{}
	svc := newSubscriptionService(db, gw)
	out, err := svc.Subscribe(context.Background(), diner.ID, &SubscribeIn{
		MealPlanID: plan.ID,
		AddressID:  addr.ID,
		Weeks:      2,
		TotalPrice: 72.00, // 36.00 * 2
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	sub := out.Subscription
	if sub.Status != entity.SubscriptionPending {
		t.Fatalf("status = %q, want pending", sub.Status)
	}
	if math.Abs(sub.TotalPrice-72.00) > 1e-9 {
		t.Fatalf("total = %.2f, want 72.00", sub.TotalPrice)
	}
	if sub.ChefID != chef.ID {
		t.Fatalf("chef id not denormalized onto subscription")
	}
	if out.PaymentURL == "" || sub.PaymentSessionID == "" {
		t.Fatalf("subscribe must open a payment session")
	}
	if gw.lastMeta["kind"] != "subscription" {
		t.Fatalf("session metadata kind = %q, want subscription", gw.lastMeta["kind"])
	}
}

func TestSubscribeRejectsPriceMismatch(t *testing.T) {
	db := newTestDB(t)
	chef := seedUser(t, db, entity.RoleChef)
	diner := seedUser(t, db, entity.RoleDiner)
	plan := seedPlan(t, db, chef.ID)
	addr := seedAddress(t, db, diner.ID, entity.AddressHome)

	svc := newSubscriptionService(db, &fakeGateway{})
	_, err := svc.Subscribe(context.Background(), diner.ID, &SubscribeIn{
		MealPlanID: plan.ID,
		AddressID:  addr.ID,
		Weeks:      2,
		TotalPrice: 36.00, // one week's price on a two-week purchase
	})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
	subs, _ := svc.ListForDiner(diner.ID)
	if len(subs) != 0 {
		t.Fatalf("no subscription may exist after a rejected purchase")
	}
}

func TestSubscribeRequiresOwnAddress(t *testing.T) {
	db := newTestDB(t)
	chef := seedUser(t, db, entity.RoleChef)
	diner := seedUser(t, db, entity.RoleDiner)
	other := seedUser(t, db, entity.RoleDiner)
	plan := seedPlan(t, db, chef.ID)
	foreign := seedAddress(t, db, other.ID, entity.AddressHome)

	svc := newSubscriptionService(db, &fakeGateway{})
	_, err := svc.Subscribe(context.Background(), diner.ID, &SubscribeIn{
		MealPlanID: plan.ID,
		AddressID:  foreign.ID,
		Weeks:      1,
		TotalPrice: 36.00,
	})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("foreign address: want not found, got %v", err)
	}
}

func TestSubscriptionWebhookActivation(t *testing.T) {
	db := newTestDB(t)
	chef := seedUser(t, db, entity.RoleChef)
	diner := seedUser(t, db, entity.RoleDiner)
	plan := seedPlan(t, db, chef.ID)
	addr := seedAddress(t, db, diner.ID, entity.AddressHome)

	svc := newSubscriptionService(db, &fakeGateway{})
	out, err := svc.Subscribe(context.Background(), diner.ID, &SubscribeIn{
		MealPlanID: plan.ID, AddressID: addr.ID, Weeks: 1, TotalPrice: 36.00,
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	if err := svc.ActivateBySession(out.Subscription.PaymentSessionID); err != nil {
		t.Fatalf("activate: %v", err)
	}
	sub, _ := svc.Repo.Get(out.Subscription.ID)
	if sub.Status != entity.SubscriptionActive {
		t.Fatalf("status = %q, want active", sub.Status)
	}

	// a replayed webhook is a no-op, not an error
	if err := svc.ActivateBySession(out.Subscription.PaymentSessionID); err != nil {
		t.Fatalf("replay: %v", err)
	}
}

func TestSubscriptionStatusOwnershipAndTransitions(t *testing.T) {
	db := newTestDB(t)
	chef := seedUser(t, db, entity.RoleChef)
	diner := seedUser(t, db, entity.RoleDiner)
	plan := seedPlan(t, db, chef.ID)
	addr := seedAddress(t, db, diner.ID, entity.AddressHome)

	svc := newSubscriptionService(db, &fakeGateway{})
	out, _ := svc.Subscribe(context.Background(), diner.ID, &SubscribeIn{
		MealPlanID: plan.ID, AddressID: addr.ID, Weeks: 1, TotalPrice: 36.00,
	})
	subID := out.Subscription.ID
	svc.ActivateBySession(out.Subscription.PaymentSessionID)

	stranger := seedUser(t, db, entity.RoleChef)
	if err := svc.UpdateStatus(stranger.ID, subID, entity.SubscriptionPaused); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("foreign chef update: want forbidden, got %v", err)
	}

	if err := svc.UpdateStatus(chef.ID, subID, entity.SubscriptionPaused); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if err := svc.UpdateStatus(chef.ID, subID, entity.SubscriptionActive); err != nil {
		t.Fatalf("resume: %v", err)
	}

	// and the chef's indexed view lists it
	views, err := svc.ListForChef(chef.ID)
	if err != nil || len(views) != 1 {
		t.Fatalf("chef list: %v, %d rows", err, len(views))
	}
}

func TestSubscriptionCancelDinerOnlyAndTerminal(t *testing.T) {
	db := newTestDB(t)
	chef := seedUser(t, db, entity.RoleChef)
	diner := seedUser(t, db, entity.RoleDiner)
	plan := seedPlan(t, db, chef.ID)
	addr := seedAddress(t, db, diner.ID, entity.AddressHome)

	svc := newSubscriptionService(db, &fakeGateway{})
	out, _ := svc.Subscribe(context.Background(), diner.ID, &SubscribeIn{
		MealPlanID: plan.ID, AddressID: addr.ID, Weeks: 1, TotalPrice: 36.00,
	})
	subID := out.Subscription.ID

	other := seedUser(t, db, entity.RoleDiner)
	if err := svc.Cancel(other.ID, subID); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("foreign cancel: want forbidden, got %v", err)
	}

	if err := svc.Cancel(diner.ID, subID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	sub, _ := svc.Repo.Get(subID)
	if sub.Status != entity.SubscriptionCancelled {
		t.Fatalf("status = %q, want cancelled", sub.Status)
	}

	// cancelled is terminal for both parties
	if err := svc.Cancel(diner.ID, subID); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("double cancel: want validation error, got %v", err)
	}
	if err := svc.UpdateStatus(chef.ID, subID, entity.SubscriptionActive); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("revive cancelled: want validation error, got %v", err)
	}
}

func TestSubscriptionSurvivesPlanDeletion(t *testing.T) {
	db := newTestDB(t)
	chef := seedUser(t, db, entity.RoleChef)
	diner := seedUser(t, db, entity.RoleDiner)
	plan := seedPlan(t, db, chef.ID)
	addr := seedAddress(t, db, diner.ID, entity.AddressHome)

	svc := newSubscriptionService(db, &fakeGateway{})
	if _, err := svc.Subscribe(context.Background(), diner.ID, &SubscribeIn{
		MealPlanID: plan.ID, AddressID: addr.ID, Weeks: 2, TotalPrice: 72.00,
	}); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	if err := newMealPlanService(db).Delete(chef.ID, plan.ID); err != nil {
		t.Fatalf("delete plan: %v", err)
	}

	subs, err := svc.ListForDiner(diner.ID)
	if err != nil || len(subs) != 1 {
		t.Fatalf("list after plan delete: %v, %d rows", err, len(subs))
	}
	if math.Abs(subs[0].TotalPrice-72.00) > 1e-9 {
		t.Fatalf("denormalized price lost: %.2f", subs[0].TotalPrice)
	}
	if subs[0].ChefID != chef.ID {
		t.Fatalf("denormalized chef lost")
	}
}
