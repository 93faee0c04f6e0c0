package services

import (
	"errors"
	"math"
	"testing"

	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/entity"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/pkg/apperr"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/repository"
	"gorm.io/gorm"
)

func newMealPlanService(db *gorm.DB) *MealPlanService {
	return NewMealPlanService(repository.NewMealPlanRepository(db), repository.NewDishRepository(db))
}

func TestMealPlanCreateComputesTotal(t *testing.T) {
	db := newTestDB(t)
	chef := seedUser(t, db, entity.RoleChef)
	dish := seedDish(t, db, chef.ID)
	ids := itemIDs(dish)

	svc := newMealPlanService(db)
	plan, err := svc.Create(chef.ID, &MealPlanIn{
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
		t.Fatalf("create: %v", err)
	}
	// 12.00 * 1 * 3 days
	if math.Abs(plan.TotalPrice-36.00) > 1e-9 {
		t.Fatalf("total = %.2f, want 36.00", plan.TotalPrice)
	}
	if len(plan.Slots) != 1 || plan.Slots[0].DishName != dish.Name {
		t.Fatalf("slot not snapshotted: %+v", plan.Slots)
	}
}

func TestMealPlanRejectsClientTotalMismatch(t *testing.T) {
	db := newTestDB(t)
	chef := seedUser(t, db, entity.RoleChef)
	dish := seedDish(t, db, chef.ID)
	ids := itemIDs(dish)

	svc := newMealPlanService(db)
	in := &MealPlanIn{
		Name:       "Weekday Dinners",
		TotalPrice: 1.00, // disagrees with the computed 36.00
		Slots: []SlotIn{{
			Slot:       entity.SlotDinner,
			DishID:     dish.ID,
			Quantity:   1,
			Days:       []string{"Monday", "Wednesday", "Friday"},
			Selections: []SelectionIn{{ModifierItemID: ids["Regular"]}},
		}},
	}
	if _, err := svc.Create(chef.ID, in); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("want validation error, got %v", err)
	}

	// a matching client total passes
	in.TotalPrice = 36.00
	if _, err := svc.Create(chef.ID, in); err != nil {
		t.Fatalf("matching total rejected: %v", err)
	}
}

func TestMealPlanValidatesSlots(t *testing.T) {
	db := newTestDB(t)
	chef := seedUser(t, db, entity.RoleChef)
	dish := seedDish(t, db, chef.ID)
	ids := itemIDs(dish)
	sel := []SelectionIn{{ModifierItemID: ids["Regular"]}}

	svc := newMealPlanService(db)

	cases := []struct {
		name  string
		slots []SlotIn
	}{
		{"unknown slot", []SlotIn{{Slot: "brunch", DishID: dish.ID, Quantity: 1, Selections: sel}}},
		{"duplicate slot", []SlotIn{
			{Slot: entity.SlotLunch, DishID: dish.ID, Quantity: 1, Selections: sel},
			{Slot: entity.SlotLunch, DishID: dish.ID, Quantity: 1, Selections: sel},
		}},
		{"unknown weekday", []SlotIn{{Slot: entity.SlotLunch, DishID: dish.ID, Quantity: 1, Days: []string{"Funday"}, Selections: sel}}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(chef.ID, &MealPlanIn{Name: "p", Slots: tc.slots}); !errors.Is(err, apperr.ErrValidation) {
			t.Errorf("%s: want validation error, got %v", tc.name, err)
		}
	}

	if _, err := svc.Create(chef.ID, &MealPlanIn{Name: "p", Slots: []SlotIn{
		{Slot: entity.SlotLunch, DishID: 9999, Quantity: 1, Selections: sel},
	}}); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("missing dish: want not found, got %v", err)
	}
}

func TestMealPlanUpdateReplacesSlots(t *testing.T) {
	db := newTestDB(t)
	chef := seedUser(t, db, entity.RoleChef)
	dish := seedDish(t, db, chef.ID)
	ids := itemIDs(dish)
	sel := []SelectionIn{{ModifierItemID: ids["Regular"]}}

	svc := newMealPlanService(db)
	plan, err := svc.Create(chef.ID, &MealPlanIn{Name: "p", Slots: []SlotIn{
		{Slot: entity.SlotBreakfast, DishID: dish.ID, Quantity: 1, Days: []string{"Monday"}, Selections: sel},
		{Slot: entity.SlotDinner, DishID: dish.ID, Quantity: 1, Days: []string{"Monday"}, Selections: sel},
	}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// rebind the same slot keys; the old rows must not collide with the new
	updated, err := svc.Update(chef.ID, plan.ID, &MealPlanIn{Name: "p2", Slots: []SlotIn{
		{Slot: entity.SlotDinner, DishID: dish.ID, Quantity: 2, Days: []string{"Monday", "Tuesday"}, Selections: sel},
	}})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(updated.Slots) != 1 {
		t.Fatalf("want 1 slot after update, got %d", len(updated.Slots))
	}
	// 12.00 * 2 * 2 days
	if math.Abs(updated.TotalPrice-48.00) > 1e-9 {
		t.Fatalf("total = %.2f, want 48.00", updated.TotalPrice)
	}
	if updated.Name != "p2" {
		t.Fatalf("name = %q, want p2", updated.Name)
	}
}

func TestMealPlanOwnership(t *testing.T) {
	db := newTestDB(t)
	chef := seedUser(t, db, entity.RoleChef)
	other := seedUser(t, db, entity.RoleChef)
	dish := seedDish(t, db, chef.ID)
	ids := itemIDs(dish)
	sel := []SelectionIn{{ModifierItemID: ids["Regular"]}}

	svc := newMealPlanService(db)
	plan, err := svc.Create(chef.ID, &MealPlanIn{Name: "p", Slots: []SlotIn{
		{Slot: entity.SlotLunch, DishID: dish.ID, Quantity: 1, Days: []string{"Monday"}, Selections: sel},
	}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Update(other.ID, plan.ID, &MealPlanIn{Name: "x"}); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("foreign update: want forbidden, got %v", err)
	}
	if err := svc.Delete(other.ID, plan.ID); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("foreign delete: want forbidden, got %v", err)
	}
	if err := svc.Delete(chef.ID, plan.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if _, err := svc.Get(plan.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("deleted plan still readable: %v", err)
	}
}
