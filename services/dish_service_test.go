package services

import (
	"errors"
	"testing"

	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/entity"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/pkg/apperr"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/repository"
)

func sampleDishIn() *DishIn {
	return &DishIn{
		Name:    "Pad Thai",
		Type:    entity.DishLunch,
		Cuisine: "Thai",
		Price:   10.50,
		Modifiers: []ModifierIn{
			{Title: "Protein", Required: true, Items: []ModifierItemIn{
				{Title: "Tofu"}, {Title: "Shrimp", Price: 2.50},
			}},
			{Title: "Add-ons", Limit: 1, Items: []ModifierItemIn{
				{Title: "Peanuts", Price: 0.50},
			}},
		},
	}
}

func TestDishCreateValidation(t *testing.T) {
	db := newTestDB(t)
	chef := seedUser(t, db, entity.RoleChef)
	svc := NewDishService(repository.NewDishRepository(db))

	d, err := svc.Create(chef.ID, sampleDishIn())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(d.Modifiers) != 2 || len(d.Modifiers[0].Items) != 2 {
		t.Fatalf("modifier groups not persisted: %+v", d.Modifiers)
	}

	bad := sampleDishIn()
	bad.Type = "Brunch"
	if _, err := svc.Create(chef.ID, bad); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("bad type: want validation error, got %v", err)
	}

	bad = sampleDishIn()
	bad.Price = 0
	if _, err := svc.Create(chef.ID, bad); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("zero price: want validation error, got %v", err)
	}

	// optional group without a limit is meaningless
	bad = sampleDishIn()
	bad.Modifiers[1].Limit = 0
	if _, err := svc.Create(chef.ID, bad); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("optional group limit 0: want validation error, got %v", err)
	}

	bad = sampleDishIn()
	bad.Modifiers[0].Items[1].Price = -1
	if _, err := svc.Create(chef.ID, bad); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("negative item price: want validation error, got %v", err)
	}
}

func TestDishUpdateReplacesModifiers(t *testing.T) {
	db := newTestDB(t)
	chef := seedUser(t, db, entity.RoleChef)
	svc := NewDishService(repository.NewDishRepository(db))

	d, err := svc.Create(chef.ID, sampleDishIn())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	in := sampleDishIn()
	in.Name = "Pad See Ew"
	in.Price = 11.00
	in.Modifiers = []ModifierIn{
		{Title: "Spice", Required: true, Items: []ModifierItemIn{
			{Title: "Mild"}, {Title: "Hot"},
		}},
	}
	updated, err := svc.Update(chef.ID, d.ID, in)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Pad See Ew" || updated.Price != 11.00 {
		t.Fatalf("fields not updated: %+v", updated)
	}
	if len(updated.Modifiers) != 1 || updated.Modifiers[0].Title != "Spice" {
		t.Fatalf("modifiers not replaced: %+v", updated.Modifiers)
	}

	other := seedUser(t, db, entity.RoleChef)
	if _, err := svc.Update(other.ID, d.ID, in); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("foreign update: want forbidden, got %v", err)
	}
	if err := svc.Delete(other.ID, d.ID); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("foreign delete: want forbidden, got %v", err)
	}
}

func TestDishFavoriteToggle(t *testing.T) {
	db := newTestDB(t)
	chef := seedUser(t, db, entity.RoleChef)
	diner := seedUser(t, db, entity.RoleDiner)
	svc := NewDishService(repository.NewDishRepository(db))

	d, err := svc.Create(chef.ID, sampleDishIn())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	fav, err := svc.ToggleFavorite(diner.ID, d.ID)
	if err != nil || !fav {
		t.Fatalf("first toggle: fav=%v err=%v", fav, err)
	}
	list, _ := svc.ListFavorites(diner.ID)
	if len(list) != 1 || list[0].ID != d.ID {
		t.Fatalf("favorites list wrong: %+v", list)
	}

	fav, err = svc.ToggleFavorite(diner.ID, d.ID)
	if err != nil || fav {
		t.Fatalf("second toggle: fav=%v err=%v", fav, err)
	}
	list, _ = svc.ListFavorites(diner.ID)
	if len(list) != 0 {
		t.Fatalf("favorite not removed")
	}

	if _, err := svc.ToggleFavorite(diner.ID, 9999); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("missing dish: want not found, got %v", err)
	}
}
