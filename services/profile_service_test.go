package services

import (
	"errors"
	"testing"

	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/entity"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/pkg/apperr"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/repository"
)

func TestAddressOnePerType(t *testing.T) {
	db := newTestDB(t)
	diner := seedUser(t, db, entity.RoleDiner)
	svc := NewProfileService(repository.NewUserRepository(db))

	home := AddressIn{Type: "home", Street: "12 King St", City: "Toronto"}
	first, err := svc.AddAddress(diner.ID, &home)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if first.Type != entity.AddressHome {
		t.Fatalf("type = %q, want normalized Home", first.Type)
	}

	// a second Home is rejected
	if _, err := svc.AddAddress(diner.ID, &home); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("duplicate type: want validation error, got %v", err)
	}

	// but another user may hold their own Home
	other := seedUser(t, db, entity.RoleDiner)
	if _, err := svc.AddAddress(other.ID, &home); err != nil {
		t.Fatalf("other user's home: %v", err)
	}

	// editing by id never trips the uniqueness check
	office := AddressIn{Type: "Office", Street: "1 Bay St", City: "Toronto"}
	if _, err := svc.AddAddress(diner.ID, &office); err != nil {
		t.Fatalf("add office: %v", err)
	}
	if _, err := svc.UpdateAddress(diner.ID, first.ID, &AddressIn{Type: "Home", Street: "99 Queen St", City: "Toronto"}); err != nil {
		t.Fatalf("edit home by id: %v", err)
	}
}

func TestAddressValidationAndOwnership(t *testing.T) {
	db := newTestDB(t)
	diner := seedUser(t, db, entity.RoleDiner)
	svc := NewProfileService(repository.NewUserRepository(db))

	if _, err := svc.AddAddress(diner.ID, &AddressIn{Type: "warehouse", Street: "x", City: "y"}); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("bad type: want validation error, got %v", err)
	}

	a, err := svc.AddAddress(diner.ID, &AddressIn{Type: "Other", Street: "5 Yonge St", City: "Toronto"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	other := seedUser(t, db, entity.RoleDiner)
	if _, err := svc.UpdateAddress(other.ID, a.ID, &AddressIn{Type: "Other", Street: "z", City: "z"}); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("foreign edit: want not found, got %v", err)
	}
	if err := svc.DeleteAddress(other.ID, a.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("foreign delete: want not found, got %v", err)
	}

	if err := svc.DeleteAddress(diner.ID, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	list, _ := svc.ListAddresses(diner.ID)
	if len(list) != 0 {
		t.Fatalf("address list not empty after delete")
	}
}
