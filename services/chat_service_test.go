package services

import (
	"context"
	"errors"
	"testing"

	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/entity"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/pkg/apperr"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/repository"
	"gorm.io/gorm"
)

func seedOrderWithChat(t *testing.T, db *gorm.DB) (dinerID, chefID, orderID uint) {
	t.Helper()
	chef := seedUser(t, db, entity.RoleChef)
	diner := seedUser(t, db, entity.RoleDiner)
	dish := seedDish(t, db, chef.ID)

	fillCart(t, newCartService(db), diner.ID, dish, 1)
	out, err := newOrderService(db, &fakeGateway{}).Checkout(context.Background(), diner.ID, &CheckoutIn{Address: checkoutAddr(), PaymentMethod: entity.PaymentCOD})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	return diner.ID, chef.ID, out.OrderID
}

func TestChatRoomAccess(t *testing.T) {
	db := newTestDB(t)
	dinerID, chefID, orderID := seedOrderWithChat(t, db)
	svc := NewChatService(repository.NewChatRepository(db), repository.NewOrderRepository(db))

	room, err := svc.RoomForOrder(dinerID, orderID)
	if err != nil {
		t.Fatalf("diner room: %v", err)
	}

	// same order resolves to the same room for the chef
	room2, err := svc.RoomForOrder(chefID, orderID)
	if err != nil {
		t.Fatalf("chef room: %v", err)
	}
	if room2.ID != room.ID {
		t.Fatalf("room ids differ: %d vs %d", room.ID, room2.ID)
	}

	stranger := seedUser(t, db, entity.RoleDiner)
	if _, err := svc.RoomForOrder(stranger.ID, orderID); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("stranger room: want forbidden, got %v", err)
	}
}

func TestChatMessages(t *testing.T) {
	db := newTestDB(t)
	dinerID, chefID, orderID := seedOrderWithChat(t, db)
	svc := NewChatService(repository.NewChatRepository(db), repository.NewOrderRepository(db))

	room, err := svc.RoomForOrder(dinerID, orderID)
	if err != nil {
		t.Fatalf("room: %v", err)
	}

	if _, err := svc.SendMessage(room.ID, dinerID, "  "); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("blank message: want validation error, got %v", err)
	}

	for _, body := range []string{"is the curry spicy?", "medium, I can tone it down", "perfect"} {
		if _, err := svc.SendMessage(room.ID, dinerID, body); err != nil {
			t.Fatalf("send: %v", err)
		}
	}

	msgs, err := svc.ListMessages(chefID, room.ID, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("limit ignored: got %d", len(msgs))
	}
	// newest-limited but returned oldest first
	if msgs[0].Body != "medium, I can tone it down" || msgs[1].Body != "perfect" {
		t.Fatalf("wrong window/order: %q, %q", msgs[0].Body, msgs[1].Body)
	}

	stranger := seedUser(t, db, entity.RoleDiner)
	if _, err := svc.ListMessages(stranger.ID, room.ID, 10); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("stranger list: want forbidden, got %v", err)
	}
}
