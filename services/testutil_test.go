package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/configs"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/entity"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/payments"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// newTestDB opens a fresh in-memory database per test. The DSN is unique so
// parallel tests never share schema or rows.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := configs.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	t.Cleanup(func() { configs.CloseDB(db) })
	return db
}

func seedUser(t *testing.T, db *gorm.DB, role string) *entity.User {
	t.Helper()
	u := &entity.User{
		Email:    fmt.Sprintf("%s%d@example.com", role, dbSeq.Add(1)),
		Password: "x",
		Name:     "Test " + role,
		Role:     role,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed %s: %v", role, err)
	}
	return u
}

// seedDish creates a 12.00 dish with a required size group (+0.00 / +2.00)
// and an optional extras group (limit 2, +1.00 each).
func seedDish(t *testing.T, db *gorm.DB, chefID uint) *entity.Dish {
	t.Helper()
	d := &entity.Dish{
		ChefID:  chefID,
		Name:    "Butter Chicken",
		Type:    entity.DishDinner,
		Cuisine: "Indian",
		Price:   12.00,
		Modifiers: []entity.Modifier{
			{
				Title:    "Size",
				Required: true,
				Items: []entity.ModifierItem{
					{Title: "Regular", Price: 0},
					{Title: "Large", Price: 2.00},
				},
			},
			{
				Title: "Extras",
				Limit: 2,
				Items: []entity.ModifierItem{
					{Title: "Naan", Price: 1.00},
					{Title: "Raita", Price: 1.00},
					{Title: "Papadum", Price: 1.00},
				},
			},
		},
	}
	if err := db.Create(d).Error; err != nil {
		t.Fatalf("seed dish: %v", err)
	}
	return d
}

func seedAddress(t *testing.T, db *gorm.DB, userID uint, addrType string) *entity.Address {
	t.Helper()
	a := &entity.Address{
		UserID: userID,
		Type:   addrType,
		Street: "12 King St",
		City:   "Toronto",
		Phone:  "416-555-0100",
	}
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("seed address: %v", err)
	}
	return a
}

// fakeGateway records checkout calls and hands back deterministic sessions.
type fakeGateway struct {
	sessions int
	lastMeta map[string]string
	fail     bool
}

func (g *fakeGateway) CreateCheckoutSession(_ context.Context, _ []payments.LineItem, _, _ string, metadata map[string]string) (*payments.Session, error) {
	if g.fail {
		return nil, fmt.Errorf("gateway unavailable")
	}
	g.sessions++
	g.lastMeta = metadata
	id := fmt.Sprintf("cs_test_%d", g.sessions)
	return &payments.Session{ID: id, URL: "https://checkout.example/" + id}, nil
}

func (g *fakeGateway) VerifyWebhook(payload []byte, _ string) (*payments.WebhookEvent, error) {
	return &payments.WebhookEvent{Type: payments.EventCheckoutCompleted, SessionID: string(payload), Metadata: g.lastMeta}, nil
}

// itemIDs maps a dish's modifier item titles to ids for selection fixtures.
func itemIDs(d *entity.Dish) map[string]uint {
	out := make(map[string]uint)
	for _, g := range d.Modifiers {
		for _, it := range g.Items {
			out[it.Title] = it.ID
		}
	}
	return out
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewDishRepository(db))
}

func newOrderService(db *gorm.DB, gw payments.Gateway) *OrderService {
	return NewOrderService(db, repository.NewOrderRepository(db), repository.NewCartRepository(db), gw, "http://localhost:8000")
}
