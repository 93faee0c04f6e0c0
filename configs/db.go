package configs

import (
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewDB opens the database and migrates the schema. The handle is owned by
// main and passed down; there is no package-level connection.
func NewDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{}, &entity.Address{},
		&entity.Dish{}, &entity.Modifier{}, &entity.ModifierItem{},
		&entity.Cart{}, &entity.CartItem{}, &entity.CartItemModifier{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderItemModifier{},
		&entity.MealPlan{}, &entity.MealPlanSlot{}, &entity.MealPlanSlotModifier{},
		&entity.Subscription{},
		&entity.ChatRoom{}, &entity.Message{},
		&entity.City{},
	)
}

func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
