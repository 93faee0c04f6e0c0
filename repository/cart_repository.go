package repository

import (
	"errors"

	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/entity"
	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetCartWithItems returns the diner's cart with line items and their
// modifier snapshots loaded. A diner without a cart gets an empty one, not
// an error, so reads never fail on a fresh account.
func (r *CartRepository) GetCartWithItems(dinerID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("diner_id = ?", dinerID).
		Preload("Items").
		Preload("Items.Modifiers").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{DinerID: dinerID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetOrCreateCart lazily creates the diner's cart on first add.
func (r *CartRepository) GetOrCreateCart(dinerID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("diner_id = ?", dinerID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{DinerID: dinerID}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// DishQuantity sums the quantity of one dish across every line of a cart.
func (r *CartRepository) DishQuantity(cartID, dishID uint) (int, error) {
	var total int
	err := r.DB.Model(&entity.CartItem{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("cart_id = ? AND dish_id = ?", cartID, dishID).
		Scan(&total).Error
	return total, err
}

func (r *CartRepository) FindItemByDish(cartID, dishID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	err := r.DB.Where("cart_id = ? AND dish_id = ?", cartID, dishID).
		Preload("Modifiers").
		First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// GetItemForDiner loads a line item only if it belongs to the diner's cart.
func (r *CartRepository) GetItemForDiner(dinerID, itemID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	err := r.DB.
		Where("cart_items.id = ? AND cart_id IN (SELECT id FROM carts WHERE diner_id = ?)", itemID, dinerID).
		Preload("Modifiers").
		First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CartRepository) CreateItem(tx *gorm.DB, item *entity.CartItem) error {
	return tx.Create(item).Error
}

func (r *CartRepository) SaveItem(tx *gorm.DB, item *entity.CartItem) error {
	return tx.Save(item).Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, dinerID, itemID uint) (int64, error) {
	if err := tx.Where("cart_item_id = ?", itemID).Delete(&entity.CartItemModifier{}).Error; err != nil {
		return 0, err
	}
	res := tx.
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE diner_id = ?)", itemID, dinerID).
		Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}

// ClearCart removes every line item; the cart row itself stays.
func (r *CartRepository) ClearCart(tx *gorm.DB, dinerID uint) error {
	var c entity.Cart
	if err := tx.Where("diner_id = ?", dinerID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := tx.
		Where("cart_item_id IN (SELECT id FROM cart_items WHERE cart_id = ?)", c.ID).
		Delete(&entity.CartItemModifier{}).Error; err != nil {
		return err
	}
	return tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error
}
