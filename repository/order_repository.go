package repository

import (
	"time"

	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/entity"
	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) Get(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").Preload("Items.Modifiers").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetForDiner(dinerID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("id = ? AND diner_id = ?", orderID, dinerID).
		Preload("Items").
		Preload("Items.Modifiers").
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListForDiner returns the diner's orders newest first, hiding the ones the
// diner soft-deleted.
func (r *OrderRepository) ListForDiner(dinerID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.
		Where("diner_id = ? AND is_deleted_by_diner = ?", dinerID, false).
		Preload("Items").
		Preload("Items.Modifiers").
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// ListForChef finds orders containing at least one of the chef's line items
// through the order_items.chef_id index, newest first.
func (r *OrderRepository) ListForChef(chefID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.
		Where("is_deleted_by_chef = ?", false).
		Where("id IN (SELECT DISTINCT order_id FROM order_items WHERE chef_id = ? AND deleted_at IS NULL)", chefID).
		Preload("Items").
		Preload("Items.Modifiers").
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// ChefOwnsItem reports whether the chef owns at least one line item.
func (r *OrderRepository) ChefOwnsItem(orderID, chefID uint) (bool, error) {
	var n int64
	err := r.DB.Model(&entity.OrderItem{}).
		Where("order_id = ? AND chef_id = ?", orderID, chefID).
		Count(&n).Error
	return n > 0, err
}

// UpdateStatusGuard flips the status only if the current value still
// matches; zero affected rows means a lost race or an illegal jump.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) SetDeletedFlag(orderID uint, column string) error {
	return r.DB.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update(column, true).Error
}

// HardDelete permanently removes an order and its line items.
func (r *OrderRepository) HardDelete(orderID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("order_item_id IN (SELECT id FROM order_items WHERE order_id = ?)", orderID).
			Delete(&entity.OrderItemModifier{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&entity.Order{}, orderID).Error
	})
}

func (r *OrderRepository) SetSessionID(orderID uint, sessionID string) error {
	return r.DB.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("payment_session_id", sessionID).Error
}

// MarkPaidBySession records payment confirmation from the gateway webhook.
func (r *OrderRepository) MarkPaidBySession(sessionID string, paidAt time.Time) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("payment_session_id = ? AND paid_at IS NULL", sessionID).
		Update("paid_at", paidAt)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) FindBySession(sessionID string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("payment_session_id = ?", sessionID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}
