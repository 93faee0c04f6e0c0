package repository

import (
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/entity"
	"gorm.io/gorm"
)

type SubscriptionRepository struct{ DB *gorm.DB }

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{DB: db}
}

func (r *SubscriptionRepository) Create(s *entity.Subscription) error {
	return r.DB.Create(s).Error
}

func (r *SubscriptionRepository) Get(id uint) (*entity.Subscription, error) {
	var s entity.Subscription
	if err := r.DB.Preload("MealPlan").Preload("MealPlan.Slots").First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SubscriptionRepository) ListForDiner(dinerID uint) ([]entity.Subscription, error) {
	var out []entity.Subscription
	err := r.DB.Where("diner_id = ?", dinerID).
		Preload("MealPlan").
		Preload("MealPlan.Slots").
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// ListForChef uses the chef_id denormalized at purchase time, so the view
// is an indexed query instead of joining every subscription to its plan.
func (r *SubscriptionRepository) ListForChef(chefID uint) ([]entity.Subscription, error) {
	var out []entity.Subscription
	err := r.DB.Where("chef_id = ?", chefID).
		Preload("MealPlan").
		Preload("MealPlan.Slots").
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *SubscriptionRepository) UpdateStatusGuard(subID uint, from, to string) (int64, error) {
	res := r.DB.Model(&entity.Subscription{}).
		Where("id = ? AND status = ?", subID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *SubscriptionRepository) SetSessionID(subID uint, sessionID string) error {
	return r.DB.Model(&entity.Subscription{}).
		Where("id = ?", subID).
		Update("payment_session_id", sessionID).Error
}

// ActivateBySession flips a pending subscription to active when the gateway
// confirms payment. Idempotent: an already-active row matches nothing.
func (r *SubscriptionRepository) ActivateBySession(sessionID string) (int64, error) {
	res := r.DB.Model(&entity.Subscription{}).
		Where("payment_session_id = ? AND status = ?", sessionID, entity.SubscriptionPending).
		Update("status", entity.SubscriptionActive)
	return res.RowsAffected, res.Error
}

func (r *SubscriptionRepository) FindBySession(sessionID string) (*entity.Subscription, error) {
	var s entity.Subscription
	if err := r.DB.Where("payment_session_id = ?", sessionID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
