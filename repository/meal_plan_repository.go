package repository

import (
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/entity"
	"gorm.io/gorm"
)

type MealPlanRepository struct{ DB *gorm.DB }

func NewMealPlanRepository(db *gorm.DB) *MealPlanRepository { return &MealPlanRepository{DB: db} }

func (r *MealPlanRepository) Create(p *entity.MealPlan) error {
	return r.DB.Create(p).Error
}

func (r *MealPlanRepository) GetWithSlots(id uint) (*entity.MealPlan, error) {
	var p entity.MealPlan
	err := r.DB.
		Preload("Slots").
		Preload("Slots.Modifiers").
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *MealPlanRepository) List() ([]entity.MealPlan, error) {
	var out []entity.MealPlan
	err := r.DB.Preload("Slots").Preload("Slots.Modifiers").Order("id DESC").Find(&out).Error
	return out, err
}

func (r *MealPlanRepository) ListByChef(chefID uint) ([]entity.MealPlan, error) {
	var out []entity.MealPlan
	err := r.DB.Where("chef_id = ?", chefID).
		Preload("Slots").
		Preload("Slots.Modifiers").
		Order("id DESC").
		Find(&out).Error
	return out, err
}

// Update rewrites the plan header and replaces its slots wholesale.
func (r *MealPlanRepository) Update(p *entity.MealPlan, slots []entity.MealPlanSlot) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.MealPlan{}).Where("id = ?", p.ID).Updates(map[string]any{
			"name":        p.Name,
			"image":       p.Image,
			"total_price": p.TotalPrice,
		}).Error; err != nil {
			return err
		}
		if err := deletePlanSlots(tx, p.ID); err != nil {
			return err
		}
		for i := range slots {
			slots[i].MealPlanID = p.ID
			if err := tx.Create(&slots[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the plan and its slots. Subscriptions keep their own
// denormalized price and chef id, so they are untouched.
func (r *MealPlanRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := deletePlanSlots(tx, id); err != nil {
			return err
		}
		return tx.Delete(&entity.MealPlan{}, id).Error
	})
}

// Slots are value rows replaced wholesale; they are removed for real so the
// (plan, slot) unique index never collides with a soft-deleted row.
func deletePlanSlots(tx *gorm.DB, planID uint) error {
	if err := tx.Unscoped().
		Where("meal_plan_slot_id IN (SELECT id FROM meal_plan_slots WHERE meal_plan_id = ?)", planID).
		Delete(&entity.MealPlanSlotModifier{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().Where("meal_plan_id = ?", planID).Delete(&entity.MealPlanSlot{}).Error
}
