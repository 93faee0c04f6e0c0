package repository

import (
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/entity"
	"gorm.io/gorm"
)

type DishRepository struct{ DB *gorm.DB }

func NewDishRepository(db *gorm.DB) *DishRepository { return &DishRepository{DB: db} }

func (r *DishRepository) Create(d *entity.Dish) error {
	return r.DB.Create(d).Error
}

// GetWithModifiers loads a dish and its ordered modifier groups.
func (r *DishRepository) GetWithModifiers(id uint) (*entity.Dish, error) {
	var d entity.Dish
	err := r.DB.
		Preload("Modifiers", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		Preload("Modifiers.Items", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		First(&d, id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

type DishFilter struct {
	ChefID  uint
	Type    string
	Cuisine string
}

func (r *DishRepository) List(f DishFilter) ([]entity.Dish, error) {
	q := r.DB.Preload("Modifiers.Items")
	if f.ChefID != 0 {
		q = q.Where("chef_id = ?", f.ChefID)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Cuisine != "" {
		q = q.Where("cuisine = ?", f.Cuisine)
	}
	var out []entity.Dish
	err := q.Order("id DESC").Find(&out).Error
	return out, err
}

func (r *DishRepository) Save(d *entity.Dish) error {
	return r.DB.Save(d).Error
}

func (r *DishRepository) ReplaceModifiers(dishID uint, groups []entity.Modifier) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var oldGroups []entity.Modifier
		if err := tx.Where("dish_id = ?", dishID).Find(&oldGroups).Error; err != nil {
			return err
		}
		for _, g := range oldGroups {
			if err := tx.Where("modifier_id = ?", g.ID).Delete(&entity.ModifierItem{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("dish_id = ?", dishID).Delete(&entity.Modifier{}).Error; err != nil {
			return err
		}
		for i := range groups {
			groups[i].DishID = dishID
			if err := tx.Create(&groups[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *DishRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var groups []entity.Modifier
		if err := tx.Where("dish_id = ?", id).Find(&groups).Error; err != nil {
			return err
		}
		for _, g := range groups {
			if err := tx.Where("modifier_id = ?", g.ID).Delete(&entity.ModifierItem{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("dish_id = ?", id).Delete(&entity.Modifier{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Dish{}, id).Error
	})
}

// ---------------- Favorites ----------------

func (r *DishRepository) AddFavorite(userID, dishID uint) error {
	return r.DB.Model(&entity.User{Model: gorm.Model{ID: userID}}).
		Association("FavoriteDishes").
		Append(&entity.Dish{Model: gorm.Model{ID: dishID}})
}

func (r *DishRepository) RemoveFavorite(userID, dishID uint) error {
	return r.DB.Model(&entity.User{Model: gorm.Model{ID: userID}}).
		Association("FavoriteDishes").
		Delete(&entity.Dish{Model: gorm.Model{ID: dishID}})
}

func (r *DishRepository) IsFavorite(userID, dishID uint) (bool, error) {
	var n int64
	err := r.DB.Table("dish_favorites").
		Where("user_id = ? AND dish_id = ?", userID, dishID).
		Count(&n).Error
	return n > 0, err
}

func (r *DishRepository) ListFavorites(userID uint) ([]entity.Dish, error) {
	var out []entity.Dish
	err := r.DB.Model(&entity.User{Model: gorm.Model{ID: userID}}).
		Association("FavoriteDishes").
		Find(&out)
	return out, err
}
