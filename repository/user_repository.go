package repository

import (
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/entity"
	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Preload("Addresses").First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&n).Error
	return n, err
}

func (r *UserRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Updates(updates).Error
}

// ---------------- Addresses ----------------

func (r *UserRepository) ListAddresses(userID uint) ([]entity.Address, error) {
	var out []entity.Address
	err := r.DB.Where("user_id = ?", userID).Order("id").Find(&out).Error
	return out, err
}

func (r *UserRepository) GetAddress(userID, id uint) (*entity.Address, error) {
	var a entity.Address
	if err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *UserRepository) CountAddressesByType(userID uint, addrType string) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Address{}).
		Where("user_id = ? AND type = ?", userID, addrType).
		Count(&n).Error
	return n, err
}

func (r *UserRepository) CreateAddress(a *entity.Address) error {
	return r.DB.Create(a).Error
}

func (r *UserRepository) SaveAddress(a *entity.Address) error {
	return r.DB.Save(a).Error
}

func (r *UserRepository) DeleteAddress(userID, id uint) error {
	return r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&entity.Address{}).Error
}
