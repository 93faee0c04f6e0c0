package services

import (
	"errors"
	"strings"

	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/entity"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/pkg/apperr"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/repository"
	"gorm.io/gorm"
)

type ProfileService struct {
	Repo *repository.UserRepository
}

func NewProfileService(repo *repository.UserRepository) *ProfileService {
	return &ProfileService{Repo: repo}
}

type AddressIn struct {
	Type           string `json:"type" binding:"required"`
	BuildingNumber string `json:"buildingNumber"`
	Street         string `json:"street" binding:"required"`
	City           string `json:"city" binding:"required"`
	State          string `json:"state"`
	PostalCode     string `json:"postalCode"`
	Country        string `json:"country"`
	Phone          string `json:"phone"`
}

// NormalizeAddressType capitalizes the type ("home" -> "Home").
func NormalizeAddressType(t string) string {
	t = strings.TrimSpace(t)
	if t == "" {
		return t
	}
	return strings.ToUpper(t[:1]) + strings.ToLower(t[1:])
}

func (s *ProfileService) ListAddresses(userID uint) ([]entity.Address, error) {
	return s.Repo.ListAddresses(userID)
}

// AddAddress enforces at most one address per type.
func (s *ProfileService) AddAddress(userID uint, in *AddressIn) (*entity.Address, error) {
	addrType := NormalizeAddressType(in.Type)
	if !entity.ValidAddressType(addrType) {
		return nil, apperr.Validationf("unknown address type %q", in.Type)
	}

	n, err := s.Repo.CountAddressesByType(userID, addrType)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, apperr.Validationf("a %s address already exists", addrType)
	}

	a := &entity.Address{
		UserID:         userID,
		Type:           addrType,
		BuildingNumber: in.BuildingNumber,
		Street:         in.Street,
		City:           in.City,
		State:          in.State,
		PostalCode:     in.PostalCode,
		Country:        in.Country,
		Phone:          in.Phone,
	}
	if err := s.Repo.CreateAddress(a); err != nil {
		return nil, err
	}
	return a, nil
}

// UpdateAddress edits an address by id. Editing always succeeds regardless
// of type uniqueness; only the create path enforces one-per-type.
func (s *ProfileService) UpdateAddress(userID, id uint, in *AddressIn) (*entity.Address, error) {
	a, err := s.Repo.GetAddress(userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("address %d", id)
		}
		return nil, err
	}

	addrType := NormalizeAddressType(in.Type)
	if !entity.ValidAddressType(addrType) {
		return nil, apperr.Validationf("unknown address type %q", in.Type)
	}

	a.Type = addrType
	a.BuildingNumber = in.BuildingNumber
	a.Street = in.Street
	a.City = in.City
	a.State = in.State
	a.PostalCode = in.PostalCode
	a.Country = in.Country
	a.Phone = in.Phone

	if err := s.Repo.SaveAddress(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *ProfileService) DeleteAddress(userID, id uint) error {
	if _, err := s.Repo.GetAddress(userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("address %d", id)
		}
		return err
	}
	return s.Repo.DeleteAddress(userID, id)
}
