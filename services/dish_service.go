package services

import (
	"errors"
	"strings"

	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/entity"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/pkg/apperr"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/repository"
	"gorm.io/gorm"
)

type DishService struct {
	Repo *repository.DishRepository
}

func NewDishService(repo *repository.DishRepository) *DishService {
	return &DishService{Repo: repo}
}

type ModifierItemIn struct {
	Title string  `json:"title" binding:"required"`
	Price float64 `json:"price"`
}

type ModifierIn struct {
	Title    string           `json:"title" binding:"required"`
	Required bool             `json:"required"`
	Limit    int              `json:"limit"`
	Items    []ModifierItemIn `json:"items" binding:"required,min=1"`
}

type DishIn struct {
	Name        string       `json:"name" binding:"required"`
	Type        string       `json:"type" binding:"required"`
	Cuisine     string       `json:"cuisine"`
	Description string       `json:"description"`
	Photo       string       `json:"photo"`
	Price       float64      `json:"price" binding:"required"`
	Modifiers   []ModifierIn `json:"modifiers"`
}

func buildModifiers(in []ModifierIn) ([]entity.Modifier, error) {
	out := make([]entity.Modifier, 0, len(in))
	for gi, g := range in {
		if !g.Required && g.Limit < 1 {
			return nil, apperr.Validationf("modifier %q needs a selection limit of at least 1", g.Title)
		}
		group := entity.Modifier{
			Title:     strings.TrimSpace(g.Title),
			Required:  g.Required,
			Limit:     g.Limit,
			SortOrder: gi,
		}
		for ii, it := range g.Items {
			if it.Price < 0 {
				return nil, apperr.Validationf("modifier item %q has a negative price", it.Title)
			}
			group.Items = append(group.Items, entity.ModifierItem{
				Title:     strings.TrimSpace(it.Title),
				Price:     it.Price,
				SortOrder: ii,
			})
		}
		out = append(out, group)
	}
	return out, nil
}

func (s *DishService) Create(chefID uint, in *DishIn) (*entity.Dish, error) {
	if in.Price <= 0 {
		return nil, apperr.Validationf("price must be greater than zero")
	}
	if !entity.ValidDishType(in.Type) {
		return nil, apperr.Validationf("unknown dish type %q", in.Type)
	}
	groups, err := buildModifiers(in.Modifiers)
	if err != nil {
		return nil, err
	}

	d := &entity.Dish{
		ChefID:      chefID,
		Name:        strings.TrimSpace(in.Name),
		Type:        in.Type,
		Cuisine:     strings.TrimSpace(in.Cuisine),
		Description: in.Description,
		Photo:       in.Photo,
		Price:       in.Price,
		Modifiers:   groups,
	}
	if err := s.Repo.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DishService) Get(id uint) (*entity.Dish, error) {
	d, err := s.Repo.GetWithModifiers(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("dish %d", id)
		}
		return nil, err
	}
	return d, nil
}

func (s *DishService) List(f repository.DishFilter) ([]entity.Dish, error) {
	return s.Repo.List(f)
}

func (s *DishService) Update(chefID, dishID uint, in *DishIn) (*entity.Dish, error) {
	d, err := s.Get(dishID)
	if err != nil {
		return nil, err
	}
	if d.ChefID != chefID {
		return nil, apperr.Forbiddenf("dish %d is not yours", dishID)
	}
	if in.Price <= 0 {
		return nil, apperr.Validationf("price must be greater than zero")
	}
	if !entity.ValidDishType(in.Type) {
		return nil, apperr.Validationf("unknown dish type %q", in.Type)
	}
	groups, err := buildModifiers(in.Modifiers)
	if err != nil {
		return nil, err
	}

	d.Name = strings.TrimSpace(in.Name)
	d.Type = in.Type
	d.Cuisine = strings.TrimSpace(in.Cuisine)
	d.Description = in.Description
	d.Photo = in.Photo
	d.Price = in.Price
	d.Modifiers = nil
	if err := s.Repo.Save(d); err != nil {
		return nil, err
	}
	if err := s.Repo.ReplaceModifiers(d.ID, groups); err != nil {
		return nil, err
	}
	return s.Get(d.ID)
}

func (s *DishService) Delete(chefID, dishID uint) error {
	d, err := s.Get(dishID)
	if err != nil {
		return err
	}
	if d.ChefID != chefID {
		return apperr.Forbiddenf("dish %d is not yours", dishID)
	}
	return s.Repo.Delete(dishID)
}

// ToggleFavorite flips the diner's favorite mark and reports the new state.
func (s *DishService) ToggleFavorite(userID, dishID uint) (bool, error) {
	if _, err := s.Get(dishID); err != nil {
		return false, err
	}
	fav, err := s.Repo.IsFavorite(userID, dishID)
	if err != nil {
		return false, err
	}
	if fav {
		return false, s.Repo.RemoveFavorite(userID, dishID)
	}
	return true, s.Repo.AddFavorite(userID, dishID)
}

func (s *DishService) ListFavorites(userID uint) ([]entity.Dish, error) {
	return s.Repo.ListFavorites(userID)
}
