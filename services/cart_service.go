package services

import (
	"errors"

	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/entity"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/pkg/apperr"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/pricing"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/repository"
	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	DishRepo *repository.DishRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, dr *repository.DishRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, DishRepo: dr}
}

type AddToCartIn struct {
	DishID              uint          `json:"dishId" binding:"required"`
	ChefID              uint          `json:"chefId" binding:"required"`
	Quantity            int           `json:"quantity" binding:"required,min=1"`
	SpecialInstructions string        `json:"specialInstructions"`
	Selections          []SelectionIn `json:"selections"`
}

// Get returns the cart with a derived subtotal; a diner without a cart gets
// an empty one.
func (s *CartService) Get(dinerID uint) (*entity.Cart, float64, error) {
	c, err := s.CartRepo.GetCartWithItems(dinerID)
	if err != nil {
		return nil, 0, err
	}
	var subtotal float64
	for _, it := range c.Items {
		subtotal += it.LineTotal
	}
	return c, subtotal, nil
}

// Add puts a dish in the diner's cart, merging with an existing line for
// the same dish. The summed quantity of one dish never exceeds
// entity.MaxDishQuantity; an add that would cross the cap is rejected and
// the cart is left unchanged.
func (s *CartService) Add(dinerID uint, in *AddToCartIn) error {
	dish, err := s.DishRepo.GetWithModifiers(in.DishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("dish %d", in.DishID)
		}
		return err
	}
	if dish.ChefID != in.ChefID {
		return apperr.Validationf("dish %d does not belong to chef %d", in.DishID, in.ChefID)
	}
	if dish.Name == "" || dish.Price <= 0 {
		return apperr.Validationf("dish %d is missing required catalog data", in.DishID)
	}

	chosen, err := resolveSelections(dish, in.Selections)
	if err != nil {
		return err
	}

	cart, err := s.CartRepo.GetOrCreateCart(dinerID)
	if err != nil {
		return err
	}

	existing, err := s.CartRepo.DishQuantity(cart.ID, dish.ID)
	if err != nil {
		return err
	}
	if existing+in.Quantity > entity.MaxDishQuantity {
		return apperr.ErrLimitExceeded
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		line, err := s.CartRepo.FindItemByDish(cart.ID, dish.ID)
		if err == nil {
			// merge by dish: bump quantity, retotal from the stored snapshot
			line.Quantity += in.Quantity
			line.LineTotal = pricing.LineTotal(line.BasePrice, snapshotItems(line.Modifiers), line.Quantity)
			return s.CartRepo.SaveItem(tx, line)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		mods := make([]entity.CartItemModifier, 0, len(chosen))
		for _, c := range chosen {
			mods = append(mods, entity.CartItemModifier{
				GroupTitle: c.GroupTitle,
				ItemTitle:  c.ItemTitle,
				Price:      c.Price,
			})
		}
		item := &entity.CartItem{
			CartID:              cart.ID,
			DishID:              dish.ID,
			ChefID:              dish.ChefID,
			Name:                dish.Name,
			Photo:               dish.Photo,
			BasePrice:           dish.Price,
			Quantity:            in.Quantity,
			LineTotal:           pricing.LineTotal(dish.Price, pricingItems(chosen), in.Quantity),
			SpecialInstructions: in.SpecialInstructions,
			Modifiers:           mods,
		}
		return s.CartRepo.CreateItem(tx, item)
	})
}

// UpdateQuantity overwrites a line's quantity and recomputes its total.
func (s *CartService) UpdateQuantity(dinerID, itemID uint, quantity int) error {
	if quantity < 1 {
		return apperr.Validationf("quantity must be at least 1")
	}
	line, err := s.CartRepo.GetItemForDiner(dinerID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("cart item %d", itemID)
		}
		return err
	}

	other, err := s.CartRepo.DishQuantity(line.CartID, line.DishID)
	if err != nil {
		return err
	}
	if other-line.Quantity+quantity > entity.MaxDishQuantity {
		return apperr.ErrLimitExceeded
	}

	line.Quantity = quantity
	line.LineTotal = pricing.LineTotal(line.BasePrice, snapshotItems(line.Modifiers), quantity)
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.SaveItem(tx, line)
	})
}

func (s *CartService) RemoveItem(dinerID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.CartRepo.RemoveItem(tx, dinerID, itemID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.NotFoundf("cart item %d", itemID)
		}
		return nil
	})
}

func snapshotItems(mods []entity.CartItemModifier) []pricing.ModifierItem {
	out := make([]pricing.ModifierItem, 0, len(mods))
	for _, m := range mods {
		out = append(out, pricing.ModifierItem{Title: m.ItemTitle, Price: m.Price})
	}
	return out
}
