package services

import (
	"errors"
	"math"
	"strings"

	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/entity"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/pkg/apperr"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/pricing"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/repository"
	"gorm.io/gorm"
)

// priceTolerance is the largest client/server total disagreement accepted
// before a write is rejected (half a cent of float drift).
const priceTolerance = 0.005

type MealPlanService struct {
	Repo     *repository.MealPlanRepository
	DishRepo *repository.DishRepository
}

func NewMealPlanService(repo *repository.MealPlanRepository, dishRepo *repository.DishRepository) *MealPlanService {
	return &MealPlanService{Repo: repo, DishRepo: dishRepo}
}

type SlotIn struct {
	Slot                string        `json:"slot" binding:"required"`
	DishID              uint          `json:"dishId" binding:"required"`
	Quantity            int           `json:"quantity" binding:"required,min=1"`
	Days                []string      `json:"days"`
	SpecialInstructions string        `json:"specialInstructions"`
	Selections          []SelectionIn `json:"selections"`
}

type MealPlanIn struct {
	Name       string   `json:"name" binding:"required"`
	Image      string   `json:"image"`
	TotalPrice float64  `json:"totalPrice"`
	Slots      []SlotIn `json:"slots"`
}

// buildSlots validates the slot map and snapshots each bound dish. The
// returned total is the authoritative server-side plan price.
func (s *MealPlanService) buildSlots(in []SlotIn) ([]entity.MealPlanSlot, float64, error) {
	seen := make(map[string]bool)
	slots := make([]entity.MealPlanSlot, 0, len(in))
	priced := make([]pricing.Slot, 0, len(in))

	for _, slotIn := range in {
		key := strings.ToLower(strings.TrimSpace(slotIn.Slot))
		if !entity.ValidSlotKey(key) {
			return nil, 0, apperr.Validationf("unknown slot %q", slotIn.Slot)
		}
		if seen[key] {
			return nil, 0, apperr.Validationf("slot %q bound twice", key)
		}
		seen[key] = true

		for _, d := range slotIn.Days {
			if !entity.ValidWeekday(d) {
				return nil, 0, apperr.Validationf("unknown weekday %q", d)
			}
		}

		dish, err := s.DishRepo.GetWithModifiers(slotIn.DishID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, 0, apperr.NotFoundf("dish %d", slotIn.DishID)
			}
			return nil, 0, err
		}

		chosen, err := resolveSelections(dish, slotIn.Selections)
		if err != nil {
			return nil, 0, err
		}

		mods := make([]entity.MealPlanSlotModifier, 0, len(chosen))
		for _, c := range chosen {
			mods = append(mods, entity.MealPlanSlotModifier{
				GroupTitle: c.GroupTitle,
				ItemTitle:  c.ItemTitle,
				Price:      c.Price,
			})
		}

		slots = append(slots, entity.MealPlanSlot{
			Slot:                key,
			DishID:              dish.ID,
			DishName:            dish.Name,
			DishPhoto:           dish.Photo,
			DishPrice:           dish.Price,
			Quantity:            slotIn.Quantity,
			Days:                slotIn.Days,
			SpecialInstructions: slotIn.SpecialInstructions,
			Modifiers:           mods,
		})
		priced = append(priced, pricing.Slot{
			DishPrice: dish.Price,
			Modifiers: pricingItems(chosen),
			Quantity:  slotIn.Quantity,
			Days:      slotIn.Days,
		})
	}

	return slots, pricing.PlanTotal(priced), nil
}

func (s *MealPlanService) Create(chefID uint, in *MealPlanIn) (*entity.MealPlan, error) {
	slots, total, err := s.buildSlots(in.Slots)
	if err != nil {
		return nil, err
	}
	// the server total is authoritative; a client total that disagrees is a
	// stale or tampered form
	if in.TotalPrice != 0 && math.Abs(in.TotalPrice-total) > priceTolerance {
		return nil, apperr.Validationf("totalPrice %.2f disagrees with computed %.2f", in.TotalPrice, total)
	}

	p := &entity.MealPlan{
		ChefID:     chefID,
		Name:       strings.TrimSpace(in.Name),
		Image:      in.Image,
		TotalPrice: total,
		Slots:      slots,
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *MealPlanService) Get(id uint) (*entity.MealPlan, error) {
	p, err := s.Repo.GetWithSlots(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("meal plan %d", id)
		}
		return nil, err
	}
	return p, nil
}

func (s *MealPlanService) List() ([]entity.MealPlan, error) {
	return s.Repo.List()
}

func (s *MealPlanService) ListByChef(chefID uint) ([]entity.MealPlan, error) {
	return s.Repo.ListByChef(chefID)
}

func (s *MealPlanService) Update(chefID, planID uint, in *MealPlanIn) (*entity.MealPlan, error) {
	p, err := s.Get(planID)
	if err != nil {
		return nil, err
	}
	if p.ChefID != chefID {
		return nil, apperr.Forbiddenf("meal plan %d is not yours", planID)
	}

	slots, total, err := s.buildSlots(in.Slots)
	if err != nil {
		return nil, err
	}
	if in.TotalPrice != 0 && math.Abs(in.TotalPrice-total) > priceTolerance {
		return nil, apperr.Validationf("totalPrice %.2f disagrees with computed %.2f", in.TotalPrice, total)
	}

	p.Name = strings.TrimSpace(in.Name)
	p.Image = in.Image
	p.TotalPrice = total
	if err := s.Repo.Update(p, slots); err != nil {
		return nil, err
	}
	return s.Get(planID)
}

// Delete removes the plan; existing subscriptions keep their denormalized
// price and continue unaffected.
func (s *MealPlanService) Delete(chefID, planID uint) error {
	p, err := s.Get(planID)
	if err != nil {
		return err
	}
	if p.ChefID != chefID {
		return apperr.Forbiddenf("meal plan %d is not yours", planID)
	}
	return s.Repo.Delete(planID)
}
