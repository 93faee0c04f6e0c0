// Package pricing holds the pure price arithmetic shared by carts, orders,
// meal plans and subscriptions. Callers are responsible for validating
// their inputs (required-modifier rules, quantity caps); these functions
// only compute.
package pricing

// ModifierItem is a selected priced option.
type ModifierItem struct {
	Title string
	Price float64
}

// Slot is one meal-plan slot with a dish bound. Slots without a dish are
// simply not passed in.
type Slot struct {
	DishPrice float64
	Modifiers []ModifierItem
	Quantity  int
	Days      []string
}

// LineTotal is quantity * (basePrice + sum of selected modifier prices).
func LineTotal(basePrice float64, modifiers []ModifierItem, quantity int) float64 {
	unit := basePrice
	for _, m := range modifiers {
		unit += m.Price
	}
	return unit * float64(quantity)
}

// SlotSubtotal prices one slot across the weekdays it recurs on. A slot
// with no active days contributes nothing.
func SlotSubtotal(dishPrice float64, modifiers []ModifierItem, quantity int, days []string) float64 {
	return LineTotal(dishPrice, modifiers, quantity) * float64(len(days))
}

// PlanTotal sums SlotSubtotal over the bound slots of a plan.
func PlanTotal(slots []Slot) float64 {
	var total float64
	for _, s := range slots {
		total += SlotSubtotal(s.DishPrice, s.Modifiers, s.Quantity, s.Days)
	}
	return total
}

// SubscriptionTotal is the plan total over the subscribed number of weeks.
func SubscriptionTotal(planTotal float64, weeks int) float64 {
	return planTotal * float64(weeks)
}
