package services

import (
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/entity"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/pkg/apperr"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/pricing"
)

// SelectionIn references one modifier item chosen for a dish.
type SelectionIn struct {
	ModifierItemID uint `json:"modifierItemId" binding:"required"`
}

// chosenModifier is a selection snapshotted by title and price, detached
// from the dish so later edits never reprice existing lines.
type chosenModifier struct {
	GroupTitle string
	ItemTitle  string
	Price      float64
}

// resolveSelections validates a set of modifier-item ids against the dish's
// groups: every id must belong to the dish, required groups get exactly one
// selection, optional groups at most their limit.
func resolveSelections(dish *entity.Dish, selections []SelectionIn) ([]chosenModifier, error) {
	type ref struct {
		group *entity.Modifier
		item  *entity.ModifierItem
	}
	index := make(map[uint]ref)
	for gi := range dish.Modifiers {
		g := &dish.Modifiers[gi]
		for ii := range g.Items {
			index[g.Items[ii].ID] = ref{group: g, item: &g.Items[ii]}
		}
	}

	counts := make(map[uint]int)
	seen := make(map[uint]bool)
	out := make([]chosenModifier, 0, len(selections))
	for _, sel := range selections {
		r, ok := index[sel.ModifierItemID]
		if !ok {
			return nil, apperr.Validationf("modifier item %d does not belong to dish %q", sel.ModifierItemID, dish.Name)
		}
		if seen[sel.ModifierItemID] {
			return nil, apperr.Validationf("modifier item %d selected twice", sel.ModifierItemID)
		}
		seen[sel.ModifierItemID] = true
		counts[r.group.ID]++
		out = append(out, chosenModifier{
			GroupTitle: r.group.Title,
			ItemTitle:  r.item.Title,
			Price:      r.item.Price,
		})
	}

	for gi := range dish.Modifiers {
		g := &dish.Modifiers[gi]
		n := counts[g.ID]
		if g.Required && n != 1 {
			return nil, apperr.Validationf("modifier %q requires exactly one selection", g.Title)
		}
		if !g.Required && g.Limit > 0 && n > g.Limit {
			return nil, apperr.Validationf("modifier %q allows at most %d selections", g.Title, g.Limit)
		}
	}
	return out, nil
}

func pricingItems(chosen []chosenModifier) []pricing.ModifierItem {
	out := make([]pricing.ModifierItem, 0, len(chosen))
	for _, c := range chosen {
		out = append(out, pricing.ModifierItem{Title: c.ItemTitle, Price: c.Price})
	}
	return out
}
