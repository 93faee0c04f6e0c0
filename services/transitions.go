package services

import (
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/entity"
)

// Status moves are explicit: anything not listed is rejected. Cancellation
// is reachable from every non-terminal state; delivered and cancelled are
// terminal.
var orderTransitions = map[string][]string{
	entity.OrderPending:        {entity.OrderInProgress, entity.OrderCancelled},
	entity.OrderInProgress:     {entity.OrderOutForDelivery, entity.OrderCancelled},
	entity.OrderOutForDelivery: {entity.OrderDelivered, entity.OrderCancelled},
}

var subscriptionTransitions = map[string][]string{
	entity.SubscriptionPending: {entity.SubscriptionActive, entity.SubscriptionCancelled},
	entity.SubscriptionActive:  {entity.SubscriptionPaused, entity.SubscriptionCancelled},
	entity.SubscriptionPaused:  {entity.SubscriptionActive, entity.SubscriptionCancelled},
}

func canTransition(table map[string][]string, from, to string) bool {
	for _, next := range table[from] {
		if next == to {
			return true
		}
	}
	return false
}

func canTransitionOrder(from, to string) bool {
	return canTransition(orderTransitions, from, to)
}

func canTransitionSubscription(from, to string) bool {
	return canTransition(subscriptionTransitions, from, to)
}
