package controllers

import (
	"io"
	"log"

	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/payments"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/pkg/resp"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/services"
	"github.com/gin-gonic/gin"
)

// PaymentController terminates the gateway's webhook and the browser's
// success redirect. The webhook is the source of truth for payment state;
// the redirect only reads it back for the UI.
type PaymentController struct {
	Gateway payments.Gateway
	Orders  *services.OrderService
	Subs    *services.SubscriptionService
}

func NewPaymentController(gw payments.Gateway, orders *services.OrderService, subs *services.SubscriptionService) *PaymentController {
	return &PaymentController{Gateway: gw, Orders: orders, Subs: subs}
}

// POST /payments/webhook
func (h *PaymentController) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		resp.BadRequest(c, "read body failed")
		return
	}

	event, err := h.Gateway.VerifyWebhook(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		resp.Error(c, err)
		return
	}

	if event.Type != payments.EventCheckoutCompleted {
		// acknowledge everything else so the gateway stops retrying
		resp.OK(c, gin.H{"received": true})
		return
	}

	switch event.Metadata["kind"] {
	case "order":
		err = h.Orders.MarkPaidBySession(event.SessionID)
	case "subscription":
		err = h.Subs.ActivateBySession(event.SessionID)
	default:
		log.Printf("webhook: session %s without kind metadata", event.SessionID)
	}
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"received": true})
}

// GET /payments/success?session_id=
func (h *PaymentController) Success(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		resp.BadRequest(c, "missing session_id")
		return
	}
	// state was already settled by the webhook; report it for the UI
	if o, err := h.Orders.Repo.FindBySession(sessionID); err == nil {
		resp.OK(c, gin.H{"kind": "order", "orderId": o.ID, "paid": o.PaidAt != nil})
		return
	}
	if s, err := h.Subs.Repo.FindBySession(sessionID); err == nil {
		resp.OK(c, gin.H{"kind": "subscription", "subscriptionId": s.ID, "status": s.Status})
		return
	}
	resp.NotFound(c, "unknown session")
}

// GET /payments/cancel
func (h *PaymentController) Cancel(c *gin.Context) {
	resp.OK(c, gin.H{"cancelled": true})
}
