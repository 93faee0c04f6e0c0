package controllers

import (
	"strconv"

	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/pkg/resp"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/services"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/utils"
	"github.com/gin-gonic/gin"
)

type ChatController struct {
	Svc *services.ChatService
}

func NewChatController(svc *services.ChatService) *ChatController {
	return &ChatController{Svc: svc}
}

// GET /orders/:id/chat
func (h *ChatController) RoomForOrder(c *gin.Context) {
	room, err := h.Svc.RoomForOrder(utils.CurrentUserID(c), uintParam(c, "id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, room)
}

// GET /chat/rooms/:id/messages?limit=
func (h *ChatController) ListMessages(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 200 {
			resp.BadRequest(c, "invalid limit")
			return
		}
		limit = n
	}
	msgs, err := h.Svc.ListMessages(utils.CurrentUserID(c), uintParam(c, "id"), limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, msgs)
}
