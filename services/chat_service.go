package services

import (
	"errors"
	"strings"

	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/entity"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/pkg/apperr"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/repository"
	"gorm.io/gorm"
)

type ChatService struct {
	Repo      *repository.ChatRepository
	OrderRepo *repository.OrderRepository
}

func NewChatService(repo *repository.ChatRepository, orderRepo *repository.OrderRepository) *ChatService {
	return &ChatService{Repo: repo, OrderRepo: orderRepo}
}

// CanAccessOrder allows the order's diner and any chef with a line item.
func (s *ChatService) CanAccessOrder(userID, orderID uint) (bool, error) {
	o, err := s.OrderRepo.Get(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperr.NotFoundf("order %d", orderID)
		}
		return false, err
	}
	if o.DinerID == userID {
		return true, nil
	}
	return s.OrderRepo.ChefOwnsItem(orderID, userID)
}

// RoomForOrder opens (or finds) the conversation attached to an order.
func (s *ChatService) RoomForOrder(userID, orderID uint) (*entity.ChatRoom, error) {
	ok, err := s.CanAccessOrder(userID, orderID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Forbiddenf("order %d is not yours", orderID)
	}
	return s.Repo.GetOrCreateRoomForOrder(orderID)
}

func (s *ChatService) GetRoomByID(roomID uint) (*entity.ChatRoom, error) {
	room, err := s.Repo.GetRoom(roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("chat room %d", roomID)
		}
		return nil, err
	}
	return room, nil
}

func (s *ChatService) SendMessage(roomID, senderID uint, body string) (*entity.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, apperr.Validationf("empty message")
	}
	m := &entity.Message{RoomID: roomID, SenderID: senderID, Body: body}
	if err := s.Repo.CreateMessage(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *ChatService) ListMessages(userID, roomID uint, limit int) ([]entity.Message, error) {
	room, err := s.GetRoomByID(roomID)
	if err != nil {
		return nil, err
	}
	ok, err := s.CanAccessOrder(userID, room.OrderID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Forbiddenf("chat room %d is not yours", roomID)
	}
	return s.Repo.ListMessages(roomID, limit)
}
