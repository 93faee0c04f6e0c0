package repository

import (
	"errors"

	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/entity"
	"gorm.io/gorm"
)

type ChatRepository struct{ DB *gorm.DB }

func NewChatRepository(db *gorm.DB) *ChatRepository { return &ChatRepository{DB: db} }

func (r *ChatRepository) GetRoom(roomID uint) (*entity.ChatRoom, error) {
	var room entity.ChatRoom
	if err := r.DB.First(&room, roomID).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *ChatRepository) GetOrCreateRoomForOrder(orderID uint) (*entity.ChatRoom, error) {
	var room entity.ChatRoom
	err := r.DB.Where("order_id = ?", orderID).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		room = entity.ChatRoom{OrderID: orderID}
		if err := r.DB.Create(&room).Error; err != nil {
			return nil, err
		}
		return &room, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *ChatRepository) CreateMessage(m *entity.Message) error {
	return r.DB.Create(m).Error
}

func (r *ChatRepository) ListMessages(roomID uint, limit int) ([]entity.Message, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []entity.Message
	err := r.DB.Where("room_id = ?", roomID).
		Order("id DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	// oldest first for display
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}
