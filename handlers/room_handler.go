package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/virtuixrw/backend/database"
	"github.com/virtuixrw/backend/models"
	"github.com/virtuixrw/backend/services"
)

type CreateRoomRequest struct {
	Name      string  `json:"name" validate:"required,min=3,max=100"`
	EntryFee  float64 `json:"entry_fee" validate:"gte=0"`
	BonusPool float64 `json:"bonus_pool" validate:"required,gt=0"`
}

func ListRooms(c *fiber.Ctx) error {
	var rooms []models.Room
	if err := database.DB.Where("status = ?", models.RoomActive).
		Order("created_at DESC").
		Find(&rooms).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load rooms"})
	}
	return c.JSON(rooms)
}

func CreateRoom(c *fiber.Ctx) error {
	var req CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	room, err := services.CreateRoom(currentUserID(c), req.Name, req.EntryFee, req.BonusPool)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(room)
}

func JoinRoom(c *fiber.Ctx) error {
	roomID, err := uuid.Parse(c.Params("roomId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid room ID"})
	}

	if err := services.JoinRoom(currentUserID(c), roomID); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"status": "success", "message": "Room joined"})
}
