package controller

import (
	"errors"
	"log"

	"github.com/benbeisheim/movecheck-backend/internal/model"
	"github.com/benbeisheim/movecheck-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

// errorStatus maps service and model errors onto HTTP status codes.
func errorStatus(err error) int {
	var coordErr *model.CoordinateError
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.As(err, &coordErr), errors.Is(err, model.ErrUnknownRuleset):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func errorResponse(c *fiber.Ctx, err error) error {
	return c.Status(errorStatus(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, rules, err := gc.gameService.CreateGame(c.Query("rules"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Board created",
		"board_id": gameID,
		"rules":    rules,
	})
}

func (gc *GameController) ListGames(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"boards": gc.gameService.ListGames(),
	})
}

func (gc *GameController) DeleteGame(c *fiber.Ctx) error {
	if err := gc.gameService.DeleteGame(c.Params("boardId")); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("boardId"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) RenderText(c *fiber.Ctx) error {
	text, err := gc.gameService.RenderText(c.Params("boardId"))
	if err != nil {
		return errorResponse(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(text)
}

func (gc *GameController) RenderSVG(c *fiber.Ctx) error {
	image, err := gc.gameService.RenderSVG(c.Params("boardId"))
	if err != nil {
		return errorResponse(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/svg+xml")
	return c.Send(image)
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var move model.MoveRequest
	if err := c.BodyParser(&move); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid move body",
		})
	}

	result, err := gc.gameService.HandleMove(c.Params("boardId"), move)
	if err != nil {
		log.Printf("move %s-%s rejected: %v", move.From, move.To, err)
		return errorResponse(c, err)
	}
	return c.JSON(result)
}
