package controller

import (
	"github.com/benbeisheim/movecheck-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// RegisterRoutes mounts the REST and WebSocket endpoints on app.
func RegisterRoutes(app *fiber.App, gc *GameController, wsc *WebSocketController, origins []string) {
	// WebSocket route
	app.Get("/ws/board/:boardId",
		middleware.EnsureClientID(),
		middleware.WebSocketUpgrade(),
		websocket.New(wsc.HandleConnection, websocket.Config{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			Origins:         origins,
		}),
	)

	// REST routes
	api := app.Group("/api", middleware.EnsureClientID())

	boardRoutes := api.Group("/board")
	boardRoutes.Post("/", gc.CreateGame)
	boardRoutes.Get("/", gc.ListGames)
	boardRoutes.Get("/:boardId", gc.GetGameState)
	boardRoutes.Delete("/:boardId", gc.DeleteGame)
	boardRoutes.Get("/:boardId/text", gc.RenderText)
	boardRoutes.Get("/:boardId/svg", gc.RenderSVG)
	boardRoutes.Post("/:boardId/move", gc.MakeMove)
}
