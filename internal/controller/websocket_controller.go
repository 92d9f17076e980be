package controller

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/benbeisheim/movecheck-backend/internal/middleware"
	"github.com/benbeisheim/movecheck-backend/internal/model"
	"github.com/benbeisheim/movecheck-backend/internal/service"
	"github.com/benbeisheim/movecheck-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("boardId")
	clientID, _ := c.Locals(middleware.ClientIDKey).(string)

	if err := wsc.gameService.RegisterConnection(gameID, clientID, c); err != nil {
		log.Printf("Failed to register connection: %v", err)
		c.Close()
		return
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Printf("read error: %v", err)
			break
		}

		if messageType != websocket.TextMessage {
			continue
		}
		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("parse error: %v", err)
			wsc.sendError(gameID, c, "malformed message")
			continue
		}

		if err := wsc.handleMessage(gameID, c, msg); err != nil {
			log.Printf("handle error: %v", err)
			wsc.sendError(gameID, c, err.Error())
		}
	}

	wsc.gameService.UnregisterConnection(gameID, clientID)
}

func (wsc *WebSocketController) handleMessage(gameID string, c *websocket.Conn, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move model.MoveRequest
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return err
		}
		result, err := wsc.gameService.HandleMove(gameID, move)
		if err != nil {
			return err
		}
		reply, err := ws.NewMessage(ws.MessageTypeMoveResult, result)
		if err != nil {
			return err
		}
		return wsc.gameService.Send(gameID, c, reply)

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(gameID string, c *websocket.Conn, errorMsg string) {
	msg, err := ws.NewMessage(ws.MessageTypeError, ws.ErrorPayload{Error: errorMsg})
	if err != nil {
		return
	}
	if err := wsc.gameService.Send(gameID, c, msg); err != nil {
		log.Printf("failed to send error: %v", err)
	}
}
