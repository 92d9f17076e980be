package service

import (
	"bytes"
	"fmt"

	"github.com/benbeisheim/movecheck-backend/internal/model"
	"github.com/benbeisheim/movecheck-backend/internal/render"
	"github.com/benbeisheim/movecheck-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

// CreateGame hosts a new board in the starting position. An empty rules
// value selects the manager's default.
func (gs *GameService) CreateGame(rules string) (string, model.Ruleset, error) {
	ruleset := gs.gameManager.DefaultRules()
	if rules != "" {
		parsed, err := model.ParseRuleset(rules)
		if err != nil {
			return "", "", err
		}
		ruleset = parsed
	}

	gameID := uuid.New().String()
	if err := gs.gameManager.CreateGame(gameID, ruleset); err != nil {
		return "", "", fmt.Errorf("failed to create game: %w", err)
	}

	return gameID, ruleset, nil
}

func (gs *GameService) ListGames() []string {
	return gs.gameManager.ListGames()
}

func (gs *GameService) DeleteGame(gameID string) error {
	return gs.gameManager.DeleteGame(gameID)
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) RenderText(gameID string) (string, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return "", err
	}
	return game.Render(), nil
}

func (gs *GameService) RenderSVG(gameID string) ([]byte, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	render.SVG(&buf, game.Snapshot())
	return buf.Bytes(), nil
}

func (gs *GameService) HandleMove(gameID string, move model.MoveRequest) (model.Result, error) {
	return gs.gameManager.MakeMove(gameID, move)
}

func (gs *GameService) RegisterConnection(gameID string, clientID string, conn *websocket.Conn) error {
	return gs.gameManager.RegisterConnection(gameID, clientID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, clientID string) {
	gs.gameManager.UnregisterConnection(gameID, clientID)
}

// Send writes msg to conn, serialized with the game's other writers.
func (gs *GameService) Send(gameID string, conn *websocket.Conn, msg ws.Message) error {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.Send(conn, msg)
}
