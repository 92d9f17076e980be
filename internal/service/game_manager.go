// service/game_manager.go
package service

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/benbeisheim/movecheck-backend/internal/model"
	"github.com/gofiber/websocket/v2"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
)

type GameManager struct {
	games map[string]*model.Game
	rules model.Ruleset
	mu    sync.RWMutex
}

// NewGameManager returns a manager whose games default to rules.
func NewGameManager(rules model.Ruleset) *GameManager {
	if rules == "" {
		rules = model.Classic
	}
	return &GameManager{
		games: make(map[string]*model.Game),
		rules: rules,
	}
}

func (gm *GameManager) DefaultRules() model.Ruleset {
	return gm.rules
}

func (gm *GameManager) CreateGame(gameID string, rules model.Ruleset) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return fmt.Errorf("%w: %s", ErrGameExists, gameID)
	}
	if rules == "" {
		rules = gm.rules
	}

	gm.games[gameID] = model.NewGame(gameID, rules)
	log.Printf("[new game: %s] rules=%s", gameID, rules)
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}

	return game, nil
}

// ListGames returns the IDs of all hosted games in sorted order.
func (gm *GameManager) ListGames() []string {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	ids := make([]string, 0, len(gm.games))
	for id := range gm.games {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (gm *GameManager) DeleteGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; !exists {
		return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	delete(gm.games, gameID)
	log.Printf("[game removed: %s]", gameID)
	return nil
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}

	return game.GetState(), nil
}

func (gm *GameManager) MakeMove(gameID string, move model.MoveRequest) (model.Result, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.Result{}, err
	}

	return game.MakeMove(move)
}

func (gm *GameManager) RegisterConnection(gameID string, clientID string, conn *websocket.Conn) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}

	return game.RegisterConnection(clientID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, clientID string) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}

	game.UnregisterConnection(clientID)
}
