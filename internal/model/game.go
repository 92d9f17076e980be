package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/benbeisheim/movecheck-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
	"golang.org/x/exp/maps"
)

var ErrDuplicateConnection = errors.New("connection already exists")

// The connections watching a specific game
type GameConnections struct {
	connections map[string]*websocket.Conn // clientID -> connection
	mu          sync.RWMutex
	writeMu     sync.Mutex // a websocket connection allows one writer at a time
}

// Game hosts one board and the clients watching it. The board itself is
// not thread-safe; every access goes through mu.
type Game struct {
	ID          string
	mu          sync.Mutex
	board       *Board
	sound       string
	lastMove    *SimpleMove
	connections *GameConnections
}

type GameState struct {
	ID       string                      `json:"id"`
	Rules    Ruleset                     `json:"rules"`
	Board    [boardSize][boardSize]Piece `json:"board"`
	Occupied int                         `json:"occupied"`
	Sound    string                      `json:"sound"`
	LastMove *SimpleMove                 `json:"lastMove"`
}

func NewGame(id string, rules Ruleset) *Game {
	return &Game{
		ID:          id,
		board:       NewBoard(rules),
		connections: NewGameConnections(),
	}
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state()
}

func (g *Game) state() GameState {
	return GameState{
		ID:       g.ID,
		Rules:    g.board.Rules(),
		Board:    g.board.Squares(),
		Occupied: g.board.Occupied(),
		Sound:    g.sound,
		LastMove: g.lastMove,
	}
}

// Render returns the glyph rendering of the board.
func (g *Game) Render() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.board.String()
}

// Snapshot returns a copy of the board that the caller may read freely.
func (g *Game) Snapshot() *Board {
	g.mu.Lock()
	defer g.mu.Unlock()

	cp := *g.board
	return &cp
}

// MakeMove validates and applies a move. Only malformed coordinates
// produce an error; an illegal move is a Result with Valid unset.
func (g *Game) MakeMove(move MoveRequest) (Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	res, err := g.board.Move(move.From, move.To)
	if err != nil {
		return Result{}, err
	}
	if !res.Mutated() {
		return res, nil
	}

	g.sound = "move"
	if res.Captured != nil {
		g.sound = "capture"
	}
	g.lastMove = &SimpleMove{From: res.From, To: res.To}
	log.Printf("[%s] %s", g.ID, res)

	go g.broadcastState()

	return res, nil
}

// RegisterConnection adds conn as clientID's viewer and pushes the current
// state to every viewer. A second connection for the same client gets a
// close frame and ErrDuplicateConnection; closing it is up to the caller.
func (g *Game) RegisterConnection(clientID string, conn *websocket.Conn) error {
	if clientID == "" {
		return errors.New("client ID is required")
	}
	connID := fmt.Sprintf("%p", conn)

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[clientID]; exists {
		// If we already have a healthy connection, keep it and reject the new one
		g.connections.mu.Unlock()
		// The caller closes conn once this returns
		g.connections.writeMu.Lock()
		err := conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(
				websocket.CloseNormalClosure,
				"Connection already exists",
			),
		)
		g.connections.writeMu.Unlock()
		if err != nil {
			log.Printf("[%s] failed to send close to client %s: %v", g.ID, clientID, err)
		}
		return fmt.Errorf("client %s: %w", clientID, ErrDuplicateConnection)
	}

	g.connections.connections[clientID] = conn
	g.connections.mu.Unlock()
	log.Printf("[%s] registered connection %s for client %s", g.ID, connID, clientID)

	go g.broadcastState()
	return nil
}

func (g *Game) UnregisterConnection(clientID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	if _, exists := g.connections.connections[clientID]; exists {
		log.Printf("[%s] unregistering client %s", g.ID, clientID)
		delete(g.connections.connections, clientID)
	}
}

func (g *Game) ConnectionCount() int {
	g.connections.mu.RLock()
	defer g.connections.mu.RUnlock()

	return len(g.connections.connections)
}

// Send writes msg to a connection watching this game.
func (g *Game) Send(conn *websocket.Conn, msg ws.Message) error {
	g.connections.writeMu.Lock()
	defer g.connections.writeMu.Unlock()

	return conn.WriteJSON(msg)
}

func (g *Game) broadcastState() {
	// Snapshot the connections so no lock is held while writing
	g.connections.mu.RLock()
	activeConnections := make(map[string]*websocket.Conn, len(g.connections.connections))
	maps.Copy(activeConnections, g.connections.connections)
	g.connections.mu.RUnlock()

	if len(activeConnections) == 0 {
		return
	}

	jsonGameState, err := json.Marshal(g.GetState())
	if err != nil {
		log.Printf("[%s] failed to marshal state: %v", g.ID, err)
		return
	}

	for clientID, conn := range activeConnections {
		if err := g.Send(conn, ws.Message{
			Type:    ws.MessageTypeBoardState,
			Payload: json.RawMessage(jsonGameState),
		}); err != nil {
			log.Printf("[%s] failed to send state to client %s: %v", g.ID, clientID, err)
			g.UnregisterConnection(clientID)
		}
	}
}
