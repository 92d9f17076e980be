package model

import "strings"

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

func (p PieceType) getPieceNotation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return ""
	}
	return ""
}

type Side string

const (
	White Side = "white"
	Black Side = "black"
)

// Piece is the content of one square. The zero value is an empty square
// and carries no side.
type Piece struct {
	Type  PieceType `json:"type,omitempty"`
	Color Side      `json:"color,omitempty"`
}

var Empty = Piece{}

func (p Piece) IsEmpty() bool {
	return p.Type == ""
}

func (p Piece) Glyph() string {
	switch p.Color {
	case White:
		switch p.Type {
		case King:
			return "♔"
		case Queen:
			return "♕"
		case Rook:
			return "♖"
		case Knight:
			return "♘"
		case Bishop:
			return "♗"
		case Pawn:
			return "♙"
		}
	case Black:
		switch p.Type {
		case King:
			return "♚"
		case Queen:
			return "♛"
		case Rook:
			return "♜"
		case Knight:
			return "♞"
		case Bishop:
			return "♝"
		case Pawn:
			return "♟"
		}
	}
	return "·"
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return string(p.Color) + " " + string(p.Type)
}

const boardSize = 8

// Board is an 8x8 grid indexed [row][col]; row 0 is rank 1 and col 0 is
// file a. It is not safe for concurrent use.
type Board struct {
	squares [boardSize][boardSize]Piece
	rules   Ruleset
}

var backRank = [boardSize]PieceType{Rook, Knight, Bishop, King, Queen, Bishop, Knight, Rook}

// NewBoard returns a board in the starting position that validates moves
// with the given ruleset.
func NewBoard(rules Ruleset) *Board {
	if rules == "" {
		rules = Classic
	}
	board := &Board{rules: rules}
	for i := 0; i < boardSize; i++ {
		board.squares[0][i] = Piece{Type: backRank[i], Color: White}
		board.squares[1][i] = Piece{Type: Pawn, Color: White}
		board.squares[6][i] = Piece{Type: Pawn, Color: Black}
		board.squares[7][i] = Piece{Type: backRank[i], Color: Black}
	}
	return board
}

// NewEmptyBoard returns a board with no pieces on it.
func NewEmptyBoard(rules Ruleset) *Board {
	if rules == "" {
		rules = Classic
	}
	return &Board{rules: rules}
}

func (b *Board) Rules() Ruleset {
	return b.rules
}

// At returns the content of the square at pos. pos must be on the board.
func (b *Board) At(pos Position) Piece {
	return b.squares[pos.Row][pos.Col]
}

// Place puts piece on the square at pos, replacing whatever was there.
func (b *Board) Place(pos Position, piece Piece) {
	b.squares[pos.Row][pos.Col] = piece
}

// Squares returns a copy of the grid.
func (b *Board) Squares() [boardSize][boardSize]Piece {
	return b.squares
}

// Occupied counts the non-empty squares.
func (b *Board) Occupied() int {
	count := 0
	for row := range b.squares {
		for _, piece := range b.squares[row] {
			if !piece.IsEmpty() {
				count++
			}
		}
	}
	return count
}

func (b *Board) colorAt(pos Position) Side {
	return b.squares[pos.Row][pos.Col].Color
}

// relocate commits a move: the origin content lands on the destination
// and the origin becomes empty.
func (b *Board) relocate(from, to Position) {
	b.squares[to.Row][to.Col] = b.squares[from.Row][from.Col]
	b.squares[from.Row][from.Col] = Empty
}

// String renders the board as 8 lines of glyphs, rank 1 first.
func (b *Board) String() string {
	var sb strings.Builder
	for row := range b.squares {
		for _, piece := range b.squares[row] {
			sb.WriteString(piece.Glyph())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
