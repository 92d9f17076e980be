package model

import "fmt"

// MoveRequest is a move as entered by a user, in algebraic coordinates.
type MoveRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type SimpleMove struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// Reason says why a move was not applied.
type Reason string

const (
	ReasonNone        Reason = ""
	ReasonEmptyOrigin Reason = "empty origin"
	ReasonWrongPiece  Reason = "wrong piece"
	ReasonOffBoard    Reason = "off board"
	ReasonNullMove    Reason = "null move"
	ReasonGeometry    Reason = "illegal geometry"
	ReasonBlocked     Reason = "path blocked"
	ReasonOwnPiece    Reason = "own piece"
	ReasonOccupied    Reason = "occupied"
	// ReasonPawnCapture marks a classic pawn capture: the board changed but
	// the move is reported invalid.
	ReasonPawnCapture Reason = "pawn capture unreported"
)

// Result is the outcome of a single validation attempt. When Valid is
// false the board is unchanged, except for a classic pawn capture.
type Result struct {
	Valid    bool     `json:"valid"`
	From     Position `json:"from"`
	To       Position `json:"to"`
	Piece    Piece    `json:"piece"`
	Captured *Piece   `json:"captured,omitempty"`
	Reason   Reason   `json:"reason,omitempty"`
	Notation string   `json:"notation,omitempty"`
}

// Mutated reports whether the attempt changed the board.
func (r Result) Mutated() bool {
	return r.Valid || r.Reason == ReasonPawnCapture
}

func (r Result) reject(reason Reason) Result {
	r.Valid = false
	r.Reason = reason
	return r
}

func (r Result) String() string {
	if r.Valid {
		return fmt.Sprintf("%s %s", r.Piece, r.Notation)
	}
	return fmt.Sprintf("%s-%s rejected: %s", r.From, r.To, r.Reason)
}

func (p Position) getFileNotation() string {
	return fmt.Sprintf("%c", p.Col+'a')
}

func getNotation(piece Piece, from, to Position, capture bool) string {
	pieceNotationPrefix := piece.Type.getPieceNotation()
	pieceNotationCapture := ""
	if capture {
		pieceNotationCapture = "x"
	}
	pawnFileSpecifier := ""
	if piece.Type == Pawn && from.Col != to.Col {
		pawnFileSpecifier = from.getFileNotation()
	}
	return fmt.Sprintf("%s%s%s%s", pieceNotationPrefix, pawnFileSpecifier, pieceNotationCapture, to)
}
