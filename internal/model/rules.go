package model

import (
	"errors"
	"fmt"
)

// Ruleset selects how strictly piece geometry is validated.
type Ruleset string

const (
	// Classic leaves rook and queen paths unchecked, lets the king move any
	// distance along one axis as long as the other moves by exactly one, and
	// applies pawn captures while reporting them as invalid.
	Classic Ruleset = "classic"
	// Standard checks rook and queen paths, limits the king to one square
	// and reports forward pawn captures as valid moves.
	Standard Ruleset = "standard"
)

// ErrUnknownRuleset is returned by ParseRuleset for names other than
// classic and standard.
var ErrUnknownRuleset = errors.New("unknown ruleset")

// ParseRuleset resolves a ruleset name. The empty string selects Classic.
func ParseRuleset(s string) (Ruleset, error) {
	switch Ruleset(s) {
	case "", Classic:
		return Classic, nil
	case Standard:
		return Standard, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownRuleset, s)
}

// LegacyOrder is the order in which TryEach attempts piece kinds.
var LegacyOrder = []PieceType{Pawn, Bishop, Knight, Rook, King, Queen}

// movementRule describes a non-pawn piece: which deltas it may travel and
// whether the squares in between must be empty.
type movementRule struct {
	legal     func(dx, dy int) bool
	clearPath bool
}

func knightJump(dx, dy int) bool {
	return (dx == 2 && dy == 1) || (dx == 1 && dy == 2)
}

func diagonal(dx, dy int) bool {
	return dx == dy && dx > 0
}

func straight(dx, dy int) bool {
	return (dx > 0 && dy == 0) || (dx == 0 && dy > 0)
}

func diagonalOrStraight(dx, dy int) bool {
	return diagonal(dx, dy) || straight(dx, dy)
}

func kingClassic(dx, dy int) bool {
	return dx == 1 || dy == 1
}

func kingStep(dx, dy int) bool {
	return dx <= 1 && dy <= 1 && dx+dy > 0
}

var classicRules = map[PieceType]movementRule{
	Knight: {legal: knightJump},
	King:   {legal: kingClassic},
	Bishop: {legal: diagonal, clearPath: true},
	Rook:   {legal: straight},
	Queen:  {legal: diagonalOrStraight},
}

var standardRules = map[PieceType]movementRule{
	Knight: {legal: knightJump},
	King:   {legal: kingStep},
	Bishop: {legal: diagonal, clearPath: true},
	Rook:   {legal: straight, clearPath: true},
	Queen:  {legal: diagonalOrStraight, clearPath: true},
}

func (rs Ruleset) rule(kind PieceType) (movementRule, bool) {
	if rs == Standard {
		r, ok := standardRules[kind]
		return r, ok
	}
	r, ok := classicRules[kind]
	return r, ok
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// Move validates from-to for whatever piece stands on from and applies it
// when legal.
func (b *Board) Move(from, to string) (Result, error) {
	fromPos, toPos, err := parsePair(from, to)
	if err != nil {
		return Result{}, err
	}
	return b.Apply(fromPos, toPos), nil
}

// MoveAs is like Move but only accepts the move if the origin holds a
// piece of the given kind.
func (b *Board) MoveAs(kind PieceType, from, to string) (Result, error) {
	fromPos, toPos, err := parsePair(from, to)
	if err != nil {
		return Result{}, err
	}
	return b.apply(kind, fromPos, toPos), nil
}

// Apply validates from-to for the piece on from and commits it when legal.
func (b *Board) Apply(from, to Position) Result {
	if !from.OnBoard() {
		return Result{From: from, To: to}.reject(ReasonOffBoard)
	}
	return b.apply(b.At(from).Type, from, to)
}

func (b *Board) MovePawn(from, to string) (bool, error)   { return b.moveKind(Pawn, from, to) }
func (b *Board) MoveKnight(from, to string) (bool, error) { return b.moveKind(Knight, from, to) }
func (b *Board) MoveBishop(from, to string) (bool, error) { return b.moveKind(Bishop, from, to) }
func (b *Board) MoveRook(from, to string) (bool, error)   { return b.moveKind(Rook, from, to) }
func (b *Board) MoveQueen(from, to string) (bool, error)  { return b.moveKind(Queen, from, to) }
func (b *Board) MoveKing(from, to string) (bool, error)   { return b.moveKind(King, from, to) }

func (b *Board) moveKind(kind PieceType, from, to string) (bool, error) {
	res, err := b.MoveAs(kind, from, to)
	return res.Valid, err
}

// TryEach attempts every piece kind in LegacyOrder and stops at the first
// attempt that does anything but reject the piece kind. Attempts for the
// wrong kind never touch the board.
func (b *Board) TryEach(from, to string) (Result, error) {
	fromPos, toPos, err := parsePair(from, to)
	if err != nil {
		return Result{}, err
	}
	var res Result
	for _, kind := range LegacyOrder {
		res = b.apply(kind, fromPos, toPos)
		if res.Reason != ReasonWrongPiece {
			return res, nil
		}
	}
	return res, nil
}

func (b *Board) apply(kind PieceType, from, to Position) Result {
	res := Result{From: from, To: to}
	if !from.OnBoard() || !to.OnBoard() {
		return res.reject(ReasonOffBoard)
	}
	res.Piece = b.At(from)
	switch {
	case res.Piece.IsEmpty():
		return res.reject(ReasonEmptyOrigin)
	case res.Piece.Type != kind:
		return res.reject(ReasonWrongPiece)
	case from == to:
		return res.reject(ReasonNullMove)
	}

	if kind == Pawn {
		return b.movePawn(res)
	}

	rule, ok := b.rules.rule(kind)
	if !ok {
		return res.reject(ReasonWrongPiece)
	}
	target := b.At(to)
	if !target.IsEmpty() && !b.captureAllowed(from, to) {
		return res.reject(ReasonOwnPiece)
	}
	if !rule.legal(abs(to.Row-from.Row), abs(to.Col-from.Col)) {
		return res.reject(ReasonGeometry)
	}
	if rule.clearPath && !b.pathClear(from, to) {
		return res.reject(ReasonBlocked)
	}
	return b.commit(res, target)
}

// captureAllowed reports whether the mover on from may displace the
// content of to. An empty square has no side and always differs.
func (b *Board) captureAllowed(from, to Position) bool {
	return b.colorAt(from) != b.colorAt(to)
}

// pathClear reports whether every square strictly between from and to on
// a straight or diagonal line is empty.
func (b *Board) pathClear(from, to Position) bool {
	rowStep, colStep := sign(to.Row-from.Row), sign(to.Col-from.Col)
	current := Position{Row: from.Row + rowStep, Col: from.Col + colStep}
	for current != to {
		if !current.OnBoard() {
			return false
		}
		if !b.At(current).IsEmpty() {
			return false
		}
		current = Position{Row: current.Row + rowStep, Col: current.Col + colStep}
	}
	return true
}

func (b *Board) movePawn(res Result) Result {
	from, to := res.From, res.To
	forward, home := 1, 1
	if res.Piece.Color == Black {
		forward, home = -1, 6
	}
	rowDelta := to.Row - from.Row
	colDelta := abs(to.Col - from.Col)

	target := b.At(to)
	if !target.IsEmpty() {
		diagonalStep := colDelta == 1 && abs(rowDelta) == 1
		if b.rules == Standard {
			diagonalStep = colDelta == 1 && rowDelta == forward
		}
		if !diagonalStep {
			return res.reject(ReasonOccupied)
		}
		if !b.captureAllowed(from, to) {
			return res.reject(ReasonOwnPiece)
		}
		res = b.commit(res, target)
		if b.rules != Standard {
			return res.reject(ReasonPawnCapture)
		}
		return res
	}

	if colDelta != 0 {
		return res.reject(ReasonGeometry)
	}
	switch {
	case rowDelta == forward:
	case rowDelta == 2*forward && from.Row == home:
		ahead := Position{Row: from.Row + forward, Col: from.Col}
		if !b.At(ahead).IsEmpty() {
			return res.reject(ReasonBlocked)
		}
	default:
		return res.reject(ReasonGeometry)
	}
	return b.commit(res, target)
}

func (b *Board) commit(res Result, target Piece) Result {
	capture := !target.IsEmpty()
	if capture {
		res.Captured = &target
	}
	res.Notation = getNotation(res.Piece, res.From, res.To, capture)
	b.relocate(res.From, res.To)
	res.Valid = true
	res.Reason = ReasonNone
	return res
}
