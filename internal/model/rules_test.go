package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardWith returns an empty board holding only the given pieces.
func boardWith(rules Ruleset, pieces map[string]Piece) *Board {
	b := NewEmptyBoard(rules)
	for sq, p := range pieces {
		b.Place(MustParseSquare(sq), p)
	}
	return b
}

func wp(kind PieceType) Piece { return Piece{Type: kind, Color: White} }
func bp(kind PieceType) Piece { return Piece{Type: kind, Color: Black} }

// changedSquares lists every square that differs between two grids.
func changedSquares(before, after [8][8]Piece) []string {
	var changed []string
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if before[row][col] != after[row][col] {
				changed = append(changed, Position{Row: row, Col: col}.String())
			}
		}
	}
	return changed
}

func TestWrongPieceKindLeavesBoardUnchanged(t *testing.T) {
	tests := []struct {
		name string
		move func(b *Board) (bool, error)
	}{
		{"pawn on knight", func(b *Board) (bool, error) { return b.MovePawn("b1", "a3") }},
		{"knight on pawn", func(b *Board) (bool, error) { return b.MoveKnight("a2", "a3") }},
		{"bishop on knight", func(b *Board) (bool, error) { return b.MoveBishop("b1", "a3") }},
		{"rook on bishop", func(b *Board) (bool, error) { return b.MoveRook("c1", "c4") }},
		{"king on rook", func(b *Board) (bool, error) { return b.MoveKing("a1", "a2") }},
		{"queen on king", func(b *Board) (bool, error) { return b.MoveQueen("d1", "d3") }},
	}
	for _, rules := range []Ruleset{Classic, Standard} {
		for _, tt := range tests {
			t.Run(string(rules)+"/"+tt.name, func(t *testing.T) {
				b := NewBoard(rules)
				before := b.Squares()
				ok, err := tt.move(b)
				require.NoError(t, err)
				assert.False(t, ok)
				assert.Equal(t, before, b.Squares())
			})
		}
	}
}

func TestKnightFromOpening(t *testing.T) {
	for _, to := range []string{"a3", "c3"} {
		b := NewBoard(Classic)
		ok, err := b.MoveKnight("b1", to)
		require.NoError(t, err)
		assert.True(t, ok, "b1-%s", to)
		assert.Equal(t, wp(Knight), b.At(MustParseSquare(to)))
		assert.True(t, b.At(MustParseSquare("b1")).IsEmpty())
	}

	b := NewBoard(Classic)
	ok, err := b.MoveKnight("b1", "b3")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBishopBlockedUntilPawnCleared(t *testing.T) {
	b := NewBoard(Classic)
	for _, to := range []string{"d2", "e3", "h6", "b2", "a3"} {
		res, err := b.MoveAs(Bishop, "c1", to)
		require.NoError(t, err)
		assert.False(t, res.Valid, "c1-%s", to)
	}
	res, _ := b.MoveAs(Bishop, "c1", "e3")
	assert.Equal(t, ReasonBlocked, res.Reason)

	b.Place(MustParseSquare("d2"), Empty)
	res, err := b.MoveAs(Bishop, "c1", "h6")
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, "Bh6", res.Notation)
}

func TestRookPathCheck(t *testing.T) {
	b := NewBoard(Classic)
	ok, err := b.MoveRook("a1", "a5")
	require.NoError(t, err)
	assert.True(t, ok, "classic rook ignores the a2 pawn")

	b = NewBoard(Standard)
	res, err := b.MoveAs(Rook, "a1", "a5")
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, ReasonBlocked, res.Reason)
}

func TestQueenPathCheck(t *testing.T) {
	b := NewBoard(Classic)
	ok, err := b.MoveQueen("e1", "e5")
	require.NoError(t, err)
	assert.True(t, ok)

	b = NewBoard(Classic)
	ok, err = b.MoveQueen("e1", "g4")
	require.NoError(t, err)
	assert.False(t, ok)

	b = NewBoard(Standard)
	ok, err = b.MoveQueen("e1", "h4")
	require.NoError(t, err)
	assert.False(t, ok)
	b.Place(MustParseSquare("f2"), Empty)
	ok, err = b.MoveQueen("e1", "h4")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPawnAdvance(t *testing.T) {
	b := NewBoard(Classic)
	ok, err := b.MovePawn("a2", "a4")
	require.NoError(t, err)
	assert.True(t, ok)

	b = NewBoard(Classic)
	b.Place(MustParseSquare("a3"), bp(Knight))
	res, err := b.MoveAs(Pawn, "a2", "a4")
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, ReasonBlocked, res.Reason)

	b = NewBoard(Classic)
	ok, _ = b.MovePawn("a2", "a3")
	require.True(t, ok)
	res, err = b.MoveAs(Pawn, "a3", "a5")
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, ReasonGeometry, res.Reason)
	ok, _ = b.MovePawn("a3", "a4")
	assert.True(t, ok)

	b = NewBoard(Classic)
	ok, _ = b.MovePawn("d7", "d5")
	assert.True(t, ok, "black pawn moves toward rank 1")
	ok, _ = b.MovePawn("d5", "d6")
	assert.False(t, ok, "pawns never move backwards")
}

func TestPawnRejections(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[string]Piece
		from   string
		to     string
		reason Reason
	}{
		{"occupied ahead", map[string]Piece{"e4": wp(Pawn), "e5": bp(Pawn)}, "e4", "e5", ReasonOccupied},
		{"sideways", map[string]Piece{"e4": wp(Pawn)}, "e4", "f4", ReasonGeometry},
		{"empty diagonal", map[string]Piece{"e4": wp(Pawn)}, "e4", "f5", ReasonGeometry},
		{"three squares", map[string]Piece{"e2": wp(Pawn)}, "e2", "e5", ReasonGeometry},
		{"own piece diagonal", map[string]Piece{"e4": wp(Pawn), "f5": wp(Knight)}, "e4", "f5", ReasonOwnPiece},
		{"black blocked", map[string]Piece{"c7": bp(Pawn), "c6": wp(Bishop)}, "c7", "c5", ReasonBlocked},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardWith(Classic, tt.pieces)
			before := b.Squares()
			res, err := b.MoveAs(Pawn, tt.from, tt.to)
			require.NoError(t, err)
			assert.False(t, res.Valid)
			assert.Equal(t, tt.reason, res.Reason)
			assert.Equal(t, before, b.Squares())
		})
	}
}

func TestClassicPawnCaptureIsReportedInvalid(t *testing.T) {
	b := boardWith(Classic, map[string]Piece{"d4": wp(Pawn), "e5": bp(Pawn)})
	res, err := b.MoveAs(Pawn, "d4", "e5")
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, ReasonPawnCapture, res.Reason)
	assert.True(t, res.Mutated())
	require.NotNil(t, res.Captured)
	assert.Equal(t, bp(Pawn), *res.Captured)

	assert.Equal(t, wp(Pawn), b.At(MustParseSquare("e5")))
	assert.True(t, b.At(MustParseSquare("d4")).IsEmpty())
	assert.Equal(t, 1, b.Occupied())

	// classic captures diagonally in either direction
	b = boardWith(Classic, map[string]Piece{"d4": wp(Pawn), "c3": bp(Rook)})
	res, _ = b.MoveAs(Pawn, "d4", "c3")
	assert.Equal(t, ReasonPawnCapture, res.Reason)
	assert.Equal(t, wp(Pawn), b.At(MustParseSquare("c3")))
}

func TestStandardPawnCapture(t *testing.T) {
	b := boardWith(Standard, map[string]Piece{"d4": wp(Pawn), "e5": bp(Pawn)})
	res, err := b.MoveAs(Pawn, "d4", "e5")
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, "dxe5", res.Notation)
	assert.Equal(t, 1, b.Occupied())

	b = boardWith(Standard, map[string]Piece{"d4": wp(Pawn), "c3": bp(Rook)})
	before := b.Squares()
	res, _ = b.MoveAs(Pawn, "d4", "c3")
	assert.False(t, res.Valid)
	assert.Equal(t, ReasonOccupied, res.Reason)
	assert.Equal(t, before, b.Squares())
}

func TestKingGeometry(t *testing.T) {
	tests := []struct {
		to       string
		classic  bool
		standard bool
	}{
		{"e5", true, true},
		{"d5", true, true},
		{"c3", true, true},
		{"e8", true, false},
		{"a5", true, false},
		{"d6", false, false},
		{"f6", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.to, func(t *testing.T) {
			for rules, want := range map[Ruleset]bool{Classic: tt.classic, Standard: tt.standard} {
				b := boardWith(rules, map[string]Piece{"d4": wp(King)})
				ok, err := b.MoveKing("d4", tt.to)
				require.NoError(t, err)
				assert.Equal(t, want, ok, "%s d4-%s", rules, tt.to)
			}
		})
	}
}

func TestOffBoardKingMoveIsAnError(t *testing.T) {
	b := NewBoard(Classic)
	before := b.Squares()
	ok, err := b.MoveKing("d1", "j1")
	assert.False(t, ok)
	assert.True(t, errors.Is(err, ErrFileOutOfRange))

	_, err = b.Move("e1", "j1")
	assert.Error(t, err)
	assert.Equal(t, before, b.Squares())
}

func TestCaptureResolution(t *testing.T) {
	b := NewBoard(Classic)
	res, err := b.MoveAs(Knight, "b1", "d2")
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, ReasonOwnPiece, res.Reason)

	b = NewBoard(Classic)
	res, err = b.Move("a1", "a7")
	require.NoError(t, err)
	assert.True(t, res.Valid)
	require.NotNil(t, res.Captured)
	assert.Equal(t, bp(Pawn), *res.Captured)
	assert.Equal(t, "Rxa7", res.Notation)
	assert.Equal(t, 31, b.Occupied())

	// a capture with illegal geometry changes nothing
	b = boardWith(Classic, map[string]Piece{"b1": wp(Knight), "b3": bp(Queen)})
	before := b.Squares()
	res, _ = b.Move("b1", "b3")
	assert.False(t, res.Valid)
	assert.Equal(t, ReasonGeometry, res.Reason)
	assert.Equal(t, before, b.Squares())
}

func TestAcceptedMoveChangesTwoSquares(t *testing.T) {
	b := NewBoard(Classic)
	moves := [][2]string{{"b1", "c3"}, {"c3", "d5"}, {"e2", "e4"}, {"g8", "f6"}, {"d5", "e7"}}
	wantOccupied := []int{32, 32, 32, 32, 31}
	for i, mv := range moves {
		before := b.Squares()
		res, err := b.Move(mv[0], mv[1])
		require.NoError(t, err)
		require.True(t, res.Valid, "%s-%s: %s", mv[0], mv[1], res.Reason)

		assert.ElementsMatch(t, []string{mv[0], mv[1]}, changedSquares(before, b.Squares()))
		assert.True(t, b.At(res.From).IsEmpty())
		assert.Equal(t, res.Piece, b.At(res.To))
		assert.Equal(t, wantOccupied[i], b.Occupied())
	}
}

func TestDispatchRejections(t *testing.T) {
	b := NewBoard(Classic)

	res, err := b.Move("a3", "a4")
	require.NoError(t, err)
	assert.Equal(t, ReasonEmptyOrigin, res.Reason)

	res, err = b.Move("a2", "a2")
	require.NoError(t, err)
	assert.Equal(t, ReasonNullMove, res.Reason)

	res = b.Apply(Position{Row: 9, Col: 0}, Position{})
	assert.Equal(t, ReasonOffBoard, res.Reason)

	res = b.Apply(MustParseSquare("a2"), Position{Row: 0, Col: -1})
	assert.Equal(t, ReasonOffBoard, res.Reason)
	assert.Equal(t, 32, b.Occupied())
}

func TestTryEachMatchesDispatch(t *testing.T) {
	moves := [][2]string{{"b1", "c3"}, {"a2", "a4"}, {"a1", "a5"}, {"c1", "e3"}, {"d1", "d5"}, {"a3", "a4"}}
	for _, mv := range moves {
		dispatched := NewBoard(Classic)
		chained := NewBoard(Classic)

		want, err := dispatched.Move(mv[0], mv[1])
		require.NoError(t, err)
		got, err := chained.TryEach(mv[0], mv[1])
		require.NoError(t, err)

		assert.Equal(t, want, got, "%s-%s", mv[0], mv[1])
		assert.Equal(t, dispatched.Squares(), chained.Squares())
	}

	_, err := NewBoard(Classic).TryEach("a2", "a")
	assert.True(t, errors.Is(err, ErrCoordinateLength))
}

func TestParseRuleset(t *testing.T) {
	rs, err := ParseRuleset("")
	require.NoError(t, err)
	assert.Equal(t, Classic, rs)

	rs, err = ParseRuleset("standard")
	require.NoError(t, err)
	assert.Equal(t, Standard, rs)

	_, err = ParseRuleset("fide")
	assert.True(t, errors.Is(err, ErrUnknownRuleset))
}
