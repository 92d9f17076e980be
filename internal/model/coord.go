package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCoordinateLength = errors.New("coordinate must be a file letter followed by a rank digit")
	ErrFileOutOfRange   = errors.New("file out of range a-h")
	ErrRankOutOfRange   = errors.New("rank out of range 1-8")
)

// CoordinateError reports a coordinate that cannot name a square. Kind is
// one of the ErrCoordinateLength, ErrFileOutOfRange or ErrRankOutOfRange
// sentinels.
type CoordinateError struct {
	Input string
	Kind  error
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("invalid coordinate %q: %v", e.Input, e.Kind)
}

func (e *CoordinateError) Unwrap() error {
	return e.Kind
}

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// ParseSquare converts algebraic notation such as "e4" into a zero-based
// row/col pair.
func ParseSquare(coordinate string) (Position, error) {
	s := strings.TrimSpace(coordinate)
	if len(s) != 2 {
		return Position{}, &CoordinateError{Input: coordinate, Kind: ErrCoordinateLength}
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' {
		return Position{}, &CoordinateError{Input: coordinate, Kind: ErrFileOutOfRange}
	}
	if rank < '1' || rank > '8' {
		return Position{}, &CoordinateError{Input: coordinate, Kind: ErrRankOutOfRange}
	}
	return Position{Row: int(rank - '1'), Col: int(file - 'a')}, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input. It is
// meant for literals.
func MustParseSquare(coordinate string) Position {
	pos, err := ParseSquare(coordinate)
	if err != nil {
		panic(err)
	}
	return pos
}

func (p Position) String() string {
	if !p.OnBoard() {
		return "[invalid position]"
	}
	return fmt.Sprintf("%c%d", p.Col+'a', p.Row+1)
}

func (p Position) OnBoard() bool {
	return p.Row >= 0 && p.Row < boardSize && p.Col >= 0 && p.Col < boardSize
}

func parsePair(from, to string) (Position, Position, error) {
	fromPos, err := ParseSquare(from)
	if err != nil {
		return Position{}, Position{}, err
	}
	toPos, err := ParseSquare(to)
	if err != nil {
		return Position{}, Position{}, err
	}
	return fromPos, toPos, nil
}
