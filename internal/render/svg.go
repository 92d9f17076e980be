// Package render draws boards as SVG diagrams.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/benbeisheim/movecheck-backend/internal/model"
)

const (
	SquareSize = 60
	margin     = 20
	BoardSize  = 8*SquareSize + 2*margin

	lightSquare = "fill:rgb(237,214,176)"
	darkSquare  = "fill:rgb(184,135,98)"
	glyphStyle  = "font-size:44px;text-anchor:middle;dominant-baseline:central;font-family:serif"
	labelStyle  = "font-size:12px;text-anchor:middle;dominant-baseline:central;font-family:sans-serif"
)

// SVG writes the board to w. Rows are drawn in the same order as the text
// rendering: rank 1 at the top.
func SVG(w io.Writer, board *model.Board) {
	canvas := svg.New(w)
	canvas.Start(BoardSize, BoardSize)
	canvas.Title(fmt.Sprintf("board (%d pieces)", board.Occupied()))

	squares := board.Squares()
	for row := 0; row < 8; row++ {
		y := margin + row*SquareSize
		canvas.Text(margin/2, y+SquareSize/2, fmt.Sprint(row+1), labelStyle)
		for col := 0; col < 8; col++ {
			x := margin + col*SquareSize
			style := lightSquare
			if (row+col)%2 == 0 {
				style = darkSquare
			}
			canvas.Rect(x, y, SquareSize, SquareSize, style)
			if piece := squares[row][col]; !piece.IsEmpty() {
				canvas.Text(x+SquareSize/2, y+SquareSize/2, piece.Glyph(), glyphStyle)
			}
		}
	}
	for col := 0; col < 8; col++ {
		x := margin + col*SquareSize + SquareSize/2
		canvas.Text(x, BoardSize-margin/2, string(rune('a'+col)), labelStyle)
	}
	canvas.End()
}
