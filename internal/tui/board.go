package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/notnil/chess"
)

var unicodeGlyphs = map[chess.PieceType]string{
	chess.King:   "♚",
	chess.Queen:  "♛",
	chess.Rook:   "♜",
	chess.Bishop: "♝",
	chess.Knight: "♞",
	chess.Pawn:   "♟",
}

var asciiGlyphs = map[chess.PieceType]string{
	chess.King:   "k",
	chess.Queen:  "q",
	chess.Rook:   "r",
	chess.Bishop: "b",
	chess.Knight: "n",
	chess.Pawn:   "p",
}

// glyph renders a piece in the configured set. Unicode uses the filled glyphs
// for both sides; foreground color tells them apart.
func glyph(p chess.Piece, set string) string {
	if p == chess.NoPiece {
		return " "
	}
	if set == "ascii" {
		g := asciiGlyphs[p.Type()]
		if p.Color() == chess.White {
			return strings.ToUpper(g)
		}
		return g
	}
	return unicodeGlyphs[p.Type()]
}

// squareAt maps a drawn grid cell (row 0 at the top) to a board square,
// honoring orientation.
func (a *App) squareAt(row, col int) chess.Square {
	r, f := 7-row, col
	if a.flipped {
		r, f = row, 7-col
	}
	return chess.Square(r*8 + f)
}

// squareBackground picks the highlight for a square. Precedence: cursor,
// selection, legal target, king in check, last move, then plain light/dark.
func (a *App) squareBackground(sq, checkSq chess.Square, last *chess.Move) lipgloss.Color {
	switch {
	case sq == a.cursor:
		return colorCursorSq
	case sq == a.selected:
		return colorSelectedSq
	case a.targets[sq]:
		return colorTargetSq
	case sq == checkSq:
		return colorCheckSq
	case last != nil && (sq == last.S1() || sq == last.S2()):
		return colorLastMoveSq
	case (int(sq.File())+int(sq.Rank()))%2 == 1:
		return colorLightSquare
	default:
		return colorDarkSquare
	}
}

func (a *App) renderBoard() string {
	board := a.session.Board()
	last := a.session.LastMove()
	checkSq := chess.NoSquare
	if a.session.InCheck() {
		checkSq = a.session.KingSquare(a.session.Turn())
	}

	var b strings.Builder
	for row := 0; row < 8; row++ {
		if a.cfg.UI.Coords {
			rank := a.squareAt(row, 0).Rank()
			b.WriteString(coordStyle.Render(rank.String()) + " ")
		}
		for col := 0; col < 8; col++ {
			sq := a.squareAt(row, col)
			p := board.Piece(sq)
			style := whitePieceStyle
			if p != chess.NoPiece && p.Color() == chess.Black {
				style = blackPieceStyle
			}
			cell := style.
				Background(a.squareBackground(sq, checkSq, last)).
				Render(" " + glyph(p, a.pieces) + " ")
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}
	if a.cfg.UI.Coords {
		b.WriteString("  ")
		for col := 0; col < 8; col++ {
			file := a.squareAt(0, col).File()
			b.WriteString(coordStyle.Render(" " + file.String() + " "))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
