package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/notnil/chess"
	"github.com/stretchr/testify/require"

	"github.com/jask/jaskchess/internal/config"
	"github.com/jask/jaskchess/internal/game"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("JASKCHESS_CONFIG", filepath.Join(tmp, "config.toml"))
	cfg := config.Config{
		UI:     config.UIConfig{Pieces: "ascii", Coords: true},
		Export: config.ExportConfig{Dir: filepath.Join(tmp, "games")},
		PGN:    config.PGNConfig{Event: "Test game", Site: "test"},
	}
	return New(cfg, game.NewSession())
}

func press(a *App, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		a.Update(msg)
	}
}

func typeText(a *App, text string) {
	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func TestTwoTapMove(t *testing.T) {
	a := newTestApp(t)
	require.Equal(t, chess.E2, a.cursor)

	press(a, "enter")
	require.Equal(t, chess.E2, a.selected)
	require.True(t, a.targets[chess.E4])
	require.True(t, a.targets[chess.E3])

	press(a, "up", "up", "enter")
	require.Equal(t, 1, a.session.HalfMoves())
	require.Equal(t, chess.NoSquare, a.selected)
	require.Empty(t, a.targets)
	require.Equal(t, chess.WhitePawn, a.session.Board().Piece(chess.E4))
}

func TestReselectingSourceClearsSelection(t *testing.T) {
	a := newTestApp(t)
	press(a, "enter")
	require.Equal(t, chess.E2, a.selected)
	press(a, "enter")
	require.Equal(t, chess.NoSquare, a.selected)
	require.Equal(t, 0, a.session.HalfMoves())
}

func TestIllegalDropRevertsSilently(t *testing.T) {
	a := newTestApp(t)
	before := a.session.FEN()

	press(a, "enter", "up", "up", "up", "enter") // e2 pawn onto e5
	require.Equal(t, before, a.session.FEN())
	require.Equal(t, chess.NoSquare, a.selected)
	require.Empty(t, a.status, "illegal drops revert without a message")
}

func TestIllegalDropOntoOwnPieceReselects(t *testing.T) {
	a := newTestApp(t)
	press(a, "enter") // pick up e2
	// walk the cursor to f1 and drop there
	press(a, "right", "down", "enter")
	require.Equal(t, chess.F1, a.selected, "dropping on an own piece picks it up instead")
}

func TestSelectingEmptySquareDoesNothing(t *testing.T) {
	a := newTestApp(t)
	press(a, "up", "enter") // e3 is empty
	require.Equal(t, chess.NoSquare, a.selected)
}

func TestCursorStaysOnBoard(t *testing.T) {
	a := newTestApp(t)
	for i := 0; i < 12; i++ {
		press(a, "down")
	}
	require.Equal(t, chess.E1, a.cursor)
	for i := 0; i < 12; i++ {
		press(a, "left")
	}
	require.Equal(t, chess.A1, a.cursor)
}

func TestFlipOrientation(t *testing.T) {
	a := newTestApp(t)
	require.Equal(t, chess.A8, a.squareAt(0, 0))
	require.Equal(t, chess.H1, a.squareAt(7, 7))

	press(a, "f")
	require.True(t, a.flipped)
	require.Equal(t, chess.H1, a.squareAt(0, 0))
	require.Equal(t, chess.A8, a.squareAt(7, 7))

	// orientation persists through the config file
	data, err := os.ReadFile(os.Getenv("JASKCHESS_CONFIG"))
	require.NoError(t, err)
	require.Contains(t, string(data), "flipped = true")
}

func TestFlippedCursorMovesVisually(t *testing.T) {
	a := newTestApp(t)
	press(a, "f")
	a.cursor = chess.E7
	press(a, "up") // up on a flipped board walks toward rank 1
	require.Equal(t, chess.E6, a.cursor)
}

func TestUndoKey(t *testing.T) {
	a := newTestApp(t)
	press(a, "enter", "up", "up", "enter") // e4
	require.Equal(t, 1, a.session.HalfMoves())

	press(a, "u")
	require.Equal(t, 0, a.session.HalfMoves())
	require.Equal(t, "move taken back", a.status)

	press(a, "u")
	require.Equal(t, "nothing to undo", a.status)
}

func TestRestartNeedsConfirmation(t *testing.T) {
	a := newTestApp(t)
	press(a, "enter", "up", "up", "enter") // e4

	press(a, "r")
	require.Equal(t, modalConfirmRestart, a.modal)
	press(a, "n")
	require.Equal(t, modalNone, a.modal)
	require.Equal(t, 1, a.session.HalfMoves(), "declined restart keeps the game")

	press(a, "r", "y")
	require.Equal(t, 0, a.session.HalfMoves())
	require.Equal(t, "new game", a.status)
}

func TestPromotionModalFlow(t *testing.T) {
	a := newTestApp(t)
	session, err := game.NewSessionFromFEN("8/P6k/8/8/8/8/8/K7 w - - 0 1")
	require.NoError(t, err)
	a.session = session

	a.cursor = chess.A7
	press(a, "enter")
	a.cursor = chess.A8
	press(a, "enter")
	require.Equal(t, modalPromotion, a.modal)
	require.NotNil(t, a.session.Pending())

	press(a, "n") // knight shortcut
	require.Equal(t, modalNone, a.modal)
	require.Equal(t, chess.WhiteKnight, a.session.Board().Piece(chess.A8))
	require.Equal(t, "promoted to knight", a.status)
}

func TestPromotionModalCursorAndCancel(t *testing.T) {
	a := newTestApp(t)
	session, err := game.NewSessionFromFEN("8/P6k/8/8/8/8/8/K7 w - - 0 1")
	require.NoError(t, err)
	a.session = session
	before := session.FEN()

	a.cursor = chess.A7
	press(a, "enter")
	a.cursor = chess.A8
	press(a, "enter")
	press(a, "down") // queen -> rook
	require.Equal(t, 1, a.promoCursor)

	press(a, "esc")
	require.Equal(t, modalNone, a.modal)
	require.Nil(t, a.session.Pending())
	require.Equal(t, before, a.session.FEN(), "cancelled promotion never moves the pawn")
}

func TestPromotionModalStaysOpenOnRejectedChoice(t *testing.T) {
	a := newTestApp(t)
	session, err := game.NewSessionFromFEN("8/P6k/8/8/8/8/8/K7 w - - 0 1")
	require.NoError(t, err)
	a.session = session

	a.cursor = chess.A7
	press(a, "enter")
	a.cursor = chess.A8
	press(a, "enter")
	require.Equal(t, modalPromotion, a.modal)

	a.applyPromotion(chess.King)
	require.Equal(t, modalPromotion, a.modal, "failed choice keeps the modal open")
	require.NotNil(t, a.session.Pending())
	require.True(t, a.statusIsErr)

	press(a, "q")
	require.Equal(t, modalNone, a.modal)
	require.Equal(t, chess.WhiteQueen, a.session.Board().Piece(chess.A8))
}

func TestMoveEntry(t *testing.T) {
	a := newTestApp(t)
	press(a, "m")
	require.Equal(t, modalMoveEntry, a.modal)

	typeText(a, "Nf3")
	press(a, "enter")
	require.Equal(t, modalNone, a.modal)
	require.Equal(t, 1, a.session.HalfMoves())
	require.Equal(t, chess.WhiteKnight, a.session.Board().Piece(chess.F3))
}

func TestMoveEntrySuggestsOnTypo(t *testing.T) {
	a := newTestApp(t)
	press(a, "m")
	typeText(a, "Nf33")
	press(a, "enter")

	require.True(t, a.statusIsErr)
	require.Contains(t, a.status, `invalid move "Nf33"`)
	require.Contains(t, a.status, "did you mean Nf3?")
	require.Equal(t, 0, a.session.HalfMoves())
}

func TestImportInvalidFileReportsError(t *testing.T) {
	a := newTestApp(t)
	path := filepath.Join(t.TempDir(), "broken.pgn")
	require.NoError(t, os.WriteFile(path, []byte("1. Qxe9 1-0"), 0o644))

	press(a, "i")
	require.Equal(t, modalImport, a.modal)
	typeText(a, path)
	press(a, "enter")

	require.True(t, a.statusIsErr)
	require.Contains(t, a.status, "import failed")
	require.Equal(t, 0, a.session.HalfMoves(), "game untouched on bad pgn")
}

func TestImportValidFile(t *testing.T) {
	a := newTestApp(t)
	path := filepath.Join(t.TempDir(), "game.pgn")
	require.NoError(t, os.WriteFile(path, []byte("1. e4 e5 2. Nf3 Nc6 *"), 0o644))

	press(a, "i")
	typeText(a, path)
	press(a, "enter")

	require.False(t, a.statusIsErr)
	require.Equal(t, 4, a.session.HalfMoves())
	require.Contains(t, a.status, "imported")
}

func TestExportKeyWritesFile(t *testing.T) {
	a := newTestApp(t)
	press(a, "m")
	typeText(a, "e4")
	press(a, "enter")

	press(a, "e")
	require.False(t, a.statusIsErr, "status: %s", a.status)
	require.NotEmpty(t, a.lastExport)
	data, err := os.ReadFile(a.lastExport)
	require.NoError(t, err)
	require.Contains(t, string(data), `[Event "Test game"]`)
	require.Contains(t, string(data), "1. e4")
}

func TestResignConfirm(t *testing.T) {
	a := newTestApp(t)
	press(a, "x", "y")
	require.True(t, a.session.Over())
	require.Equal(t, chess.BlackWon, a.session.Outcome())
}

func TestAgreeDrawKey(t *testing.T) {
	a := newTestApp(t)
	press(a, "d")
	require.Equal(t, chess.Draw, a.session.Outcome())
	require.Equal(t, "draw agreed", a.status)
}

func TestViewShowsBoardHistoryAndStatus(t *testing.T) {
	a := newTestApp(t)
	out := a.View()
	require.Contains(t, out, "JaskChess")
	require.Contains(t, out, "White to move")
	require.Contains(t, out, "(no moves yet)")
	require.Contains(t, out, "FEN ")

	press(a, "m")
	typeText(a, "e4")
	press(a, "enter")
	out = a.View()
	require.Contains(t, out, "1. e4")
	require.Contains(t, out, "Black to move")
}

// a quiet, repetition-free line long enough to overflow the history panel
var longGame = []string{
	"a4", "a5", "b3", "b6", "c4", "c5", "d3", "d6", "e4", "e5",
	"f3", "f6", "g4", "g5", "h3", "h6", "Ra2", "Ra7", "Nc3", "Nc6",
	"Bg2", "Bg7", "Be3", "Be6", "Qd2", "Qd7",
}

func TestViewRendersModalOverlay(t *testing.T) {
	a := newTestApp(t)
	press(a, "i")
	out := a.View()
	require.Contains(t, out, "Import PGN")

	press(a, "esc")
	require.NotContains(t, a.View(), "Import PGN")
}
