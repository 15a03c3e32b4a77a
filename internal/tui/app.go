package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/notnil/chess"

	"github.com/jask/jaskchess/internal/config"
	"github.com/jask/jaskchess/internal/game"
)

// App is the controller between input events and the rules engine. Every
// operation completes synchronously inside one Update call; the only state
// outside the game session is selection, highlights and modal bookkeeping.
type App struct {
	session *game.Session
	cfg     config.Config

	cursor   chess.Square
	selected chess.Square // NoSquare when nothing is picked up
	targets  map[chess.Square]bool
	flipped  bool
	pieces   string

	modal       modalState
	promoCursor int
	inputBuffer string
	status      string
	statusIsErr bool
	lastExport  string

	keys keyMap
}

type modalState string

const (
	modalNone           modalState = ""
	modalPromotion      modalState = "promotion"
	modalImport         modalState = "import"
	modalMoveEntry      modalState = "moveEntry"
	modalConfirmRestart modalState = "confirmRestart"
	modalConfirmResign  modalState = "confirmResign"
)

func New(cfg config.Config, session *game.Session) *App {
	return &App{
		session:  session,
		cfg:      cfg,
		cursor:   chess.E2,
		selected: chess.NoSquare,
		targets:  map[chess.Square]bool{},
		flipped:  cfg.UI.Flipped,
		pieces:   cfg.UI.Pieces,
		keys:     newKeyMap(),
	}
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}
	if a.modal != modalNone {
		return a.handleModalKey(m)
	}

	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Up):
		a.moveCursor(1, 0)
	case key.Matches(m, a.keys.Down):
		a.moveCursor(-1, 0)
	case key.Matches(m, a.keys.Left):
		a.moveCursor(0, -1)
	case key.Matches(m, a.keys.Right):
		a.moveCursor(0, 1)
	case key.Matches(m, a.keys.Select):
		a.selectSquare()
	case key.Matches(m, a.keys.Cancel):
		a.clearSelection()
		a.setStatus("")
	case key.Matches(m, a.keys.Undo):
		if a.session.Undo() {
			a.clearSelection()
			a.setStatus("move taken back")
		} else {
			a.setStatus("nothing to undo")
		}
	case key.Matches(m, a.keys.Restart):
		a.modal = modalConfirmRestart
	case key.Matches(m, a.keys.Flip):
		a.flipBoard()
	case key.Matches(m, a.keys.Export):
		a.exportGame()
	case key.Matches(m, a.keys.Import):
		a.modal = modalImport
		a.inputBuffer = ""
	case key.Matches(m, a.keys.Move):
		if a.session.Over() {
			a.setStatus("game over")
			break
		}
		a.modal = modalMoveEntry
		a.inputBuffer = ""
	case key.Matches(m, a.keys.Resign):
		if a.session.Over() {
			a.setStatus("game over")
			break
		}
		a.modal = modalConfirmResign
	case key.Matches(m, a.keys.Draw):
		if err := a.session.AgreeDraw(); err != nil {
			a.setError(err.Error())
		} else {
			a.clearSelection()
			a.setStatus("draw agreed")
		}
	}
	return a, nil
}

// selectSquare is the two-tap move gesture: first tap picks up an own piece
// and highlights its legal targets, second tap drops it. Illegal drops revert
// silently, matching a piece snapping back.
func (a *App) selectSquare() {
	sq := a.cursor
	if a.selected == chess.NoSquare {
		if !a.session.OwnPieceAt(sq) {
			a.setStatus("")
			return
		}
		a.pickUp(sq)
		return
	}
	if sq == a.selected {
		a.clearSelection()
		return
	}
	switch a.session.Attempt(a.selected, sq) {
	case game.MoveApplied:
		a.clearSelection()
		a.setStatus("")
	case game.MovePromotionNeeded:
		a.clearSelection()
		a.modal = modalPromotion
		a.promoCursor = 0
	case game.MoveIllegal:
		a.clearSelection()
		if a.session.OwnPieceAt(sq) {
			a.pickUp(sq)
		}
	}
}

func (a *App) pickUp(sq chess.Square) {
	a.selected = sq
	a.targets = map[chess.Square]bool{}
	for _, t := range a.session.LegalTargets(sq) {
		a.targets[t] = true
	}
}

func (a *App) clearSelection() {
	a.selected = chess.NoSquare
	a.targets = map[chess.Square]bool{}
}

// moveCursor shifts the board cursor by visual deltas; up always means toward
// the top of the screen regardless of orientation.
func (a *App) moveCursor(dRank, dFile int) {
	if a.flipped {
		dRank, dFile = -dRank, -dFile
	}
	r := int(a.cursor.Rank()) + dRank
	f := int(a.cursor.File()) + dFile
	if r < 0 || r > 7 || f < 0 || f > 7 {
		return
	}
	a.cursor = chess.Square(r*8 + f)
}

func (a *App) flipBoard() {
	a.flipped = !a.flipped
	a.cfg.UI.Flipped = a.flipped
	if err := config.Save(a.cfg); err != nil {
		a.setError("save config: " + err.Error())
		return
	}
	a.setStatus("board flipped")
}

func (a *App) exportGame() {
	path, err := a.session.Export(a.cfg.Export.Dir, game.ExportMeta{
		Event: a.cfg.PGN.Event,
		Site:  a.cfg.PGN.Site,
	})
	if err != nil {
		a.setError("export: " + err.Error())
		return
	}
	a.lastExport = path
	a.setStatus("exported " + path)
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.modal {
	case modalPromotion:
		return a.handlePromotionKey(m)
	case modalImport, modalMoveEntry:
		return a.handleTextModalKey(m)
	case modalConfirmRestart:
		switch m.String() {
		case "y", "enter":
			a.modal = modalNone
			a.session.Restart()
			a.clearSelection()
			a.cursor = chess.E2
			a.setStatus("new game")
		case "n", "esc", "q":
			a.modal = modalNone
		}
	case modalConfirmResign:
		switch m.String() {
		case "y", "enter":
			a.modal = modalNone
			a.session.Resign(a.session.Turn())
			a.clearSelection()
			a.setStatus("")
		case "n", "esc", "q":
			a.modal = modalNone
		}
	}
	return a, nil
}

func (a *App) handlePromotionKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	choices := game.PromotionChoices()
	switch m.String() {
	case "up", "k":
		if a.promoCursor > 0 {
			a.promoCursor--
		}
	case "down", "j":
		if a.promoCursor < len(choices)-1 {
			a.promoCursor++
		}
	case "q", "r", "b", "n":
		for i, pt := range choices {
			if pieceKey(pt) == m.String() {
				a.promoCursor = i
			}
		}
		return a.applyPromotion(choices[a.promoCursor])
	case "enter":
		return a.applyPromotion(choices[a.promoCursor])
	case "esc":
		a.session.CancelPromotion()
		a.modal = modalNone
		a.setStatus("promotion cancelled")
	}
	return a, nil
}

// applyPromotion completes the pending promotion. A rejected choice keeps the
// modal open so the user can still pick another piece or cancel.
func (a *App) applyPromotion(pt chess.PieceType) (tea.Model, tea.Cmd) {
	if err := a.session.Promote(pt); err != nil {
		a.setError(err.Error())
		return a, nil
	}
	a.setStatus("promoted to " + game.PieceName(pt))
	a.modal = modalNone
	return a, nil
}

func (a *App) handleTextModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc:
		a.modal = modalNone
		a.inputBuffer = ""
	case tea.KeyEnter:
		text := a.inputBuffer
		mode := a.modal
		a.modal = modalNone
		a.inputBuffer = ""
		switch mode {
		case modalImport:
			a.importGame(text)
		case modalMoveEntry:
			a.applySAN(text)
		}
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if len(a.inputBuffer) > 0 {
			a.inputBuffer = a.inputBuffer[:len(a.inputBuffer)-1]
		}
	case tea.KeySpace:
		a.inputBuffer += " "
	case tea.KeyRunes:
		a.inputBuffer += string(m.Runes)
	}
	return a, nil
}

func (a *App) importGame(path string) {
	if path == "" {
		a.setStatus("no file given")
		return
	}
	if err := a.session.LoadPGNFile(path); err != nil {
		a.setError("import failed: " + err.Error())
		return
	}
	a.clearSelection()
	a.cursor = chess.E2
	a.setStatus("imported " + path)
}

func (a *App) applySAN(text string) {
	if text == "" {
		return
	}
	if err := a.session.MoveSAN(text); err != nil {
		if hint, ok := a.session.SuggestSAN(text); ok {
			a.setError(fmt.Sprintf("invalid move %q (did you mean %s?)", text, hint))
		} else {
			a.setError(fmt.Sprintf("invalid move %q", text))
		}
		return
	}
	a.clearSelection()
	a.setStatus("")
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusIsErr = false
}

func (a *App) setError(s string) {
	a.status = s
	a.statusIsErr = true
}

func pieceKey(pt chess.PieceType) string {
	switch pt {
	case chess.Queen:
		return "q"
	case chess.Rook:
		return "r"
	case chess.Bishop:
		return "b"
	case chess.Knight:
		return "n"
	default:
		return ""
	}
}
