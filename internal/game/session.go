package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/notnil/chess"
)

// Session wraps a single in-memory chess game. The rules engine owns position,
// legality, turn and outcome; Session adds the transient UI state around it:
// the pending-promotion record that exists between a move gesture and the
// user's piece selection, and the starting position needed to rewind.
type Session struct {
	g        *chess.Game
	startFEN string // empty means the standard start position
	id       uuid.UUID
	pending  *PendingPromotion
}

// PendingPromotion records a pawn move that reached the back rank and is
// waiting for the user to pick a piece.
type PendingPromotion struct {
	From  chess.Square
	To    chess.Square
	Piece chess.Piece
}

// MoveResult classifies what an attempted (from, to) gesture did.
type MoveResult int

const (
	MoveIllegal MoveResult = iota
	MoveApplied
	MovePromotionNeeded
)

// NewSession starts a game from the standard position.
func NewSession() *Session {
	return &Session{g: chess.NewGame(), id: uuid.New()}
}

// NewSessionFromFEN starts a game from an arbitrary position.
func NewSessionFromFEN(fen string) (*Session, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("parse fen: %w", err)
	}
	return &Session{g: chess.NewGame(opt), startFEN: fen, id: uuid.New()}, nil
}

// ID identifies this game; it changes on restart and import.
func (s *Session) ID() uuid.UUID { return s.id }

// Board returns the current board for rendering.
func (s *Session) Board() *chess.Board { return s.g.Position().Board() }

// Turn returns the side to move.
func (s *Session) Turn() chess.Color { return s.g.Position().Turn() }

// FEN returns the current position in Forsyth-Edwards notation.
func (s *Session) FEN() string { return s.g.Position().String() }

// Outcome reports the game result, chess.NoOutcome while in progress.
func (s *Session) Outcome() chess.Outcome { return s.g.Outcome() }

// Method reports how the outcome came about.
func (s *Session) Method() chess.Method { return s.g.Method() }

// Over reports whether the game has ended.
func (s *Session) Over() bool { return s.g.Outcome() != chess.NoOutcome }

// OwnPieceAt reports whether sq holds a piece belonging to the side to move.
func (s *Session) OwnPieceAt(sq chess.Square) bool {
	p := s.Board().Piece(sq)
	return p != chess.NoPiece && p.Color() == s.Turn()
}

// LegalTargets lists the destination squares reachable from sq. Used for
// highlight toggling when a piece is picked up.
func (s *Session) LegalTargets(from chess.Square) []chess.Square {
	var out []chess.Square
	seen := make(map[chess.Square]bool)
	for _, m := range s.g.ValidMoves() {
		if m.S1() != from || seen[m.S2()] {
			continue
		}
		seen[m.S2()] = true
		out = append(out, m.S2())
	}
	return out
}

// Attempt tries to move the piece on from to to. Illegal gestures report
// MoveIllegal and leave the game untouched; a pawn move onto the back rank
// reports MovePromotionNeeded and parks a pending-promotion record instead
// of moving.
func (s *Session) Attempt(from, to chess.Square) MoveResult {
	if s.pending != nil || s.Over() {
		return MoveIllegal
	}
	var candidate *chess.Move
	for _, m := range s.g.ValidMoves() {
		if m.S1() == from && m.S2() == to {
			candidate = m
			break
		}
	}
	if candidate == nil {
		return MoveIllegal
	}
	if candidate.Promo() != chess.NoPieceType {
		s.pending = &PendingPromotion{From: from, To: to, Piece: s.Board().Piece(from)}
		return MovePromotionNeeded
	}
	if err := s.g.Move(candidate); err != nil {
		return MoveIllegal
	}
	return MoveApplied
}

// Pending returns the promotion awaiting a piece selection, nil if none.
func (s *Session) Pending() *PendingPromotion { return s.pending }

// CancelPromotion drops the pending promotion. The pawn never moved, so the
// position is already restored.
func (s *Session) CancelPromotion() { s.pending = nil }

// Promote completes the pending promotion with the chosen piece type.
func (s *Session) Promote(pt chess.PieceType) error {
	if s.pending == nil {
		return errors.New("no promotion pending")
	}
	for _, m := range s.g.ValidMoves() {
		if m.S1() == s.pending.From && m.S2() == s.pending.To && m.Promo() == pt {
			if err := s.g.Move(m); err != nil {
				return fmt.Errorf("promote: %w", err)
			}
			s.pending = nil
			return nil
		}
	}
	return fmt.Errorf("no legal promotion to %s on %s", PieceName(pt), s.pending.To)
}

// Undo rewinds one half-move by replaying history minus the last move onto a
// fresh game from the starting position. Reports false when there is nothing
// to undo. Replaying re-encodes each move against the evolving position so
// the rules engine re-validates the whole line.
func (s *Session) Undo() bool {
	moves := s.g.Moves()
	if len(moves) == 0 {
		return false
	}
	g := s.freshGame()
	uci := chess.UCINotation{}
	for _, m := range moves[:len(moves)-1] {
		mv, err := uci.Decode(g.Position(), uci.Encode(g.Position(), m))
		if err != nil {
			return false
		}
		if err := g.Move(mv); err != nil {
			return false
		}
	}
	s.g = g
	s.pending = nil
	return true
}

// Restart abandons the current game and begins a new one from the standard
// start position.
func (s *Session) Restart() {
	s.g = chess.NewGame()
	s.startFEN = ""
	s.pending = nil
	s.id = uuid.New()
}

// Resign ends the game with a loss for color.
func (s *Session) Resign(color chess.Color) {
	s.pending = nil
	s.g.Resign(color)
}

// AgreeDraw ends the game as a draw by agreement.
func (s *Session) AgreeDraw() error {
	if err := s.g.Draw(chess.DrawOffer); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	s.pending = nil
	return nil
}

// MoveSAN applies a move given in standard algebraic notation.
func (s *Session) MoveSAN(san string) error {
	if s.pending != nil {
		return errors.New("promotion pending")
	}
	if s.Over() {
		return errors.New("game over")
	}
	mv, err := chess.AlgebraicNotation{}.Decode(s.g.Position(), strings.TrimSpace(san))
	if err != nil {
		return fmt.Errorf("parse move: %w", err)
	}
	if err := s.g.Move(mv); err != nil {
		return fmt.Errorf("move %s: %w", san, err)
	}
	return nil
}

// LastMove returns the most recent move, nil at the start position.
func (s *Session) LastMove() *chess.Move {
	moves := s.g.Moves()
	if len(moves) == 0 {
		return nil
	}
	return moves[len(moves)-1]
}

// InCheck reports whether the side to move is in check, i.e. the last applied
// move gave check and the game is still running.
func (s *Session) InCheck() bool {
	if s.Over() {
		return false
	}
	m := s.LastMove()
	return m != nil && m.HasTag(chess.Check)
}

// KingSquare locates color's king, used to paint the check highlight.
func (s *Session) KingSquare(color chess.Color) chess.Square {
	for sq, p := range s.Board().SquareMap() {
		if p.Type() == chess.King && p.Color() == color {
			return sq
		}
	}
	return chess.NoSquare
}

// StatusLine describes the game state for the status panel.
func (s *Session) StatusLine() string {
	switch s.Outcome() {
	case chess.WhiteWon, chess.BlackWon:
		winner := "White"
		if s.Outcome() == chess.BlackWon {
			winner = "Black"
		}
		return fmt.Sprintf("%s - %s wins by %s", s.Outcome(), winner, methodLabel(s.Method()))
	case chess.Draw:
		return fmt.Sprintf("%s - draw by %s", s.Outcome(), methodLabel(s.Method()))
	}
	turn := "White"
	if s.Turn() == chess.Black {
		turn = "Black"
	}
	if s.pending != nil {
		return fmt.Sprintf("%s to promote on %s", turn, s.pending.To)
	}
	if s.InCheck() {
		return fmt.Sprintf("Check - %s to move", turn)
	}
	return fmt.Sprintf("%s to move", turn)
}

func (s *Session) freshGame() *chess.Game {
	if s.startFEN == "" {
		return chess.NewGame()
	}
	opt, err := chess.FEN(s.startFEN)
	if err != nil {
		// startFEN was validated when the session was built
		return chess.NewGame()
	}
	return chess.NewGame(opt)
}

func methodLabel(m chess.Method) string {
	switch m {
	case chess.Checkmate:
		return "checkmate"
	case chess.Stalemate:
		return "stalemate"
	case chess.Resignation:
		return "resignation"
	case chess.DrawOffer:
		return "agreement"
	case chess.ThreefoldRepetition, chess.FivefoldRepetition:
		return "repetition"
	case chess.FiftyMoveRule, chess.SeventyFiveMoveRule:
		return "the fifty-move rule"
	case chess.InsufficientMaterial:
		return "insufficient material"
	default:
		return strings.ToLower(m.String())
	}
}

// PieceName spells out a piece type for prompts and errors.
func PieceName(pt chess.PieceType) string {
	switch pt {
	case chess.King:
		return "king"
	case chess.Queen:
		return "queen"
	case chess.Rook:
		return "rook"
	case chess.Bishop:
		return "bishop"
	case chess.Knight:
		return "knight"
	case chess.Pawn:
		return "pawn"
	default:
		return "piece"
	}
}

// PromotionChoices lists the pieces a pawn may become, strongest first.
func PromotionChoices() []chess.PieceType {
	return []chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}
}
