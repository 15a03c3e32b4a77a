package game

import "github.com/notnil/chess"

// MovePair is one numbered row of the history panel: "3. Nf3 Nc6". Black is
// empty when White's half-move is still unanswered.
type MovePair struct {
	Number int
	White  string
	Black  string
}

// History returns the game's moves as numbered pairs in standard algebraic
// notation. Each move is encoded against the position it was played from.
func (s *Session) History() []MovePair {
	moves := s.g.Moves()
	if len(moves) == 0 {
		return nil
	}
	positions := s.g.Positions()
	notation := chess.AlgebraicNotation{}

	var pairs []MovePair
	for i, m := range moves {
		san := notation.Encode(positions[i], m)
		if i%2 == 0 {
			pairs = append(pairs, MovePair{Number: i/2 + 1, White: san})
		} else {
			pairs[len(pairs)-1].Black = san
		}
	}
	return pairs
}

// HalfMoves counts moves played so far.
func (s *Session) HalfMoves() int { return len(s.g.Moves()) }
