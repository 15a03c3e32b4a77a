package game

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/notnil/chess"
)

// suggestion distance cutoff; anything further is noise, not a typo
const maxSuggestDistance = 2

// SuggestSAN answers a move the user typed but the engine rejected with the
// closest legal move by edit distance, e.g. "Nf33" -> "Nf3". Reports false
// when nothing legal is close enough.
func (s *Session) SuggestSAN(input string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" || s.Over() {
		return "", false
	}
	notation := chess.AlgebraicNotation{}
	pos := s.g.Position()

	best := ""
	bestDist := maxSuggestDistance + 1
	for _, m := range s.g.ValidMoves() {
		san := notation.Encode(pos, m)
		dist := levenshtein.ComputeDistance(normalizeSAN(input), normalizeSAN(san))
		if dist < bestDist {
			best, bestDist = san, dist
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}

// normalizeSAN strips decorations that users type inconsistently so that
// "e8=Q+" and "e8Q" compare close.
func normalizeSAN(san string) string {
	san = strings.TrimRight(san, "+#!?")
	return strings.ReplaceAll(san, "=", "")
}
