package game

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/notnil/chess"
)

// ExportMeta carries the tag-pair values stamped on exported games.
type ExportMeta struct {
	Event string
	Site  string
}

// LoadPGN replaces the current game with one parsed from r. On parse failure
// the session is left untouched; this is the one loud error in the UI.
func (s *Session) LoadPGN(r io.Reader) error {
	opt, err := chess.PGN(r)
	if err != nil {
		return fmt.Errorf("parse pgn: %w", err)
	}
	g := chess.NewGame(opt)
	s.g = g
	s.pending = nil
	s.startFEN = ""
	if tp := g.GetTagPair("FEN"); tp != nil {
		s.startFEN = tp.Value
	}
	s.id = uuid.New()
	return nil
}

// LoadPGNFile reads a PGN game from path.
func (s *Session) LoadPGNFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open pgn: %w", err)
	}
	defer f.Close()
	return s.LoadPGN(f)
}

// PGN serializes the game with meta tag pairs attached. Serialization itself
// is the rules engine's; this only stamps identity tags.
func (s *Session) PGN(meta ExportMeta) string {
	if meta.Event != "" {
		s.g.AddTagPair("Event", meta.Event)
	}
	if meta.Site != "" {
		s.g.AddTagPair("Site", meta.Site)
	}
	s.g.AddTagPair("Date", time.Now().Format("2006.01.02"))
	s.g.AddTagPair("Result", s.g.Outcome().String())
	s.g.AddTagPair("GameId", s.id.String())
	return strings.TrimSpace(s.g.String()) + "\n"
}

// Export writes the game as a PGN file under dir and returns the path.
// Filenames carry a timestamp and the game ID so repeated exports never
// clobber each other.
func (s *Session) Export(dir string, meta ExportMeta) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir export dir: %w", err)
	}
	name := fmt.Sprintf("game-%s-%s.pgn", time.Now().Format("20060102-150405"), shortID(s.id))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(s.PGN(meta)), 0o644); err != nil {
		return "", fmt.Errorf("write pgn: %w", err)
	}
	return path, nil
}

func shortID(id uuid.UUID) string {
	return strings.SplitN(id.String(), "-", 2)[0]
}
