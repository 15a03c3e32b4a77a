package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskchess/internal/config"
	"github.com/jask/jaskchess/internal/game"
	"github.com/jask/jaskchess/internal/tui"
)

func main() {
	fen := flag.String("fen", "", "start from a FEN position instead of the standard start")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: jaskchess [flags] [game.pgn]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	session := game.NewSession()
	if *fen != "" {
		session, err = game.NewSessionFromFEN(*fen)
		if err != nil {
			log.Fatalf("fen: %v", err)
		}
	}
	if path := flag.Arg(0); path != "" {
		if err := session.LoadPGNFile(path); err != nil {
			log.Fatalf("load %s: %v", path, err)
		}
	}

	if os.Getenv("JASKCHESS_DEBUG") != "" {
		f, err := tea.LogToFile("jaskchess-debug.log", "jaskchess")
		if err != nil {
			log.Fatalf("debug log: %v", err)
		}
		defer f.Close()
	}

	p := tea.NewProgram(tui.New(cfg, session), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("tui: %v", err)
	}
}
