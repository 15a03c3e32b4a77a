package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/notnil/chess"

	"github.com/jask/jaskchess/internal/game"
)

const historyRows = 12

func (a *App) View() string {
	board := a.renderBoard()
	side := a.renderSidebar()
	main := lipgloss.JoinHorizontal(lipgloss.Top, board, "   ", side)

	out := titleStyle.Render("JaskChess") + "\n\n" + main + "\n\n" + a.renderFooter()
	if a.status != "" {
		line := statusStyle.Render(a.status)
		if a.statusIsErr {
			line = errorStyle.Render(a.status)
		}
		out += "\n" + line
	}
	if a.modal != modalNone {
		out += "\n\n" + modalStyle.Render(a.renderModal())
	}
	return out
}

func (a *App) renderSidebar() string {
	var b strings.Builder
	b.WriteString(turnStyle.Render(a.session.StatusLine()) + "\n\n")
	b.WriteString(titleStyle.Render("Moves") + "\n")
	b.WriteString(a.renderHistory() + "\n\n")
	b.WriteString(coordStyle.Render("FEN "+a.session.FEN()) + "\n")
	if a.lastExport != "" {
		b.WriteString(coordStyle.Render("last export: "+a.lastExport) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (a *App) renderHistory() string {
	pairs := a.session.History()
	if len(pairs) == 0 {
		return statusStyle.Render("(no moves yet)")
	}
	if len(pairs) > historyRows {
		pairs = pairs[len(pairs)-historyRows:]
	}
	var b strings.Builder
	for _, p := range pairs {
		fmt.Fprintf(&b, "%3d. %-8s %s\n", p.Number, p.White, p.Black)
	}
	return historyStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (a *App) renderFooter() string {
	var parts []string
	for _, b := range a.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("[%s] %s", h.Key, h.Desc))
	}
	return helpStyle.Render(strings.Join(parts, "  "))
}

func (a *App) renderModal() string {
	switch a.modal {
	case modalPromotion:
		pending := a.session.Pending()
		title := "Promote pawn"
		if pending != nil {
			title = "Promote pawn on " + pending.To.String()
		}
		out := titleStyle.Render(title) + "\n"
		for i, pt := range game.PromotionChoices() {
			marker := " "
			if i == a.promoCursor {
				marker = "▶"
			}
			out += fmt.Sprintf("%s %s\n", marker, game.PieceName(pt))
		}
		out += "[enter] Promote  [q/r/b/n] Pick  [esc] Cancel"
		return out
	case modalImport:
		return titleStyle.Render("Import PGN") +
			fmt.Sprintf("\nFile path: %s\n[enter] Import  [esc] Cancel", a.inputBuffer)
	case modalMoveEntry:
		return titleStyle.Render("Type a move (SAN)") +
			fmt.Sprintf("\n> %s\n[enter] Play  [esc] Cancel", a.inputBuffer)
	case modalConfirmRestart:
		return titleStyle.Render("Restart game?") + "\nThe current game will be lost.\n[y] Yes  [n] No"
	case modalConfirmResign:
		turn := "White"
		if a.session.Turn() == chess.Black {
			turn = "Black"
		}
		return titleStyle.Render(turn+" resigns?") + "\n[y] Yes  [n] No"
	default:
		return ""
	}
}
