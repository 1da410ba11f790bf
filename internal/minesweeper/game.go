package minesweeper

import "github.com/sirupsen/logrus"

var Log = logrus.New()

type Status int

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

// Message is the end-of-game text shown by the renderer.
func (s Status) Message() string {
	switch s {
	case Won:
		return "You Win!"
	case Lost:
		return "Game Over"
	default:
		return ""
	}
}

// Game owns a single board and stops accepting moves once it has ended.
type Game struct {
	board  *Board
	status Status
	gen    MineGenerator
}

func NewGame(gen MineGenerator) *Game {
	g := &Game{gen: gen}
	g.Reset()
	return g
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) Status() Status {
	return g.status
}

func (g *Game) Over() bool {
	return g.status != Playing
}

// Reset discards the board and generates a new one from scratch.
func (g *Game) Reset() {
	g.board = NewBoard(Size, g.gen(Size, MineCount))
	g.status = Playing
	Log.WithField("mines", len(g.board.mines)).Debug("new board")
}

// CheckWin reports Won if every safe cell is revealed.
func (g *Game) CheckWin() Status {
	if g.board.Unrevealed() == 0 {
		return Won
	}
	return Playing
}

// Reveal handles a primary click. Landing on a mine ends the game and
// uncovers every mine; so does revealing the last safe cell.
func (g *Game) Reveal(index int) (BoardUpdate, Status) {
	if g.Over() {
		return nil, g.status
	}
	update, mined := g.board.Reveal(index)
	switch {
	case mined:
		g.status = Lost
	case len(update) > 0:
		g.status = g.CheckWin()
	}
	if g.Over() {
		update = append(update, g.board.RevealMines()...)
		Log.WithField("status", g.status).Debug("game ended")
	}
	return update, g.status
}

// ToggleFlag handles a secondary click.
func (g *Game) ToggleFlag(index int) BoardUpdate {
	if g.Over() {
		return nil
	}
	return g.board.ToggleFlag(index)
}
