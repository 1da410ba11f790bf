// Command sweep plays minesweeper on the terminal. It reads the same
// commands the websocket shell accepts, one per line:
//
//	o <index>  reveal a cell
//	f <index>  toggle a flag
//	g          redraw the board
//	r          start over once the game has ended
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/vancomm/minigames/internal/handlers"
	"github.com/vancomm/minigames/internal/minesweeper"
)

var log = logrus.New()

func render(w io.Writer, session *handlers.MinesweeperSession, events []any) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case handlers.ErrorEvent:
			fmt.Fprintf(w, "line %d: %s\n", ev.Line+1, ev.Message)
		case handlers.BoardEvent:
			fmt.Fprint(w, session.Game().Board().String())
			if ev.Message != "" {
				fmt.Fprintln(w, ev.Message)
			}
			if ev.Restart {
				fmt.Fprintln(w, "type r to play again")
			}
		}
	}
}

func run(in io.Reader, out io.Writer, seed *uint64) error {
	params := handlers.SessionParams{Seed: seed}
	session := handlers.NewMinesweeperSession(
		minesweeper.NewGame(minesweeper.RandomMines(params.Rand())),
		log,
	)
	render(out, session, []any{session.State()})

	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, "> ")
	for scanner.Scan() {
		render(out, session, session.Handle(scanner.Text()))
		fmt.Fprint(out, "> ")
	}
	return scanner.Err()
}

func main() {
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	seed := pflag.Uint64("seed", 0, "mine placement seed (random when unset)")
	pflag.Parse()

	var s *uint64
	if pflag.CommandLine.Changed("seed") {
		s = seed
	}
	if err := run(os.Stdin, os.Stdout, s); err != nil {
		log.Fatal(err)
	}
}
