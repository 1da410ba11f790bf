// Package command parses the line protocol spoken by game shells. A message
// holds one or more newline-separated commands; each command is a name
// followed by space-separated integer arguments:
//
//	o 55 // reveal cell 55
//	f 12 // toggle flag on cell 12
//	left // turn left
package command

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"
)

var (
	ErrEmpty          = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrArgCount       = errors.New("invalid number of arguments")
	ErrBadArgument    = errors.New("argument must be an int")
)

type Command struct {
	Name string
	Args []int
}

// Set maps known command names to their number of arguments.
type Set map[string]int

func (s Set) Parse(line string) (Command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Command{}, ErrEmpty
	}
	nargs, ok := s[parts[0]]
	if !ok {
		return Command{}, fmt.Errorf("%w %q", ErrUnknownCommand, parts[0])
	}
	if nargs != len(parts)-1 {
		return Command{}, fmt.Errorf(
			"%w: %s takes %d, got %d", ErrArgCount, parts[0], nargs, len(parts)-1,
		)
	}
	cmd := Command{Name: parts[0], Args: make([]int, nargs)}
	for i, arg := range parts[1:] {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return Command{}, fmt.Errorf("%w: %q", ErrBadArgument, arg)
		}
		cmd.Args[i] = v
	}
	return cmd, nil
}

// Lines yields the non-empty lines of a message together with their
// position in it.
func Lines(s string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, "\n")
			if piece = strings.TrimSpace(piece); piece != "" {
				if !yield(i, piece) {
					return
				}
			}
			i += 1
		}
	}
}
