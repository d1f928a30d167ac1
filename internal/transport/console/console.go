// Package console renders the interactive triage and review screens on a
// terminal and reads the user's choices.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/mattn/go-isatty"
)

const labelWidth = 25

const (
	ansiClear  = "\x1b[H\x1b[2J"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiReset  = "\x1b[0m"
)

// Console reads choices from in and writes screens to out. ANSI colour and
// clear-screen codes are written only when out is a terminal.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	color bool
}

// New creates a Console.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:    bufio.NewReader(in),
		out:   out,
		color: isTerminal(out),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (c *Console) clear() {
	if c.color {
		fmt.Fprint(c.out, ansiClear)
	}
}

func (c *Console) field(label string, value any) {
	fmt.Fprintf(c.out, "%-*s%v\n", labelWidth, label, value)
}

func (c *Console) paint(text, color string) string {
	if !c.color || color == "" {
		return text
	}
	return color + text + ansiReset
}

// choose prompts until the user enters one of choices (case-insensitive).
// It returns io.EOF when input ends.
func (c *Console) choose(ctx context.Context, choices []string) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		fmt.Fprintf(c.out, "Action (%s): ", strings.Join(choices, ", "))

		line, err := c.in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			fmt.Fprintln(c.out)
			return "", err
		}

		choice := strings.ToLower(strings.TrimSpace(line))
		if slices.Contains(choices, choice) {
			return choice, nil
		}
		fmt.Fprintf(c.out, "Error: %q is not a valid choice.\n", strings.TrimSpace(line))
		if err != nil {
			return "", err
		}
	}
}
