package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/benbeisheim/movecheck-backend/internal/config"
	"github.com/benbeisheim/movecheck-backend/internal/model"
)

func main() {
	rules, err := config.LoadRules(os.Args[0], os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if err := run(os.Stdin, os.Stdout, model.NewBoard(rules)); err != nil {
		log.Fatal(err)
	}
}

// run prompts for moves on in until it is exhausted, applying each to board.
func run(in io.Reader, out io.Writer, board *model.Board) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintln(out, "Initial Board:")
		fmt.Fprintln(out, board)

		from, ok := prompt(scanner, out, "Enter your move (From): ")
		if !ok {
			break
		}
		to, ok := prompt(scanner, out, "Enter your move (To): ")
		if !ok {
			break
		}

		res, err := board.Move(from, to)
		switch {
		case err != nil:
			fmt.Fprintf(out, "Invalid move: %v\n", err)
		case res.Valid:
			fmt.Fprintf(out, "Valid move. %s\n\n", res.Notation)
		default:
			fmt.Fprintf(out, "Invalid move: %s\n", res.Reason)
		}
	}
	return scanner.Err()
}

func prompt(scanner *bufio.Scanner, out io.Writer, label string) (string, bool) {
	fmt.Fprint(out, label)
	if !scanner.Scan() {
		fmt.Fprintln(out)
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}
