package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is swapped out in tests so they do not need a real terminal.
var readPassword = term.ReadPassword

// GetSimpleText asks the user for a single line of input. The prompt is
// written to w followed by a "> " marker on the next line, the answer is
// read from reader and returned with surrounding whitespace removed.
// Input terminated by EOF instead of a newline is still accepted when
// something was typed.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprintf(w, "%s\n> ", prompt); err != nil {
		return "", err
	}

	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword reads a password from the terminal with echo disabled.
// The prompt goes to w and a newline is emitted once the read finishes,
// since the terminal swallows the one the user typed.
//
// Callers are expected to wipe the returned slice after use.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}

	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}
