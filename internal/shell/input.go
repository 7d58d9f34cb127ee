package shell

import (
	"bufio"
	"fmt"
)

// lineReader feeds both the command loop and the player's follow-up
// questions from the same input, so scripted answers stay in order.
type lineReader struct {
	scanner *bufio.Scanner
	shell   *Shell
}

func (r *lineReader) next() (string, bool) {
	if r.shell.interact {
		fmt.Fprint(r.shell.out, promptStyle.Render(r.shell.prompt))
	}
	if !r.scanner.Scan() {
		return "", false
	}
	return r.scanner.Text(), true
}

// Prompt implements player.Prompter.
func (r *lineReader) Prompt() (string, bool) {
	if !r.scanner.Scan() {
		return "", false
	}
	return r.scanner.Text(), true
}

func (r *lineReader) err() error {
	return r.scanner.Err()
}
