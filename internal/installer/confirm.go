package installer

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Confirmer asks the user a yes/no question and blocks until answered.
// It is an interface so pipeline logic can be tested with scripted answers
// instead of a real terminal.
type Confirmer interface {
	Confirm(prompt string) bool
}

// TerminalConfirmer reads the answer from stdin. Anything other than a
// plain "y" (case-insensitive) counts as no.
type TerminalConfirmer struct{}

func (TerminalConfirmer) Confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}
