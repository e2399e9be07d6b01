package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
)

// ErrQuit is returned by Choose when the user interrupts the menu.
var ErrQuit = errors.New("quit")

// Choose shows items as a menu with the cursor on start and returns the index
// picked. Typing "/" searches by case-insensitive substring. Ctrl-C and
// Ctrl-D return ErrQuit.
func Choose(label string, items []string, start int) (int, error) {
	if len(items) == 0 {
		return -1, ErrQuit
	}

	sel := &promptui.Select{
		Label:        label,
		Items:        items,
		Size:         len(items),
		CursorPos:    min(max(start, 0), len(items)-1),
		HideSelected: true,
		Searcher: func(input string, index int) bool {
			return Matches(items[index], input)
		},
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}

	idx, _, err := sel.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return -1, ErrQuit
		}

		return -1, err
	}

	return idx, nil
}

// Matches reports whether item contains input, ignoring case and
// surrounding space. An empty input matches everything.
func Matches(item, input string) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return true
	}

	return strings.Contains(strings.ToLower(item), strings.ToLower(input))
}
