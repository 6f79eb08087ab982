package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/thenoetrevino/dragboard/internal/models"
)

// Confirm asks a yes/no question on out and reads the answer from in.
// Anything but y/yes is a no.
func Confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s (y/N): ", prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// UsageError marks bad flag combinations
func UsageError(format string, args ...interface{}) error {
	return &ExitError{Code: ExitUsage, Err: fmt.Errorf(format, args...)}
}

func suggestionFor(err error) string {
	switch {
	case errors.Is(err, models.ErrBoardNotFound):
		return "Create one with: dragboard board create --title=\"My Board\""
	case errors.Is(err, models.ErrUnauthenticated):
		return "Set remote.token in the config or DRAGBOARD_TOKEN (dragboard user create prints one)"
	case errors.Is(err, models.ErrTransient):
		return "The change was not saved; try again"
	}
	return ""
}
