package errhandler

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

// IsCancel reports whether err means the user backed out of a prompt
// rather than something going wrong.
func IsCancel(err error) bool {
	return errors.Is(err, huh.ErrUserAborted) ||
		errors.Is(err, terminal.InterruptErr) ||
		strings.Contains(err.Error(), "interrupt")
}

func HandleError(err error) {
	if IsCancel(err) {
		pterm.Warning.Println("Operation Cancelled")
		os.Exit(0)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
