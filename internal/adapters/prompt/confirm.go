package prompt

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"tally/internal/logging"
	"tally/internal/ports"
)

// Confirmer asks yes/no questions with a huh form.
// When input is not a terminal the form runs in accessible mode and reads a plain "y"/"n" line.
type Confirmer struct {
	accessible bool
	in         io.Reader
	out        io.Writer
}

var _ ports.Confirmer = (*Confirmer)(nil)

// NewConfirmer creates a confirmer reading from in and drawing to out
func NewConfirmer(in io.Reader, out io.Writer) *Confirmer {
	return &Confirmer{
		accessible: !isTerminal(in),
		in:         in,
		out:        out,
	}
}

// Confirm shows prompt and returns the answer. Aborting the form counts as "no".
func (c *Confirmer) Confirm(prompt string) (bool, error) {
	var confirmed bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(prompt).
				Value(&confirmed).
				Affirmative("Yes").
				Negative("No"),
		),
	).
		WithAccessible(c.accessible).
		WithInput(c.in).
		WithOutput(c.out)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			logging.Logger.Debug("Confirmation aborted", "prompt", prompt)
			return false, nil
		}
		return false, err
	}

	logging.Logger.Debug("Confirmation answered", "prompt", prompt, "confirmed", confirmed)
	return confirmed, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
