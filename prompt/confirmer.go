package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// You only need **one** of these per package!
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Confirmer asks the operator to approve a step that changes remote state
//
//counterfeiter:generate . Confirmer
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// Terminal asks on out and reads the answer from in. Only y or yes approves;
// an empty answer or end of input declines.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

func (t *Terminal) Confirm(question string) (bool, error) {
	for {
		fmt.Fprintf(t.out, "%s [y/N]: ", question)

		line, err := t.in.ReadString('\n')
		if err != nil && err != io.EOF {
			return false, fmt.Errorf("reading confirmation: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			return false, nil
		}

		if err == io.EOF {
			return false, nil
		}

		fmt.Fprintln(t.out, "please answer y or n")
	}
}

// AutoApprove approves every question, logging it so unattended runs leave a
// record of what was approved
type AutoApprove struct {
	logger zerolog.Logger
}

func NewAutoApprove(logger zerolog.Logger) AutoApprove {
	return AutoApprove{logger: logger.With().Str("component", "prompt").Logger()}
}

func (a AutoApprove) Confirm(question string) (bool, error) {
	a.logger.Info().Str("question", question).Msg("auto-approved")
	return true, nil
}
