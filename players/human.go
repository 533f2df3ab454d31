package players

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/mental-mukjjippa/domain/mjp"
)

// Options are the answers offered to a human, in menu order.
var Options = []string{"1 scissors", "2 rock", "3 paper", "0 exit"}

// Prompter asks a person to pick one of options.
type Prompter interface {
	Select(prompt string, options []string) (string, error)
}

// Human asks a person for each choice.
type Human struct {
	Name     string
	prompter Prompter
	logger   *slog.Logger
}

func NewHuman(name string, p Prompter, logger *slog.Logger) *Human {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Human{Name: name, prompter: p, logger: logger}
}

// ChooseOption parses the answer of the prompter. A prompter failure (closed
// input, interrupted terminal) is treated as the player leaving.
func (h *Human) ChooseOption() mjp.Choice {
	answer, err := h.prompter.Select(fmt.Sprintf("%s, make your move", h.Name), Options)
	if err != nil {
		h.logger.Warn("could not read the choice, leaving the match", "player", h.Name, "error", err)
		return mjp.ChoiceExit
	}
	// menu entries start with their number
	if slices.Contains(Options, answer) {
		answer = strings.Fields(answer)[0]
	}
	return mjp.ParseChoice(answer)
}

// SelectPrompter shows an interactive pterm menu.
type SelectPrompter struct{}

func (SelectPrompter) Select(prompt string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithDefaultText(prompt).
		WithOptions(options).
		Show()
}

// LinePrompter reads one answer per line, for piped or scripted input.
type LinePrompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{scanner: bufio.NewScanner(in), out: out}
}

func (p *LinePrompter) Select(prompt string, options []string) (string, error) {
	if p.out != nil {
		fmt.Fprint(p.out, pterm.Sprintf("%s [%s]: ", prompt, strings.Join(options, ", ")))
	}
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("read choice: %w", err)
		}
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}
