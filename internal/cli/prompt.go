package cli

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
)

// prompter asks for values that were not given as flags.
type prompter struct {
	rl *readline.Instance
}

func newPrompter() (*prompter, error) {
	rl, err := readline.NewEx(&readline.Config{Prompt: ">> "})
	if err != nil {
		return nil, err
	}
	return &prompter{rl: rl}, nil
}

func (p *prompter) Close() error {
	return p.rl.Close()
}

// ask reads one line, falling back to def on an empty answer.
func (p *prompter) ask(prompt, def string) string {
	if def != "" {
		p.rl.SetPrompt(fmt.Sprintf("%s [%s]: ", prompt, def))
	} else {
		p.rl.SetPrompt(prompt + ": ")
	}
	line, _ := p.rl.Readline()
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}

// password reads a line without echo.
func (p *prompter) password(prompt string) (string, error) {
	b, err := p.rl.ReadPassword(prompt + ": ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
