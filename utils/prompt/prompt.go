package promptutils

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
)

type Prompter interface {
	PromptForSelection(label string, items []string) (string, error)
}

type RealPrompter struct{}

var (
	ErrInterrupted = errors.New("operation interrupted")
	ErrNoItems     = errors.New("nothing to select")
)

func (p *RealPrompter) HandlePromptError(err error) error {
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			fmt.Println("\nReceived termination signal. Exiting.")
			return ErrInterrupted
		}
		return fmt.Errorf("failed to select an option: %w", err)
	}
	return nil
}

func (p *RealPrompter) PromptForSelection(label string, items []string) (string, error) {
	if len(items) == 0 {
		return "", ErrNoItems
	}

	prompt := promptui.Select{
		Label: label,
		Items: items,
		Size:  10,
	}
	_, selected, err := prompt.Run()

	if err := p.HandlePromptError(err); err != nil {
		return "", err
	}
	return selected, nil
}

func NewPrompt() Prompter {
	return &RealPrompter{}
}
