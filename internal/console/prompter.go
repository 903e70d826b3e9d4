// Package console reads the player's answers and writes the game's messages.
package console

import (
	"bufio"
	"fmt"
	"io"
	"roulette/internal/service"
	"slices"
	"strconv"
	"strings"
)

// Prompter reads whitespace-separated answers from r, printing prompts to w.
type Prompter struct {
	sc *bufio.Scanner
	w  io.Writer
}

func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &Prompter{sc: sc, w: w}
}

// PromptString prints prompt and returns the next word
func (p *Prompter) PromptString(prompt string) (string, error) {
	fmt.Fprint(p.w, prompt)
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", fmt.Errorf("%w: %v", service.ErrNoInput, err)
		}
		return "", service.ErrNoInput
	}
	return p.sc.Text(), nil
}

// PromptInt asks again until an integer is entered
func (p *Prompter) PromptInt(prompt string) (int, error) {
	for {
		s, err := p.PromptString(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err == nil {
			return n, nil
		}
	}
}

// PromptRange asks again until an integer in [low, high] is entered
func (p *Prompter) PromptRange(prompt string, low, high int) (int, error) {
	full := fmt.Sprintf("%s between %d and %d? ", prompt, low, high)
	for {
		n, err := p.PromptInt(full)
		if err != nil {
			return 0, err
		}
		if low <= n && n <= high {
			return n, nil
		}
	}
}

// PromptOneOf asks again until one of choices is entered
func (p *Prompter) PromptOneOf(prompt string, choices ...string) (string, error) {
	full := fmt.Sprintf("%s one of [%s]? ", prompt, strings.Join(choices, ", "))
	for {
		s, err := p.PromptString(full)
		if err != nil {
			return "", err
		}
		if slices.Contains(choices, s) {
			return s, nil
		}
	}
}
