package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"blackjack-trainer/pkg/playable/blackjack"
)

var errQuit = errors.New("quit")

type prompt struct {
	in          *bufio.Reader
	interactive bool
}

func newPrompt(in *bufio.Reader, interactive bool) *prompt {
	return &prompt{
		in:          in,
		interactive: interactive,
	}
}

func (p *prompt) action(id blackjack.HandID, legal []blackjack.Action) (blackjack.Action, error) {
	if len(legal) == 0 {
		return 0, fmt.Errorf("hand %s has no legal actions", id)
	}

	question := fmt.Sprintf("Hand %s", id)
	if p.interactive {
		options := make([]string, 0, len(legal)+1)
		for _, action := range legal {
			options = append(options, action.String())
		}

		options = append(options, "quit")
		selected, err := pterm.DefaultInteractiveSelect.WithOptions(options).Show(question)
		if err != nil {
			return 0, err
		}

		return parseAction(selected, legal)
	}

	for {
		pterm.Printf("%s %s: ", question, actionMenu(legal))
		line, err := p.in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			if err == io.EOF {
				return 0, errQuit
			}

			return 0, err
		}

		action, err := parseAction(line, legal)
		if err == nil || errors.Is(err, errQuit) {
			return action, err
		}

		pterm.Warning.Println(err)
	}
}

func (p *prompt) confirm(question string) (bool, error) {
	if p.interactive {
		return pterm.DefaultInteractiveConfirm.WithDefaultValue(true).Show(question)
	}

	pterm.Printf("%s [Y/n]: ", question)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		if err == io.EOF {
			return false, nil
		}

		return false, err
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "" || answer == "y" || answer == "yes", nil
}

func actionMenu(legal []blackjack.Action) string {
	items := make([]string, len(legal))
	for i, action := range legal {
		items[i] = fmt.Sprintf("%d) %s", i+1, action)
	}

	return "[" + strings.Join(items, ", ") + ", q) quit]"
}

// parseAction accepts an action name or its number in the menu
func parseAction(input string, legal []blackjack.Action) (blackjack.Action, error) {
	input = strings.TrimSpace(input)
	switch strings.ToLower(input) {
	case "q", "quit":
		return 0, errQuit
	}

	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(legal) {
			return 0, fmt.Errorf("choose 1 to %d", len(legal))
		}

		return legal[n-1], nil
	}

	action, err := blackjack.ActionFromString(input)
	if err != nil {
		return 0, err
	}

	for _, allowed := range legal {
		if allowed == action {
			return action, nil
		}
	}

	return 0, fmt.Errorf("%s is not allowed right now", action)
}
