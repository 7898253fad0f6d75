package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/brentyelle/koikoi-server-client/domain/hanafuda"
	"github.com/brentyelle/koikoi-server-client/domain/koikoi"
)

// humanDecider asks the person at the terminal for every choice.
type humanDecider struct{}

// choiceOptions labels the valid cards for a select prompt. Labels carry the
// index because identical chaff cards would otherwise collide.
func choiceOptions(cards []hanafuda.Card, valid []int) ([]string, map[string]int) {
	options := make([]string, 0, len(valid))
	byLabel := make(map[string]int, len(valid))
	for _, i := range valid {
		label := fmt.Sprintf("%d. %s", i+1, cards[i].Name())
		options = append(options, label)
		byLabel[label] = i
	}
	return options, byLabel
}

func selectCard(text string, cards []hanafuda.Card, valid []int) (int, error) {
	options, byLabel := choiceOptions(cards, valid)
	selected, err := pterm.DefaultInteractiveSelect.WithDefaultText(text).WithOptions(options).WithMaxHeight(10).Show()
	if err != nil {
		return 0, err
	}
	i, ok := byLabel[selected]
	if !ok {
		return 0, fmt.Errorf("unknown option %q", selected)
	}
	return i, nil
}

func (humanDecider) HandIndex(ctx context.Context, req koikoi.HandRequest) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	text := "Select a card from your hand to match"
	if req.GiveUp {
		text = "No card matches the table. Select a card to give up"
	}
	return selectCard(text, req.Hand, req.Valid)
}

func (humanDecider) TableIndex(ctx context.Context, req koikoi.TableRequest) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return selectCard(fmt.Sprintf("Select the table card to take with %s", req.Matcher.Name()), req.Table, req.Valid)
}

func (humanDecider) ContinueDecision(ctx context.Context, req koikoi.ContinueRequest) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	pterm.Println(continuePanel(req))
	return pterm.DefaultInteractiveConfirm.
		WithDefaultText("Call Koi-Koi and keep playing?").
		WithConfirmText("Koi-Koi").
		WithRejectText("Settle").
		WithDefaultValue(false).
		Show()
}

// parseRounds validates the answer to the rounds prompt.
func parseRounds(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if n < 1 || n > 12 {
		return 0, fmt.Errorf("rounds must be between 1 and 12, got %d", n)
	}
	return n, nil
}

func askRounds() int {
	for {
		answer, err := pterm.DefaultInteractiveTextInput.WithDefaultText("How many rounds of Koi-Koi would you like to play (1-12)?").WithDefaultValue("12").Show()
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		n, err := parseRounds(answer)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		return n
	}
}
