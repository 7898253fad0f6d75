package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/brentyelle/koikoi-server-client/domain/hanafuda"
	"github.com/brentyelle/koikoi-server-client/domain/koikoi"
)

func sideName(s, human koikoi.Side) string {
	if s == human {
		return pterm.LightCyan("You")
	}
	return pterm.LightMagenta("CPU")
}

func cardList(cards []hanafuda.Card) string {
	if len(cards) == 0 {
		return pterm.Gray("(none)")
	}
	lines := make([]string, len(cards))
	for i, c := range cards {
		lines[i] = fmt.Sprintf("%2d. %s", i+1, c.String())
	}
	return strings.Join(lines, "\n")
}

func yakuLines(yaku []hanafuda.Yaku) string {
	if len(yaku) == 0 {
		return "no yaku yet"
	}
	parts := make([]string, len(yaku))
	for i, y := range yaku {
		parts[i] = fmt.Sprintf("%s +%d", y.Name, y.Points)
	}
	return strings.Join(parts, ", ")
}

func continuePanel(req koikoi.ContinueRequest) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	info := pterm.Sprintfln("Yaku: %s", yakuLines(req.Yaku))
	info += pterm.Sprintfln("Raw score: %d", req.OwnRawScore)
	info += pterm.Sprintfln("Settling now scores: %d", req.OwnFinalScore)
	info += pterm.Sprintf("CPU would score: %d", req.OpponentScore)
	if req.OpponentCalledKoiKoi {
		info += pterm.Sprintf("\n%s", pterm.LightRed("The CPU has called Koi-Koi, your points are doubled"))
	}
	return pbox.WithTitle(pterm.LightYellow("|NEW COMBO|")).WithTitleTopCenter().Sprint(info)
}

func printState(e koikoi.Event, human koikoi.Side) {
	pbox := pterm.DefaultBox.WithHorizontalPadding(2)
	table := pterm.Panel{Data: pbox.WithTitle(pterm.LightGreen("Table")).WithTitleTopLeft().Sprint(cardList(e.Table))}
	hand := pterm.Panel{Data: pbox.WithTitle(pterm.LightCyan("Your hand")).WithTitleTopLeft().Sprint(cardList(e.Hand))}
	pile := pterm.Panel{Data: pbox.WithTitle("Your pile").WithTitleTopLeft().Sprintf("%s\n\n%s", cardList(e.Pile), yakuLines(e.Yaku))}
	status := pterm.Panel{Data: pbox.WithTitle("Round " + strconv.Itoa(e.Round)).WithTitleTopLeft().Sprint(statusLine(e, human))}

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{status},
		{table},
		{hand, pile},
	}).Render()
}

func statusLine(e koikoi.Event, human koikoi.Side) string {
	return fmt.Sprintf("Dealer: %s\nDeck: %d cards\nScore: You %d - CPU %d",
		sideName(e.Dealer, human), e.DeckSize, e.Totals[human], e.Totals[human.Other()])
}

// renderer prints game events for the person playing side human.
type renderer struct {
	human koikoi.Side
}

// verb conjugates for the acting side: "You draw", "CPU draws".
func (r renderer) verb(s koikoi.Side, you, cpu string) string {
	if s == r.human {
		return sideName(s, r.human) + " " + you
	}
	return sideName(s, r.human) + " " + cpu
}

func (r renderer) Observe(e koikoi.Event) {
	switch e.Kind {
	case koikoi.EventRoundStarted:
		pterm.DefaultSection.Printfln("Round %d", e.Round)
		pterm.Info.Printfln("%s this round", r.verb(e.Dealer, "deal", "deals"))
	case koikoi.EventInstantWin:
		if e.Redeal {
			pterm.Warning.Println("The table was dealt an instant-win combo. The deal is void and the cards are redealt.")
			return
		}
		pterm.Success.Printfln("%s dealt an instant-win combo, +%d points", r.verb(e.Side, "were", "was"), e.Points)
	case koikoi.EventState:
		if e.Side == r.human {
			printState(e, r.human)
			return
		}
		pterm.Info.Printfln("CPU's turn, %d cards left in the deck", e.DeckSize)
	case koikoi.EventDeckDraw:
		pterm.Info.Printfln("%s %s from the deck", r.verb(e.Side, "draw", "draws"), e.Card)
	case koikoi.EventCardToTable:
		pterm.Info.Printfln("%s %s on the table", r.verb(e.Side, "place", "places"), e.Card)
	case koikoi.EventMatch:
		pterm.Info.Printfln("%s %s with %s", r.verb(e.Side, "take", "takes"), e.Matched, e.Card)
	case koikoi.EventKoiKoi:
		pterm.Warning.Printfln("%s called Koi-Koi! (%s)", sideName(e.Side, r.human), yakuLines(e.Yaku))
	case koikoi.EventSettled:
		pterm.Success.Printfln("%s the round for %d points. Score: You %d - CPU %d",
			r.verb(e.Side, "settle", "settles"), e.Points, e.Totals[r.human], e.Totals[r.human.Other()])
	case koikoi.EventNoScore:
		pterm.Info.Println("The deck is exhausted and nobody scores this round.")
	case koikoi.EventGameOver:
		if e.Summary != nil {
			pterm.Println(summaryPanel(*e.Summary, r.human))
		}
	}
}

func summaryPanel(s koikoi.Summary, human koikoi.Side) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	info := pterm.Sprintfln("Rounds played: %d (redeals: %d)", s.Rounds, s.Redeals)
	info += pterm.Sprintfln("You: %d points, %.2f per round", s.Totals[human], s.Averages[human])
	info += pterm.Sprintfln("CPU: %d points, %.2f per round", s.Totals[human.Other()], s.Averages[human.Other()])
	info += winnerLine(s, human)
	return pbox.WithTitle(pterm.LightGreen("|GAME OVER|")).WithTitleTopCenter().Sprint(info)
}

func winnerLine(s koikoi.Summary, human koikoi.Side) string {
	switch {
	case s.Tie:
		return "It's a tie!"
	case s.Winner == human:
		return "You win!"
	default:
		return "The CPU wins!"
	}
}

// ledgerTable lays out recorded rounds for pterm.DefaultTable.
func ledgerTable(results []koikoi.RoundResult, human koikoi.Side) pterm.TableData {
	who := func(s koikoi.Side) string {
		if s == human {
			return "You"
		}
		return "CPU"
	}
	data := pterm.TableData{{"Round", "Dealer", "Outcome", "Points", "You", "CPU"}}
	for _, r := range results {
		outcome := "no score"
		if r.Scored {
			outcome = fmt.Sprintf("%s (%s)", who(r.Scorer), strings.ReplaceAll(string(r.Reason), "_", " "))
		}
		data = append(data, []string{
			strconv.Itoa(r.Round),
			who(r.Dealer),
			outcome,
			strconv.Itoa(r.Points),
			strconv.Itoa(r.Totals[human]),
			strconv.Itoa(r.Totals[human.Other()]),
		})
	}
	return data
}
