package main

import (
	"github.com/pterm/pterm"

	"fourcardpoker/pkg/holdem"
)

// renderTable draws the community cards, the pot, and every seat. Hole cards
// other than the human's stay hidden until showdown.
func renderTable(game *holdem.Game) {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)

	board := "(no cards yet)"
	if community := game.Community(); len(community) > 0 {
		board = community.Display()
	}

	tableInfo := pterm.Sprintfln("%s   Board: %s   Pot: %d",
		pterm.LightYellow(game.Phase().String()), board, game.Pot())

	seats := ""
	reveal := game.Phase() == holdem.PhaseShowdown || game.Phase() == holdem.PhaseEnded
	for _, p := range game.Players() {
		seats += pterm.Sprintfln("%s", seatLine(p, reveal))
	}

	panels := pterm.Panels{
		{{Data: pbox.WithTitle(pterm.LightCyan("|TABLE|")).WithTitleTopCenter().Sprint(tableInfo)}},
		{{Data: pbox.WithTitle(pterm.LightCyan("|SEATS|")).WithTitleTopCenter().Sprint(seats)}},
	}

	if rendered, err := pterm.DefaultPanel.WithPanels(panels).Srender(); err == nil {
		pterm.Println(rendered)
	}
}

func seatLine(p *holdem.Player, reveal bool) string {
	cards := "🂠 🂠"
	if p.ID == humanID || (reveal && p.Status() != holdem.StatusFolded) {
		if hand := p.Cards(); len(hand) > 0 {
			cards = hand.Display()
		}
	}

	line := pterm.Sprintf("%-24s %5d chips   %s", p.Name, p.Chips(), cards)

	if position := p.Position().String(); position != "" {
		line += pterm.Sprintf("   [%s]", position)
	}

	if p.Status() != holdem.StatusActive {
		line += pterm.Sprintf("   (%s)", p.Status())
	}

	return line
}

// renderResults shows the settlement of the hand just played
func renderResults(game *holdem.Game) {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)

	info := ""
	for _, result := range game.Results() {
		if result.Winnings == 0 {
			continue
		}

		if result.Evaluation == nil {
			info += pterm.Sprintfln("%s wins %d uncontested", result.Player.Name, result.Winnings)
			continue
		}

		info += pterm.Sprintfln("%s wins %d with %s (%s)",
			result.Player.Name, result.Winnings,
			result.Evaluation.Category, result.Evaluation.Cards.Display())
	}

	if info == "" {
		return
	}

	pterm.Println(pbox.WithTitle(pterm.LightGreen("|SHOWDOWN|")).WithTitleTopCenter().Sprint(info))
}
