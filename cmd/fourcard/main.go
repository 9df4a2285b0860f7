package main

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/sirupsen/logrus"

	"fourcardpoker/internal/ai"
	"fourcardpoker/internal/config"
	"fourcardpoker/internal/rng"
	"fourcardpoker/internal/util"
	"fourcardpoker/pkg/holdem"
	"fourcardpoker/pkg/holdem/action"
)

// the human always holds the first seat created
const humanID = 1

var seedFlag = flag.Int64("seed", 0, "random seed (0 seeds from the clock)")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()

	seed := cfg.Seed
	if *seedFlag != 0 {
		seed = *seedFlag
	}
	source := rng.NewSource(seed)

	aiSeats := cfg.Game.AISeats
	if aiSeats < holdem.MinPlayers-1 || aiSeats > holdem.MaxPlayers-1 {
		logrus.WithField("aiSeats", aiSeats).Fatal("aiSeats must leave a table of 2 to 8 players")
	}

	names := []string{cfg.Player}
	for i := 0; i < aiSeats; i++ {
		names = append(names, util.GetRandomName(source))
	}

	game, err := holdem.NewGame(logrus.StandardLogger(), names, cfg.Options())
	if err != nil {
		logrus.WithError(err).Fatal("could not create game")
	}

	printTitle()
	run(game, ai.New(source))
}

// run plays hands until one player holds all the chips
func run(game *holdem.Game, policy *ai.Policy) {
	for !game.IsGameOver() {
		game.StartNewHand()
		if game.Phase() == holdem.PhaseEnded {
			break
		}

		pterm.DefaultSection.Printfln("Hand %d", game.HandNumber())
		renderTable(game)

		for game.Phase() != holdem.PhaseEnded {
			playBettingRound(game, policy)

			if game.Phase() != holdem.PhaseEnded {
				if err := game.AdvancePhase(); err != nil {
					logrus.WithError(err).Fatal("could not advance phase")
				}

				renderTable(game)
			}
		}

		renderResults(game)
		game.Eliminate()
		game.AdvanceDealer()
	}

	for _, p := range game.Players() {
		if p.Chips() > 0 {
			pterm.Success.Printfln("%s wins the table with %d chips", p.Name, p.Chips())
		}
	}
}

func playBettingRound(game *holdem.Game, policy *ai.Policy) {
	for !game.IsRoundComplete() {
		player := game.CurrentPlayer()
		if player == nil {
			return
		}

		seat := seatOf(game, player)

		if player.ID == humanID {
			act, amount := promptAction(game, seat)
			if err := game.ProcessAction(act, amount); err != nil {
				pterm.Error.Printfln("Invalid action: %s", err)
				continue
			}
			continue
		}

		act, amount := policy.Decide(game, seat)
		if err := game.ProcessAction(act, amount); err != nil {
			// the policy picked an unplayable raise; fold instead
			logrus.WithError(err).WithField("player", player.Name).Warn("policy action rejected")
			_ = game.ProcessAction(action.Fold, 0)
			act, amount = action.Fold, 0
		}

		pterm.Info.Printfln("%s %s", player.Name, act.LogMessage(displayAmount(game, act, amount)))
	}
}

// promptAction asks the human for their move. An unparseable raise amount is
// re-prompted rather than forwarded to the engine.
func promptAction(game *holdem.Game, seat int) (action.Action, int) {
	actions := game.LegalActionsFor(seat)

	options := make([]string, len(actions))
	for i, act := range actions {
		options[i] = act.String()
	}

	for {
		selected, _ := pterm.DefaultInteractiveSelect.
			WithDefaultText("Select your next action").
			WithOptions(options).
			Show()

		var chosen action.Action
		for _, act := range actions {
			if act.String() == selected {
				chosen = act
				break
			}
		}

		if chosen != action.Raise {
			return chosen, 0
		}

		minimum := game.CurrentBet() + game.MinRaise()
		raw, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText("Raise to (minimum " + strconv.Itoa(minimum) + ")").
			Show()

		amount, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			pterm.Error.Printfln("Not a number: %s", raw)
			continue
		}

		return action.Raise, amount
	}
}

// displayAmount recomputes the chips a just-processed action moved, for the
// table log only
func displayAmount(game *holdem.Game, act action.Action, amount int) int {
	switch act {
	case action.Raise:
		return amount
	case action.Call, action.AllIn:
		return game.CurrentBet()
	}

	return 0
}

func seatOf(game *holdem.Game, player *holdem.Player) int {
	for i, p := range game.Players() {
		if p == player {
			return i
		}
	}

	return -1
}

func printTitle() {
	pterm.Print("\n")

	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Four", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("Card", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err == nil {
		pterm.Print(title)
	}

	pterm.Println()
}

func setupLogger() {
	if lvl := config.Instance().LogLevel; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
