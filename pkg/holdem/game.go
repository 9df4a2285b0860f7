package holdem

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"fourcardpoker/pkg/deck"
	"fourcardpoker/pkg/holdem/action"
)

// Game is a game of 2+4 Texas Hold'em. The game owns its deck and its
// players; every mutation goes through the action processing entry points.
// The engine is single-threaded: callers must not interleave mutations.
type Game struct {
	options Options
	logger  logrus.FieldLogger
	id      uuid.UUID

	deck      *deck.Deck
	players   []*Player
	community deck.Hand

	pot        int
	currentBet int
	minRaise   int

	phase         Phase
	dealerIndex   int
	turnIndex     int
	roundComplete bool
	handNumber    int

	results []*HandResult
}

// NewGame returns a new game with one seat per name, each starting with the
// configured stack. The player count must be between 2 and 8.
func NewGame(logger logrus.FieldLogger, names []string, opts Options) (*Game, error) {
	if len(names) < MinPlayers || len(names) > MaxPlayers {
		return nil, ErrInvalidConfiguration
	}

	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	players := make([]*Player, len(names))
	for i, name := range names {
		players[i] = newPlayer(int64(i+1), name, opts.StartingStack)
	}

	id := uuid.New()

	return &Game{
		options:  opts,
		logger:   logger.WithField("game", id),
		id:       id,
		deck:     deck.New(),
		players:  players,
		phase:    PhaseWaiting,
		minRaise: opts.BigBlind,
	}, nil
}

// StartNewHand advances the hand counter, deals, posts the blinds, and
// enters the pre-flop betting round. Players eliminated in the previous hand
// are removed from the roster first.
func (g *Game) StartNewHand() {
	g.handNumber++
	g.community = make(deck.Hand, 0, communityCardCount)
	g.pot = 0
	g.currentBet = 0
	g.minRaise = g.options.BigBlind
	g.roundComplete = false
	g.results = nil

	for _, p := range g.players {
		p.resetForNewHand()
	}

	remaining := make([]*Player, 0, len(g.players))
	for _, p := range g.players {
		if p.status != StatusOut {
			remaining = append(remaining, p)
		}
	}
	g.players = remaining

	if len(g.players) < MinPlayers {
		g.phase = PhaseEnded
		return
	}

	g.setPositions()
	g.dealHoleCards()
	g.postBlinds()

	g.phase = PhasePreFlop
	g.startBettingRound()

	g.logger.WithFields(logrus.Fields{
		"hand":    g.handNumber,
		"players": len(g.players),
	}).Info("hand started")
}

// setPositions assigns button, small blind, and big blind from the dealer
// index. Heads-up, the button posts the small blind.
func (g *Game) setPositions() {
	n := len(g.players)
	dealer := g.dealerIndex % n

	if n == 2 {
		g.players[dealer].position = PositionSmallBlind
		g.players[(dealer+1)%n].position = PositionBigBlind
		return
	}

	g.players[dealer].position = PositionButton
	g.players[(dealer+1)%n].position = PositionSmallBlind
	g.players[(dealer+2)%n].position = PositionBigBlind
}

// dealHoleCards resets the deck and gives each player two cards, one at a
// time around the table
func (g *Game) dealHoleCards() {
	g.deck.Reset(true)

	for i := 0; i < holeCardCount; i++ {
		for _, p := range g.players {
			if p.status == StatusActive {
				p.cards.AddCard(g.drawCards(1)[0])
			}
		}
	}
}

// drawCards pulls n cards from the deck. If the deck runs dry mid-deal it is
// rebuilt and reshuffled once; discards are not tracked across hands.
func (g *Game) drawCards(n int) []*deck.Card {
	cards, err := g.deck.DrawCards(n)
	if err == nil {
		return cards
	}

	g.logger.WithField("remaining", g.deck.CardsLeft()).Warn("deck exhausted, reshuffling")
	g.deck.Reset(true)

	cards, err = g.deck.DrawCards(n)
	if err != nil {
		panic(fmt.Sprintf("draw failed after reshuffle: %v", err))
	}

	return cards
}

// postBlinds posts the forced bets. A blind larger than the stack puts the
// player all-in for what they have.
func (g *Game) postBlinds() {
	for _, p := range g.players {
		switch p.position {
		case PositionSmallBlind:
			amount := min(g.options.SmallBlind, p.chips)
			_ = p.PlaceBet(amount)
			g.pot += amount
		case PositionBigBlind:
			amount := min(g.options.BigBlind, p.chips)
			_ = p.PlaceBet(amount)
			g.pot += amount
			g.currentBet = amount
		}
	}
}

// startBettingRound resets the per-round state and finds the first to act.
// Pre-flop the blinds are already posted, so the round bets must survive.
func (g *Game) startBettingRound() {
	if g.phase != PhasePreFlop {
		for _, p := range g.players {
			p.resetForNewRound()
		}

		g.currentBet = 0
	}

	g.roundComplete = false
	g.findFirstToAct()
}

// findFirstToAct sets the turn pointer. Pre-flop the seat left of the big
// blind opens; post-flop the small blind or the first can-act seat clockwise
// from it.
func (g *Game) findFirstToAct() {
	n := len(g.players)

	startIndex := -1
	if g.phase == PhasePreFlop {
		for i, p := range g.players {
			if p.position == PositionBigBlind {
				startIndex = (i + 1) % n
				break
			}
		}
	} else {
		for i, p := range g.players {
			if p.position == PositionSmallBlind {
				startIndex = i
				break
			}
		}
	}

	if startIndex < 0 {
		startIndex = 0
	}

	for i := 0; i < n; i++ {
		index := (startIndex + i) % n
		if g.players[index].CanAct() {
			g.turnIndex = index
			return
		}
	}

	// nobody can act; the round is over before it begins
	g.roundComplete = true
}

// CurrentPlayer returns the player whose turn it is, or nil when no decision
// is pending
func (g *Game) CurrentPlayer() *Player {
	if g.roundComplete || !g.phase.IsBettingRound() {
		return nil
	}

	return g.players[g.turnIndex]
}

// LegalActionsFor is a pure query for the legal actions of the given seat
func (g *Game) LegalActionsFor(index int) []action.Action {
	if index < 0 || index >= len(g.players) {
		return nil
	}

	if g.roundComplete || !g.phase.IsBettingRound() {
		return nil
	}

	return g.players[index].LegalActions(g.currentBet, g.minRaise)
}

// ProcessAction applies one action for the player on the clock. A rejected
// action returns a non-nil error and leaves the game state untouched.
// The amount argument is only meaningful for a raise.
func (g *Game) ProcessAction(act action.Action, amount int) error {
	if !g.phase.IsBettingRound() {
		return ErrNoBettingRound
	}

	if g.roundComplete {
		return ErrRoundOver
	}

	player := g.players[g.turnIndex]
	if !player.CanAct() {
		return ErrCannotAct
	}

	if !containsAction(player.LegalActions(g.currentBet, g.minRaise), act) {
		return newIllegalActionError("%s is not a legal action right now", act)
	}

	logAmount := 0

	switch act {
	case action.Fold:
		player.Fold()

	case action.Check:
		player.Check()

	case action.Call:
		delta := g.currentBet - player.roundBet
		moved := player.Call(delta)
		g.pot += moved
		logAmount = moved

	case action.Raise:
		if err := g.validateRaise(player, amount); err != nil {
			return err
		}

		previousBet := g.currentBet
		delta := amount - player.roundBet
		if err := player.RaiseTo(amount); err != nil {
			return err
		}

		g.pot += delta
		g.currentBet = amount
		// re-raise sizing uses the last raise increment, not the big blind
		g.minRaise = amount - previousBet
		logAmount = amount

	case action.AllIn:
		wagered := player.AllIn()
		g.pot += wagered
		if player.roundBet > g.currentBet {
			g.currentBet = player.roundBet
		}
		logAmount = wagered

	default:
		return newIllegalActionError("unknown action: %s", act)
	}

	g.logger.WithFields(logrus.Fields{
		"hand":   g.handNumber,
		"player": player.Name,
		"pot":    g.pot,
	}).Debug(act.LogMessage(logAmount))

	g.advanceTurn()
	g.checkRoundComplete()

	return nil
}

func (g *Game) validateRaise(p *Player, amount int) error {
	maxBet := p.chips + p.roundBet
	if amount > maxBet {
		return newIllegalActionError("raise to %d exceeds your total of %d", amount, maxBet)
	}

	if amount <= g.currentBet {
		return newIllegalActionError("raise must be greater than the current bet of %d", g.currentBet)
	}

	if amount < g.currentBet+g.minRaise {
		return newIllegalActionError("raise must be to at least %d", g.currentBet+g.minRaise)
	}

	return nil
}

// advanceTurn moves the turn pointer to the next player who can act,
// skipping folded, all-in, and out seats. If it cycles back to where it
// started, the round will be evaluated for completion.
func (g *Game) advanceTurn() {
	start := g.turnIndex

	for {
		g.turnIndex = (g.turnIndex + 1) % len(g.players)

		if g.turnIndex == start {
			break
		}

		if g.players[g.turnIndex].CanAct() {
			break
		}
	}
}

// checkRoundComplete evaluates the round completion rules:
// a hand with at most one live player ends immediately; otherwise the round
// completes when at most one active non-all-in player remains, or when every
// active player has matched the table bet and acted at least once.
func (g *Game) checkRoundComplete() {
	if len(g.playersInHand()) <= 1 {
		g.roundComplete = true
		g.phase = PhaseShowdown
		g.settle()
		return
	}

	active := make([]*Player, 0, len(g.players))
	for _, p := range g.players {
		if p.status == StatusActive {
			active = append(active, p)
		}
	}

	if len(active) <= 1 {
		g.roundComplete = true
		return
	}

	for _, p := range active {
		if p.roundBet != g.currentBet || p.lastAction == nil {
			return
		}
	}

	g.roundComplete = true
}

// IsRoundComplete returns true once the current betting round has finished
func (g *Game) IsRoundComplete() bool {
	return g.roundComplete
}

// AdvancePhase reveals the next batch of community cards and starts the next
// betting round. It is only valid once the current round is complete.
func (g *Game) AdvancePhase() error {
	if !g.roundComplete {
		return ErrRoundNotOver
	}

	switch g.phase {
	case PhasePreFlop:
		g.burnAndReveal(2)
		g.phase = PhaseFlopReveal
	case PhaseFlopReveal:
		g.burnAndReveal(1)
		g.phase = PhaseTurnReveal
	case PhaseTurnReveal:
		g.burnAndReveal(1)
		g.phase = PhaseRiverReveal
	case PhaseRiverReveal:
		g.phase = PhaseShowdown
		g.settle()
		return nil
	default:
		return fmt.Errorf("cannot advance phase from %s", g.phase)
	}

	g.startBettingRound()
	return nil
}

// burnAndReveal burns one card and reveals n community cards
func (g *Game) burnAndReveal(n int) {
	_ = g.drawCards(1)
	g.community = append(g.community, g.drawCards(n)...)
}

// IsHandOver returns true once the current hand has finished
func (g *Game) IsHandOver() bool {
	if len(g.playersInHand()) <= 1 {
		return true
	}

	if g.phase == PhaseShowdown || g.phase == PhaseEnded {
		return true
	}

	return g.phase == PhaseRiverReveal && g.roundComplete
}

// IsGameOver returns true once at most one player retains chips
func (g *Game) IsGameOver() bool {
	count := 0
	for _, p := range g.players {
		if p.chips > 0 {
			count++
		}
	}

	return count <= 1
}

// Eliminate marks every zero-chip player as out and returns them. Out
// players are removed from the roster on the next StartNewHand.
func (g *Game) Eliminate() []*Player {
	eliminated := make([]*Player, 0)
	for _, p := range g.players {
		if p.chips <= 0 && p.status != StatusOut {
			p.status = StatusOut
			eliminated = append(eliminated, p)

			g.logger.WithFields(logrus.Fields{
				"hand":   g.handNumber,
				"player": p.Name,
			}).Info("player eliminated")
		}
	}

	return eliminated
}

// AdvanceDealer moves the dealer button to the next seat
func (g *Game) AdvanceDealer() {
	g.dealerIndex = (g.dealerIndex + 1) % len(g.players)
}

// Players returns the current roster in seating order
func (g *Game) Players() []*Player {
	return g.players
}

// Community returns a copy of the shared cards revealed so far
func (g *Game) Community() deck.Hand {
	return g.community.Clone()
}

// Pot returns the current pot total
func (g *Game) Pot() int {
	return g.pot
}

// CurrentBet returns the highest bet of the current round
func (g *Game) CurrentBet() int {
	return g.currentBet
}

// MinRaise returns the minimum legal raise increment
func (g *Game) MinRaise() int {
	return g.minRaise
}

// Phase returns the current phase of the hand
func (g *Game) Phase() Phase {
	return g.phase
}

// HandNumber returns how many hands have been started
func (g *Game) HandNumber() int {
	return g.handNumber
}

// Results returns the settlement results of the last completed hand
func (g *Game) Results() []*HandResult {
	return g.results
}

// playersInHand returns the players who have not folded and are not out
func (g *Game) playersInHand() []*Player {
	players := make([]*Player, 0, len(g.players))
	for _, p := range g.players {
		if p.InHand() {
			players = append(players, p)
		}
	}

	return players
}

func containsAction(actions []action.Action, act action.Action) bool {
	for _, a := range actions {
		if a == act {
			return true
		}
	}

	return false
}

func min(a, b int) int {
	if a < b {
		return a
	}

	return b
}
