package deck

import (
	"sort"
	"strings"
)

// Hand represents a collection of cards
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card *Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// Clone returns a shallow copy of the hand
func (h Hand) Clone() Hand {
	cards := make(Hand, len(h))
	copy(cards, h)
	return cards
}

// Sort orders the hand by descending rank, breaking rank ties by the fixed suit order
func (h Hand) Sort() {
	sort.Slice(h, func(i, j int) bool {
		return h[i].Compare(h[j]) > 0
	})
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Display returns a human-readable representation like "A♠ K♡"
func (h Hand) Display() string {
	cards := make([]string, len(h))
	for i, c := range h {
		cards[i] = c.String()
	}

	return strings.Join(cards, " ")
}
