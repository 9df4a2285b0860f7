package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_AddCard(t *testing.T) {
	a := assert.New(t)

	hand := make(Hand, 0)
	hand.AddCard(CardFromString("2c"))
	hand.AddCard(CardFromString("14s"))

	a.Equal(2, len(hand))
	a.Equal("2c,14s", hand.String())
}

func TestHand_HasCard(t *testing.T) {
	a := assert.New(t)

	hand := Hand(CardsFromString("2c,3h,14s"))
	a.True(hand.HasCard(CardFromString("3h")))
	a.False(hand.HasCard(CardFromString("3s")))
}

func TestHand_Sort(t *testing.T) {
	a := assert.New(t)

	hand := Hand(CardsFromString("3h,14s,3s,13d"))
	hand.Sort()

	a.Equal("14s,13d,3s,3h", hand.String())
}

func TestHand_Display(t *testing.T) {
	hand := Hand(CardsFromString("14s,13h"))
	assert.Equal(t, "A♠ K♡", hand.Display())
}

func TestHand_Clone(t *testing.T) {
	a := assert.New(t)

	hand := Hand(CardsFromString("2c,3h"))
	clone := hand.Clone()
	clone.AddCard(CardFromString("4d"))

	a.Equal(2, len(hand))
	a.Equal(3, len(clone))
}
