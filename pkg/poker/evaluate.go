package poker

import (
	"fmt"
	"sort"

	"fourcardpoker/pkg/deck"
)

// Evaluate returns the strongest five-card hand that can be made from two
// hole cards and four community cards. It is pure and deterministic.
// Calling it with the wrong number of cards is a contract violation and panics.
func Evaluate(hole, community deck.Hand) *Evaluation {
	if len(hole) != 2 {
		panic(fmt.Sprintf("expected 2 hole cards, got %d", len(hole)))
	}

	if len(community) != 4 {
		panic(fmt.Sprintf("expected 4 community cards, got %d", len(community)))
	}

	all := make(deck.Hand, 0, 6)
	all = append(all, hole...)
	all = append(all, community...)

	var best *Evaluation
	bestScore := -1

	// all C(6,5) subsets, i.e., leave out one card at a time
	for skip := 0; skip < len(all); skip++ {
		five := make(deck.Hand, 0, 5)
		for i, card := range all {
			if i != skip {
				five = append(five, card)
			}
		}

		ev := evaluateFive(five)
		score := ev.Score()

		// the kicker cap can flatten distinct fives to the same score;
		// break those ties toward the higher-ranked cards so the
		// substantiating hand is canonical
		if score > bestScore || (score == bestScore && ranksBeat(ev.Cards, best.Cards)) {
			best = ev
			bestScore = score
		}
	}

	return best
}

// evaluateFive classifies exactly five cards, checking categories from
// strongest to weakest and returning on the first match
func evaluateFive(cards deck.Hand) *Evaluation {
	cards.Sort()

	flush := isFlush(cards)
	high, straight := straightHigh(cards)

	if flush && straight {
		if high == deck.Ace {
			return &Evaluation{Category: RoyalFlush, Cards: cards, Value: 10_000}
		}

		return &Evaluation{Category: StraightFlush, Cards: cards, Value: 500 + high, Kickers: []int{high}}
	}

	groups := groupByRank(cards)

	if len(groups[4]) > 0 {
		quad := groups[4][0]
		return &Evaluation{
			Category: FourOfAKind,
			Cards:    cards,
			Value:    400 + quad,
			Kickers:  []int{quad, groups[1][0]},
		}
	}

	if len(groups[3]) > 0 && len(groups[2]) > 0 {
		trips := groups[3][0]
		pair := groups[2][0]
		return &Evaluation{
			Category: FullHouse,
			Cards:    cards,
			Value:    300 + trips,
			Kickers:  []int{trips, pair},
		}
	}

	if flush {
		ranks := ranksOf(cards)
		return &Evaluation{Category: Flush, Cards: cards, Value: 200 + ranks[0], Kickers: ranks}
	}

	if straight {
		return &Evaluation{Category: Straight, Cards: cards, Value: 100 + high, Kickers: []int{high}}
	}

	if len(groups[3]) > 0 {
		trips := groups[3][0]
		return &Evaluation{
			Category: ThreeOfAKind,
			Cards:    cards,
			Value:    90 + trips,
			Kickers:  append([]int{trips}, groups[1]...),
		}
	}

	if len(groups[2]) >= 2 {
		return &Evaluation{
			Category: TwoPair,
			Cards:    cards,
			Value:    80 + groups[2][0],
			Kickers:  []int{groups[2][0], groups[2][1], groups[1][0]},
		}
	}

	if len(groups[2]) == 1 {
		pair := groups[2][0]
		return &Evaluation{
			Category: OnePair,
			Cards:    cards,
			Value:    70 + pair,
			Kickers:  append([]int{pair}, groups[1]...),
		}
	}

	ranks := ranksOf(cards)
	return &Evaluation{Category: HighCard, Cards: cards, Value: 60 + ranks[0], Kickers: ranks}
}

func isFlush(cards deck.Hand) bool {
	for _, card := range cards[1:] {
		if card.Suit != cards[0].Suit {
			return false
		}
	}

	return true
}

// straightHigh returns the high rank of a straight made by the five cards.
// The wheel (A-2-3-4-5) counts as a five-high straight.
// Cards must already be sorted by descending rank.
func straightHigh(cards deck.Hand) (int, bool) {
	ranks := ranksOf(cards)

	// an ace that cannot continue a broadway run plays low
	if ranks[0] == deck.Ace && ranks[1] != deck.King {
		for i, card := range cards {
			ranks[i] = card.AceLowRank()
		}

		sort.Sort(sort.Reverse(sort.IntSlice(ranks)))
	}

	for i := 1; i < len(ranks); i++ {
		if ranks[i] != ranks[i-1]-1 {
			return 0, false
		}
	}

	return ranks[0], true
}

// groupByRank buckets the ranks by how many times they appear. The result is
// keyed by count (1, 2, 3, or 4) and each bucket is sorted descending.
func groupByRank(cards deck.Hand) map[int][]int {
	counts := make(map[int]int)
	for _, card := range cards {
		counts[card.Rank]++
	}

	groups := make(map[int][]int)
	for rank, count := range counts {
		groups[count] = append(groups[count], rank)
	}

	for _, ranks := range groups {
		sort.Sort(sort.Reverse(sort.IntSlice(ranks)))
	}

	return groups
}

// ranksOf returns the ranks in hand order (descending when sorted)
func ranksOf(cards deck.Hand) []int {
	ranks := make([]int, len(cards))
	for i, card := range cards {
		ranks[i] = card.Rank
	}

	return ranks
}

// ranksBeat returns true if a's descending rank sequence beats b's
func ranksBeat(a, b deck.Hand) bool {
	for i := range a {
		if a[i].Rank != b[i].Rank {
			return a[i].Rank > b[i].Rank
		}
	}

	return false
}
