package poker

import (
	"fivecarddraw/pkg/deck"
	"fmt"
)

// Compare orders two classified hands.
// The category decides first; hands of the same category fall through to the
// category's tie-break rules.
func Compare(a, b ClassifiedHand) Ordering {
	if o := compareRanks(a.Category.Strength(), b.Category.Strength()); o != Equal {
		return o
	}

	// unclassified hands and decks have no strength to break
	if !a.Category.IsGameplay() || !b.Category.IsGameplay() {
		return Equal
	}

	return compareTieBreak(a, b)
}

// compareTieBreak requires both hands to share a gameplay category.
// Cards are already sorted descending, so each rule reads fixed positions:
//
//	0 0 0 x x    x x 0 0 0    three of a kind always covers index 2
//	0 0 0 0 x    x 0 0 0 0    four of a kind always covers index 2
func compareTieBreak(a, b ClassifiedHand) Ordering {
	if a.Category != b.Category {
		panic(fmt.Sprintf("cannot break a tie between %s and %s", a.Category, b.Category))
	}

	x, y := a.Cards, b.Cards

	switch a.Category {
	case RoyalFlush:
		return Equal

	case StraightFlush, Straight:
		// top card only; the ace leads a wheel too
		return compareCards(x[0], y[0])

	case FourKind, ThreeKind:
		return compareCards(x[2], y[2])

	case FullHouse:
		xTrips, xPair := fullHouseParts(x)
		yTrips, yPair := fullHouseParts(y)
		if o := compareCards(xTrips, yTrips); o != Equal {
			return o
		}

		return compareCards(xPair, yPair)

	case Flush, HighCard:
		return compareKickers(x[:], y[:])

	case TwoPair:
		xHigh, xLow, xKicker := twoPairParts(x)
		yHigh, yLow, yKicker := twoPairParts(y)
		if o := compareCards(xHigh, yHigh); o != Equal {
			return o
		}

		if o := compareCards(xLow, yLow); o != Equal {
			return o
		}

		return compareCards(xKicker, yKicker)

	case Pair:
		// only the pair is compared; kickers are ignored
		return compareCards(pairCard(x), pairCard(y))

	case Unclassified, BulkContainer:
		panic(fmt.Sprintf("cannot break a tie for %s", a.Category))

	default:
		panic(fmt.Sprintf("unknown category: %d", a.Category))
	}
}

func compareCards(a, b deck.Card) Ordering {
	return orderingOf(a.Compare(b))
}

// compareKickers walks both hands from the highest card down until one differs
func compareKickers(a, b []deck.Card) Ordering {
	for i := range a {
		if o := compareCards(a[i], b[i]); o != Equal {
			return o
		}
	}

	return Equal
}

// fullHouseParts returns a card from the triple and a card from the pair
//
//	T T T P P  or  P P T T T
func fullHouseParts(cards [HandSize]deck.Card) (trips, pair deck.Card) {
	if cards[0].Rank == cards[2].Rank {
		return cards[0], cards[3]
	}

	return cards[2], cards[0]
}

// twoPairParts splits a two pair hand into its three sortable shapes
//
//	H H L L K
//	H H K L L
//	K H H L L
func twoPairParts(cards [HandSize]deck.Card) (high, low, kicker deck.Card) {
	if cards[0].Rank == cards[1].Rank {
		if cards[3].Rank == cards[4].Rank {
			return cards[0], cards[3], cards[2]
		}

		return cards[0], cards[2], cards[4]
	}

	return cards[1], cards[3], cards[0]
}

// pairCard returns the first card of the adjacent pair
func pairCard(cards [HandSize]deck.Card) deck.Card {
	for i := 0; i < len(cards)-1; i++ {
		if cards[i].Rank == cards[i+1].Rank {
			return cards[i]
		}
	}

	panic("pair hand without a pair: " + deck.CardsToString(cards[:]))
}
