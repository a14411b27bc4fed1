package poker

import (
	"fivecarddraw/pkg/deck"
	"fmt"
)

// HandSize is the number of cards in a poker hand
const HandSize = 5

// ClassifiedHand is five cards, sorted descending by rank, tagged with their category
type ClassifiedHand struct {
	Cards    [HandSize]deck.Card
	Category Category
}

// Classify sorts the cards and determines the category of the hand.
// Exactly five cards are required. Anything else is a programming error and panics.
func Classify(cards []deck.Card) ClassifiedHand {
	if len(cards) != HandSize {
		panic(fmt.Sprintf("classify requires %d cards, got %d", HandSize, len(cards)))
	}

	var ch ClassifiedHand
	copy(ch.Cards[:], cards)
	sortDescending(ch.Cards[:])

	sorted := ch.Cards[:]
	flush := isFlush(sorted)
	straight := isStraight(sorted)

	switch {
	case flush && straight:
		if sorted[0].Rank == deck.Ace && !isWheel(sorted) {
			ch.Category = RoyalFlush
		} else {
			ch.Category = StraightFlush
		}
	case flush:
		ch.Category = Flush
	case straight:
		ch.Category = Straight
	default:
		ch.Category = checkPairs(sorted)
	}

	return ch
}

// Reclassify runs the classification again over the hand's cards
func Reclassify(h ClassifiedHand) ClassifiedHand {
	return Classify(h.Cards[:])
}

// Hand returns a copy of the sorted cards
func (h ClassifiedHand) Hand() deck.Hand {
	cards := make(deck.Hand, HandSize)
	copy(cards, h.Cards[:])
	return cards
}

// IsWheel returns true if the hand is the A-2-3-4-5 straight (or straight flush)
func (h ClassifiedHand) IsWheel() bool {
	return (h.Category == Straight || h.Category == StraightFlush) && isWheel(h.Cards[:])
}

func (h ClassifiedHand) String() string {
	return fmt.Sprintf("%s: %s", h.Category, h.Hand().Display())
}

// isFlush checks if all cards share the suit of the first card
func isFlush(cards []deck.Card) bool {
	for _, c := range cards[1:] {
		if !c.SameSuit(cards[0]) {
			return false
		}
	}

	return true
}

// isWheel only checks the leading ace-five gap, isStraight covers the rest
func isWheel(cards []deck.Card) bool {
	return cards[0].Rank == deck.Ace && cards[1].Rank == deck.Five
}

// isStraight expects cards sorted descending.
// Every neighbour must be exactly one rank apart. The single exception is an
// ace followed by a five, where the ace plays low and only five-to-two is checked.
func isStraight(cards []deck.Card) bool {
	start := 0
	if isWheel(cards) {
		start = 1
	}

	for i := start; i < len(cards)-1; i++ {
		if cards[i].Rank-cards[i+1].Rank != 1 {
			return false
		}
	}

	return true
}

// checkPairs groups the cards by rank.
// The counts are built fresh on every call; the scan walks the sorted cards so
// the result never depends on map iteration order.
func checkPairs(cards []deck.Card) Category {
	counts := make(map[deck.Rank]int, len(cards))
	for _, c := range cards {
		counts[c.Rank]++
	}

	for _, c := range cards {
		n := counts[c.Rank]
		if n == 4 {
			return FourKind
		}

		if n != 3 && n != 2 {
			continue
		}

		for rank, other := range counts {
			if rank == c.Rank {
				continue
			}

			if other == 3 {
				return FullHouse
			}

			if other == 2 {
				if n == 2 {
					return TwoPair
				}

				return FullHouse
			}
		}

		if n == 3 {
			return ThreeKind
		}

		return Pair
	}

	return HighCard
}
