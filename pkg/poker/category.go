package poker

import "fmt"

// Category is a poker hand category, i.e., royal flush
type Category int

// Constants for category
// BulkContainer and Unclassified are bookkeeping markers, not gameplay hands
const (
	BulkContainer Category = iota - 1
	Unclassified
	HighCard
	Pair
	TwoPair
	ThreeKind
	Straight
	Flush
	FullHouse
	FourKind
	StraightFlush
	RoyalFlush
)

// Categories lists the gameplay categories from weakest to strongest
var Categories = []Category{
	HighCard,
	Pair,
	TwoPair,
	ThreeKind,
	Straight,
	Flush,
	FullHouse,
	FourKind,
	StraightFlush,
	RoyalFlush,
}

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case BulkContainer:
		return "Deck"
	case Unclassified:
		return "Unclassified"
	case HighCard:
		return "High card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	case RoyalFlush:
		return "Royal flush"
	default:
		panic(fmt.Sprintf("unknown category: %d", c))
	}
}

// IsGameplay returns true for the ten hands that can win a showdown
func (c Category) IsGameplay() bool {
	return c >= HighCard && c <= RoyalFlush
}

// Strength is the primary comparison key between hands.
// The markers share the lowest strength.
func (c Category) Strength() int {
	switch c {
	case RoyalFlush:
		return 10
	case StraightFlush:
		return 9
	case FourKind:
		return 8
	case FullHouse:
		return 7
	case Flush:
		return 6
	case Straight:
		return 5
	case ThreeKind:
		return 4
	case TwoPair:
		return 3
	case Pair:
		return 2
	case HighCard:
		return 1
	case Unclassified, BulkContainer:
		return 0
	default:
		panic(fmt.Sprintf("unknown category: %d", c))
	}
}

// MarshalText encodes the category as its label
func (c Category) MarshalText() ([]byte, error) {
	if c < BulkContainer || c > RoyalFlush {
		return nil, fmt.Errorf("unknown category: %d", c)
	}

	return []byte(c.String()), nil
}

// UnmarshalText decodes a label produced by MarshalText
func (c *Category) UnmarshalText(text []byte) error {
	for cat := BulkContainer; cat <= RoyalFlush; cat++ {
		if cat.String() == string(text) {
			*c = cat
			return nil
		}
	}

	return fmt.Errorf("unknown category: %q", string(text))
}
