package poker

import (
	"errors"
	"fivecarddraw/pkg/deck"
	"sort"
	"strings"
)

// ErrHandFull is an error when a card is drawn into a hand that is at capacity
var ErrHandFull = errors.New("hand is full")

// ErrInvalidIndex is an error when a discard names a position the hand does not have
var ErrInvalidIndex = errors.New("invalid card index")

// Hand is a capacity-bound container of cards.
// A five-card hand classifies itself once it holds five cards and caches the
// result until a card is removed.
// Hand is not safe for concurrent use.
type Hand struct {
	cards    deck.Hand
	capacity int
	category Category
	sorted   ClassifiedHand
}

// NewHand returns an empty five-card hand
func NewHand() *Hand {
	return NewContainer(HandSize)
}

// NewContainer returns an empty container holding up to capacity cards.
// Containers of any size other than a poker hand are never classified.
func NewContainer(capacity int) *Hand {
	h := &Hand{
		cards:    make(deck.Hand, 0, capacity),
		capacity: capacity,
		category: Unclassified,
	}

	if capacity != HandSize {
		h.category = BulkContainer
	}

	return h
}

// NewHandFromCards returns a full five-card hand built from cards
func NewHandFromCards(cards []deck.Card) (*Hand, error) {
	h := NewHand()
	for _, card := range cards {
		if err := h.Draw(card); err != nil {
			return nil, err
		}
	}

	return h, nil
}

// Draw adds a card to the hand
func (h *Hand) Draw(card deck.Card) error {
	if len(h.cards) >= h.capacity {
		return ErrHandFull
	}

	h.cards.AddCard(card)
	if h.category != BulkContainer && len(h.cards) == HandSize {
		h.classify()
	}

	return nil
}

// DealFrom moves the top card of the deck into the hand
func (h *Hand) DealFrom(d *deck.Deck) error {
	if h.IsFull() {
		return ErrHandFull
	}

	card, err := d.Draw()
	if err != nil {
		return err
	}

	return h.Draw(card)
}

// Discard removes the card at index.
// Returns false if there is no card at that position.
func (h *Hand) Discard(index int) (deck.Card, bool) {
	if index < 0 || index >= len(h.cards) {
		return deck.Card{}, false
	}

	card := h.cards[index]
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	h.invalidate()

	return card, true
}

// GroupDiscard removes every card at the given positions.
// The hand is left untouched if any index is out of range or repeated.
func (h *Hand) GroupDiscard(indexes []int) ([]deck.Card, error) {
	sorted := make([]int, len(indexes))
	copy(sorted, indexes)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	for i, index := range sorted {
		if index < 0 || index >= len(h.cards) {
			return nil, ErrInvalidIndex
		}

		if i > 0 && sorted[i-1] == index {
			return nil, ErrInvalidIndex
		}
	}

	// remove from the highest index down so earlier positions stay put
	discards := make([]deck.Card, 0, len(sorted))
	for _, index := range sorted {
		card, _ := h.Discard(index)
		discards = append(discards, card)
	}

	return discards, nil
}

// Peek returns the first card without removing it
func (h *Hand) Peek() (deck.Card, bool) {
	if len(h.cards) == 0 {
		return deck.Card{}, false
	}

	return h.cards[0], true
}

// Cards returns a copy of the cards in the hand
func (h *Hand) Cards() deck.Hand {
	return h.cards.Clone()
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// Capacity returns the maximum number of cards the hand holds
func (h *Hand) Capacity() int {
	return h.capacity
}

// IsFull returns true if the hand is at capacity
func (h *Hand) IsFull() bool {
	return len(h.cards) >= h.capacity
}

// Category returns the cached category
func (h *Hand) Category() Category {
	return h.category
}

// Classified returns the classified hand, if the hand has been classified
func (h *Hand) Classified() (ClassifiedHand, bool) {
	if !h.category.IsGameplay() {
		return ClassifiedHand{}, false
	}

	return h.sorted, true
}

// Compare orders this hand against other.
// Unclassified hands and containers compare equal to each other and lose to any gameplay hand.
func (h *Hand) Compare(other *Hand) Ordering {
	a, _ := h.Classified()
	b, _ := other.Classified()
	a.Category = h.category
	b.Category = other.category

	return Compare(a, b)
}

func (h *Hand) String() string {
	s := make([]string, len(h.cards))
	for i, c := range h.cards {
		s[i] = c.String()
	}

	return strings.Join(s, " , ")
}

func (h *Hand) classify() {
	h.sorted = Classify(h.cards)
	h.category = h.sorted.Category
	copy(h.cards, h.sorted.Cards[:])
}

func (h *Hand) invalidate() {
	if h.category == BulkContainer {
		return
	}

	h.category = Unclassified
	h.sorted = ClassifiedHand{}
}
