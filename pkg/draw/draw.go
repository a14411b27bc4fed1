package draw

import (
	"errors"
	"fivecarddraw/pkg/deck"
	"fivecarddraw/pkg/poker"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrAlreadySwapped is returned when the player tries to swap a second time
var ErrAlreadySwapped = errors.New("cards have already been swapped")

// ErrNotDealt is returned when the game is played before the cards are dealt
var ErrNotDealt = errors.New("cards have not been dealt")

// ErrAlreadyDealt is returned when Deal() is called twice
var ErrAlreadyDealt = errors.New("cards have already been dealt")

// Game is a single round of five-card draw between a player and the house
type Game struct {
	ID      uuid.UUID
	options Options
	deck    *deck.Deck
	player  *poker.Hand
	house   *poker.Hand
	muck    *poker.Hand
	dealt   bool
	swapped bool
	logger  logrus.FieldLogger
}

// Options configures a round of five-card draw
type Options struct {
	// Seed shuffles the deck deterministically. Zero uses a crypto generator.
	Seed int64

	// MaxSwap is the most cards the player may exchange
	MaxSwap int
}

// DefaultOptions returns the default options for five-card draw
func DefaultOptions() Options {
	return Options{
		MaxSwap: poker.HandSize,
	}
}

// NewGame returns a new game with a freshly shuffled deck
func NewGame(logger logrus.FieldLogger, opts Options) (*Game, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	d := deck.New()
	if opts.Seed > 0 {
		d.SetSeed(opts.Seed)
	}
	d.Shuffle()

	id := uuid.New()
	return &Game{
		ID:      id,
		options: opts,
		deck:    d,
		player:  poker.NewHand(),
		house:   poker.NewHand(),
		muck:    poker.NewContainer(deck.Size),
		logger:  logger.WithField("game", id.String()),
	}, nil
}

func validateOptions(opts Options) error {
	if opts.Seed < 0 {
		return errors.New("seed cannot be less than zero")
	}

	if opts.MaxSwap < 0 || opts.MaxSwap > poker.HandSize {
		return fmt.Errorf("max swap must be between 0 and %d", poker.HandSize)
	}

	return nil
}

// Deal gives five cards to the player, then five to the house
func (g *Game) Deal() error {
	if g.dealt {
		return ErrAlreadyDealt
	}

	for _, h := range []*poker.Hand{g.player, g.house} {
		for !h.IsFull() {
			if err := h.DealFrom(g.deck); err != nil {
				return fmt.Errorf("could not deal: %w", err)
			}
		}
	}

	g.dealt = true
	g.logger.WithFields(logrus.Fields{
		"player":    g.player.Cards().String(),
		"cardsLeft": g.deck.CardsLeft(),
	}).Debug("dealt")

	return nil
}

// Swap discards the cards at the given player positions and redraws the same number
func (g *Game) Swap(indexes []int) error {
	if !g.dealt {
		return ErrNotDealt
	}

	if g.swapped {
		return ErrAlreadySwapped
	}

	if len(indexes) > g.options.MaxSwap {
		return fmt.Errorf("you may swap at most %d cards", g.options.MaxSwap)
	}

	if !g.deck.CanDraw(len(indexes)) {
		return fmt.Errorf("could not redraw: %w", deck.ErrEndOfDeck)
	}

	discards, err := g.player.GroupDiscard(indexes)
	if err != nil {
		return err
	}

	for _, card := range discards {
		if err := g.muck.Draw(card); err != nil {
			return fmt.Errorf("could not muck %s: %w", card, err)
		}

		if err := g.player.DealFrom(g.deck); err != nil {
			return fmt.Errorf("could not redraw: %w", err)
		}
	}

	g.swapped = true
	g.logger.WithFields(logrus.Fields{
		"discards": deck.CardsToString(discards),
		"player":   g.player.Cards().String(),
	}).Debug("swapped")

	return nil
}

// Player returns the player's hand
func (g *Game) Player() *poker.Hand {
	return g.player
}

// House returns the house's hand
func (g *Game) House() *poker.Hand {
	return g.house
}

// Muck returns the pile of discarded cards
func (g *Game) Muck() *poker.Hand {
	return g.muck
}

// CardsLeft returns the number of cards left in the deck
func (g *Game) CardsLeft() int {
	return g.deck.CardsLeft()
}

// Result is the outcome of a showdown
type Result struct {
	Player  poker.ClassifiedHand `json:"player"`
	House   poker.ClassifiedHand `json:"house"`
	Outcome poker.Ordering       `json:"outcome"`
}

// Message describes the outcome for the player
func (r *Result) Message() string {
	switch r.Outcome {
	case poker.Greater:
		return "You win"
	case poker.Less:
		return "House wins..."
	default:
		return "Draw..."
	}
}

// Showdown compares the player's hand against the house
func (g *Game) Showdown() (*Result, error) {
	player, ok := g.player.Classified()
	if !ok {
		return nil, ErrNotDealt
	}

	house, ok := g.house.Classified()
	if !ok {
		return nil, ErrNotDealt
	}

	result := &Result{
		Player:  player,
		House:   house,
		Outcome: poker.Compare(player, house),
	}

	g.logger.WithFields(logrus.Fields{
		"player":  player.Category.String(),
		"house":   house.Category.String(),
		"outcome": result.Outcome.String(),
	}).Info("showdown")

	return result, nil
}

// ParseIndexes parses a space separated list of card positions, i.e., "0 2 4"
func ParseIndexes(input string) ([]int, error) {
	fields := strings.Fields(input)
	indexes := make([]int, len(fields))
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid card position %q", field)
		}

		indexes[i] = n
	}

	return indexes, nil
}
