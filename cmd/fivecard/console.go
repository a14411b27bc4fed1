package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"fivecarddraw/pkg/deck"
	"fivecarddraw/pkg/draw"

	"github.com/fatih/color"
)

var red = color.New(color.FgRed).SprintFunc()

type console struct {
	in    *bufio.Reader
	out   io.Writer
	house string
}

// play runs one round: deal, an optional swap, then the showdown
func (c *console) play(g *draw.Game) error {
	if err := g.Deal(); err != nil {
		return err
	}

	if err := c.offerSwap(g); err != nil {
		return err
	}

	result, err := g.Showdown()
	if err != nil {
		return err
	}

	c.printf("You have %s (%s).\n", showHand(g.Player().Cards()), result.Player.Category)
	c.printf("%s has %s (%s).\n", c.house, showHand(g.House().Cards()), result.House.Category)
	c.printf("%s\n", result.Message())
	return nil
}

func (c *console) offerSwap(g *draw.Game) error {
	for {
		c.printf("Your hand is: %s\n", showPositions(g.Player().Cards()))
		answer, err := c.readLine("Do you want to swap out any cards? (y/n)")
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		switch strings.ToUpper(answer) {
		case "Y":
			return c.swap(g)
		case "N":
			return nil
		}
	}
}

func (c *console) swap(g *draw.Game) error {
	for {
		line, err := c.readLine("Enter the positions of the cards you want to remove, separated with spaces")
		if errors.Is(err, io.EOF) {
			return g.Swap(nil)
		} else if err != nil {
			return err
		}

		indexes, err := draw.ParseIndexes(line)
		if err == nil {
			err = g.Swap(indexes)
		}

		if err == nil {
			return nil
		}

		c.printf("%s\n", red(err.Error()))
	}
}

// readLine returns the trimmed answer to the question
// io.EOF is only returned when nothing was read
func (c *console) readLine(question string) (string, error) {
	c.printf("%s\n", question)
	str, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && str != "") {
		return strings.TrimSpace(str), err
	}

	return strings.TrimSpace(str), nil
}

func (c *console) printf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}

func showCard(card deck.Card) string {
	if card.Suit.IsRed() {
		return red(card.String())
	}

	return card.String()
}

func showHand(cards deck.Hand) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = showCard(card)
	}

	return strings.Join(parts, " ")
}

func showPositions(cards deck.Hand) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = fmt.Sprintf("[%d] %s", i, showCard(card))
	}

	return strings.Join(parts, "  ")
}
