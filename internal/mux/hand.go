package mux

import (
	"errors"
	"fmt"
	"net/http"

	"fivecarddraw/pkg/deck"
	"fivecarddraw/pkg/poker"
)

var errDuplicateCard = errors.New("hand contains a duplicate card")

type handRequest struct {
	Cards string `json:"cards"`
}

type handResponse struct {
	Cards    string         `json:"cards"`
	Category poker.Category `json:"category"`
}

type compareRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

type compareResponse struct {
	A      handResponse   `json:"a"`
	B      handResponse   `json:"b"`
	Result poker.Ordering `json:"result"`
}

func newHandResponse(h poker.ClassifiedHand) handResponse {
	return handResponse{
		Cards:    deck.CardsToString(h.Cards[:]),
		Category: h.Category,
	}
}

// parseHand parses and classifies a comma separated list of exactly five cards
func parseHand(s string) (poker.ClassifiedHand, error) {
	cards, err := deck.ParseCards(s)
	if err != nil {
		return poker.ClassifiedHand{}, err
	}

	if len(cards) != poker.HandSize {
		return poker.ClassifiedHand{}, fmt.Errorf("expected %d cards, got %d", poker.HandSize, len(cards))
	}

	seen := make(deck.Hand, 0, poker.HandSize)
	for _, card := range cards {
		if seen.HasCard(card) {
			return poker.ClassifiedHand{}, errDuplicateCard
		}

		seen.AddCard(card)
	}

	return poker.Classify(cards), nil
}

func (m *Mux) postHandClassify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req handRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		hand, err := parseHand(req.Cards)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		m.metrics.classified.WithLabelValues(hand.Category.String()).Inc()
		writeJSON(w, http.StatusOK, newHandResponse(hand))
	}
}

func (m *Mux) postHandCompare() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req compareRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		a, err := parseHand(req.A)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("hand a: %w", err))
			return
		}

		b, err := parseHand(req.B)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("hand b: %w", err))
			return
		}

		result := poker.Compare(a, b)
		m.metrics.comparisons.WithLabelValues(result.String()).Inc()
		writeJSON(w, http.StatusOK, compareResponse{
			A:      newHandResponse(a),
			B:      newHandResponse(b),
			Result: result,
		})
	}
}
