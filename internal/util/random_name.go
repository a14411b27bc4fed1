package util

import (
	"fmt"
	"math/rand"
	"time"
)

var adjectives = []string{
	"Lucky", "Grumpy", "Steely", "Silent", "Sly", "Bold", "Patient", "Wily", "Stone-Faced", "Jolly",
	"Cunning", "Reckless", "Quiet", "Grand", "Crafty", "Nervous",
}

var dealers = []string{
	"Shark", "Fox", "Dealer", "Croupier", "Gambler", "Cardsharp", "Hustler", "Banker", "Owl", "Bear",
	"Riverboat Captain", "Bluffer",
}

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec

// GetRandomName returns a random name for the house by combining an adjective with a dealer
func GetRandomName() string {
	adjectivesIndex := random.Intn(len(adjectives))
	dealersIndex := random.Intn(len(dealers))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], dealers[dealersIndex])
}
