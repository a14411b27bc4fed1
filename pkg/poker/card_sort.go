package poker

import (
	"fivecarddraw/pkg/deck"
	"sort"
)

type sortByRank []deck.Card

func (s sortByRank) Len() int {
	return len(s)
}

func (s sortByRank) Less(i, j int) bool {
	return s[i].Less(s[j])
}

func (s sortByRank) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// sortDescending sorts the cards in place, highest rank first
func sortDescending(cards []deck.Card) {
	sort.Stable(sort.Reverse(sortByRank(cards)))
}
