package poker

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "Royal flush", RoyalFlush.String())
	assert.Equal(t, "Three of a kind", ThreeKind.String())
	assert.Equal(t, "Unclassified", Unclassified.String())
	assert.Equal(t, "Deck", BulkContainer.String())

	assert.PanicsWithValue(t, "unknown category: 99", func() {
		_ = Category(99).String()
	})
}

func TestCategory_Strength(t *testing.T) {
	a := assert.New(t)

	// strictly increasing, so the order is total and transitive
	prev := Unclassified.Strength()
	for _, c := range Categories {
		a.True(c.IsGameplay(), c.String())
		a.Greater(c.Strength(), prev, c.String())
		prev = c.Strength()
	}

	a.Equal(10, RoyalFlush.Strength())
	a.Equal(1, HighCard.Strength())
	a.Equal(Unclassified.Strength(), BulkContainer.Strength())
	a.False(Unclassified.IsGameplay())
	a.False(BulkContainer.IsGameplay())
}

func TestCategory_json(t *testing.T) {
	b, err := json.Marshal(map[string]Category{"category": FullHouse})
	assert.NoError(t, err)
	assert.Equal(t, `{"category":"Full house"}`, string(b))

	var c Category
	assert.NoError(t, c.UnmarshalText([]byte("Two pair")))
	assert.Equal(t, TwoPair, c)

	assert.EqualError(t, c.UnmarshalText([]byte("Five of a kind")), `unknown category: "Five of a kind"`)

	_, err = Category(42).MarshalText()
	assert.EqualError(t, err, "unknown category: 42")
}

func TestOrdering(t *testing.T) {
	assert.Equal(t, "greater", Greater.String())
	assert.Equal(t, "equal", Equal.String())
	assert.Equal(t, "less", Less.String())
	assert.Equal(t, Less, Greater.Reverse())
	assert.Equal(t, Equal, Equal.Reverse())

	b, err := json.Marshal(Greater)
	assert.NoError(t, err)
	assert.Equal(t, `"greater"`, string(b))
}
