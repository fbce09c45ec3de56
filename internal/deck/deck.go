// Package deck holds the in-memory card deck driven by the console's card command
package deck

import (
	"math/rand"
	"sort"
	"strings"
	"sync"

	"github.com/stoker-console/stoker/i18n"
)

const (
	errUnknownCardKey   = "stoker.deck.unknown_card"
	errCardNotInDeckKey = "stoker.deck.card_not_in_deck"
	errEmptyCatalogKey  = "stoker.deck.empty_catalog"
	errInvalidPageKey   = "stoker.deck.invalid_page"
	errInvalidAmountKey = "stoker.deck.invalid_amount"
)

// MaxRandomCards caps a single AddRandom call
const MaxRandomCards = 100

func init() {
	err := i18n.Default().AddMessages(map[string]string{
		errUnknownCardKey:   "unknown card '%s'",
		errCardNotInDeckKey: "card '%s' is not in the deck",
		errEmptyCatalogKey:  "the card catalog is empty",
		errInvalidPageKey:   "page and page size must be positive, got %d and %d",
		errInvalidAmountKey: "amount must be between 1 and %d, got %d",
	})
	if err != nil {
		panic("failed to register deck messages: " + err.Error())
	}
}

var (
	ErrUnknownCard   = i18n.NewError(errUnknownCardKey)
	ErrCardNotInDeck = i18n.NewError(errCardNotInDeckKey)
	ErrEmptyCatalog  = i18n.NewError(errEmptyCatalogKey)
	ErrInvalidPage   = i18n.NewError(errInvalidPageKey)
	ErrInvalidAmount = i18n.NewError(errInvalidAmountKey)
)

// Deck is a list of cards drawn from a fixed catalog. It is safe for concurrent use.
type Deck struct {
	mu      sync.Mutex
	catalog []string
	cards   []string
	rng     *rand.Rand
}

// New returns an empty deck whose cards come from catalog. rng picks random cards; nil
// uses a generator seeded with 1.
func New(catalog []string, rng *rand.Rand) *Deck {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	c := append([]string(nil), catalog...)
	sort.Strings(c)

	return &Deck{catalog: c, rng: rng}
}

// Catalog returns the known card names, sorted
func (d *Deck) Catalog() []string {
	return append([]string(nil), d.catalog...)
}

// Cards returns the cards in the deck, in the order they were added
func (d *Deck) Cards() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]string(nil), d.cards...)
}

// Len returns the number of cards in the deck
func (d *Deck) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.cards)
}

// Add puts a card of the catalog into the deck and returns its catalog spelling
func (d *Deck) Add(name string) (string, error) {
	card, ok := d.lookup(name)
	if !ok {
		return "", ErrUnknownCard.WithArgs(name)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.cards = append(d.cards, card)

	return card, nil
}

// AddRandom adds amount random cards of the catalog and returns them. amount must be
// between 1 and MaxRandomCards.
func (d *Deck) AddRandom(amount int) ([]string, error) {
	if amount < 1 || amount > MaxRandomCards {
		return nil, ErrInvalidAmount.WithArgs(MaxRandomCards, amount)
	}
	if len(d.catalog) == 0 {
		return nil, ErrEmptyCatalog
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	added := make([]string, 0, amount)
	for i := 0; i < amount; i++ {
		card := d.catalog[d.rng.Intn(len(d.catalog))]
		d.cards = append(d.cards, card)
		added = append(added, card)
	}

	return added, nil
}

// Remove takes the most recently added copy of a card out of the deck
func (d *Deck) Remove(name string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := len(d.cards) - 1; i >= 0; i-- {
		if strings.EqualFold(d.cards[i], name) {
			card := d.cards[i]
			d.cards = append(d.cards[:i], d.cards[i+1:]...)
			return card, nil
		}
	}

	return "", ErrCardNotInDeck.WithArgs(name)
}

// Page returns the cards of the 1-based page. Pages past the end are empty.
func (d *Deck) Page(page, size int) ([]string, error) {
	if page < 1 || size < 1 {
		return nil, ErrInvalidPage.WithArgs(page, size)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	start := (page - 1) * size
	if start >= len(d.cards) {
		return []string{}, nil
	}
	end := start + size
	if end > len(d.cards) {
		end = len(d.cards)
	}

	return append([]string(nil), d.cards[start:end]...), nil
}

func (d *Deck) lookup(name string) (string, bool) {
	for _, c := range d.catalog {
		if strings.EqualFold(c, name) {
			return c, true
		}
	}

	return "", false
}
