package outfit

import (
	"math/rand/v2"
	"sync"

	"github.com/lehigh-university-libraries/wardrobe/internal/wardrobe"
)

// Outfit holds exactly one item for every category
type Outfit map[wardrobe.Category]wardrobe.ClothingItem

// Selection is one category's pick, used when order matters
type Selection struct {
	Category wardrobe.Category    `json:"category"`
	Item     wardrobe.ClothingItem `json:"item"`
}

// Items returns the picks in category scan order
func (o Outfit) Items() []Selection {
	out := make([]Selection, 0, len(o))
	for _, c := range wardrobe.Categories {
		if item, ok := o[c]; ok {
			out = append(out, Selection{Category: c, Item: item})
		}
	}
	return out
}

// Selector picks outfits from a library. It is safe for concurrent use.
type Selector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector returns a selector seeded from the runtime
func NewSelector() *Selector {
	return &Selector{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSelectorWithRand uses the given source, for reproducible picks in tests
func NewSelectorWithRand(rng *rand.Rand) *Selector {
	return &Selector{rng: rng}
}

// Generate picks one item uniformly at random per category. Categories are
// scanned in order and the first empty one fails the whole selection.
func (s *Selector) Generate(lib wardrobe.Library) (Outfit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	picked := make(Outfit, len(wardrobe.Categories))
	for _, c := range wardrobe.Categories {
		items := lib[c]
		if len(items) == 0 {
			return nil, &wardrobe.SelectionError{Category: c}
		}
		picked[c] = items[s.rng.IntN(len(items))]
	}
	return picked, nil
}

// Generate is a convenience for one-off selections
func Generate(lib wardrobe.Library) (Outfit, error) {
	return NewSelector().Generate(lib)
}
