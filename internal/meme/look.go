package meme

import (
	"math/rand"
	"strings"
)

// Look is the current meme: at most one trait per category plus two
// optional captions.
type Look struct {
	traits map[Category]Trait

	Top    string
	Bottom string
}

// NewLook returns an empty look.
func NewLook() *Look {
	return &Look{traits: make(map[Category]Trait)}
}

// Toggle equips t in its category, replacing whatever was there. Toggling
// the trait that is already equipped takes it off. It reports whether t
// is equipped afterwards.
func (l *Look) Toggle(t Trait) bool {
	if cur, ok := l.traits[t.Category]; ok && cur.ID == t.ID {
		delete(l.traits, t.Category)
		return false
	}
	l.traits[t.Category] = t
	return true
}

// Equip sets t in its category unconditionally.
func (l *Look) Equip(t Trait) {
	l.traits[t.Category] = t
}

// Unequip empties one category.
func (l *Look) Unequip(c Category) {
	delete(l.traits, c)
}

// Equipped returns the trait worn in category c.
func (l *Look) Equipped(c Category) (Trait, bool) {
	t, ok := l.traits[c]
	return t, ok
}

// Reset removes every trait and both captions.
func (l *Look) Reset() {
	clear(l.traits)
	l.Top, l.Bottom = "", ""
}

// Randomize rerolls every category: each is filled with probability chance
// by a uniformly chosen trait, otherwise left empty. Captions are kept.
func (l *Look) Randomize(cat *Catalog, rng *rand.Rand, chance float64) {
	clear(l.traits)
	for _, c := range Categories {
		opts := cat.InCategory(c)
		if len(opts) == 0 || rng.Float64() >= chance {
			continue
		}
		l.traits[c] = opts[rng.Intn(len(opts))]
	}
}

// Layers returns the equipped traits bottom to top.
func (l *Look) Layers() []Trait {
	out := make([]Trait, 0, len(l.traits))
	for _, c := range LayerOrder {
		if t, ok := l.traits[c]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Captions returns the top and bottom captions as they are rendered:
// uppercased, and empty when blank.
func (l *Look) Captions() (top, bottom string) {
	return caption(l.Top), caption(l.Bottom)
}

func caption(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return strings.ToUpper(s)
}

// Saved is the serializable form of a Look.
type Saved struct {
	Traits []string `yaml:"traits"`
	Top    string   `yaml:"top,omitempty"`
	Bottom string   `yaml:"bottom,omitempty"`
}

// Save captures the look by trait id.
func (l *Look) Save() Saved {
	s := Saved{Top: l.Top, Bottom: l.Bottom}
	for _, t := range l.Layers() {
		s.Traits = append(s.Traits, t.ID)
	}
	return s
}

// Restore replaces the look with s. Ids missing from cat are skipped and
// returned so the caller can report them.
func (l *Look) Restore(cat *Catalog, s Saved) (missing []string) {
	l.Reset()
	for _, id := range s.Traits {
		t, err := cat.Trait(id)
		if err != nil {
			missing = append(missing, id)
			continue
		}
		l.Equip(t)
	}
	l.Top, l.Bottom = s.Top, s.Bottom
	return missing
}
