// Package meme implements the Anago meme maker: a trait catalog, the
// per-category selection, the layered compositor and PNG export.
package meme

import (
	"errors"
	"fmt"

	"github.com/anago-arcade/anago/internal/config"
)

// Category groups traits that occupy the same slot on the dog.
type Category string

const (
	Hats    Category = "hats"
	Eyes    Category = "eyes"
	Glasses Category = "glasses"
	Mouth   Category = "mouth"
	Neck    Category = "neck"
	Nose    Category = "nose"
)

// Categories lists categories in picker order.
var Categories = []Category{Hats, Eyes, Glasses, Mouth, Neck, Nose}

// LayerOrder lists categories bottom to top.
var LayerOrder = []Category{Neck, Mouth, Nose, Eyes, Glasses, Hats}

// Label returns the display name of the category.
func (c Category) Label() string {
	switch c {
	case Hats:
		return "Hats"
	case Eyes:
		return "Eyes"
	case Glasses:
		return "Glasses"
	case Mouth:
		return "Mouth"
	case Neck:
		return "Neck"
	case Nose:
		return "Nose"
	default:
		return string(c)
	}
}

// Valid reports whether c is one of the six known categories.
func (c Category) Valid() bool {
	for _, k := range Categories {
		if k == c {
			return true
		}
	}
	return false
}

// ErrUnknownTrait is returned when a trait id is not in the catalog.
var ErrUnknownTrait = errors.New("meme: unknown trait")

// Trait is one wearable layer. Src is relative to the assets directory.
type Trait struct {
	ID       string
	Label    string
	Category Category
	Src      string
}

var builtinTraits = []Trait{
	{ID: "hat_black", Label: "Top Hat", Category: Hats, Src: "meme-maker/hats/hat_black.png"},
	{ID: "hat_blue_1", Label: "Blue Cap", Category: Hats, Src: "meme-maker/hats/Hat_blue_1.png"},
	{ID: "hat_brrr", Label: "BRRR Cap", Category: Hats, Src: "meme-maker/hats/hat_brrr.png"},
	{ID: "hat_bunny", Label: "Bunny Ears", Category: Hats, Src: "meme-maker/hats/hat_bunny.png"},
	{ID: "hat_ceo", Label: "CEO Cap", Category: Hats, Src: "meme-maker/hats/hat_ceo.png"},
	{ID: "hat_cheff", Label: "Chef Hat", Category: Hats, Src: "meme-maker/hats/hat_cheff.png"},
	{ID: "hat_clown", Label: "Clown Hat", Category: Hats, Src: "meme-maker/hats/hat_clown.png"},
	{ID: "hat_cowboy", Label: "Cowboy Hat", Category: Hats, Src: "meme-maker/hats/hat_cowboy.png"},
	{ID: "hat_crown", Label: "Crown", Category: Hats, Src: "meme-maker/hats/hat_crown.png"},
	{ID: "hat_joker", Label: "Jester Hat", Category: Hats, Src: "meme-maker/hats/hat_joker.png"},
	{ID: "hat_l1", Label: "L1 Cap", Category: Hats, Src: "meme-maker/hats/hat_l1.png"},
	{ID: "hat_merlyn", Label: "Wizard Hat", Category: Hats, Src: "meme-maker/hats/hat_merlyn.png"},
	{ID: "hat_miner", Label: "Miner Helmet", Category: Hats, Src: "meme-maker/hats/hat_miner.png"},
	{ID: "hat_pirate", Label: "Pirate Hat", Category: Hats, Src: "meme-maker/hats/hat_pirate.png"},
	{ID: "hat_ring", Label: "Halo Ring", Category: Hats, Src: "meme-maker/hats/hat_ring.png"},
	{ID: "hat_samurai", Label: "Samurai Helmet", Category: Hats, Src: "meme-maker/hats/hat_samurai.png"},
	{ID: "hat_ufo", Label: "UFO Hat", Category: Hats, Src: "meme-maker/hats/hat_ufo.png"},
	{ID: "hat_viking", Label: "Viking Helmet", Category: Hats, Src: "meme-maker/hats/hat_viking.png"},

	{ID: "eyes_mad", Label: "Mad Eyes", Category: Eyes, Src: "meme-maker/eyes/eyes_mad.png"},
	{ID: "eyes_monoecle", Label: "Monoecle", Category: Eyes, Src: "meme-maker/eyes/eyes_monoecle.png"},
	{ID: "eyes_spiral", Label: "Spiral Eyes", Category: Eyes, Src: "meme-maker/eyes/eyes_spiral.png"},
	{ID: "eyes_tears", Label: "Tears", Category: Eyes, Src: "meme-maker/eyes/eyes_tears.png"},

	{ID: "glasses_blindfold", Label: "Blindfold", Category: Glasses, Src: "meme-maker/glasses/glasses_blindfold.png"},
	{ID: "glasses_brown", Label: "Brown Shades", Category: Glasses, Src: "meme-maker/glasses/glasses_brown.png"},
	{ID: "glasses_cyan", Label: "Cyan Glasses", Category: Glasses, Src: "meme-maker/glasses/glasses_cyan.png"},
	{ID: "glasses_cyborg", Label: "Cyborg Visor", Category: Glasses, Src: "meme-maker/glasses/glasses_cyborg.png"},
	{ID: "glasses_hex", Label: "Hex Glasses", Category: Glasses, Src: "meme-maker/glasses/glasses_hex.png"},
	{ID: "glasses_pixel", Label: "Pixel Thug", Category: Glasses, Src: "meme-maker/glasses/glasses_pixel.png"},
	{ID: "glasses_printr", Label: "Printr Shades", Category: Glasses, Src: "meme-maker/glasses/glasses_printr.png"},
	{ID: "glasses_purp", Label: "Purple Glasses", Category: Glasses, Src: "meme-maker/glasses/glasses_purp.png"},
	{ID: "glasses_snow", Label: "Snow Goggles", Category: Glasses, Src: "meme-maker/glasses/glasses_snow.png"},
	{ID: "glasses_star", Label: "Star Glasses", Category: Glasses, Src: "meme-maker/glasses/glasses_star.png"},
	{ID: "glasses_vr", Label: "VR Helmet", Category: Glasses, Src: "meme-maker/glasses/glasses_vr.png"},

	{ID: "mouth_bone", Label: "Bone", Category: Mouth, Src: "meme-maker/mouth/mouth_bone.png"},
	{ID: "mouth_bubblegum", Label: "Bubblegum", Category: Mouth, Src: "meme-maker/mouth/mouth_bubblegum.png"},
	{ID: "mouth_canines", Label: "Canines", Category: Mouth, Src: "meme-maker/mouth/mouth_canines.png"},
	{ID: "mouth_cigar", Label: "Cigar", Category: Mouth, Src: "meme-maker/mouth/mouth_cigar.png"},
	{ID: "mouth_Clench", Label: "Clenched Teeth", Category: Mouth, Src: "meme-maker/mouth/mouth_Clench.png"},
	{ID: "mouth_gold", Label: "Gold Grill", Category: Mouth, Src: "meme-maker/mouth/mouth_gold.png"},
	{ID: "mouth_lips", Label: "Lips", Category: Mouth, Src: "meme-maker/mouth/mouth_lips.png"},
	{ID: "mouth_lollipop", Label: "Lollipop", Category: Mouth, Src: "meme-maker/mouth/mouth_lollipop.png"},
	{ID: "mouth_pacifier", Label: "Pacifier", Category: Mouth, Src: "meme-maker/mouth/mouth_pacifier.png"},
	{ID: "mouth_popsicle", Label: "Popsicle", Category: Mouth, Src: "meme-maker/mouth/mouth_popsicle.png"},
	{ID: "mouth_spliff", Label: "Spliff", Category: Mouth, Src: "meme-maker/mouth/mouth_spliff.png"},
	{ID: "mouth_Sushi", Label: "Sushi", Category: Mouth, Src: "meme-maker/mouth/mouth_Sushi.png"},
	{ID: "mouth_tongue", Label: "Tongue Out", Category: Mouth, Src: "meme-maker/mouth/mouth_tongue.png"},
	{ID: "mouth_toothpick", Label: "Toothpick", Category: Mouth, Src: "meme-maker/mouth/mouth_toothpick.png"},

	{ID: "neck_anecklace", Label: "Anago Necklace", Category: Neck, Src: "meme-maker/neck/neck_anecklace.png"},
	{ID: "neck_bone", Label: "Bone Collar", Category: Neck, Src: "meme-maker/neck/neck_bone.png"},
	{ID: "neck_bow", Label: "Bow Tie", Category: Neck, Src: "meme-maker/neck/neck_bow.png"},
	{ID: "neck_gchain", Label: "Gold Chain", Category: Neck, Src: "meme-maker/neck/neck_gchain.png"},
	{ID: "neck_scarf", Label: "Scarf", Category: Neck, Src: "meme-maker/neck/neck_scarf.png"},
	{ID: "neck_spikes", Label: "Spiked Collar", Category: Neck, Src: "meme-maker/neck/neck_spikes.png"},
	{ID: "neck_ti", Label: "Purple Tie", Category: Neck, Src: "meme-maker/neck/neck_ti.png"},

	{ID: "nose_bandaid", Label: "Bandaid", Category: Nose, Src: "meme-maker/nose/nose_bandaid.png"},
	{ID: "nose_Clown", Label: "Clown Nose", Category: Nose, Src: "meme-maker/nose/nose_Clown.png"},
	{ID: "nose_coin", Label: "Coin Nose", Category: Nose, Src: "meme-maker/nose/nose_coin.png"},
	{ID: "nose_heart", Label: "Heart Nose", Category: Nose, Src: "meme-maker/nose/nose_heart.png"},
	{ID: "nose_monad", Label: "Monad Nose", Category: Nose, Src: "meme-maker/nose/nose_monad.png"},
	{ID: "nose_mustache", Label: "Mustache", Category: Nose, Src: "meme-maker/nose/nose_mustache.png"},
	{ID: "nose_pig", Label: "Pig Nose", Category: Nose, Src: "meme-maker/nose/nose_pig.png"},
	{ID: "nose_pircing", Label: "Piercing", Category: Nose, Src: "meme-maker/nose/nose_pircing.png"},
	{ID: "nose_ring", Label: "Ring", Category: Nose, Src: "meme-maker/nose/nose_ring.png"},
	{ID: "nose_skull", Label: "Skull Nose", Category: Nose, Src: "meme-maker/nose/nose_skull.png"},
}

// Catalog is an ordered, id-indexed set of traits.
type Catalog struct {
	traits []Trait
	byID   map[string]int
}

// NewCatalog returns the built-in traits extended by extra. An extra trait
// whose id already exists replaces it in place; otherwise it is appended.
func NewCatalog(extra []config.MemeTrait) (*Catalog, error) {
	c := &Catalog{
		traits: make([]Trait, 0, len(builtinTraits)+len(extra)),
		byID:   make(map[string]int, len(builtinTraits)+len(extra)),
	}
	for _, t := range builtinTraits {
		c.put(t)
	}
	for _, e := range extra {
		t := Trait{ID: e.ID, Label: e.Label, Category: Category(e.Category), Src: e.Src}
		if t.ID == "" {
			return nil, errors.New("meme: config trait without id")
		}
		if !t.Category.Valid() {
			return nil, fmt.Errorf("meme: trait %q: unknown category %q", t.ID, e.Category)
		}
		if t.Label == "" {
			t.Label = t.ID
		}
		c.put(t)
	}
	return c, nil
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() *Catalog {
	c, _ := NewCatalog(nil)
	return c
}

func (c *Catalog) put(t Trait) {
	if i, ok := c.byID[t.ID]; ok {
		c.traits[i] = t
		return
	}
	c.byID[t.ID] = len(c.traits)
	c.traits = append(c.traits, t)
}

// Len returns the number of traits.
func (c *Catalog) Len() int {
	return len(c.traits)
}

// Trait looks up a trait by id.
func (c *Catalog) Trait(id string) (Trait, error) {
	i, ok := c.byID[id]
	if !ok {
		return Trait{}, fmt.Errorf("%w: %s", ErrUnknownTrait, id)
	}
	return c.traits[i], nil
}

// InCategory returns the traits of one category in catalog order.
func (c *Catalog) InCategory(cat Category) []Trait {
	var out []Trait
	for _, t := range c.traits {
		if t.Category == cat {
			out = append(out, t)
		}
	}
	return out
}
