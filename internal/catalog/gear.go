package catalog

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed gear.yaml
var gearData []byte

// allSpecies marks gear that suits every species.
const allSpecies = "All Species"

type Level string

const (
	Beginner     Level = "beginner"
	Intermediate Level = "intermediate"
	Advanced     Level = "advanced"
)

func ParseLevel(raw string) (Level, error) {
	switch v := Level(strings.ToLower(strings.TrimSpace(raw))); v {
	case "", "all":
		return "", nil
	case Beginner, Intermediate, Advanced:
		return v, nil
	default:
		return "", fmt.Errorf("unknown level %q (want beginner, intermediate or advanced)", raw)
	}
}

type GearItem struct {
	Name        string   `yaml:"name" json:"name"`
	Brand       string   `yaml:"brand" json:"brand"`
	Description string   `yaml:"description" json:"description"`
	Price       string   `yaml:"price" json:"price"`
	BestFor     []string `yaml:"best_for" json:"bestFor"`
	Rating      float64  `yaml:"rating" json:"rating"`
	Pros        []string `yaml:"pros" json:"pros"`
	Cons        []string `yaml:"cons" json:"cons"`
	WhereToBuy  []string `yaml:"where_to_buy" json:"whereToBuy"`
	RISpecific  string   `yaml:"ri_specific" json:"riSpecific"`
}

type GearCategory struct {
	ID          string     `yaml:"id" json:"id"`
	Name        string     `yaml:"name" json:"name"`
	Description string     `yaml:"description" json:"description"`
	Items       []GearItem `yaml:"items" json:"items"`
}

type KitItem struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Brand       string   `yaml:"brand" json:"brand"`
	Description string   `yaml:"description" json:"description"`
	Price       string   `yaml:"price" json:"price"`
	URL         string   `yaml:"url" json:"url"`
	Rating      float64  `yaml:"rating" json:"rating"`
	Features    []string `yaml:"features" json:"features"`
}

type StarterKit struct {
	ID          string    `yaml:"id" json:"id"`
	Name        string    `yaml:"name" json:"name"`
	PriceRange  string    `yaml:"price_range" json:"priceRange"`
	Description string    `yaml:"description" json:"description"`
	Level       Level     `yaml:"level" json:"level"`
	Water       WaterType `yaml:"water" json:"water"`
	BestFor     string    `yaml:"best_for" json:"bestFor"`
	TotalPrice  string    `yaml:"total_price" json:"totalPrice"`
	Items       []KitItem `yaml:"items" json:"items"`
}

type KitFilter struct {
	Level Level
	Type  WaterType
}

// Gear is the tackle guide: recommended gear by category plus budget
// starter kits.
type Gear struct {
	categories []GearCategory
	kits       []StarterKit
}

var (
	gearOnce    sync.Once
	defaultGear *Gear
)

func DefaultGear() *Gear {
	gearOnce.Do(func() {
		g, err := ParseGear(gearData)
		if err != nil {
			panic(fmt.Sprintf("embedded gear: %v", err))
		}
		defaultGear = g
	})
	return defaultGear
}

func ParseGear(data []byte) (*Gear, error) {
	var doc struct {
		Categories  []GearCategory `yaml:"categories"`
		StarterKits []StarterKit   `yaml:"starter_kits"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing gear: %w", err)
	}

	for _, c := range doc.Categories {
		if c.ID == "" || c.Name == "" {
			return nil, fmt.Errorf("gear category missing id or name: %q", c.ID)
		}
	}
	for _, k := range doc.StarterKits {
		if k.ID == "" {
			return nil, fmt.Errorf("starter kit missing id")
		}
		if lvl, err := ParseLevel(string(k.Level)); err != nil || lvl == "" {
			return nil, fmt.Errorf("starter kit %s: invalid level %q", k.ID, k.Level)
		}
		if wt, err := ParseWaterType(string(k.Water)); err != nil || wt == "" {
			return nil, fmt.Errorf("starter kit %s: invalid water %q", k.ID, k.Water)
		}
	}

	return &Gear{categories: doc.Categories, kits: doc.StarterKits}, nil
}

func (g *Gear) Categories() []GearCategory {
	return slices.Clone(g.categories)
}

func (g *Gear) Category(id string) (GearCategory, bool) {
	i := slices.IndexFunc(g.categories, func(c GearCategory) bool {
		return strings.EqualFold(c.ID, id) || strings.EqualFold(c.Name, id)
	})
	if i < 0 {
		return GearCategory{}, false
	}
	return g.categories[i], true
}

// ForSpecies returns every item recommended for species, including items
// marked for all species, in category order.
func (g *Gear) ForSpecies(species string) []GearItem {
	species = strings.TrimSpace(species)
	out := []GearItem{}
	for _, c := range g.categories {
		for _, item := range c.Items {
			if slices.ContainsFunc(item.BestFor, func(b string) bool {
				return strings.EqualFold(b, species) || b == allSpecies
			}) {
				out = append(out, item)
			}
		}
	}
	return out
}

func (g *Gear) StarterKits(f KitFilter) []StarterKit {
	out := []StarterKit{}
	for _, k := range g.kits {
		if f.Level != "" && k.Level != f.Level {
			continue
		}
		if f.Type != "" && k.Water != f.Type {
			continue
		}
		out = append(out, k)
	}
	return out
}
