package knowledge

import (
	"fmt"
	"strings"
)

// Species is the closed set of categories the knowledge base knows about.
type Species int

const (
	UnknownSpecies Species = iota
	StripedBass
	Fluke
	Tautog
	Bluefish
	FreshwaterBass
	Trout
)

var speciesKeys = map[Species]string{
	UnknownSpecies: "unknown",
	StripedBass:    "striped_bass",
	Fluke:          "fluke",
	Tautog:         "tautog",
	Bluefish:       "bluefish",
	FreshwaterBass: "freshwater_bass",
	Trout:          "trout",
}

func (s Species) String() string {
	if key, ok := speciesKeys[s]; ok {
		return key
	}
	return fmt.Sprintf("species(%d)", int(s))
}

func (s Species) Known() bool {
	return s != UnknownSpecies
}

// ParseSpecies resolves free text to a category. Specific categories are
// tested before the generic bass bucket so "Striped Bass" never lands there.
func ParseSpecies(raw string) Species {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if lower == "" {
		return UnknownSpecies
	}

	switch {
	case strings.Contains(lower, "striped bass") || strings.Contains(lower, "striper"):
		return StripedBass
	case strings.Contains(lower, "fluke") || strings.Contains(lower, "summer flounder"):
		return Fluke
	case strings.Contains(lower, "tautog") || strings.Contains(lower, "blackfish"):
		return Tautog
	case strings.Contains(lower, "bluefish"):
		return Bluefish
	case strings.Contains(lower, "bass") && !strings.Contains(lower, "sea"):
		return FreshwaterBass
	case strings.Contains(lower, "trout"):
		return Trout
	default:
		return UnknownSpecies
	}
}

func speciesFromKey(key string) (Species, error) {
	for sp, k := range speciesKeys {
		if k == key && sp != UnknownSpecies {
			return sp, nil
		}
	}
	return UnknownSpecies, fmt.Errorf("unknown species key: %q", key)
}
