package knowledge

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed knowledge.yaml
var embeddedKnowledge []byte

type SpeciesEntry struct {
	Behavior   string   `yaml:"behavior"`
	Hotspots   []string `yaml:"hotspots"`
	Techniques []string `yaml:"techniques"`
	Notes      string   `yaml:"notes"`
}

type LocationEntry struct {
	Characteristics string   `yaml:"characteristics"`
	Species         []string `yaml:"species"`
	BestAccess      []string `yaml:"best_access"`
	Tides           string   `yaml:"tides"`
	Tidal           bool     `yaml:"tidal"`
	Structure       string   `yaml:"structure"`
	Tips            []string `yaml:"tips"`
}

type Weather struct {
	TemperatureF    float64 `yaml:"temperature_f" json:"temperatureF"`
	WindSpeedMPH    float64 `yaml:"wind_speed_mph" json:"windSpeedMph"`
	WindDirection   string  `yaml:"wind_direction" json:"windDirection"`
	PressureInHg    float64 `yaml:"pressure_inhg" json:"pressureInHg"`
	VisibilityMiles float64 `yaml:"visibility_miles" json:"visibilityMiles"`
	Conditions      string  `yaml:"conditions" json:"conditions"`
}

type Tide struct {
	High       string  `yaml:"high" json:"high"`
	Low        string  `yaml:"low" json:"low"`
	Current    string  `yaml:"current" json:"current"`
	HeightFt   float64 `yaml:"height_ft" json:"heightFt"`
	NextChange string  `yaml:"next_change" json:"nextChange"`
}

type Water struct {
	TemperatureF float64 `yaml:"temperature_f" json:"temperatureF"`
	Clarity      string  `yaml:"clarity" json:"clarity"`
	Oxygen       string  `yaml:"oxygen" json:"oxygen"`
	SalinityPPT  float64 `yaml:"salinity_ppt" json:"salinityPpt"`
	Current      string  `yaml:"current" json:"current"`
}

// Conditions is the single conditions snapshot. It is never fetched live.
type Conditions struct {
	Weather Weather `yaml:"weather" json:"weather"`
	Tide    Tide    `yaml:"tide" json:"tide"`
	Water   Water   `yaml:"water" json:"water"`
}

type document struct {
	Seasonal   map[string]map[string]SpeciesEntry `yaml:"seasonal"`
	Fallback   map[string]SpeciesEntry            `yaml:"fallback"`
	Locations  map[string]LocationEntry           `yaml:"locations"`
	Conditions Conditions                         `yaml:"conditions"`
}

// Base is the read-only knowledge base. Build one with Load or Default and
// share it; accessors hand out copies.
type Base struct {
	seasonal   map[Season]map[Species]SpeciesEntry
	fallback   map[Species]SpeciesEntry
	locations  map[Location]LocationEntry
	conditions Conditions
}

var (
	defaultOnce sync.Once
	defaultBase *Base
)

func Default() *Base {
	defaultOnce.Do(func() {
		base, err := Parse(embeddedKnowledge)
		if err != nil {
			panic(fmt.Sprintf("embedded knowledge base: %v", err))
		}
		defaultBase = base
	})
	return defaultBase
}

func Load(path string) (*Base, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading knowledge base: %w", err)
	}
	base, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading knowledge base: %w", err)
	}
	return base, nil
}

func LoadOrDefault(path string) (*Base, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	return Load(path)
}

func Parse(data []byte) (*Base, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing knowledge yaml: %w", err)
	}

	base := &Base{
		seasonal:   make(map[Season]map[Species]SpeciesEntry),
		fallback:   make(map[Species]SpeciesEntry),
		locations:  make(map[Location]LocationEntry),
		conditions: doc.Conditions,
	}

	for rawSeason, entries := range doc.Seasonal {
		season, err := ParseSeason(rawSeason)
		if err != nil {
			return nil, err
		}
		table := make(map[Species]SpeciesEntry, len(entries))
		for key, entry := range entries {
			sp, err := speciesFromKey(key)
			if err != nil {
				return nil, fmt.Errorf("seasonal %s: %w", rawSeason, err)
			}
			table[sp] = entry
		}
		base.seasonal[season] = table
	}

	for key, entry := range doc.Fallback {
		sp, err := speciesFromKey(key)
		if err != nil {
			return nil, fmt.Errorf("fallback: %w", err)
		}
		base.fallback[sp] = entry
	}

	for key, entry := range doc.Locations {
		loc, err := locationFromKey(key)
		if err != nil {
			return nil, fmt.Errorf("locations: %w", err)
		}
		base.locations[loc] = entry
	}

	for sp := range speciesKeys {
		if sp == UnknownSpecies {
			continue
		}
		if _, ok := base.fallback[sp]; !ok {
			return nil, fmt.Errorf("missing fallback entry for %s", sp)
		}
	}

	return base, nil
}

// Species returns the seasonal entry for sp, falling back to the category
// default when the season has none. ok is false only for UnknownSpecies.
func (b *Base) Species(sp Species, season Season) (SpeciesEntry, bool) {
	if sp == UnknownSpecies {
		return SpeciesEntry{}, false
	}
	if entry, ok := b.seasonal[season][sp]; ok {
		return entry.clone(), true
	}
	entry, ok := b.fallback[sp]
	return entry.clone(), ok
}

func (b *Base) Location(loc Location) (LocationEntry, bool) {
	entry, ok := b.locations[loc]
	if !ok {
		return LocationEntry{}, false
	}
	return entry.clone(), true
}

func (b *Base) Conditions() Conditions {
	return b.conditions
}

// SeasonalEntries lists every seasonal and fallback entry keyed by a
// readable label such as "summer/bluefish" or "fallback/trout".
func (b *Base) SeasonalEntries() map[string]SpeciesEntry {
	out := make(map[string]SpeciesEntry)
	for season, table := range b.seasonal {
		for sp, entry := range table {
			out[string(season)+"/"+sp.String()] = entry.clone()
		}
	}
	for sp, entry := range b.fallback {
		out["fallback/"+sp.String()] = entry.clone()
	}
	return out
}

func (b *Base) Locations() map[Location]LocationEntry {
	out := make(map[Location]LocationEntry, len(b.locations))
	for loc, entry := range b.locations {
		out[loc] = entry.clone()
	}
	return out
}

func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (e SpeciesEntry) clone() SpeciesEntry {
	e.Hotspots = slices.Clone(e.Hotspots)
	e.Techniques = slices.Clone(e.Techniques)
	return e
}

func (e LocationEntry) clone() LocationEntry {
	e.Species = slices.Clone(e.Species)
	e.BestAccess = slices.Clone(e.BestAccess)
	e.Tips = slices.Clone(e.Tips)
	return e
}
