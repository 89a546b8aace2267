// Package catalog holds the browsable reference data: Rhode Island species
// with their regulations and the fishing locations with coordinates.
package catalog

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed species.yaml
var speciesData []byte

//go:embed locations.yaml
var locationsData []byte

type WaterType string

const (
	Freshwater WaterType = "freshwater"
	Saltwater  WaterType = "saltwater"
)

// ParseWaterType accepts "", "all", "freshwater" and "saltwater". The empty
// result means no filter.
func ParseWaterType(raw string) (WaterType, error) {
	switch v := strings.ToLower(strings.TrimSpace(raw)); v {
	case "", "all":
		return "", nil
	case string(Freshwater), string(Saltwater):
		return WaterType(v), nil
	default:
		return "", fmt.Errorf("unknown water type %q (want freshwater, saltwater or all)", raw)
	}
}

type SizeRange struct {
	Min     int `yaml:"min" json:"min"`
	Max     int `yaml:"max" json:"max"`
	Average int `yaml:"average" json:"average"`
}

type SeasonWindow struct {
	Start string `yaml:"start" json:"start"`
	End   string `yaml:"end" json:"end"`
}

type Regulations struct {
	SizeLimit       int    `yaml:"size_limit" json:"sizeLimit"`
	PossessionLimit int    `yaml:"possession_limit" json:"possessionLimit"`
	SeasonDates     string `yaml:"season_dates" json:"seasonDates"`
}

type Species struct {
	ID             string       `yaml:"id" json:"id"`
	Name           string       `yaml:"name" json:"name"`
	ScientificName string       `yaml:"scientific_name" json:"scientificName"`
	Type           WaterType    `yaml:"type" json:"type"`
	Description    string       `yaml:"description" json:"description"`
	Habitat        string       `yaml:"habitat" json:"habitat"`
	Size           SizeRange    `yaml:"size" json:"size"`
	Season         SeasonWindow `yaml:"season" json:"season"`
	Regulations    Regulations  `yaml:"regulations" json:"regulations"`
	BestLures      []string     `yaml:"best_lures" json:"bestLures"`
	BestBait       []string     `yaml:"best_bait" json:"bestBait"`
	BestTimes      []string     `yaml:"best_times" json:"bestTimes"`
	Techniques     []string     `yaml:"techniques" json:"techniques"`
	Locations      []string     `yaml:"locations" json:"locations"`
}

type Coordinates struct {
	Lat float64 `yaml:"lat" json:"lat"`
	Lng float64 `yaml:"lng" json:"lng"`
}

type Location struct {
	ID          string      `yaml:"id" json:"id"`
	Name        string      `yaml:"name" json:"name"`
	Type        WaterType   `yaml:"type" json:"type"`
	Coordinates Coordinates `yaml:"coordinates" json:"coordinates"`
	Description string      `yaml:"description" json:"description"`
	Amenities   []string    `yaml:"amenities" json:"amenities"`
	FishSpecies []string    `yaml:"fish_species" json:"fishSpecies"`
	BestTimes   []string    `yaml:"best_times" json:"bestTimes"`
	AccessInfo  string      `yaml:"access_info" json:"accessInfo"`
	Regulations []string    `yaml:"regulations" json:"regulations"`
}

// Filter narrows a listing. Search matches case-insensitively against names
// (and scientific names or descriptions).
type Filter struct {
	Search string
	Type   WaterType
}

type Catalog struct {
	species   []Species
	locations []Location
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the embedded catalog.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(speciesData, locationsData)
		if err != nil {
			panic(fmt.Sprintf("embedded catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

func Parse(speciesYAML, locationsYAML []byte) (*Catalog, error) {
	var sp struct {
		Species []Species `yaml:"species"`
	}
	if err := yaml.Unmarshal(speciesYAML, &sp); err != nil {
		return nil, fmt.Errorf("parsing species: %w", err)
	}
	var loc struct {
		Locations []Location `yaml:"locations"`
	}
	if err := yaml.Unmarshal(locationsYAML, &loc); err != nil {
		return nil, fmt.Errorf("parsing locations: %w", err)
	}

	for _, s := range sp.Species {
		if s.ID == "" || s.Name == "" {
			return nil, fmt.Errorf("species entry missing id or name: %+v", s.ID)
		}
		if _, err := ParseWaterType(string(s.Type)); err != nil || s.Type == "" {
			return nil, fmt.Errorf("species %s: invalid type %q", s.ID, s.Type)
		}
	}
	for _, l := range loc.Locations {
		if l.ID == "" || l.Name == "" {
			return nil, fmt.Errorf("location entry missing id or name: %+v", l.ID)
		}
		if _, err := ParseWaterType(string(l.Type)); err != nil || l.Type == "" {
			return nil, fmt.Errorf("location %s: invalid type %q", l.ID, l.Type)
		}
	}

	return &Catalog{species: sp.Species, locations: loc.Locations}, nil
}

func (c *Catalog) Species() []Species {
	return slices.Clone(c.species)
}

func (c *Catalog) Locations() []Location {
	return slices.Clone(c.locations)
}

// SpeciesByName matches the id or the display name, ignoring case.
func (c *Catalog) SpeciesByName(name string) (Species, bool) {
	i := slices.IndexFunc(c.species, func(s Species) bool {
		return strings.EqualFold(s.Name, name) || strings.EqualFold(s.ID, name)
	})
	if i < 0 {
		return Species{}, false
	}
	return c.species[i], true
}

func (c *Catalog) LocationByName(name string) (Location, bool) {
	i := slices.IndexFunc(c.locations, func(l Location) bool {
		return strings.EqualFold(l.Name, name) || strings.EqualFold(l.ID, name)
	})
	if i < 0 {
		return Location{}, false
	}
	return c.locations[i], true
}

func (c *Catalog) FindSpecies(f Filter) []Species {
	term := strings.ToLower(f.Search)
	out := []Species{}
	for _, s := range c.species {
		if f.Type != "" && s.Type != f.Type {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(s.Name), term) &&
			!strings.Contains(strings.ToLower(s.ScientificName), term) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func (c *Catalog) FindLocations(f Filter) []Location {
	term := strings.ToLower(f.Search)
	out := []Location{}
	for _, l := range c.locations {
		if f.Type != "" && l.Type != f.Type {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(l.Name), term) &&
			!strings.Contains(strings.ToLower(l.Description), term) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// InSeason reports the species whose season window covers month. Windows
// that start after they end wrap the new year.
func (c *Catalog) InSeason(month time.Month) []Species {
	out := []Species{}
	for _, s := range c.species {
		start, ok1 := parseMonth(s.Season.Start)
		end, ok2 := parseMonth(s.Season.End)
		if !ok1 || !ok2 {
			continue
		}
		if monthInWindow(month, start, end) {
			out = append(out, s)
		}
	}
	return out
}

func monthInWindow(m, start, end time.Month) bool {
	if start <= end {
		return m >= start && m <= end
	}
	return m >= start || m <= end
}

func parseMonth(name string) (time.Month, bool) {
	t, err := time.Parse("January", strings.TrimSpace(name))
	if err != nil {
		return 0, false
	}
	return t.Month(), true
}
