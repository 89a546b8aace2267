package advisor

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"fishguide/internal/knowledge"
)

const (
	defaultLocation = "Rhode Island"
	defaultSpecies  = "Multiple species"
	maxConfidence   = 0.95
)

type Experience string

const (
	Beginner     Experience = "beginner"
	Intermediate Experience = "intermediate"
	Advanced     Experience = "advanced"
)

// Scenario is a user question plus optional context. Season is accepted for
// compatibility but the advisor always derives the season from its clock.
type Scenario struct {
	Question   string     `json:"question"`
	Location   string     `json:"location,omitempty"`
	Species    string     `json:"fishSpecies,omitempty"`
	TimeOfDay  string     `json:"timeOfDay,omitempty"`
	Season     string     `json:"season,omitempty"`
	Weather    string     `json:"weather,omitempty"`
	Experience Experience `json:"experience,omitempty"`
}

type Recommendations struct {
	BestTimes         []string `json:"bestTimes"`
	Lures             []string `json:"lures"`
	Bait              []string `json:"bait"`
	Techniques        []string `json:"techniques"`
	WeatherConditions []string `json:"weatherConditions"`
	Tips              []string `json:"tips"`
}

type Recommendation struct {
	Scenario        string           `json:"scenario"`
	Location        string           `json:"location"`
	Species         string           `json:"fishSpecies"`
	Season          knowledge.Season `json:"season"`
	Recommendations Recommendations  `json:"recommendations"`
	Confidence      float64          `json:"confidence"`
	Reasoning       string           `json:"reasoning"`
	DetailedReport  string           `json:"detailedReport,omitempty"`
}

type Option func(*Advisor)

func WithClock(now func() time.Time) Option {
	return func(a *Advisor) {
		a.now = now
	}
}

// Advisor assembles recommendations from a read-only knowledge base. It holds
// no mutable state and may be shared between goroutines.
type Advisor struct {
	kb  *knowledge.Base
	now func() time.Time
}

func New(kb *knowledge.Base, opts ...Option) *Advisor {
	if kb == nil {
		kb = knowledge.Default()
	}
	a := &Advisor{kb: kb, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Advisor) Season() knowledge.Season {
	return knowledge.SeasonOf(a.now())
}

// resolved carries the boundary-parsed view of a scenario.
type resolved struct {
	scenario   Scenario
	location   string
	species    string
	speciesCat knowledge.Species
	locCat     knowledge.Location
	spEntry    *knowledge.SpeciesEntry
	locEntry   *knowledge.LocationEntry
	conditions knowledge.Conditions
	season     knowledge.Season
	experience Experience
}

func (a *Advisor) resolve(s Scenario) resolved {
	r := resolved{
		scenario:   s,
		location:   orDefault(s.Location, defaultLocation),
		species:    orDefault(s.Species, defaultSpecies),
		speciesCat: knowledge.ParseSpecies(s.Species),
		locCat:     knowledge.ParseLocation(s.Location),
		conditions: a.kb.Conditions(),
		season:     a.Season(),
		experience: s.Experience,
	}
	if entry, ok := a.kb.Species(r.speciesCat, r.season); ok {
		r.spEntry = &entry
	}
	if entry, ok := a.kb.Location(r.locCat); ok {
		r.locEntry = &entry
	}
	return r
}

func (a *Advisor) Recommend(s Scenario) Recommendation {
	r := a.resolve(s)
	return Recommendation{
		Scenario: s.Question,
		Location: r.location,
		Species:  r.species,
		Season:   r.season,
		Recommendations: Recommendations{
			BestTimes:         bestTimes(r),
			Lures:             lures(r),
			Bait:              bait(r),
			Techniques:        techniques(r),
			WeatherConditions: weatherConditions(r.conditions),
			Tips:              tips(r),
		},
		Confidence:     confidence(r),
		Reasoning:      reasoning(r),
		DetailedReport: conversationalReport(r),
	}
}

// DetailedReport returns only the conversational long-form answer.
func (a *Advisor) DetailedReport(s Scenario) string {
	return conversationalReport(a.resolve(s))
}

var slugSpace = regexp.MustCompile(`\s+`)

func AdviceFilename(location string, day time.Time) string {
	slug := slugSpace.ReplaceAllString(strings.ToLower(orDefault(location, defaultLocation)), "-")
	return fmt.Sprintf("rhode-island-fishing-advice-%s-%s.txt", slug, day.Format("2006-01-02"))
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
