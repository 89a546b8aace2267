// Package validate lints the knowledge base and the reference catalog for
// inconsistencies that would produce misleading advice.
package validate

import (
	"fmt"
	"slices"
	"strings"

	"fishguide/internal/catalog"
	"fishguide/internal/knowledge"
)

type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warning"
)

const (
	SourceKnowledge = "knowledge"
	SourceCatalog   = "catalog"
)

const (
	codeEmptyTechniques = "empty_techniques"
	codeEmptyBehavior   = "empty_behavior"
	codeEmptyTips       = "empty_location_tips"
	codeTidalMismatch   = "tidal_mismatch"
	codeSnapshotInvalid = "snapshot_invalid"
	codeDuplicateID     = "duplicate_id"
	codeDuplicateName   = "duplicate_name"
	codeWatersMismatch  = "waters_mismatch"
)

type Issue struct {
	Severity Severity
	Code     string
	Message  string
	Source   string
	Entity   string
}

type Report struct {
	Issues []Issue
}

func (r *Report) Errors() []Issue   { return r.filter(SeverityError) }
func (r *Report) Warnings() []Issue { return r.filter(SeverityWarn) }

func (r *Report) filter(sev Severity) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Severity == sev {
			out = append(out, issue)
		}
	}
	return out
}

// Run checks kb and cat. Either may be nil, in which case its checks are
// skipped.
func Run(kb *knowledge.Base, cat *catalog.Catalog) *Report {
	issues := make([]Issue, 0)
	if kb != nil {
		issues = append(issues, validateSpeciesEntries(kb)...)
		issues = append(issues, validateLocationEntries(kb, cat)...)
		issues = append(issues, validateSnapshot(kb.Conditions())...)
	}
	if cat != nil {
		issues = append(issues, validateCatalog(cat)...)
	}
	return &Report{Issues: issues}
}

func validateSpeciesEntries(kb *knowledge.Base) []Issue {
	var issues []Issue
	entries := kb.SeasonalEntries()
	for _, key := range knowledge.SortedKeys(entries) {
		entry := entries[key]
		if len(entry.Techniques) == 0 {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Code:     codeEmptyTechniques,
				Message:  "species entry has no techniques",
				Source:   SourceKnowledge,
				Entity:   key,
			})
		}
		if strings.TrimSpace(entry.Behavior) == "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Code:     codeEmptyBehavior,
				Message:  "species entry has no behavior description",
				Source:   SourceKnowledge,
				Entity:   key,
			})
		}
	}
	return issues
}

func validateLocationEntries(kb *knowledge.Base, cat *catalog.Catalog) []Issue {
	var issues []Issue
	locations := kb.Locations()

	keys := make([]knowledge.Location, 0, len(locations))
	for loc := range locations {
		keys = append(keys, loc)
	}
	slices.Sort(keys)

	for _, loc := range keys {
		entry := locations[loc]
		if len(entry.Tips) == 0 {
			issues = append(issues, Issue{
				Severity: SeverityWarn,
				Code:     codeEmptyTips,
				Message:  "location entry has no tips",
				Source:   SourceKnowledge,
				Entity:   loc.String(),
			})
		}
		if cat == nil {
			continue
		}
		for _, l := range cat.Locations() {
			if knowledge.ParseLocation(l.Name) != loc {
				continue
			}
			if entry.Tidal && knowledge.IsFreshwater(l.Name) {
				issues = append(issues, Issue{
					Severity: SeverityError,
					Code:     codeTidalMismatch,
					Message:  fmt.Sprintf("marked tidal but %q classifies as freshwater", l.Name),
					Source:   SourceKnowledge,
					Entity:   loc.String(),
				})
			}
		}
	}
	return issues
}

func validateSnapshot(c knowledge.Conditions) []Issue {
	var issues []Issue
	add := func(entity, message string) {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Code:     codeSnapshotInvalid,
			Message:  message,
			Source:   SourceKnowledge,
			Entity:   entity,
		})
	}
	if c.Weather.WindSpeedMPH < 0 {
		add("weather.wind_speed_mph", "wind speed must not be negative")
	}
	if c.Weather.VisibilityMiles < 0 {
		add("weather.visibility_miles", "visibility must not be negative")
	}
	if c.Weather.PressureInHg < 25 || c.Weather.PressureInHg > 35 {
		add("weather.pressure_inhg", fmt.Sprintf("pressure %v inHg is out of range", c.Weather.PressureInHg))
	}
	if strings.TrimSpace(c.Water.Clarity) == "" {
		issues = append(issues, Issue{
			Severity: SeverityWarn,
			Code:     codeSnapshotInvalid,
			Message:  "water clarity is empty",
			Source:   SourceKnowledge,
			Entity:   "water.clarity",
		})
	}
	return issues
}

func validateCatalog(cat *catalog.Catalog) []Issue {
	var issues []Issue

	speciesIDs := map[string]bool{}
	speciesNames := map[string]bool{}
	for _, s := range cat.Species() {
		issues = append(issues, duplicates(speciesIDs, speciesNames, s.ID, s.Name)...)
	}

	locationIDs := map[string]bool{}
	locationNames := map[string]bool{}
	for _, l := range cat.Locations() {
		issues = append(issues, duplicates(locationIDs, locationNames, l.ID, l.Name)...)

		classified := catalog.Saltwater
		if knowledge.IsFreshwater(l.Name) {
			classified = catalog.Freshwater
		}
		if classified != l.Type {
			issues = append(issues, Issue{
				Severity: SeverityWarn,
				Code:     codeWatersMismatch,
				Message:  fmt.Sprintf("listed as %s but reports treat it as %s", l.Type, classified),
				Source:   SourceCatalog,
				Entity:   l.Name,
			})
		}
	}
	return issues
}

func duplicates(ids, names map[string]bool, id, name string) []Issue {
	var issues []Issue
	if ids[id] {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Code:     codeDuplicateID,
			Message:  fmt.Sprintf("id %q is used more than once", id),
			Source:   SourceCatalog,
			Entity:   name,
		})
	}
	ids[id] = true

	key := strings.ToLower(name)
	if names[key] {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Code:     codeDuplicateName,
			Message:  "name is used more than once",
			Source:   SourceCatalog,
			Entity:   name,
		})
	}
	names[key] = true
	return issues
}
