package report

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"fishguide/internal/knowledge"
)

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"}

type Generator struct {
	kb *knowledge.Base
}

func New(kb *knowledge.Base) *Generator {
	if kb == nil {
		kb = knowledge.Default()
	}
	return &Generator{kb: kb}
}

// SeasonForDate resolves the season from a caller-supplied date. Dates that
// do not parse fall back to winter.
func SeasonForDate(date string) (knowledge.Season, bool) {
	trimmed := strings.TrimSpace(date)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return knowledge.SeasonOf(t), true
		}
	}
	return knowledge.Winter, false
}

// Generate renders the seasonal report for location on date. The output is
// deterministic for a given (location, date) pair.
func (g *Generator) Generate(location, date string) string {
	season, ok := SeasonForDate(date)
	if !ok {
		zap.L().Warn("unparseable report date, using winter",
			zap.String("location", location),
			zap.String("date", date),
		)
	}
	waters := knowledge.Classify(location)
	tables := tablesFor(waters)
	title := season.Title()

	var b strings.Builder
	fmt.Fprintf(&b, "Rhode Island Fishing Report - %s\n", location)
	fmt.Fprintf(&b, "Date: %s\n", date)
	fmt.Fprintf(&b, "Season: %s\n", title)

	section(&b, "CURRENT CONDITIONS", seasonalConditions[season])
	section(&b, "WATER CONDITIONS", tables.water)
	section(&b, "SPECIES ACTIVITY", tables.activity[season])
	section(&b, "BEST TECHNIQUES", tables.techniques)
	section(&b, "RECOMMENDED GEAR", tables.gear)
	section(&b, "LOCAL TIPS", tables.tips)
	section(&b, "REGULATIONS REMINDER", regulationsReminder)
	section(&b, "WEATHER OUTLOOK", weatherOutlook[season])
	section(&b, "TIDE INFORMATION", tables.tide)
	section(&b, "SNAPSHOT", g.snapshot(waters))
	section(&b, "FISHING FORECAST", forecast[season])

	b.WriteString("\nGood luck and tight lines!")
	return b.String()
}

func (g *Generator) snapshot(waters knowledge.Waters) string {
	c := g.kb.Conditions()
	lines := []string{
		fmt.Sprintf("- Air: %v°F, %s, wind %v mph %s", c.Weather.TemperatureF, c.Weather.Conditions, c.Weather.WindSpeedMPH, c.Weather.WindDirection),
		fmt.Sprintf("- Barometer: %v inHg, visibility %v miles", c.Weather.PressureInHg, c.Weather.VisibilityMiles),
		fmt.Sprintf("- Water: %v°F, clarity %s, oxygen %s", c.Water.TemperatureF, c.Water.Clarity, c.Water.Oxygen),
	}
	if waters == knowledge.Saltwater {
		lines = append(lines, fmt.Sprintf("- Tide: %s (high %s, low %s, next change %s)", c.Tide.Current, c.Tide.High, c.Tide.Low, c.Tide.NextChange))
	}
	return strings.Join(lines, "\n")
}

func section(b *strings.Builder, heading, body string) {
	fmt.Fprintf(b, "\n%s:\n%s\n", heading, body)
}

var slugSpace = regexp.MustCompile(`\s+`)

// Filename is the download name for a report.
func Filename(location, date string) string {
	slug := slugSpace.ReplaceAllString(strings.ToLower(strings.TrimSpace(location)), "-")
	return fmt.Sprintf("fishing-report-%s-%s.txt", slug, date)
}
