package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fishguide/internal/knowledge"
)

func init() {
	zap.ReplaceGlobals(zap.NewNop())
}

func TestGenerateNarragansettSummer(t *testing.T) {
	out := New(nil).Generate("Narragansett Bay", "2024-07-15")

	assert.True(t, strings.HasPrefix(out, "Rhode Island Fishing Report - Narragansett Bay\nDate: 2024-07-15\nSeason: Summer\n"))
	assert.Contains(t, out, "SPECIES ACTIVITY:\n"+saltwater.activity[knowledge.Summer]+"\n")
	assert.Contains(t, out, "- Striped Bass: Peak summer fishing\n- Fluke: Excellent action\n- Bluefish: Aggressive feeding\n- Tautog: Slower activity\n- Scup: Very good numbers")
	assert.NotContains(t, out, "Largemouth Bass")
	assert.Contains(t, out, "- Saltwater conditions")
	assert.Contains(t, out, "- Tide: Outgoing (high 8:42 AM, low 2:18 PM, next change 1:15 PM)")
	assert.True(t, strings.HasSuffix(out, "Good luck and tight lines!"))
}

func TestGenerateClassification(t *testing.T) {
	g := New(knowledge.Default())

	block := g.Generate("Block Island", "2024-10-01")
	assert.Contains(t, block, saltwater.activity[knowledge.Fall])
	assert.Contains(t, block, saltwater.tide)

	wallum := g.Generate("Wallum Lake", "2024-04-20")
	assert.Contains(t, wallum, "Season: Spring")
	assert.Contains(t, wallum, freshwater.activity[knowledge.Spring])
	assert.Contains(t, wallum, freshwater.tide)
	assert.NotContains(t, wallum, "- Tide:")

	unknown := g.Generate("Somewhere Else", "2024-01-10")
	assert.Contains(t, unknown, saltwater.activity[knowledge.Winter])
}

func TestGenerateSectionOrder(t *testing.T) {
	out := New(nil).Generate("Lower Rochambeau Pond", "2024-12-01")
	headings := []string{
		"CURRENT CONDITIONS:", "WATER CONDITIONS:", "SPECIES ACTIVITY:", "BEST TECHNIQUES:",
		"RECOMMENDED GEAR:", "LOCAL TIPS:", "REGULATIONS REMINDER:", "WEATHER OUTLOOK:",
		"TIDE INFORMATION:", "SNAPSHOT:", "FISHING FORECAST:",
	}
	last := -1
	for _, h := range headings {
		idx := strings.Index(out, h)
		require.NotEqualf(t, -1, idx, "missing %s", h)
		assert.Greaterf(t, idx, last, "%s out of order", h)
		last = idx
	}
}

func TestGenerateDeterministic(t *testing.T) {
	g := New(nil)
	assert.Equal(t, g.Generate("Watch Hill", "2024-05-05"), g.Generate("Watch Hill", "2024-05-05"))
}

func TestGenerateBadDate(t *testing.T) {
	var out string
	require.NotPanics(t, func() {
		out = New(nil).Generate("Narragansett Bay", "not-a-date")
	})
	assert.Contains(t, out, "Season: Winter")
	assert.Contains(t, out, "Date: not-a-date")
}

func TestSeasonForDate(t *testing.T) {
	season, ok := SeasonForDate("2024-07-15")
	assert.True(t, ok)
	assert.Equal(t, knowledge.Summer, season)

	season, ok = SeasonForDate("2024-03-01T08:00:00Z")
	assert.True(t, ok)
	assert.Equal(t, knowledge.Spring, season)

	season, ok = SeasonForDate("")
	assert.False(t, ok)
	assert.Equal(t, knowledge.Winter, season)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "fishing-report-block-island-2024-07-15.txt", Filename("Block Island", "2024-07-15"))
}
