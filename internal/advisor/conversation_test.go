package advisor

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyQuestion(t *testing.T) {
	tests := []struct {
		question string
		want     questionKind
	}{
		{"When should I go out?", askTiming},
		{"Best time for stripers", askTiming},
		{"What bait works?", askBait},
		{"What lure should I throw?", askBait},
		{"Where should I fish?", askLocation},
		{"Any good spot nearby?", askLocation},
		{"How do I rig a jig?", askTechnique},
		{"Which technique is best?", askTechnique},
		{"What gear do I need?", askGear},
		{"Which reel is best?", askGear},
		{"I am a beginner", askBeginner},
		{"Are the weather conditions good?", askWeather},
		{"Tell me about fishing", askGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyQuestion(tt.question))
		})
	}
}

func TestDetailedReportRouting(t *testing.T) {
	a := newAdvisor(time.April)

	t.Run("timing saltwater striped bass", func(t *testing.T) {
		report := a.DetailedReport(Scenario{Question: "When is the bite best?", Species: "Striped Bass", Location: "Narragansett Bay"})
		assert.True(t, strings.HasPrefix(report, "Hey there! Great question about fishing in Rhode Island. "))
		assert.Contains(t, report, "For Striped Bass at Narragansett Bay, timing is everything")
		assert.Contains(t, report, "The outgoing tide can be great too")
		assert.Contains(t, report, "first few hours of incoming tide")
		assert.Contains(t, report, "manageable at 8 mph")
	})

	t.Run("timing freshwater", func(t *testing.T) {
		report := a.DetailedReport(Scenario{Question: "What time?", Location: "Wallum Lake"})
		assert.Contains(t, report, "For freshwater fishing at Wallum Lake")
		assert.Contains(t, report, "cooler side at 58°F")
	})

	t.Run("bait in spring", func(t *testing.T) {
		report := a.DetailedReport(Scenario{Question: "What bait?", Species: "Striper"})
		assert.Contains(t, report, "love live eels")
		assert.Contains(t, report, "During spring, the big stripers")
	})

	t.Run("location knowledge", func(t *testing.T) {
		report := a.DetailedReport(Scenario{Question: "Where can I go?", Location: "Lower Rochambeau Pond"})
		assert.Contains(t, report, "Lower Rochambeau Pond is a fantastic choice")
		assert.Contains(t, report, "Largemouth Bass, Smallmouth Bass")
		assert.Contains(t, report, "one of my favorite local spots")
	})

	t.Run("beginner technique", func(t *testing.T) {
		report := a.DetailedReport(Scenario{Question: "Which technique?", Species: "Largemouth Bass", Location: "Wallum Lake", Experience: Beginner})
		assert.Contains(t, report, "Texas rig")
		assert.NotContains(t, report, "pay attention to the tides")
		assert.Contains(t, report, "Don't get discouraged")
	})

	t.Run("gear saltwater", func(t *testing.T) {
		report := a.DetailedReport(Scenario{Question: "Which rod?", Species: "Striped Bass", Location: "Block Island"})
		assert.Contains(t, report, "corrosion-resistant gear")
		assert.Contains(t, report, "40-60lb leader")
	})

	t.Run("weather", func(t *testing.T) {
		report := a.DetailedReport(Scenario{Question: "Are the weather conditions good?"})
		assert.Contains(t, report, "looking excellent for fishing")
		assert.Contains(t, report, "good range for most species")
	})

	t.Run("missing experience reads as intermediate", func(t *testing.T) {
		report := a.DetailedReport(Scenario{Question: "What technique works?", Species: "Fluke"})
		assert.Contains(t, report, "You've got some experience under your belt")
		assert.NotContains(t, report, "fine-tune your approach")
		assert.Contains(t, report, "With your experience level, you should be able to adapt")
	})

	t.Run("general with context and encouragement", func(t *testing.T) {
		report := a.DetailedReport(Scenario{Question: "Tell me about it", Experience: Advanced})
		assert.Contains(t, report, "You're asking about Multiple species at Rhode Island")
		assert.Contains(t, report, "check the tide charts")
		assert.Contains(t, report, "With your experience level, you should be able to adapt")
		assert.True(t, strings.Contains(report, "tight lines"))
	})
}
