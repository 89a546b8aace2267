package advisor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"fishguide/internal/knowledge"
)

// dedupe drops repeated strings, keeping the first occurrence in place.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

func mentions(text, keyword string) bool {
	return strings.Contains(strings.ToLower(text), keyword)
}

func mentionsAny(texts []string, keyword string) bool {
	for _, text := range texts {
		if mentions(text, keyword) {
			return true
		}
	}
	return false
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func bestTimes(r resolved) []string {
	var times []string

	if r.spEntry != nil {
		if mentions(r.spEntry.Behavior, "night") {
			times = append(times, "Night fishing (10 PM - 2 AM)")
		}
		if mentions(r.spEntry.Behavior, "dawn") || mentions(r.spEntry.Behavior, "dusk") {
			times = append(times, "Dawn and dusk feeding periods")
		}
	}

	if r.locEntry != nil && r.locEntry.Tidal {
		times = append(times,
			fmt.Sprintf("Incoming tide (%s)", r.conditions.Tide.NextChange),
			"Outgoing tide for structure fishing",
		)
	}

	if r.conditions.Weather.WindSpeedMPH < 10 {
		times = append(times, "Early morning calm conditions")
	}

	times = append(times, "Early morning (6-8 AM)", "Late evening (6-8 PM)")
	return dedupe(times)
}

func lures(r resolved) []string {
	var out []string

	if r.spEntry != nil {
		if mentionsAny(r.spEntry.Techniques, "casting") {
			out = append(out, "Topwater plugs", "Swimbaits", "Jerkbaits")
		}
		if mentionsAny(r.spEntry.Techniques, "jigging") {
			out = append(out, "Bucktail jigs", "Soft plastic jigs", "Metal jigs")
		}
		if mentionsAny(r.spEntry.Techniques, "trolling") {
			out = append(out, "Trolling plugs", "Tube and worm rigs")
		}
	}

	switch r.season {
	case knowledge.Spring:
		out = append(out, "Pre-spawn lures", "Cold water presentations")
	case knowledge.Summer:
		out = append(out, "Topwater lures", "Fast retrieves")
	case knowledge.Fall:
		out = append(out, "Feeding frenzy lures", "Large profile baits")
	case knowledge.Winter:
		out = append(out, "Slow presentations", "Deep diving lures")
	}

	return dedupe(out)
}

func bait(r resolved) []string {
	var out []string

	if r.spEntry != nil {
		if mentions(r.spEntry.Notes, "green crabs") {
			out = append(out, "Green crabs", "Hermit crabs")
		}
		if mentions(r.spEntry.Notes, "live eels") {
			out = append(out, "Live eels", "Live bunker")
		}
		if mentionsAny(r.spEntry.Techniques, "live lining") {
			out = append(out, "Live bait", "Live killifish")
		}
	}

	switch r.season {
	case knowledge.Spring:
		out = append(out, "Live bait", "Pre-spawn baits")
	case knowledge.Summer:
		out = append(out, "Fresh bait", "Live bait")
	case knowledge.Fall:
		out = append(out, "Large baits", "Baitfish imitations")
	case knowledge.Winter:
		out = append(out, "Tough baits", "Slow-moving baits")
	}

	return dedupe(out)
}

func techniques(r resolved) []string {
	var out []string

	if r.spEntry != nil {
		out = append(out, r.spEntry.Techniques...)
	}
	if r.locEntry != nil {
		if r.locEntry.Tidal {
			out = append(out, "Tide-based fishing", "Current breaks")
		}
		if r.locEntry.Structure != "" {
			out = append(out, "Structure fishing", "Drop-off presentations")
		}
	}

	if r.conditions.Weather.WindSpeedMPH > 15 {
		out = append(out, "Heavy tackle fishing", "Wind-resistant presentations")
	} else {
		out = append(out, "Light tackle fishing", "Finesse presentations")
	}

	return dedupe(out)
}

func weatherConditions(c knowledge.Conditions) []string {
	var out []string

	switch wind := c.Weather.WindSpeedMPH; {
	case wind < 10:
		out = append(out, "Light winds (excellent conditions)")
	case wind < 20:
		out = append(out, "Moderate winds (good conditions)")
	default:
		out = append(out, "Strong winds (challenging conditions)")
	}

	if c.Weather.PressureInHg > 30.2 {
		out = append(out, "High pressure (good fishing)")
	} else if c.Weather.PressureInHg < 29.8 {
		out = append(out, "Low pressure (excellent fishing)")
	}

	if c.Weather.VisibilityMiles > 8 {
		out = append(out, "Clear visibility")
	} else {
		out = append(out, "Limited visibility")
	}

	return out
}

func tips(r resolved) []string {
	var out []string

	if r.spEntry != nil && r.spEntry.Notes != "" {
		out = append(out, r.spEntry.Notes)
	}
	if r.locEntry != nil {
		out = append(out, r.locEntry.Tips...)
	}

	// Only the literal "expert" reaches the last branch; "advanced" gets no
	// experience tips.
	switch r.experience {
	case Beginner:
		out = append(out, "Start with simple techniques", "Focus on one species at a time", "Use reliable tackle")
	case Intermediate:
		out = append(out, "Experiment with different presentations", "Learn to read water conditions")
	case "expert":
		out = append(out, "Fine-tune your approach", "Experiment with advanced techniques")
	}

	if r.conditions.Water.TemperatureF < 50 {
		out = append(out, "Slow down your presentation in cold water")
	}
	if r.conditions.Tide.Current == "Outgoing" {
		out = append(out, "Focus on structure during outgoing tide")
	}

	return dedupe(out)
}

func confidence(r resolved) float64 {
	score := 0.5
	if r.spEntry != nil {
		score += 0.2
	}
	if r.locEntry != nil {
		score += 0.2
	}
	if r.conditions.Weather.WindSpeedMPH < 15 {
		score += 0.1
	}
	if r.conditions.Water.Clarity == "Good" {
		score += 0.1
	}
	// Round away float noise such as 0.7999999.
	score = math.Round(score*100) / 100
	return math.Min(score, maxConfidence)
}

func reasoning(r resolved) string {
	var b strings.Builder
	c := r.conditions

	fmt.Fprintf(&b, "Based on current Rhode Island fishing conditions (%s season): ", r.season)
	if r.spEntry != nil {
		fmt.Fprintf(&b, "Target species shows %s. ", r.spEntry.Behavior)
		if r.spEntry.Notes != "" {
			fmt.Fprintf(&b, "Local note: %s. ", r.spEntry.Notes)
		}
	}
	if r.locEntry != nil {
		fmt.Fprintf(&b, "Location characteristics: %s. ", r.locEntry.Characteristics)
	}

	fmt.Fprintf(&b, "Current conditions: %s, %s mph winds, ", c.Weather.Conditions, num(c.Weather.WindSpeedMPH))
	fmt.Fprintf(&b, "%s°F water temperature, %s tide. ", num(c.Water.TemperatureF), c.Tide.Current)

	if c.Weather.PressureInHg > 30.2 {
		b.WriteString("High pressure system typically provides good fishing conditions. ")
	} else if c.Weather.PressureInHg < 29.8 {
		b.WriteString("Low pressure system often triggers feeding activity. ")
	}

	b.WriteString("Recommendations are based on Rhode Island seasonal patterns, local knowledge, and current conditions.")
	return b.String()
}
