package advisor

import (
	"fmt"
	"strings"

	"fishguide/internal/knowledge"
)

type questionKind int

const (
	askGeneral questionKind = iota
	askTiming
	askBait
	askLocation
	askTechnique
	askGear
	askBeginner
	askWeather
)

// classifyQuestion routes on keyword families; the first family that
// matches wins.
func classifyQuestion(question string) questionKind {
	q := strings.ToLower(question)
	has := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(q, w) {
				return true
			}
		}
		return false
	}

	switch {
	case has("when", "time"):
		return askTiming
	case has("what") && has("bait", "lure"):
		return askBait
	case has("where", "location", "spot"):
		return askLocation
	case has("how", "technique", "method"):
		return askTechnique
	case has("gear", "equipment", "rod", "reel"):
		return askGear
	case has("beginner", "start", "new"):
		return askBeginner
	case has("weather", "conditions"):
		return askWeather
	default:
		return askGeneral
	}
}

func conversationalReport(r resolved) string {
	if r.experience == "" {
		r.experience = Intermediate
	}
	var b strings.Builder
	b.WriteString("Hey there! Great question about fishing in Rhode Island. ")

	switch classifyQuestion(r.scenario.Question) {
	case askTiming:
		timingAdvice(&b, r)
	case askBait:
		baitAdvice(&b, r)
	case askLocation:
		locationAdvice(&b, r)
	case askTechnique:
		techniqueAdvice(&b, r)
	case askGear:
		gearAdvice(&b, r)
	case askBeginner:
		beginnerAdvice(&b, r)
	case askWeather:
		weatherAdvice(&b, r)
	default:
		generalAdvice(&b, r)
	}

	rhodeIslandContext(&b, r)
	encouragement(&b, r)
	return b.String()
}

// isSaltwater treats every location outside the freshwater list as salt,
// including the statewide default.
func isSaltwater(r resolved) bool {
	return !knowledge.IsFreshwater(r.location)
}

func timingAdvice(b *strings.Builder, r resolved) {
	c := r.conditions
	fmt.Fprintf(b, "For %s at %s, timing is everything here in Rhode Island. ", r.species, r.location)

	if isSaltwater(r) {
		if c.Tide.Current == "Incoming" {
			b.WriteString("Right now you're looking at an incoming tide, which is absolutely perfect for most saltwater species. ")
		} else {
			b.WriteString("The outgoing tide can be great too, especially for structure fishing. ")
		}
		if r.speciesCat == knowledge.StripedBass {
			b.WriteString("Striped bass are most active during the first few hours of incoming tide, and honestly, some of the biggest fish I've seen caught were during the evening tide change. ")
		}
		fmt.Fprintf(b, "With water temp at %s°F and %s mph winds, I'd say early morning (6-8 AM) or late evening (6-8 PM) would be your best bet. ",
			num(c.Water.TemperatureF), num(c.Weather.WindSpeedMPH))
	} else {
		fmt.Fprintf(b, "For freshwater fishing at %s, the early morning and evening are definitely your prime times. ", r.location)
		if c.Water.TemperatureF < 60 {
			fmt.Fprintf(b, "Since the water is still on the cooler side at %s°F, fish might be a bit sluggish, so don't be afraid to slow down your presentation. ", num(c.Water.TemperatureF))
		} else {
			fmt.Fprintf(b, "The water temperature is looking good at %s°F, so the fish should be pretty active. ", num(c.Water.TemperatureF))
		}
	}

	if c.Weather.WindSpeedMPH > 15 {
		fmt.Fprintf(b, "Just a heads up: with %s mph winds, you might want to find some sheltered areas or consider waiting for calmer conditions. ", num(c.Weather.WindSpeedMPH))
	} else {
		fmt.Fprintf(b, "The wind conditions look pretty manageable at %s mph, so you should be good to go. ", num(c.Weather.WindSpeedMPH))
	}
}

func baitAdvice(b *strings.Builder, r resolved) {
	fmt.Fprintf(b, "For %s, I've got some solid Rhode Island-specific recommendations for you. ", r.species)

	switch r.speciesCat {
	case knowledge.StripedBass:
		b.WriteString("Striped bass here absolutely love live eels. It's like candy to them. If you can get your hands on some live bunker or mackerel, that's even better. ")
		if r.season == knowledge.Spring || r.season == knowledge.Fall {
			fmt.Fprintf(b, "During %s, the big stripers are really aggressive, so don't be shy about using larger baits. ", r.season)
		}
	case knowledge.Fluke:
		b.WriteString("Fluke fishing here is all about the bucktail jig with a squid strip or Gulp bait. The local guys swear by the \"Rhode Island fluke sandwich\": bucktail jig with a strip of squid and a Gulp swimming mullet. ")
	case knowledge.FreshwaterBass:
		b.WriteString("For bass in Rhode Island's freshwater spots, you can't go wrong with a simple worm and bobber setup, or try some soft plastic worms. ")
	case knowledge.Tautog:
		b.WriteString("Tautog here are all about the green crabs. They can't resist them. Make sure you're using fresh crabs and fishing right on the bottom near structure. ")
	}

	b.WriteString("One thing I always tell people: check with the local bait shops like Quaker Lane Bait & Tackle or Snug Harbor Marina. They'll have the freshest bait and know exactly what's working that day. ")
}

func locationAdvice(b *strings.Builder, r resolved) {
	fmt.Fprintf(b, "%s is a fantastic choice for fishing! ", r.location)

	if r.locEntry != nil {
		fmt.Fprintf(b, "This spot is known for %s. ", strings.ToLower(r.locEntry.Characteristics))
		if len(r.locEntry.Species) > 0 {
			fmt.Fprintf(b, "You'll find %s here, which is perfect for targeting %s. ", strings.Join(r.locEntry.Species, ", "), r.species)
		}
	}

	switch r.locCat {
	case knowledge.LowerRochambeauPond:
		b.WriteString("Lower Rochambeau is one of my favorite local spots: great shore access, family-friendly, and the bass fishing is consistently good. ")
	case knowledge.NarragansettBay:
		b.WriteString("Narragansett Bay is like a fishing playground. You've got everything from shallow flats to deep channels. ")
	case knowledge.BlockIsland:
		b.WriteString("Block Island is world-class fishing, but you'll need to plan ahead for the ferry and check the weather. ")
	}

	if r.conditions.Water.Clarity == "Good" {
		b.WriteString("The water clarity is looking good today, so fish should be able to see your presentations clearly. ")
	}
}

func techniqueAdvice(b *strings.Builder, r resolved) {
	b.WriteString("Great question about techniques! ")

	switch r.experience {
	case Beginner:
		b.WriteString("Since you're getting started, I'd recommend keeping it simple and effective. ")
		if r.speciesCat == knowledge.FreshwaterBass {
			b.WriteString("For bass, try a simple Texas rig with a plastic worm. Cast it out, let it sink, and slowly reel it back. ")
		}
	case Intermediate:
		b.WriteString("You've got some experience under your belt, so let's talk about some more advanced approaches. ")
	default:
		b.WriteString("With your experience level, you can really fine-tune your approach. ")
	}

	if r.speciesCat == knowledge.StripedBass {
		b.WriteString("For stripers, live lining is absolutely deadly here in Rhode Island. Hook a live bunker or eel and let it swim naturally with the current. ")
	}
	if isSaltwater(r) {
		b.WriteString("Since you're fishing saltwater, pay attention to the tides. They're crucial for success here. ")
	}
}

func gearAdvice(b *strings.Builder, r resolved) {
	fmt.Fprintf(b, "Let me give you the straight scoop on gear for %s at %s. ", r.species, r.location)

	if isSaltwater(r) {
		b.WriteString("For saltwater fishing here, you need corrosion-resistant gear. I'd recommend a 7-8 foot medium-heavy rod with a 4000-6000 size reel. ")
		if r.speciesCat == knowledge.StripedBass {
			b.WriteString("For stripers specifically, you'll want 20-30lb braided line with a 40-60lb leader. These fish are strong and will test your gear. ")
		}
	} else {
		b.WriteString("For freshwater fishing, a 6'6\" to 7' medium spinning rod with a 2500-3000 size reel will handle most situations. ")
	}

	b.WriteString("One piece of advice: don't skimp on your line. Good braided line makes a huge difference, especially when you're dealing with Rhode Island's structure and current. ")
}

func beginnerAdvice(b *strings.Builder, r resolved) {
	b.WriteString("Welcome to Rhode Island fishing! You've picked a great place to start. ")
	b.WriteString("First things first: make sure you have a valid Rhode Island fishing license. You can get one online or at most bait shops. ")
	if r.locCat == knowledge.LowerRochambeauPond {
		b.WriteString("Lower Rochambeau Pond is perfect for beginners, with easy access, good parking, and bass fishing that is usually pretty consistent. ")
	}
	b.WriteString("Start simple: a basic spinning combo, some worms or minnows, and patience. Don't worry about fancy lures at first. ")
	b.WriteString("The local bait shops are incredibly helpful. They'll set you up with exactly what you need and give you current fishing reports. ")
}

func weatherAssessment(c knowledge.Conditions) string {
	switch {
	case c.Weather.WindSpeedMPH < 10 && c.Weather.PressureInHg > 30.0:
		return "excellent for fishing"
	case c.Weather.WindSpeedMPH < 15:
		return "pretty good for fishing"
	default:
		return "challenging but still fishable"
	}
}

func weatherAdvice(b *strings.Builder, r resolved) {
	c := r.conditions
	fmt.Fprintf(b, "The weather conditions right now are looking %s. ", weatherAssessment(c))
	fmt.Fprintf(b, "With %s°F air temperature and %s mph winds, ", num(c.Weather.TemperatureF), num(c.Weather.WindSpeedMPH))

	if c.Weather.PressureInHg > 30.2 {
		b.WriteString("the high pressure system should make the fish pretty active. ")
	} else if c.Weather.PressureInHg < 29.8 {
		b.WriteString("the low pressure might actually trigger some feeding activity, since fish love a dropping barometer. ")
	} else {
		b.WriteString("the steady pressure should keep the fish on their usual patterns. ")
	}

	switch wt := c.Water.TemperatureF; {
	case wt < 50:
		fmt.Fprintf(b, "The water is still pretty cold at %s°F, so slow down your presentations. ", num(wt))
	case wt > 70:
		fmt.Fprintf(b, "The water is getting warm at %s°F, so fish might be seeking deeper, cooler areas. ", num(wt))
	default:
		fmt.Fprintf(b, "The water temperature at %s°F is in a good range for most species. ", num(wt))
	}
}

func generalAdvice(b *strings.Builder, r resolved) {
	c := r.conditions
	fmt.Fprintf(b, "You're asking about %s at %s. That's a great combination! ", r.species, r.location)
	b.WriteString("Here's what I know about fishing this area: ")

	switch r.speciesCat {
	case knowledge.StripedBass:
		b.WriteString("Striped bass are Rhode Island's crown jewel. They're migratory, so timing is crucial. ")
	case knowledge.FreshwaterBass:
		b.WriteString("Bass fishing here is excellent, especially in the freshwater ponds and rivers. ")
	}

	fmt.Fprintf(b, "The current conditions show %s with %s mph winds and %s°F water temperature. ",
		c.Weather.Conditions, num(c.Weather.WindSpeedMPH), num(c.Water.TemperatureF))
}

func rhodeIslandContext(b *strings.Builder, r resolved) {
	b.WriteString("\n\nOne thing I love about Rhode Island fishing is the diversity: you can fish for stripers in the morning and bass in the afternoon, all within a short drive. ")
	b.WriteString("The local fishing community here is fantastic, and everyone's willing to share tips and help each other out. ")
	if r.conditions.Tide.Current != "" {
		b.WriteString("Don't forget to check the tide charts. They're absolutely crucial for saltwater success here. ")
	}
	b.WriteString("Also, make sure you're up to date on Rhode Island's fishing regulations. The RI DEM website has all the current info, and it changes seasonally. ")
}

func encouragement(b *strings.Builder, r resolved) {
	fmt.Fprintf(b, "\n\nI'm confident you'll do well at %s targeting %s. ", r.location, r.species)
	if r.experience == Beginner {
		b.WriteString("Don't get discouraged if you don't catch fish right away. Fishing is a learning process, and every trip teaches you something new. ")
	} else {
		b.WriteString("With your experience level, you should be able to adapt to the conditions and find success. ")
	}
	b.WriteString("\n\nA few final tips: Check the local bait shops for current reports, join some Rhode Island fishing groups for real-time updates, and always practice good catch-and-release when possible. ")
	b.WriteString("\n\nGood luck out there, and tight lines! Feel free to ask if you have any other questions about Rhode Island fishing. ")
}
