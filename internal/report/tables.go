package report

import "fishguide/internal/knowledge"

type watersTables struct {
	water      string
	activity   map[knowledge.Season]string
	techniques string
	gear       string
	tips       string
	tide       string
}

func tablesFor(w knowledge.Waters) watersTables {
	if w == knowledge.Freshwater {
		return freshwater
	}
	return saltwater
}

var seasonalConditions = map[knowledge.Season]string{
	knowledge.Spring: "- Water temperature: 45-55°F\n- Weather: Variable with warming trends\n- Barometric pressure: Rising\n- Wind: Light to moderate",
	knowledge.Summer: "- Water temperature: 65-75°F\n- Weather: Warm and humid\n- Barometric pressure: Stable\n- Wind: Light sea breezes",
	knowledge.Fall:   "- Water temperature: 55-65°F\n- Weather: Cool and crisp\n- Barometric pressure: Falling\n- Wind: Variable with storms",
	knowledge.Winter: "- Water temperature: 35-45°F\n- Weather: Cold and clear\n- Barometric pressure: High and stable\n- Wind: Light to moderate",
}

var freshwater = watersTables{
	water: "- Freshwater conditions\n- Clear to slightly stained\n- Normal water levels\n- Good oxygen content\n- Minimal current",
	activity: map[knowledge.Season]string{
		knowledge.Spring: "- Largemouth Bass: Excellent pre-spawn activity\n- Smallmouth Bass: Active in deeper water\n- Chain Pickerel: Aggressive feeding\n- Trout: Stocked fish very active\n- Panfish: Beginning to spawn",
		knowledge.Summer: "- Largemouth Bass: Good early morning action\n- Smallmouth Bass: Deep water fishing\n- Chain Pickerel: Steady action\n- Trout: Seek deeper, cooler water\n- Panfish: Excellent numbers",
		knowledge.Fall:   "- Largemouth Bass: Feeding heavily for winter\n- Smallmouth Bass: Active in shallow water\n- Chain Pickerel: Aggressive fall feeding\n- Trout: Good action in cooler water\n- Panfish: Still active",
		knowledge.Winter: "- Largemouth Bass: Slow, deep water fishing\n- Smallmouth Bass: Very slow activity\n- Chain Pickerel: Occasional action\n- Trout: Limited activity\n- Panfish: Minimal activity",
	},
	techniques: "- Casting plastic worms and jigs for bass\n- Drift fishing with live bait for trout\n- Still fishing with worms for panfish\n- Topwater fishing during early morning\n- Jigging for pickerel",
	gear:       "- 6-7' medium action spinning rod\n- 10-15lb monofilament or braided line\n- Assorted hooks and sinkers\n- Live bait bucket\n- Landing net",
	tips:       "- Arrive early for best parking at popular spots\n- Check local regulations for specific ponds\n- Many ponds have no motor restrictions\n- Bring bug spray during summer months\n- Respect private property boundaries",
	tide:       "Freshwater - no tidal influence. Focus on weather and time of day.",
}

var saltwater = watersTables{
	water: "- Saltwater conditions\n- Clear to moderately stained\n- Normal tidal flow\n- Good oxygen content\n- Strong tidal influence",
	activity: map[knowledge.Season]string{
		knowledge.Spring: "- Striped Bass: Spring migration begins\n- Fluke: Season opens in May\n- Bluefish: Arriving with warm water\n- Tautog: Still active from winter\n- Scup: Excellent numbers",
		knowledge.Summer: "- Striped Bass: Peak summer fishing\n- Fluke: Excellent action\n- Bluefish: Aggressive feeding\n- Tautog: Slower activity\n- Scup: Very good numbers",
		knowledge.Fall:   "- Striped Bass: Fall migration peak\n- Fluke: Good action continues\n- Bluefish: Excellent fishing\n- Tautog: Becoming more active\n- Scup: Still good numbers",
		knowledge.Winter: "- Striped Bass: Limited activity\n- Fluke: Season closed\n- Bluefish: Gone south\n- Tautog: Prime winter fishing\n- Scup: Limited activity",
	},
	techniques: "- Live lining bunker for stripers\n- Drifting bucktail jigs for fluke\n- Casting topwater plugs for bluefish\n- Bottom fishing with crabs for tautog\n- Sabiki rigs for scup",
	gear:       "- 7-8' medium-heavy spinning rod\n- 20-30lb braided line with 40-60lb leader\n- Circle hooks for live bait\n- Bucktail jigs 1-4oz\n- Live bait rigs",
	tips:       "- Check tide charts before heading out\n- Early morning and late evening are prime times\n- Bring multiple tackle options\n- Be aware of boat traffic in busy areas\n- Check weather and sea conditions",
	tide:       "Check local tide charts. Incoming and outgoing tides both productive.",
}

const regulationsReminder = "- Always check current RI DEM regulations\n- Respect size and bag limits\n- Practice catch and release when possible\n- Have valid fishing license\n- Follow local area restrictions"

var weatherOutlook = map[knowledge.Season]string{
	knowledge.Spring: "Variable weather with warming trends. Watch for sudden changes.",
	knowledge.Summer: "Stable warm weather. Early morning and evening best for comfort.",
	knowledge.Fall:   "Cool, crisp weather. Can be unpredictable with storms.",
	knowledge.Winter: "Cold but stable weather. Dress warmly and check conditions.",
}

var forecast = map[knowledge.Season]string{
	knowledge.Spring: "Excellent fishing conditions as fish become more active with warming water.",
	knowledge.Summer: "Good fishing with early morning and evening being most productive.",
	knowledge.Fall:   "Prime fishing season as fish feed heavily before winter.",
	knowledge.Winter: "Challenging but rewarding fishing for dedicated anglers.",
}
