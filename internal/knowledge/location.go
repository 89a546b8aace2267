package knowledge

import (
	"fmt"
	"strings"
)

type Location int

const (
	OtherLocation Location = iota
	NarragansettBay
	BlockIsland
	LowerRochambeauPond
)

var locationKeys = map[Location]string{
	OtherLocation:       "other",
	NarragansettBay:     "narragansett_bay",
	BlockIsland:         "block_island",
	LowerRochambeauPond: "lower_rochambeau_pond",
}

var locationMatchers = []struct {
	needle   string
	location Location
}{
	{"narragansett bay", NarragansettBay},
	{"block island", BlockIsland},
	{"lower rochambeau", LowerRochambeauPond},
}

func (l Location) String() string {
	if key, ok := locationKeys[l]; ok {
		return key
	}
	return fmt.Sprintf("location(%d)", int(l))
}

func (l Location) Known() bool {
	return l != OtherLocation
}

func ParseLocation(raw string) Location {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if lower == "" {
		return OtherLocation
	}
	for _, m := range locationMatchers {
		if strings.Contains(lower, m.needle) {
			return m.location
		}
	}
	return OtherLocation
}

func locationFromKey(key string) (Location, error) {
	for loc, k := range locationKeys {
		if k == key && loc != OtherLocation {
			return loc, nil
		}
	}
	return OtherLocation, fmt.Errorf("unknown location key: %q", key)
}
