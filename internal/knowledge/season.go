package knowledge

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Season string

const (
	Spring Season = "spring"
	Summer Season = "summer"
	Fall   Season = "fall"
	Winter Season = "winter"
)

var Seasons = []Season{Spring, Summer, Fall, Winter}

// SeasonOf maps a calendar month onto a fishing season. December through
// February is winter.
func SeasonOf(t time.Time) Season {
	switch m := t.Month(); {
	case m >= time.March && m <= time.May:
		return Spring
	case m >= time.June && m <= time.August:
		return Summer
	case m >= time.September && m <= time.November:
		return Fall
	default:
		return Winter
	}
}

func ParseSeason(raw string) (Season, error) {
	for _, s := range Seasons {
		if string(s) == raw {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown season: %q", raw)
}

func (s Season) Title() string {
	return cases.Title(language.English).String(string(s))
}
