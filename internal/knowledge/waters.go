package knowledge

import "strings"

// freshwaterNames lists the northern Rhode Island ponds, rivers and towns.
// Anything not matching one of these is treated as coastal saltwater.
var freshwaterNames = []string{
	"lower rochambeau pond", "upper rochambeau pond", "wallum lake", "pascoag reservoir",
	"chepachet river", "blackstone river", "george washington memorial", "tucker pond", "stump pond",
	"meshanticut lake", "scituate reservoir", "johnson pond", "spring grove pond", "barden reservoir",
	"tarkiln pond", "brown pond", "white pond", "cumberland pond", "pawtuxet river", "hunt river",
	"moshassuck river", "wanskuck river", "north east pond", "south east pond", "burrillville ponds",
	"glocester ponds", "foster ponds", "scituate ponds", "west greenwich ponds", "lincoln", "cumberland",
	"burrillville", "glocester", "foster", "scituate", "johnston", "cranston", "pawtucket", "central falls",
	"woonsocket", "north providence", "north smithfield", "smithfield",
}

type Waters string

const (
	Freshwater Waters = "freshwater"
	Saltwater  Waters = "saltwater"
)

func IsFreshwater(location string) bool {
	lower := strings.ToLower(location)
	for _, name := range freshwaterNames {
		if strings.Contains(lower, name) {
			return true
		}
	}
	return false
}

func Classify(location string) Waters {
	if IsFreshwater(location) {
		return Freshwater
	}
	return Saltwater
}
