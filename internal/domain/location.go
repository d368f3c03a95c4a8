package domain

// Locations is the fixed set of site codes tickets can be assigned to.
// An empty location is a valid "unset" value; the core does not reject
// unknown codes, the set exists for presentation pick-lists.
var Locations = []string{
	"UHE SOBRADINHO",
	"MEMORIAL",
	"CRESP",
	"SE SOB",
	"SE JGR",
	"SE JZD",
	"SE JZT",
	"SE SNB",
	"SE CND",
	"SE CFO",
	"SE OUR",
	"SE BMC",
	"SE IRE",
	"SE MPD",
	"SE IGD",
	"SE IGT",
	"SE BRA",
	"SE BRD",
	"SE TBV",
	"SE BJS",
	"SE BJD",
	"SE PND",
	"SE GPX",
	"SE FUT",
}

// IsKnownLocation reports whether loc is one of the fixed site codes.
func IsKnownLocation(loc string) bool {
	for _, known := range Locations {
		if loc == known {
			return true
		}
	}
	return false
}
