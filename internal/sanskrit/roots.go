package sanskrit

// VerbRoot is one dhatu entry with its gloss.
type VerbRoot struct {
	Root    string
	Meaning string
}

// verbRoots lists the common Rig Vedic dhatus in their fixed scan order. The
// order matters: the triple extractor anchors on a token's first matched
// root.
var verbRoots = []VerbRoot{
	{"गम्", "to go, move"},
	{"अस्", "to be, exist"},
	{"भू", "to become, be"},
	{"कृ", "to do, make"},
	{"दा", "to give"},
	{"यज्", "to sacrifice, worship"},
	{"स्तु", "to praise"},
	{"गै", "to sing"},
	{"वच्", "to speak"},
	{"जि", "to conquer, win"},
	{"इ", "to go"},
	{"हन्", "to strike, kill"},
	{"पा", "to protect"},
	{"धा", "to place, hold"},
	{"इड्", "to praise, invoke"},
}

// Default verb roots used by the fallback rules in the triple extractor.
const (
	RootPraise = "स्तु" // fallback when a praise/invoke substring is present
	RootBe     = "अस्" // final fallback: "to be"
)

// praiseMarkers are the substrings that trigger the praise fallback when no
// token matched a verb root directly.
var praiseMarkers = []string{"इड्", "स्तु", "यज्", "गै"}

// VerbRoots returns the dhatu table in scan order.
func VerbRoots() []VerbRoot {
	return verbRoots
}

// RootGloss returns the gloss for a root, empty when the root is not in the
// table.
func RootGloss(root string) string {
	for _, vr := range verbRoots {
		if vr.Root == root {
			return vr.Meaning
		}
	}
	return ""
}
