package score

// commonWords are short dictionary words that make a stem easier to recall
// and that mark plausible portmanteau halves.
var commonWords = map[string]struct{}{
	"ace": {}, "air": {}, "apt": {}, "arc": {}, "art": {},
	"base": {}, "beam": {}, "bit": {}, "blue": {}, "bold": {}, "box": {},
	"cast": {}, "chat": {}, "city": {}, "cloud": {}, "code": {}, "core": {},
	"craft": {}, "dash": {}, "data": {}, "day": {}, "deck": {}, "dot": {},
	"easy": {}, "echo": {}, "edge": {}, "fast": {}, "find": {}, "fire": {},
	"flow": {}, "fly": {}, "forge": {}, "form": {}, "fox": {}, "fresh": {},
	"go": {}, "grid": {}, "grow": {}, "hive": {}, "home": {}, "hub": {},
	"jet": {}, "key": {}, "kit": {}, "lab": {}, "leaf": {}, "lens": {},
	"life": {}, "line": {}, "link": {}, "list": {}, "live": {}, "loop": {},
	"mail": {}, "map": {}, "mark": {}, "mind": {}, "mint": {}, "name": {},
	"nest": {}, "net": {}, "new": {}, "next": {}, "node": {}, "note": {},
	"open": {}, "page": {}, "pay": {}, "peak": {}, "pick": {}, "pin": {},
	"plan": {}, "play": {}, "plus": {}, "point": {}, "post": {}, "pulse": {},
	"push": {}, "quick": {}, "rise": {}, "rock": {}, "run": {}, "sale": {},
	"scan": {}, "sea": {}, "seed": {}, "send": {}, "shop": {}, "sky": {},
	"smart": {}, "snap": {}, "spark": {}, "spot": {}, "star": {}, "stack": {},
	"stem": {}, "store": {}, "swift": {}, "sync": {}, "task": {}, "team": {},
	"tide": {}, "time": {}, "tool": {}, "top": {}, "track": {}, "true": {},
	"view": {}, "vita": {}, "wave": {}, "way": {}, "web": {}, "wise": {},
	"word": {}, "work": {}, "world": {}, "zen": {}, "zip": {}, "zoom": {},
}

// topicCluster groups prompt and stem vocabulary by theme. Clusters are an
// ordered slice so scoring stays deterministic.
type topicCluster struct {
	name  string
	words []string
}

var topicClusters = []topicCluster{
	{
		name: "tech",
		words: []string{
			"tech", "app", "software", "code", "digital", "data", "cloud",
			"cyber", "ai", "robot", "dev", "api", "platform", "saas", "bot",
			"net", "web", "byte", "stack", "compute",
		},
	},
	{
		name: "business",
		words: []string{
			"business", "market", "startup", "shop", "store", "trade",
			"commerce", "finance", "money", "pay", "invest", "venture",
			"brand", "agency", "consulting", "sales", "deal",
		},
	},
	{
		name: "creative",
		words: []string{
			"design", "art", "creative", "studio", "media", "photo", "video",
			"music", "craft", "story", "write", "draw", "style", "ink",
			"pixel", "canvas",
		},
	},
	{
		name: "social",
		words: []string{
			"social", "community", "connect", "share", "friend", "chat",
			"meet", "group", "network", "people", "team", "together", "talk",
			"tribe",
		},
	},
	{
		name: "education",
		words: []string{
			"learn", "teach", "school", "course", "study", "education",
			"academy", "tutor", "class", "skill", "train", "mentor", "know",
		},
	},
}

func isCommonWord(s string) bool {
	_, ok := commonWords[s]
	return ok
}

// clusterFor returns the first topic cluster containing any of the words,
// or "" when none matches.
func clusterFor(words []string) string {
	for _, cluster := range topicClusters {
		for _, cw := range cluster.words {
			for _, w := range words {
				if w == cw {
					return cluster.name
				}
			}
		}
	}
	return ""
}
