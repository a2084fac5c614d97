package models

// Closed enum values. Write handlers reject anything outside these sets.

var ArtistStatuses = []string{"active", "eliminated", "winner", "finalist", "alumni"}

var Professions = []string{"singer", "actor", "dancer", "comedian", "tv-host", "model", "musician", "other"}

var TeamColors = []string{"red", "blue", "green", "purple", "orange", "yellow", "pink", "teal"}

var EventTypes = []string{"concert", "fan-meeting", "tv-appearance", "award-show", "interview", "charity", "other"}

var EventStatuses = []string{"upcoming", "ongoing", "completed", "cancelled"}

var CampaignTypes = []string{"voting", "hashtag", "charity", "streaming", "social-media", "fan-project"}

var NewsCategories = []string{"show-updates", "artist-news", "behind-scenes", "fan-stories", "interviews", "announcements"}

var NewsStatuses = []string{"draft", "published", "archived"}

var Platforms = []string{"instagram", "tiktok", "twitter", "facebook"}

var UserRoles = []string{"admin", "editor", "moderator"}

func ValidEnum(values []string, v string) bool {
	for _, val := range values {
		if val == v {
			return true
		}
	}
	return false
}

// Finite presentation maps. Every lookup has a required fallback so an
// unmapped value can never render as an empty class or label.

var teamColorClasses = map[string]string{
	"red":    "from-red-500 to-red-600",
	"blue":   "from-blue-500 to-blue-600",
	"green":  "from-green-500 to-green-600",
	"purple": "from-purple-500 to-purple-600",
	"orange": "from-orange-500 to-orange-600",
	"yellow": "from-yellow-500 to-yellow-600",
	"pink":   "from-pink-500 to-pink-600",
	"teal":   "from-teal-500 to-teal-600",
}

const defaultTeamColorClass = "from-primary to-accent"

func TeamColorClass(color string) string {
	if c, ok := teamColorClasses[color]; ok {
		return c
	}
	return defaultTeamColorClass
}

var platformLabels = map[string]string{
	"instagram": "Instagram",
	"tiktok":    "TikTok",
	"twitter":   "Twitter/X",
	"facebook":  "Facebook",
	"all":       "All Platforms",
}

func PlatformLabel(platform string) string {
	if l, ok := platformLabels[platform]; ok {
		return l
	}
	return "Other"
}

var campaignTypeLabels = map[string]string{
	"voting":       "Voting Campaign",
	"hashtag":      "Hashtag Challenge",
	"charity":      "Charity/Fundraising",
	"streaming":    "Streaming Goal",
	"social-media": "Social Media Drive",
	"fan-project":  "Fan Project",
}

func CampaignTypeLabel(t string) string {
	if l, ok := campaignTypeLabels[t]; ok {
		return l
	}
	return "Campaign"
}
