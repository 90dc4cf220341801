package platform

import "strings"

// Platform describes a supported media source.
type Platform struct {
	Key        string
	Name       string
	Icon       string
	MaxQuality string
}

// Platforms is the fixed, ordered table of supported sources. Order
// matters: Classify returns the first key that matches.
var Platforms = []Platform{
	{Key: "youtube", Name: "YouTube", Icon: "🎬", MaxQuality: "4k"},
	{Key: "tiktok", Name: "TikTok", Icon: "🕺", MaxQuality: "1080p"},
	{Key: "instagram", Name: "Instagram", Icon: "📸", MaxQuality: "1080p"},
	{Key: "twitter", Name: "Twitter", Icon: "🐦", MaxQuality: "720p"},
}

// Classify maps a submitted link to a platform by case-insensitive
// substring match on the platform key. It does not validate the link
// in any other way.
func Classify(url string) (Platform, bool) {
	lower := strings.ToLower(url)
	for _, p := range Platforms {
		if strings.Contains(lower, p.Key) {
			return p, true
		}
	}
	return Platform{}, false
}

// ByName finds a platform by its display name.
func ByName(name string) (Platform, bool) {
	for _, p := range Platforms {
		if p.Name == name {
			return p, true
		}
	}
	return Platform{}, false
}
