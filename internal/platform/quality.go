package platform

// QualityOption is one entry of the quality menu.
type QualityOption struct {
	Token string
	Label string
	Emoji string
	VIP   bool
}

// QualityOptions is the fixed, ordered quality menu. 1080p and 4k are
// reserved for VIP accounts.
var QualityOptions = []QualityOption{
	{Token: "480p", Label: "Medium quality", Emoji: "🟢", VIP: false},
	{Token: "720p", Label: "High quality", Emoji: "🔵", VIP: false},
	{Token: "1080p", Label: "Full HD", Emoji: "🟣", VIP: true},
	{Token: "4k", Label: "Ultra HD", Emoji: "⚡", VIP: true},
	{Token: "mp3", Label: "Convert to MP3", Emoji: "🎵", VIP: false},
}

// qualityRank maps quality tokens to pixel heights for comparison.
// mp3 ranks zero so audio is always offered.
var qualityRank = map[string]int{
	"480p":  480,
	"720p":  720,
	"1080p": 1080,
	"4k":    2160,
	"mp3":   0,
}

// KnownQuality reports whether token is one of the menu tokens.
func KnownQuality(token string) bool {
	for _, q := range QualityOptions {
		if q.Token == token {
			return true
		}
	}
	return false
}

// AllowedQuality reports whether the quality token is offered to the
// user on the given platform, applying the same filter as MenuFor.
func AllowedQuality(p Platform, token string, isVIP bool) bool {
	for _, q := range MenuFor(p, isVIP) {
		if q.Token == token {
			return true
		}
	}
	return false
}

// MenuFor returns the quality options available to a user on the given
// platform: VIP-only options are hidden for free accounts and options
// above the platform's maximum quality are hidden for everyone.
func MenuFor(p Platform, isVIP bool) []QualityOption {
	maxRank := qualityRank[p.MaxQuality]

	var options []QualityOption
	for _, q := range QualityOptions {
		if q.VIP && !isVIP {
			continue
		}
		if qualityRank[q.Token] > maxRank {
			continue
		}
		options = append(options, q)
	}
	return options
}
