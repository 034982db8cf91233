package model

import "strings"

// Platform is a supported social network.
type Platform string

const (
	PlatformYouTube   Platform = "YouTube"
	PlatformInstagram Platform = "Instagram"
	PlatformFacebook  Platform = "Facebook"
	PlatformX         Platform = "X"
	PlatformTelegram  Platform = "Telegram"
	PlatformTikTok    Platform = "TikTok"
	PlatformTwitch    Platform = "Twitch"
)

// Platforms lists every known platform in display order.
var Platforms = []Platform{
	PlatformYouTube, PlatformInstagram, PlatformFacebook, PlatformX,
	PlatformTelegram, PlatformTikTok, PlatformTwitch,
}

// IsValid reports whether p is one of Platforms.
func (p Platform) IsValid() bool {
	for _, known := range Platforms {
		if p == known {
			return true
		}
	}
	return false
}

// Slug is the lower-cased name without spaces, used in profile URLs.
func (p Platform) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(p)), " ", "")
}

// EngagementTier is the coarse engagement level of an entity.
type EngagementTier string

const (
	EngagementLow    EngagementTier = "low"
	EngagementMedium EngagementTier = "medium"
	EngagementHigh   EngagementTier = "high"
)

func (e EngagementTier) IsValid() bool {
	return e == EngagementLow || e == EngagementMedium || e == EngagementHigh
}

// MediaAsset is metadata of one uploaded picture or video.
type MediaAsset struct {
	Name       string `json:"name" yaml:"name"`
	Size       int64  `json:"size" yaml:"size"`
	Type       string `json:"type" yaml:"type"`
	UploadDate string `json:"upload_date" yaml:"upload_date"`
}

// Entity is a monitored social-media profile of the corpus.
type Entity struct {
	ID         int            `json:"id" yaml:"id"`
	Username   string         `json:"username" yaml:"username"`
	Platform   Platform       `json:"platform" yaml:"platform"`
	Pictures   []MediaAsset   `json:"pictures" yaml:"pictures"`
	Videos     []MediaAsset   `json:"videos" yaml:"videos"`
	Hashtags   string         `json:"hashtags" yaml:"hashtags"`
	Comments   string         `json:"comments" yaml:"comments"`
	Followers  int            `json:"followers" yaml:"followers"`
	Engagement EngagementTier `json:"engagement" yaml:"engagement"`
}

// SearchText is the lower-cased text a scan query is matched against.
func (e Entity) SearchText() string {
	return strings.ToLower(e.Hashtags + " " + e.Comments + " " + e.Username)
}

// ContentText is the lower-cased hashtags and comments, without the handle.
func (e Entity) ContentText() string {
	return strings.ToLower(e.Hashtags + " " + e.Comments)
}

// HasVideos reports whether the entity uploaded at least one video.
func (e Entity) HasVideos() bool {
	return len(e.Videos) > 0
}
