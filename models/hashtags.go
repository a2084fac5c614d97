package models

import "time"

// Hashtag is an official tag attached to an artist, team or campaign.
type Hashtag struct {
	Tag      string `bson:"tag" json:"tag"`
	Platform string `bson:"platform,omitempty" json:"platform,omitempty"`
}

// HashtagMetric is one tracked hashtag on one platform.
type HashtagMetric struct {
	HashtagID       string         `bson:"hashtagid" json:"hashtagid"`
	Hashtag         string         `bson:"hashtag" json:"hashtag"`
	Platform        string         `bson:"platform" json:"platform"`
	Artist          Ref[Artist]    `bson:"relatedartist" json:"relatedArtist"`
	Campaign        Ref[Campaign]  `bson:"relatedcampaign" json:"relatedCampaign"`
	MentionCount    int64          `bson:"mentioncount" json:"mentionCount"`
	Metrics         HashtagMetrics `bson:"metrics" json:"metrics"`
	LastUpdated     time.Time      `bson:"lastupdated" json:"lastUpdated"`
	TrackingEnabled bool           `bson:"trackingenabled" json:"trackingEnabled"`
}

type HashtagMetrics struct {
	Daily             int64 `bson:"daily" json:"daily"`
	Weekly            int64 `bson:"weekly" json:"weekly"`
	Monthly           int64 `bson:"monthly" json:"monthly"`
	TotalEngagement   int64 `bson:"totalengagement" json:"totalEngagement"`
	AverageEngagement int64 `bson:"averageengagement" json:"averageEngagement"`
	Trending          bool  `bson:"trending" json:"trending"`
}
