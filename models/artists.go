package models

import "time"

type Artist struct {
	ArtistID      string        `bson:"artistid" json:"artistid"`
	Name          string        `bson:"name" json:"name"`
	StageName     string        `bson:"stagename,omitempty" json:"stageName,omitempty"`
	Slug          string        `bson:"slug" json:"slug"`
	ProfileImage  string        `bson:"profileimage" json:"profileImage"`
	CoverImage    string        `bson:"coverimage,omitempty" json:"coverImage,omitempty"`
	Bio           string        `bson:"bio,omitempty" json:"bio,omitempty"`
	BirthDate     *time.Time    `bson:"birthdate,omitempty" json:"birthDate,omitempty"`
	Teams         RefList[Team] `bson:"teams" json:"teams"`
	IsTeamCaptain bool          `bson:"isteamcaptain" json:"isTeamCaptain"`
	Status        string        `bson:"status" json:"status"`
	Profession    []string      `bson:"profession,omitempty" json:"profession,omitempty"`
	Achievements  []Achievement `bson:"achievements,omitempty" json:"achievements,omitempty"`
	SocialMedia   SocialMedia   `bson:"socialmedia" json:"socialMedia"`
	Hashtags      []Hashtag     `bson:"hashtags,omitempty" json:"hashtags,omitempty"`
	Stats         ArtistStats   `bson:"stats" json:"stats"`
	Gallery       []GalleryItem `bson:"gallery,omitempty" json:"gallery,omitempty"`
	Videos        []Video       `bson:"videos,omitempty" json:"videos,omitempty"`
	Featured      bool          `bson:"featured" json:"featured"`
	CreatorID     string        `bson:"creatorid,omitempty" json:"creatorid,omitempty"`
	CreatedAt     time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `bson:"updated_at" json:"updated_at"`
}

type Achievement struct {
	Title       string `bson:"title" json:"title"`
	Year        int    `bson:"year,omitempty" json:"year,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// ArtistStats are stored counters. All default to zero and are never
// negative; Ranking is absent until the show publishes one.
type ArtistStats struct {
	TotalVotes       int64 `bson:"totalvotes" json:"totalVotes"`
	Followers        int64 `bson:"followers" json:"followers"`
	HashtagMentions  int64 `bson:"hashtagmentions" json:"hashtagMentions"`
	PerformanceCount int64 `bson:"performancecount" json:"performanceCount"`
	Ranking          *int  `bson:"ranking,omitempty" json:"ranking,omitempty"`
}

type GalleryItem struct {
	Image   string     `bson:"image" json:"image"`
	Caption string     `bson:"caption,omitempty" json:"caption,omitempty"`
	Date    *time.Time `bson:"date,omitempty" json:"date,omitempty"`
}

type Video struct {
	Title           string     `bson:"title" json:"title"`
	URL             string     `bson:"url" json:"url"`
	Thumbnail       string     `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	PerformanceDate *time.Time `bson:"performancedate,omitempty" json:"performanceDate,omitempty"`
	Description     string     `bson:"description,omitempty" json:"description,omitempty"`
}
