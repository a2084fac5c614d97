package models

import "time"

type Team struct {
	TeamID      string      `bson:"teamid" json:"teamid"`
	Name        string      `bson:"name" json:"name"`
	Slug        string      `bson:"slug" json:"slug"`
	Description string      `bson:"description,omitempty" json:"description,omitempty"`
	Color       string      `bson:"color" json:"color"`
	Logo        string      `bson:"logo,omitempty" json:"logo,omitempty"`
	CoverImage  string      `bson:"coverimage,omitempty" json:"coverImage,omitempty"`
	Captain     Ref[Artist] `bson:"captain" json:"captain"`
	Motto       string      `bson:"motto,omitempty" json:"motto,omitempty"`
	Stats       TeamStats   `bson:"stats" json:"stats"`
	SocialMedia SocialMedia `bson:"socialmedia" json:"socialMedia"`
	Hashtags    []Hashtag   `bson:"hashtags,omitempty" json:"hashtags,omitempty"`
	Active      bool        `bson:"active" json:"active"`
	Featured    bool        `bson:"featured" json:"featured"`
	CreatorID   string      `bson:"creatorid,omitempty" json:"creatorid,omitempty"`
	CreatedAt   time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `bson:"updated_at" json:"updated_at"`
}

type TeamStats struct {
	TotalVotes   int64 `bson:"totalvotes" json:"totalVotes"`
	Wins         int64 `bson:"wins" json:"wins"`
	Performances int64 `bson:"performances" json:"performances"`
}
