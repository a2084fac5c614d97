package models

import "time"

type News struct {
	NewsID        string          `bson:"newsid" json:"newsid"`
	Title         string          `bson:"title" json:"title"`
	Slug          string          `bson:"slug" json:"slug"`
	Excerpt       string          `bson:"excerpt" json:"excerpt"`
	Content       string          `bson:"content" json:"content"`
	Category      string          `bson:"category" json:"category"`
	FeaturedImage string          `bson:"featuredimage" json:"featuredImage"`
	Artists       RefList[Artist] `bson:"relatedartists" json:"relatedArtists"`
	Events        RefList[Event]  `bson:"relatedevents" json:"relatedEvents"`
	Tags          []string        `bson:"tags,omitempty" json:"tags,omitempty"`
	Author        string          `bson:"author" json:"author"`
	PublishedDate time.Time       `bson:"publisheddate" json:"publishedDate"`
	Featured      bool            `bson:"featured" json:"featured"`
	Status        string          `bson:"status" json:"status"`
	CreatorID     string          `bson:"creatorid,omitempty" json:"creatorid,omitempty"`
	CreatedAt     time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `bson:"updated_at" json:"updated_at"`
}
