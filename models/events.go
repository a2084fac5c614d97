package models

import "time"

type Event struct {
	EventID       string          `bson:"eventid" json:"eventid"`
	Title         string          `bson:"title" json:"title"`
	Slug          string          `bson:"slug" json:"slug"`
	Description   string          `bson:"description" json:"description"`
	Type          string          `bson:"type" json:"type"`
	EventDate     time.Time       `bson:"eventdate" json:"eventDate"`
	EndDate       *time.Time      `bson:"enddate,omitempty" json:"endDate,omitempty"`
	Location      Location        `bson:"location" json:"location"`
	Artists       RefList[Artist] `bson:"artists" json:"artists"`
	FeaturedImage string          `bson:"featuredimage,omitempty" json:"featuredImage,omitempty"`
	TicketInfo    TicketInfo      `bson:"ticketinfo" json:"ticketInfo"`
	Links         []Link          `bson:"links,omitempty" json:"links,omitempty"`
	Status        string          `bson:"status" json:"status"`
	Featured      bool            `bson:"featured" json:"featured"`
	CreatorID     string          `bson:"creatorid,omitempty" json:"creatorid,omitempty"`
	CreatedAt     time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `bson:"updated_at" json:"updated_at"`
}

type Location struct {
	Venue   string `bson:"venue,omitempty" json:"venue,omitempty"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
	MapLink string `bson:"maplink,omitempty" json:"mapLink,omitempty"`
}

type TicketInfo struct {
	Available  bool   `bson:"available" json:"available"`
	TicketLink string `bson:"ticketlink,omitempty" json:"ticketLink,omitempty"`
	Price      string `bson:"price,omitempty" json:"price,omitempty"`
}

type Link struct {
	Label string `bson:"label" json:"label"`
	URL   string `bson:"url" json:"url"`
}
