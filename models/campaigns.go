package models

import "time"

type Campaign struct {
	CampaignID   string           `bson:"campaignid" json:"campaignid"`
	Title        string           `bson:"title" json:"title"`
	Slug         string           `bson:"slug" json:"slug"`
	Description  string           `bson:"description" json:"description"`
	Type         string           `bson:"type" json:"type"`
	Artists      RefList[Artist]  `bson:"artists" json:"artists"`
	StartDate    time.Time        `bson:"startdate" json:"startDate"`
	EndDate      time.Time        `bson:"enddate" json:"endDate"`
	Active       *bool            `bson:"active,omitempty" json:"active,omitempty"`
	Image        string           `bson:"image,omitempty" json:"image,omitempty"`
	Hashtags     []Hashtag        `bson:"hashtags,omitempty" json:"hashtags,omitempty"`
	Goals        []Goal           `bson:"goals,omitempty" json:"goals,omitempty"`
	Instructions string           `bson:"instructions,omitempty" json:"instructions,omitempty"`
	Links        []Link           `bson:"links,omitempty" json:"links,omitempty"`
	Updates      []CampaignUpdate `bson:"updates,omitempty" json:"updates,omitempty"`
	Featured     bool             `bson:"featured" json:"featured"`
	CreatorID    string           `bson:"creatorid,omitempty" json:"creatorid,omitempty"`
	CreatedAt    time.Time        `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time        `bson:"updated_at" json:"updated_at"`
}

// Active above is a manual override only; nil means the effective state
// follows the start/end window. See agg.EffectiveActive.

type Goal struct {
	Description string `bson:"description" json:"description"`
	Target      int64  `bson:"target" json:"target"`
	Current     int64  `bson:"current" json:"current"`
	Unit        string `bson:"unit,omitempty" json:"unit,omitempty"`
	Achieved    bool   `bson:"achieved" json:"achieved"`
}

type CampaignUpdate struct {
	Date    time.Time `bson:"date" json:"date"`
	Message string    `bson:"message" json:"message"`
}
