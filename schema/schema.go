// Package schema is the registry of queryable collections: which fields
// a query may filter or sort on, where they live in storage, and which
// mongo collection backs each entity type. Unknown collections or fields
// are configuration errors and fail loudly at the boundary.
package schema

import (
	"context"
	"errors"
	"fmt"

	"fanhub/db"
	"fanhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrUnknownCollection = errors.New("unknown collection")
	ErrUnknownField      = errors.New("unknown field")
)

type FieldKind int

const (
	// Scalar fields support equality filters.
	Scalar FieldKind = iota
	// List fields hold reference collections and support containment.
	List
	// Virtual fields are derived; the query layer expands them.
	Virtual
)

type FieldSpec struct {
	Path     string
	Kind     FieldKind
	Sortable bool
	Enum     []string
}

type Collection struct {
	Name   string
	Key    string
	Fields map[string]FieldSpec
}

var registry = map[string]*Collection{
	"artists": {
		Name: "artists",
		Key:  "artistid",
		Fields: map[string]FieldSpec{
			"artistid":      {Path: "artistid", Kind: Scalar},
			"slug":          {Path: "slug", Kind: Scalar},
			"name":          {Path: "name", Kind: Scalar, Sortable: true},
			"status":        {Path: "status", Kind: Scalar, Enum: models.ArtistStatuses},
			"featured":      {Path: "featured", Kind: Scalar},
			"isTeamCaptain": {Path: "isteamcaptain", Kind: Scalar},
			"teams":         {Path: "teams", Kind: List},
			"created_at":    {Path: "created_at", Kind: Scalar, Sortable: true},
		},
	},
	"teams": {
		Name: "teams",
		Key:  "teamid",
		Fields: map[string]FieldSpec{
			"teamid":     {Path: "teamid", Kind: Scalar},
			"slug":       {Path: "slug", Kind: Scalar},
			"name":       {Path: "name", Kind: Scalar, Sortable: true},
			"color":      {Path: "color", Kind: Scalar, Enum: models.TeamColors},
			"active":     {Path: "active", Kind: Scalar},
			"featured":   {Path: "featured", Kind: Scalar},
			"captain":    {Path: "captain", Kind: Scalar},
			"created_at": {Path: "created_at", Kind: Scalar, Sortable: true},
		},
	},
	"events": {
		Name: "events",
		Key:  "eventid",
		Fields: map[string]FieldSpec{
			"eventid":    {Path: "eventid", Kind: Scalar},
			"slug":       {Path: "slug", Kind: Scalar},
			"title":      {Path: "title", Kind: Scalar, Sortable: true},
			"type":       {Path: "type", Kind: Scalar, Enum: models.EventTypes},
			"status":     {Path: "status", Kind: Scalar, Enum: models.EventStatuses},
			"featured":   {Path: "featured", Kind: Scalar},
			"artists":    {Path: "artists", Kind: List},
			"eventDate":  {Path: "eventdate", Kind: Scalar, Sortable: true},
			"created_at": {Path: "created_at", Kind: Scalar, Sortable: true},
		},
	},
	"campaigns": {
		Name: "campaigns",
		Key:  "campaignid",
		Fields: map[string]FieldSpec{
			"campaignid": {Path: "campaignid", Kind: Scalar},
			"slug":       {Path: "slug", Kind: Scalar},
			"title":      {Path: "title", Kind: Scalar, Sortable: true},
			"type":       {Path: "type", Kind: Scalar, Enum: models.CampaignTypes},
			"featured":   {Path: "featured", Kind: Scalar},
			"artists":    {Path: "artists", Kind: List},
			"active":     {Kind: Virtual},
			"startDate":  {Path: "startdate", Kind: Scalar, Sortable: true},
			"endDate":    {Path: "enddate", Kind: Scalar, Sortable: true},
			"created_at": {Path: "created_at", Kind: Scalar, Sortable: true},
		},
	},
	"news": {
		Name: "news",
		Key:  "newsid",
		Fields: map[string]FieldSpec{
			"newsid":         {Path: "newsid", Kind: Scalar},
			"slug":           {Path: "slug", Kind: Scalar},
			"category":       {Path: "category", Kind: Scalar, Enum: models.NewsCategories},
			"status":         {Path: "status", Kind: Scalar, Enum: models.NewsStatuses},
			"featured":       {Path: "featured", Kind: Scalar},
			"relatedArtists": {Path: "relatedartists", Kind: List},
			"relatedEvents":  {Path: "relatedevents", Kind: List},
			"publishedDate":  {Path: "publisheddate", Kind: Scalar, Sortable: true},
			"created_at":     {Path: "created_at", Kind: Scalar, Sortable: true},
		},
	},
	"hashtags": {
		Name: "hashtags",
		Key:  "hashtagid",
		Fields: map[string]FieldSpec{
			"hashtagid":       {Path: "hashtagid", Kind: Scalar},
			"hashtag":         {Path: "hashtag", Kind: Scalar, Sortable: true},
			"platform":        {Path: "platform", Kind: Scalar, Enum: models.Platforms},
			"relatedArtist":   {Path: "relatedartist", Kind: Scalar},
			"relatedCampaign": {Path: "relatedcampaign", Kind: Scalar},
			"trackingEnabled": {Path: "trackingenabled", Kind: Scalar},
			"trending":        {Path: "metrics.trending", Kind: Scalar},
			"mentionCount":    {Path: "mentioncount", Kind: Scalar, Sortable: true},
			"lastUpdated":     {Path: "lastupdated", Kind: Scalar, Sortable: true},
		},
	},
}

func Lookup(name string) (*Collection, error) {
	c, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, name)
	}
	return c, nil
}

func (c *Collection) Field(name string) (FieldSpec, error) {
	f, ok := c.Fields[name]
	if !ok {
		return FieldSpec{}, fmt.Errorf("%w: %s.%s", ErrUnknownField, c.Name, name)
	}
	return f, nil
}

// Handle returns the mongo collection backing an entity type.
func (c *Collection) Handle() *mongo.Collection {
	switch c.Name {
	case "artists":
		return db.ArtistsCollection
	case "teams":
		return db.TeamsCollection
	case "events":
		return db.EventsCollection
	case "campaigns":
		return db.CampaignsCollection
	case "news":
		return db.NewsCollection
	case "hashtags":
		return db.HashtagsCollection
	}
	return nil
}

// EnsureUniqueSlug rejects a slug already used by another document in
// the collection. Slugs are referenced externally and must stay stable.
func EnsureUniqueSlug(ctx context.Context, collectionName, slug, excludeID string) error {
	c, err := Lookup(collectionName)
	if err != nil {
		return err
	}
	filter := bson.M{"slug": slug}
	if excludeID != "" {
		filter[c.Key] = bson.M{"$ne": excludeID}
	}
	count, err := c.Handle().CountDocuments(ctx, filter)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("slug %q already in use in %s", slug, collectionName)
	}
	return nil
}
