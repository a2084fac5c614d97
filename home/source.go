package home

import (
	"context"

	"fanhub/models"
	"fanhub/query"
)

// Source feeds the homepage sections. The live implementation reads
// through the query facade; tests install a fixture source.
type Source interface {
	FeaturedArtists(ctx context.Context) ([]models.Artist, error)
	UpcomingEvents(ctx context.Context) ([]models.Event, error)
	ActiveCampaigns(ctx context.Context) ([]models.Campaign, error)
	LatestNews(ctx context.Context) ([]models.News, error)
	TrendingHashtags(ctx context.Context) ([]models.HashtagMetric, error)
}

type liveSource struct{}

func NewLiveSource() Source { return liveSource{} }

func (liveSource) FeaturedArtists(ctx context.Context) ([]models.Artist, error) {
	docs, _, err := query.FindInto[models.Artist](ctx, "artists", query.Where{
		"featured": {Equals: true},
		"status":   {Equals: "active"},
	}, query.Options{Limit: 6, Sort: "name"})
	return docs, err
}

func (liveSource) UpcomingEvents(ctx context.Context) ([]models.Event, error) {
	docs, _, err := query.FindInto[models.Event](ctx, "events", query.Where{
		"status": {Equals: "upcoming"},
	}, query.Options{Limit: 4, Sort: "eventDate"})
	return docs, err
}

func (liveSource) ActiveCampaigns(ctx context.Context) ([]models.Campaign, error) {
	docs, _, err := query.FindInto[models.Campaign](ctx, "campaigns", query.Where{
		"active": {Equals: true},
	}, query.Options{Limit: 3, Sort: "endDate"})
	return docs, err
}

func (liveSource) LatestNews(ctx context.Context) ([]models.News, error) {
	docs, _, err := query.FindInto[models.News](ctx, "news", query.Where{
		"status": {Equals: "published"},
	}, query.Options{Limit: 4, Sort: "-publishedDate"})
	return docs, err
}

func (liveSource) TrendingHashtags(ctx context.Context) ([]models.HashtagMetric, error) {
	docs, _, err := query.FindInto[models.HashtagMetric](ctx, "hashtags", query.Where{
		"trending":        {Equals: true},
		"trackingEnabled": {Equals: true},
	}, query.Options{Limit: 5, Sort: "-mentionCount"})
	return docs, err
}

// FixtureSource serves canned sections; the zero value serves empties.
type FixtureSource struct {
	Artists   []models.Artist
	Events    []models.Event
	Campaigns []models.Campaign
	News      []models.News
	Hashtags  []models.HashtagMetric
	Err       error
}

func (f FixtureSource) FeaturedArtists(context.Context) ([]models.Artist, error) {
	return f.Artists, f.Err
}
func (f FixtureSource) UpcomingEvents(context.Context) ([]models.Event, error) {
	return f.Events, f.Err
}
func (f FixtureSource) ActiveCampaigns(context.Context) ([]models.Campaign, error) {
	return f.Campaigns, f.Err
}
func (f FixtureSource) LatestNews(context.Context) ([]models.News, error) {
	return f.News, f.Err
}
func (f FixtureSource) TrendingHashtags(context.Context) ([]models.HashtagMetric, error) {
	return f.Hashtags, f.Err
}
