package resolve

import (
	"context"

	"fanhub/db"
	"fanhub/models"
	"fanhub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func mongoLoaders() Loaders {
	return Loaders{
		Artists:   batchLoader[models.Artist](func() *mongo.Collection { return db.ArtistsCollection }, "artistid", func(a *models.Artist) string { return a.ArtistID }),
		Teams:     batchLoader[models.Team](func() *mongo.Collection { return db.TeamsCollection }, "teamid", func(t *models.Team) string { return t.TeamID }),
		Events:    batchLoader[models.Event](func() *mongo.Collection { return db.EventsCollection }, "eventid", func(e *models.Event) string { return e.EventID }),
		Campaigns: batchLoader[models.Campaign](func() *mongo.Collection { return db.CampaignsCollection }, "campaignid", func(c *models.Campaign) string { return c.CampaignID }),
	}
}

// batchLoader fetches one hop's worth of references with a single $in.
func batchLoader[T any](coll func() *mongo.Collection, keyField string, key func(*T) string) func(context.Context, []string) (map[string]*T, error) {
	return func(ctx context.Context, ids []string) (map[string]*T, error) {
		byID := make(map[string]*T, len(ids))
		if len(ids) == 0 {
			return byID, nil
		}

		docs, err := utils.FindAndDecode[T](ctx, coll(), bson.M{keyField: bson.M{"$in": dedupe(ids)}})
		if err != nil {
			return nil, err
		}
		for i := range docs {
			byID[key(&docs[i])] = &docs[i]
		}
		return byID, nil
	}
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if id != "" && !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
