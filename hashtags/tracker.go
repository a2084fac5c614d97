package hashtags

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"time"

	"fanhub/agg"
	"fanhub/db"
	"fanhub/models"
	"fanhub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FeedUpdate is one metric delta pushed over the feed.
type FeedUpdate struct {
	HashtagID    string `json:"hashtagid"`
	Hashtag      string `json:"hashtag"`
	Platform     string `json:"platform"`
	Delta        int64  `json:"delta"`
	MentionCount int64  `json:"mentionCount"`
	Display      string `json:"display"`
	Timestamp    int64  `json:"timestamp"`
}

// StartTracker replays fixture mention deltas against the tracked
// hashtags. There is no real ingestion pipeline; this keeps counters
// and the live feed moving. Runs for the life of the process.
func StartTracker(hub *Hub, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if err := tick(hub); err != nil {
			log.Printf("[Tracker] tick failed: %v", err)
		}
	}
}

func tick(hub *Hub) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	metrics, err := utils.FindAndDecode[models.HashtagMetric](ctx, db.HashtagsCollection,
		bson.M{"trackingenabled": true},
		options.Find().SetLimit(50))
	if err != nil {
		return err
	}

	now := time.Now()
	for i := range metrics {
		m := &metrics[i]
		delta := fixtureDelta(m)
		if delta == 0 {
			continue
		}

		daily := m.Metrics.Daily + delta
		_, err := db.HashtagsCollection.UpdateOne(ctx,
			bson.M{"hashtagid": m.HashtagID},
			bson.M{
				"$inc": bson.M{"mentioncount": delta, "metrics.daily": delta},
				"$set": bson.M{
					"lastupdated":      now,
					"metrics.trending": daily > trendingThreshold,
				},
			})
		if err != nil {
			log.Printf("[Tracker] update %s failed: %v", m.HashtagID, err)
			continue
		}

		update := FeedUpdate{
			HashtagID:    m.HashtagID,
			Hashtag:      m.Hashtag,
			Platform:     m.Platform,
			Delta:        delta,
			MentionCount: m.MentionCount + delta,
			Display:      agg.FormatMagnitude(m.MentionCount + delta),
			Timestamp:    now.Unix(),
		}
		if data, err := json.Marshal(update); err == nil {
			hub.Broadcast(m.Platform, data)
		}
	}
	return nil
}

const trendingThreshold = 10_000

// fixtureDelta fakes platform activity proportional to how busy a tag
// already is.
func fixtureDelta(m *models.HashtagMetric) int64 {
	base := m.MentionCount / 1000
	if base < 1 {
		base = 1
	}
	if base > 500 {
		base = 500
	}
	return rand.Int63n(base * 10)
}
