// Package search maintains and queries a small redis-backed index of
// entity names, fed by the indexing events the write handlers emit.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"fanhub/db"
	"fanhub/models"
	"fanhub/rdx"
	"fanhub/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type indexDoc struct {
	Label string `json:"label"`
	Slug  string `json:"slug"`
}

// Entry is one search hit.
type Entry struct {
	EntityType string `json:"entity_type"`
	EntityId   string `json:"entity_id"`
	Label      string `json:"label"`
	Slug       string `json:"slug"`
}

type indexSource struct {
	collection func() *mongo.Collection
	keyField   string
	labelField string
}

var indexSources = map[string]indexSource{
	"artist":   {func() *mongo.Collection { return db.ArtistsCollection }, "artistid", "name"},
	"team":     {func() *mongo.Collection { return db.TeamsCollection }, "teamid", "name"},
	"event":    {func() *mongo.Collection { return db.EventsCollection }, "eventid", "title"},
	"campaign": {func() *mongo.Collection { return db.CampaignsCollection }, "campaignid", "title"},
	"news":     {func() *mongo.Collection { return db.NewsCollection }, "newsid", "title"},
	"hashtag":  {func() *mongo.Collection { return db.HashtagsCollection }, "hashtagid", "hashtag"},
}

func indexKey(entityType string) string {
	return "search:" + entityType
}

// ApplyIndexEvent updates the redis index for one entity write.
func ApplyIndexEvent(ctx context.Context, event models.Index) error {
	src, ok := indexSources[event.EntityType]
	if !ok {
		return fmt.Errorf("unindexed entity type %q", event.EntityType)
	}

	if event.Method == http.MethodDelete {
		return rdx.RdxHdel(indexKey(event.EntityType), event.EntityId)
	}

	var doc bson.M
	err := src.collection().FindOne(ctx, bson.M{src.keyField: event.EntityId}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return rdx.RdxHdel(indexKey(event.EntityType), event.EntityId)
		}
		return err
	}

	label, _ := doc[src.labelField].(string)
	slug, _ := doc["slug"].(string)
	data, err := json.Marshal(indexDoc{Label: label, Slug: slug})
	if err != nil {
		return err
	}
	return rdx.RdxHset(indexKey(event.EntityType), event.EntityId, string(data))
}

// SearchHandler answers GET /api/search?q= with case-insensitive
// substring matches across all indexed entity types.
func SearchHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	if q == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing q parameter")
		return
	}

	results := []Entry{}
	for entityType := range indexSources {
		entries, err := rdx.Conn.HGetAll(r.Context(), indexKey(entityType)).Result()
		if err != nil {
			continue
		}
		for id, raw := range entries {
			var doc indexDoc
			if err := json.Unmarshal([]byte(raw), &doc); err != nil {
				continue
			}
			if strings.Contains(strings.ToLower(doc.Label), q) {
				results = append(results, Entry{
					EntityType: entityType,
					EntityId:   id,
					Label:      doc.Label,
					Slug:       doc.Slug,
				})
			}
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, results)
}
