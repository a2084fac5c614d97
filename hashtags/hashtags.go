package hashtags

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"fanhub/db"
	"fanhub/models"
	"fanhub/mq"
	"fanhub/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

func validateMetric(h *models.HashtagMetric) string {
	if h.Hashtag == "" {
		return "Hashtag is required"
	}
	if !strings.HasPrefix(h.Hashtag, "#") {
		h.Hashtag = "#" + h.Hashtag
	}
	if !models.ValidEnum(models.Platforms, h.Platform) {
		return "Invalid platform"
	}
	return ""
}

func CreateHashtag(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var metric models.HashtagMetric
	if err := json.NewDecoder(r.Body).Decode(&metric); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if msg := validateMetric(&metric); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	// One tracked row per tag+platform pair.
	count, err := db.HashtagsCollection.CountDocuments(ctx, bson.M{
		"hashtag": metric.Hashtag, "platform": metric.Platform,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if count > 0 {
		utils.RespondWithError(w, http.StatusConflict, "Hashtag already tracked on this platform")
		return
	}

	metric.HashtagID = utils.GetUUID()
	metric.LastUpdated = time.Now()
	if metric.MentionCount < 0 {
		metric.MentionCount = 0
	}

	if _, err := db.HashtagsCollection.InsertOne(ctx, metric); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create hashtag")
		return
	}

	go mq.Emit(ctx, "hashtag-created", models.Index{
		EntityType: "hashtag", EntityId: metric.HashtagID, Method: http.MethodPost,
	})

	utils.RespondWithJSON(w, http.StatusCreated, metric)
}

func UpdateHashtag(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	var existing models.HashtagMetric
	if err := db.HashtagsCollection.FindOne(ctx, bson.M{"hashtagid": ps.ByName("id")}).Decode(&existing); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Hashtag not found")
		return
	}

	updated := existing
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	updated.HashtagID = existing.HashtagID
	updated.LastUpdated = time.Now()

	if msg := validateMetric(&updated); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}
	if updated.MentionCount < 0 {
		updated.MentionCount = 0
	}

	if _, err := db.HashtagsCollection.ReplaceOne(ctx, bson.M{"hashtagid": existing.HashtagID}, updated); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update hashtag")
		return
	}

	go mq.Emit(ctx, "hashtag-edited", models.Index{
		EntityType: "hashtag", EntityId: existing.HashtagID, Method: http.MethodPut,
	})

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

func DeleteHashtag(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	result, err := db.HashtagsCollection.DeleteOne(ctx, bson.M{"hashtagid": ps.ByName("id")})
	if err != nil || result.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Hashtag not found")
		return
	}

	go mq.Emit(ctx, "hashtag-deleted", models.Index{
		EntityType: "hashtag", EntityId: ps.ByName("id"), Method: http.MethodDelete,
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Hashtag deleted"})
}
