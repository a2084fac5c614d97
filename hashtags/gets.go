package hashtags

import (
	"net/http"

	"fanhub/db"
	"fanhub/models"
	"fanhub/query"
	"fanhub/resolve"
	"fanhub/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// GetHashtags answers GET /api/hashtags with optional platform,
// trending, artist and campaign filters.
func GetHashtags(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	where := query.Where{}
	if v := q.Get("platform"); v != "" {
		where["platform"] = query.Condition{Equals: v}
	}
	if v := q.Get("trending"); v != "" {
		where["trending"] = query.Condition{Equals: v == "true"}
	}
	if v := q.Get("artist"); v != "" {
		where["relatedArtist"] = query.Condition{Equals: v}
	}
	if v := q.Get("campaign"); v != "" {
		where["relatedCampaign"] = query.Condition{Equals: v}
	}

	opts := query.OptionsFromRequest(r, 20, 100)
	if opts.Sort == "" {
		opts.Sort = "-mentionCount"
	}
	res, err := query.Find(r.Context(), "hashtags", where, opts)
	if err != nil {
		if query.IsValidation(err) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching hashtags")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, res)
}

type hashtagPage struct {
	models.HashtagMetric
	PlatformLabel string `json:"platformLabel"`
}

// GetHashtagByID answers GET /api/hashtags/:id at depth 2 with the
// related artist and campaign embedded. Hashtag metrics have no slug;
// the tracked id is the public handle.
func GetHashtagByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	var metric models.HashtagMetric
	if err := db.HashtagsCollection.FindOne(ctx, bson.M{"hashtagid": ps.ByName("id")}).Decode(&metric); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Hashtag not found")
		return
	}
	if err := resolve.New().HashtagMetric(ctx, &metric, 2); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error resolving hashtag")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, hashtagPage{
		HashtagMetric: metric,
		PlatformLabel: models.PlatformLabel(metric.Platform),
	})
}

// GetTrending answers GET /api/hashtags/trending: tracked tags flagged
// trending, highest mention count first.
func GetTrending(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	res, err := query.Find(r.Context(), "hashtags", query.Where{
		"trending":        {Equals: true},
		"trackingEnabled": {Equals: true},
	}, query.Options{Limit: 10, Sort: "-mentionCount"})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching trending hashtags")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, res)
}
