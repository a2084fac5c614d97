package campaigns

import (
	"net/http"
	"time"

	"fanhub/agg"
	"fanhub/db"
	"fanhub/models"
	"fanhub/query"
	"fanhub/resolve"
	"fanhub/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// GetCampaigns answers GET /api/campaigns. The active filter is derived:
// a stored manual override wins, otherwise the date window decides.
func GetCampaigns(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	where := query.Where{}
	if v := q.Get("type"); v != "" {
		where["type"] = query.Condition{Equals: v}
	}
	if v := q.Get("featured"); v != "" {
		where["featured"] = query.Condition{Equals: v == "true"}
	}
	if v := q.Get("artist"); v != "" {
		where["artists"] = query.Condition{Contains: v}
	}
	if v := q.Get("active"); v != "" {
		where["active"] = query.Condition{Equals: v == "true"}
	}

	res, err := query.Find(r.Context(), "campaigns", where, query.OptionsFromRequest(r, 20, 100))
	if err != nil {
		if query.IsValidation(err) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching campaigns")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, res)
}

type campaignPage struct {
	models.Campaign
	EffectiveActive bool               `json:"effectiveActive"`
	TypeLabel       string             `json:"typeLabel"`
	GoalProgress    []agg.GoalProgress `json:"goalProgress"`
}

// GetCampaignBySlug answers GET /api/campaigns/:slug at depth 2 with
// goal progress and the derived active state attached.
func GetCampaignBySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	var campaign models.Campaign
	if err := db.CampaignsCollection.FindOne(ctx, bson.M{"slug": ps.ByName("slug")}).Decode(&campaign); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Campaign not found")
		return
	}
	if err := resolve.New().Campaign(ctx, &campaign, 2); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error resolving campaign")
		return
	}

	page := campaignPage{
		Campaign:        campaign,
		EffectiveActive: agg.EffectiveActive(campaign, time.Now()),
		TypeLabel:       models.CampaignTypeLabel(campaign.Type),
		GoalProgress:    agg.GoalProgressList(campaign.Goals),
	}

	utils.RespondWithJSON(w, http.StatusOK, page)
}
