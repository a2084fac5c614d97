package campaigns

import (
	"encoding/json"
	"net/http"
	"time"

	"fanhub/db"
	"fanhub/models"
	"fanhub/mq"
	"fanhub/schema"
	"fanhub/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

func validateCampaign(c *models.Campaign) string {
	if c.Title == "" {
		return "Title is required"
	}
	if !models.ValidEnum(models.CampaignTypes, c.Type) {
		return "Invalid campaign type"
	}
	if c.StartDate.IsZero() || c.EndDate.IsZero() {
		return "Start and end dates are required"
	}
	if c.EndDate.Before(c.StartDate) {
		return "End date precedes start date"
	}
	for i := range c.Goals {
		// Counters are non-negative by contract; normalize instead of
		// rejecting.
		if c.Goals[i].Target < 0 {
			c.Goals[i].Target = 0
		}
		if c.Goals[i].Current < 0 {
			c.Goals[i].Current = 0
		}
	}
	return ""
}

func CreateCampaign(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var campaign models.Campaign
	if err := json.NewDecoder(r.Body).Decode(&campaign); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if msg := validateCampaign(&campaign); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	if campaign.Slug == "" {
		campaign.Slug = utils.SlugOrRandom(campaign.Title)
	}
	if err := schema.EnsureUniqueSlug(ctx, "campaigns", campaign.Slug, ""); err != nil {
		utils.RespondWithError(w, http.StatusConflict, err.Error())
		return
	}

	campaign.CampaignID = utils.GetUUID()
	campaign.CreatorID = utils.GetUserIDFromRequest(r)
	campaign.CreatedAt = time.Now()
	campaign.UpdatedAt = campaign.CreatedAt

	if _, err := db.CampaignsCollection.InsertOne(ctx, campaign); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create campaign")
		return
	}

	go mq.Emit(ctx, "campaign-created", models.Index{
		EntityType: "campaign", EntityId: campaign.CampaignID, Method: http.MethodPost,
	})

	utils.RespondWithJSON(w, http.StatusCreated, campaign)
}

func UpdateCampaign(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	var existing models.Campaign
	if err := db.CampaignsCollection.FindOne(ctx, bson.M{"slug": ps.ByName("slug")}).Decode(&existing); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Campaign not found")
		return
	}
	if !canModify(r, existing.CreatorID) {
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized to edit this campaign")
		return
	}

	updated := existing
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	updated.CampaignID = existing.CampaignID
	updated.CreatorID = existing.CreatorID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()

	if msg := validateCampaign(&updated); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}
	if updated.Slug != existing.Slug {
		if err := schema.EnsureUniqueSlug(ctx, "campaigns", updated.Slug, existing.CampaignID); err != nil {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
	}

	if _, err := db.CampaignsCollection.ReplaceOne(ctx, bson.M{"campaignid": existing.CampaignID}, updated); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update campaign")
		return
	}

	go mq.Emit(ctx, "campaign-edited", models.Index{
		EntityType: "campaign", EntityId: existing.CampaignID, Method: http.MethodPut,
	})

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

func DeleteCampaign(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	var existing models.Campaign
	if err := db.CampaignsCollection.FindOne(ctx, bson.M{"slug": ps.ByName("slug")}).Decode(&existing); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Campaign not found")
		return
	}
	if !canModify(r, existing.CreatorID) {
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized to delete this campaign")
		return
	}

	if _, err := db.CampaignsCollection.DeleteOne(ctx, bson.M{"campaignid": existing.CampaignID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete campaign")
		return
	}

	go mq.Emit(ctx, "campaign-deleted", models.Index{
		EntityType: "campaign", EntityId: existing.CampaignID, Method: http.MethodDelete,
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Campaign deleted"})
}

func canModify(r *http.Request, creatorID string) bool {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		return false
	}
	return userID == creatorID || utils.GetUserRoleFromRequest(r) == "admin"
}
