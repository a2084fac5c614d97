package teams

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

func validateTeam(t *models.Team) string {
	if t.Name == "" {
		return "Name is required"
	}
	if !models.ValidEnum(models.TeamColors, t.Color) {
		return "Invalid color"
	}
	return ""
}

func CreateTeam(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var team models.Team
	if err := json.NewDecoder(r.Body).Decode(&team); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if msg := validateTeam(&team); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	if team.Slug == "" {
		team.Slug = utils.SlugOrRandom(team.Name)
	}
	if err := schema.EnsureUniqueSlug(ctx, "teams", team.Slug, ""); err != nil {
		utils.RespondWithError(w, http.StatusConflict, err.Error())
		return
	}

	team.TeamID = utils.GetUUID()
	team.CreatorID = utils.GetUserIDFromRequest(r)
	team.CreatedAt = time.Now()
	team.UpdatedAt = team.CreatedAt

	if _, err := db.TeamsCollection.InsertOne(ctx, team); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create team")
		return
	}

	go mq.Emit(ctx, "team-created", models.Index{
		EntityType: "team", EntityId: team.TeamID, Method: http.MethodPost,
	})

	utils.RespondWithJSON(w, http.StatusCreated, team)
}

func UpdateTeam(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	var existing models.Team
	if err := db.TeamsCollection.FindOne(ctx, bson.M{"slug": ps.ByName("slug")}).Decode(&existing); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Team not found")
		return
	}
	if !canModify(r, existing.CreatorID) {
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized to edit this team")
		return
	}

	updated := existing
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	updated.TeamID = existing.TeamID
	updated.CreatorID = existing.CreatorID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()

	if msg := validateTeam(&updated); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}
	if updated.Slug != existing.Slug {
		if err := schema.EnsureUniqueSlug(ctx, "teams", updated.Slug, existing.TeamID); err != nil {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
	}

	if _, err := db.TeamsCollection.ReplaceOne(ctx, bson.M{"teamid": existing.TeamID}, updated); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update team")
		return
	}

	go mq.Emit(ctx, "team-edited", models.Index{
		EntityType: "team", EntityId: existing.TeamID, Method: http.MethodPut,
	})

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

func DeleteTeam(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	var existing models.Team
	if err := db.TeamsCollection.FindOne(ctx, bson.M{"slug": ps.ByName("slug")}).Decode(&existing); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Team not found")
		return
	}
	if !canModify(r, existing.CreatorID) {
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized to delete this team")
		return
	}

	if _, err := db.TeamsCollection.DeleteOne(ctx, bson.M{"teamid": existing.TeamID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete team")
		return
	}

	go mq.Emit(ctx, "team-deleted", models.Index{
		EntityType: "team", EntityId: existing.TeamID, Method: http.MethodDelete,
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Team deleted"})
}

func canModify(r *http.Request, creatorID string) bool {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		return false
	}
	return userID == creatorID || utils.GetUserRoleFromRequest(r) == "admin"
}
