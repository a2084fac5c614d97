package artists

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

func validateArtist(a *models.Artist) string {
	if a.Name == "" {
		return "Name is required"
	}
	if !models.ValidEnum(models.ArtistStatuses, a.Status) {
		return "Invalid status"
	}
	for _, p := range a.Profession {
		if !models.ValidEnum(models.Professions, p) {
			return "Invalid profession: " + p
		}
	}
	return ""
}

func CreateArtist(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var artist models.Artist
	if err := json.NewDecoder(r.Body).Decode(&artist); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if artist.Status == "" {
		artist.Status = "active"
	}
	if msg := validateArtist(&artist); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	if artist.Slug == "" {
		artist.Slug = utils.SlugOrRandom(artist.Name)
	}
	if err := schema.EnsureUniqueSlug(ctx, "artists", artist.Slug, ""); err != nil {
		utils.RespondWithError(w, http.StatusConflict, err.Error())
		return
	}

	artist.ArtistID = utils.GetUUID()
	artist.CreatorID = utils.GetUserIDFromRequest(r)
	artist.CreatedAt = time.Now()
	artist.UpdatedAt = artist.CreatedAt

	if _, err := db.ArtistsCollection.InsertOne(ctx, artist); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create artist")
		return
	}

	go mq.Emit(ctx, "artist-created", models.Index{
		EntityType: "artist", EntityId: artist.ArtistID, Method: http.MethodPost,
	})

	utils.RespondWithJSON(w, http.StatusCreated, artist)
}

func UpdateArtist(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	var existing models.Artist
	if err := db.ArtistsCollection.FindOne(ctx, bson.M{"slug": ps.ByName("slug")}).Decode(&existing); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Artist not found")
		return
	}
	if !canModify(r, existing.CreatorID) {
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized to edit this artist")
		return
	}

	// Overlay the partial input on the stored document.
	updated := existing
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	updated.ArtistID = existing.ArtistID
	updated.CreatorID = existing.CreatorID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()

	if msg := validateArtist(&updated); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}
	if updated.Slug != existing.Slug {
		if err := schema.EnsureUniqueSlug(ctx, "artists", updated.Slug, existing.ArtistID); err != nil {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
	}

	if _, err := db.ArtistsCollection.ReplaceOne(ctx, bson.M{"artistid": existing.ArtistID}, updated); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update artist")
		return
	}

	go mq.Emit(ctx, "artist-edited", models.Index{
		EntityType: "artist", EntityId: existing.ArtistID, Method: http.MethodPut,
	})

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

func DeleteArtist(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	var existing models.Artist
	if err := db.ArtistsCollection.FindOne(ctx, bson.M{"slug": ps.ByName("slug")}).Decode(&existing); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Artist not found")
		return
	}
	if !canModify(r, existing.CreatorID) {
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized to delete this artist")
		return
	}

	if _, err := db.ArtistsCollection.DeleteOne(ctx, bson.M{"artistid": existing.ArtistID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete artist")
		return
	}

	go mq.Emit(ctx, "artist-deleted", models.Index{
		EntityType: "artist", EntityId: existing.ArtistID, Method: http.MethodDelete,
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Artist deleted"})
}

func canModify(r *http.Request, creatorID string) bool {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		return false
	}
	return userID == creatorID || utils.GetUserRoleFromRequest(r) == "admin"
}
