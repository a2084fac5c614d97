package filemgr

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"fanhub/db"
	"fanhub/globals"
	"fanhub/models"
	"fanhub/mq"
	"fanhub/rdx"
	"fanhub/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type entityMeta struct {
	collection  func() *mongo.Collection
	keyField    string
	cachePrefix string
	ownerField  string
}

func getEntityMeta(entityType string) entityMeta {
	switch strings.ToLower(entityType) {
	case "artist":
		return entityMeta{func() *mongo.Collection { return db.ArtistsCollection }, "artistid", "artist:", "creatorid"}
	case "team":
		return entityMeta{func() *mongo.Collection { return db.TeamsCollection }, "teamid", "team:", "creatorid"}
	case "event":
		return entityMeta{func() *mongo.Collection { return db.EventsCollection }, "eventid", "event:", "creatorid"}
	case "campaign":
		return entityMeta{func() *mongo.Collection { return db.CampaignsCollection }, "campaignid", "campaign:", "creatorid"}
	case "news":
		return entityMeta{func() *mongo.Collection { return db.NewsCollection }, "newsid", "news:", "creatorid"}
	default:
		return entityMeta{}
	}
}

func authorizeUserForEntity(ctx context.Context, entityType, entityID, userID, role string) error {
	meta := getEntityMeta(entityType)
	if meta.collection == nil {
		return fmt.Errorf("unsupported entity type")
	}

	var result bson.M
	err := meta.collection().FindOne(
		ctx,
		bson.M{meta.keyField: entityID},
		options.FindOne().SetProjection(bson.M{meta.ownerField: 1}),
	).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return fmt.Errorf("not found")
		}
		return fmt.Errorf("database error")
	}

	owner, _ := result[meta.ownerField].(string)
	if owner != userID && role != "admin" {
		return fmt.Errorf("unauthorized")
	}
	return nil
}

// EditPicture handles PUT /api/picture/:entitytype/:entityid, replacing
// the profile or cover image of an entity the caller owns.
func EditPicture(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	entityTypeStr := ps.ByName("entitytype")
	entityID := ps.ByName("entityid")

	meta := getEntityMeta(entityTypeStr)
	if meta.collection == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unsupported entity type")
		return
	}

	requestingUserID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || requestingUserID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid user")
		return
	}
	role, _ := r.Context().Value(globals.RoleKey).(string)

	if err := authorizeUserForEntity(r.Context(), entityTypeStr, entityID, requestingUserID, role); err != nil {
		switch err.Error() {
		case "not found":
			utils.RespondWithError(w, http.StatusNotFound, fmt.Sprintf("%s not found", entityTypeStr))
		case "unauthorized":
			utils.RespondWithError(w, http.StatusForbidden, "You are not authorized to edit this "+entityTypeStr)
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal error")
		}
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	var field string
	var etype PictureType
	if _, ok := r.MultipartForm.File["profileImage"]; ok {
		field = "profileimage"
		etype = PicProfile
	} else if _, ok := r.MultipartForm.File["coverImage"]; ok {
		field = "coverimage"
		etype = PicCover
	} else {
		utils.RespondWithError(w, http.StatusBadRequest, "No profileImage or coverImage file uploaded")
		return
	}

	formKey := "profileImage"
	if etype == PicCover {
		formKey = "coverImage"
	}
	fileName, err := SaveFormFile(r.MultipartForm, formKey, EntityType(entityTypeStr), etype, true)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, fmt.Sprintf("%s upload failed: %v", formKey, err))
		return
	}

	updateFields := bson.M{
		field:       fileName,
		"updatedat": time.Now(),
	}
	if _, err := meta.collection().UpdateOne(r.Context(), bson.M{meta.keyField: entityID}, bson.M{"$set": updateFields}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Error updating %s", entityTypeStr))
		return
	}

	if err := rdx.RdxDel(meta.cachePrefix + entityID); err != nil {
		log.Printf("Cache deletion failed for %s %s: %v", entityTypeStr, entityID, err)
	}

	go mq.Emit(r.Context(), fmt.Sprintf("%s-edited", entityTypeStr), models.Index{
		EntityType: entityTypeStr,
		EntityId:   entityID,
		Method:     http.MethodPut,
	})

	utils.RespondWithJSON(w, http.StatusOK, updateFields)
}
