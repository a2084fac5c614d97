package events

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

func validateEvent(e *models.Event) string {
	if e.Title == "" {
		return "Title is required"
	}
	if e.EventDate.IsZero() {
		return "Event date is required"
	}
	if !models.ValidEnum(models.EventTypes, e.Type) {
		return "Invalid event type"
	}
	if !models.ValidEnum(models.EventStatuses, e.Status) {
		return "Invalid status"
	}
	if e.EndDate != nil && e.EndDate.Before(e.EventDate) {
		return "End date precedes event date"
	}
	return ""
}

func CreateEvent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var event models.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if event.Status == "" {
		event.Status = "upcoming"
	}
	if msg := validateEvent(&event); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	if event.Slug == "" {
		event.Slug = utils.SlugOrRandom(event.Title)
	}
	if err := schema.EnsureUniqueSlug(ctx, "events", event.Slug, ""); err != nil {
		utils.RespondWithError(w, http.StatusConflict, err.Error())
		return
	}

	event.EventID = utils.GetUUID()
	event.CreatorID = utils.GetUserIDFromRequest(r)
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt

	if _, err := db.EventsCollection.InsertOne(ctx, event); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create event")
		return
	}

	go mq.Emit(ctx, "event-created", models.Index{
		EntityType: "event", EntityId: event.EventID, Method: http.MethodPost,
	})

	utils.RespondWithJSON(w, http.StatusCreated, event)
}

func UpdateEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	var existing models.Event
	if err := db.EventsCollection.FindOne(ctx, bson.M{"slug": ps.ByName("slug")}).Decode(&existing); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}
	if !canModify(r, existing.CreatorID) {
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized to edit this event")
		return
	}

	updated := existing
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	updated.EventID = existing.EventID
	updated.CreatorID = existing.CreatorID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()

	if msg := validateEvent(&updated); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}
	if updated.Slug != existing.Slug {
		if err := schema.EnsureUniqueSlug(ctx, "events", updated.Slug, existing.EventID); err != nil {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
	}

	if _, err := db.EventsCollection.ReplaceOne(ctx, bson.M{"eventid": existing.EventID}, updated); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update event")
		return
	}

	go mq.Emit(ctx, "event-edited", models.Index{
		EntityType: "event", EntityId: existing.EventID, Method: http.MethodPut,
	})

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

func DeleteEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	var existing models.Event
	if err := db.EventsCollection.FindOne(ctx, bson.M{"slug": ps.ByName("slug")}).Decode(&existing); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}
	if !canModify(r, existing.CreatorID) {
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized to delete this event")
		return
	}

	if _, err := db.EventsCollection.DeleteOne(ctx, bson.M{"eventid": existing.EventID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete event")
		return
	}

	go mq.Emit(ctx, "event-deleted", models.Index{
		EntityType: "event", EntityId: existing.EventID, Method: http.MethodDelete,
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Event deleted"})
}

func canModify(r *http.Request, creatorID string) bool {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		return false
	}
	return userID == creatorID || utils.GetUserRoleFromRequest(r) == "admin"
}
