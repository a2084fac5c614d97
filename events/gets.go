package events

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

// GetEvents answers GET /api/events with optional type, status, featured
// and artist filters.
func GetEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	where := query.Where{}
	if v := q.Get("type"); v != "" {
		where["type"] = query.Condition{Equals: v}
	}
	if v := q.Get("status"); v != "" {
		where["status"] = query.Condition{Equals: v}
	}
	if v := q.Get("featured"); v != "" {
		where["featured"] = query.Condition{Equals: v == "true"}
	}
	if v := q.Get("artist"); v != "" {
		where["artists"] = query.Condition{Contains: v}
	}

	opts := query.OptionsFromRequest(r, 20, 100)
	if opts.Sort == "" {
		opts.Sort = "eventDate"
	}
	res, err := query.Find(r.Context(), "events", where, opts)
	if err != nil {
		if query.IsValidation(err) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching events")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, res)
}

// GetEventBySlug answers GET /api/events/:slug at depth 2, embedding
// the lineup artists and their teams.
func GetEventBySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	var event models.Event
	if err := db.EventsCollection.FindOne(ctx, bson.M{"slug": ps.ByName("slug")}).Decode(&event); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}
	if err := resolve.New().Event(ctx, &event, 2); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error resolving event")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, event)
}
