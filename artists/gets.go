package artists

import (
	"log"
	"net/http"
	"sync"

	"fanhub/agg"
	"fanhub/db"
	"fanhub/models"
	"fanhub/query"
	"fanhub/resolve"
	"fanhub/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// GetArtists answers GET /api/artists with optional status, featured,
// team and captain filters.
func GetArtists(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	where := query.Where{}
	if v := q.Get("status"); v != "" {
		where["status"] = query.Condition{Equals: v}
	}
	if v := q.Get("featured"); v != "" {
		where["featured"] = query.Condition{Equals: v == "true"}
	}
	if v := q.Get("team"); v != "" {
		where["teams"] = query.Condition{Contains: v}
	}
	if v := q.Get("captain"); v != "" {
		where["isTeamCaptain"] = query.Condition{Equals: v == "true"}
	}

	res, err := query.Find(r.Context(), "artists", where, query.OptionsFromRequest(r, 20, 100))
	if err != nil {
		if query.IsValidation(err) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching artists")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, res)
}

type artistPage struct {
	models.Artist
	StatsDisplay    map[string]agg.StatDisplay `json:"statsDisplay"`
	UpcomingEvents  []models.Event             `json:"upcomingEvents"`
	ActiveCampaigns []models.Campaign          `json:"activeCampaigns"`
}

// GetArtistBySlug answers GET /api/artists/:slug. The artist itself is
// the primary lookup; the event and campaign sections are secondary and
// degrade to empty on failure.
func GetArtistBySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	var artist models.Artist
	if err := db.ArtistsCollection.FindOne(ctx, bson.M{"slug": ps.ByName("slug")}).Decode(&artist); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Artist not found")
		return
	}
	if err := resolve.New().Artist(ctx, &artist, 2); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error resolving artist")
		return
	}

	page := artistPage{
		Artist: artist,
		StatsDisplay: map[string]agg.StatDisplay{
			"totalVotes":       agg.Stat(artist.Stats.TotalVotes),
			"followers":        agg.Stat(artist.Stats.Followers),
			"hashtagMentions":  agg.Stat(artist.Stats.HashtagMentions),
			"performanceCount": agg.Stat(artist.Stats.PerformanceCount),
		},
		UpcomingEvents:  []models.Event{},
		ActiveCampaigns: []models.Campaign{},
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		events, _, err := query.FindInto[models.Event](ctx, "events", query.Where{
			"artists": {Contains: artist.ArtistID},
			"status":  {Equals: "upcoming"},
		}, query.Options{Limit: 5, Sort: "eventDate"})
		if err != nil {
			log.Printf("artist %s: upcoming events fetch failed: %v", artist.ArtistID, err)
			return
		}
		page.UpcomingEvents = events
	}()
	go func() {
		defer wg.Done()
		campaigns, _, err := query.FindInto[models.Campaign](ctx, "campaigns", query.Where{
			"artists": {Contains: artist.ArtistID},
			"active":  {Equals: true},
		}, query.Options{Limit: 5, Sort: "endDate"})
		if err != nil {
			log.Printf("artist %s: active campaigns fetch failed: %v", artist.ArtistID, err)
			return
		}
		page.ActiveCampaigns = campaigns
	}()
	wg.Wait()

	utils.RespondWithJSON(w, http.StatusOK, page)
}
