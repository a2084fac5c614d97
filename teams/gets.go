package teams

import (
	"log"
	"net/http"

	"fanhub/agg"
	"fanhub/db"
	"fanhub/models"
	"fanhub/query"
	"fanhub/resolve"
	"fanhub/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// GetTeams answers GET /api/teams with optional active, featured and
// color filters.
func GetTeams(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	where := query.Where{}
	if v := q.Get("active"); v != "" {
		where["active"] = query.Condition{Equals: v == "true"}
	}
	if v := q.Get("featured"); v != "" {
		where["featured"] = query.Condition{Equals: v == "true"}
	}
	if v := q.Get("color"); v != "" {
		where["color"] = query.Condition{Equals: v}
	}

	res, err := query.Find(r.Context(), "teams", where, query.OptionsFromRequest(r, 20, 100))
	if err != nil {
		if query.IsValidation(err) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching teams")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, res)
}

type teamPage struct {
	models.Team
	ColorClass   string          `json:"colorClass"`
	Members      []models.Artist `json:"members"`
	MemberCount  int             `json:"memberCount"`
	TotalVotes   agg.StatDisplay `json:"totalVotesDisplay"`
	WinsDisplay  agg.StatDisplay `json:"winsDisplay"`
	Performances agg.StatDisplay `json:"performancesDisplay"`
}

// GetTeamBySlug answers GET /api/teams/:slug. The member roster is a
// secondary query; when it fails the roster section is empty and the
// vote total falls back to the stored stat.
func GetTeamBySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	var team models.Team
	if err := db.TeamsCollection.FindOne(ctx, bson.M{"slug": ps.ByName("slug")}).Decode(&team); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Team not found")
		return
	}
	if err := resolve.New().Team(ctx, &team, 2); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error resolving team")
		return
	}

	members, _, err := query.FindInto[models.Artist](ctx, "artists", query.Where{
		"teams": {Contains: team.TeamID},
	}, query.Options{Sort: "name"})
	if err != nil {
		log.Printf("team %s: member fetch failed: %v", team.TeamID, err)
		members = []models.Artist{}
	}

	page := teamPage{
		Team:         team,
		ColorClass:   models.TeamColorClass(team.Color),
		Members:      members,
		MemberCount:  agg.MemberCount(team.TeamID, members),
		TotalVotes:   agg.Stat(agg.TeamVotes(team, members)),
		WinsDisplay:  agg.Stat(team.Stats.Wins),
		Performances: agg.Stat(team.Stats.Performances),
	}

	utils.RespondWithJSON(w, http.StatusOK, page)
}
