package news

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

// GetNews answers GET /api/news. Unauthenticated readers only see
// published articles.
func GetNews(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	where := query.Where{}
	if v := q.Get("category"); v != "" {
		where["category"] = query.Condition{Equals: v}
	}
	if v := q.Get("featured"); v != "" {
		where["featured"] = query.Condition{Equals: v == "true"}
	}
	if v := q.Get("artist"); v != "" {
		where["relatedArtists"] = query.Condition{Contains: v}
	}
	if v := q.Get("status"); v != "" && utils.GetUserIDFromRequest(r) != "" {
		where["status"] = query.Condition{Equals: v}
	} else {
		where["status"] = query.Condition{Equals: "published"}
	}

	opts := query.OptionsFromRequest(r, 20, 100)
	if opts.Sort == "" {
		opts.Sort = "-publishedDate"
	}
	res, err := query.Find(r.Context(), "news", where, opts)
	if err != nil {
		if query.IsValidation(err) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching news")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, res)
}

// GetNewsBySlug answers GET /api/news/:slug at depth 2 with related
// artists and events embedded.
func GetNewsBySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	var article models.News
	if err := db.NewsCollection.FindOne(ctx, bson.M{"slug": ps.ByName("slug")}).Decode(&article); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Article not found")
		return
	}
	if article.Status != "published" && utils.GetUserIDFromRequest(r) == "" {
		utils.RespondWithError(w, http.StatusNotFound, "Article not found")
		return
	}
	if err := resolve.New().News(ctx, &article, 2); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error resolving article")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, article)
}
