package news

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

func validateNews(n *models.News) string {
	if n.Title == "" {
		return "Title is required"
	}
	if n.Content == "" {
		return "Content is required"
	}
	if !models.ValidEnum(models.NewsCategories, n.Category) {
		return "Invalid category"
	}
	if !models.ValidEnum(models.NewsStatuses, n.Status) {
		return "Invalid status"
	}
	return ""
}

func CreateNews(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var article models.News
	if err := json.NewDecoder(r.Body).Decode(&article); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if article.Status == "" {
		article.Status = "draft"
	}
	if msg := validateNews(&article); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	if article.Slug == "" {
		article.Slug = utils.SlugOrRandom(article.Title)
	}
	if err := schema.EnsureUniqueSlug(ctx, "news", article.Slug, ""); err != nil {
		utils.RespondWithError(w, http.StatusConflict, err.Error())
		return
	}

	article.NewsID = utils.GetUUID()
	article.CreatorID = utils.GetUserIDFromRequest(r)
	article.CreatedAt = time.Now()
	article.UpdatedAt = article.CreatedAt
	if article.PublishedDate.IsZero() && article.Status == "published" {
		article.PublishedDate = article.CreatedAt
	}

	if _, err := db.NewsCollection.InsertOne(ctx, article); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create article")
		return
	}

	go mq.Emit(ctx, "news-created", models.Index{
		EntityType: "news", EntityId: article.NewsID, Method: http.MethodPost,
	})

	utils.RespondWithJSON(w, http.StatusCreated, article)
}

func UpdateNews(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	var existing models.News
	if err := db.NewsCollection.FindOne(ctx, bson.M{"slug": ps.ByName("slug")}).Decode(&existing); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Article not found")
		return
	}
	if !canModify(r, existing.CreatorID) {
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized to edit this article")
		return
	}

	updated := existing
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	updated.NewsID = existing.NewsID
	updated.CreatorID = existing.CreatorID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	if updated.Status == "published" && updated.PublishedDate.IsZero() {
		updated.PublishedDate = updated.UpdatedAt
	}

	if msg := validateNews(&updated); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}
	if updated.Slug != existing.Slug {
		if err := schema.EnsureUniqueSlug(ctx, "news", updated.Slug, existing.NewsID); err != nil {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
	}

	if _, err := db.NewsCollection.ReplaceOne(ctx, bson.M{"newsid": existing.NewsID}, updated); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update article")
		return
	}

	go mq.Emit(ctx, "news-edited", models.Index{
		EntityType: "news", EntityId: existing.NewsID, Method: http.MethodPut,
	})

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

func DeleteNews(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	var existing models.News
	if err := db.NewsCollection.FindOne(ctx, bson.M{"slug": ps.ByName("slug")}).Decode(&existing); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Article not found")
		return
	}
	if !canModify(r, existing.CreatorID) {
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized to delete this article")
		return
	}

	if _, err := db.NewsCollection.DeleteOne(ctx, bson.M{"newsid": existing.NewsID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete article")
		return
	}

	go mq.Emit(ctx, "news-deleted", models.Index{
		EntityType: "news", EntityId: existing.NewsID, Method: http.MethodDelete,
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Article deleted"})
}

func canModify(r *http.Request, creatorID string) bool {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		return false
	}
	return userID == creatorID || utils.GetUserRoleFromRequest(r) == "admin"
}
