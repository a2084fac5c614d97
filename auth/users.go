package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"fanhub/db"
	"fanhub/models"
	"fanhub/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// User management is admin-only; routes wrap these with RequireRole.

func ListUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	users, err := utils.FindAndDecode[models.User](r.Context(), db.UserCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, users)
}

func CreateUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Role     string `json:"role"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Name == "" || input.Email == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name, email and password are required")
		return
	}
	if input.Role == "" {
		input.Role = "editor"
	}
	if !models.ValidEnum(models.UserRoles, input.Role) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid role")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		UserID:    utils.GetUUID(),
		Name:      input.Name,
		Email:     input.Email,
		Role:      input.Role,
		Password:  string(hash),
		CreatedAt: time.Now(),
	}
	if _, err := db.UserCollection.InsertOne(r.Context(), user); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, user)
}

func UpdateUserRole(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if !models.ValidEnum(models.UserRoles, input.Role) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid role")
		return
	}

	result, err := db.UserCollection.UpdateOne(
		r.Context(),
		bson.M{"userid": ps.ByName("id")},
		bson.M{"$set": bson.M{"role": input.Role}},
	)
	if err != nil || result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Role updated"})
}

func DeleteUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	result, err := db.UserCollection.DeleteOne(r.Context(), bson.M{"userid": ps.ByName("id")})
	if err != nil || result.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "User deleted"})
}
