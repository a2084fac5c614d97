package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ArtistsCollection   *mongo.Collection
	TeamsCollection     *mongo.Collection
	EventsCollection    *mongo.Collection
	CampaignsCollection *mongo.Collection
	NewsCollection      *mongo.Collection
	HashtagsCollection  *mongo.Collection
	UserCollection      *mongo.Collection
	Client              *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database("fanhub")
	ArtistsCollection = database.Collection("artists")
	TeamsCollection = database.Collection("teams")
	EventsCollection = database.Collection("events")
	CampaignsCollection = database.Collection("campaigns")
	NewsCollection = database.Collection("news")
	HashtagsCollection = database.Collection("hashtags")
	UserCollection = database.Collection("users")
}
