package home

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fanhub/models"

	"github.com/julienschmidt/httprouter"
)

func getSection(t *testing.T, h *Handlers, name string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/home/"+name, nil)
	rec := httptest.NewRecorder()
	h.GetSection(rec, req, httprouter.Params{{Key: "section", Value: name}})

	var body map[string]any
	if rec.Code == http.StatusOK {
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
	}
	return rec, body
}

func TestGetSectionFixture(t *testing.T) {
	h := NewHandlers(FixtureSource{
		Artists: []models.Artist{{ArtistID: "a1", Name: "Chen Chusheng", Featured: true}},
	})

	rec, body := getSection(t, h, "featured-artists")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	docs, ok := body["docs"].([]any)
	if !ok || len(docs) != 1 {
		t.Fatalf("docs = %v", body["docs"])
	}
}

func TestGetSectionUnknown(t *testing.T) {
	h := NewHandlers(FixtureSource{})
	rec, _ := getSection(t, h, "stock-prices")
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown section status = %d, want 404", rec.Code)
	}
}

func TestGetSectionDegradesToEmpty(t *testing.T) {
	h := NewHandlers(FixtureSource{Err: errors.New("storage down")})

	rec, body := getSection(t, h, "latest-news")
	if rec.Code != http.StatusOK {
		t.Fatalf("a broken section must not 500, got %d", rec.Code)
	}
	docs, ok := body["docs"].([]any)
	if !ok || len(docs) != 0 {
		t.Errorf("docs = %v, want empty", body["docs"])
	}
}

func TestDegradedSectionIsNotCached(t *testing.T) {
	var setKeys []string
	origGet, origSet := cacheGet, cacheSet
	cacheGet = func(string, any) bool { return false }
	cacheSet = func(key string, _ any, _ time.Duration) { setKeys = append(setKeys, key) }
	defer func() { cacheGet, cacheSet = origGet, origSet }()

	broken := NewHandlers(FixtureSource{Err: errors.New("storage down")})
	rec, _ := getSection(t, broken, "latest-news")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(setKeys) != 0 {
		t.Errorf("degraded section was cached under %v", setKeys)
	}

	healthy := NewHandlers(FixtureSource{
		News: []models.News{{NewsID: "n1", Title: "Finale recap"}},
	})
	if rec, _ := getSection(t, healthy, "latest-news"); rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(setKeys) != 1 || setKeys[0] != "home:latest-news" {
		t.Errorf("healthy section cache writes = %v", setKeys)
	}
}

func TestGetHomeSkipsCacheWhenAnySectionFails(t *testing.T) {
	var setCalls int
	origGet, origSet := cacheGet, cacheSet
	cacheGet = func(string, any) bool { return false }
	cacheSet = func(string, any, time.Duration) { setCalls++ }
	defer func() { cacheGet, cacheSet = origGet, origSet }()

	h := NewHandlers(FixtureSource{Err: errors.New("storage down")})
	req := httptest.NewRequest(http.MethodGet, "/api/home", nil)
	rec := httptest.NewRecorder()
	h.GetHome(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if setCalls != 0 {
		t.Errorf("degraded home page was cached (%d writes)", setCalls)
	}
}

func TestActiveCampaignsSectionAttachesProgress(t *testing.T) {
	h := NewHandlers(FixtureSource{
		Campaigns: []models.Campaign{{
			CampaignID: "c1",
			Type:       "voting",
			Goals:      []models.Goal{{Target: 200, Current: 50}},
		}},
	})

	rec, body := getSection(t, h, "active-campaigns")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	docs := body["docs"].([]any)
	card := docs[0].(map[string]any)
	if card["typeLabel"] != "Voting Campaign" {
		t.Errorf("typeLabel = %v", card["typeLabel"])
	}
	progress := card["goalProgress"].([]any)
	first := progress[0].(map[string]any)
	if first["percent"].(float64) != 25 {
		t.Errorf("percent = %v, want 25", first["percent"])
	}
}
