// Package home assembles the aggregate sections the landing page shows.
// Each section degrades to empty on failure; the page never 500s because
// one sub-query broke.
package home

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"fanhub/agg"
	"fanhub/models"
	"fanhub/rdx"
	"fanhub/utils"

	"github.com/julienschmidt/httprouter"
)

const cacheTTL = 60 * time.Second

// Swappable in tests.
var (
	cacheGet = rdx.CacheGetJSON
	cacheSet = rdx.CacheSetJSON
)

var sectionNames = []string{
	"featured-artists", "upcoming-events", "active-campaigns",
	"latest-news", "trending-hashtags",
}

type Handlers struct {
	source Source
}

func NewHandlers(src Source) *Handlers {
	return &Handlers{source: src}
}

type campaignCard struct {
	models.Campaign
	EffectiveActive bool               `json:"effectiveActive"`
	TypeLabel       string             `json:"typeLabel"`
	GoalProgress    []agg.GoalProgress `json:"goalProgress"`
}

func (h *Handlers) section(ctx context.Context, name string) (any, error) {
	switch name {
	case "featured-artists":
		return h.source.FeaturedArtists(ctx)
	case "upcoming-events":
		return h.source.UpcomingEvents(ctx)
	case "active-campaigns":
		campaigns, err := h.source.ActiveCampaigns(ctx)
		if err != nil {
			return nil, err
		}
		now := time.Now()
		cards := make([]campaignCard, 0, len(campaigns))
		for _, c := range campaigns {
			cards = append(cards, campaignCard{
				Campaign:        c,
				EffectiveActive: agg.EffectiveActive(c, now),
				TypeLabel:       models.CampaignTypeLabel(c.Type),
				GoalProgress:    agg.GoalProgressList(c.Goals),
			})
		}
		return cards, nil
	case "latest-news":
		return h.source.LatestNews(ctx)
	case "trending-hashtags":
		return h.source.TrendingHashtags(ctx)
	}
	return nil, nil
}

// GetSection answers GET /api/home/:section, redis-cached for 60s.
func (h *Handlers) GetSection(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	name := ps.ByName("section")
	if !validSection(name) {
		utils.RespondWithError(w, http.StatusNotFound, "Unknown section")
		return
	}

	cacheKey := "home:" + name
	var cached map[string]any
	if cacheGet(cacheKey, &cached) {
		utils.RespondWithJSON(w, http.StatusOK, cached)
		return
	}

	docs, err := h.section(r.Context(), name)
	if err != nil {
		log.Printf("home section %s failed: %v", name, err)
		docs = []any{}
	}

	payload := utils.M{"section": name, "docs": docs}
	// A degraded section is served but not cached, so the next request
	// retries the source instead of pinning the empty result for a TTL.
	if err == nil {
		cacheSet(cacheKey, payload, cacheTTL)
	}
	utils.RespondWithJSON(w, http.StatusOK, payload)
}

// GetHome answers GET /api/home with every section, fetched
// concurrently. A failed section is served empty.
func (h *Handlers) GetHome(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	cacheKey := "home:all"
	var cached map[string]any
	if cacheGet(cacheKey, &cached) {
		utils.RespondWithJSON(w, http.StatusOK, cached)
		return
	}

	ctx := r.Context()
	sections := make(map[string]any, len(sectionNames))
	var mu sync.Mutex
	var wg sync.WaitGroup
	var degraded bool
	for _, name := range sectionNames {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			docs, err := h.section(ctx, name)
			if err != nil {
				log.Printf("home section %s failed: %v", name, err)
				docs = []any{}
			}
			mu.Lock()
			sections[name] = docs
			if err != nil {
				degraded = true
			}
			mu.Unlock()
		}(name)
	}
	wg.Wait()

	if !degraded {
		cacheSet(cacheKey, sections, cacheTTL)
	}
	utils.RespondWithJSON(w, http.StatusOK, sections)
}

func validSection(name string) bool {
	for _, s := range sectionNames {
		if s == name {
			return true
		}
	}
	return false
}
