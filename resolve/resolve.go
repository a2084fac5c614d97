// Package resolve expands relationship references into embedded entities
// up to a bounded depth. Cycles (artist → team → captain → artist) are
// cut by the depth budget, never by cycle detection. Dangling ids become
// explicit missing markers; they are never errors.
package resolve

import (
	"context"

	"fanhub/models"
)

// Loaders batch-fetch entities by id. The default set reads mongo; tests
// install fixture loaders so resolution runs without storage.
type Loaders struct {
	Artists   func(ctx context.Context, ids []string) (map[string]*models.Artist, error)
	Teams     func(ctx context.Context, ids []string) (map[string]*models.Team, error)
	Events    func(ctx context.Context, ids []string) (map[string]*models.Event, error)
	Campaigns func(ctx context.Context, ids []string) (map[string]*models.Campaign, error)
}

type Resolver struct {
	loaders Loaders
}

func New() *Resolver {
	return &Resolver{loaders: mongoLoaders()}
}

func NewWithLoaders(l Loaders) *Resolver {
	return &Resolver{loaders: l}
}

// Artist expands teams one hop; at depth 2 each team's captain as well.
func (r *Resolver) Artist(ctx context.Context, a *models.Artist, depth int) error {
	if depth <= 0 {
		return nil
	}

	teams, err := r.loaders.Teams(ctx, a.Teams.IDs())
	if err != nil {
		return err
	}
	resolveList(&a.Teams, teams)

	if depth >= 2 {
		captainIDs := make([]string, 0, len(teams))
		for _, t := range a.Teams.Docs() {
			if t.Captain.ID != "" {
				captainIDs = append(captainIDs, t.Captain.ID)
			}
		}
		captains, err := r.loaders.Artists(ctx, captainIDs)
		if err != nil {
			return err
		}
		for _, t := range a.Teams.Docs() {
			resolveRef(&t.Captain, captains)
		}
	}
	return nil
}

// Team expands the captain; at depth 2 the captain's teams as well.
func (r *Resolver) Team(ctx context.Context, t *models.Team, depth int) error {
	if depth <= 0 || t.Captain.IsZero() {
		return nil
	}

	captains, err := r.loaders.Artists(ctx, []string{t.Captain.ID})
	if err != nil {
		return err
	}
	resolveRef(&t.Captain, captains)

	if depth >= 2 && t.Captain.IsResolved() {
		teams, err := r.loaders.Teams(ctx, t.Captain.Doc.Teams.IDs())
		if err != nil {
			return err
		}
		resolveList(&t.Captain.Doc.Teams, teams)
	}
	return nil
}

// Event expands participating artists; at depth 2 their teams as well.
func (r *Resolver) Event(ctx context.Context, e *models.Event, depth int) error {
	return r.artistList(ctx, &e.Artists, depth)
}

// Campaign expands supported artists; at depth 2 their teams as well.
func (r *Resolver) Campaign(ctx context.Context, c *models.Campaign, depth int) error {
	return r.artistList(ctx, &c.Artists, depth)
}

// News expands related artists and events.
func (r *Resolver) News(ctx context.Context, n *models.News, depth int) error {
	if depth <= 0 {
		return nil
	}
	if err := r.artistList(ctx, &n.Artists, depth); err != nil {
		return err
	}

	events, err := r.loaders.Events(ctx, n.Events.IDs())
	if err != nil {
		return err
	}
	resolveList(&n.Events, events)

	if depth >= 2 {
		for _, e := range n.Events.Docs() {
			if err := r.artistList(ctx, &e.Artists, 1); err != nil {
				return err
			}
		}
	}
	return nil
}

// HashtagMetric expands the optional related artist and campaign.
func (r *Resolver) HashtagMetric(ctx context.Context, h *models.HashtagMetric, depth int) error {
	if depth <= 0 {
		return nil
	}

	if !h.Artist.IsZero() {
		artists, err := r.loaders.Artists(ctx, []string{h.Artist.ID})
		if err != nil {
			return err
		}
		resolveRef(&h.Artist, artists)
		if depth >= 2 && h.Artist.IsResolved() {
			teams, err := r.loaders.Teams(ctx, h.Artist.Doc.Teams.IDs())
			if err != nil {
				return err
			}
			resolveList(&h.Artist.Doc.Teams, teams)
		}
	}

	if !h.Campaign.IsZero() {
		campaigns, err := r.loaders.Campaigns(ctx, []string{h.Campaign.ID})
		if err != nil {
			return err
		}
		resolveRef(&h.Campaign, campaigns)
		if depth >= 2 && h.Campaign.IsResolved() {
			if err := r.artistList(ctx, &h.Campaign.Doc.Artists, 1); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Resolver) artistList(ctx context.Context, list *models.RefList[models.Artist], depth int) error {
	if depth <= 0 {
		return nil
	}

	artists, err := r.loaders.Artists(ctx, list.IDs())
	if err != nil {
		return err
	}
	resolveList(list, artists)

	if depth >= 2 {
		teamIDs := make([]string, 0)
		for _, a := range list.Docs() {
			teamIDs = append(teamIDs, a.Teams.IDs()...)
		}
		teams, err := r.loaders.Teams(ctx, teamIDs)
		if err != nil {
			return err
		}
		for _, a := range list.Docs() {
			resolveList(&a.Teams, teams)
		}
	}
	return nil
}

func resolveRef[T any](ref *models.Ref[T], docs map[string]*T) {
	if ref.ID == "" {
		return
	}
	if doc, ok := docs[ref.ID]; ok {
		*ref = models.ResolvedRef(ref.ID, doc)
	} else {
		*ref = models.MissingRef[T](ref.ID)
	}
}

func resolveList[T any](list *models.RefList[T], docs map[string]*T) {
	for i := range list.Items {
		resolveRef(&list.Items[i], docs)
	}
	list.Resolved = true
}
