package resolve

import (
	"context"
	"testing"

	"fanhub/models"
)

func fixtureLoaders() Loaders {
	artists := map[string]*models.Artist{
		"a1": {ArtistID: "a1", Name: "Chen Chusheng", Teams: models.NewRefList[models.Team]("t1")},
		"a2": {ArtistID: "a2", Name: "Zhang Yuan", Teams: models.NewRefList[models.Team]("t1", "t2")},
	}
	teams := map[string]*models.Team{
		"t1": {TeamID: "t1", Name: "Fire Team", Captain: models.NewRef[models.Artist]("a1")},
		"t2": {TeamID: "t2", Name: "Water Team", Captain: models.NewRef[models.Artist]("a2")},
	}
	events := map[string]*models.Event{
		"e1": {EventID: "e1", Title: "Finale", Artists: models.NewRefList[models.Artist]("a1", "a2")},
	}
	campaigns := map[string]*models.Campaign{
		"c1": {CampaignID: "c1", Title: "Vote Drive", Artists: models.NewRefList[models.Artist]("a1")},
	}

	pick := func(src map[string]*models.Artist) func(context.Context, []string) (map[string]*models.Artist, error) {
		return func(_ context.Context, ids []string) (map[string]*models.Artist, error) {
			out := map[string]*models.Artist{}
			for _, id := range ids {
				if doc, ok := src[id]; ok {
					copied := *doc
					out[id] = &copied
				}
			}
			return out, nil
		}
	}

	return Loaders{
		Artists: pick(artists),
		Teams: func(_ context.Context, ids []string) (map[string]*models.Team, error) {
			out := map[string]*models.Team{}
			for _, id := range ids {
				if doc, ok := teams[id]; ok {
					copied := *doc
					out[id] = &copied
				}
			}
			return out, nil
		},
		Events: func(_ context.Context, ids []string) (map[string]*models.Event, error) {
			out := map[string]*models.Event{}
			for _, id := range ids {
				if doc, ok := events[id]; ok {
					copied := *doc
					out[id] = &copied
				}
			}
			return out, nil
		},
		Campaigns: func(_ context.Context, ids []string) (map[string]*models.Campaign, error) {
			out := map[string]*models.Campaign{}
			for _, id := range ids {
				if doc, ok := campaigns[id]; ok {
					copied := *doc
					out[id] = &copied
				}
			}
			return out, nil
		},
	}
}

func TestArtistDepthZeroLeavesRefsAlone(t *testing.T) {
	r := NewWithLoaders(fixtureLoaders())
	a := models.Artist{ArtistID: "a1", Teams: models.NewRefList[models.Team]("t1")}

	if err := r.Artist(context.Background(), &a, 0); err != nil {
		t.Fatal(err)
	}
	if a.Teams.Resolved {
		t.Error("depth 0 must not resolve anything")
	}
}

func TestArtistDepthOneStopsAtCaptainID(t *testing.T) {
	r := NewWithLoaders(fixtureLoaders())
	a := models.Artist{ArtistID: "a2", Teams: models.NewRefList[models.Team]("t1", "t2")}

	if err := r.Artist(context.Background(), &a, 1); err != nil {
		t.Fatal(err)
	}
	docs := a.Teams.Docs()
	if len(docs) != 2 {
		t.Fatalf("want both teams resolved, got %d", len(docs))
	}
	for _, team := range docs {
		if team.Captain.IsResolved() {
			t.Errorf("team %s captain resolved at depth 1", team.TeamID)
		}
		if team.Captain.ID == "" {
			t.Errorf("team %s captain id lost", team.TeamID)
		}
	}
}

func TestArtistDepthTwoResolvesCaptains(t *testing.T) {
	r := NewWithLoaders(fixtureLoaders())
	a := models.Artist{ArtistID: "a2", Teams: models.NewRefList[models.Team]("t1")}

	if err := r.Artist(context.Background(), &a, 2); err != nil {
		t.Fatal(err)
	}
	team := a.Teams.Docs()[0]
	if !team.Captain.IsResolved() {
		t.Fatal("captain should be resolved at depth 2")
	}
	if team.Captain.Doc.Name != "Chen Chusheng" {
		t.Errorf("captain = %q", team.Captain.Doc.Name)
	}
	// The depth budget is spent; the captain's own teams stay as ids.
	if team.Captain.Doc.Teams.Resolved {
		t.Error("captain's teams must stay unresolved past the budget")
	}
}

func TestDanglingReferenceBecomesMissing(t *testing.T) {
	r := NewWithLoaders(fixtureLoaders())
	a := models.Artist{ArtistID: "a1", Teams: models.NewRefList[models.Team]("t1", "deleted-team")}

	if err := r.Artist(context.Background(), &a, 1); err != nil {
		t.Fatal(err)
	}
	if !a.Teams.Resolved {
		t.Fatal("list should be marked resolved")
	}
	if got := len(a.Teams.Docs()); got != 1 {
		t.Fatalf("want 1 live doc, got %d", got)
	}
	if !a.Teams.Items[1].IsMissing() {
		t.Error("dangling id must become an explicit missing marker")
	}
}

func TestEventResolvesLineup(t *testing.T) {
	r := NewWithLoaders(fixtureLoaders())
	e := models.Event{EventID: "e1", Artists: models.NewRefList[models.Artist]("a1", "a2")}

	if err := r.Event(context.Background(), &e, 2); err != nil {
		t.Fatal(err)
	}
	docs := e.Artists.Docs()
	if len(docs) != 2 {
		t.Fatalf("want 2 artists, got %d", len(docs))
	}
	if !docs[0].Teams.Resolved {
		t.Error("depth 2 should expand the artists' teams")
	}
}

func TestHashtagMetricOptionalRefs(t *testing.T) {
	r := NewWithLoaders(fixtureLoaders())

	h := models.HashtagMetric{HashtagID: "h1"}
	if err := r.HashtagMetric(context.Background(), &h, 2); err != nil {
		t.Fatal(err)
	}
	if !h.Artist.IsZero() || !h.Campaign.IsZero() {
		t.Error("absent refs must stay zero")
	}

	h = models.HashtagMetric{
		HashtagID: "h2",
		Artist:    models.NewRef[models.Artist]("a1"),
		Campaign:  models.NewRef[models.Campaign]("c1"),
	}
	if err := r.HashtagMetric(context.Background(), &h, 1); err != nil {
		t.Fatal(err)
	}
	if !h.Artist.IsResolved() || !h.Campaign.IsResolved() {
		t.Error("present refs should resolve at depth 1")
	}
}
