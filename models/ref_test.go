package models

import (
	"encoding/json"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestRefJSONStates(t *testing.T) {
	type doc struct {
		Name string `json:"name"`
	}

	unresolved := NewRef[doc]("d1")
	if data, _ := json.Marshal(unresolved); string(data) != `"d1"` {
		t.Errorf("unresolved ref = %s, want bare id", data)
	}

	resolved := ResolvedRef("d1", &doc{Name: "x"})
	if data, _ := json.Marshal(resolved); string(data) != `{"name":"x"}` {
		t.Errorf("resolved ref = %s, want embedded doc", data)
	}

	missing := MissingRef[doc]("gone")
	if data, _ := json.Marshal(missing); string(data) != "null" {
		t.Errorf("missing ref = %s, want null", data)
	}

	var empty Ref[doc]
	if data, _ := json.Marshal(empty); string(data) != "null" {
		t.Errorf("empty ref = %s, want null", data)
	}
}

func TestRefJSONRoundTrip(t *testing.T) {
	var r Ref[Team]
	if err := json.Unmarshal([]byte(`"t1"`), &r); err != nil {
		t.Fatal(err)
	}
	if r.State != RefUnresolved || r.ID != "t1" {
		t.Errorf("got state=%v id=%q", r.State, r.ID)
	}

	if err := json.Unmarshal([]byte("null"), &r); err != nil {
		t.Fatal(err)
	}
	if !r.IsZero() {
		t.Error("null should decode to the zero ref")
	}
}

func TestRefListEmptyVersusUnresolved(t *testing.T) {
	var unresolved RefList[Team]
	if unresolved.Resolved {
		t.Error("fresh list must not claim resolution")
	}

	resolvedEmpty := RefList[Team]{Items: []Ref[Team]{}, Resolved: true}
	if !resolvedEmpty.Resolved || resolvedEmpty.Len() != 0 {
		t.Error("an expanded empty list stays empty and resolved")
	}
}

func TestRefListHelpers(t *testing.T) {
	l := NewRefList[Team]("t1", "t2")
	if got := l.IDs(); len(got) != 2 || got[0] != "t1" || got[1] != "t2" {
		t.Errorf("IDs() = %v", got)
	}
	if !l.Contains("t2") || l.Contains("t9") {
		t.Error("Contains misbehaves")
	}
	if docs := l.Docs(); len(docs) != 0 {
		t.Errorf("unresolved list must expose no docs, got %d", len(docs))
	}

	l.Items[0] = ResolvedRef("t1", &Team{TeamID: "t1"})
	if docs := l.Docs(); len(docs) != 1 || docs[0].TeamID != "t1" {
		t.Errorf("Docs() = %v", docs)
	}
}

func TestRefBSONEmptyOptional(t *testing.T) {
	// A team without a captain must still be storable.
	in := Team{TeamID: "t1", Name: "Fire Team"}
	data, err := bson.Marshal(in)
	if err != nil {
		t.Fatalf("marshal team with empty captain: %v", err)
	}

	var out Team
	if err := bson.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if !out.Captain.IsZero() {
		t.Errorf("empty captain came back as %+v", out.Captain)
	}
}

func TestRefBSONRoundTrip(t *testing.T) {
	team := Team{TeamID: "t1", Name: "Fire Team", Captain: NewRef[Artist]("a1")}
	data, err := bson.Marshal(team)
	if err != nil {
		t.Fatal(err)
	}
	var teamOut Team
	if err := bson.Unmarshal(data, &teamOut); err != nil {
		t.Fatal(err)
	}
	if teamOut.Captain.ID != "a1" || teamOut.Captain.State != RefUnresolved {
		t.Errorf("captain = %+v", teamOut.Captain)
	}

	event := Event{EventID: "e1", Title: "Finale", Artists: NewRefList[Artist]("a1", "a2")}
	data, err = bson.Marshal(event)
	if err != nil {
		t.Fatal(err)
	}
	var eventOut Event
	if err := bson.Unmarshal(data, &eventOut); err != nil {
		t.Fatal(err)
	}
	if got := eventOut.Artists.IDs(); len(got) != 2 || got[0] != "a1" || got[1] != "a2" {
		t.Errorf("lineup = %v", got)
	}
}

func TestRefListJSON(t *testing.T) {
	var l RefList[Team]
	if data, _ := json.Marshal(l); string(data) != "[]" {
		t.Errorf("nil list = %s, want []", data)
	}

	l = NewRefList[Team]("t1")
	l.Items = append(l.Items, MissingRef[Team]("gone"))
	data, _ := json.Marshal(l)
	if string(data) != `["t1",null]` {
		t.Errorf("mixed list = %s", data)
	}
}
