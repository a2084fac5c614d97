package query

import (
	"errors"
	"testing"
	"time"

	"fanhub/schema"

	"go.mongodb.org/mongo-driver/bson"
)

func mustLookup(t *testing.T, name string) *schema.Collection {
	t.Helper()
	c, err := schema.Lookup(name)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestLookupUnknownCollection(t *testing.T) {
	if _, err := schema.Lookup("widgets"); !errors.Is(err, schema.ErrUnknownCollection) {
		t.Errorf("want ErrUnknownCollection, got %v", err)
	}
}

func TestBuildFilterUnknownField(t *testing.T) {
	c := mustLookup(t, "artists")
	_, err := BuildFilter(c, Where{"nope": {Equals: 1}}, time.Now())
	if !errors.Is(err, schema.ErrUnknownField) {
		t.Errorf("unknown field must fail fast, got %v", err)
	}
}

func TestBuildFilterConditionShape(t *testing.T) {
	c := mustLookup(t, "artists")

	if _, err := BuildFilter(c, Where{"status": {}}, time.Now()); !errors.Is(err, ErrInvalidCondition) {
		t.Errorf("empty condition, got %v", err)
	}
	if _, err := BuildFilter(c, Where{"status": {Equals: "active", Contains: "x"}}, time.Now()); !errors.Is(err, ErrInvalidCondition) {
		t.Errorf("double-sided condition, got %v", err)
	}
	if _, err := BuildFilter(c, Where{"status": {Contains: "active"}}, time.Now()); !errors.Is(err, ErrInvalidCondition) {
		t.Errorf("contains on scalar, got %v", err)
	}
}

func TestBuildFilterScalarAndList(t *testing.T) {
	c := mustLookup(t, "artists")

	f, err := BuildFilter(c, Where{"status": {Equals: "active"}}, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if f["status"] != "active" {
		t.Errorf("scalar filter = %v", f)
	}

	f, err = BuildFilter(c, Where{"teams": {Contains: "t1"}}, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if f["teams"] != "t1" {
		t.Errorf("membership filter = %v", f)
	}
}

func TestBuildFilterEmptyWhere(t *testing.T) {
	c := mustLookup(t, "artists")
	f, err := BuildFilter(c, Where{}, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if len(f) != 0 {
		t.Errorf("empty where must match everything, got %v", f)
	}
}

func TestBuildFilterMultipleClausesAnded(t *testing.T) {
	c := mustLookup(t, "artists")
	f, err := BuildFilter(c, Where{
		"status":   {Equals: "active"},
		"featured": {Equals: true},
	}, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	clauses, ok := f["$and"].([]bson.M)
	if !ok || len(clauses) != 2 {
		t.Fatalf("want two $and clauses, got %v", f)
	}
}

func TestBuildFilterVirtualActive(t *testing.T) {
	c := mustLookup(t, "campaigns")
	now := time.Now()

	f, err := BuildFilter(c, Where{"active": {Equals: true}}, now)
	if err != nil {
		t.Fatal(err)
	}
	or, ok := f["$or"].(bson.A)
	if !ok || len(or) != 2 {
		t.Fatalf("active filter must expand to override-or-window, got %v", f)
	}
	override := or[0].(bson.M)
	if override["active"] != true {
		t.Errorf("first branch should match the manual override, got %v", override)
	}
	window := or[1].(bson.M)
	if _, ok := window["startdate"]; !ok {
		t.Errorf("second branch should constrain the window, got %v", window)
	}

	if _, err := BuildFilter(c, Where{"active": {Equals: "yes"}}, now); !errors.Is(err, ErrInvalidCondition) {
		t.Errorf("non-boolean active, got %v", err)
	}
}

func TestBuildSort(t *testing.T) {
	c := mustLookup(t, "hashtags")

	s, err := BuildSort(c, "")
	if err != nil || s != nil {
		t.Errorf("empty sort = %v, %v; want natural order", s, err)
	}

	s, err = BuildSort(c, "-mentionCount")
	if err != nil {
		t.Fatal(err)
	}
	if s[0].Key != "mentioncount" || s[0].Value != -1 {
		t.Errorf("descending sort = %v", s)
	}

	s, err = BuildSort(c, "mentionCount")
	if err != nil || s[0].Value != 1 {
		t.Errorf("ascending sort = %v, %v", s, err)
	}

	if _, err := BuildSort(c, "platform"); !errors.Is(err, ErrInvalidCondition) {
		t.Errorf("unsortable field, got %v", err)
	}
	if _, err := BuildSort(c, "bogus"); !errors.Is(err, schema.ErrUnknownField) {
		t.Errorf("unknown sort field, got %v", err)
	}
}
