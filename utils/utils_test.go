package utils

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Chen Chusheng", "chen-chusheng"},
		{"  Fire & Water  ", "fire-water"},
		{"already-a-slug", "already-a-slug"},
		{"!!!", ""},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSplitTags(t *testing.T) {
	got := SplitTags("Fire, water ,fire,  ")
	if len(got) != 2 || got[0] != "fire" || got[1] != "water" {
		t.Errorf("SplitTags = %v", got)
	}
	if got := SplitTags(""); len(got) != 0 {
		t.Errorf("empty input = %v", got)
	}
}

func TestSlugOrRandom(t *testing.T) {
	if got := SlugOrRandom("Chen Chusheng"); got != "chen-chusheng" {
		t.Errorf("SlugOrRandom = %q", got)
	}

	got := SlugOrRandom("陈楚生")
	if len(got) != 8 {
		t.Fatalf("fallback slug = %q, want 8 chars", got)
	}
	if got != strings.ToLower(got) {
		t.Errorf("fallback slug %q must be lowercase", got)
	}
}

func TestParsePagination(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/artists?page=3&limit=10", nil)
	skip, limit := ParsePagination(r, 20, 100)
	if skip != 20 || limit != 10 {
		t.Errorf("got skip=%d limit=%d, want 20, 10", skip, limit)
	}

	r = httptest.NewRequest("GET", "/api/artists", nil)
	skip, limit = ParsePagination(r, 20, 100)
	if skip != 0 || limit != 20 {
		t.Errorf("defaults: skip=%d limit=%d", skip, limit)
	}

	r = httptest.NewRequest("GET", "/api/artists?limit=9999&page=0", nil)
	skip, limit = ParsePagination(r, 20, 100)
	if skip != 0 || limit != 100 {
		t.Errorf("clamping: skip=%d limit=%d", skip, limit)
	}
}
