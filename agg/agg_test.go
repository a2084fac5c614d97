package agg

import (
	"testing"
	"time"

	"fanhub/models"
)

func TestFormatMagnitude(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{-5, "0"},
		{1, "1"},
		{999, "999"},
		{1000, "1K"},
		{1500, "2K"},
		{999_999, "1000K"},
		{1_000_000, "1.0M"},
		{2_500_000, "2.5M"},
		{1_000_000_000, "1.0B"},
		{1_340_000_000, "1.3B"},
	}
	for _, c := range cases {
		if got := FormatMagnitude(c.in); got != c.want {
			t.Errorf("FormatMagnitude(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestProgress(t *testing.T) {
	g := models.Goal{Description: "votes", Target: 120, Current: 90}
	p := Progress(g)
	if p.Percent != 75 {
		t.Errorf("Percent = %v, want 75", p.Percent)
	}
	if p.BarWidth != 75 {
		t.Errorf("BarWidth = %v, want 75", p.BarWidth)
	}
}

func TestProgressOverTarget(t *testing.T) {
	p := Progress(models.Goal{Target: 100, Current: 250})
	if p.Percent != 250 {
		t.Errorf("Percent = %v, want raw 250", p.Percent)
	}
	if p.BarWidth != 100 {
		t.Errorf("BarWidth = %v, want clamped 100", p.BarWidth)
	}
}

func TestProgressZeroTarget(t *testing.T) {
	p := Progress(models.Goal{Target: 0, Current: 50})
	if p.Percent != 0 || p.BarWidth != 0 {
		t.Errorf("zero target should report 0%%, got percent=%v width=%v", p.Percent, p.BarWidth)
	}
}

func TestMemberCount(t *testing.T) {
	artists := []models.Artist{
		{ArtistID: "a1", Teams: models.NewRefList[models.Team]("t1", "t2")},
		{ArtistID: "a2", Teams: models.NewRefList[models.Team]("t2")},
		{ArtistID: "a3", Teams: models.NewRefList[models.Team]()},
	}
	if got := MemberCount("t2", artists); got != 2 {
		t.Errorf("MemberCount(t2) = %d, want 2", got)
	}
	if got := MemberCount("t9", artists); got != 0 {
		t.Errorf("MemberCount(t9) = %d, want 0", got)
	}
}

func TestTeamVotes(t *testing.T) {
	members := []models.Artist{
		{Stats: models.ArtistStats{TotalVotes: 100}},
		{Stats: models.ArtistStats{TotalVotes: 250}},
	}

	stored := models.Team{Stats: models.TeamStats{TotalVotes: 9000}}
	if got := TeamVotes(stored, members); got != 9000 {
		t.Errorf("stored stat should win, got %d", got)
	}

	unmaintained := models.Team{}
	if got := TeamVotes(unmaintained, members); got != 350 {
		t.Errorf("rollup fallback = %d, want 350", got)
	}
}

func TestEffectiveActive(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	inWindow := models.Campaign{
		StartDate: now.AddDate(0, 0, -7),
		EndDate:   now.AddDate(0, 0, 7),
	}
	if !EffectiveActive(inWindow, now) {
		t.Error("campaign inside its window should be active")
	}

	expired := models.Campaign{
		StartDate: now.AddDate(0, -2, 0),
		EndDate:   now.AddDate(0, -1, 0),
	}
	if EffectiveActive(expired, now) {
		t.Error("campaign past its window should be inactive")
	}

	on := true
	forced := expired
	forced.Active = &on
	if !EffectiveActive(forced, now) {
		t.Error("manual override should beat the window")
	}

	off := false
	silenced := inWindow
	silenced.Active = &off
	if EffectiveActive(silenced, now) {
		t.Error("manual off override should beat the window")
	}
}
