// Package agg computes derived values the pages display: member counts,
// abbreviated magnitudes, campaign goal progress, vote rollups and the
// effective campaign active state. Every function is pure over already
// resolved data.
package agg

import (
	"fmt"
	"time"

	"fanhub/models"
)

// FormatMagnitude abbreviates a non-negative count for display. Values
// below 1,000 render as the plain integer; 1K–999K with no decimals;
// millions and billions with one. Raw values stay available alongside
// the formatted string, this never replaces them.
func FormatMagnitude(n int64) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(n)/1_000_000_000)
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.0fK", float64(n)/1_000)
	case n <= 0:
		return "0"
	default:
		return fmt.Sprintf("%d", n)
	}
}

// GoalProgress carries both the raw percentage (may exceed 100) and the
// clamped width for a progress bar. A zero or missing target is
// degenerate, not an error: it reports 0%.
type GoalProgress struct {
	models.Goal
	Percent        float64 `json:"percent"`
	BarWidth       float64 `json:"barWidth"`
	CurrentDisplay string  `json:"currentDisplay"`
	TargetDisplay  string  `json:"targetDisplay"`
}

func Progress(g models.Goal) GoalProgress {
	p := GoalProgress{
		Goal:           g,
		CurrentDisplay: FormatMagnitude(g.Current),
		TargetDisplay:  FormatMagnitude(g.Target),
	}
	if g.Target <= 0 {
		return p
	}

	p.Percent = float64(g.Current) / float64(g.Target) * 100
	p.BarWidth = p.Percent
	if p.BarWidth > 100 {
		p.BarWidth = 100
	}
	if p.BarWidth < 0 {
		p.BarWidth = 0
	}
	return p
}

func GoalProgressList(goals []models.Goal) []GoalProgress {
	out := make([]GoalProgress, 0, len(goals))
	for _, g := range goals {
		out = append(out, Progress(g))
	}
	return out
}

// MemberCount is always recomputed from the artist collection, never
// read from a stored field, so it cannot drift.
func MemberCount(teamID string, artists []models.Artist) int {
	count := 0
	for i := range artists {
		if artists[i].Teams.Contains(teamID) {
			count++
		}
	}
	return count
}

// TeamVotes returns the team's vote total. The stored stat is
// authoritative when present; the per-member rollup is the fallback for
// teams whose stat was never maintained.
func TeamVotes(team models.Team, members []models.Artist) int64 {
	if team.Stats.TotalVotes > 0 {
		return team.Stats.TotalVotes
	}
	var total int64
	for i := range members {
		total += members[i].Stats.TotalVotes
	}
	return total
}

// EffectiveActive derives a campaign's active state: a stored manual
// override wins, otherwise the date window decides.
func EffectiveActive(c models.Campaign, now time.Time) bool {
	if c.Active != nil {
		return *c.Active
	}
	return !now.Before(c.StartDate) && !now.After(c.EndDate)
}

// StatDisplay pairs a raw counter with its abbreviated form.
type StatDisplay struct {
	Value   int64  `json:"value"`
	Display string `json:"display"`
}

func Stat(n int64) StatDisplay {
	return StatDisplay{Value: n, Display: FormatMagnitude(n)}
}
