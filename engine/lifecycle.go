package engine

import (
	"time"

	"boardroom-sim/models"
)

// Lifecycle transitions mutate the game snapshot in place and report whether
// anything changed. An unmet precondition is a silent no-op (false, never an
// error): double clicks and stale facilitator views are expected races, not
// faults. Every applied transition recomputes all team vectors at the new
// round index so the persisted scores and timestamps stay consistent.

// StartGame resets every round, opens round 0 and stamps the game as running.
// No-op if the game is already running or has no rounds.
func StartGame(g *models.Game, now time.Time) bool {
	if g.Running() || len(g.Rounds) == 0 {
		return false
	}
	for i := range g.Rounds {
		g.Rounds[i].StartedAt = nil
		g.Rounds[i].FinishedAt = nil
	}
	g.Rounds[0].StartedAt = timePtr(now)
	g.CurrentRoundIndex = 0
	g.CurrentRoundID = g.Rounds[0].ID
	g.StartedAt = timePtr(now)
	g.FinishedAt = nil
	for i := range g.Teams {
		unlockChoices(&g.Teams[i], nil)
	}
	g.Teams = ComputeScores(g.Teams, g.Rounds, 0, g.Baseline)
	return true
}

// NextRound closes the current round, opens the next one and advances the
// index. No-op when the game is not running or already on the last round.
func NextRound(g *models.Game, now time.Time) bool {
	if !g.Running() || g.CurrentRoundIndex >= len(g.Rounds)-1 {
		return false
	}
	g.Rounds[g.CurrentRoundIndex].FinishedAt = timePtr(now)
	g.CurrentRoundIndex++
	next := &g.Rounds[g.CurrentRoundIndex]
	next.StartedAt = timePtr(now)
	g.CurrentRoundID = next.ID
	g.Teams = ComputeScores(g.Teams, g.Rounds, g.CurrentRoundIndex, g.Baseline)
	return true
}

// PreviousRound wipes the current round's timestamps, reopens the previous
// round and decrements the index. The wiped timestamps are gone for good;
// there is no audit copy. Saved gates on both touched rounds are released so
// teams can choose again. No-op when not running or already on round 0.
func PreviousRound(g *models.Game, now time.Time) bool {
	if !g.Running() || g.CurrentRoundIndex == 0 {
		return false
	}
	cur := &g.Rounds[g.CurrentRoundIndex]
	cur.StartedAt = nil
	cur.FinishedAt = nil

	g.CurrentRoundIndex--
	prev := &g.Rounds[g.CurrentRoundIndex]
	prev.StartedAt = timePtr(now)
	prev.FinishedAt = nil
	g.CurrentRoundID = prev.ID

	reset := map[string]bool{cur.ID: true, prev.ID: true}
	for i := range g.Teams {
		unlockChoices(&g.Teams[i], reset)
	}
	g.Teams = ComputeScores(g.Teams, g.Rounds, g.CurrentRoundIndex, g.Baseline)
	return true
}

// StopGame closes the current round and finishes the game. The index stays
// where it is so the final standings remain addressable. No-op when the game
// is not running.
func StopGame(g *models.Game, now time.Time) bool {
	if !g.Running() {
		return false
	}
	if g.CurrentRoundIndex < len(g.Rounds) {
		g.Rounds[g.CurrentRoundIndex].FinishedAt = timePtr(now)
	}
	g.FinishedAt = timePtr(now)
	g.Teams = ComputeScores(g.Teams, g.Rounds, g.CurrentRoundIndex, g.Baseline)
	return true
}

// AddRound appends a round to the list. Structural edits are editor-time
// only: no-op while the game is running.
func AddRound(g *models.Game, round models.Round) bool {
	if g.Running() {
		return false
	}
	round.Index = len(g.Rounds)
	round.StartedAt = nil
	round.FinishedAt = nil
	g.Rounds = append(g.Rounds, round)
	return true
}

// RemoveRound deletes a round by id and reindexes the rest. No-op while the
// game is running or when the id is unknown.
func RemoveRound(g *models.Game, roundID string) bool {
	if g.Running() {
		return false
	}
	at := -1
	for i := range g.Rounds {
		if g.Rounds[i].ID == roundID {
			at = i
			break
		}
	}
	if at < 0 {
		return false
	}
	g.Rounds = append(g.Rounds[:at], g.Rounds[at+1:]...)
	for i := range g.Rounds {
		g.Rounds[i].Index = i
	}
	if g.CurrentRoundIndex >= len(g.Rounds) {
		g.CurrentRoundIndex = 0
		g.CurrentRoundID = ""
		if len(g.Rounds) > 0 {
			g.CurrentRoundID = g.Rounds[0].ID
		}
	}
	return true
}

// unlockChoices clears the saved gate on the team's entries for the given
// rounds, or on every entry when rounds is nil. History itself is kept.
func unlockChoices(team *models.Team, rounds map[string]bool) {
	for i := range team.Choices {
		if rounds == nil || rounds[team.Choices[i].RoundID] {
			team.Choices[i].Saved = false
		}
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
