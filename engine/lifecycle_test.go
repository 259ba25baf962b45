package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boardroom-sim/models"
)

func testGame() *models.Game {
	return &models.Game{
		ID:        "g1",
		InviteKey: "ABC123",
		Baseline:  models.ScoreVector{Liquidity: 20},
		Rounds:    testRounds(),
		Teams: []models.Team{
			{ID: "t1", Name: "alpha"},
			{ID: "t2", Name: "beta"},
		},
	}
}

func TestStartGame(t *testing.T) {
	g := testGame()
	now := time.Now()

	require.True(t, StartGame(g, now))
	assert.True(t, g.Running())
	assert.Equal(t, 0, g.CurrentRoundIndex)
	assert.Equal(t, "r0", g.CurrentRoundID)
	require.NotNil(t, g.Rounds[0].StartedAt)
	assert.Equal(t, now, *g.Rounds[0].StartedAt)
	for _, r := range g.Rounds[1:] {
		assert.Nil(t, r.StartedAt)
		assert.Nil(t, r.FinishedAt)
	}
	// Scores land on the baseline floor at index 0.
	assert.Equal(t, models.ScoreVector{Liquidity: 20}, g.Teams[0].Score)
}

func TestStartGameNoOpWhenRunning(t *testing.T) {
	g := testGame()
	require.True(t, StartGame(g, time.Now()))
	startedAt := *g.StartedAt
	assert.False(t, StartGame(g, time.Now().Add(time.Minute)))
	assert.Equal(t, startedAt, *g.StartedAt)
}

func TestStartGameNoOpWithoutRounds(t *testing.T) {
	g := testGame()
	g.Rounds = nil
	assert.False(t, StartGame(g, time.Now()))
	assert.False(t, g.Running())
}

func TestStartGameReleasesAllSavedGates(t *testing.T) {
	g := testGame()
	g.Teams[0].Choices = []models.TeamChoice{
		{RoundID: "r0", ChoiceID: "c-a", Saved: true},
		{RoundID: "r1", ChoiceID: "c-c", Saved: true},
	}
	require.True(t, StartGame(g, time.Now()))
	for _, tc := range g.Teams[0].Choices {
		assert.False(t, tc.Saved)
	}
	// History survives a restart; only the gate resets.
	assert.Len(t, g.Teams[0].Choices, 2)
}

func TestNextRound(t *testing.T) {
	g := testGame()
	start := time.Now()
	require.True(t, StartGame(g, start))

	later := start.Add(10 * time.Minute)
	require.True(t, NextRound(g, later))
	assert.Equal(t, 1, g.CurrentRoundIndex)
	assert.Equal(t, "r1", g.CurrentRoundID)
	require.NotNil(t, g.Rounds[0].FinishedAt)
	assert.Equal(t, later, *g.Rounds[0].FinishedAt)
	require.NotNil(t, g.Rounds[1].StartedAt)
	assert.Equal(t, later, *g.Rounds[1].StartedAt)
	// Flat capacity growth shows up at index 1.
	assert.Equal(t, 2.0, g.Teams[0].Score.Capacity)
}

func TestNextRoundNoOpOnLastRound(t *testing.T) {
	g := testGame()
	require.True(t, StartGame(g, time.Now()))
	for NextRound(g, time.Now()) {
	}
	assert.Equal(t, len(g.Rounds)-1, g.CurrentRoundIndex)
	assert.False(t, NextRound(g, time.Now()))
}

func TestNextRoundNoOpWhenNotRunning(t *testing.T) {
	g := testGame()
	assert.False(t, NextRound(g, time.Now()))
}

func TestPreviousRound(t *testing.T) {
	g := testGame()
	start := time.Now()
	require.True(t, StartGame(g, start))
	require.True(t, NextRound(g, start.Add(time.Minute)))

	back := start.Add(2 * time.Minute)
	require.True(t, PreviousRound(g, back))
	assert.Equal(t, 0, g.CurrentRoundIndex)
	assert.Equal(t, "r0", g.CurrentRoundID)
	// The abandoned round loses its timestamps entirely.
	assert.Nil(t, g.Rounds[1].StartedAt)
	assert.Nil(t, g.Rounds[1].FinishedAt)
	// The reopened round runs again from now.
	require.NotNil(t, g.Rounds[0].StartedAt)
	assert.Equal(t, back, *g.Rounds[0].StartedAt)
	assert.Nil(t, g.Rounds[0].FinishedAt)
	assert.Equal(t, 0.0, g.Teams[0].Score.Capacity)
}

func TestPreviousRoundReleasesSavedGates(t *testing.T) {
	g := testGame()
	require.True(t, StartGame(g, time.Now()))
	require.True(t, NextRound(g, time.Now()))

	g.Teams[0].Choices = []models.TeamChoice{
		{RoundID: "r0", ChoiceID: "c-a", RoundIndex: 0, Saved: true},
		{RoundID: "r1", ChoiceID: "c-c", RoundIndex: 1, Saved: true},
	}
	require.True(t, PreviousRound(g, time.Now()))
	assert.False(t, g.Teams[0].Choices[0].Saved)
	assert.False(t, g.Teams[0].Choices[1].Saved)
}

func TestPreviousRoundKeepsUntouchedSavedGates(t *testing.T) {
	g := testGame()
	require.True(t, StartGame(g, time.Now()))
	require.True(t, NextRound(g, time.Now()))
	require.True(t, NextRound(g, time.Now()))

	// Stepping back from index 2 only reopens r1 and r2; r0's lock stays.
	g.Teams[0].Choices = []models.TeamChoice{
		{RoundID: "r0", ChoiceID: "c-a", RoundIndex: 0, Saved: true},
		{RoundID: "r1", ChoiceID: "c-c", RoundIndex: 1, Saved: true},
	}
	g.Teams[1].Choices = []models.TeamChoice{
		{RoundID: "r0", ChoiceID: "c-b", RoundIndex: 0, Saved: true},
	}
	require.True(t, PreviousRound(g, time.Now()))

	assert.True(t, g.Teams[0].Choices[0].Saved)
	assert.False(t, g.Teams[0].Choices[1].Saved)
	assert.True(t, g.Teams[1].Choices[0].Saved)
}

func TestPreviousRoundNoOpAtRoundZero(t *testing.T) {
	g := testGame()
	require.True(t, StartGame(g, time.Now()))
	assert.False(t, PreviousRound(g, time.Now()))
	assert.Equal(t, 0, g.CurrentRoundIndex)
}

func TestStopGame(t *testing.T) {
	g := testGame()
	start := time.Now()
	require.True(t, StartGame(g, start))
	require.True(t, NextRound(g, start.Add(time.Minute)))

	end := start.Add(time.Hour)
	require.True(t, StopGame(g, end))
	assert.False(t, g.Running())
	require.NotNil(t, g.FinishedAt)
	assert.Equal(t, end, *g.FinishedAt)
	require.NotNil(t, g.Rounds[1].FinishedAt)
	assert.Equal(t, end, *g.Rounds[1].FinishedAt)
	// Index stays put so the final standings remain addressable.
	assert.Equal(t, 1, g.CurrentRoundIndex)
}

func TestStopGameNoOpWhenNotRunning(t *testing.T) {
	g := testGame()
	assert.False(t, StopGame(g, time.Now()))
	require.True(t, StartGame(g, time.Now()))
	require.True(t, StopGame(g, time.Now()))
	finished := *g.FinishedAt
	assert.False(t, StopGame(g, time.Now().Add(time.Minute)))
	assert.Equal(t, finished, *g.FinishedAt)
}

func TestAddRound(t *testing.T) {
	g := testGame()
	added := models.Round{ID: "r6", Index: 99}
	require.True(t, AddRound(g, added))
	assert.Equal(t, 6, g.Rounds[6].Index)

	require.True(t, StartGame(g, time.Now()))
	assert.False(t, AddRound(g, models.Round{ID: "r7"}))
}

func TestRemoveRound(t *testing.T) {
	g := testGame()
	require.True(t, RemoveRound(g, "r1"))
	assert.Len(t, g.Rounds, 5)
	for i, r := range g.Rounds {
		assert.Equal(t, i, r.Index)
	}
	assert.False(t, RemoveRound(g, "nope"))

	require.True(t, StartGame(g, time.Now()))
	assert.False(t, RemoveRound(g, "r0"))
}
