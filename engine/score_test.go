package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boardroom-sim/models"
)

func intPtr(n int) *int { return &n }

func testRounds() []models.Round {
	return []models.Round{
		{
			ID:    "r0",
			Index: 0,
			Choices: []models.Choice{
				{ID: "c-a", RoundID: "r0", Delta: models.ScoreVector{Profit: 10, Capacity: 5}, Duration: intPtr(2)},
				{
					ID: "c-b", RoundID: "r0", Delta: models.ScoreVector{Liquidity: -3},
					Effects: []models.InteractionEffect{{RoundID: "r1", ChoiceID: "c-c", Bonus: 7}},
				},
			},
		},
		{
			ID:    "r1",
			Index: 1,
			Choices: []models.Choice{
				{ID: "c-c", RoundID: "r1", Delta: models.ScoreVector{IT: 4}},
				{ID: "c-d", RoundID: "r1", Delta: models.ScoreVector{Capacity: 2}},
			},
		},
		{ID: "r2", Index: 2},
		{ID: "r3", Index: 3},
		{ID: "r4", Index: 4},
		{ID: "r5", Index: 5},
	}
}

func TestComputeScoresBaselineFloor(t *testing.T) {
	teams := []models.Team{{ID: "t1", Name: "alpha"}}
	baseline := models.ScoreVector{Profit: 100, Liquidity: 50, Solvency: 25, IT: 10, Capacity: 8}

	got := ComputeScores(teams, testRounds(), 3, baseline)
	require.Len(t, got, 1)
	assert.Equal(t, models.ScoreVector{
		Profit:    100,
		Liquidity: 50,
		Solvency:  25,
		IT:        10,
		Capacity:  8 + 3*2,
	}, got[0].Score)
}

func TestComputeScoresIdempotent(t *testing.T) {
	teams := []models.Team{{
		ID: "t1",
		Choices: []models.TeamChoice{
			{RoundID: "r0", ChoiceID: "c-a", RoundIndex: 0, Saved: true},
			{RoundID: "r1", ChoiceID: "c-c", RoundIndex: 1},
		},
	}}
	rounds := testRounds()
	baseline := models.ScoreVector{}

	first := ComputeScores(teams, rounds, 1, baseline)
	second := ComputeScores(teams, rounds, 1, baseline)
	assert.Equal(t, first, second)

	// Evaluating another index in between must not leak state.
	ComputeScores(teams, rounds, 4, baseline)
	third := ComputeScores(teams, rounds, 1, baseline)
	assert.Equal(t, first, third)
}

func TestComputeScoresDoesNotMutateInputs(t *testing.T) {
	teams := []models.Team{{
		ID:      "t1",
		Score:   models.ScoreVector{Profit: 999},
		Choices: []models.TeamChoice{{RoundID: "r0", ChoiceID: "c-a", RoundIndex: 0}},
	}}
	ComputeScores(teams, testRounds(), 2, models.ScoreVector{})
	assert.Equal(t, 999.0, teams[0].Score.Profit)
}

func TestComputeScoresDeltasIgnoreEvaluatedIndex(t *testing.T) {
	// Choices made in later rounds still count toward the four plain
	// accumulators; there is no filtering by evaluated index.
	teams := []models.Team{{
		ID: "t1",
		Choices: []models.TeamChoice{
			{RoundID: "r1", ChoiceID: "c-c", RoundIndex: 1},
		},
	}}
	got := ComputeScores(teams, testRounds(), 0, models.ScoreVector{})
	assert.Equal(t, 4.0, got[0].Score.IT)
}

func TestCapacityWindowBoundedDuration(t *testing.T) {
	choice := models.Choice{ID: "c-a", Duration: intPtr(2)}
	tc := models.TeamChoice{RoundID: "r3", ChoiceID: "c-a", RoundIndex: 3}

	assert.False(t, capacityActive(tc, choice, 2))
	assert.True(t, capacityActive(tc, choice, 3))
	assert.True(t, capacityActive(tc, choice, 4))
	assert.False(t, capacityActive(tc, choice, 5))
}

func TestCapacityWindowUnbounded(t *testing.T) {
	choice := models.Choice{ID: "c-a"}
	tc := models.TeamChoice{RoundID: "r3", ChoiceID: "c-a", RoundIndex: 3}

	assert.False(t, capacityActive(tc, choice, 0))
	assert.False(t, capacityActive(tc, choice, 2))
	assert.True(t, capacityActive(tc, choice, 3))
	assert.True(t, capacityActive(tc, choice, 40))
}

func TestCapacityFieldIsFlatGrowthOnly(t *testing.T) {
	// The windowed capacity sum is tracked but the persisted capacity field
	// only moves by the flat per-round constant.
	teams := []models.Team{{
		ID:      "t1",
		Choices: []models.TeamChoice{{RoundID: "r0", ChoiceID: "c-a", RoundIndex: 0}},
	}}
	got := ComputeScores(teams, testRounds(), 0, models.ScoreVector{})
	assert.Equal(t, 0.0, got[0].Score.Capacity)

	got = ComputeScores(teams, testRounds(), 1, models.ScoreVector{})
	assert.Equal(t, 2.0, got[0].Score.Capacity)
}

func TestInteractionBonusOrderIndependent(t *testing.T) {
	baseline := models.ScoreVector{}
	rounds := testRounds()

	// c-b (round 0) carries a bonus targeting c-c (round 1). Whichever order
	// the history lists them in, the bonus fires exactly once.
	forward := []models.Team{{ID: "t1", Choices: []models.TeamChoice{
		{RoundID: "r0", ChoiceID: "c-b", RoundIndex: 0},
		{RoundID: "r1", ChoiceID: "c-c", RoundIndex: 1},
	}}}
	backward := []models.Team{{ID: "t1", Choices: []models.TeamChoice{
		{RoundID: "r1", ChoiceID: "c-c", RoundIndex: 1},
		{RoundID: "r0", ChoiceID: "c-b", RoundIndex: 0},
	}}}

	a := ComputeScores(forward, rounds, 1, baseline)
	b := ComputeScores(backward, rounds, 1, baseline)
	assert.Equal(t, 7.0, a[0].Score.Profit)
	assert.Equal(t, a[0].Score, b[0].Score)
}

func TestInteractionBonusRequiresPartner(t *testing.T) {
	teams := []models.Team{{ID: "t1", Choices: []models.TeamChoice{
		{RoundID: "r0", ChoiceID: "c-b", RoundIndex: 0},
	}}}
	got := ComputeScores(teams, testRounds(), 1, models.ScoreVector{})
	assert.Equal(t, 0.0, got[0].Score.Profit)
	assert.Equal(t, -3.0, got[0].Score.Liquidity)
}

func TestInteractionBonusDuplicateEffectsBothFire(t *testing.T) {
	rounds := testRounds()
	rounds[0].Choices[1].Effects = []models.InteractionEffect{
		{RoundID: "r1", ChoiceID: "c-c", Bonus: 7},
		{RoundID: "r1", ChoiceID: "c-c", Bonus: 7},
	}
	teams := []models.Team{{ID: "t1", Choices: []models.TeamChoice{
		{RoundID: "r0", ChoiceID: "c-b", RoundIndex: 0},
		{RoundID: "r1", ChoiceID: "c-c", RoundIndex: 1},
	}}}
	got := ComputeScores(teams, rounds, 1, models.ScoreVector{})
	assert.Equal(t, 14.0, got[0].Score.Profit)
}

func TestComputeScoresUnknownChoiceSkipped(t *testing.T) {
	teams := []models.Team{{ID: "t1", Choices: []models.TeamChoice{
		{RoundID: "r0", ChoiceID: "gone", RoundIndex: 0},
	}}}
	got := ComputeScores(teams, testRounds(), 2, models.ScoreVector{})
	assert.Equal(t, models.ScoreVector{Capacity: 4}, got[0].Score)
}

func TestScoreSeries(t *testing.T) {
	teams := []models.Team{{ID: "t1", Choices: []models.TeamChoice{
		{RoundID: "r0", ChoiceID: "c-a", RoundIndex: 0},
	}}}
	series := ScoreSeries(teams, testRounds(), 2, models.ScoreVector{})
	require.Len(t, series, 3)
	for k, snapshot := range series {
		assert.Equal(t, float64(k)*2, snapshot[0].Score.Capacity)
		assert.Equal(t, 10.0, snapshot[0].Score.Profit)
	}

	assert.Nil(t, ScoreSeries(teams, testRounds(), -1, models.ScoreVector{}))
}

func TestEndToEndScenario(t *testing.T) {
	// Round 0 has choice A {profit:+10, capacity:+5, duration:2}; the team
	// selects and saves it in round 0.
	rounds := testRounds()
	teams := []models.Team{{ID: "t1", Choices: []models.TeamChoice{
		{RoundID: "r0", ChoiceID: "c-a", RoundIndex: 0, Saved: true},
	}}}

	atZero := ComputeScores(teams, rounds, 0, models.ScoreVector{})
	assert.Equal(t, models.ScoreVector{Profit: 10}, atZero[0].Score)

	atOne := ComputeScores(teams, rounds, 1, models.ScoreVector{})
	assert.Equal(t, models.ScoreVector{Profit: 10, Capacity: 2}, atOne[0].Score)
}
