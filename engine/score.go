package engine

import (
	"boardroom-sim/models"
)

// Capacity grows by a flat amount every round regardless of what teams pick.
const capacityGrowthPerRound = 2.0

type choiceKey struct {
	RoundID  string
	ChoiceID string
}

// ComputeScores recomputes every team's score vector from its full choice
// history, evaluated at roundIndex, on top of the baseline. Pure: inputs are
// never mutated and identical inputs always produce identical output, so the
// lifecycle controller can call it on every transition and a reporting view
// can replay it per round index.
func ComputeScores(teams []models.Team, rounds []models.Round, roundIndex int, baseline models.ScoreVector) []models.Team {
	catalog := indexChoices(rounds)

	out := make([]models.Team, len(teams))
	for i, team := range teams {
		out[i] = team
		out[i].Score = scoreTeam(team, catalog, roundIndex, baseline)
	}
	return out
}

// ScoreSeries replays ComputeScores once per round index 0..upTo, building a
// score-over-time table. Entry k holds the teams as they stood at index k.
func ScoreSeries(teams []models.Team, rounds []models.Round, upTo int, baseline models.ScoreVector) [][]models.Team {
	if upTo < 0 {
		return nil
	}
	series := make([][]models.Team, 0, upTo+1)
	for k := 0; k <= upTo; k++ {
		series = append(series, ComputeScores(teams, rounds, k, baseline))
	}
	return series
}

func indexChoices(rounds []models.Round) map[choiceKey]models.Choice {
	catalog := make(map[choiceKey]models.Choice)
	for _, round := range rounds {
		for _, choice := range round.Choices {
			catalog[choiceKey{RoundID: round.ID, ChoiceID: choice.ID}] = choice
		}
	}
	return catalog
}

func scoreTeam(team models.Team, catalog map[choiceKey]models.Choice, roundIndex int, baseline models.ScoreVector) models.ScoreVector {
	var profit, liquidity, solvency, it float64
	capacityUsed := 0.0

	// Deltas apply from the entire history, unfiltered by round index. Only
	// the capacity contribution is windowed by the choice's duration.
	for _, tc := range team.Choices {
		choice, ok := catalog[choiceKey{RoundID: tc.RoundID, ChoiceID: tc.ChoiceID}]
		if !ok {
			continue
		}
		profit += choice.Delta.Profit
		liquidity += choice.Delta.Liquidity
		solvency += choice.Delta.Solvency
		it += choice.Delta.IT
		if capacityActive(tc, choice, roundIndex) {
			capacityUsed += choice.Delta.Capacity
		}
	}

	// Interaction pass: a bonus fires whenever the paired choice appears
	// anywhere in the history, regardless of selection order. Duplicate
	// effects each fire on their own.
	for _, tc := range team.Choices {
		choice, ok := catalog[choiceKey{RoundID: tc.RoundID, ChoiceID: tc.ChoiceID}]
		if !ok {
			continue
		}
		for _, effect := range choice.Effects {
			if holdsChoice(team, effect.RoundID, effect.ChoiceID) {
				profit += effect.Bonus
			}
		}
	}

	// capacityUsed is tracked above but the capacity dimension is still the
	// flat per-round growth; product has not decided whether the windowed sum
	// should replace it. Keep both until that call is made.
	return models.ScoreVector{
		Profit:    baseline.Profit + profit,
		Liquidity: baseline.Liquidity + liquidity,
		Solvency:  baseline.Solvency + solvency,
		IT:        baseline.IT + it,
		Capacity:  baseline.Capacity + float64(roundIndex)*capacityGrowthPerRound,
	}
}

// capacityActive reports whether the choice's capacity delta is live at the
// evaluated index: active from the round it was taken, for Duration rounds,
// or forever when Duration is nil.
func capacityActive(tc models.TeamChoice, choice models.Choice, roundIndex int) bool {
	if roundIndex < tc.RoundIndex {
		return false
	}
	if choice.Duration == nil {
		return true
	}
	return roundIndex < tc.RoundIndex+*choice.Duration
}

func holdsChoice(team models.Team, roundID, choiceID string) bool {
	for _, tc := range team.Choices {
		if tc.RoundID == roundID && tc.ChoiceID == choiceID {
			return true
		}
	}
	return false
}
