package engine

import (
	"boardroom-sim/models"
)

// SelectChoice records or replaces the team's selection for a round. A saved
// entry is locked: the call reports false without touching it, matching the
// UI which greys the control out but cannot be trusted to. The selection is
// stamped with the game's live round index; that index is what the scoring
// duration window keys off later.
func SelectChoice(g *models.Game, teamID, roundID, choiceID string) (bool, error) {
	if teamID == "" || roundID == "" || choiceID == "" {
		return false, ErrMissingID
	}
	team := g.TeamByID(teamID)
	if team == nil {
		return false, ErrTeamNotFound
	}
	round := g.RoundByID(roundID)
	if round == nil {
		return false, ErrRoundNotFound
	}
	if round.ChoiceByID(choiceID) == nil {
		return false, ErrChoiceNotFound
	}

	entry := models.TeamChoice{
		RoundID:    roundID,
		ChoiceID:   choiceID,
		RoundIndex: g.CurrentRoundIndex,
		Saved:      false,
	}
	if existing := team.ChoiceForRound(roundID); existing != nil {
		if existing.Saved {
			return false, nil
		}
		*existing = entry
		return true, nil
	}
	team.Choices = append(team.Choices, entry)
	return true, nil
}

// SaveChoice flips the team's selection for a round to saved, locking it
// until the round is reset by backward navigation. Saving an already saved
// entry reports false; saving with no selection at all is an error.
func SaveChoice(g *models.Game, teamID, roundID string) (bool, error) {
	if teamID == "" || roundID == "" {
		return false, ErrMissingID
	}
	team := g.TeamByID(teamID)
	if team == nil {
		return false, ErrTeamNotFound
	}
	entry := team.ChoiceForRound(roundID)
	if entry == nil {
		return false, ErrNothingSelected
	}
	if entry.Saved {
		return false, nil
	}
	entry.Saved = true
	return true, nil
}
