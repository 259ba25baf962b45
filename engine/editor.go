package engine

import (
	"boardroom-sim/models"
)

// RenameTeam changes a team's display name. Renaming is allowed while the
// game runs; only removal is editor-time. Reports false when the name is
// already current.
func RenameTeam(g *models.Game, teamID, name string) (bool, error) {
	if teamID == "" {
		return false, ErrMissingID
	}
	team := g.TeamByID(teamID)
	if team == nil {
		return false, ErrTeamNotFound
	}
	if team.Name == name {
		return false, nil
	}
	team.Name = name
	return true, nil
}

// AddChoiceEffect appends an interaction effect to a choice. Structural
// edits are editor-time only: no-op while the game is running.
func AddChoiceEffect(g *models.Game, roundID, choiceID string, effect models.InteractionEffect) (bool, error) {
	if roundID == "" || choiceID == "" {
		return false, ErrMissingID
	}
	if g.Running() {
		return false, nil
	}
	round := g.RoundByID(roundID)
	if round == nil {
		return false, ErrRoundNotFound
	}
	choice := round.ChoiceByID(choiceID)
	if choice == nil {
		return false, ErrChoiceNotFound
	}
	choice.Effects = append(choice.Effects, effect)
	return true, nil
}

// RemoveChoiceEffect deletes a choice's interaction effect by position.
// Effects carry no id of their own and duplicates are legal, so position is
// the only stable handle. No-op while the game is running.
func RemoveChoiceEffect(g *models.Game, roundID, choiceID string, effectIndex int) (bool, error) {
	if roundID == "" || choiceID == "" {
		return false, ErrMissingID
	}
	if g.Running() {
		return false, nil
	}
	round := g.RoundByID(roundID)
	if round == nil {
		return false, ErrRoundNotFound
	}
	choice := round.ChoiceByID(choiceID)
	if choice == nil {
		return false, ErrChoiceNotFound
	}
	if effectIndex < 0 || effectIndex >= len(choice.Effects) {
		return false, ErrEffectNotFound
	}
	choice.Effects = append(choice.Effects[:effectIndex], choice.Effects[effectIndex+1:]...)
	return true, nil
}
