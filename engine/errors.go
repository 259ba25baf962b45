package engine

import "errors"

var ErrMissingID = errors.New("missing required id")
var ErrGameNotFound = errors.New("game not found")
var ErrTeamNotFound = errors.New("team not found")
var ErrRoundNotFound = errors.New("round not found")
var ErrChoiceNotFound = errors.New("choice not found")
var ErrEffectNotFound = errors.New("effect not found")
var ErrNothingSelected = errors.New("no selection for round")
