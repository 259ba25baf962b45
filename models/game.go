package models

import (
	"time"
)

// Game is the single shared record everyone plays against: rounds and teams
// are embedded so one document is always a complete snapshot.
type Game struct {
	ID                string      `json:"id" bson:"id"`
	Name              string      `json:"name" bson:"name"`
	InviteKey         string      `json:"inviteKey" bson:"inviteKey"`
	CurrentRoundIndex int         `json:"currentRoundIndex" bson:"currentRoundIndex"`
	CurrentRoundID    string      `json:"currentRoundId" bson:"currentRoundId"`
	StartedAt         *time.Time  `json:"startedAt,omitempty" bson:"startedAt,omitempty"`
	FinishedAt        *time.Time  `json:"finishedAt,omitempty" bson:"finishedAt,omitempty"`
	Baseline          ScoreVector `json:"baseline" bson:"baseline"`
	Rounds            []Round     `json:"rounds" bson:"rounds"`
	Teams             []Team      `json:"teams" bson:"teams"`
}

// Round is one phase of the game. Shock deltas are stored for upcoming
// scenario content but scoring does not apply them yet.
type Round struct {
	ID              string      `json:"id" bson:"id"`
	Index           int         `json:"index" bson:"index"`
	DurationMinutes int         `json:"durationMinutes" bson:"durationMinutes"`
	StartedAt       *time.Time  `json:"startedAt,omitempty" bson:"startedAt,omitempty"`
	FinishedAt      *time.Time  `json:"finishedAt,omitempty" bson:"finishedAt,omitempty"`
	Shock           ScoreVector `json:"shock" bson:"shock"`
	Choices         []Choice    `json:"choices" bson:"choices"`
}

// Choice is one option a team can take in a round. Duration limits how many
// rounds the capacity contribution stays active; nil means unbounded. Blocks
// lists choice ids that the editor refuses to combine with this one; the
// engine does not enforce it.
type Choice struct {
	ID       string              `json:"id" bson:"id"`
	RoundID  string              `json:"roundId" bson:"roundId"`
	Label    string              `json:"label" bson:"label"`
	Delta    ScoreVector         `json:"delta" bson:"delta"`
	Duration *int                `json:"duration,omitempty" bson:"duration,omitempty"`
	Effects  []InteractionEffect `json:"effects,omitempty" bson:"effects,omitempty"`
	Reveals  []RevealMessage     `json:"reveals,omitempty" bson:"reveals,omitempty"`
	Blocks   []string            `json:"blocks,omitempty" bson:"blocks,omitempty"`
}

// InteractionEffect grants a profit bonus when the team also holds the
// referenced choice anywhere in its history.
type InteractionEffect struct {
	RoundID  string  `json:"roundId" bson:"roundId"`
	ChoiceID string  `json:"choiceId" bson:"choiceId"`
	Bonus    float64 `json:"bonus" bson:"bonus"`
}

// RevealMessage is text surfaced to the team some rounds after selection.
// Presentation only, never scored.
type RevealMessage struct {
	Text        string `json:"text" bson:"text"`
	AfterRounds int    `json:"afterRounds" bson:"afterRounds"`
}

// Team carries its choice history and the last score the engine produced.
// Score is a derived cache; the history is the source of truth.
type Team struct {
	ID      string       `json:"id" bson:"id"`
	Name    string       `json:"name" bson:"name"`
	Score   ScoreVector  `json:"score" bson:"score"`
	Choices []TeamChoice `json:"choices" bson:"choices"`
}

// TeamChoice records a team's selection for one round. At most one entry per
// round id; a saved entry is locked until the round is reset by backward
// navigation.
type TeamChoice struct {
	RoundID    string `json:"roundId" bson:"roundId"`
	ChoiceID   string `json:"choiceId" bson:"choiceId"`
	RoundIndex int    `json:"roundIndex" bson:"roundIndex"`
	Saved      bool   `json:"saved" bson:"saved"`
	Accepted   *bool  `json:"accepted,omitempty" bson:"accepted,omitempty"`
}

// Running reports whether the game has started and not yet finished.
func (g *Game) Running() bool {
	return g.StartedAt != nil && g.FinishedAt == nil
}

// Running reports whether the round has started and not yet finished.
func (r *Round) Running() bool {
	return r.StartedAt != nil && r.FinishedAt == nil
}

// TeamByID returns a pointer into the game's team list, or nil.
func (g *Game) TeamByID(id string) *Team {
	for i := range g.Teams {
		if g.Teams[i].ID == id {
			return &g.Teams[i]
		}
	}
	return nil
}

// RoundByID returns a pointer into the game's round list, or nil.
func (g *Game) RoundByID(id string) *Round {
	for i := range g.Rounds {
		if g.Rounds[i].ID == id {
			return &g.Rounds[i]
		}
	}
	return nil
}

// ChoiceByID returns the round's choice with the given id, or nil.
func (r *Round) ChoiceByID(id string) *Choice {
	for i := range r.Choices {
		if r.Choices[i].ID == id {
			return &r.Choices[i]
		}
	}
	return nil
}

// ChoiceForRound returns the team's selection for a round, or nil.
func (t *Team) ChoiceForRound(roundID string) *TeamChoice {
	for i := range t.Choices {
		if t.Choices[i].RoundID == roundID {
			return &t.Choices[i]
		}
	}
	return nil
}
