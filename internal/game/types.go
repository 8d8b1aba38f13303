package game

import "fmt"

// Stage names a state in the screen-flow machine.
type Stage string

const (
	StagePlayerCount   Stage = "PlayerCount"
	StagePlayerNames   Stage = "PlayerNames"
	StageThemeSelect   Stage = "ThemeSelect"
	StageNumberConfirm Stage = "NumberConfirm"
	StageDiscussion    Stage = "Discussion"
	StageResultInput   Stage = "ResultInput"
	StageResultReveal  Stage = "ResultReveal"
)

const (
	MinPlayers = 3
	MaxPlayers = 10

	// NumberRange is the size of the pool secret numbers are drawn from.
	NumberRange = 100

	// MaxNameLength bounds a trimmed player name.
	MaxNameLength = 20
)

// CategoryCustom marks a theme entered by the players themselves.
const CategoryCustom = "custom"

const defaultCustomMetric = "1:低い-100:高い"

type SessionConfig struct {
	PlayerCount int `json:"playerCount"`
}

// Player pairs a roster name with its secretly assigned number.
// Immutable once assigned; a new numbering cycle produces new players.
type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number int    `json:"number"`
}

type Theme struct {
	ID         string `json:"id"`
	Text       string `json:"theme"`
	Metric     string `json:"evaluationMetric"`
	CategoryID string `json:"categoryId"`
}

// CustomTheme builds a player-authored theme. An empty metric gets the
// standard low-to-high scale.
func CustomTheme(text, metric string) Theme {
	if metric == "" {
		metric = defaultCustomMetric
	}
	return Theme{ID: "custom", Text: text, Metric: metric, CategoryID: CategoryCustom}
}

// Result is the scored comparison of a submitted order against the
// canonical ascending-number order.
type Result struct {
	PerPosition []bool  `json:"perPosition"`
	MatchRate   float64 `json:"matchRate"`
	AllCorrect  bool    `json:"allCorrect"`
	RatingTier  int     `json:"ratingTier"`
}

// RevealEvent discloses one position's correctness during the result
// presentation.
type RevealEvent struct {
	Index    int    `json:"index"`
	PlayerID string `json:"playerId"`
	Correct  bool   `json:"correct"`
}

// DefaultPlayerName returns the placeholder roster name for a 1-based
// index in the given locale.
func DefaultPlayerName(index int, locale string) string {
	if locale == "ja" {
		return fmt.Sprintf("ユーザー%d", index)
	}
	return fmt.Sprintf("Player%d", index)
}
