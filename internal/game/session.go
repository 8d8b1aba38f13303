package game

import (
	"strings"
	"sync"
)

// Session is the single source of truth for one play-through. One
// instance exists per process; the connection layer may touch it from
// several goroutines, so every operation runs under the mutex and
// either commits fully or leaves the state untouched.
type Session struct {
	mu sync.Mutex

	locale   string
	assigner *Assigner

	config         SessionConfig
	playerNames    []string
	theme          *Theme
	players        []Player
	submittedOrder []string
	correctOrder   []string
	stage          Stage
}

// Snapshot is a copy of the public session state for the event surface.
type Snapshot struct {
	Stage          Stage         `json:"stage"`
	Config         SessionConfig `json:"config"`
	PlayerNames    []string      `json:"playerNames"`
	Theme          *Theme        `json:"theme,omitempty"`
	Players        []Player      `json:"players"`
	SubmittedOrder []string      `json:"submittedOrder,omitempty"`
	CorrectOrder   []string      `json:"correctOrder,omitempty"`
}

func NewSession(locale string, assigner *Assigner) *Session {
	if assigner == nil {
		assigner = NewAssigner()
	}
	return &Session{
		locale:   locale,
		assigner: assigner,
		config:   SessionConfig{PlayerCount: MinPlayers},
		stage:    StagePlayerCount,
	}
}

func (s *Session) Stage() Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		Stage:          s.stage,
		Config:         s.config,
		PlayerNames:    append([]string(nil), s.playerNames...),
		Players:        append([]Player(nil), s.players...),
		SubmittedOrder: append([]string(nil), s.submittedOrder...),
		CorrectOrder:   append([]string(nil), s.correctOrder...),
	}
	if s.theme != nil {
		t := *s.theme
		snap.Theme = &t
	}
	return snap
}

// SetPlayerCount fixes the roster size and moves on to name entry.
// Names are prefilled with locale defaults so the name stage always
// holds exactly playerCount entries.
func (s *Session) SetPlayerCount(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != StagePlayerCount {
		return ErrInvalidStage
	}
	if n < MinPlayers || n > MaxPlayers {
		return ErrPlayerCountRange
	}
	s.config.PlayerCount = n
	s.playerNames = make([]string, n)
	for i := range s.playerNames {
		s.playerNames[i] = DefaultPlayerName(i+1, s.locale)
	}
	s.stage = StagePlayerNames
	return nil
}

// SetPlayerNames validates and stores the roster, then moves to theme
// selection. Any prior numbering is invalidated because the roster it
// was drawn for may have changed.
func (s *Session) SetPlayerNames(names []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != StagePlayerNames {
		return ErrInvalidStage
	}
	trimmed, err := validateNames(names, s.config.PlayerCount)
	if err != nil {
		return err
	}
	s.playerNames = trimmed
	s.players = nil
	s.stage = StageThemeSelect
	return nil
}

func validateNames(names []string, count int) ([]string, error) {
	if len(names) != count {
		return nil, ErrPlayerCountMismatch
	}
	trimmed := make([]string, len(names))
	seen := make(map[string]bool, len(names))
	for i, name := range names {
		t := strings.TrimSpace(name)
		if t == "" {
			return nil, ErrPlayerNameEmpty
		}
		if len([]rune(t)) > MaxNameLength {
			return nil, ErrPlayerNameTooLong
		}
		folded := strings.ToLower(t)
		if seen[folded] {
			return nil, ErrPlayerNameDuplicate
		}
		seen[folded] = true
		trimmed[i] = t
	}
	return trimmed, nil
}

// SelectTheme confirms the discussion theme and, as the entry action of
// the numbering stage, assigns secret numbers if the current roster has
// none yet.
func (s *Session) SelectTheme(t Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != StageThemeSelect {
		return ErrInvalidStage
	}
	if t.Text == "" {
		return ErrThemeMissing
	}
	if len(s.players) == 0 {
		players, err := s.assigner.Assign(s.playerNames)
		if err != nil {
			return err
		}
		if _, err := CorrectOrder(players); err != nil {
			// Defective assignment: drop it and stay here so the
			// numbering cycle restarts cleanly.
			s.players = nil
			return err
		}
		s.players = players
	}
	theme := t
	s.theme = &theme
	s.stage = StageNumberConfirm
	return nil
}

// ConfirmNumbers acknowledges that every player has seen their number.
func (s *Session) ConfirmNumbers() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != StageNumberConfirm {
		return ErrInvalidStage
	}
	if len(s.players) != s.config.PlayerCount {
		return ErrPlayersDataMissing
	}
	s.stage = StageDiscussion
	return nil
}

// BeginResultInput ends the discussion phase.
func (s *Session) BeginResultInput() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != StageDiscussion {
		return ErrInvalidStage
	}
	if s.theme == nil {
		return ErrThemeMissing
	}
	s.stage = StageResultInput
	return nil
}

// SubmitOrder records the guessed ordering, derives the canonical
// order, and enters the reveal stage.
func (s *Session) SubmitOrder(order []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != StageResultInput {
		return ErrInvalidStage
	}
	if len(order) != s.config.PlayerCount {
		return ErrResultCountMismatch
	}
	byID := make(map[string]bool, len(s.players))
	for _, p := range s.players {
		byID[p.ID] = true
	}
	seen := make(map[string]bool, len(order))
	for _, id := range order {
		if !byID[id] || seen[id] {
			return ErrResultUnknownPlayer
		}
		seen[id] = true
	}

	correct, err := CorrectOrder(s.players)
	if err != nil {
		// Numbering is defective; restart the numbering cycle.
		s.players = nil
		s.submittedOrder = nil
		s.correctOrder = nil
		s.stage = StageThemeSelect
		return err
	}
	if len(order) == 0 || len(correct) == 0 {
		return ErrResultsMissing
	}
	if len(order) != len(correct) {
		return ErrResultsMismatch
	}
	s.submittedOrder = append([]string(nil), order...)
	s.correctOrder = correct
	s.stage = StageResultReveal
	return nil
}

// Reveals lists per-position correctness in submitted order, ready for
// the reveal scheduler.
func (s *Session) Reveals() ([]RevealEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.submittedOrder) == 0 || len(s.correctOrder) == 0 {
		return nil, ErrResultsMissing
	}
	if len(s.submittedOrder) != len(s.correctOrder) {
		return nil, ErrResultsMismatch
	}
	events := make([]RevealEvent, len(s.submittedOrder))
	for i, id := range s.submittedOrder {
		events[i] = RevealEvent{Index: i, PlayerID: id, Correct: id == s.correctOrder[i]}
	}
	return events, nil
}

// FinalResult scores the submitted order for the end-of-reveal summary.
func (s *Session) FinalResult() (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.submittedOrder) == 0 || len(s.correctOrder) == 0 {
		return Result{}, ErrResultsMissing
	}
	return Score(s.submittedOrder, s.correctOrder)
}

// RestartSameMembers starts a new round with the same roster: theme,
// numbers and orders are cleared and play resumes at theme selection.
func (s *Session) RestartSameMembers() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != StageResultReveal {
		return ErrInvalidStage
	}
	s.theme = nil
	s.players = nil
	s.submittedOrder = nil
	s.correctOrder = nil
	s.stage = StageThemeSelect
	return nil
}

// ResetGame returns the session to its initial defaults. Valid from any
// stage and idempotent.
func (s *Session) ResetGame() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = SessionConfig{PlayerCount: MinPlayers}
	s.playerNames = nil
	s.theme = nil
	s.players = nil
	s.submittedOrder = nil
	s.correctOrder = nil
	s.stage = StagePlayerCount
}
