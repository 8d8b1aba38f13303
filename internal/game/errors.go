package game

import "errors"

// ValidationError blocks a stage transition until the input is
// corrected. Key is an opaque message identifier for the presentation
// layer; the engine never translates it.
type ValidationError struct {
	Key string
}

func (e *ValidationError) Error() string { return e.Key }

var (
	ErrPlayerCountRange    = &ValidationError{Key: "validation.player_count_range"}
	ErrPlayerCountMismatch = &ValidationError{Key: "validation.player_count_mismatch"}
	ErrPlayerNameEmpty     = &ValidationError{Key: "validation.player_name_empty"}
	ErrPlayerNameTooLong   = &ValidationError{Key: "validation.player_name_too_long"}
	ErrPlayerNameDuplicate = &ValidationError{Key: "validation.player_name_duplicate"}
	ErrThemeMissing        = &ValidationError{Key: "validation.theme_missing"}
	ErrPlayersDataMissing  = &ValidationError{Key: "validation.players_data_missing"}
	ErrResultCountMismatch = &ValidationError{Key: "validation.result_count_mismatch"}
	ErrResultUnknownPlayer = &ValidationError{Key: "validation.result_unknown_player"}
	ErrResultsMissing      = &ValidationError{Key: "validation.results_missing"}
	ErrResultsMismatch     = &ValidationError{Key: "validation.results_mismatch"}
)

// ErrInvalidStage rejects an operation invoked outside its stage.
var ErrInvalidStage = errors.New("invalid stage for action")

// ErrTimerRunning rejects countdown adjustments while ticking.
var ErrTimerRunning = errors.New("timer is running")

// InvariantError indicates a programming defect rather than bad user
// input: the session resets the affected data instead of recovering
// partially.
type InvariantError struct {
	Reason error
}

func (e *InvariantError) Error() string { return "invariant violation: " + e.Reason.Error() }

func (e *InvariantError) Unwrap() error { return e.Reason }

var (
	ErrDuplicateNumber = errors.New("duplicate assigned number")
	ErrLengthMismatch  = errors.New("order length mismatch")
)

func invariant(reason error) error {
	return &InvariantError{Reason: reason}
}
