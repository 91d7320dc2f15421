package quiz

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/marksaft/gramiz/internal/bank"
	"github.com/marksaft/gramiz/internal/effects"
	"github.com/marksaft/gramiz/internal/store"
)

var (
	// ErrDailyAlreadyPlayed is the daily-mode start guard: one run per
	// calendar day. The refusal leaves the session untouched.
	ErrDailyAlreadyPlayed = errors.New("daily challenge already completed today")

	// ErrNoQuestions means the filtered pool came up empty.
	ErrNoQuestions = errors.New("no questions available")

	// ErrZenLocked means zen mode was requested without a perfect run.
	ErrZenLocked = errors.New("zen mode requires a perfect run")
)

// Config wires a Session's collaborators. Bank, Prefs, and Runs are
// required; the rest default to production implementations.
type Config struct {
	Bank     *bank.Bank
	Shuffler bank.Shuffler
	Prefs    store.PrefsRepo
	Runs     store.RunRepo
	Effects  effects.Player
	Clock    Clock
}

// Session is the top-level quiz state machine for one run. All mutation
// happens synchronously on the caller's goroutine; the session itself never
// spawns timers or background work.
type Session struct {
	cfg Config

	screen    ScreenID
	mode      Mode
	questions []bank.Question
	index     int
	score     int
	streak    int
	history   []bool
	totalTime int

	runID     string
	submitted bool

	// checkpointLevel is set while the checkpoint screen interrupts the
	// run; the index advance is deferred until the player continues.
	checkpointLevel int
}

// NewSession creates a Session on the start screen.
func NewSession(cfg Config) *Session {
	if cfg.Shuffler == nil {
		cfg.Shuffler = bank.NewShuffler()
	}
	if cfg.Clock == nil {
		cfg.Clock = SystemClock()
	}
	if cfg.Effects == nil {
		cfg.Effects = effects.Nop{}
	}
	return &Session{cfg: cfg, screen: ScreenStart}
}

// Start begins a run. Daily mode draws five questions and refuses a second
// run on the same calendar day; normal mode draws the full filtered pool.
// The pool is recomputed here so a supporter-flag change since the last run
// is picked up.
func (s *Session) Start(ctx context.Context, mode Mode) error {
	if mode == ModeDaily {
		stats, err := s.cfg.Prefs.DailyStats(ctx)
		if err != nil {
			return fmt.Errorf("load daily stats: %w", err)
		}
		if PlayedToday(stats, s.cfg.Clock.Now()) {
			return ErrDailyAlreadyPlayed
		}
	}

	supporter, err := s.cfg.Prefs.Supporter(ctx)
	if err != nil {
		return fmt.Errorf("load supporter flag: %w", err)
	}

	pool := s.cfg.Bank.Pool(supporter)
	if len(pool) == 0 {
		return ErrNoQuestions
	}

	n := 0
	if mode == ModeDaily {
		n = bank.DailyDrawSize
	}

	s.mode = mode
	s.questions = bank.Draw(s.cfg.Shuffler, pool, n)
	s.index = 0
	s.score = 0
	s.streak = 0
	s.history = nil
	s.totalTime = 0
	s.checkpointLevel = 0
	s.runID = uuid.New().String()
	s.submitted = false
	s.screen = ScreenQuiz
	return nil
}

// StartTurn begins the turn for the current question, or returns nil when
// no question is being served.
func (s *Session) StartTurn() *Turn {
	q, ok := s.CurrentQuestion()
	if !ok {
		return nil
	}
	return NewTurn(q, s.cfg.Effects)
}

// CurrentQuestion returns the question being served.
func (s *Session) CurrentQuestion() (bank.Question, bool) {
	if s.screen != ScreenQuiz || s.index >= len(s.questions) {
		return bank.Question{}, false
	}
	return s.questions[s.index], true
}

// CompleteTurn folds one resolved turn into the run. It is called exactly
// when the player advances past the feedback, never earlier. A correct
// answer banks its remaining seconds; anything else resets the streak. The
// checkpoint rule fires before the end-of-quiz check, so a multiple-of-ten
// boundary always shows the checkpoint, and the index advance is deferred
// to the checkpoint's continue action.
func (s *Session) CompleteTurn(ctx context.Context, correct bool, timeRemaining int) error {
	if s.screen != ScreenQuiz {
		return fmt.Errorf("complete turn on %s screen", s.screen)
	}

	if correct {
		s.score++
		s.streak++
		s.totalTime += timeRemaining
	} else {
		s.streak = 0
	}
	s.history = append(s.history, correct)

	next := s.index + 1
	if next > 0 && next%CheckpointInterval == 0 && next < len(s.questions) {
		s.checkpointLevel = next / CheckpointInterval
		s.screen = ScreenCheckpoint
		return nil
	}
	if next < len(s.questions) {
		s.index = next
		return nil
	}
	return s.finish(ctx)
}

// finish ends the run: daily bookkeeping persists first, then the result
// screen takes over.
func (s *Session) finish(ctx context.Context) error {
	s.screen = ScreenResult
	if s.mode != ModeDaily {
		return nil
	}

	stats, err := s.cfg.Prefs.DailyStats(ctx)
	if err != nil {
		return fmt.Errorf("load daily stats: %w", err)
	}
	stats = NextDailyStats(stats, s.cfg.Clock.Now())
	if err := s.cfg.Prefs.SetDailyStats(ctx, stats); err != nil {
		return fmt.Errorf("persist daily stats: %w", err)
	}
	return nil
}

// ContinueFromCheckpoint resumes the run after a checkpoint, performing the
// deferred index advance.
func (s *Session) ContinueFromCheckpoint() {
	if s.screen != ScreenCheckpoint {
		return
	}
	s.index++
	s.checkpointLevel = 0
	s.screen = ScreenQuiz
}

// CheckpointLevel returns the level shown on the active checkpoint
// (answered questions / 10), or 0 when no checkpoint is active.
func (s *Session) CheckpointLevel() int { return s.checkpointLevel }

// CheckpointRank returns the rank label for the active checkpoint.
func (s *Session) CheckpointRank() string { return RankForLevel(s.checkpointLevel) }

// CheckpointFactoid returns the legendary question whose story is told at
// the active checkpoint.
func (s *Session) CheckpointFactoid() (bank.Question, bool) {
	return s.cfg.Bank.Factoid(s.checkpointLevel)
}

// SubmitResult records the finished run: one leaderboard entry and one run
// event. It is idempotent per run, so a re-entered result screen cannot
// double-insert.
func (s *Session) SubmitResult(ctx context.Context) error {
	if s.screen != ScreenResult || s.submitted {
		return nil
	}

	now := s.cfg.Clock.Now()
	board, err := s.cfg.Prefs.Leaderboard(ctx)
	if err != nil {
		return fmt.Errorf("load leaderboard: %w", err)
	}
	board = MergeLeaderboard(board, store.LeaderboardEntry{
		Score: s.score,
		Time:  s.totalTime,
		Date:  now,
	})
	if err := s.cfg.Prefs.SetLeaderboard(ctx, board); err != nil {
		return fmt.Errorf("persist leaderboard: %w", err)
	}

	if err := s.cfg.Runs.Append(ctx, store.Run{
		RunID:         s.runID,
		Mode:          string(s.mode),
		Score:         s.score,
		Total:         len(s.questions),
		TimeRemaining: s.totalTime,
		Timestamp:     now,
	}); err != nil {
		return fmt.Errorf("append run event: %w", err)
	}

	s.submitted = true
	return nil
}

// EnterZen moves from the result screen to zen mode. Only a perfect run
// qualifies.
func (s *Session) EnterZen() error {
	if s.screen != ScreenResult || !s.Perfect() {
		return ErrZenLocked
	}
	s.screen = ScreenZen
	return nil
}

// GoHome returns to the start screen from anywhere. Persisted state is
// untouched; an abandoned mid-run turn records nothing.
func (s *Session) GoHome() {
	s.screen = ScreenStart
	s.checkpointLevel = 0
}

// Screen returns the active screen.
func (s *Session) Screen() ScreenID { return s.screen }

// Mode returns the mode of the current run.
func (s *Session) Mode() Mode { return s.mode }

// IsDaily reports whether the current run is a daily challenge.
func (s *Session) IsDaily() bool { return s.mode == ModeDaily }

// Score returns the count of correct answers so far.
func (s *Session) Score() int { return s.score }

// Streak returns the current run of consecutive correct answers.
func (s *Session) Streak() int { return s.streak }

// TotalTimeRemaining returns the summed countdown seconds banked on
// correct answers.
func (s *Session) TotalTimeRemaining() int { return s.totalTime }

// Index returns the 0-based position of the current question.
func (s *Session) Index() int { return s.index }

// Len returns the number of questions in the run.
func (s *Session) Len() int { return len(s.questions) }

// History returns a copy of the per-turn outcomes, oldest first.
func (s *Session) History() []bool {
	out := make([]bool, len(s.history))
	copy(out, s.history)
	return out
}

// Perfect reports whether every question was answered correctly.
func (s *Session) Perfect() bool {
	return len(s.questions) > 0 && s.score == len(s.questions)
}

// RunID identifies the current run.
func (s *Session) RunID() string { return s.runID }

// Clock exposes the session's clock so screens share its notion of today.
func (s *Session) Clock() Clock { return s.cfg.Clock }
