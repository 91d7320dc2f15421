package quiz

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/marksaft/gramiz/internal/bank"
	"github.com/marksaft/gramiz/internal/store"
)

// fakePrefs is an in-memory PrefsRepo.
type fakePrefs struct {
	board     []store.LeaderboardEntry
	stats     store.DailyStats
	muted     bool
	supporter bool

	setBoardCalls int
	setStatsCalls int
}

func (p *fakePrefs) Leaderboard(context.Context) ([]store.LeaderboardEntry, error) {
	return p.board, nil
}

func (p *fakePrefs) SetLeaderboard(_ context.Context, entries []store.LeaderboardEntry) error {
	p.board = entries
	p.setBoardCalls++
	return nil
}

func (p *fakePrefs) DailyStats(context.Context) (store.DailyStats, error) {
	return p.stats, nil
}

func (p *fakePrefs) SetDailyStats(_ context.Context, stats store.DailyStats) error {
	p.stats = stats
	p.setStatsCalls++
	return nil
}

func (p *fakePrefs) Muted(context.Context) (bool, error) { return p.muted, nil }

func (p *fakePrefs) SetMuted(_ context.Context, m bool) error {
	p.muted = m
	return nil
}

func (p *fakePrefs) Supporter(context.Context) (bool, error) { return p.supporter, nil }

func (p *fakePrefs) SetSupporter(_ context.Context, s bool) error {
	p.supporter = s
	return nil
}

func (p *fakePrefs) Reset(context.Context) error {
	*p = fakePrefs{}
	return nil
}

// fakeRuns is an in-memory RunRepo.
type fakeRuns struct {
	runs []store.Run
}

func (r *fakeRuns) Append(_ context.Context, run store.Run) error {
	r.runs = append(r.runs, run)
	return nil
}

func (r *fakeRuns) Recent(_ context.Context, limit int) ([]store.Run, error) {
	var out []store.Run
	for i := len(r.runs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.runs[i])
	}
	return out, nil
}

func (r *fakeRuns) Reset(context.Context) error {
	r.runs = nil
	return nil
}

// identityShuffler leaves the draw order alone.
type identityShuffler struct{}

func (identityShuffler) Shuffle(int, func(i, j int)) {}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

func makeQuestions(n int) []bank.Question {
	qs := make([]bank.Question, n)
	for i := range qs {
		qs[i] = bank.Question{
			Sentence:    fmt.Sprintf("Question %d has a ________ here.", i),
			Options:     []string{"gap", "hole"},
			Correct:     "gap",
			Rule:        "Test Rule",
			Explanation: "The gap is the answer.",
		}
	}
	return qs
}

func testSession(t *testing.T, questions []bank.Question, prefs *fakePrefs, runs *fakeRuns) *Session {
	t.Helper()
	return NewSession(Config{
		Bank:     bank.New(questions),
		Shuffler: identityShuffler{},
		Prefs:    prefs,
		Runs:     runs,
		Clock:    fixedClock{t: time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC)},
	})
}

func TestSessionStartNormal(t *testing.T) {
	s := testSession(t, makeQuestions(12), &fakePrefs{}, &fakeRuns{})

	if err := s.Start(context.Background(), ModeNormal); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if s.Screen() != ScreenQuiz {
		t.Errorf("Screen = %v, want quiz", s.Screen())
	}
	if s.Len() != 12 {
		t.Errorf("Len = %d, want the full pool", s.Len())
	}
	if s.RunID() == "" {
		t.Error("RunID is empty")
	}
	if _, ok := s.CurrentQuestion(); !ok {
		t.Error("CurrentQuestion not available after start")
	}
}

func TestSessionDailyDrawsFive(t *testing.T) {
	s := testSession(t, makeQuestions(12), &fakePrefs{}, &fakeRuns{})

	if err := s.Start(context.Background(), ModeDaily); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s.Len() != bank.DailyDrawSize {
		t.Errorf("Len = %d, want %d", s.Len(), bank.DailyDrawSize)
	}
	if !s.IsDaily() {
		t.Error("IsDaily = false")
	}
}

func TestSessionDailyGuardRefusesSecondRun(t *testing.T) {
	prefs := &fakePrefs{stats: store.DailyStats{Streak: 2, LastPlayed: "2025-03-10"}}
	s := testSession(t, makeQuestions(12), prefs, &fakeRuns{})

	err := s.Start(context.Background(), ModeDaily)

	if !errors.Is(err, ErrDailyAlreadyPlayed) {
		t.Fatalf("Start = %v, want ErrDailyAlreadyPlayed", err)
	}
	if s.Screen() != ScreenStart {
		t.Errorf("Screen = %v, want start after a refused daily", s.Screen())
	}
}

func TestSessionPoolRespectsSupporterFlag(t *testing.T) {
	questions := makeQuestions(3)
	elite := makeQuestions(1)[0]
	elite.Sentence = "Elite ________ only."
	elite.IsElite = true
	questions = append(questions, elite)

	prefs := &fakePrefs{}
	s := testSession(t, questions, prefs, &fakeRuns{})
	if err := s.Start(context.Background(), ModeNormal); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s.Len() != 3 {
		t.Errorf("non-supporter run has %d questions, want 3", s.Len())
	}

	prefs.supporter = true
	if err := s.Start(context.Background(), ModeNormal); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s.Len() != 4 {
		t.Errorf("supporter run has %d questions, want 4", s.Len())
	}
}

func TestSessionEmptyPool(t *testing.T) {
	legendary := makeQuestions(1)[0]
	legendary.IsLegendary = true
	s := testSession(t, []bank.Question{legendary}, &fakePrefs{}, &fakeRuns{})

	if err := s.Start(context.Background(), ModeNormal); !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("Start = %v, want ErrNoQuestions", err)
	}
}

func TestSessionScoreStreakAndTimeBanking(t *testing.T) {
	s := testSession(t, makeQuestions(3), &fakePrefs{}, &fakeRuns{})
	ctx := context.Background()
	if err := s.Start(ctx, ModeNormal); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if err := s.CompleteTurn(ctx, true, 10); err != nil {
		t.Fatalf("CompleteTurn: %v", err)
	}
	if s.Score() != 1 || s.Streak() != 1 || s.TotalTimeRemaining() != 10 {
		t.Errorf("after correct: score=%d streak=%d time=%d", s.Score(), s.Streak(), s.TotalTimeRemaining())
	}

	if err := s.CompleteTurn(ctx, false, 7); err != nil {
		t.Fatalf("CompleteTurn: %v", err)
	}
	if s.Score() != 1 || s.Streak() != 0 || s.TotalTimeRemaining() != 10 {
		t.Errorf("after incorrect: score=%d streak=%d time=%d, want streak reset and no time banked",
			s.Score(), s.Streak(), s.TotalTimeRemaining())
	}

	if err := s.CompleteTurn(ctx, true, 5); err != nil {
		t.Fatalf("CompleteTurn: %v", err)
	}
	if s.Score() != 2 || s.Streak() != 1 || s.TotalTimeRemaining() != 15 {
		t.Errorf("after final correct: score=%d streak=%d time=%d", s.Score(), s.Streak(), s.TotalTimeRemaining())
	}
	if s.Screen() != ScreenResult {
		t.Errorf("Screen = %v, want result after the last question", s.Screen())
	}

	history := s.History()
	want := []bool{true, false, true}
	for i := range want {
		if history[i] != want[i] {
			t.Errorf("History[%d] = %v, want %v", i, history[i], want[i])
		}
	}
}

func TestSessionCheckpointAtTenDefersAdvance(t *testing.T) {
	legendary := makeQuestions(1)[0]
	legendary.Sentence = "Legendary ________ story."
	legendary.IsLegendary = true
	questions := append(makeQuestions(12), legendary)

	s := testSession(t, questions, &fakePrefs{}, &fakeRuns{})
	ctx := context.Background()
	if err := s.Start(ctx, ModeNormal); err != nil {
		t.Fatalf("Start: %v", err)
	}

	for i := 0; i < CheckpointInterval; i++ {
		if err := s.CompleteTurn(ctx, true, 5); err != nil {
			t.Fatalf("CompleteTurn %d: %v", i, err)
		}
	}

	if s.Screen() != ScreenCheckpoint {
		t.Fatalf("Screen = %v, want checkpoint after %d answers", s.Screen(), CheckpointInterval)
	}
	if s.CheckpointLevel() != 1 {
		t.Errorf("CheckpointLevel = %d, want 1", s.CheckpointLevel())
	}
	if s.CheckpointRank() != Ranks[0] {
		t.Errorf("CheckpointRank = %q, want %q", s.CheckpointRank(), Ranks[0])
	}
	if factoid, ok := s.CheckpointFactoid(); !ok || !factoid.IsLegendary {
		t.Errorf("CheckpointFactoid = (%+v, %v), want a legendary question", factoid, ok)
	}
	if s.Index() != CheckpointInterval-1 {
		t.Errorf("Index = %d, want the advance deferred until continue", s.Index())
	}

	s.ContinueFromCheckpoint()

	if s.Screen() != ScreenQuiz {
		t.Errorf("Screen = %v, want quiz after continue", s.Screen())
	}
	if s.Index() != CheckpointInterval {
		t.Errorf("Index = %d, want %d after continue", s.Index(), CheckpointInterval)
	}
	if s.CheckpointLevel() != 0 {
		t.Errorf("CheckpointLevel = %d, want cleared", s.CheckpointLevel())
	}
}

func TestSessionNoCheckpointOnFinalQuestion(t *testing.T) {
	s := testSession(t, makeQuestions(CheckpointInterval), &fakePrefs{}, &fakeRuns{})
	ctx := context.Background()
	if err := s.Start(ctx, ModeNormal); err != nil {
		t.Fatalf("Start: %v", err)
	}

	for i := 0; i < CheckpointInterval; i++ {
		if err := s.CompleteTurn(ctx, true, 5); err != nil {
			t.Fatalf("CompleteTurn %d: %v", i, err)
		}
	}

	if s.Screen() != ScreenResult {
		t.Errorf("Screen = %v, want result when the boundary is also the end", s.Screen())
	}
}

func TestSessionDailyFinishUpdatesStreak(t *testing.T) {
	prefs := &fakePrefs{stats: store.DailyStats{Streak: 2, LastPlayed: "2025-03-09"}}
	s := testSession(t, makeQuestions(6), prefs, &fakeRuns{})
	ctx := context.Background()
	if err := s.Start(ctx, ModeDaily); err != nil {
		t.Fatalf("Start: %v", err)
	}

	for i := 0; i < s.Len(); i++ {
		if err := s.CompleteTurn(ctx, i%2 == 0, 3); err != nil {
			t.Fatalf("CompleteTurn %d: %v", i, err)
		}
	}

	if s.Screen() != ScreenResult {
		t.Fatalf("Screen = %v, want result", s.Screen())
	}
	want := store.DailyStats{Streak: 3, LastPlayed: "2025-03-10"}
	if prefs.stats != want {
		t.Errorf("daily stats = %+v, want %+v", prefs.stats, want)
	}
	if prefs.setStatsCalls != 1 {
		t.Errorf("SetDailyStats called %d times, want 1", prefs.setStatsCalls)
	}
}

func TestSessionNormalFinishLeavesDailyStatsAlone(t *testing.T) {
	prefs := &fakePrefs{stats: store.DailyStats{Streak: 4, LastPlayed: "2025-03-08"}}
	s := testSession(t, makeQuestions(2), prefs, &fakeRuns{})
	ctx := context.Background()
	if err := s.Start(ctx, ModeNormal); err != nil {
		t.Fatalf("Start: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := s.CompleteTurn(ctx, true, 5); err != nil {
			t.Fatalf("CompleteTurn: %v", err)
		}
	}

	if prefs.setStatsCalls != 0 {
		t.Errorf("normal run touched daily stats %d times", prefs.setStatsCalls)
	}
}

func TestSessionSubmitResultIdempotent(t *testing.T) {
	prefs := &fakePrefs{}
	runs := &fakeRuns{}
	s := testSession(t, makeQuestions(2), prefs, runs)
	ctx := context.Background()
	if err := s.Start(ctx, ModeNormal); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := s.CompleteTurn(ctx, true, 8); err != nil {
		t.Fatalf("CompleteTurn: %v", err)
	}
	if err := s.CompleteTurn(ctx, false, 0); err != nil {
		t.Fatalf("CompleteTurn: %v", err)
	}

	if err := s.SubmitResult(ctx); err != nil {
		t.Fatalf("SubmitResult: %v", err)
	}
	if err := s.SubmitResult(ctx); err != nil {
		t.Fatalf("SubmitResult (repeat): %v", err)
	}

	if len(prefs.board) != 1 {
		t.Fatalf("leaderboard has %d entries, want 1", len(prefs.board))
	}
	if prefs.setBoardCalls != 1 {
		t.Errorf("SetLeaderboard called %d times, want 1", prefs.setBoardCalls)
	}
	if got := prefs.board[0]; got.Score != 1 || got.Time != 8 {
		t.Errorf("leaderboard entry = {score:%d time:%d}, want {score:1 time:8}", got.Score, got.Time)
	}

	if len(runs.runs) != 1 {
		t.Fatalf("run history has %d events, want 1", len(runs.runs))
	}
	run := runs.runs[0]
	if run.RunID != s.RunID() || run.Mode != string(ModeNormal) || run.Score != 1 || run.Total != 2 || run.TimeRemaining != 8 {
		t.Errorf("run event = %+v, want the finished run's numbers", run)
	}
}

func TestSessionSubmitResultBeforeFinishIsNoOp(t *testing.T) {
	prefs := &fakePrefs{}
	runs := &fakeRuns{}
	s := testSession(t, makeQuestions(3), prefs, runs)
	ctx := context.Background()
	if err := s.Start(ctx, ModeNormal); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if err := s.SubmitResult(ctx); err != nil {
		t.Fatalf("SubmitResult: %v", err)
	}
	if len(prefs.board) != 0 || len(runs.runs) != 0 {
		t.Error("mid-run submit recorded a result")
	}
}

func TestSessionZenRequiresPerfectRun(t *testing.T) {
	ctx := context.Background()

	s := testSession(t, makeQuestions(2), &fakePrefs{}, &fakeRuns{})
	if err := s.Start(ctx, ModeNormal); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s.CompleteTurn(ctx, true, 5)
	s.CompleteTurn(ctx, false, 0)
	if err := s.EnterZen(); !errors.Is(err, ErrZenLocked) {
		t.Errorf("EnterZen on an imperfect run = %v, want ErrZenLocked", err)
	}

	s = testSession(t, makeQuestions(2), &fakePrefs{}, &fakeRuns{})
	if err := s.Start(ctx, ModeNormal); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s.CompleteTurn(ctx, true, 5)
	s.CompleteTurn(ctx, true, 5)
	if err := s.EnterZen(); err != nil {
		t.Fatalf("EnterZen on a perfect run: %v", err)
	}
	if s.Screen() != ScreenZen {
		t.Errorf("Screen = %v, want zen", s.Screen())
	}
}

func TestSessionGoHome(t *testing.T) {
	s := testSession(t, makeQuestions(3), &fakePrefs{}, &fakeRuns{})
	ctx := context.Background()
	if err := s.Start(ctx, ModeNormal); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s.CompleteTurn(ctx, true, 5)

	s.GoHome()

	if s.Screen() != ScreenStart {
		t.Errorf("Screen = %v, want start", s.Screen())
	}
	if _, ok := s.CurrentQuestion(); ok {
		t.Error("CurrentQuestion still served after going home")
	}
}
