package service

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/milionerzyweb/milionerzy-backend/internal/model"
	"github.com/milionerzyweb/milionerzy-backend/internal/repository"
)

// moneyLadder is the classic/learning stake for each question index.
// The last rung is the million.
var moneyLadder = []int{
	500, 1_000, 2_000, 5_000, 10_000, 20_000,
	40_000, 75_000, 125_000, 250_000, 500_000, 1_000_000,
}

// betStartingCapital is the pool a bet-mode player wagers down.
const betStartingCapital = 1_000_000

const defaultExplanation = "No further explanation available."

// GameService drives the game session state machine: question progression,
// money computation, lifelines and terminal scoring across the three modes.
type GameService struct {
	questions   *repository.QuestionRepository
	sessions    *repository.SessionRepository
	leaderboard *LeaderboardService
	// phoneAccuracy is the probability the phone lifeline tells the truth.
	phoneAccuracy float64
	log           zerolog.Logger
}

// NewGameService creates a GameService.
func NewGameService(
	questions *repository.QuestionRepository,
	sessions *repository.SessionRepository,
	leaderboard *LeaderboardService,
	phoneAccuracy float64,
	log zerolog.Logger,
) *GameService {
	return &GameService{
		questions:     questions,
		sessions:      sessions,
		leaderboard:   leaderboard,
		phoneAccuracy: phoneAccuracy,
		log:           log.With().Str("component", "game_service").Logger(),
	}
}

// QuestionView is the active question as presented to the player.
type QuestionView struct {
	Question   string                  `json:"question"`
	Options    []string                `json:"options"`
	Money      int                     `json:"money"`
	QNum       int                     `json:"q_num"`
	TotalQ     int                     `json:"total_q"`
	Mode       model.GameMode          `json:"mode"`
	Lifelines  map[model.Lifeline]bool `json:"lifelines"`
	Thresholds []int                   `json:"thresholds"`
}

// AnswerResult is the outcome of answering the active question.
type AnswerResult struct {
	Status   string `json:"status"` // ok | win | fail | finished
	Info     string `json:"info"`
	Correct  string `json:"correct,omitempty"`
	Money    int    `json:"money"`
	Redirect string `json:"redirect,omitempty"`
}

// LifelineResult is the outcome of invoking a lifeline.
type LifelineResult struct {
	Status string         `json:"status"` // ok | used
	Remove []string       `json:"remove,omitempty"`
	Msg    string         `json:"msg,omitempty"`
	Stats  map[string]int `json:"stats,omitempty"`
}

// GameResult is the final (or current) standing of a session.
type GameResult struct {
	Nickname string              `json:"nickname"`
	Score    int                 `json:"score"`
	Badges   []string            `json:"badges"`
	Mode     model.GameMode      `json:"mode"`
	Status   model.SessionStatus `json:"status"`
}

// Start begins a new game for the player, replacing any previous session.
// It draws a uniform random sample without replacement of the size the mode
// requires and rejects with ErrInsufficientQuestions when the bank is too
// small.
func (s *GameService) Start(ctx context.Context, playerID, nickname string, mode model.GameMode) error {
	bank, err := s.questions.LoadAll()
	if err != nil {
		return fmt.Errorf("load question bank: %w", err)
	}

	need := mode.QuestionCount()
	if len(bank) < need {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientQuestions, len(bank), need)
	}

	money := 0
	if mode == model.ModeBet {
		money = betStartingCapital
	}

	sess := &model.GameSession{
		Nickname:     nickname,
		Mode:         mode,
		Questions:    sampleQuestions(bank, need),
		CurrentIndex: 0,
		Money:        money,
		OptionsIndex: -1,
		StartedAt:    time.Now(),
		Status:       model.SessionStatusActive,
	}

	return s.sessions.Save(ctx, playerID, sess)
}

// CurrentQuestion returns the view for the active question. The option
// shuffle is cached per question index so a page refresh never reorders
// the answers. Returns ErrGameFinished once the session is over.
func (s *GameService) CurrentQuestion(ctx context.Context, playerID string) (*QuestionView, error) {
	sess, err := s.sessions.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if sess.Finished() || sess.CurrentIndex >= len(sess.Questions) {
		return nil, ErrGameFinished
	}

	if s.ensureOptions(sess) {
		if err := s.sessions.Save(ctx, playerID, sess); err != nil {
			return nil, err
		}
	}

	idx := sess.CurrentIndex
	money := sess.Money
	if sess.Mode != model.ModeBet && idx < len(moneyLadder) {
		money = moneyLadder[idx]
	}

	return &QuestionView{
		Question:   sess.Questions[idx].Text,
		Options:    sess.CurrentOptions,
		Money:      money,
		QNum:       idx + 1,
		TotalQ:     len(sess.Questions),
		Mode:       sess.Mode,
		Lifelines:  sess.RemainingLifelines(),
		Thresholds: slices.Clone(moneyLadder),
	}, nil
}

// Answer evaluates a classic/learning submission and advances the state
// machine. Bet-mode sessions must use PlaceBets.
func (s *GameService) Answer(ctx context.Context, playerID, answer string) (*AnswerResult, error) {
	sess, err := s.sessions.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if sess.Finished() || sess.CurrentIndex >= len(sess.Questions) {
		return nil, ErrGameFinished
	}

	if sess.Mode == model.ModeBet {
		return nil, ErrBetsRequired
	}

	s.ensureOptions(sess)

	var res *AnswerResult
	if answer == sess.CorrectAnswer {
		res = s.advanceOnCorrect(sess)
	} else if sess.Mode == model.ModeLearning {
		res = s.advanceLearningOnWrong(sess)
	} else {
		res = s.loseClassic(sess)
	}

	if err := s.sessions.Save(ctx, playerID, sess); err != nil {
		return nil, err
	}
	return res, nil
}

// advanceOnCorrect handles a correct answer in classic or learning mode.
func (s *GameService) advanceOnCorrect(sess *model.GameSession) *AnswerResult {
	info := sess.Explanation

	if sess.CurrentIndex < len(moneyLadder) {
		sess.Money = moneyLadder[sess.CurrentIndex]
	}
	sess.CurrentIndex++

	if sess.CurrentIndex < len(sess.Questions) {
		return &AnswerResult{Status: "ok", Info: info, Money: sess.Money}
	}

	// Terminal: the ladder is climbed.
	if sess.Mode == model.ModeLearning {
		sess.Status = model.SessionStatusFinished
		sess.FinalScore = sess.Money
		sess.EarnedBadges = computeBadges(sess, false, time.Now())
		return &AnswerResult{Status: "finished", Info: info, Money: sess.Money, Redirect: "/result"}
	}

	sess.Status = model.SessionStatusWon
	sess.FinalScore = sess.Money
	sess.EarnedBadges = computeBadges(sess, true, time.Now())
	s.leaderboard.Submit(sess.Nickname, sess.FinalScore, sess.EarnedBadges, sess.Mode)

	return &AnswerResult{Status: "win", Info: info, Money: sess.Money, Redirect: "/result"}
}

// advanceLearningOnWrong reveals the answer and moves on. Learning mode
// never eliminates and never reaches the leaderboard.
func (s *GameService) advanceLearningOnWrong(sess *model.GameSession) *AnswerResult {
	res := &AnswerResult{
		Status:  "ok",
		Info:    sess.Explanation,
		Correct: sess.CorrectAnswer,
		Money:   sess.Money,
	}

	sess.CurrentIndex++
	if sess.CurrentIndex >= len(sess.Questions) {
		sess.Status = model.SessionStatusFinished
		sess.FinalScore = sess.Money
		sess.EarnedBadges = computeBadges(sess, false, time.Now())
		res.Status = "finished"
		res.Redirect = "/result"
	}

	return res
}

// loseClassic terminates a classic run on a wrong answer, paying out the
// guaranteed minimum.
func (s *GameService) loseClassic(sess *model.GameSession) *AnswerResult {
	payout := guaranteedPayout(sess.CurrentIndex)

	sess.Money = payout
	sess.FinalScore = payout
	sess.Status = model.SessionStatusLost
	sess.EarnedBadges = computeBadges(sess, false, time.Now())
	s.leaderboard.Submit(sess.Nickname, payout, sess.EarnedBadges, sess.Mode)

	return &AnswerResult{
		Status:   "fail",
		Info:     sess.Explanation,
		Correct:  sess.CorrectAnswer,
		Money:    payout,
		Redirect: "/result",
	}
}

// guaranteedPayout is the minimum a classic player keeps after a wrong
// answer at the given question index.
func guaranteedPayout(index int) int {
	switch {
	case index > 6:
		return 40_000
	case index > 1:
		return 1_000
	default:
		return 0
	}
}

// PlaceBets evaluates a bet-mode submission. The wager placed on the
// correct option becomes the new capital; everything else is forfeited.
// Wagers must be non-negative and sum to at most the current capital.
func (s *GameService) PlaceBets(ctx context.Context, playerID string, bets map[string]int) (*AnswerResult, error) {
	sess, err := s.sessions.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if sess.Finished() || sess.CurrentIndex >= len(sess.Questions) {
		return nil, ErrGameFinished
	}

	if sess.Mode != model.ModeBet {
		return nil, ErrBetsNotAllowed
	}

	total := 0
	for _, wager := range bets {
		if wager < 0 {
			return nil, fmt.Errorf("%w: negative wager", ErrInvalidBets)
		}
		total += wager
	}
	if total > sess.Money {
		return nil, fmt.Errorf("%w: wagered %d with capital %d", ErrInvalidBets, total, sess.Money)
	}

	s.ensureOptions(sess)

	info := sess.Explanation
	kept := bets[sess.CorrectAnswer]
	sess.Money = kept
	sess.CurrentIndex++

	var res *AnswerResult
	switch {
	case kept <= 0:
		sess.Status = model.SessionStatusLost
		sess.FinalScore = 0
		sess.EarnedBadges = []string{}
		s.leaderboard.Submit(sess.Nickname, 0, sess.EarnedBadges, sess.Mode)
		res = &AnswerResult{
			Status:   "fail",
			Info:     info,
			Correct:  sess.CorrectAnswer,
			Money:    0,
			Redirect: "/result",
		}

	case sess.CurrentIndex >= len(sess.Questions):
		sess.Status = model.SessionStatusWon
		sess.FinalScore = kept
		sess.EarnedBadges = []string{model.BadgeStrategist}
		s.leaderboard.Submit(sess.Nickname, kept, sess.EarnedBadges, sess.Mode)
		res = &AnswerResult{Status: "win", Info: info, Money: kept, Redirect: "/result"}

	default:
		res = &AnswerResult{Status: "ok", Info: info, Money: kept}
	}

	if err := s.sessions.Save(ctx, playerID, sess); err != nil {
		return nil, err
	}
	return res, nil
}

// Lifeline resolves a lifeline request. Lifelines exist in classic mode
// only and each is usable at most once; a second use answers "used"
// without side effects.
func (s *GameService) Lifeline(ctx context.Context, playerID string, kind model.Lifeline) (*LifelineResult, error) {
	sess, err := s.sessions.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if sess.Finished() || sess.CurrentIndex >= len(sess.Questions) {
		return nil, ErrGameFinished
	}

	if sess.Mode != model.ModeClassic {
		return nil, ErrLifelineUnavailable
	}

	if sess.LifelineUsed(kind) {
		return &LifelineResult{Status: "used"}, nil
	}

	s.ensureOptions(sess)

	var res *LifelineResult
	switch kind {
	case model.LifelineFiftyFifty:
		res = s.fiftyFifty(sess)
	case model.LifelinePhone:
		res = s.phoneAFriend(sess)
	case model.LifelineAudience:
		res = s.askAudience(sess)
	default:
		return nil, ErrUnknownLifeline
	}

	sess.MarkLifelineUsed(kind)
	if err := s.sessions.Save(ctx, playerID, sess); err != nil {
		return nil, err
	}
	return res, nil
}

// fiftyFifty eliminates two random wrong options (fewer if fewer exist).
// The correct option is never removed.
func (s *GameService) fiftyFifty(sess *model.GameSession) *LifelineResult {
	wrong := wrongOptions(sess)

	remove := wrong
	if len(wrong) > 2 {
		rand.Shuffle(len(wrong), func(i, j int) {
			wrong[i], wrong[j] = wrong[j], wrong[i]
		})
		remove = wrong[:2]
	}

	return &LifelineResult{Status: "ok", Remove: remove}
}

// phoneAFriend simulates a call: the friend names the correct answer with
// the configured probability, otherwise a random wrong option.
func (s *GameService) phoneAFriend(sess *model.GameSession) *LifelineResult {
	hint := sess.CorrectAnswer
	if rand.Float64() >= s.phoneAccuracy {
		if wrong := wrongOptions(sess); len(wrong) > 0 {
			hint = wrong[rand.Intn(len(wrong))]
		}
	}

	return &LifelineResult{
		Status: "ok",
		Msg:    fmt.Sprintf("Hey! I'm at a lecture right now, but I'm fairly sure it's: %s", hint),
	}
}

// askAudience fabricates a poll over the displayed options summing to 100.
// The correct option gets a 50-80%% share; the rest is split among the
// wrong options by sequential random partition, last one absorbing the
// remainder.
func (s *GameService) askAudience(sess *model.GameSession) *LifelineResult {
	stats := make(map[string]int, len(sess.CurrentOptions))

	share := 50 + rand.Intn(31)
	stats[sess.CorrectAnswer] = share
	left := 100 - share

	wrong := wrongOptions(sess)
	for i, opt := range wrong {
		if i == len(wrong)-1 {
			stats[opt] = left
			break
		}
		cut := rand.Intn(left + 1)
		stats[opt] = cut
		left -= cut
	}

	return &LifelineResult{Status: "ok", Stats: stats}
}

// Result returns the session's final standing; for a live session it
// reports the current money, matching the legacy behavior.
func (s *GameService) Result(ctx context.Context, playerID string) (*GameResult, error) {
	sess, err := s.sessions.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}

	score := sess.Money
	if sess.Finished() {
		score = sess.FinalScore
	}

	badges := sess.EarnedBadges
	if badges == nil {
		badges = []string{}
	}

	return &GameResult{
		Nickname: sess.Nickname,
		Score:    score,
		Badges:   badges,
		Mode:     sess.Mode,
		Status:   sess.Status,
	}, nil
}

// ensureOptions shuffles and caches the presentation order for the active
// question if the cache belongs to another index. Reports whether the
// session changed.
func (s *GameService) ensureOptions(sess *model.GameSession) bool {
	idx := sess.CurrentIndex
	if sess.OptionsIndex == idx || idx >= len(sess.Questions) {
		return false
	}

	q := sess.Questions[idx]
	opts := slices.Clone(q.Options)
	rand.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})

	sess.CurrentOptions = opts
	sess.CorrectAnswer = q.CorrectOption()
	sess.Explanation = q.Info
	if sess.Explanation == "" {
		sess.Explanation = defaultExplanation
	}
	sess.OptionsIndex = idx
	return true
}

// wrongOptions returns the displayed options that are not the correct one.
func wrongOptions(sess *model.GameSession) []string {
	wrong := make([]string, 0, len(sess.CurrentOptions))
	for _, opt := range sess.CurrentOptions {
		if opt != sess.CorrectAnswer {
			wrong = append(wrong, opt)
		}
	}
	return wrong
}

// sampleQuestions draws n questions uniformly without replacement.
func sampleQuestions(bank []model.Question, n int) []model.Question {
	drawn := make([]model.Question, 0, n)
	for _, i := range rand.Perm(len(bank))[:n] {
		drawn = append(drawn, bank[i])
	}
	return drawn
}
