// Package quiz contains the question generator, the answer scorer and
// the interactive session engine.
package quiz

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/qavit/ekiti/internal/domain"
	"github.com/qavit/ekiti/internal/store"
)

// State is the session engine's current phase.
type State int

const (
	StateAwaitingQuestion State = iota
	StatePresenting
	StateAwaitingInput
	StateGrading
	StateTerminated
)

// Presenter is the terminal collaborator. The engine blocks on ReadLine
// at StateAwaitingInput; a test harness can implement Presenter with a
// scripted input sequence.
type Presenter interface {
	ShowQuestion(q *Question, number, total int)
	ShowHint(prefix string)
	ShowHelp()
	ShowFeedback(outcome domain.Outcome, verdict Verdict, correct string)
	ShowMessage(msg string)
	ShowSummary(sum Summary)
	ReadLine() (string, error)
}

// Recorder receives one event per resolved question. A nil Recorder
// disables history; recorder failures never interrupt a session.
type Recorder interface {
	RecordReview(card *domain.CardEntry, outcome domain.Outcome, at time.Time) error
}

// Summary is emitted when a session terminates.
type Summary struct {
	Language  string
	Mode      domain.Mode
	Direction domain.Direction

	Presented  int
	Correct    int
	Incorrect  int
	Skipped    int
	Unfamiliar int

	UnfamiliarWords []*domain.CardEntry

	StartedAt  time.Time
	FinishedAt time.Time
}

// Accuracy is the correct share of answered questions, in percent.
func (s Summary) Accuracy() float64 {
	answered := s.Correct + s.Incorrect
	if answered == 0 {
		return 0
	}
	return float64(s.Correct) / float64(answered) * 100
}

// Engine drives one quiz session over a fixed working set. It owns no
// persistent state beyond what it writes back into the store's cards.
type Engine struct {
	store     *store.Store
	gen       *Generator
	presenter Presenter
	recorder  Recorder

	mode      domain.Mode
	direction domain.Direction
	working   []*domain.CardEntry
	pool      []*domain.CardEntry

	state   State
	pos     int
	current *Question
	hints   int
	input   string
	quit    bool
	sum     Summary
}

// NewEngine samples a working set of up to count cards and prepares a
// session. Returns domain.ErrEmptyPool when no card fits the direction.
func NewEngine(st *store.Store, gen *Generator, p Presenter, rec Recorder, language string, mode domain.Mode, dir domain.Direction, count int) (*Engine, error) {
	working, err := st.Sample(count, dir)
	if err != nil {
		return nil, fmt.Errorf("building working set: %w", err)
	}
	return &Engine{
		store:     st,
		gen:       gen,
		presenter: p,
		recorder:  rec,
		mode:      mode,
		direction: dir,
		working:   working,
		pool:      st.Eligible(dir),
		sum: Summary{
			Language:  language,
			Mode:      mode,
			Direction: dir,
		},
	}, nil
}

// State reports the engine's current state.
func (e *Engine) State() State {
	return e.state
}

// Run executes the session to termination and returns the summary.
func (e *Engine) Run() Summary {
	e.sum.StartedAt = time.Now().UTC()
	e.state = StateAwaitingQuestion

	for e.state != StateTerminated {
		switch e.state {
		case StateAwaitingQuestion:
			e.next()
		case StatePresenting:
			e.present()
		case StateAwaitingInput:
			e.readTurn()
		case StateGrading:
			e.grade()
		}
	}

	e.sum.FinishedAt = time.Now().UTC()
	e.presenter.ShowSummary(e.sum)
	return e.sum
}

// next picks the next card or terminates the session.
func (e *Engine) next() {
	if e.quit || e.pos >= len(e.working) {
		e.state = StateTerminated
		return
	}

	q, err := e.gen.Build(e.working[e.pos], e.pool, e.direction, e.mode)
	if err != nil {
		slog.Warn("skipping card", "card", e.working[e.pos].Key(), "error", err)
		e.pos++
		return
	}
	e.current = q
	e.hints = 0
	e.state = StatePresenting
}

func (e *Engine) present() {
	e.presenter.ShowQuestion(e.current, e.pos+1, len(e.working))
	e.state = StateAwaitingInput
}

// readTurn handles one line of input: a command or an answer. Hint and
// help do not consume the turn.
func (e *Engine) readTurn() {
	line, err := e.presenter.ReadLine()
	if err != nil {
		e.quit = true
		e.state = StateAwaitingQuestion
		return
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "s":
		e.resolve(store.Result{Outcome: domain.OutcomeSkipped})
		e.presenter.ShowFeedback(domain.OutcomeSkipped, VerdictIncorrect, e.correctAnswer())
	case "?":
		e.hint()
	case "u":
		e.sum.UnfamiliarWords = append(e.sum.UnfamiliarWords, e.current.Card)
		e.resolve(store.Result{Outcome: domain.OutcomeUnfamiliar})
		e.presenter.ShowFeedback(domain.OutcomeUnfamiliar, VerdictIncorrect, e.correctAnswer())
	case "h":
		e.presenter.ShowHelp()
	case "q":
		e.quit = true
		e.state = StateAwaitingQuestion
	default:
		e.input = line
		e.state = StateGrading
	}
}

// hint reveals one more leading character of the correct answer, capped
// at one short of revealing it all. Single-rune answers have nothing to
// reveal.
func (e *Engine) hint() {
	answer := []rune(e.correctAnswer())
	limit := len(answer) - 1
	if limit < 1 {
		e.presenter.ShowMessage("no hint available for this word")
		return
	}
	if e.hints < limit {
		e.hints++
	}
	e.presenter.ShowHint(string(answer[:e.hints]))
}

func (e *Engine) grade() {
	var verdict Verdict
	if e.mode == domain.ModeChoice {
		n, err := strconv.Atoi(strings.TrimSpace(e.input))
		if err != nil || n < 1 || n > len(e.current.Options) {
			e.presenter.ShowMessage(fmt.Sprintf("enter a number between 1 and %d, or h for help", len(e.current.Options)))
			e.state = StateAwaitingInput
			return
		}
		if n-1 == e.current.CorrectIndex {
			verdict = VerdictCorrect
		}
	} else {
		verdict = Evaluate(e.input, e.current.Accepted)
	}

	outcome := domain.OutcomeIncorrect
	if verdict == VerdictCorrect {
		outcome = domain.OutcomeCorrect
	}
	e.resolve(store.Result{
		Outcome:  outcome,
		FirstTry: verdict == VerdictCorrect && e.hints == 0,
		Close:    verdict == VerdictClose,
	})
	e.presenter.ShowFeedback(outcome, verdict, e.correctAnswer())
}

// resolve finishes the current question: counters, store update and the
// optional history record, then moves on.
func (e *Engine) resolve(res store.Result) {
	e.sum.Presented++
	switch res.Outcome {
	case domain.OutcomeCorrect:
		e.sum.Correct++
	case domain.OutcomeIncorrect:
		e.sum.Incorrect++
	case domain.OutcomeSkipped:
		e.sum.Skipped++
	case domain.OutcomeUnfamiliar:
		e.sum.Unfamiliar++
	}

	e.store.RecordResult(e.current.Card, res)

	if e.recorder != nil {
		if err := e.recorder.RecordReview(e.current.Card, res.Outcome, time.Now().UTC()); err != nil {
			slog.Warn("failed to record review", "card", e.current.Card.Key(), "error", err)
		}
	}

	e.pos++
	e.state = StateAwaitingQuestion
}

func (e *Engine) correctAnswer() string {
	if e.mode == domain.ModeChoice && len(e.current.Options) > 0 {
		return e.current.Options[e.current.CorrectIndex]
	}
	return e.current.Accepted[0]
}
