package practice

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/ekuzmin/vokab/internal/hint"
	"github.com/ekuzmin/vokab/internal/review"
	"github.com/ekuzmin/vokab/internal/router"
	"github.com/ekuzmin/vokab/internal/schedule"
	"github.com/ekuzmin/vokab/internal/screen"
	"github.com/ekuzmin/vokab/internal/screens/summary"
	"github.com/ekuzmin/vokab/internal/store"
	"github.com/ekuzmin/vokab/internal/ui/components"
	"github.com/ekuzmin/vokab/internal/ui/layout"
)

type phase int

const (
	phaseLoading phase = iota
	phaseQuestion
	phaseFeedback
	phaseQuitConfirm
	phaseError
)

// PracticeScreen runs one review or training session against the
// session manager. All scheduling state lives in the manager; this
// screen only presents items and collects answers.
type PracticeScreen struct {
	mgr       *review.Manager
	learnerID string
	kind      review.SessionType
	mode      review.Mode
	filter    store.WordFilter

	sess  review.Session
	item  *review.ItemView
	stats review.Stats
	phase phase

	// recognition mode
	revealed bool

	// typed input modes
	input         components.AnswerInput
	hints         []hint.Hint
	hintPenalties int
	hintNotice    string

	// feedback carries the answered item alongside its outcome, so the
	// verdict can still show the expected answer after the cursor moved.
	outcome  *review.Outcome
	answered *review.ItemView
	typed    string

	itemStart time.Time
	errMsg    string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a PracticeScreen that will start a session on Init.
func New(mgr *review.Manager, learnerID string, kind review.SessionType, mode review.Mode, filter store.WordFilter) *PracticeScreen {
	return &PracticeScreen{
		mgr:       mgr,
		learnerID: learnerID,
		kind:      kind,
		mode:      mode,
		filter:    filter,
		input:     components.NewAnswerInput("Type the answer...", 64),
	}
}

func (p *PracticeScreen) Init() tea.Cmd {
	return tea.Batch(p.startSession(), p.input.Init())
}

func (p *PracticeScreen) Title() string {
	if p.kind == review.TypeTraining {
		return "Training"
	}
	return "Daily Review"
}

// typedMode reports whether the learner answers by typing.
func (p *PracticeScreen) typedMode() bool {
	return p.mode == review.ModeTranslationInput || p.mode == review.ModeReverseInput
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	switch p.phase {
	case phaseQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case phaseQuestion:
		if p.typedMode() {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Submit"},
				{Key: "Ctrl+L", Description: "Length hint"},
				{Key: "Ctrl+F", Description: "First letter"},
				{Key: "Esc", Description: "Quit"},
			}
		}
		if p.revealed {
			return []layout.KeyHint{
				{Key: "1-4", Description: "Rate recall"},
				{Key: "Esc", Description: "Quit"},
			}
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "Reveal"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return nil
}

func (p *PracticeScreen) View(width, height int) string {
	switch p.phase {
	case phaseError:
		return renderError(width, p.errMsg)
	case phaseLoading:
		return renderLoading(width)
	case phaseQuitConfirm:
		return renderQuitConfirm(width)
	case phaseFeedback:
		return p.renderFeedback(width)
	default:
		return p.renderQuestion(width)
	}
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		return p.handleStarted(msg)
	case outcomeMsg:
		return p.handleOutcome(msg)
	case hintMsg:
		return p.handleHint(msg)
	case sessionEndedMsg:
		return p.handleEnded(msg)
	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	if p.phase == phaseQuestion && p.typedMode() {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *PracticeScreen) handleStarted(msg sessionStartedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		if errors.Is(msg.Err, review.ErrNoWordsDue) {
			if p.kind == review.TypeDaily {
				p.errMsg = "Nothing due right now. Come back later!"
			} else {
				p.errMsg = "No words match this selection."
			}
		} else {
			p.errMsg = msg.Err.Error()
		}
		p.phase = phaseError
		return p, nil
	}
	p.sess = msg.Session
	p.item = msg.Item
	p.stats = review.Stats{TotalItems: msg.Session.TotalItems}
	p.beginItem()
	return p, nil
}

func (p *PracticeScreen) handleOutcome(msg outcomeMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		switch {
		case errors.Is(msg.Err, review.ErrHintRepeated),
			errors.Is(msg.Err, review.ErrItemMismatch),
			errors.Is(msg.Err, schedule.ErrInvalidRating):
			// Submission was rejected without consuming the item.
			p.hintNotice = msg.Err.Error()
			p.phase = phaseQuestion
			return p, nil
		case errors.Is(msg.Err, review.ErrSessionCompleted):
			return p, p.showSummary(p.stats)
		}
		p.errMsg = msg.Err.Error()
		p.phase = phaseError
		return p, nil
	}

	p.outcome = msg.Outcome
	p.answered = p.item
	p.stats = msg.Outcome.Stats
	if msg.Outcome.Evaluation != nil {
		p.input.Submit(msg.Outcome.Evaluation.Correct())
	}
	p.phase = phaseFeedback
	return p, nil
}

func (p *PracticeScreen) handleHint(msg hintMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		if errors.Is(msg.Err, review.ErrHintRepeated) {
			p.hintNotice = "You already took that hint."
			return p, nil
		}
		p.hintNotice = msg.Err.Error()
		return p, nil
	}
	if msg.Hint.Content == "" {
		return p, nil
	}
	p.hints = append(p.hints, msg.Hint)
	if msg.Hint.Penalty {
		p.hintPenalties++
	}
	return p, nil
}

func (p *PracticeScreen) handleEnded(msg sessionEndedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		p.errMsg = msg.Err.Error()
		p.phase = phaseError
		return p, nil
	}
	return p, p.showSummary(msg.Stats)
}

func (p *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch p.phase {
	case phaseError:
		return p, func() tea.Msg { return router.PopScreenMsg{} }

	case phaseLoading:
		return p, nil

	case phaseQuitConfirm:
		switch key {
		case "y", "Y":
			return p, p.endSession()
		case "n", "N", "esc":
			p.phase = phaseQuestion
		}
		return p, nil

	case phaseFeedback:
		return p.advance()

	case phaseQuestion:
		if key == "esc" {
			p.phase = phaseQuitConfirm
			return p, nil
		}
		p.hintNotice = ""

		if p.typedMode() {
			switch key {
			case "enter":
				p.typed = p.input.Value()
				p.phase = phaseLoading
				return p, p.submitAnswer(p.typed)
			case "ctrl+l":
				return p, p.requestHint(hint.KindLength)
			case "ctrl+f":
				return p, p.requestHint(hint.KindFirstLetter)
			}
			var cmd tea.Cmd
			p.input, cmd = p.input.Update(msg)
			return p, cmd
		}

		// Recognition: reveal, then rate.
		if !p.revealed {
			if key == "enter" || key == "space" || key == " " {
				p.revealed = true
			}
			return p, nil
		}
		switch key {
		case "1", "2", "3", "4":
			rating := int(key[0] - '0')
			p.phase = phaseLoading
			return p, p.submitRating(rating)
		}
		return p, nil
	}

	return p, nil
}

// beginItem resets per-item presentation state.
func (p *PracticeScreen) beginItem() {
	p.phase = phaseQuestion
	p.revealed = false
	p.hints = nil
	p.hintPenalties = 0
	p.hintNotice = ""
	p.typed = ""
	p.input = components.NewAnswerInput("Type the answer...", 64)
	p.itemStart = time.Now()
}

// advance moves past the feedback view to the next item or the summary.
func (p *PracticeScreen) advance() (screen.Screen, tea.Cmd) {
	out := p.outcome
	p.outcome = nil
	p.answered = nil

	if out == nil {
		p.phase = phaseQuestion
		return p, nil
	}
	if out.SessionCompleted {
		return p, p.showSummary(out.Stats)
	}
	p.item = out.Next
	p.beginItem()
	return p, p.input.Init()
}

func (p *PracticeScreen) showSummary(stats review.Stats) tea.Cmd {
	kind, mode := p.kind, p.mode
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(stats, kind, mode)}
	}
}

func (p *PracticeScreen) startSession() tea.Cmd {
	return func() tea.Msg {
		sess, item, err := p.mgr.CreateSession(context.Background(), p.learnerID, p.kind, p.mode, p.filter)
		return sessionStartedMsg{Session: sess, Item: item, Err: err}
	}
}

func (p *PracticeScreen) submitRating(rating int) tea.Cmd {
	sessID, wordID := p.sess.ID, p.item.WordID
	timeMs := int(time.Since(p.itemStart).Milliseconds())
	return func() tea.Msg {
		out, err := p.mgr.SubmitRating(context.Background(), p.learnerID, sessID, wordID, rating, timeMs)
		return outcomeMsg{Outcome: out, Err: err}
	}
}

func (p *PracticeScreen) submitAnswer(input string) tea.Cmd {
	sessID, wordID, used := p.sess.ID, p.item.WordID, p.hintPenalties
	timeMs := int(time.Since(p.itemStart).Milliseconds())
	return func() tea.Msg {
		out, err := p.mgr.SubmitAnswer(context.Background(), p.learnerID, sessID, wordID, input, used, timeMs)
		return outcomeMsg{Outcome: out, Err: err}
	}
}

func (p *PracticeScreen) requestHint(kind hint.Kind) tea.Cmd {
	sessID, wordID, used := p.sess.ID, p.item.WordID, p.hintPenalties
	return func() tea.Msg {
		h, err := p.mgr.RequestHint(context.Background(), p.learnerID, sessID, wordID, kind, used)
		return hintMsg{Hint: h, Err: err}
	}
}

func (p *PracticeScreen) endSession() tea.Cmd {
	sessID := p.sess.ID
	return func() tea.Msg {
		stats, err := p.mgr.EndSession(context.Background(), p.learnerID, sessID)
		return sessionEndedMsg{Stats: stats, Err: err}
	}
}
