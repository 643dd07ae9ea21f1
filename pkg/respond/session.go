// Package respond holds the client-side state of one respondent filling in
// a shared form.
package respond

import (
	"context"
	"errors"
	"fmt"

	"github.com/monosijkayal/open-form/internal/model"
	"github.com/monosijkayal/open-form/pkg/client"
)

// State is the respondent view state
type State string

const (
	StateLoading    State = "loading"
	StateLoaded     State = "loaded"
	StateNotFound   State = "not-found"
	StateSubmitting State = "submitting"
	StateSubmitted  State = "submitted"
)

// ErrState is returned when an operation is not valid in the current state.
var ErrState = errors.New("operation not valid in current state")

// Session drives one respondent through loading a shared form, answering
// and submitting. It is not safe for concurrent use; the respondent view
// is single-threaded by contract.
type Session struct {
	api     *client.Client
	shareID string

	state   State
	form    *model.Form
	answers []model.Answer
	lastErr error
}

// NewSession creates a session for the given share identifier. The session
// starts in the loading state; call Load to fetch the form.
func NewSession(api *client.Client, shareID string) *Session {
	return &Session{
		api:     api,
		shareID: shareID,
		state:   StateLoading,
	}
}

// Load fetches the form behind the share identifier. An unknown share id
// moves the session to the not-found terminal state.
func (s *Session) Load(ctx context.Context) error {
	form, err := s.api.GetSharedForm(ctx, s.shareID)
	if errors.Is(err, client.ErrNotFound) {
		s.state = StateNotFound
		return err
	}
	if err != nil {
		s.lastErr = err
		return err
	}

	s.form = form
	s.state = StateLoaded
	return nil
}

// SetAnswer upserts the value for a question: an existing entry is
// replaced in place, otherwise the answer is appended.
func (s *Session) SetAnswer(questionID string, value model.AnswerValue) error {
	if s.state != StateLoaded {
		return fmt.Errorf("%w: %s", ErrState, s.state)
	}

	for i := range s.answers {
		if s.answers[i].QuestionID == questionID {
			s.answers[i].Value = value
			return nil
		}
	}
	s.answers = append(s.answers, model.Answer{QuestionID: questionID, Value: value})
	return nil
}

// Submit posts the full answer list to the share submit endpoint. On
// failure the session returns to the answering state with the answers
// preserved so the respondent may retry.
func (s *Session) Submit(ctx context.Context) error {
	if s.state != StateLoaded {
		return fmt.Errorf("%w: %s", ErrState, s.state)
	}

	s.state = StateSubmitting
	if err := s.api.SubmitResponseByShare(ctx, s.shareID, s.answers); err != nil {
		s.state = StateLoaded
		s.lastErr = err
		return err
	}

	s.state = StateSubmitted
	s.lastErr = nil
	return nil
}

// Reset returns a submitted session to the answering state with a clean
// answer list, allowing a second submission.
func (s *Session) Reset() error {
	if s.state != StateSubmitted {
		return fmt.Errorf("%w: %s", ErrState, s.state)
	}
	s.state = StateLoaded
	s.answers = nil
	return nil
}

// State returns the current view state.
func (s *Session) State() State { return s.state }

// Form returns the loaded form, or nil before a successful Load.
func (s *Session) Form() *model.Form { return s.form }

// Answers returns the current answer list in entry order.
func (s *Session) Answers() []model.Answer { return s.answers }

// Err returns the most recent submission or load failure, if any.
func (s *Session) Err() error { return s.lastErr }
