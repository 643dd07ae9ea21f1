package respond

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monosijkayal/open-form/internal/model"
	"github.com/monosijkayal/open-form/pkg/client"
)

// stubServer mimics the share read and share submit endpoints for one form.
type stubServer struct {
	form        *model.Form
	failSubmits int // fail this many submissions with a 500
	submissions [][]model.Answer
}

func (s *stubServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/forms/respond/", func(w http.ResponseWriter, r *http.Request) {
		if s.form == nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "form not found"})
			return
		}
		json.NewEncoder(w).Encode(s.form)
	})
	mux.HandleFunc("POST /api/responses/share/", func(w http.ResponseWriter, r *http.Request) {
		if s.failSubmits > 0 {
			s.failSubmits--
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "failed to submit response"})
			return
		}
		var body struct {
			Answers []model.Answer `json:"answers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		s.submissions = append(s.submissions, body.Answers)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]bool{"success": true})
	})
	return mux
}

func newStubSession(t *testing.T, stub *stubServer) *Session {
	t.Helper()
	srv := httptest.NewServer(stub.handler())
	t.Cleanup(srv.Close)
	return NewSession(client.New(srv.URL), "share123")
}

func testForm() *model.Form {
	return &model.Form{
		FormID:  "form12",
		ShareID: "share123",
		Title:   "T",
		Questions: []model.Question{
			{ID: "q1", Type: model.QuestionTypeCloze, Content: "The sky is ___"},
		},
	}
}

func TestSession_LoadSuccess(t *testing.T) {
	s := newStubSession(t, &stubServer{form: testForm()})
	assert.Equal(t, StateLoading, s.State())

	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, StateLoaded, s.State())
	require.NotNil(t, s.Form())
	assert.Equal(t, "T", s.Form().Title)
}

func TestSession_LoadNotFound(t *testing.T) {
	s := newStubSession(t, &stubServer{})

	err := s.Load(context.Background())
	require.ErrorIs(t, err, client.ErrNotFound)
	assert.Equal(t, StateNotFound, s.State())
}

func TestSession_SetAnswerUpserts(t *testing.T) {
	s := newStubSession(t, &stubServer{form: testForm()})
	require.NoError(t, s.Load(context.Background()))

	require.NoError(t, s.SetAnswer("q1", model.NewAnswerValue("red")))
	require.NoError(t, s.SetAnswer("q2", model.NewAnswerValue("two")))
	require.NoError(t, s.SetAnswer("q1", model.NewAnswerValue("blue")))

	answers := s.Answers()
	require.Len(t, answers, 2)
	assert.Equal(t, "q1", answers[0].QuestionID)
	assert.Equal(t, []string{"blue"}, answers[0].Value.Values(), "existing entry replaced in place")
	assert.Equal(t, "q2", answers[1].QuestionID)
}

func TestSession_SetAnswerBeforeLoad(t *testing.T) {
	s := newStubSession(t, &stubServer{form: testForm()})

	err := s.SetAnswer("q1", model.NewAnswerValue("blue"))
	require.ErrorIs(t, err, ErrState)
}

func TestSession_SubmitSuccess(t *testing.T) {
	stub := &stubServer{form: testForm()}
	s := newStubSession(t, stub)
	require.NoError(t, s.Load(context.Background()))
	require.NoError(t, s.SetAnswer("q1", model.NewAnswerValue("blue")))

	require.NoError(t, s.Submit(context.Background()))
	assert.Equal(t, StateSubmitted, s.State())
	require.Len(t, stub.submissions, 1)
	assert.Equal(t, "q1", stub.submissions[0][0].QuestionID)
}

func TestSession_SubmitFailureKeepsAnswersForRetry(t *testing.T) {
	stub := &stubServer{form: testForm(), failSubmits: 1}
	s := newStubSession(t, stub)
	require.NoError(t, s.Load(context.Background()))
	require.NoError(t, s.SetAnswer("q1", model.NewAnswerValue("blue")))

	err := s.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateLoaded, s.State())
	assert.Len(t, s.Answers(), 1, "answers preserved for retry")
	assert.Error(t, s.Err())

	// manual retry succeeds
	require.NoError(t, s.Submit(context.Background()))
	assert.Equal(t, StateSubmitted, s.State())
	assert.NoError(t, s.Err())
}

func TestSession_ResetAllowsSecondSubmission(t *testing.T) {
	stub := &stubServer{form: testForm()}
	s := newStubSession(t, stub)
	require.NoError(t, s.Load(context.Background()))
	require.NoError(t, s.SetAnswer("q1", model.NewAnswerValue("blue")))
	require.NoError(t, s.Submit(context.Background()))

	// submitting again without reset is invalid
	require.ErrorIs(t, s.Submit(context.Background()), ErrState)

	require.NoError(t, s.Reset())
	assert.Equal(t, StateLoaded, s.State())
	assert.Empty(t, s.Answers())

	require.NoError(t, s.SetAnswer("q1", model.NewAnswerValue("grey")))
	require.NoError(t, s.Submit(context.Background()))
	require.Len(t, stub.submissions, 2)
}

func TestSession_ResetOnlyFromSubmitted(t *testing.T) {
	s := newStubSession(t, &stubServer{form: testForm()})
	require.ErrorIs(t, s.Reset(), ErrState)
}
