package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monosijkayal/open-form/internal/model"
)

func TestCreateForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/forms", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload CreateFormPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "T", payload.Title)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreatedForm{
			FormID:   "f1",
			EditKey:  "k1",
			ShareID:  "s1",
			ShareURL: "http://forms.test/respond/s1",
		})
	}))
	defer srv.Close()

	created, err := New(srv.URL).CreateForm(context.Background(), CreateFormPayload{Title: "T"})
	require.NoError(t, err)
	assert.Equal(t, "f1", created.FormID)
	assert.Equal(t, "k1", created.EditKey)
	assert.Equal(t, "s1", created.ShareID)
}

func TestGetForm_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "form not found"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).GetForm(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateForm_SendsKeyAndMapsForbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/forms/f1", r.URL.Path)
		assert.Equal(t, "wrong", r.URL.Query().Get("key"))

		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid edit key"})
	}))
	defer srv.Close()

	title := "after"
	err := New(srv.URL).UpdateForm(context.Background(), "f1", "wrong", &model.FormPatch{Title: &title})
	require.ErrorIs(t, err, ErrForbidden)
}

func TestSubmitResponseByShare(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/responses/share/s1", r.URL.Path)

		var payload struct {
			Answers []model.Answer `json:"answers"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Len(t, payload.Answers, 1)
		assert.Equal(t, "q1", payload.Answers[0].QuestionID)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]bool{"success": true})
	}))
	defer srv.Close()

	err := New(srv.URL).SubmitResponseByShare(context.Background(), "s1", []model.Answer{
		{QuestionID: "q1", Value: model.NewAnswerValue("blue")},
	})
	require.NoError(t, err)
}

func TestServerErrorIncludesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "failed to fetch form"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).GetForm(context.Background(), "f1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch form")
	assert.Contains(t, err.Error(), "500")
}

func TestListResponses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/responses/f1", r.URL.Path)
		json.NewEncoder(w).Encode([]*model.Response{
			{ID: "r1", FormID: "f1"},
			{ID: "r2", FormID: "f1"},
		})
	}))
	defer srv.Close()

	responses, err := New(srv.URL).ListResponses(context.Background(), "f1")
	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, "r1", responses[0].ID)
}
