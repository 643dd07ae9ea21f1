// Package builder holds the client-side form draft state. Every operation
// takes a snapshot and returns a new one; a draft is only ever sent to the
// server wholesale, on create or save.
package builder

import (
	"strings"

	"github.com/google/uuid"

	"github.com/monosijkayal/open-form/internal/model"
)

// Draft is a form under construction. Its ID is a client-side identifier in
// a space completely separate from the server's formId.
type Draft struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	HeaderImageURL string           `json:"headerImageUrl,omitempty"`
	Questions      []model.Question `json:"questions"`
}

// NewDraft creates an empty draft with a fresh client identifier.
func NewDraft() Draft {
	return Draft{
		ID:          uuid.New().String(),
		Title:       "Untitled Form",
		Description: "Add a description for your form",
		Questions:   []model.Question{},
	}
}

// Patch is a partial update to a draft's top-level fields
type Patch struct {
	Title          *string
	Description    *string
	HeaderImageURL *string
}

// Apply returns a new snapshot with the non-nil patch fields replaced.
func (d Draft) Apply(p Patch) Draft {
	next := d.clone()
	if p.Title != nil {
		next.Title = *p.Title
	}
	if p.Description != nil {
		next.Description = *p.Description
	}
	if p.HeaderImageURL != nil {
		next.HeaderImageURL = *p.HeaderImageURL
	}
	return next
}

// AddQuestion appends a new question of the given type with a fresh id and
// type-appropriate defaults, returning the new snapshot and the question.
func (d Draft) AddQuestion(t model.QuestionType) (Draft, model.Question) {
	q := model.Question{
		ID:    uuid.New().String(),
		Type:  t,
		Title: "New " + titleCase(string(t)) + " Question",
	}
	if t == model.QuestionTypeCategorize {
		q.Options = []string{"Option 1", "Option 2"}
	}

	next := d.clone()
	next.Questions = append(next.Questions, q)
	return next, q
}

// QuestionPatch is a partial update to one question
type QuestionPatch struct {
	Title         *string
	Content       *string
	Options       *[]string
	CorrectAnswer *model.AnswerValue
	ImageURL      *string
}

// UpdateQuestion returns a new snapshot with the patch applied to the
// question with the given id. Unknown ids leave the draft unchanged.
func (d Draft) UpdateQuestion(id string, p QuestionPatch) Draft {
	next := d.clone()
	for i := range next.Questions {
		if next.Questions[i].ID != id {
			continue
		}
		if p.Title != nil {
			next.Questions[i].Title = *p.Title
		}
		if p.Content != nil {
			next.Questions[i].Content = *p.Content
		}
		if p.Options != nil {
			next.Questions[i].Options = *p.Options
		}
		if p.CorrectAnswer != nil {
			next.Questions[i].CorrectAnswer = p.CorrectAnswer
		}
		if p.ImageURL != nil {
			next.Questions[i].ImageURL = *p.ImageURL
		}
	}
	return next
}

// RemoveQuestion returns a new snapshot without the question with the
// given id.
func (d Draft) RemoveQuestion(id string) Draft {
	next := d.clone()
	questions := next.Questions[:0:0]
	for _, q := range next.Questions {
		if q.ID != id {
			questions = append(questions, q)
		}
	}
	next.Questions = questions
	return next
}

func (d Draft) clone() Draft {
	next := d
	next.Questions = make([]model.Question, len(d.Questions))
	copy(next.Questions, d.Questions)
	return next
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
