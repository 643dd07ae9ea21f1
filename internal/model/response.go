package model

import "time"

// Response is one respondent's submitted answer set for a form. Responses
// are stored in their own collection keyed by the owning form's formId;
// they are created once and never updated or deleted.
type Response struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	FormID      string    `json:"formId" bson:"formId"`
	Answers     []Answer  `json:"answers" bson:"answers"`
	SubmittedAt time.Time `json:"submittedAt" bson:"submittedAt"`
}
