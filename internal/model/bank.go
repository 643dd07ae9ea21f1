package model

import "time"

// BankQuestion is an entry in the standalone question bank. The bank is a
// separate collection with its own routes and is intentionally not
// reconciled with the questions embedded in forms.
type BankQuestion struct {
	ID            string       `json:"id" bson:"id"`
	Type          QuestionType `json:"type" bson:"type"`
	Title         string       `json:"title,omitempty" bson:"title,omitempty"`
	Content       string       `json:"content,omitempty" bson:"content,omitempty"`
	Options       []string     `json:"options,omitempty" bson:"options,omitempty"`
	CorrectAnswer *AnswerValue `json:"correctAnswer,omitempty" bson:"correctAnswer,omitempty"`
	ImageURL      string       `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	CreatedAt     time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt" bson:"updatedAt"`
}
