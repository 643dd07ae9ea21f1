package model

// QuestionType defines the type of question
type QuestionType string

const (
	QuestionTypeCategorize    QuestionType = "categorize"    // Sort items into category options
	QuestionTypeCloze         QuestionType = "cloze"         // Fill-in-the-blank text
	QuestionTypeComprehension QuestionType = "comprehension" // Passage with free-text answer

	// Legacy types from the old form shape. Still accepted on write and
	// rendered as their nearest current equivalent.
	QuestionTypeMultipleChoice QuestionType = "multiple-choice"
	QuestionTypeText           QuestionType = "text"
)

// Question is one item in a form. Which fields carry meaning depends on
// Type (Options for categorize, Content for cloze/comprehension); that is
// a rendering convention, not enforced at write time.
type Question struct {
	ID            string       `json:"id" bson:"id"` // client-generated UUID
	Type          QuestionType `json:"type" bson:"type"`
	Title         string       `json:"title,omitempty" bson:"title,omitempty"`
	Content       string       `json:"content,omitempty" bson:"content,omitempty"` // category prompt, cloze text with blanks, or passage
	Options       []string     `json:"options,omitempty" bson:"options,omitempty"` // categorize only
	CorrectAnswer *AnswerValue `json:"correctAnswer,omitempty" bson:"correctAnswer,omitempty"`
	ImageURL      string       `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
}
