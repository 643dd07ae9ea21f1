package model

import "time"

// Form is the shareable unit composed by an author. Access is governed by
// three server-generated identifiers: FormID for internal/edit lookup,
// EditKey as the mutation capability, and ShareID for public read/respond
// access. FormID and ShareID carry unique indexes in the store.
type Form struct {
	ID             string     `json:"-" bson:"_id,omitempty"`
	FormID         string     `json:"formId" bson:"formId"`
	EditKey        string     `json:"editKey,omitempty" bson:"editKey"`
	ShareID        string     `json:"shareId" bson:"shareId"`
	Title          string     `json:"title" bson:"title"`
	Description    string     `json:"description,omitempty" bson:"description,omitempty"`
	HeaderImageURL string     `json:"headerImageUrl,omitempty" bson:"headerImageUrl,omitempty"`
	Questions      []Question `json:"questions" bson:"questions"` // insertion order is display order
	CreatedAt      time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// FormPatch is a partial update applied through the edit-key path. Nil
// fields are left untouched. EditKey is included deliberately: a caller who
// proves possession of the current key may rotate it, matching the raw
// field-merge semantics of the original design.
type FormPatch struct {
	Title          *string     `json:"title,omitempty" bson:"title,omitempty"`
	Description    *string     `json:"description,omitempty" bson:"description,omitempty"`
	HeaderImageURL *string     `json:"headerImageUrl,omitempty" bson:"headerImageUrl,omitempty"`
	Questions      *[]Question `json:"questions,omitempty" bson:"questions,omitempty"`
	EditKey        *string     `json:"editKey,omitempty" bson:"editKey,omitempty"`
}
