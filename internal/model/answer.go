package model

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// AnswerValue is a respondent or answer-key value that is either a single
// string or a list of strings. Both shapes exist on the wire and in stored
// documents, so it round-trips each one unchanged.
type AnswerValue struct {
	values []string
	many   bool
}

// NewAnswerValue wraps a single string value.
func NewAnswerValue(v string) AnswerValue {
	return AnswerValue{values: []string{v}}
}

// NewAnswerList wraps a list of string values.
func NewAnswerList(vs ...string) AnswerValue {
	return AnswerValue{values: vs, many: true}
}

// Values returns the underlying values. A single-string answer yields a
// one-element slice.
func (a AnswerValue) Values() []string {
	return a.values
}

// IsList reports whether the value was supplied as a list.
func (a AnswerValue) IsList() bool {
	return a.many
}

func (a AnswerValue) MarshalJSON() ([]byte, error) {
	if a.many {
		return json.Marshal(a.values)
	}
	if len(a.values) == 0 {
		return json.Marshal("")
	}
	return json.Marshal(a.values[0])
}

func (a *AnswerValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = AnswerValue{values: []string{s}}
		return nil
	}
	var vs []string
	if err := json.Unmarshal(data, &vs); err == nil {
		*a = AnswerValue{values: vs, many: true}
		return nil
	}
	return fmt.Errorf("answer value must be a string or a list of strings")
}

func (a AnswerValue) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if a.many {
		return bson.MarshalValue(a.values)
	}
	if len(a.values) == 0 {
		return bson.MarshalValue("")
	}
	return bson.MarshalValue(a.values[0])
}

func (a *AnswerValue) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeString:
		*a = AnswerValue{values: []string{raw.StringValue()}}
		return nil
	case bson.TypeArray:
		var vs []string
		if err := raw.Unmarshal(&vs); err != nil {
			return err
		}
		*a = AnswerValue{values: vs, many: true}
		return nil
	default:
		return fmt.Errorf("answer value has unexpected BSON type %s", t)
	}
}

// Answer pairs a question with the value a respondent gave for it. The
// server never checks QuestionID against the form's question set.
type Answer struct {
	QuestionID string      `json:"questionId" bson:"questionId"`
	Value      AnswerValue `json:"value" bson:"value"`
}
