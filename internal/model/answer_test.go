package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestAnswerValue_SingleString(t *testing.T) {
	var a AnswerValue
	require.NoError(t, json.Unmarshal([]byte(`"blue"`), &a))

	assert.False(t, a.IsList())
	assert.Equal(t, []string{"blue"}, a.Values())

	out, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, `"blue"`, string(out))
}

func TestAnswerValue_List(t *testing.T) {
	var a AnswerValue
	require.NoError(t, json.Unmarshal([]byte(`["red","green"]`), &a))

	assert.True(t, a.IsList())
	assert.Equal(t, []string{"red", "green"}, a.Values())

	out, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, `["red","green"]`, string(out))
}

func TestAnswerValue_RejectsOtherShapes(t *testing.T) {
	for _, raw := range []string{`42`, `{"a":1}`, `[1,2]`, `true`} {
		var a AnswerValue
		assert.Error(t, json.Unmarshal([]byte(raw), &a), "shape %s should be rejected", raw)
	}
}

func TestAnswer_WireShape(t *testing.T) {
	ans := Answer{QuestionID: "q1", Value: NewAnswerValue("blue")}

	out, err := json.Marshal(ans)
	require.NoError(t, err)
	assert.JSONEq(t, `{"questionId":"q1","value":"blue"}`, string(out))

	var back Answer
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, ans, back)
}

func TestAnswerValue_BSONRoundTrip(t *testing.T) {
	type doc struct {
		Single AnswerValue `bson:"single"`
		Many   AnswerValue `bson:"many"`
	}

	in := doc{
		Single: NewAnswerValue("blue"),
		Many:   NewAnswerList("red", "green"),
	}

	data, err := bson.Marshal(in)
	require.NoError(t, err)

	var out doc
	require.NoError(t, bson.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}
