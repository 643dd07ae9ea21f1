package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monosijkayal/open-form/internal/model"
)

func TestNewDraft_Defaults(t *testing.T) {
	d := NewDraft()

	assert.NotEmpty(t, d.ID)
	assert.Equal(t, "Untitled Form", d.Title)
	assert.Empty(t, d.Questions)

	other := NewDraft()
	assert.NotEqual(t, d.ID, other.ID)
}

func TestApply_ReplacesOnlyPatchedFields(t *testing.T) {
	d := NewDraft()

	title := "Customer Survey"
	next := d.Apply(Patch{Title: &title})

	assert.Equal(t, "Customer Survey", next.Title)
	assert.Equal(t, d.Description, next.Description)
	assert.Equal(t, "Untitled Form", d.Title, "previous snapshot unchanged")
}

func TestAddQuestion_TypeDefaults(t *testing.T) {
	d := NewDraft()

	next, q := d.AddQuestion(model.QuestionTypeCategorize)
	assert.NotEmpty(t, q.ID)
	assert.Equal(t, "New Categorize Question", q.Title)
	assert.Equal(t, []string{"Option 1", "Option 2"}, q.Options)
	require.Len(t, next.Questions, 1)
	assert.Empty(t, d.Questions, "previous snapshot unchanged")

	next, q = next.AddQuestion(model.QuestionTypeCloze)
	assert.Equal(t, "New Cloze Question", q.Title)
	assert.Nil(t, q.Options)
	require.Len(t, next.Questions, 2)
	assert.Equal(t, model.QuestionTypeCategorize, next.Questions[0].Type, "insertion order preserved")
}

func TestUpdateQuestion(t *testing.T) {
	d, q := NewDraft().AddQuestion(model.QuestionTypeCloze)

	content := "The sky is ___"
	next := d.UpdateQuestion(q.ID, QuestionPatch{Content: &content})

	assert.Equal(t, content, next.Questions[0].Content)
	assert.Equal(t, q.Title, next.Questions[0].Title)
	assert.Empty(t, d.Questions[0].Content, "previous snapshot unchanged")
}

func TestUpdateQuestion_UnknownIDNoop(t *testing.T) {
	d, _ := NewDraft().AddQuestion(model.QuestionTypeCloze)

	title := "changed"
	next := d.UpdateQuestion("missing", QuestionPatch{Title: &title})
	assert.Equal(t, d.Questions, next.Questions)
}

func TestRemoveQuestion(t *testing.T) {
	d, first := NewDraft().AddQuestion(model.QuestionTypeCategorize)
	d, second := d.AddQuestion(model.QuestionTypeCloze)

	next := d.RemoveQuestion(first.ID)
	require.Len(t, next.Questions, 1)
	assert.Equal(t, second.ID, next.Questions[0].ID)
	assert.Len(t, d.Questions, 2, "previous snapshot unchanged")
}

func TestStore_SaveLoadList(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	d, _ := NewDraft().AddQuestion(model.QuestionTypeComprehension)
	title := "Reading check"
	d = d.Apply(Patch{Title: &title})

	require.NoError(t, store.Save(d))

	loaded, err := store.Load(d.ID)
	require.NoError(t, err)
	assert.Equal(t, d, loaded)

	ids, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{d.ID}, ids)
}

func TestStore_SaveOverwrites(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	d := NewDraft()
	require.NoError(t, store.Save(d))

	title := "v2"
	d = d.Apply(Patch{Title: &title})
	require.NoError(t, store.Save(d))

	loaded, err := store.Load(d.ID)
	require.NoError(t, err)
	assert.Equal(t, "v2", loaded.Title)

	ids, err := store.List()
	require.NoError(t, err)
	assert.Len(t, ids, 1)
}

func TestStore_LoadMissing(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load("missing")
	assert.Error(t, err)
}
