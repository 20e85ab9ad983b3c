package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalString_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		ParentID OptionalString `json:"parentId"`
	}

	tests := []struct {
		name    string
		body    string
		present bool
		value   *string
	}{
		{name: "absent", body: `{}`},
		{name: "null", body: `{"parentId":null}`, present: true},
		{name: "value", body: `{"parentId":"hr"}`, present: true, value: ptr("hr")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var p payload
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))
			assert.Equal(t, tt.present, p.ParentID.Present)
			assert.Equal(t, tt.value, p.ParentID.Value)
		})
	}
}

func TestOptionalString_RejectsNonString(t *testing.T) {
	t.Parallel()

	var o OptionalString
	assert.Error(t, json.Unmarshal([]byte(`42`), &o))
}

func TestFolder_HasParent(t *testing.T) {
	t.Parallel()

	root := Folder{ID: "root"}
	child := Folder{ID: "hr", ParentID: ptr("root")}

	assert.True(t, root.IsRoot())
	assert.True(t, root.HasParent(nil))
	assert.False(t, child.HasParent(nil))
	assert.True(t, child.HasParent(ptr("root")))
	assert.False(t, child.HasParent(ptr("it")))
}

func TestDocumentPatch_Apply(t *testing.T) {
	t.Parallel()

	tags := []string{"Final"}
	doc := Document{ID: "d1", Name: "a", Tags: []string{"Draft"}, Privacy: PrivacyPublic}

	DocumentPatch{Name: ptr("b"), Tags: &tags}.Apply(&doc)

	assert.Equal(t, "b", doc.Name)
	assert.Equal(t, []string{"Final"}, doc.Tags)
	assert.Equal(t, PrivacyPublic, doc.Privacy)

	tags[0] = "mutated"
	assert.Equal(t, []string{"Final"}, doc.Tags)
}

func TestUser_Actor(t *testing.T) {
	t.Parallel()

	var nobody *User
	assert.Equal(t, Actor{}, nobody.Actor())
	assert.Equal(t, Actor{ID: "u1", Name: "jdoe"}, (&User{ID: "u1", Login: "jdoe"}).Actor())
}

func ptr(s string) *string { return &s }
