package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusEditable(t *testing.T) {
	assert.True(t, StatusNew.Editable())
	for _, s := range []Status{StatusPending, StatusAccepted, StatusRejected, ""} {
		assert.False(t, s.Editable(), s)
	}
}

func TestImageDataBase64(t *testing.T) {
	raw := []byte{0xff, 0xd8, 0xff, 0x00, 0x10, 'J', 'F', 'I', 'F'}
	title := "Подъём"

	b, err := json.Marshal(Image{ID: 3, Title: &title, Data: raw})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"title":"Подъём","data":"/9j/ABBKRklG"}`, string(b))

	var back Image
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, raw, back.Data)
}

func TestPerevalJSON_HidesInternalIDs(t *testing.T) {
	p := Pereval{
		ID:     1,
		Title:  "Пхия",
		Status: StatusNew,
		User:   User{ID: 42, Email: "a@b.com"},
		Coords: Coords{ID: 9, Latitude: 45.3842, Longitude: 7.1525, Height: 1200},
		Images: []Image{},
	}
	b, err := json.Marshal(p)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.NotContains(t, m["user"], "id")
	assert.NotContains(t, m["coords"], "id")
	assert.Equal(t, []any{}, m["images"])
	assert.Equal(t, "new", m["status"])
}
