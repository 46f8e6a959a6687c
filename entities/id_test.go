package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID_TimeOrdered(t *testing.T) {
	a, b := NewID(), NewID()
	assert.Len(t, a, 36)
	assert.Less(t, a, b)
}

func TestBeforeCreate_KeepsExistingID(t *testing.T) {
	r := &FarmRecord{ID: "fixed"}
	assert.NoError(t, r.BeforeCreate(nil))
	assert.Equal(t, "fixed", r.ID)

	m := &ChatMessage{}
	assert.NoError(t, m.BeforeCreate(nil))
	assert.NotEmpty(t, m.ID)
}
