package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTaxonomy(t *testing.T) {
	t.Parallel()

	notFound := NewNotFoundError("Post", 7)
	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsUnauthenticated(notFound))
	assert.Equal(t, CodeNotFound, ErrorCode(notFound))
	assert.Contains(t, notFound.Error(), "Post with ID 7")

	unauth := NewUnauthenticatedError("User not authenticated")
	assert.True(t, IsUnauthenticated(unauth))
	assert.False(t, IsNotFound(unauth))

	wrapped := fmt.Errorf("outer: %w", notFound)
	assert.True(t, IsNotFound(wrapped), "codes survive wrapping")

	assert.False(t, IsNotFound(errors.New("plain")))
	assert.Empty(t, ErrorCode(errors.New("plain")))
}

func TestParseID(t *testing.T) {
	t.Parallel()

	id, err := ParseID("User", " 42 ")
	assert.NoError(t, err)
	assert.Equal(t, 42, id)

	_, err = ParseID("User", "abc")
	assert.True(t, IsNotFound(err), "non-numeric input is a miss, not a silent zero")

	_, err = ParseID("User", "")
	assert.True(t, IsNotFound(err))
}
