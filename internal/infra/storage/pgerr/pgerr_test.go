package pgerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	wrapped := fmt.Errorf("insert booking: %w", &pq.Error{Code: ExclusionViolation})

	assert.Equal(t, ExclusionViolation, Code(wrapped))
	assert.True(t, Is(wrapped, ExclusionViolation))
	assert.False(t, Is(wrapped, UniqueViolation))
	assert.Equal(t, "", Code(errors.New("plain")))
	assert.Equal(t, "", Code(nil))
}
