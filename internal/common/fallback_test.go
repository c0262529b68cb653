package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttemptSuccess(t *testing.T) {
	outcome := Attempt(func() (int, error) {
		return 42, nil
	}, func() int {
		t.Fatal("fallback must not run on success")
		return 0
	})

	assert.False(t, outcome.FellBack)
	assert.Empty(t, outcome.Reason)
	assert.Equal(t, 42, outcome.Value)
}

func TestAttemptFallsBack(t *testing.T) {
	outcome := Attempt(func() ([]string, error) {
		return nil, errors.New("service unavailable")
	}, func() []string {
		return []string{"default"}
	})

	assert.True(t, outcome.FellBack)
	assert.Equal(t, "service unavailable", outcome.Reason)
	assert.Equal(t, []string{"default"}, outcome.Value)
}
