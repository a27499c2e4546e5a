package bankdemo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexqa/bankwright/bankdemo"
)

func TestStore_CreateGetDelete(t *testing.T) {
	s := bankdemo.NewStore()

	require.NoError(t, s.Create(bankdemo.Customer{Username: "alice"}))
	require.ErrorIs(t, s.Create(bankdemo.Customer{Username: "alice"}), bankdemo.ErrUsernameTaken)

	got, ok := s.Get("alice")
	require.True(t, ok)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, 1, s.Count())

	assert.True(t, s.Delete("alice"))
	assert.False(t, s.Delete("alice"))
	assert.Equal(t, 0, s.Count())
}
