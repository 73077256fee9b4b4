package memory

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/phrazzld/tasklist-api/internal/domain"
	"github.com/phrazzld/tasklist-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSeed(t *testing.T) {
	seed, err := DefaultSeed()
	require.NoError(t, err)
	require.Len(t, seed.Users, 1)

	u := seed.Users[0]
	assert.Equal(t, "user1", u.ID)
	assert.Equal(t, []SeedTask{
		{ID: 1, Description: "Read the data from database", Completed: false},
		{ID: 2, Description: "Check user access", Completed: true},
		{ID: 3, Description: "Return only this user's tasks", Completed: false},
	}, u.Tasks)
}

func TestParseSeed_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		invalid bool
	}{
		{
			name: "malformed toml",
			doc:  "[[users]\nid = ",
		},
		{
			name:    "missing user id",
			doc:     "[[users]]\n[[users.tasks]]\nid = 1\n",
			invalid: true,
		},
		{
			name:    "duplicate user",
			doc:     "[[users]]\nid = \"a\"\n[[users]]\nid = \"a\"\n",
			invalid: true,
		},
		{
			name:    "non-positive task id",
			doc:     "[[users]]\nid = \"a\"\n[[users.tasks]]\nid = 0\n",
			invalid: true,
		},
		{
			name:    "task id without headroom",
			doc:     fmt.Sprintf("[[users]]\nid = \"a\"\n[[users.tasks]]\nid = %d\n", math.MaxInt),
			invalid: true,
		},
		{
			name:    "duplicate task id",
			doc:     "[[users]]\nid = \"a\"\n[[users.tasks]]\nid = 1\n[[users.tasks]]\nid = 1\n",
			invalid: true,
		},
		{
			name:    "unknown key",
			doc:     "[[users]]\nid = \"a\"\nowner = \"b\"\n",
			invalid: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seed, err := ParseSeed([]byte(tc.doc))
			require.Error(t, err)
			assert.Nil(t, seed)
			assert.Equal(t, tc.invalid, errors.Is(err, store.ErrInvalidEntity))
		})
	}
}

func TestParseSeed_EmptyUserList(t *testing.T) {
	seed, err := ParseSeed([]byte("[[users]]\nid = \"empty\"\n"))
	require.NoError(t, err)

	s := NewTaskStore(nil)
	Seed(s, seed)

	tasks, err := s.ListTasks(context.Background(), "empty")
	require.NoError(t, err, "a seeded user with no tasks still exists")
	assert.Empty(t, tasks)
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.toml")
	doc := "[[users]]\nid = \"carol\"\n[[users.tasks]]\nid = 5\ndescription = \"Water plants\"\ncompleted = true\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	seed, err := LoadSeedFile(path)
	require.NoError(t, err)

	s := NewTaskStore(nil)
	Seed(s, seed)

	ctx := context.Background()
	tasks, err := s.ListTasks(ctx, "carol")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, 5, tasks[0].ID)
	assert.True(t, tasks[0].Completed)

	created, err := s.CreateTask(ctx, "carol", "next")
	require.NoError(t, err)
	assert.Equal(t, 6, created.ID)
}

func TestLoadSeedFile_Missing(t *testing.T) {
	seed, err := LoadSeedFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
	assert.Nil(t, seed)
}

func TestSeed_Nil(t *testing.T) {
	s := NewTaskStore(nil)
	Seed(s, nil)

	_, err := s.ListTasks(context.Background(), "user1")
	assert.True(t, errors.Is(err, store.ErrUserNotFound))
}

func TestSeed_HighestAllowedIDStillCreates(t *testing.T) {
	doc := fmt.Sprintf("[[users]]\nid = \"a\"\n[[users.tasks]]\nid = %d\n", domain.MaxSeedTaskID)
	seed, err := ParseSeed([]byte(doc))
	require.NoError(t, err)

	s := NewTaskStore(nil)
	Seed(s, seed)

	ctx := context.Background()
	for i := 1; i <= 3; i++ {
		task, err := s.CreateTask(ctx, "a", "next")
		require.NoError(t, err)
		assert.Equal(t, domain.MaxSeedTaskID+i, task.ID)
	}
}
