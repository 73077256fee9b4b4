package memory

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/phrazzld/tasklist-api/internal/domain"
	"github.com/phrazzld/tasklist-api/internal/store"
)

//go:embed seed.toml
var defaultSeed []byte

// SeedData is the decoded form of a seed document.
type SeedData struct {
	Users []SeedUser `toml:"users"`
}

// SeedUser is one user's starting task list.
type SeedUser struct {
	ID    string     `toml:"id"`
	Tasks []SeedTask `toml:"tasks"`
}

// SeedTask mirrors domain.Task with TOML field names.
type SeedTask struct {
	ID          int    `toml:"id"`
	Description string `toml:"description"`
	Completed   bool   `toml:"completed"`
}

// DefaultSeed decodes the embedded sample dataset.
func DefaultSeed() (*SeedData, error) {
	return ParseSeed(defaultSeed)
}

// LoadSeedFile reads and decodes a seed document from disk.
func LoadSeedFile(path string) (*SeedData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes a TOML seed document and checks it: user ids must be
// present and unique, task ids positive, at most domain.MaxSeedTaskID and
// unique within their user.
func ParseSeed(data []byte) (*SeedData, error) {
	var seed SeedData
	md, err := toml.Decode(string(data), &seed)
	if err != nil {
		return nil, fmt.Errorf("failed to decode seed: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown seed key %q", store.ErrInvalidEntity, undecoded[0].String())
	}

	users := make(map[string]bool, len(seed.Users))
	for _, u := range seed.Users {
		if u.ID == "" {
			return nil, fmt.Errorf("%w: seed user without id", store.ErrInvalidEntity)
		}
		if users[u.ID] {
			return nil, fmt.Errorf("%w: duplicate seed user %q", store.ErrInvalidEntity, u.ID)
		}
		users[u.ID] = true

		ids := make(map[int]bool, len(u.Tasks))
		for _, t := range u.Tasks {
			task := domain.Task{ID: t.ID, Description: t.Description, Completed: t.Completed}
			if err := task.Validate(); err != nil {
				return nil, fmt.Errorf("%w: user %q: %w", store.ErrInvalidEntity, u.ID, err)
			}
			if t.ID > domain.MaxSeedTaskID {
				return nil, fmt.Errorf("%w: user %q task id %d exceeds %d",
					store.ErrInvalidEntity, u.ID, t.ID, domain.MaxSeedTaskID)
			}
			if ids[t.ID] {
				return nil, fmt.Errorf("%w: user %q has duplicate task id %d", store.ErrInvalidEntity, u.ID, t.ID)
			}
			ids[t.ID] = true
		}
	}

	return &seed, nil
}

// Seed installs every user in seed into s, replacing lists that already exist.
func Seed(s *TaskStore, seed *SeedData) {
	if seed == nil {
		return
	}
	for _, u := range seed.Users {
		tasks := make([]domain.Task, 0, len(u.Tasks))
		for _, t := range u.Tasks {
			tasks = append(tasks, domain.Task{
				ID:          t.ID,
				Description: t.Description,
				Completed:   t.Completed,
			})
		}
		s.replaceUser(u.ID, tasks)
	}
}
