package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFrontend struct {
	id  string
	ran bool
}

func (s *stubFrontend) ID() string    { return s.id }
func (s *stubFrontend) Title() string { return "Stub " + s.id }

func (s *stubFrontend) Run(ctx context.Context, env Env) error {
	s.ran = true
	return ctx.Err()
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Frontend { return &stubFrontend{id: "stub-b"} })
	Register("stub-a", func() Frontend { return &stubFrontend{id: "stub-a"} })

	assert.True(t, Exists("stub-a"))
	assert.False(t, Exists("nope"))

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	assert.Subset(t, ids, []string{"stub-a", "stub-b"})
	assert.IsIncreasing(t, ids)

	fe, err := Create("stub-a")
	require.NoError(t, err)
	assert.Equal(t, "Stub stub-a", fe.Title())
	require.NoError(t, fe.Run(context.Background(), Env{}))

	_, err = Create("nope")
	assert.ErrorContains(t, err, `unknown frontend "nope"`)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Frontend { return &stubFrontend{id: "stub-dup"} })
	assert.Panics(t, func() {
		Register("stub-dup", func() Frontend { return &stubFrontend{id: "stub-dup"} })
	})
}
