package deploy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStageRejectsUnknownFunction(t *testing.T) {
	s := &Stager{RootDir: t.TempDir()}
	_, err := s.Stage(context.Background(), "no-such-fn")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no-such-fn")
}
