package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/shopsim/internal/model"
)

func executeRoot(t *testing.T, stdin string, args ...string) error {
	t.Helper()

	for _, key := range []string{"SHOPSIM_STORAGE", "SHOPSIM_REDIS_URL", "SHOPSIM_HASH", "SHOPSIM_CATALOG_SIZE", "SHOPSIM_OUTPUT", "SHOPSIM_LOG_FORMAT"} {
		t.Setenv(key, "")
	}

	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "missing.env")}, args...))
	return cmd.Execute()
}

func TestRoot_ClosesStorageWhenCommandFails(t *testing.T) {
	mr := miniredis.RunT(t)

	err := executeRoot(t, "", "--storage", "redis", "--redis-url", "redis://"+mr.Addr(),
		"demo", "--user", "alice", "--pass", "short1")
	require.ErrorIs(t, err, model.ErrPolicyViolation)

	require.NotNil(t, app)
	_, err = app.Storage.ListProducts(context.Background())
	assert.ErrorIs(t, err, redis.ErrClosed)
}

func TestRoot_ClosesStorageAfterSuccess(t *testing.T) {
	mr := miniredis.RunT(t)

	err := executeRoot(t, "", "--storage", "redis", "--redis-url", "redis://"+mr.Addr(),
		"--catalog-size", "2", "catalog", "list")
	require.NoError(t, err)

	require.NotNil(t, app)
	_, err = app.Storage.ListProducts(context.Background())
	assert.ErrorIs(t, err, redis.ErrClosed)
}
