package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalSaveAndLoad(t *testing.T) {
	repo, err := NewLocal(&LocalConfig{Dir: t.TempDir()})
	require.NoError(t, err)

	ctx := context.Background()

	output, err := repo.Load(ctx, &LoadInput{Key: "guilds.dev.json"})
	require.NoError(t, err)
	require.False(t, output.Found)

	err = repo.Save(ctx, &SaveInput{Key: "guilds.dev.json", Blob: []byte(`{"guilds":{}}`)})
	require.NoError(t, err)

	output, err = repo.Load(ctx, &LoadInput{Key: "guilds.dev.json"})
	require.NoError(t, err)
	require.True(t, output.Found)
	require.Equal(t, []byte(`{"guilds":{}}`), output.Blob)
}

func TestLocalNilConfig(t *testing.T) {
	_, err := NewLocal(nil)
	require.Error(t, err)
}
