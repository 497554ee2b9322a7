package filestore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Local {
	store, err := NewLocal(filepath.Join(t.TempDir(), "files"), "http://localhost:8080/files/")
	require.NoError(t, err)
	return store
}

func TestLocal_UploadAndList(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upload(ctx, "7/plan.pdf", strings.NewReader("v1")))
	require.NoError(t, store.Upload(ctx, "7/kitchen.png", strings.NewReader("png")))
	require.NoError(t, store.Upload(ctx, "7/plan.pdf", strings.NewReader("version two")))

	objects, err := store.List(ctx, "7")
	require.NoError(t, err)
	require.Len(t, objects, 2)
	assert.Equal(t, "kitchen.png", objects[0].Name)
	assert.Equal(t, "7/plan.pdf", objects[1].Path)
	assert.Equal(t, int64(len("version two")), objects[1].Size)

	data, err := os.ReadFile(filepath.Join(store.Root(), "7", "plan.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "version two", string(data))
}

func TestLocal_ListMissingFolder(t *testing.T) {
	store := newStore(t)

	_, err := store.List(context.Background(), "42")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocal_RejectsEscapingPaths(t *testing.T) {
	store := newStore(t)

	for _, p := range []string{"../secret.pdf", "7/../../x.png", ""} {
		err := store.Upload(context.Background(), p, strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrInvalidPath, p)
	}
}

func TestLocal_PublicURL(t *testing.T) {
	store := newStore(t)

	assert.Equal(t, "http://localhost:8080/files/7/plan%20v2.pdf", store.PublicURL("7/plan v2.pdf"))
}
