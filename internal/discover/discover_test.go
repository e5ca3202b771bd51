package discover_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"uploader/internal/discover"
	"uploader/pkg/logger"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

func writeFile(t *testing.T, root string, rel string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
}

func TestPNGs_selectsCaseInsensitive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.png")
	writeFile(t, root, "B.PNG")
	writeFile(t, root, "c.Png")
	writeFile(t, root, "d.jpg")
	writeFile(t, root, "notes.txt")
	writeFile(t, root, "png") // no extension, name happens to be "png"
	writeFile(t, root, filepath.Join("nested", "deep", "e.png"))

	targets, err := discover.PNGs(context.Background(), root)
	require.NoError(t, err)

	var rels []string
	for _, tgt := range targets {
		rels = append(rels, filepath.ToSlash(tgt.RelPath))
		require.Equal(t, filepath.Join(root, tgt.RelPath), tgt.Path)
	}
	require.ElementsMatch(t, []string{"a.png", "B.PNG", "c.Png", "nested/deep/e.png"}, rels)
}

func TestPNGs_emptyDirectory(t *testing.T) {
	targets, err := discover.PNGs(context.Background(), t.TempDir())
	require.NoError(t, err)
	require.Empty(t, targets)
}

func TestPNGs_noMatches(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.jpg")
	writeFile(t, root, "b.txt")

	targets, err := discover.PNGs(context.Background(), root)
	require.NoError(t, err)
	require.Empty(t, targets)
}

func TestPNGs_missingRoot(t *testing.T) {
	_, err := discover.PNGs(context.Background(), filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
}

func TestPNGs_skipsUnreadableSubdirectory(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}

	root := t.TempDir()
	writeFile(t, root, "a.png")
	writeFile(t, root, filepath.Join("locked", "hidden.png"))
	writeFile(t, root, filepath.Join("open", "b.png"))

	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() {
		_ = os.Chmod(locked, 0o750)
	})

	targets, err := discover.PNGs(context.Background(), root)
	require.NoError(t, err)

	var rels []string
	for _, tgt := range targets {
		rels = append(rels, filepath.ToSlash(tgt.RelPath))
	}
	require.ElementsMatch(t, []string{"a.png", "open/b.png"}, rels)
}
