package resolve

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestRoot(t *testing.T, files map[string]string) string {
	dir := t.TempDir()

	for name, content := range files {
		full := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}

	return dir
}

func newTestResolver(t *testing.T, files map[string]string) *Resolver {
	r, err := New(newTestRoot(t, files), "index.html", "404.html")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = r.Close()
	})

	return r
}

var site = map[string]string{
	"index.html":           "<h1>index</h1>",
	"404.html":             "<h1>not found</h1>",
	"css/style.css":        "body{}",
	"docs/index.html":      "<h1>docs</h1>",
	"docs/guide/intro.txt": "hello",
	"empty":                "",
}

func TestResolve(t *testing.T) {
	r := newTestResolver(t, site)

	t.Run("root is index", func(t *testing.T) {
		target, err := r.Resolve("")
		require.NoError(t, err)
		require.True(t, target.Found())
		require.False(t, target.Fallback)
		require.Equal(t, "index.html", target.Name)
	})

	t.Run("existing files", func(t *testing.T) {
		for name, content := range site {
			target, err := r.Resolve(name)
			require.NoError(t, err)
			require.True(t, target.Found(), name)
			require.Equal(t, name, target.Name)
			require.Equal(t, int64(len(content)), target.Info.Size())
		}
	})

	t.Run("directory index", func(t *testing.T) {
		target, err := r.Resolve("docs/")
		require.NoError(t, err)
		require.True(t, target.Found())
		require.Equal(t, "docs/index.html", target.Name)
	})

	t.Run("directory without index", func(t *testing.T) {
		target, err := r.Resolve("css")
		require.NoError(t, err)
		require.False(t, target.Found())
	})

	t.Run("missing html falls back to not found page", func(t *testing.T) {
		for _, name := range []string{"nope.html", "deep/nope.HTM"} {
			target, err := r.Resolve(name)
			require.NoError(t, err)
			require.True(t, target.Found())
			require.True(t, target.Fallback)
			require.Equal(t, "404.html", target.Name)
		}
	})

	t.Run("missing non-html is not substituted", func(t *testing.T) {
		for _, name := range []string{"nope.css", "nope", "css/nope.png"} {
			target, err := r.Resolve(name)
			require.NoError(t, err)
			require.False(t, target.Found(), name)
			require.False(t, target.Fallback)
		}
	})

	t.Run("normalization", func(t *testing.T) {
		target, err := r.Resolve("css/../css/./style.css")
		require.NoError(t, err)
		require.True(t, target.Found())
		require.Equal(t, "css/style.css", target.Name)
	})
}

func TestTraversal(t *testing.T) {
	outside := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outside, "secret.html"), []byte("secret"), 0o644))
	r := newTestResolver(t, site)

	t.Run("lexical", func(t *testing.T) {
		for _, name := range []string{
			"../secret.html", "css/../../secret.html", "..", "/etc/passwd", "\\windows",
		} {
			target, err := r.Resolve(name)
			require.ErrorIs(t, err, ErrEscapesRoot, name)

			if target.Found() {
				require.True(t, target.Fallback, name)
				require.Equal(t, "404.html", target.Name)
			}
		}
	})

	t.Run("symlink", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("symlinks require privileges on windows")
		}

		dir := newTestRoot(t, site)
		require.NoError(t, os.Symlink(filepath.Join(outside, "secret.html"), filepath.Join(dir, "link.html")))
		r, err := New(dir, "index.html", "404.html")
		require.NoError(t, err)
		defer r.Close()

		target, err := r.Resolve("link.html")
		require.NoError(t, err)
		require.True(t, target.Fallback)

		body, err := r.Read(target)
		require.NoError(t, err)
		require.Equal(t, site["404.html"], string(body))
	})
}

func TestMissingNotFoundPage(t *testing.T) {
	r := newTestResolver(t, map[string]string{"index.html": "hi"})
	target, err := r.Resolve("nope.html")
	require.NoError(t, err)
	require.False(t, target.Found())
}

func TestRead(t *testing.T) {
	r := newTestResolver(t, site)

	for name, content := range site {
		target, err := r.Resolve(name)
		require.NoError(t, err)
		body, err := r.Read(target)
		require.NoError(t, err)
		require.Equal(t, content, string(body))
	}

	_, err := r.Read(Target{Name: "nope.css"})
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestClean(t *testing.T) {
	for _, tc := range []struct {
		In, Want string
	}{
		{"", ""},
		{".", ""},
		{"./", ""},
		{"a/b/../c.txt", "a/c.txt"},
		{"a//b", "a/b"},
		{"docs/", "docs"},
	} {
		got, err := Clean(tc.In)
		require.NoError(t, err, tc.In)
		require.Equal(t, tc.Want, got, tc.In)
	}

	for _, in := range []string{"..", "../a", "a/../../b", "/abs", "\\abs"} {
		_, err := Clean(in)
		require.ErrorIs(t, err, ErrEscapesRoot, in)
	}
}

func TestNew(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "does-not-exist"), "index.html", "404.html")
	require.Error(t, err)
}
