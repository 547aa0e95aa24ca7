package page

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/pagekeeper/internal/models"
)

const testPage = `<!DOCTYPE html>
<html>
<head><title>Retreats</title></head>
<body>
<h1 data-field="hero-title">Welcome</h1>
<p data-field="intro">Find <strong>calm</strong> here.</p>
<footer><span data-field="footer_text">© Retreats</span></footer>
<p data-field="bad key">ignored</p>
<div data-field="hero-title">Welcome</div>
</body>
</html>`

func parseTestPage(t *testing.T) *Document {
	t.Helper()
	doc, err := Parse([]byte(testPage))
	require.NoError(t, err)
	return doc
}

func TestParse_Keys(t *testing.T) {
	doc := parseTestPage(t)

	// ключи в порядке документа, невалидный ключ не является слотом
	assert.Equal(t, []string{"hero-title", "intro", "footer_text"}, doc.Keys())
}

func TestDocument_Get(t *testing.T) {
	doc := parseTestPage(t)

	value, ok := doc.Get("intro")
	require.True(t, ok)
	assert.Equal(t, "Find <strong>calm</strong> here.", value)

	_, ok = doc.Get("missing")
	assert.False(t, ok)
}

func TestDocument_Set(t *testing.T) {
	doc := parseTestPage(t)

	require.NoError(t, doc.Set("hero-title", "New <em>Title</em>"))

	value, ok := doc.Get("hero-title")
	require.True(t, ok)
	assert.Equal(t, "New <em>Title</em>", value)

	// все слоты с одним ключом обновляются вместе
	rendered, err := doc.HTML()
	require.NoError(t, err)
	assert.Contains(t, rendered, `<h1 data-field="hero-title">New <em>Title</em></h1>`)
	assert.Contains(t, rendered, `<div data-field="hero-title">New <em>Title</em></div>`)

	err = doc.Set("missing", "x")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestDocument_SnapshotAndApply(t *testing.T) {
	doc := parseTestPage(t)

	snapshot := doc.Snapshot()
	assert.Equal(t, models.Snapshot{
		"hero-title":  "Welcome",
		"intro":       "Find <strong>calm</strong> here.",
		"footer_text": "© Retreats",
	}, snapshot)

	applied := doc.Apply(models.Snapshot{
		"hero-title":    "Hello",
		"unknown-field": "from a newer page version",
	})
	assert.Equal(t, []string{"hero-title"}, applied)

	value, _ := doc.Get("hero-title")
	assert.Equal(t, "Hello", value)
	value, _ = doc.Get("intro")
	assert.Equal(t, "Find <strong>calm</strong> here.", value, "absent keys are unchanged")
}

func TestDocument_SetEditable(t *testing.T) {
	doc := parseTestPage(t)

	assert.False(t, doc.Editable("intro"))

	doc.SetEditable(true)
	for _, key := range doc.Keys() {
		assert.True(t, doc.Editable(key), key)
	}

	// повторная пометка не дублирует атрибут
	doc.SetEditable(true)
	count := 0
	for _, a := range doc.slots["intro"][0].Attr {
		if a.Key == EditableAttr {
			count++
		}
	}
	assert.Equal(t, 1, count)

	// маркер правки не попадает в разметку страницы и в значения полей
	rendered, err := doc.HTML()
	require.NoError(t, err)
	assert.NotContains(t, rendered, EditableAttr)
	assert.Contains(t, rendered, `<p data-field="intro">`)
	assert.True(t, doc.Editable("intro"))

	doc.SetEditable(false)
	for _, key := range doc.Keys() {
		assert.False(t, doc.Editable(key), key)
	}
	assert.False(t, doc.Editable("missing"))
}

func TestDocument_Reload(t *testing.T) {
	doc := parseTestPage(t)

	require.NoError(t, doc.Set("hero-title", "Changed"))
	require.NoError(t, doc.Reload(context.Background()))

	value, _ := doc.Get("hero-title")
	assert.Equal(t, "Welcome", value)
}

func TestDocument_NestedSlotInValue(t *testing.T) {
	doc := parseTestPage(t)

	require.NoError(t, doc.Set("intro", `<span data-field="intro-note">note</span>`))
	assert.Contains(t, doc.Keys(), "intro-note")

	value, ok := doc.Get("intro-note")
	require.True(t, ok)
	assert.Equal(t, "note", value)
}

func TestOpenAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte(testPage), 0o644))

	doc, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Path())

	require.NoError(t, doc.Set("footer_text", "© 2026 Retreats"))
	require.NoError(t, doc.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<span data-field="footer_text">© 2026 Retreats</span>`)

	// Reload возвращает исходник, прочитанный при Open, а не записанный файл
	require.NoError(t, doc.Reload(context.Background()))
	value, _ := doc.Get("footer_text")
	assert.Equal(t, "© Retreats", value)
	assert.Equal(t, []string{"hero-title", "intro", "footer_text"}, doc.Keys())
}

func TestSave_WithoutEditableMarker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte(testPage), 0o644))

	doc, err := Open(path)
	require.NoError(t, err)

	doc.SetEditable(true)
	require.NoError(t, doc.Set("hero-title", "X"))
	require.NoError(t, doc.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), EditableAttr)
	assert.Contains(t, string(data), `<h1 data-field="hero-title">X</h1>`)
	assert.True(t, doc.Editable("hero-title"))
}

func TestSave_KeepsFileMode(t *testing.T) {
	tests := []struct {
		name string
		mode os.FileMode
	}{
		{"world readable", 0o644},
		{"group writable", 0o664},
		{"owner only", 0o600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "index.html")
			require.NoError(t, os.WriteFile(path, []byte(testPage), tt.mode))
			// umask не должен влиять на исходные права
			require.NoError(t, os.Chmod(path, tt.mode))

			doc, err := Open(path)
			require.NoError(t, err)
			require.NoError(t, doc.Save())

			fi, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, tt.mode, fi.Mode().Perm())
		})
	}
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.html"))
	require.Error(t, err)
}

func TestSave_InMemory(t *testing.T) {
	doc := parseTestPage(t)
	assert.Error(t, doc.Save())
}
