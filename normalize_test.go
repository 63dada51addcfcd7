package respond_test

import (
	"testing"

	"github.com/flowkit-dev/respond"
	"github.com/shoenig/test/must"
)

func TestNormalize_CommaSeparated(t *testing.T) {
	tokens := respond.Normalize("file_a , https://example.com/y.pdf ,,")

	must.Eq(t, []string{"file_a", "https://example.com/y.pdf"}, tokens)
}

func TestNormalize_JSONArrayString(t *testing.T) {
	fromJSON := respond.Normalize(`["file-1","file-2"]`)
	fromSlice := respond.Normalize([]string{"file-1", "file-2"})

	must.Eq(t, []string{"file-1", "file-2"}, fromJSON)
	must.Eq(t, fromSlice, fromJSON)
}

func TestNormalize_Idempotent(t *testing.T) {
	once := respond.Normalize("file-abc123, https://example.com/doc.pdf")
	twice := respond.Normalize(any(once))

	must.Eq(t, once, twice)
}

func TestNormalize_EmptyInputs(t *testing.T) {
	must.Len(t, 0, respond.Normalize(nil))
	must.Len(t, 0, respond.Normalize(""))
	must.Len(t, 0, respond.Normalize("   "))
	must.Len(t, 0, respond.Normalize([]any{}))
}

func TestNormalize_SingleToken(t *testing.T) {
	must.Eq(t, []string{"file-abc123"}, respond.Normalize("  file-abc123  "))
}

func TestNormalize_ElementMaps(t *testing.T) {
	tokens := respond.Normalize([]any{
		map[string]any{"url": "https://example.com/a.pdf"},
		map[string]any{"path": "file-xyz"},
		map[string]any{"value": "file-123"},
		map[string]any{"name": "no usable key"},
		nil,
	})

	must.Eq(t, []string{"https://example.com/a.pdf", "file-xyz", "file-123"}, tokens)
}

func TestNormalize_NestedSequence(t *testing.T) {
	tokens := respond.Normalize([]any{
		"file-1",
		[]any{"file-2", "file-3"},
	})

	must.Eq(t, []string{"file-1", "file-2", "file-3"}, tokens)
}

func TestNormalize_MalformedJSONArraySalvage(t *testing.T) {
	tokens := respond.Normalize(`[file-abc, https://example.com/b.pdf`)

	// Not valid JSON array syntax either way, so nothing salvageable here:
	// the leading bracket without trailing bracket falls through to comma
	// splitting.
	must.Eq(t, []string{"[file-abc", "https://example.com/b.pdf"}, tokens)

	salvaged := respond.Normalize(`[file-abc, "https://example.com/b.pdf"]`)
	must.Eq(t, []string{"file-abc", "https://example.com/b.pdf"}, salvaged)
}

func TestNormalize_ObjectWrapper(t *testing.T) {
	tokens := respond.Normalize(map[string]any{
		"data": []any{"file-1", "file-2"},
	})
	must.Eq(t, []string{"file-1", "file-2"}, tokens)

	tokens = respond.Normalize(map[string]any{
		"body": "file-3, file-4",
	})
	must.Eq(t, []string{"file-3", "file-4"}, tokens)

	must.Len(t, 0, respond.Normalize(map[string]any{"other": "file-5"}))
}

func TestClassifyToken(t *testing.T) {
	ref, ok := respond.ClassifyToken("file-abc123")
	must.True(t, ok)
	must.Eq(t, respond.FileRef{ID: "file-abc123"}, ref)

	ref, ok = respond.ClassifyToken("https://example.com/doc.pdf")
	must.True(t, ok)
	must.Eq(t, respond.FileRef{URL: "https://example.com/doc.pdf"}, ref)

	// Trailing prose punctuation is not part of the URL.
	ref, ok = respond.ClassifyToken("see https://example.com/doc.pdf.")
	must.True(t, ok)
	must.Eq(t, "https://example.com/doc.pdf", ref.URL)

	_, ok = respond.ClassifyToken("just some words")
	must.False(t, ok)

	_, ok = respond.ClassifyToken("")
	must.False(t, ok)
}

func TestClassifyTokens_DropsUnrecognized(t *testing.T) {
	refs := respond.ClassifyTokens([]string{
		"file-1",
		"not a reference",
		"https://example.com/a.png",
	})

	must.Len(t, 2, refs)
	must.Eq(t, "file-1", refs[0].ID)
	must.Eq(t, "https://example.com/a.png", refs[1].URL)
}
