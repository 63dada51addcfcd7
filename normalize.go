package respond

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// FileRef is a normalized file reference attached to a request: either an
// opaque provider-assigned file identifier or a fetchable URL. Exactly one
// of ID and URL is set.
//
// MIME is an optional content-type hint carried alongside uploaded files so
// the request builder can pick an image segment over a file segment; it is
// never part of the reference itself.
type FileRef struct {
	ID   string
	URL  string
	MIME string
}

// fileIDPrefix is the reserved prefix of provider-assigned file handles.
const fileIDPrefix = "file-"

var (
	// urlPattern matches the longest contiguous URL-safe substring of a
	// token, leaving surrounding prose, quotes, and brackets behind.
	urlPattern = regexp.MustCompile(`https?://[^\s"'<>\[\]{}]+`)

	// refPattern additionally matches file-identifier-looking substrings,
	// used to salvage references out of malformed JSON array syntax.
	refPattern = regexp.MustCompile(`https?://[^\s"'<>\[\]{}]+|file-[A-Za-z0-9_-]+`)
)

// Normalize parses a heterogeneous user-supplied value (single string,
// comma-separated list, JSON array string, already-parsed array, or object
// wrapper) into an ordered list of canonical file-reference tokens.
//
// It is total: any input shape yields a (possibly empty) token list, never
// an error. Tagging tokens into identifiers vs URLs happens separately in
// [ClassifyToken].
func Normalize(raw any) []string {
	switch v := raw.(type) {
	case nil:
		return nil

	case string:
		return normalizeString(v)

	case []string:
		items := make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
		return normalizeSequence(items)

	case []any:
		return normalizeSequence(v)

	case map[string]any:
		// Object wrappers from upstream nodes often nest the actual list
		// under a data or body field.
		for _, key := range []string{"data", "body"} {
			if nested, ok := v[key]; ok {
				if tokens := Normalize(nested); len(tokens) > 0 {
					return tokens
				}
			}
		}
		return nil

	default:
		return normalizeString(fmt.Sprint(v))
	}
}

// normalizeString applies the string-shaped rules in order: JSON array
// syntax first, then comma splitting, then the trimmed string itself.
func normalizeString(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		var items []any
		if err := json.Unmarshal([]byte(s), &items); err == nil {
			return normalizeSequence(items)
		}
		// Looks like an array but does not parse: salvage anything
		// reference-looking rather than failing the whole value.
		return refPattern.FindAllString(s, -1)
	}

	if strings.Contains(s, ",") {
		var tokens []string
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				tokens = append(tokens, part)
			}
		}
		return tokens
	}

	return []string{s}
}

// normalizeSequence flattens one level and maps each element to a string,
// dropping empty and placeholder results.
func normalizeSequence(items []any) []string {
	var tokens []string
	for _, item := range items {
		if inner, ok := item.([]any); ok {
			for _, e := range inner {
				if tok := elementString(e); tok != "" {
					tokens = append(tokens, tok)
				}
			}
			continue
		}
		if tok := elementString(item); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// elementString renders a single sequence element as a token. Keyed
// structures prefer their url, path, or value property; structures without
// one serialize to a placeholder and are dropped.
func elementString(item any) string {
	switch v := item.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case map[string]any:
		for _, key := range []string{"url", "path", "value"} {
			if s, ok := v[key].(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					return s
				}
			}
		}
		return ""
	default:
		s := strings.TrimSpace(fmt.Sprint(v))
		if s == "<nil>" || strings.HasPrefix(s, "map[") || strings.HasPrefix(s, "[") {
			return ""
		}
		return s
	}
}

// ClassifyToken tags a normalized token as a file identifier or a URL.
// Tokens that are neither are dropped (ok is false): a malformed reference
// must never abort the whole batch.
func ClassifyToken(token string) (ref FileRef, ok bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return FileRef{}, false
	}

	if strings.HasPrefix(token, fileIDPrefix) {
		return FileRef{ID: token}, true
	}

	if url := urlPattern.FindString(token); url != "" {
		url = strings.TrimRight(url, `.,;:!?)'"`)
		return FileRef{URL: url}, true
	}

	return FileRef{}, false
}

// ClassifyTokens maps tokens through [ClassifyToken], silently dropping
// whatever does not classify.
func ClassifyTokens(tokens []string) []FileRef {
	var refs []FileRef
	for _, tok := range tokens {
		if ref, ok := ClassifyToken(tok); ok {
			refs = append(refs, ref)
		}
	}
	return refs
}
