package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davidMuir/clean-deps/internal/scan"
)

func TestTruncatePathShortPathsUnchanged(t *testing.T) {
	assert.Equal(t, "/home/dev/app", TruncatePath("/home/dev/app", 40))
}

func TestTruncatePathLongPathsGetEllipsis(t *testing.T) {
	long := "/home/dev/projects/very/deeply/nested/workspace/app/node_modules"
	got := TruncatePath(long, 40)

	assert.Len(t, got, 40)
	assert.Contains(t, got, "[...]")
	assert.True(t, strings.HasPrefix(got, long[:15]))
	assert.True(t, strings.HasSuffix(got, long[len(long)-20:]))
}

func TestTruncatePathTinyBudgetLeftAlone(t *testing.T) {
	// Budgets too small for head+ellipsis+tail are not worth truncating.
	assert.Equal(t, "/some/longish/path", TruncatePath("/some/longish/path", 8))
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "0 B", FormatSize(0))
	assert.Equal(t, "0 B", FormatSize(-5))
	assert.Equal(t, "1.5 kB", FormatSize(1500))
}

func TestLanguageTag(t *testing.T) {
	cases := map[scan.Language]string{
		scan.Dotnet:     "dotnet",
		scan.JavaScript: "js",
		scan.Rust:       "rust",
	}
	for lang, label := range cases {
		tag := LanguageTag(lang)
		assert.True(t, strings.HasPrefix(tag, "["), "tag %q", tag)
		assert.True(t, strings.HasSuffix(tag, "]"), "tag %q", tag)
		assert.Contains(t, tag, label)
	}
}
