package scan

import (
	"fmt"
	"strings"
)

// Language identifies an ecosystem whose dependency directories can be cleaned.
type Language int

const (
	Dotnet Language = iota
	JavaScript
	Rust
)

// Languages lists every supported language, in display order.
var Languages = []Language{Dotnet, JavaScript, Rust}

// ParseLanguage converts a CLI argument into a Language.
// "js" is accepted as a shorthand for "javascript".
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dotnet":
		return Dotnet, nil
	case "javascript", "js":
		return JavaScript, nil
	case "rust":
		return Rust, nil
	}
	return 0, fmt.Errorf("unknown language %q (expected dotnet, javascript or rust)", s)
}

func (l Language) String() string {
	switch l {
	case Dotnet:
		return "dotnet"
	case JavaScript:
		return "javascript"
	case Rust:
		return "rust"
	}
	return fmt.Sprintf("Language(%d)", int(l))
}

// Targets returns the directory names considered disposable dependency
// artifacts for the language. The set is fixed and non-empty; adding a new
// ecosystem means adding a case here and nothing else.
func (l Language) Targets() []string {
	switch l {
	case Dotnet:
		return []string{"bin", "obj"}
	case JavaScript:
		return []string{"node_modules"}
	case Rust:
		return []string{"target"}
	}
	return nil
}
