package syserr

import (
	"fmt"
	"strings"
)

var nameIndex map[string]Kind

func init() {
	if err := validateCatalog(kindSpecs[:], codeEntries[:]); err != nil {
		panic(err)
	}
	nameIndex = make(map[string]Kind, kindCount)
	for kind := KindUnknown; kind < kindCount; kind++ {
		nameIndex[kind.Name()] = kind
	}
	codeIndex = buildCodeIndex(codeEntries[:])
}

// Kinds returns every kind of the catalog in declaration order,
// starting with KindUnknown.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for kind := KindUnknown; kind < kindCount; kind++ {
		kinds = append(kinds, kind)
	}
	return kinds
}

// KindByName resolves a kind identifier such as "ERROR_NO_ACCESS".
func KindByName(name string) (Kind, bool) {
	kind, ok := nameIndex[name]
	return kind, ok
}

// Namespace returns identifier to kind for the whole catalog.
// The map is a copy; changing it has no effect on the package.
func Namespace() map[string]Kind {
	ns := make(map[string]Kind, len(nameIndex))
	for name, kind := range nameIndex {
		ns[name] = kind
	}
	return ns
}

// validateCatalog checks the invariants the lookups rely on: unique
// identifiers, non-empty messages, and well-formed, unique, sorted codes
// that target a real kind.
func validateCatalog(specs []kindSpec, entries []CodeEntry) error {
	names := make(map[string]int, len(specs))
	for i, spec := range specs {
		if !strings.HasPrefix(spec.name, "ERROR_") {
			return fmt.Errorf("syserr: kind %d has malformed identifier %q", i, spec.name)
		}
		if spec.message == "" {
			return fmt.Errorf("syserr: kind %s has an empty message", spec.name)
		}
		if prev, dup := names[spec.name]; dup {
			return fmt.Errorf("syserr: identifier %s is used by kinds %d and %d", spec.name, prev, i)
		}
		names[spec.name] = i
	}

	for i, entry := range entries {
		if !isCodeToken(entry.Code) {
			return fmt.Errorf("syserr: malformed code %q", entry.Code)
		}
		if i > 0 && entries[i-1].Code >= entry.Code {
			return fmt.Errorf("syserr: code %s is duplicated or out of order", entry.Code)
		}
		if int(entry.Kind) >= len(specs) {
			return fmt.Errorf("syserr: code %s maps to undefined kind %d", entry.Code, entry.Kind)
		}
		if entry.Kind == KindUnknown {
			return fmt.Errorf("syserr: code %s maps to the unknown kind", entry.Code)
		}
	}
	return nil
}

// isCodeToken reports whether s looks like an errno name: "E" followed by
// upper-case letters and digits.
func isCodeToken(s string) bool {
	if len(s) < 2 || s[0] != 'E' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
