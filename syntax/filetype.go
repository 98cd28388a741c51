// Package syntax maps file names to immutable highlight rule sets and
// defines the per-cluster classification kinds the document model produces.
package syntax

import "strings"

// Options are the feature flags and keyword tables one file type enables.
// Values are immutable once built; FileTypeFor returns a fresh copy per
// lookup, so there is no shared table state to guard.
type Options struct {
	Numbers    bool
	Strings    bool
	Characters bool
	Comments   bool
	Primary    []string
	Secondary  []string
}

// FileType pairs a display name with the highlight options it enables.
type FileType struct {
	Name    string
	Options Options
}

// DefaultFileType is the rule set for unrecognized extensions: no features,
// no keywords.
func DefaultFileType() FileType {
	return FileType{Name: "No filetype"}
}

// FileTypeFor infers the highlight rule set from a file name. Unrecognized
// names (including the empty name) get DefaultFileType.
func FileTypeFor(name string) FileType {
	switch {
	case strings.HasSuffix(name, ".go"):
		return FileType{
			Name: "golang",
			Options: Options{
				Numbers:    true,
				Strings:    true,
				Characters: true,
				Comments:   true,
				Primary:    goPrimary,
				Secondary:  goSecondary,
			},
		}
	case strings.HasSuffix(name, ".rs"):
		return FileType{
			Name: "rust",
			Options: Options{
				Numbers:    true,
				Strings:    true,
				Characters: true,
				Comments:   true,
				Primary:    rustPrimary,
				Secondary:  rustSecondary,
			},
		}
	case strings.HasSuffix(name, ".py"):
		return FileType{
			Name: "python3",
			Options: Options{
				Numbers:    true,
				Strings:    true,
				Characters: true,
				Comments:   true,
				Primary:    pythonPrimary,
				Secondary:  pythonSecondary,
			},
		}
	}
	return DefaultFileType()
}

var goPrimary = []string{
	"break", "default", "func", "interface", "select",
	"case", "defer", "go", "map", "struct",
	"chan", "else", "goto", "package", "switch",
	"const", "fallthrough", "if", "range", "type",
	"continue", "for", "import", "return", "var",
}

var goSecondary = []string{
	"bool", "string", "int", "int8", "int16", "int32", "int64",
	"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
	"byte", "rune", "float32", "float64", "complex64", "complex128",
}

var rustPrimary = []string{
	"as", "break", "const", "continue", "crate", "else", "enum",
	"extern", "false", "fn", "for", "if", "impl", "in", "let",
	"loop", "match", "mod", "move", "mut", "pub", "ref", "return",
	"self", "Self", "static", "struct", "super", "trait", "true",
	"type", "unsafe", "use", "where", "while", "dyn", "abstract",
	"become", "box", "do", "final", "macro", "override", "priv",
	"typeof", "unsized", "virtual", "yield", "async", "await", "try",
}

var rustSecondary = []string{
	"bool", "char", "i8", "i16", "i32", "i64", "isize",
	"u8", "u16", "u32", "u64", "usize", "f32", "f64",
}

var pythonPrimary = []string{
	"class", "def", "else", "for", "if", "global", "while",
	"return", "pass", "import", "try", "except", "finally",
	"async", "await", "elif", "raise", "with",
}

var pythonSecondary = []string{
	"True", "False", "None", "and", "as", "assert", "break",
	"continue", "del", "from", "in", "is", "lambda", "nonlocal",
	"not", "or", "yield",
}
