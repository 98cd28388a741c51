package syntax

import (
	"strings"
	"testing"
)

func TestFileTypeFor_KnownExtensions(t *testing.T) {
	cases := []struct {
		name     string
		wantName string
	}{
		{name: "main.go", wantName: "golang"},
		{name: "lib/row.rs", wantName: "rust"},
		{name: "tool.py", wantName: "python3"},
	}

	for _, tc := range cases {
		ft := FileTypeFor(tc.name)
		if ft.Name != tc.wantName {
			t.Fatalf("FileTypeFor(%q).Name=%q, want %q", tc.name, ft.Name, tc.wantName)
		}
		opts := ft.Options
		if !opts.Numbers || !opts.Strings || !opts.Characters || !opts.Comments {
			t.Fatalf("FileTypeFor(%q): all feature flags should be set, got %+v", tc.name, opts)
		}
		if len(opts.Primary) == 0 || len(opts.Secondary) == 0 {
			t.Fatalf("FileTypeFor(%q): keyword tables should be non-empty", tc.name)
		}
	}
}

func TestFileTypeFor_UnknownExtension(t *testing.T) {
	for _, name := range []string{"", "README", "notes.txt", "go"} {
		ft := FileTypeFor(name)
		if ft.Name != "No filetype" {
			t.Fatalf("FileTypeFor(%q).Name=%q, want %q", name, ft.Name, "No filetype")
		}
		opts := ft.Options
		if opts.Numbers || opts.Strings || opts.Characters || opts.Comments {
			t.Fatalf("FileTypeFor(%q): feature flags should be clear, got %+v", name, opts)
		}
		if len(opts.Primary) != 0 || len(opts.Secondary) != 0 {
			t.Fatalf("FileTypeFor(%q): keyword tables should be empty", name)
		}
	}
}

func TestKindSequence(t *testing.T) {
	seen := map[string]Kind{}
	for _, k := range []Kind{None, Number, Match, String, Character, Comment, PrimaryKeyword, SecondaryKeyword} {
		seq := k.Sequence()
		if !strings.HasPrefix(seq, "\x1b[") || !strings.HasSuffix(seq, "m") {
			t.Fatalf("Kind(%v).Sequence()=%q, not an SGR sequence", k, seq)
		}
		if prev, dup := seen[seq]; dup && k != None {
			t.Fatalf("kinds %v and %v share sequence %q", prev, k, seq)
		}
		seen[seq] = k
	}
	if None.Sequence() != Reset {
		t.Fatalf("None.Sequence()=%q, want Reset %q", None.Sequence(), Reset)
	}
}
