package run

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReporter_File(t *testing.T) {
	t.Parallel()
	data := []struct {
		name     string
		findings []*Finding
		exp      string
	}{
		{
			name: "no finding",
			exp:  "",
		},
		{
			name: "findings",
			findings: []*Finding{
				{File: "src/a.ts", Line: 3, Text: "fetch(url)"},
				{File: "src/a.ts", Line: 10, Text: "axios.get(url)"},
			},
			exp: "\n📁 src/a.ts:\n  ⚠️  Line 3: fetch(url)\n  ⚠️  Line 10: axios.get(url)\n",
		},
		{
			name: "error",
			findings: []*Finding{
				{File: "src/a.ts", Err: errors.New("open src/a.ts: permission denied")},
			},
			exp: "\n📁 src/a.ts:\n  ⚠️  Error reading file: open src/a.ts: permission denied\n",
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			buf := &bytes.Buffer{}
			NewReporter(buf, true).File("src/a.ts", d.findings)
			if got := buf.String(); got != d.exp {
				t.Fatalf("wanted %q, got %q", d.exp, got)
			}
		})
	}
}

func TestReporter_banners(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	r := NewReporter(buf, true)
	r.Start()
	r.Complete()
	exp := "🔍 Checking for potential CORS sources...\n\n✅ CORS source check complete\n"
	if got := buf.String(); got != exp {
		t.Fatalf("wanted %q, got %q", exp, got)
	}
}

// Only the text after an icon is colored, so icons are never wrapped in escape sequences.
func TestReporter_colorScope(t *testing.T) {
	t.Parallel()
	tag := func(name string) colorFunc {
		return func(a ...any) string {
			return "<" + name + ">" + fmt.Sprint(a...) + "</" + name + ">"
		}
	}
	buf := &bytes.Buffer{}
	r := &Reporter{
		stdout: buf,
		cyan:   tag("cyan"),
		yellow: tag("yellow"),
		red:    tag("red"),
		green:  tag("green"),
	}
	r.Start()
	r.File("src/a.ts", []*Finding{
		{File: "src/a.ts", Line: 1, Text: "fetch(url)"},
		{File: "src/a.ts", Err: errors.New("broken")},
	})
	r.Complete()
	exp := "🔍 <cyan>Checking for potential CORS sources...</cyan>\n" +
		"\n📁 <cyan>src/a.ts</cyan>:\n" +
		"  <yellow>⚠️</yellow>  Line 1: fetch(url)\n" +
		"  <yellow>⚠️</yellow>  <red>Error reading file: broken</red>\n" +
		"\n✅ <green>CORS source check complete</green>\n"
	if diff := cmp.Diff(exp, buf.String()); diff != "" {
		t.Fatal(diff)
	}
}
