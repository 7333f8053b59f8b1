package main

import (
	"fmt"
	"io"
	"strings"

	"grailquery/params"
)

// markdownOptions configures renderMarkdown, mirroring the teacher pack's
// docgen MarkdownOptions: a title, and IncludeTableOfContents, which only
// controls whether a "## Parameters" heading precedes the parameter table
// (no table of contents is generated).
type markdownOptions struct {
	Title                  string
	IncludeTableOfContents bool
}

func defaultMarkdownOptions() markdownOptions {
	return markdownOptions{IncludeTableOfContents: true}
}

// renderMarkdown renders sig's parameter documentation as Markdown, the
// way a doc generator would project a Signature for a reference page.
// types/docs give each parameter's declared type and doc text; pass empty
// strings for a Signature with no separately-tracked prose.
func renderMarkdown(w io.Writer, sig *params.Signature, types, docs []string, opts markdownOptions) error {
	title := opts.Title
	if title == "" {
		title = sig.Name()
	}
	writef(w, "# %s\n\n", title)
	writef(w, "```python\ndef %s(%s)\n```\n\n", sig.Name(), sig.ParametersStr())

	entries := sig.Documentation(types, docs)

	if opts.IncludeTableOfContents {
		writeln(w, "## Parameters\n")
	}
	writeln(w, "| Name | Mode | Type | Description |")
	writeln(w, "|------|------|------|-------------|")
	for _, e := range entries {
		switch e.Separator {
		case params.OnlyPosBefore:
			writeln(w, "| *(positional-only above)* | | | |")
			continue
		case params.OnlyNamedAfter:
			writeln(w, "| *(name-only below)* | | | |")
			continue
		}
		desc := e.Doc
		if desc == "" {
			desc = "*No description*"
		}
		typ := e.Type
		if typ == "" {
			typ = "*any*"
		}
		writef(w, "| `%s` | %s | %s | %s |\n", displayEntryName(e), modeString(e.Mode), typ, desc)
	}
	writeln(w, "")
	return nil
}

func displayEntryName(e params.DocEntry) string {
	name := e.Name.Str()
	switch e.Mode {
	case params.ArgsMode:
		return "*" + name
	case params.KwargsMode:
		return "**" + name
	default:
		return strings.TrimPrefix(name, "$")
	}
}

func modeString(m params.ParamMode) string {
	switch m {
	case params.PosOnlyMode:
		return "positional-only"
	case params.PosOrNameMode:
		return "positional-or-named"
	case params.NameOnlyMode:
		return "name-only"
	case params.ArgsMode:
		return "*args"
	case params.KwargsMode:
		return "**kwargs"
	default:
		return "?"
	}
}

func writef(w io.Writer, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(w, format, args...)
}

func writeln(w io.Writer, s string) {
	_, _ = fmt.Fprintln(w, s)
}
