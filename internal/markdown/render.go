// Package markdown renders a project snapshot as a Markdown document.
package markdown

import (
	"strings"

	"things2md/internal/service"
)

// noteIndent is the fixed margin for task note lines.
const noteIndent = "  "

// Render produces the Markdown export for a project snapshot.
// It is a pure function of its input: the same snapshot always
// yields byte-identical output. Markdown metacharacters in titles,
// tags and notes pass through unescaped.
func Render(p service.Project) string {
	var b strings.Builder

	b.WriteString("# ")
	b.WriteString(p.Title)
	b.WriteByte('\n')

	if len(p.Tags) > 0 {
		b.WriteString("**Tags:** ")
		b.WriteString(strings.Join(p.Tags, ", "))
		b.WriteByte('\n')
	}

	if p.Due != nil {
		b.WriteString("**Due Date:** ")
		b.WriteString(p.Due.String())
		b.WriteByte('\n')
	}

	b.WriteByte('\n')

	if p.Notes != "" {
		b.WriteString("## Project Notes\n\n")
		b.WriteString(p.Notes)
		if !strings.HasSuffix(p.Notes, "\n") {
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	b.WriteString("## Tasks\n")

	for _, t := range p.Tasks {
		b.WriteByte('\n')
		writeTask(&b, t)
	}

	return b.String()
}

// writeTask emits one task entry: a bullet line followed by its
// indented note lines.
func writeTask(b *strings.Builder, t service.Task) {
	b.WriteString(bullet(t.Status))
	b.WriteString(t.Title)
	if len(t.Tags) > 0 {
		b.WriteString(" *(")
		b.WriteString(strings.Join(t.Tags, ", "))
		b.WriteString(")*")
	}
	b.WriteByte('\n')

	notes := strings.TrimRight(t.Notes, "\n")
	if notes == "" {
		return
	}
	for _, line := range strings.Split(notes, "\n") {
		// Interior blank lines stay empty rather than carrying the margin.
		if line == "" {
			b.WriteByte('\n')
			continue
		}
		b.WriteString(noteIndent)
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

// bullet returns the list marker for a task status. Open tasks keep the
// plain marker so a default export matches the historical format.
func bullet(s service.Status) string {
	switch s {
	case service.StatusCompleted:
		return "- [x] "
	case service.StatusCanceled:
		return "- [-] "
	default:
		return "- "
	}
}
