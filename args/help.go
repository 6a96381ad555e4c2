package args

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dzonerzy/go-args/internal/pool"
)

var builders = pool.New(
	func() *strings.Builder { return new(strings.Builder) },
	func(b *strings.Builder) { b.Reset() },
)

// Help renders the usage text: one line per entry with a long name, in
// registration order. Entries registered with only a short name are omitted.
func (p *Parser) Help() string {
	b := builders.Get()
	defer builders.Put(b)

	p.renderHelp(b)
	return b.String()
}

// WriteHelp writes Help to w.
func (p *Parser) WriteHelp(w io.Writer) error {
	_, err := io.WriteString(w, p.Help())
	return err
}

// PrintHelp writes Help to the IOManager's stdout.
func (p *Parser) PrintHelp() {
	_ = p.WriteHelp(p.io.Out())
}

func (p *Parser) renderHelp(b *strings.Builder) {
	if p.description != "" {
		b.WriteString(p.description)
		b.WriteString("\n\n")
	}

	b.WriteString(p.io.Bold("Usage:"))
	b.WriteString("\n  ")
	b.WriteString(p.name)
	b.WriteString(" [options]\n")

	listed := make([]Arg, 0, p.registry.Len())
	maxWidth := 0
	for _, arg := range p.registry.entries {
		if arg.Long() == "" {
			continue
		}
		listed = append(listed, arg)
		if w := utf8.RuneCountInString(helpLabel(arg)); w > maxWidth {
			maxWidth = w
		}
	}
	if len(listed) == 0 {
		return
	}

	b.WriteString("\n")
	b.WriteString(p.io.Bold("Options:"))
	b.WriteString("\n")
	for _, arg := range listed {
		label := helpLabel(arg)
		b.WriteString(label)
		if desc := arg.Description(); desc != "" {
			b.WriteString(strings.Repeat(" ", maxWidth-utf8.RuneCountInString(label)+3))
			b.WriteString(desc)
		}
		b.WriteString("\n")
	}
}

// helpLabel formats the left column, e.g. "  -o, --output string".
func helpLabel(arg Arg) string {
	var sb strings.Builder
	sb.WriteString("  ")
	if arg.Short() != NoShort {
		sb.WriteString("-")
		sb.WriteRune(arg.Short())
		sb.WriteString(", ")
	} else {
		sb.WriteString("    ")
	}
	sb.WriteString("--")
	sb.WriteString(arg.Long())
	if ph := arg.Kind().placeholder(); ph != "" {
		sb.WriteString(" ")
		sb.WriteString(ph)
		if arg.Multi() {
			sb.WriteString("...")
		}
	}
	return sb.String()
}
