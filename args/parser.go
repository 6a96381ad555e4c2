package args

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	argsio "github.com/dzonerzy/go-args/io"
	"github.com/dzonerzy/go-args/internal/fuzzy"
)

// suggestionDistance is the largest edit distance still offered as a
// "did you mean" hint for an unknown long identifier.
const suggestionDistance = 2

// Parser owns a Registry and scans argument vectors against it.
// A Parser is not safe for concurrent use.
type Parser struct {
	name        string
	description string
	registry    *Registry
	io          *argsio.IOManager
	sink        Sink
	logger      *argsio.Logger
	suggest     bool

	// per-Parse state
	position int
	rest     []string
	errs     []error
}

// NewParser creates a parser bound to process stdio. Diagnostics go to
// stderr through a Logger until Diagnostics installs another sink.
func NewParser(name string) *Parser {
	return &Parser{
		name:     name,
		registry: NewRegistry(),
		io:       argsio.New(),
		suggest:  true,
	}
}

// Description sets the text printed above the usage line.
func (p *Parser) Description(desc string) *Parser { p.description = desc; return p }

// Diagnostics installs the sink receiving registration and parse errors.
func (p *Parser) Diagnostics(sink Sink) *Parser { p.sink = sink; return p }

// IO replaces the IOManager used for help output and the default sink.
func (p *Parser) IO(m *argsio.IOManager) *Parser {
	p.io = m
	p.logger = nil
	return p
}

// Suggest enables or disables "did you mean" hints for unknown long names.
func (p *Parser) Suggest(enabled bool) *Parser { p.suggest = enabled; return p }

// Name returns the program name used in help output.
func (p *Parser) Name() string { return p.name }

// Registry exposes the underlying registry for lookups and iteration.
func (p *Parser) Registry() *Registry { return p.registry }

// IOManager returns the IOManager in use.
func (p *Parser) IOManager() *argsio.IOManager { return p.io }

// Add registers arg. A failure is returned and also reported to the sink;
// the entry is not registered in that case.
func (p *Parser) Add(arg Arg) error {
	if err := p.registry.Add(arg); err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			p.diagnostics().Report(pe)
		}
		return err
	}
	return nil
}

// Rest returns the bare tokens left unconsumed by the last Parse, including
// everything after a "--" terminator.
func (p *Parser) Rest() []string {
	out := make([]string, len(p.rest))
	copy(out, p.rest)
	return out
}

// Parse scans argv left to right, skipping argv[0]. Unknown identifiers and
// bad values are reported and skipped; parsing always runs to the end. The
// returned error joins every diagnostic, or is nil when there were none.
func (p *Parser) Parse(argv []string) error {
	p.reset()
	if len(argv) <= 1 {
		return nil
	}
	args := argv[1:]

scan:
	for p.position < len(args) {
		arg := args[p.position]

		switch {
		case arg == "--":
			// terminator: everything after it is left to the caller
			p.rest = append(p.rest, args[p.position+1:]...)
			break scan
		case len(arg) > 2 && arg[0] == '-' && arg[1] == '-':
			p.parseLong(arg, args)
		case len(arg) > 1 && arg[0] == '-':
			p.parseShort(arg, args)
		default:
			p.rest = append(p.rest, arg)
		}

		p.position++
	}

	return errors.Join(p.errs...)
}

// parseLong handles --name and --name=value.
func (p *Parser) parseLong(token string, args []string) {
	name, value, hasValue := strings.Cut(token[2:], "=")

	arg, ok := p.registry.ByLong(name)
	if !ok {
		p.report(p.unknownLongError(name, token))
		return
	}

	if hasValue {
		p.assign(arg, value)
		return
	}
	p.consume(arg, args)
}

// parseShort handles -x, -x=value and the glued -xvalue form. Short names
// are always exactly one character; a token containing '=' takes its value
// from after the first '='.
func (p *Parser) parseShort(token string, args []string) {
	body := token[1:]
	short, size := utf8.DecodeRuneInString(body)

	arg, ok := p.registry.ByShort(short)
	if !ok {
		p.report(&ParseError{
			Type:    ErrorTypeUnknownShort,
			Message: fmt.Sprintf("unknown short argument: -%c", short),
			Token:   token,
		})
		return
	}

	remainder := body[size:]
	if remainder == "" {
		p.consume(arg, args)
		return
	}
	// anything before the first '=' is dropped: -xjunk=value assigns value
	if _, value, ok := strings.Cut(remainder, "="); ok {
		p.assign(arg, value)
		return
	}
	p.assign(arg, remainder)
}

// assign stores an inline value. Bool entries ignore it and become true.
func (p *Parser) assign(arg Arg, value string) {
	if arg.Kind() == KindBool {
		arg.markPresent()
		return
	}
	if err := arg.SetValue(value); err != nil {
		p.reportErr(err)
	}
}

// consume pulls values for arg from the tokens following the cursor.
func (p *Parser) consume(arg Arg, args []string) {
	if arg.Kind() == KindBool {
		arg.markPresent()
		return
	}

	if !arg.Multi() {
		if p.position+1 >= len(args) {
			arg.markPresent()
			return
		}
		p.position++
		if err := arg.SetValue(args[p.position]); err != nil {
			p.reportErr(err)
		}
		return
	}

	// multi: take tokens while they look like values and coerce cleanly
	for p.position+1 < len(args) {
		next := args[p.position+1]
		if next == "" || next[0] == '-' || !arg.accepts(next) {
			return
		}
		p.position++
		if err := arg.SetValue(next); err != nil {
			p.reportErr(err)
			return
		}
	}
}

func (p *Parser) unknownLongError(name, token string) *ParseError {
	e := &ParseError{
		Type:    ErrorTypeUnknownLong,
		Message: "unknown long argument: --" + name,
		Token:   token,
	}
	if p.suggest {
		if best := fuzzy.FindBestFlag(name, p.registry.longNames(), suggestionDistance); best != "" {
			e.Suggestion = "Did you mean '--" + best + "'?"
		}
	}
	return e
}

func (p *Parser) reportErr(err error) {
	var pe *ParseError
	if !errors.As(err, &pe) {
		pe = &ParseError{Type: ErrorTypeInvalidValue, Message: err.Error(), Cause: err}
	}
	p.report(pe)
}

func (p *Parser) report(err *ParseError) {
	p.errs = append(p.errs, err)
	p.diagnostics().Report(err)
}

func (p *Parser) diagnostics() Sink {
	if p.sink != nil {
		return p.sink
	}
	if p.logger == nil {
		p.logger = argsio.NewLogger(p.io).WithFormat(argsio.LogFormatTagged)
	}
	return LoggerSink(p.logger)
}

func (p *Parser) reset() {
	p.position = 0
	p.rest = p.rest[:0]
	p.errs = p.errs[:0]
}
