package args_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/dzonerzy/go-args/args"
	argsio "github.com/dzonerzy/go-args/io"
)

// newTestParser returns a parser whose diagnostics are captured.
func newTestParser(t *testing.T, entries ...args.Arg) (*args.Parser, *args.Collector) {
	t.Helper()
	c := &args.Collector{}
	p := args.NewParser("test").Diagnostics(c)
	for _, e := range entries {
		if err := p.Add(e); err != nil {
			t.Fatalf("Add(%v) unexpected error: %v", e, err)
		}
	}
	return p, c
}

func argv(tokens ...string) []string {
	return append([]string{"prog"}, tokens...)
}

func TestParse_Bool(t *testing.T) {
	for _, tokens := range [][]string{{"-b"}, {"--bool"}, {"--bool=false"}, {"-b=0"}, {"-bfalse"}, {"-bx=0"}} {
		t.Run(strings.Join(tokens, " "), func(t *testing.T) {
			b := args.NewBool('b', "bool")
			p, c := newTestParser(t, b)
			if err := p.Parse(argv(tokens...)); err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if !b.IsDefined() || !b.Value() {
				t.Errorf("defined=%v value=%v, want true true", b.IsDefined(), b.Value())
			}
			if len(c.Errors) != 0 {
				t.Errorf("unexpected diagnostics: %v", c.Errors)
			}
		})
	}
}

func TestParse_BoolDoesNotConsume(t *testing.T) {
	b := args.NewBool('b', "bool")
	p, _ := newTestParser(t, b)
	_ = p.Parse(argv("-b", "false"))
	if !b.Value() {
		t.Error("bool entries never consume the following token")
	}
	if diff := cmp.Diff([]string{"false"}, p.Rest()); diff != "" {
		t.Errorf("Rest() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_SingleValueForms(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   string
	}{
		{"short separate", []string{"-s", "value"}, "value"},
		{"short equals", []string{"-s=value"}, "value"},
		{"short glued", []string{"-svalue"}, "value"},
		{"short equals after extra chars", []string{"-sa=b"}, "b"},
		{"short equals keeps later equals", []string{"-s=a=b"}, "a=b"},
		{"short equals empty", []string{"-s="}, ""},
		{"long separate", []string{"--str", "value"}, "value"},
		{"long equals", []string{"--str=value"}, "value"},
		{"long equals empty", []string{"--str="}, ""},
		{"value keeps equals", []string{"--str=a=b"}, "a=b"},
		{"dash value consumed", []string{"-s", "-x"}, "-x"},
		{"last wins", []string{"-s", "one", "--str", "two"}, "two"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := args.NewString('s', "str")
			p, c := newTestParser(t, s)
			if err := p.Parse(argv(tt.tokens...)); err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if s.Value() != tt.want || !s.IsDefined() {
				t.Errorf("Value() = %q (defined=%v), want %q", s.Value(), s.IsDefined(), tt.want)
			}
			if len(c.Errors) != 0 {
				t.Errorf("unexpected diagnostics: %v", c.Errors)
			}
		})
	}
}

func TestParse_GluedShortTakesPrecedence(t *testing.T) {
	s := args.NewString('s', "str")
	p, c := newTestParser(t, s)

	if err := p.Parse(argv("-str", "value")); err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if s.Value() != "tr" {
		t.Errorf("Value() = %q, want %q", s.Value(), "tr")
	}
	if diff := cmp.Diff([]string{"value"}, p.Rest()); diff != "" {
		t.Errorf("Rest() mismatch (-want +got):\n%s", diff)
	}
	if len(c.Errors) != 0 {
		t.Errorf("unexpected diagnostics: %v", c.Errors)
	}
}

func TestParse_SingleWithoutValue(t *testing.T) {
	n := args.NewInt('n', "num")
	p, _ := newTestParser(t, n)
	if err := p.Parse(argv("--num")); err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if !n.IsDefined() || n.Value() != 0 {
		t.Errorf("defined=%v value=%d, want defined without value", n.IsDefined(), n.Value())
	}
}

func TestParse_NegativeIntConsumed(t *testing.T) {
	n := args.NewInt('n', "num")
	p, _ := newTestParser(t, n)
	_ = p.Parse(argv("-n", "-5"))
	if n.Value() != -5 {
		t.Errorf("Value() = %d, want -5", n.Value())
	}
}

func TestParse_MultiGreedy(t *testing.T) {
	m := args.NewMultiInt('m', "multi")
	p, c := newTestParser(t, m)
	if err := p.Parse(argv("-m", "10", "20", "30")); err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if diff := cmp.Diff([]int{10, 20, 30}, m.Values()); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
	if len(c.Errors) != 0 {
		t.Errorf("unexpected diagnostics: %v", c.Errors)
	}
}

func TestParse_MultiRepeatedAppends(t *testing.T) {
	m := args.NewMultiString('m', "multi")
	p, _ := newTestParser(t, m)
	_ = p.Parse(argv("-m", "value1", "value2", "-m", "value3"))
	if diff := cmp.Diff([]string{"value1", "value2", "value3"}, m.Values()); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_MultiStops(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		want     []int
		wantRest []string
	}{
		{"at option", []string{"-m", "1", "2", "-b", "3"}, []int{1, 2}, []string{"3"}},
		{"at empty token", []string{"-m", "1", "", "2"}, []int{1}, []string{"", "2"}},
		{"at coercion failure", []string{"-m", "1", "two", "3"}, []int{1}, []string{"two", "3"}},
		{"at range failure", []string{"-m", "1", "500", "3"}, []int{1}, []string{"500", "3"}},
		{"inline value only", []string{"--multi=4", "5"}, []int{4}, []string{"5"}},
		{"glued value only", []string{"-m4", "5"}, []int{4}, []string{"5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := args.NewMultiInt('m', "multi").Validate(args.DefaultIntRange())
			b := args.NewBool('b', "bool")
			p, c := newTestParser(t, m, b)
			if err := p.Parse(argv(tt.tokens...)); err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, m.Values()); diff != "" {
				t.Errorf("Values() mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantRest, p.Rest()); diff != "" {
				t.Errorf("Rest() mismatch (-want +got):\n%s", diff)
			}
			if len(c.Errors) != 0 {
				t.Errorf("greedy consumption must stop silently, got %v", c.Errors)
			}
		})
	}
}

func TestParse_MultiWithoutValuesStaysUndefined(t *testing.T) {
	m := args.NewMultiFloat('f', "floats")
	p, _ := newTestParser(t, m)
	_ = p.Parse(argv("-f"))
	if m.IsDefined() {
		t.Error("multi entry with no values must stay undefined")
	}
}

func TestParse_MultiBoolCounts(t *testing.T) {
	v := args.NewMultiBool('v', "verbose")
	p, _ := newTestParser(t, v)
	_ = p.Parse(argv("-v", "-v", "--verbose=false"))
	if v.Len() != 3 {
		t.Errorf("Len() = %d, want 3", v.Len())
	}
}

func TestParse_Duration(t *testing.T) {
	d := args.NewDuration('d', "delay")
	p, _ := newTestParser(t, d)
	_ = p.Parse(argv("--delay", "1500m"))
	if d.Value() != 1500*time.Millisecond {
		t.Errorf("Value() = %v, want 1.5s", d.Value())
	}
}

func TestParse_UnknownIdentifiers(t *testing.T) {
	s := args.NewString('s', "str")
	n := args.NewInt('n', "number")
	p, c := newTestParser(t, s, n)

	err := p.Parse(argv("-x", "--nope=1", "--numbr", "5", "-s", "ok"))
	if err == nil {
		t.Fatal("Parse() should return the joined diagnostics")
	}
	want := []args.ErrorType{args.ErrorTypeUnknownShort, args.ErrorTypeUnknownLong, args.ErrorTypeUnknownLong}
	if diff := cmp.Diff(want, c.Types()); diff != "" {
		t.Errorf("diagnostic types mismatch (-want +got):\n%s", diff)
	}
	if got := c.Errors[2].Suggestion; got != "Did you mean '--number'?" {
		t.Errorf("Suggestion = %q, want hint for --number", got)
	}
	if c.Errors[0].Token != "-x" {
		t.Errorf("Token = %q, want -x", c.Errors[0].Token)
	}
	// only the unknown token is skipped
	if s.Value() != "ok" {
		t.Errorf("parsing must continue after unknown ids, Value() = %q", s.Value())
	}
	if diff := cmp.Diff([]string{"5"}, p.Rest()); diff != "" {
		t.Errorf("Rest() mismatch (-want +got):\n%s", diff)
	}
	if !args.IsErrorType(err, args.ErrorTypeUnknownShort) || !args.IsErrorType(err, args.ErrorTypeUnknownLong) {
		t.Errorf("joined error %v should contain both unknown kinds", err)
	}
}

func TestParse_SuggestDisabled(t *testing.T) {
	p, c := newTestParser(t, args.NewInt('n', "number"))
	p.Suggest(false)
	_ = p.Parse(argv("--numbr"))
	if len(c.Errors) != 1 || c.Errors[0].Suggestion != "" {
		t.Errorf("diagnostics = %v, want one without suggestion", c.Errors)
	}
}

func TestParse_InvalidValueKeepsState(t *testing.T) {
	n := args.NewInt('n', "num").Validate(args.IntRange(0, 10))
	p, c := newTestParser(t, n)
	err := p.Parse(argv("-n", "7", "-n", "abc", "--num=11"))
	if n.Value() != 7 {
		t.Errorf("Value() = %d, want 7", n.Value())
	}
	want := []args.ErrorType{args.ErrorTypeInvalidValue, args.ErrorTypeOutOfRange}
	if diff := cmp.Diff(want, c.Types()); diff != "" {
		t.Errorf("diagnostic types mismatch (-want +got):\n%s", diff)
	}
	if !args.IsErrorType(err, args.ErrorTypeOutOfRange) {
		t.Errorf("Parse() error = %v, want out_of_range in the tree", err)
	}
}

func TestParse_Terminator(t *testing.T) {
	b := args.NewBool('b', "bool")
	p, _ := newTestParser(t, b)
	_ = p.Parse(argv("file", "--", "-b", "--bool"))
	if b.IsDefined() {
		t.Error("options after -- must not be parsed")
	}
	if diff := cmp.Diff([]string{"file", "-b", "--bool"}, p.Rest()); diff != "" {
		t.Errorf("Rest() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_EmptyAndProgramOnly(t *testing.T) {
	p, c := newTestParser(t, args.NewBool('b', "bool"))
	if err := p.Parse(nil); err != nil {
		t.Errorf("Parse(nil) = %v", err)
	}
	if err := p.Parse([]string{"prog"}); err != nil {
		t.Errorf("Parse(prog) = %v", err)
	}
	if err := p.Parse(argv("-")); err != nil {
		t.Errorf("Parse(-) = %v", err)
	}
	if diff := cmp.Diff([]string{"-"}, p.Rest()); diff != "" {
		t.Errorf("Rest() mismatch (-want +got):\n%s", diff)
	}
	if len(c.Errors) != 0 {
		t.Errorf("unexpected diagnostics: %v", c.Errors)
	}
}

func TestParser_AddReportsToSink(t *testing.T) {
	p, c := newTestParser(t, args.NewBool('b', "bool"))
	if err := p.Add(args.NewInt('b', "other")); err == nil {
		t.Fatal("Add() with duplicate short should fail")
	}
	if err := p.Add(nil); err == nil {
		t.Fatal("Add(nil) should fail")
	}
	want := []args.ErrorType{args.ErrorTypeDuplicateShort, args.ErrorTypeNilArg}
	if diff := cmp.Diff(want, c.Types()); diff != "" {
		t.Errorf("diagnostic types mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_DefaultSinkWritesStderr(t *testing.T) {
	var out, errOut bytes.Buffer
	p := args.NewParser("test").IO(argsio.New().WithOut(&out).WithErr(&errOut).NoColor())
	_ = p.Parse(argv("--missing"))
	if got := errOut.String(); !strings.Contains(got, "[ERROR] unknown long argument: --missing") {
		t.Errorf("stderr = %q, want logged diagnostic", got)
	}
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want nothing", out.String())
	}
}

func TestParser_SinkFunc(t *testing.T) {
	var got []string
	p := args.NewParser("test").Diagnostics(args.SinkFunc(func(err *args.ParseError) {
		got = append(got, err.Token)
	}))
	_ = p.Parse(argv("-q", "--zz"))
	if diff := cmp.Diff([]string{"-q", "--zz"}, got); diff != "" {
		t.Errorf("reported tokens mismatch (-want +got):\n%s", diff)
	}

	p.Diagnostics(args.Discard)
	if err := p.Parse(argv("-q")); !args.IsErrorType(err, args.ErrorTypeUnknownShort) {
		t.Errorf("Parse() = %v, want unknown_short even when discarding", err)
	}
}

func TestParse_ReusedParserResetsState(t *testing.T) {
	m := args.NewMultiInt('m', "multi")
	p, c := newTestParser(t, m)
	_ = p.Parse(argv("-x", "rest"))
	if err := p.Parse(argv("-m", "1")); err != nil {
		t.Errorf("second Parse() returned stale error: %v", err)
	}
	if len(p.Rest()) != 0 {
		t.Errorf("Rest() = %v, want empty after second Parse", p.Rest())
	}
	if len(c.Errors) != 1 {
		t.Errorf("collector saw %d errors, want 1", len(c.Errors))
	}
}
