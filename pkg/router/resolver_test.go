package router

import (
	"errors"
	"reflect"
	"testing"
)

// newResolver builds a resolver over the given patterns.
func newResolver(t *testing.T, patterns ...string) *Resolver {
	t.Helper()
	c := NewEndpointCollection()
	for _, p := range patterns {
		if _, err := c.Register(p, nil); err != nil {
			t.Fatalf("Register(%q): %v", p, err)
		}
	}
	return NewResolver(c)
}

// mustResolve resolves an argv expected to match.
func mustResolve(t *testing.T, r *Resolver, argv []string) *Result {
	t.Helper()
	result, err := r.Resolve(argv)
	if err != nil {
		t.Fatalf("Resolve(%v) error: %v", argv, err)
	}
	if !result.Matched {
		t.Fatalf("Resolve(%v) did not match: %s", argv, result.Reason)
	}
	return result
}

// =============================================================================
// Basic matching
// =============================================================================

func TestResolveExactLiteral(t *testing.T) {
	r := newResolver(t, "status")

	result := mustResolve(t, r, []string{"status"})
	if result.Endpoint.Pattern != "status" {
		t.Errorf("matched %q, want \"status\"", result.Endpoint.Pattern)
	}
	if len(result.Bindings) != 0 {
		t.Errorf("Bindings = %v, want none", result.Bindings)
	}
}

func TestResolveParameterBindings(t *testing.T) {
	r := newResolver(t, "add {a:int} {b:int}")

	result := mustResolve(t, r, []string{"add", "2", "3"})
	if got := result.Get("a"); got != "2" {
		t.Errorf("a = %q, want \"2\"", got)
	}
	if got := result.Get("b"); got != "3" {
		t.Errorf("b = %q, want \"3\"", got)
	}
}

func TestResolveAbsentFlagStillMatches(t *testing.T) {
	r := newResolver(t, "build --verbose,-v")

	result := mustResolve(t, r, []string{"build"})
	if result.Flag("verbose") {
		t.Error("verbose flag reported present on a bare invocation")
	}
}

func TestResolvePresentFlag(t *testing.T) {
	r := newResolver(t, "build --verbose,-v")

	for _, trigger := range []string{"--verbose", "-v"} {
		result := mustResolve(t, r, []string{"build", trigger})
		if !result.Flag("verbose") {
			t.Errorf("flag unset for trigger %q", trigger)
		}
		if got := result.Get("verbose"); got != FlagSentinel {
			t.Errorf("value = %q, want the flag sentinel", got)
		}
	}
}

func TestResolveCatchAll(t *testing.T) {
	r := newResolver(t, "echo {*message}")

	result := mustResolve(t, r, []string{"echo", "hello", "cli", "world"})
	want := []string{"hello", "cli", "world"}
	if got := result.All("message"); !reflect.DeepEqual(got, want) {
		t.Errorf("message = %v, want %v", got, want)
	}
	if got := result.Get("message"); got != "hello cli world" {
		t.Errorf("joined = %q, want \"hello cli world\"", got)
	}
}

func TestResolveEmptyCatchAll(t *testing.T) {
	r := newResolver(t, "echo {*message}")

	result := mustResolve(t, r, []string{"echo"})
	if got := result.All("message"); len(got) != 0 {
		t.Errorf("message = %v, want empty", got)
	}
}

// =============================================================================
// Option position independence
// =============================================================================

func TestResolveOptionsInAnyPosition(t *testing.T) {
	r := newResolver(t, "git commit -m {msg} --amend")

	argvs := [][]string{
		{"git", "commit", "-m", "fix", "--amend"},
		{"git", "commit", "--amend", "-m", "fix"},
	}
	for _, argv := range argvs {
		result := mustResolve(t, r, argv)
		if got := result.Get("msg"); got != "fix" {
			t.Errorf("Resolve(%v): msg = %q, want \"fix\"", argv, got)
		}
		if !result.Flag("amend") {
			t.Errorf("Resolve(%v): amend flag unset", argv)
		}
	}
}

func TestResolveRequiredValuedOptionAbsentFails(t *testing.T) {
	r := newResolver(t, "commit -m {message}")

	result, err := r.Resolve([]string{"commit"})
	if err != nil {
		t.Fatal(err)
	}
	if result.Matched {
		t.Error("matched without the required -m value")
	}
}

func TestResolveOptionalValuedOption(t *testing.T) {
	r := newResolver(t, "tail {file} --lines,-n? {count:int}")

	result := mustResolve(t, r, []string{"tail", "app.log"})
	if got := result.Get("count"); got != "" {
		t.Errorf("count = %q, want unset", got)
	}

	result = mustResolve(t, r, []string{"tail", "app.log", "-n", "50"})
	if got := result.Get("count"); got != "50" {
		t.Errorf("count = %q, want \"50\"", got)
	}
}

func TestResolveTriggerWithoutValueFails(t *testing.T) {
	r := newResolver(t, "commit -m {message}")

	result, err := r.Resolve([]string{"commit", "-m"})
	if err != nil {
		t.Fatal(err)
	}
	if result.Matched {
		t.Error("matched a trigger with no value after it")
	}
}

func TestResolveRepeatedOption(t *testing.T) {
	r := newResolver(t, "run --env,-e {pair}*")

	result := mustResolve(t, r, []string{"run", "-e", "A=1", "--env", "B=2"})
	want := []string{"A=1", "B=2"}
	if got := result.All("pair"); !reflect.DeepEqual(got, want) {
		t.Errorf("pair = %v, want %v", got, want)
	}
}

func TestResolveCatchAllRouteStillTakesOptions(t *testing.T) {
	// Options are extracted from the remainder before the catch-all binds.
	r := newResolver(t, "echo {*words} --upper,-u")

	result := mustResolve(t, r, []string{"echo", "hello", "--upper", "world"})
	if !result.Flag("upper") {
		t.Error("upper flag unset")
	}
	want := []string{"hello", "world"}
	if got := result.All("words"); !reflect.DeepEqual(got, want) {
		t.Errorf("words = %v, want %v", got, want)
	}
}

// =============================================================================
// Positional edge cases
// =============================================================================

func TestResolveOptionalPositional(t *testing.T) {
	r := newResolver(t, "greet {name} {greeting?}")

	result := mustResolve(t, r, []string{"greet", "ada"})
	if got := result.Get("name"); got != "ada" {
		t.Errorf("name = %q", got)
	}
	if got := result.Get("greeting"); got != "" {
		t.Errorf("greeting = %q, want unset", got)
	}

	result = mustResolve(t, r, []string{"greet", "ada", "hello"})
	if got := result.Get("greeting"); got != "hello" {
		t.Errorf("greeting = %q, want \"hello\"", got)
	}
}

func TestResolveParameterRefusesOptionLikeArgument(t *testing.T) {
	r := newResolver(t, "open {file}")

	result, err := r.Resolve([]string{"open", "--force"})
	if err != nil {
		t.Fatal(err)
	}
	if result.Matched {
		t.Error("a dash-prefixed argument filled a plain parameter slot")
	}
}

func TestResolveBareDashIsPositional(t *testing.T) {
	// "-" conventionally means stdin and stays a positional value.
	r := newResolver(t, "cat {file}")

	result := mustResolve(t, r, []string{"cat", "-"})
	if got := result.Get("file"); got != "-" {
		t.Errorf("file = %q, want \"-\"", got)
	}
}

func TestResolveSeparatorAdmitsDashArguments(t *testing.T) {
	r := newResolver(t, "run -- {arg}")

	result := mustResolve(t, r, []string{"run", "--", "--not-an-option"})
	if got := result.Get("arg"); got != "--not-an-option" {
		t.Errorf("arg = %q", got)
	}
}

func TestResolveExtraArgumentsFail(t *testing.T) {
	r := newResolver(t, "git status")

	result, err := r.Resolve([]string{"git", "status", "extra"})
	if err != nil {
		t.Fatal(err)
	}
	if result.Matched {
		t.Error("matched despite an unconsumed trailing argument")
	}
}

func TestResolveTooFewArgumentsFail(t *testing.T) {
	r := newResolver(t, "add {a} {b}")

	result, err := r.Resolve([]string{"add", "1"})
	if err != nil {
		t.Fatal(err)
	}
	if result.Matched {
		t.Error("matched with a required parameter unfilled")
	}
}

// =============================================================================
// Candidate ordering and outcomes
// =============================================================================

func TestResolveMostSpecificWins(t *testing.T) {
	r := newResolver(t,
		"git {*rest}",
		"git commit",
		"git commit -m {message}",
	)

	result := mustResolve(t, r, []string{"git", "commit", "-m", "fix"})
	if result.Endpoint.Pattern != "git commit -m {message}" {
		t.Errorf("matched %q, want the most specific route", result.Endpoint.Pattern)
	}

	result = mustResolve(t, r, []string{"git", "push", "origin"})
	if result.Endpoint.Pattern != "git {*rest}" {
		t.Errorf("matched %q, want the catch-all fallback", result.Endpoint.Pattern)
	}
}

func TestResolveNoMatchIsAResultNotAnError(t *testing.T) {
	r := newResolver(t, "status", "version")

	result, err := r.Resolve([]string{"restart"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Matched {
		t.Fatal("matched an unregistered command")
	}
	if result.Reason == "" {
		t.Error("no failure reason recorded")
	}
	if result.Candidates != 2 {
		t.Errorf("Candidates = %d, want 2", result.Candidates)
	}
}

func TestResolveCountsCandidatesUntilMatch(t *testing.T) {
	r := newResolver(t,
		"git commit",
		"git {*rest}",
	)

	result := mustResolve(t, r, []string{"git", "push"})
	if result.Candidates != 2 {
		t.Errorf("Candidates = %d, want 2", result.Candidates)
	}
}

func TestResolveNilArgv(t *testing.T) {
	r := newResolver(t, "status")

	_, err := r.Resolve(nil)
	if !errors.Is(err, ErrNilArgv) {
		t.Errorf("error = %v, want ErrNilArgv", err)
	}
}

func TestResolveEmptyArgv(t *testing.T) {
	// Empty is a valid vector; it simply matches nothing here.
	r := newResolver(t, "status")

	result, err := r.Resolve([]string{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Matched {
		t.Error("empty argv matched a literal route")
	}
}

func TestResolveFailedCandidateLeavesNoTrace(t *testing.T) {
	// The first candidate binds {target} before failing on the trailing
	// argument; the winning match must not carry that partial binding.
	r := newResolver(t,
		"deploy {target} --now",
		"deploy {*args}",
	)

	result := mustResolve(t, r, []string{"deploy", "prod", "fast"})
	if result.Endpoint.Pattern != "deploy {*args}" {
		t.Fatalf("matched %q", result.Endpoint.Pattern)
	}
	if _, ok := result.Bindings["target"]; ok {
		t.Error("partial binding from a failed candidate leaked into the result")
	}
}
