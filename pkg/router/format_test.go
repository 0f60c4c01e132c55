package router

import (
	"reflect"
	"testing"
)

// endpoint registers one pattern and returns its endpoint.
func endpoint(t *testing.T, text string) *Endpoint {
	t.Helper()
	e, err := NewEndpointCollection().Register(text, nil)
	if err != nil {
		t.Fatalf("Register(%q): %v", text, err)
	}
	return e
}

func TestFormatArgv(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		values  map[string]string
		want    []string
	}{
		{
			name:    "literals only",
			pattern: "git status",
			values:  nil,
			want:    []string{"git", "status"},
		},
		{
			name:    "parameters substituted",
			pattern: "add {a} {b}",
			values:  map[string]string{"a": "2", "b": "3"},
			want:    []string{"add", "2", "3"},
		},
		{
			name:    "optional parameter omitted",
			pattern: "greet {name} {greeting?}",
			values:  map[string]string{"name": "ada"},
			want:    []string{"greet", "ada"},
		},
		{
			name:    "valued option",
			pattern: "commit -m {message}",
			values:  map[string]string{"message": "fix"},
			want:    []string{"commit", "-m", "fix"},
		},
		{
			name:    "flag present",
			pattern: "build --verbose,-v",
			values:  map[string]string{"verbose": FlagSentinel},
			want:    []string{"build", "--verbose"},
		},
		{
			name:    "flag absent",
			pattern: "build --verbose,-v",
			values:  nil,
			want:    []string{"build"},
		},
		{
			name:    "catch-all splits back into arguments",
			pattern: "echo {*words}",
			values:  map[string]string{"words": "hello cli world"},
			want:    []string{"echo", "hello", "cli", "world"},
		},
		{
			name:    "empty catch-all",
			pattern: "echo {*words}",
			values:  nil,
			want:    []string{"echo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatArgv(endpoint(t, tt.pattern), tt.values)
			if err != nil {
				t.Fatalf("FormatArgv error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FormatArgv = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatArgvMissingRequiredValues(t *testing.T) {
	if _, err := FormatArgv(endpoint(t, "add {a} {b}"), map[string]string{"a": "2"}); err == nil {
		t.Error("no error for a missing required parameter")
	}
	if _, err := FormatArgv(endpoint(t, "commit -m {message}"), nil); err == nil {
		t.Error("no error for a missing required option value")
	}
}

func TestFormatArgvRoundTrip(t *testing.T) {
	e := endpoint(t, "git commit -m {message} --amend")
	c := NewEndpointCollection()
	if _, err := c.Register("git commit -m {message} --amend", nil); err != nil {
		t.Fatal(err)
	}

	argv, err := FormatArgv(e, map[string]string{
		"message": "fix",
		"amend":   FlagSentinel,
	})
	if err != nil {
		t.Fatal(err)
	}

	result, err := NewResolver(c).Resolve(argv)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Matched {
		t.Fatalf("formatted argv %v did not resolve", argv)
	}
	if got := result.Get("message"); got != "fix" {
		t.Errorf("message = %q after round trip", got)
	}
	if !result.Flag("amend") {
		t.Error("amend flag lost in round trip")
	}
}
