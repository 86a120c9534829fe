package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

const airportsFile = `AIRPORTS 3
code left left_distance right right_distance
A B 5 C 3
B - 0 - 0
C - 0 - 0
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "airports.txt")
	if err := os.WriteFile(path, []byte(airportsFile), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--airports", path}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	testCases := []struct {
		desc string
		args []string
		want string
	}{
		{
			desc: "nearby",
			args: []string{"nearby", "a"},
			want: "C      3\nB      5\n",
		},
		{
			desc: "nearby with max results",
			args: []string{"nearby", "A", "--max-results", "1"},
			want: "C      3\n",
		},
		{
			desc: "nearby unknown airport",
			args: []string{"nearby", "ZZZ"},
			want: "No nearby airport found.\n",
		},
		{
			desc: "duration",
			args: []string{"duration", "B", "C"},
			want: "duration: 8\nroute:    B -> A -> C\n",
		},
		{
			desc: "duration invalid codes",
			args: []string{"duration", "B", "ZZZ"},
			want: "Invalid airport codes.\n",
		},
		{
			desc: "nth",
			args: []string{"nth", "A", "left", "1"},
			want: "B\n",
		},
		{
			desc: "nth not found",
			args: []string{"nth", "A", "right", "2"},
			want: "No right node found at step 2.\n",
		},
		{
			desc: "longest",
			args: []string{"longest"},
			want: "A -> B: 5\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got, err := run(t, tc.args...)
			if err != nil {
				t.Fatalf("Execute(): unexpected error: %s", err)
			}
			if got != tc.want {
				t.Errorf("Execute(): want output %q, got %q", tc.want, got)
			}
		})
	}
}

func TestCommands_errors(t *testing.T) {
	testCases := []struct {
		desc string
		args []string
	}{
		{"invalid direction", []string{"nth", "A", "up", "1"}},
		{"invalid steps", []string{"nth", "A", "left", "0"}},
		{"steps not a number", []string{"nth", "A", "left", "x"}},
		{"missing argument", []string{"duration", "A"}},
		{"negative max results", []string{"nearby", "A", "--max-results", "-2"}},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			if _, err := run(t, tc.args...); err == nil {
				t.Errorf("Execute(): want error, got nil")
			}
		})
	}
}

func TestCommands_missingAirportsFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"longest"})

	if err := cmd.Execute(); err == nil {
		t.Errorf("Execute(): want error, got nil")
	}
}
