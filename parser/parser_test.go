package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/albertthomas2205/flights-routes-system/routes"
	"github.com/google/go-cmp/cmp"
)

type airportView struct {
	Code          string
	Left          string
	LeftDistance  float64
	Right         string
	RightDistance float64
}

func view(airports []*routes.Airport) []airportView {
	views := make([]airportView, 0, len(airports))
	for _, a := range airports {
		v := airportView{Code: a.Code, LeftDistance: a.LeftDistance, RightDistance: a.RightDistance}
		if a.Left != nil {
			v.Left = a.Left.Code
		}
		if a.Right != nil {
			v.Right = a.Right.Code
		}
		views = append(views, v)
	}
	return views
}

const textFile = `AIRPORTS 3
code left left_distance right right_distance
JFK ORD 740 LAX 2475
ord - 0 SFO 1846.5

LAX SFO 337 - 0
`

const yamlFile = `airports:
  - code: JFK
    left: ORD
    left_distance: 740
    right: LAX
    right_distance: 2475
  - code: ord
    right: SFO
    right_distance: 1846.5
  - code: LAX
    left: SFO
    left_distance: 337
`

var wantAirports = []airportView{
	{Code: "JFK", Left: "ORD", LeftDistance: 740, Right: "LAX", RightDistance: 2475},
	{Code: "ORD", Right: "SFO", RightDistance: 1846.5},
	{Code: "LAX", Left: "SFO", LeftDistance: 337},
	{Code: "SFO"},
}

func TestParseText(t *testing.T) {
	got, err := ParseText(strings.NewReader(textFile))
	if err != nil {
		t.Fatalf("ParseText(): unexpected error: %s", err)
	}

	if diff := cmp.Diff(wantAirports, view(got)); diff != "" {
		t.Errorf("ParseText(): mismatch (-want +got):\n%s", diff)
	}
}

func TestParseText_linksShareAirports(t *testing.T) {
	got, err := ParseText(strings.NewReader(textFile))
	if err != nil {
		t.Fatalf("ParseText(): unexpected error: %s", err)
	}

	if got[0].Left != got[1] {
		t.Errorf("ParseText(): left link of JFK is not airport ORD")
	}
	if got[1].Right != got[2].Left {
		t.Errorf("ParseText(): ORD and LAX do not link to the same SFO airport")
	}
}

func TestParseText_errors(t *testing.T) {
	testCases := []struct {
		desc    string
		content string
	}{
		{"empty", ""},
		{"bad header", "NODES 1\ncode left left_distance right right_distance\nA - 0 - 0\n"},
		{"bad count", "AIRPORTS x\n"},
		{"count mismatch", "AIRPORTS 2\nheaders\nA - 0 - 0\n"},
		{"missing fields", "AIRPORTS 1\nheaders\nA B 1\n"},
		{"bad distance", "AIRPORTS 1\nheaders\nA B far - 0\n"},
		{"negative distance", "AIRPORTS 1\nheaders\nA B -3 - 0\n"},
		{"infinite distance", "AIRPORTS 2\nheaders\nA B Inf - 0\nB - 0 - 0\n"},
		{"NaN distance", "AIRPORTS 1\nheaders\nA - 0 B NaN\n"},
		{"duplicate", "AIRPORTS 2\nheaders\nA - 0 - 0\na - 0 - 0\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			if _, err := ParseText(strings.NewReader(tc.content)); err == nil {
				t.Errorf("ParseText(): want error, got nil")
			}
		})
	}
}

func TestParseYAML(t *testing.T) {
	got, err := ParseYAML(strings.NewReader(yamlFile))
	if err != nil {
		t.Fatalf("ParseYAML(): unexpected error: %s", err)
	}

	if diff := cmp.Diff(wantAirports, view(got)); diff != "" {
		t.Errorf("ParseYAML(): mismatch (-want +got):\n%s", diff)
	}
}

func TestParseYAML_errors(t *testing.T) {
	testCases := []struct {
		desc    string
		content string
	}{
		{"not yaml", "airports: [\n"},
		{"missing code", "airports:\n  - left: A\n"},
		{"negative distance", "airports:\n  - code: A\n    left: B\n    left_distance: -1\n"},
		{"infinite distance", "airports:\n  - code: A\n    left: B\n    left_distance: .inf\n"},
		{"NaN distance", "airports:\n  - code: A\n    right: B\n    right_distance: .nan\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			if _, err := ParseYAML(strings.NewReader(tc.content)); err == nil {
				t.Errorf("ParseYAML(): want error, got nil")
			}
		})
	}
}

func TestParseYAML_empty(t *testing.T) {
	got, err := ParseYAML(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ParseYAML(): unexpected error: %s", err)
	}
	if len(got) != 0 {
		t.Errorf("ParseYAML(): want no airports, got %d", len(got))
	}
}

func TestParseAirports(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"airports.txt":  textFile,
		"airports.yaml": yamlFile,
		"airports.YML":  yamlFile,
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatal(err)
			}

			got, err := ParseAirports(path)
			if err != nil {
				t.Fatalf("ParseAirports(): unexpected error: %s", err)
			}

			if diff := cmp.Diff(wantAirports, view(got)); diff != "" {
				t.Errorf("ParseAirports(): mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseAirports_missingFile(t *testing.T) {
	if _, err := ParseAirports(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Errorf("ParseAirports(): want error, got nil")
	}
}
