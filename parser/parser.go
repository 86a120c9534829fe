// Package parser reads airport data files.
//
// Two formats are supported. The text format starts with a line giving the
// number of airports, followed by a header line and one line per airport:
//
//	AIRPORTS 3
//	code left left_distance right right_distance
//	JFK ORD 740 LAX 2475
//	ORD - 0 SFO 1846
//	LAX SFO 337 - 0
//
// A "-" marks a missing link. The YAML format is a list of airports under the
// "airports" key with the same fields. In both formats, linked airports that
// are not declared are created without links.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/albertthomas2205/flights-routes-system/routes"
	"gopkg.in/yaml.v3"
)

const noLink = "-"

// entry is an airport as written in a data file.
type entry struct {
	Code          string  `yaml:"code"`
	Left          string  `yaml:"left"`
	LeftDistance  float64 `yaml:"left_distance"`
	Right         string  `yaml:"right"`
	RightDistance float64 `yaml:"right_distance"`
}

// ParseAirports reads the airports of the file at path. Files with a
// ".yaml" or ".yml" extension are read as YAML, others as text.
func ParseAirports(path string) ([]*routes.Airport, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(file)
	default:
		return ParseText(file)
	}
}

// ParseText reads airports in the text format.
func ParseText(r io.Reader) ([]*routes.Airport, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("invalid airports file: empty")
	}
	parts := strings.Fields(scanner.Text())
	if len(parts) != 2 || parts[0] != "AIRPORTS" {
		return nil, fmt.Errorf("invalid airports file: line 1: want \"AIRPORTS <n>\", got %q", scanner.Text())
	}
	nAirports, err := strconv.Atoi(parts[1])
	if err != nil || nAirports < 0 {
		return nil, fmt.Errorf("invalid airports file: line 1: invalid number of airports %q", parts[1])
	}

	scanner.Scan() // skip headers

	entries := make([]entry, 0, nAirports)
	for i := 3; scanner.Scan(); i++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		e, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("invalid airport: line %d: %s", i, err)
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(entries) != nAirports {
		return nil, fmt.Errorf("invalid airports file: want %d airports, got %d", nAirports, len(entries))
	}

	return link(entries)
}

// ParseYAML reads airports in the YAML format.
func ParseYAML(r io.Reader) ([]*routes.Airport, error) {
	var doc struct {
		Airports []entry `yaml:"airports"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("invalid airports file: %s", err)
	}
	for i, e := range doc.Airports {
		if strings.TrimSpace(e.Code) == "" {
			return nil, fmt.Errorf("invalid airport: entry %d: missing code", i)
		}
		for _, d := range []float64{e.LeftDistance, e.RightDistance} {
			if err := checkDistance(d); err != nil {
				return nil, fmt.Errorf("invalid airport: entry %d: %s", i, err)
			}
		}
	}
	return link(doc.Airports)
}

func parseLine(line string) (entry, error) {
	parts := strings.Fields(line)
	if len(parts) != 5 {
		return entry{}, fmt.Errorf("want 5 fields, got %d", len(parts))
	}
	leftDist, err := parseDistance(parts[2])
	if err != nil {
		return entry{}, err
	}
	rightDist, err := parseDistance(parts[4])
	if err != nil {
		return entry{}, err
	}
	e := entry{
		Code:          parts[0],
		LeftDistance:  leftDist,
		RightDistance: rightDist,
	}
	if parts[1] != noLink {
		e.Left = parts[1]
	}
	if parts[3] != noLink {
		e.Right = parts[3]
	}
	return e, nil
}

func parseDistance(s string) (float64, error) {
	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid distance %q", s)
	}
	if err := checkDistance(d); err != nil {
		return 0, err
	}
	return d, nil
}

func checkDistance(d float64) error {
	switch {
	case math.IsNaN(d) || math.IsInf(d, 0):
		return fmt.Errorf("non-finite distance %v", d)
	case d < 0:
		return fmt.Errorf("negative distance %v", d)
	}
	return nil
}

// link turns entries into linked airports. Declared airports come first in
// declaration order, followed by undeclared linked airports in order of first
// reference.
func link(entries []entry) ([]*routes.Airport, error) {
	airports := make([]*routes.Airport, 0, len(entries))
	byCode := make(map[string]*routes.Airport, len(entries))

	for _, e := range entries {
		code := routes.NormalizeCode(e.Code)
		if _, ok := byCode[code]; ok {
			return nil, fmt.Errorf("invalid airport: duplicate code %q", code)
		}
		a := &routes.Airport{Code: code}
		byCode[code] = a
		airports = append(airports, a)
	}

	get := func(code string) *routes.Airport {
		code = routes.NormalizeCode(code)
		if a, ok := byCode[code]; ok {
			return a
		}
		a := &routes.Airport{Code: code}
		byCode[code] = a
		airports = append(airports, a)
		return a
	}

	for i, e := range entries {
		a := airports[i]
		if e.Left != "" {
			a.Left, a.LeftDistance = get(e.Left), e.LeftDistance
		}
		if e.Right != "" {
			a.Right, a.RightDistance = get(e.Right), e.RightDistance
		}
	}

	return airports, nil
}
