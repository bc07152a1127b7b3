package scenario

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	quickmath "aabb.theprimeagen.com/pkg/quick-math"
	"gopkg.in/yaml.v3"
)

var ErrMissingRect = errors.New("pair is missing a rectangle")
var ErrDuplicateName = errors.New("duplicate pair name")

// Pair is one overlap question. Expect is nil when the file does not say
// what the answer should be.
type Pair struct {
	Name   string
	A, B   quickmath.Rect
	Expect *bool
}

type Scenario struct {
	Pairs []Pair
}

type pairFile struct {
	Name   string          `yaml:"name"`
	A      *quickmath.Rect `yaml:"a"`
	B      *quickmath.Rect `yaml:"b"`
	Expect *bool           `yaml:"expect"`
}

type scenarioFile struct {
	Pairs []pairFile `yaml:"pairs"`
}

func Parse(data []byte) (Scenario, error) {
	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Scenario{}, fmt.Errorf("scenario: unmarshal: %w", err)
	}

	s := Scenario{Pairs: make([]Pair, 0, len(file.Pairs))}
	seen := map[string]struct{}{}
	for i, p := range file.Pairs {
		if p.Name == "" {
			p.Name = fmt.Sprintf("pair-%d", i)
		}
		if p.A == nil || p.B == nil {
			return Scenario{}, fmt.Errorf("scenario: %s: %w", p.Name, ErrMissingRect)
		}
		if _, ok := seen[p.Name]; ok {
			return Scenario{}, fmt.Errorf("scenario: %s: %w", p.Name, ErrDuplicateName)
		}
		seen[p.Name] = struct{}{}

		s.Pairs = append(s.Pairs, Pair{
			Name:   p.Name,
			A:      *p.A,
			B:      *p.B,
			Expect: p.Expect,
		})
	}

	return s, nil
}

func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: load %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseRect reads "x,y,width,height".
func ParseRect(s string) (quickmath.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return quickmath.ZeroRect, fmt.Errorf("rect %q: expected x,y,width,height", s)
	}

	values := [4]int{}
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return quickmath.ZeroRect, fmt.Errorf("rect %q: %w", s, err)
		}
		values[i] = v
	}

	return quickmath.NewRect(values[0], values[1], values[2], values[3]), nil
}
