package hull

import (
	"fmt"
	"os"

	"github.com/schqiushui/isl/internal/bigseq"
	"github.com/schqiushui/isl/polytope"
	"gopkg.in/yaml.v3"
)

// ConstraintSpec is one affine row (constant first, then coefficients)
// as it appears in a scenario fixture file.
type ConstraintSpec struct {
	Coeffs []int64 `yaml:"coeffs"`
}

// PolyhedronSpec is one constituent of a scenario's union.
type PolyhedronSpec struct {
	Equalities   []ConstraintSpec `yaml:"equalities"`
	Inequalities []ConstraintSpec `yaml:"inequalities"`
}

// Scenario is a named, fully concrete test fixture: an ambient
// dimension, a union of polyhedra, and the expected result of
// whichever operation the test that loads it exercises.
type Scenario struct {
	Name    string           `yaml:"name"`
	Dim     int              `yaml:"dim"`
	Members []PolyhedronSpec `yaml:"members"`
	Expect  PolyhedronSpec   `yaml:"expect"`
}

// LoadScenarios reads a YAML fixture file holding a list of Scenario
// entries, the parametric-scenario loading path SPEC_FULL.md's test
// plan calls for (scenarios 5 and 6 of spec.md §8's concrete list).
func LoadScenarios(path string) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("hull: opening scenario fixture: %w", err)
	}
	defer f.Close()

	var scenarios []Scenario
	if err := yaml.NewDecoder(f).Decode(&scenarios); err != nil {
		return nil, fmt.Errorf("hull: decoding scenario fixture: %w", err)
	}
	return scenarios, nil
}

// Set builds the polytope.Set this scenario's members describe.
func (s Scenario) Set() (*polytope.Set, error) {
	members := make([]*polytope.Polyhedron, len(s.Members))
	for i, spec := range s.Members {
		members[i] = spec.polyhedron(s.Dim)
	}
	return polytope.NewSet(s.Dim, members...)
}

// ExpectedPolyhedron builds the polyhedron this scenario's Expect
// block describes, for comparison against a computed result.
func (s Scenario) ExpectedPolyhedron() *polytope.Polyhedron {
	return s.Expect.polyhedron(s.Dim)
}

func (p PolyhedronSpec) polyhedron(dim int) *polytope.Polyhedron {
	out := polytope.New(dim)
	for _, c := range p.Equalities {
		row := out.AllocEquality()
		fillForm(row, c.Coeffs)
	}
	for _, c := range p.Inequalities {
		row := out.AllocInequality()
		fillForm(row, c.Coeffs)
	}
	return out
}

func fillForm(row bigseq.Form, coeffs []int64) {
	for i, v := range coeffs {
		if i >= len(row) {
			break
		}
		row[i].SetInt64(v)
	}
}
