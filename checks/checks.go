// Package checks describes the assertions a run evaluates. A Suite is an ordered list of Groups, one per function
// under test, and each Group carries the literal cases evaluated against that function.
package checks

import (
	"fmt"

	"github.com/gruntwork-io/arith-checker/arith"
)

// BinaryFunc is the shape of every function a Case can exercise.
type BinaryFunc func(a, b float64) float64

// Case is a single assertion: Fn(A, B) must equal Expected exactly.
type Case struct {
	Name     string
	Fn       BinaryFunc
	A        float64
	B        float64
	Expected float64
	Message  string
}

// Eval computes the actual value for the case.
func (c Case) Eval() float64 {
	return c.Fn(c.A, c.B)
}

// Group is the set of cases for one function. Name is the function name used in status lines.
type Group struct {
	Name  string
	Cases []Case
}

type Suite []Group

// Names returns the group names in suite order.
func (s Suite) Names() []string {
	names := make([]string, 0, len(s))
	for _, group := range s {
		names = append(names, group.Name)
	}
	return names
}

// Select returns the groups whose names appear in names, keeping suite order. An empty names list selects the whole
// suite. A name that matches no group returns an UnknownGroup error.
func (s Suite) Select(names []string) (Suite, error) {
	if len(names) == 0 {
		return s, nil
	}

	wanted := map[string]bool{}
	for _, name := range names {
		wanted[name] = true
	}

	selected := Suite{}
	for _, group := range s {
		if wanted[group.Name] {
			selected = append(selected, group)
			delete(wanted, group.Name)
		}
	}

	for _, name := range names {
		if wanted[name] {
			return nil, UnknownGroup{Name: name, Known: s.Names()}
		}
	}

	return selected, nil
}

// Default builds the fixed suite. A new value is returned on every call so runs never share state.
func Default() Suite {
	return Suite{
		{
			Name: "add",
			Cases: []Case{
				newCase("add", arith.Add, 2, 3, 5),
				newCase("add", arith.Add, -1, 1, 0),
			},
		},
		{
			Name: "multiply",
			Cases: []Case{
				newCase("multiply", arith.Multiply, 2, 3, 6),
				newCase("multiply", arith.Multiply, 5, 0, 0),
			},
		},
	}
}

func newCase(fnName string, fn BinaryFunc, a, b, expected float64) Case {
	name := fmt.Sprintf("%s(%v, %v)", fnName, a, b)
	return Case{
		Name:     name,
		Fn:       fn,
		A:        a,
		B:        b,
		Expected: expected,
		Message:  fmt.Sprintf("%s should equal %v", name, expected),
	}
}

type UnknownGroup struct {
	Name  string
	Known []string
}

func (err UnknownGroup) Error() string {
	return fmt.Sprintf("Unknown check group \"%s\", must be one of: %v", err.Name, err.Known)
}
