// Package typescope implements the nested lexical environments the
// checker threads through its traversal: three disjoint namespaces — variables, functions, and types — with
// parent-walking lookup and same-scope redeclaration errors.
package typescope

import (
	"fmt"

	"github.com/theQuarky/tspp/internal/types"
)

// Scope is one lexical environment. The root scope (created by New with
// a nil parent) is the built-in scope and should be pre-populated with
// only the primitive types.
type Scope struct {
	variables map[string]types.Type
	functions map[string]types.Type
	typesTbl  map[string]types.Type
	parent    *Scope
}

func New(parent *Scope) *Scope {
	return &Scope{
		variables: map[string]types.Type{},
		functions: map[string]types.Type{},
		typesTbl:  map[string]types.Type{},
		parent:    parent,
	}
}

// CreateChild returns a new scope nested under s.
func (s *Scope) CreateChild() *Scope { return New(s) }

// DeclareVariable installs name in s's own scope. Redeclaring a name
// already present in this exact scope is an error; shadowing a name from
// an outer scope is allowed and silent.
func (s *Scope) DeclareVariable(name string, t types.Type) error {
	if _, exists := s.variables[name]; exists {
		return fmt.Errorf("variable %q already declared in this scope", name)
	}

	s.variables[name] = t

	return nil
}

func (s *Scope) DeclareFunction(name string, t types.Type) error {
	if _, exists := s.functions[name]; exists {
		return fmt.Errorf("function %q already declared in this scope", name)
	}

	s.functions[name] = t

	return nil
}

func (s *Scope) DeclareType(name string, t types.Type) error {
	if _, exists := s.typesTbl[name]; exists {
		return fmt.Errorf("type %q already declared in this scope", name)
	}

	s.typesTbl[name] = t

	return nil
}

func (s *Scope) LookupVariable(name string) (types.Type, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if t, ok := sc.variables[name]; ok {
			return t, true
		}
	}

	return nil, false
}

func (s *Scope) LookupFunction(name string) (types.Type, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if t, ok := sc.functions[name]; ok {
			return t, true
		}
	}

	return nil, false
}

func (s *Scope) LookupType(name string) (types.Type, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if t, ok := sc.typesTbl[name]; ok {
			return t, true
		}
	}

	return nil, false
}

// NewBuiltinScope returns the root scope pre-populated with only the
// primitive types.
func NewBuiltinScope() *Scope {
	s := New(nil)
	s.typesTbl["void"] = types.Void
	s.typesTbl["int"] = types.Int
	s.typesTbl["float"] = types.Float
	s.typesTbl["bool"] = types.Bool
	s.typesTbl["string"] = types.String

	return s
}
