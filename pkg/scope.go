package zelkel

import "errors"

// VariableOptions is the declared contract for a name in a scope.
type VariableOptions struct {
	Mutable bool
	Type    ValueType
}

// Scope is a lexical region. Lookups walk the parent chain outward instead
// of snapshotting the parent on entry, so a child can never mutate what the
// parent sees.
type Scope struct {
	Variables map[string]VariableOptions
	Functions []string

	parent *Scope
}

type ScopeStack struct {
	top *Scope
}

// NewScopeStack starts with the global scope already in place. The global
// scope can never be exited.
func NewScopeStack() *ScopeStack {
	return &ScopeStack{
		top: &Scope{
			Variables: make(map[string]VariableOptions),
		},
	}
}

func (s *ScopeStack) Enter() {
	s.top = &Scope{
		Variables: make(map[string]VariableOptions),
		parent:    s.top,
	}
}

func (s *ScopeStack) Exit() error {
	if s.top.parent == nil {
		return errors.New("cannot exit the global scope")
	}

	s.top = s.top.parent
	return nil
}

// Declare fails when the name already exists in the current scope.
// Shadowing a name from an enclosing scope is allowed.
func (s *ScopeStack) Declare(name string, loc *Location, opts VariableOptions) error {
	if _, exists := s.top.Variables[name]; exists {
		return &RedeclarationError{Loc: loc, Name: name}
	}

	s.top.Variables[name] = opts
	return nil
}

// Lookup resolves a name against the current scope and its ancestors.
// Returns nil when the name is not declared anywhere on the chain.
func (s *ScopeStack) Lookup(name string) *VariableOptions {
	for scope := s.top; scope != nil; scope = scope.parent {
		if opts, ok := scope.Variables[name]; ok {
			return &opts
		}
	}

	return nil
}

func (s *ScopeStack) DeclareFunction(name string) {
	s.top.Functions = append(s.top.Functions, name)
}

// Current exposes the active scope for future consumers of the front end.
func (s *ScopeStack) Current() *Scope {
	return s.top
}
