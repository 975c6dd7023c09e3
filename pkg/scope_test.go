package zelkel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScopeDeclareAndLookup(t *testing.T) {
	s := NewScopeStack()

	err := s.Declare("x", nil, VariableOptions{Type: Integer})
	assert.NoError(t, err)

	opts := s.Lookup("x")
	assert.NotNil(t, opts)
	assert.Equal(t, Integer, opts.Type)
	assert.False(t, opts.Mutable)

	assert.Nil(t, s.Lookup("y"))
}

func TestScopeRedeclaration(t *testing.T) {
	s := NewScopeStack()

	assert.NoError(t, s.Declare("x", nil, VariableOptions{Type: Integer}))

	loc := &Location{Line: 2, Col: 5}
	err := s.Declare("x", loc, VariableOptions{Type: Integer})
	assert.Error(t, err)

	redecl, ok := err.(*RedeclarationError)
	assert.True(t, ok)
	assert.Equal(t, "x", redecl.Name)
	assert.Equal(t, loc, redecl.Loc)
}

func TestScopeShadowing(t *testing.T) {
	s := NewScopeStack()

	assert.NoError(t, s.Declare("x", nil, VariableOptions{Type: String}))

	s.Enter()

	// A child scope may redeclare a parent's name
	assert.NoError(t, s.Declare("x", nil, VariableOptions{Type: Integer, Mutable: true}))
	assert.Equal(t, Integer, s.Lookup("x").Type)

	// A name declared only in the parent is still visible
	assert.NoError(t, s.Declare("y", nil, VariableOptions{Type: Bool}))
	assert.NotNil(t, s.Lookup("y"))

	assert.NoError(t, s.Exit())

	// Exiting discards the child's declarations en masse
	assert.Equal(t, String, s.Lookup("x").Type)
	assert.Nil(t, s.Lookup("y"))
}

func TestScopeExitGlobal(t *testing.T) {
	s := NewScopeStack()
	assert.Error(t, s.Exit())

	s.Enter()
	assert.NoError(t, s.Exit())
	assert.Error(t, s.Exit())
}

func TestScopeFunctions(t *testing.T) {
	s := NewScopeStack()

	s.DeclareFunction("main")
	s.DeclareFunction("helper")

	assert.Equal(t, []string{"main", "helper"}, s.Current().Functions)
}
