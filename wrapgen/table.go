// This file is part of sdl2raii.
//
// sdl2raii is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sdl2raii is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sdl2raii.  If not, see <https://www.gnu.org/licenses/>.

package wrapgen

import (
	"go/ast"
	"go/parser"
	"go/types"
	"io"
	"strings"

	"github.com/jetsetilly/sdl2raii/curated"
	"gopkg.in/yaml.v3"
)

// Policy is the errorify policy of a table entry.
type Policy string

// List of valid Policy values.
const (
	Pass        Policy = "pass"
	Checked     Policy = "checked"
	CheckedVoid Policy = "checkedvoid"
	NonZero     Policy = "nonzero"
	Negative    Policy = "negative"
	NonNil      Policy = "nonnil"
	Owned       Policy = "owned"
	OwnedNonNil Policy = "ownednonnil"
)

// usesLastError is true if the policy consults the foreign error channel.
func (p Policy) usesLastError() bool {
	return p == NonZero || p == Negative || p == NonNil || p == OwnedNonNil
}

// owning is true if the policy moves the result into an owning handle.
func (p Policy) owning() bool {
	return p == Owned || p == OwnedNonNil
}

func (p Policy) valid() bool {
	switch p {
	case Pass, Checked, CheckedVoid, NonZero, Negative, NonNil, Owned, OwnedNonNil:
		return true
	}
	return false
}

// Table is the binding table for a single wrapper package.
type Table struct {
	Package   string   `yaml:"package"`
	Imports   []string `yaml:"imports"`
	LastError string   `yaml:"lasterror"`
	Functions []Entry  `yaml:"functions"`
}

// Entry describes one generated wrapper.
type Entry struct {
	// the name of the generated function
	Name string `yaml:"name"`

	// the foreign symbol. if Method is true then Call is the name of a method
	// on the first parameter
	Call   string `yaml:"call"`
	Method bool   `yaml:"method"`

	// parameter list without the surrounding parenthesis. every parameter
	// must be named
	Params string `yaml:"params"`

	// the type returned by the foreign call, not including any error
	Returns string `yaml:"returns"`

	Policy Policy `yaml:"policy"`

	// the owning handle type for the owned policies
	Handle string `yaml:"handle"`

	// optional documentation. a single line is generated if this is empty
	Doc string `yaml:"doc"`

	// line in the table where the entry begins
	Line int `yaml:"-"`

	params   []param
	variadic bool
}

type param struct {
	name string
	typ  string
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (e *Entry) UnmarshalYAML(value *yaml.Node) error {
	type plain Entry
	if err := value.Decode((*plain)(e)); err != nil {
		return err
	}
	e.Line = value.Line
	return nil
}

// names that the generated code uses for its own purposes
var reserved = map[string]bool{
	"raw":      true,
	"v":        true,
	"err":      true,
	"bind":     true,
	"mayerror": true,
}

// Load reads and validates a binding table.
func Load(r io.Reader) (*Table, error) {
	tab := &Table{}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(tab); err != nil {
		return nil, curated.Errorf("wrapgen: %v", err)
	}

	if err := tab.validate(); err != nil {
		return nil, curated.Errorf("wrapgen: %v", err)
	}

	return tab, nil
}

func (tab *Table) validate() error {
	if tab.Package == "" {
		return curated.Errorf("table has no package name")
	}

	names := make(map[string]int)

	for i := range tab.Functions {
		e := &tab.Functions[i]

		if e.Name == "" {
			return curated.Errorf("entry has no name [line %d]", e.Line)
		}
		if l, ok := names[e.Name]; ok {
			return curated.Errorf("%s: duplicate entry (first seen on line %d) [line %d]", e.Name, l, e.Line)
		}
		names[e.Name] = e.Line

		if e.Call == "" {
			return curated.Errorf("%s: entry has no call [line %d]", e.Name, e.Line)
		}
		if e.Policy == "" {
			e.Policy = Pass
		}
		if !e.Policy.valid() {
			return curated.Errorf("%s: unknown policy (%s) [line %d]", e.Name, e.Policy, e.Line)
		}

		switch e.Policy {
		case Pass, CheckedVoid:
		default:
			if e.Returns == "" {
				return curated.Errorf("%s: policy %s requires a return type [line %d]", e.Name, e.Policy, e.Line)
			}
		}

		if e.Policy.owning() && e.Handle == "" {
			return curated.Errorf("%s: policy %s requires a handle type [line %d]", e.Name, e.Policy, e.Line)
		}
		if e.Policy.usesLastError() && tab.LastError == "" {
			return curated.Errorf("%s: policy %s requires a lasterror function [line %d]", e.Name, e.Policy, e.Line)
		}

		if err := e.parseParams(); err != nil {
			return curated.Errorf("%s: %v [line %d]", e.Name, err, e.Line)
		}

		if e.Method && len(e.params) == 0 {
			return curated.Errorf("%s: method entry has no receiver [line %d]", e.Name, e.Line)
		}
	}

	return nil
}

func (e *Entry) parseParams() error {
	e.params = e.params[:0]
	e.variadic = false

	if strings.TrimSpace(e.Params) == "" {
		return nil
	}

	expr, err := parser.ParseExpr("func(" + e.Params + ")")
	if err != nil {
		return curated.Errorf("cannot parse parameters: %v", err)
	}

	ft, ok := expr.(*ast.FuncType)
	if !ok {
		return curated.Errorf("cannot parse parameters: %s", e.Params)
	}

	for _, f := range ft.Params.List {
		if len(f.Names) == 0 {
			return curated.Errorf("parameters must be named")
		}
		if _, ok := f.Type.(*ast.Ellipsis); ok {
			e.variadic = true
		}
		for _, n := range f.Names {
			if reserved[n.Name] {
				return curated.Errorf("parameter name is reserved (%s)", n.Name)
			}
			e.params = append(e.params, param{name: n.Name, typ: types.ExprString(f.Type)})
		}
	}

	return nil
}
