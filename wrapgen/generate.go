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
	"bytes"
	"fmt"
	"go/format"
	"io"
	"sort"
	"strings"
	"text/template"

	"github.com/jetsetilly/sdl2raii/curated"
)

// Header is placed at the top of every generated file.
const Header = `// This file is part of sdl2raii.
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
`

const bindImport = "github.com/jetsetilly/sdl2raii/bind"
const mayerrorImport = "github.com/jetsetilly/sdl2raii/mayerror"

var fileTemplate = template.Must(template.New("file").Parse(`{{.Header}}
// Code generated by wrapgen from {{.Source}}. DO NOT EDIT.

package {{.Package}}
{{if .Imports}}
import (
{{- range .Imports}}
	"{{.}}"
{{- end}}
)
{{end}}
{{- range .Functions}}
{{range .Doc}}// {{.}}
{{end -}}
func {{.Name}}({{.Params}}){{if .Result}} {{.Result}}{{end}} {
{{- range .Body}}
	{{.}}
{{- end}}
}
{{end}}`))

type fileView struct {
	Header    string
	Source    string
	Package   string
	Imports   []string
	Functions []functionView
}

type functionView struct {
	Doc    []string
	Name   string
	Params string
	Result string
	Body   []string
}

// Generate writes the wrappers described by the table to w. The source
// argument names the table in the generated header.
func Generate(w io.Writer, tab *Table, source string) error {
	view := fileView{
		Header:  Header,
		Source:  source,
		Package: tab.Package,
	}

	imports := make(map[string]bool)
	for _, i := range tab.Imports {
		imports[i] = true
	}

	for _, e := range tab.Functions {
		if e.Policy != Pass {
			imports[bindImport] = true
			imports[mayerrorImport] = true
		}
		view.Functions = append(view.Functions, e.view(tab.LastError))
	}

	for i := range imports {
		view.Imports = append(view.Imports, i)
	}
	sort.Strings(view.Imports)

	b := &bytes.Buffer{}
	if err := fileTemplate.Execute(b, view); err != nil {
		return curated.Errorf("wrapgen: %v", err)
	}

	src, err := format.Source(b.Bytes())
	if err != nil {
		return curated.Errorf("wrapgen: %v", err)
	}

	_, err = w.Write(src)
	if err != nil {
		return curated.Errorf("wrapgen: %v", err)
	}

	return nil
}

// the expression that invokes the foreign symbol
func (e Entry) callExpr() string {
	args := make([]string, 0, len(e.params))
	for _, p := range e.params {
		args = append(args, p.name)
	}
	if e.variadic {
		args[len(args)-1] += "..."
	}

	if e.Method {
		return fmt.Sprintf("%s.%s(%s)", args[0], e.Call, strings.Join(args[1:], ", "))
	}
	return fmt.Sprintf("%s(%s)", e.Call, strings.Join(args, ", "))
}

// the foreign symbol as it would be written in documentation
func (e Entry) symbol() string {
	if e.Method {
		return fmt.Sprintf("(%s).%s", e.params[0].typ, e.Call)
	}
	return e.Call
}

// the constructor for the handle type. a handle type from another package is
// constructed by the function of the same package
func (e Entry) constructor() string {
	if i := strings.LastIndex(e.Handle, "."); i >= 0 {
		return e.Handle[:i+1] + "New" + e.Handle[i+1:]
	}
	return "New" + e.Handle
}

func (e Entry) view(lastError string) functionView {
	v := functionView{
		Name:   e.Name,
		Params: strings.TrimSpace(e.Params),
	}

	if e.Doc != "" {
		v.Doc = strings.Split(strings.TrimSpace(e.Doc), "\n")
	} else {
		v.Doc = []string{fmt.Sprintf("%s wraps %s.", e.Name, e.symbol())}
	}

	call := e.callExpr()

	switch e.Policy {
	case Pass:
		v.Result = e.Returns
		if e.Returns == "" {
			v.Body = []string{call}
		} else {
			v.Body = []string{"return " + call}
		}
	case Checked:
		v.Result = fmt.Sprintf("mayerror.MayError[%s]", e.Returns)
		v.Body = []string{
			fmt.Sprintf("v, err := %s", call),
			"return bind.Checked(v, err)",
		}
	case CheckedVoid:
		v.Result = "mayerror.Void"
		v.Body = []string{fmt.Sprintf("return bind.CheckedVoid(%s)", call)}
	case NonZero:
		v.Result = fmt.Sprintf("mayerror.MayError[%s]", e.Returns)
		v.Body = []string{fmt.Sprintf("return bind.NonZero(%s, %s)", call, lastError)}
	case Negative:
		v.Result = fmt.Sprintf("mayerror.MayError[%s]", e.Returns)
		v.Body = []string{fmt.Sprintf("return bind.Negative(%s, %s)", call, lastError)}
	case NonNil:
		v.Result = fmt.Sprintf("mayerror.MayError[%s]", e.Returns)
		v.Body = []string{fmt.Sprintf("return bind.NonNil(%s, %s)", call, lastError)}
	case Owned:
		v.Result = fmt.Sprintf("mayerror.MayError[*%s]", e.Handle)
		v.Body = []string{
			fmt.Sprintf("raw, err := %s", call),
			fmt.Sprintf("return bind.OwnedChecked(raw, err, %s)", e.constructor()),
		}
	case OwnedNonNil:
		v.Result = fmt.Sprintf("mayerror.MayError[*%s]", e.Handle)
		v.Body = []string{fmt.Sprintf("return bind.Owned(%s, %s, %s)", call, lastError, e.constructor())}
	}

	return v
}
