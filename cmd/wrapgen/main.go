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

// Command wrapgen generates wrapper functions from a YAML binding table. See
// the wrapgen package for the format of the table.
//
// Usage:
//
//	wrapgen -table wrappers.yaml -out wrappers_gen.go
//
// The -list flag prints a summary of the table instead of generating code.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/jetsetilly/sdl2raii/curated"
	"github.com/jetsetilly/sdl2raii/logger"
	"github.com/jetsetilly/sdl2raii/modalflag"
	"github.com/jetsetilly/sdl2raii/version"
	"github.com/jetsetilly/sdl2raii/wrapgen"
	"golang.org/x/term"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])

	table := md.AddString("table", "wrappers.yaml", "binding table")
	out := md.AddString("out", "", "output file (default is stdout)")
	verbose := md.AddBool("v", false, "echo log to stderr")
	list := md.AddBool("list", false, "list the entries in the table and exit")
	showVersion := md.AddBool("version", false, "print version and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %v\n", err)
		os.Exit(10)
	}

	if *showVersion {
		fmt.Println(version.String())
		os.Exit(0)
	}

	if *verbose {
		if term.IsTerminal(int(os.Stderr.Fd())) {
			logger.SetEcho(logger.NewColorizer(os.Stderr))
		} else {
			logger.SetEcho(os.Stderr)
		}
	}

	if *list {
		err = listTable(*table)
	} else {
		err = run(*table, *out)
	}
	if err != nil {
		fmt.Printf("* %v\n", err)
		os.Exit(20)
	}
}

func load(table string) (*wrapgen.Table, error) {
	f, err := os.Open(table)
	if err != nil {
		return nil, curated.Errorf("wrapgen: %v", err)
	}
	defer f.Close()

	return wrapgen.Load(f)
}

func listTable(table string) error {
	tab, err := load(table)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(tab.Functions))
	for _, e := range tab.Functions {
		call := e.Call
		if e.Method {
			call = fmt.Sprintf("(method) %s", e.Call)
		}
		rows = append(rows, []string{strconv.Itoa(e.Line), e.Name, string(e.Policy), call})
	}

	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		Headers("LINE", "NAME", "POLICY", "CALL").
		Rows(rows...)
	fmt.Println(t.Render())

	return nil
}

func run(table string, out string) error {
	tab, err := load(table)
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "wrapgen", "%s: %d entries for package %s", table, len(tab.Functions), tab.Package)

	if out == "" {
		return wrapgen.Generate(os.Stdout, tab, filepath.Base(table))
	}

	w, err := os.Create(out)
	if err != nil {
		return curated.Errorf("wrapgen: %v", err)
	}

	err = wrapgen.Generate(w, tab, filepath.Base(table))
	if err != nil {
		w.Close()
		os.Remove(out)
		return err
	}

	logger.Logf(logger.Allow, "wrapgen", "written %s", out)

	return w.Close()
}
