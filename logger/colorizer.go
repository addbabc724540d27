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

package logger

import (
	"bufio"
	"bytes"
	"io"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// matches the repeat count added to the end of an entry
var repeatSuffix = regexp.MustCompile(` \(repeat x[0-9]+\)$`)

// Colorizer applies basic coloring rules to logging output. The tag of every
// entry is bold and the repeat count is faint. No color is applied if the
// output is not a terminal.
type Colorizer struct {
	out    io.Writer
	tag    lipgloss.Style
	repeat lipgloss.Style
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) *Colorizer {
	r := lipgloss.NewRenderer(out)
	return &Colorizer{
		out:    out,
		tag:    r.NewStyle().Bold(true),
		repeat: r.NewStyle().Faint(true),
	}
}

// Write implements the io.Writer interface.
func (c *Colorizer) Write(p []byte) (int, error) {
	b := &strings.Builder{}

	scanner := bufio.NewScanner(bytes.NewReader(p))
	for scanner.Scan() {
		line := scanner.Text()

		tag, detail, ok := strings.Cut(line, ": ")
		if !ok {
			b.WriteString(line)
			b.WriteString("\n")
			continue
		}

		var repeat string
		if loc := repeatSuffix.FindStringIndex(detail); loc != nil {
			repeat = detail[loc[0]:]
			detail = detail[:loc[0]]
		}

		b.WriteString(c.tag.Render(tag))
		b.WriteString(": ")
		b.WriteString(detail)
		if repeat != "" {
			b.WriteString(c.repeat.Render(repeat))
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(c.out, b.String())
	if err != nil {
		return 0, err
	}

	return len(p), nil
}
