// This file is part of Cyclestep.
//
// Cyclestep is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Cyclestep is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Cyclestep.  If not, see <https://www.gnu.org/licenses/>.

// The generator program writes the switch statements used by the dispatch
// package.
package main

import (
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
)

const leadingBoilerPlate = "// generated code - do not change\n\n" +
	"package dispatch\n\n" +
	"// MaxIndex is the number of cases in the generated switch statements\n" +
	"const MaxIndex = %d\n"

func generate(name string, cases int, converted bool) string {
	s := strings.Builder{}

	if converted {
		s.WriteString(fmt.Sprintf("\nfunc %s(seq Sequencer, start int, end int, convert func(int) int) {\n", name))
	} else {
		s.WriteString(fmt.Sprintf("\nfunc %s(seq Sequencer, start int, end int) {\n", name))
	}
	s.WriteString("switch start {\n")

	for i := 0; i < cases; i++ {
		s.WriteString(fmt.Sprintf("case %d:\n", i))
		if converted {
			s.WriteString(fmt.Sprintf("seq.Perform(convert(%d))\n", i))
		} else {
			s.WriteString(fmt.Sprintf("seq.Perform(%d)\n", i))
		}

		// the last case does not fall through
		if i < cases-1 {
			s.WriteString(fmt.Sprintf("if end == %d {\nreturn\n}\n", i+1))
			s.WriteString("fallthrough\n")
		}
	}

	s.WriteString("}\n}\n")
	return s.String()
}

func main() {
	var cases int
	var out string

	flag.IntVar(&cases, "max", 256, "number of cases in each switch")
	flag.StringVar(&out, "out", "switch_gen.go", "output file")
	flag.Parse()

	if cases < 1 {
		fmt.Printf("error during dispatch generation: max must be at least one (%d)\n", cases)
		os.Exit(10)
	}

	output := fmt.Sprintf(leadingBoilerPlate, cases)
	output = fmt.Sprintf("%s%s", output, generate("dispatch", cases, false))
	output = fmt.Sprintf("%s%s", output, generate("dispatchConverted", cases, true))

	// format code using standard Go formatted
	formattedOutput, err := format.Source([]byte(output))
	if err != nil {
		fmt.Printf("error during dispatch generation: %s\n", err)
		os.Exit(10)
	}

	// create output file (over-writing) if it already exists
	f, err := os.Create(out)
	if err != nil {
		fmt.Printf("error during dispatch generation: %s\n", err)
		os.Exit(10)
	}
	defer f.Close()

	_, err = f.Write(formattedOutput)
	if err != nil {
		fmt.Printf("error during dispatch generation: %s\n", err)
		os.Exit(10)
	}
}
