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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/TomHarte/CLK-sub007/easyterm"
	"github.com/TomHarte/CLK-sub007/hardware/clocks"
	"github.com/TomHarte/CLK-sub007/hardware/cpu/arm"
	"github.com/TomHarte/CLK-sub007/hardware/cpu/mos6502"
	"github.com/TomHarte/CLK-sub007/hardware/machine"
	"github.com/TomHarte/CLK-sub007/logger"
	"github.com/TomHarte/CLK-sub007/modalflag"
	"github.com/TomHarte/CLK-sub007/performance"
	"github.com/TomHarte/CLK-sub007/performance/limiter"
	"github.com/TomHarte/CLK-sub007/prefs"
	"github.com/TomHarte/CLK-sub007/statsview"
	"github.com/TomHarte/CLK-sub007/version"
	"github.com/TomHarte/CLK-sub007/wavwriter"
)

// the program used when no program file is given. an infinite loop that
// toggles the beeper and pokes the stall controller
//
//	0200  8d 30 c0  STA $c030
//	0203  a9 03     LDA #$03
//	0205  8d 40 c0  STA $c040
//	0208  4c 00 02  JMP $0200
var defaultProgram = []uint8{
	0x8d, 0x30, 0xc0,
	0xa9, 0x03,
	0x8d, 0x40, 0xc0,
	0x4c, 0x00, 0x02,
}

const defaultOrigin = 0x0200

// the number of times per second that the machine is allowed to run when
// running in realtime
const realtimeRate = 50

// exit values
const (
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	// interrupt handling is done by the individual modes
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	os.Exit(launch(os.Stdout, os.Args[1:], intChan))
}

// launch the mode specified by the command line arguments. returns the value
// to use with os.Exit()
func launch(output io.Writer, args []string, intChan chan os.Signal) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "STEP", "DECODE", "PERFORMANCE")

	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(output)
		} else {
			fmt.Fprintln(output, "! stats server not available in this build")
		}
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, intChan)

	case "STEP":
		err = step(md)

	case "DECODE":
		err = decode(md)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return 0
}

// create a machine with the program loaded from the file named in the first
// remaining argument. the default program is used if there is no argument.
// command line preferences are in the prefs format (eg. "slice::16")
func newMachine(md *modalflag.Modes, origin uint16, commandLinePrefs string, trace bool) (*machine.Machine, error) {
	program := defaultProgram
	if origin != defaultOrigin && len(md.RemainingArgs()) == 0 {
		return nil, fmt.Errorf("origin of the default program cannot be changed")
	}

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		var err error
		program, err = os.ReadFile(md.GetArg(0))
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	prefs.PushCommandLineStack(commandLinePrefs)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "clk", "unused preferences: %s", unused)
		}
	}()

	p, err := machine.NewPreferences("")
	if err != nil {
		return nil, err
	}

	m, err := machine.NewMachine(p, nil, trace)
	if err != nil {
		return nil, err
	}

	err = m.LoadProgram(origin, program)
	if err != nil {
		return nil, err
	}
	m.Reset()

	return m, nil
}

func printTrace(output io.Writer, m *machine.Machine) {
	if m.Trace == nil {
		return
	}
	for _, r := range m.Trace.Records {
		fmt.Fprintln(output, r.String())
	}
	m.Trace.Reset()
}

func run(md *modalflag.Modes, intChan chan os.Signal) error {
	md.NewMode()

	origin := md.AddAddress("origin", defaultOrigin, "address at which to load the program")
	cycles := md.AddCycles("cycles", 1000000, "number of cycles to run for (k and m suffixes allowed)")
	trace := md.AddBool("trace", false, "print every bus operation")
	wav := md.AddString("wav", "", "record beeper to wav file")
	commandLinePrefs := md.AddString("prefs", "", "machine preferences (eg. \"waitstates::2; slice::16\")")
	memvizFile := md.AddString("memviz", "", "write graph of CPU state to file in dot format")
	realtime := md.AddBool("realtime", false, "limit emulation to the speed of the clock")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(md.Output)
	} else {
		logger.SetEcho(nil)
	}

	m, err := newMachine(md, *origin, *commandLinePrefs, *trace)
	if err != nil {
		return err
	}

	fmt.Fprintln(md.Output, version.Banner())

	// add wavwriter as the beeper sink if wav argument has been specified
	var ww *wavwriter.WavWriter
	if *wav != "" {
		ww, err = wavwriter.New(*wav, m.SampleRate())
		if err != nil {
			return err
		}
		m.Beeper.Peek().SetSink(ww)
	}

	interrupted := false
	continueCheck := func() (bool, error) {
		printTrace(md.Output, m)
		select {
		case <-intChan:
			interrupted = true
			return false, nil
		default:
		}
		return true, nil
	}

	if *realtime {
		lim := limiter.NewLimiter(realtimeRate)
		defer lim.Stop()

		perFrame := clocks.Cycles(m.Prefs.Clock.Get().(float64) * 1000000 / realtimeRate)
		remaining := clocks.Cycles(*cycles)
		for remaining > 0 && !interrupted {
			n := min(perFrame, remaining)
			err = m.Run(n, continueCheck)
			if err != nil {
				return err
			}
			remaining -= n
			lim.Wait()
		}
	} else {
		err = m.Run(clocks.Cycles(*cycles), continueCheck)
		if err != nil {
			return err
		}
	}

	if interrupted {
		fmt.Fprintln(md.Output, "! interrupted")
	}

	fmt.Fprintln(md.Output, m.String())
	fmt.Fprintf(md.Output, "%d cycles: %s\n", m.CPU.Elapsed(), m.CPU.LastDefinition())
	fmt.Fprintf(md.Output, "beeper: %s\n", m.Beeper.Get())
	fmt.Fprintf(md.Output, "stall: %s\n", m.Stall.Get())

	if ww != nil {
		m.Flush()
		err = ww.EndMixing()
		if err != nil {
			return err
		}
	}

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return err
		}
		defer f.Close()

		state := m.CPU.Snapshot()
		memviz.Map(f, &state)
	}

	return nil
}

func step(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddAddress("origin", defaultOrigin, "address at which to load the program")
	cycles := md.AddCycles("cycles", 1, "number of cycles to run for each key press")
	commandLinePrefs := md.AddString("prefs", "", "machine preferences (eg. \"waitstates::2\")")

	md.AdditionalHelp("Press space or return to run the machine. Press + or - to change the number of cycles. Press q to quit.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	m, err := newMachine(md, *origin, *commandLinePrefs, true)
	if err != nil {
		return err
	}

	term, err := easyterm.NewTerminal(os.Stdout)
	if err != nil {
		if errors.Is(err, easyterm.NotATerminal) {
			return fmt.Errorf("%s mode requires a terminal", md)
		}
		return err
	}
	defer term.CleanUp()

	err = term.CBreakMode()
	if err != nil {
		return err
	}

	slice := clocks.Cycles(*cycles)
	term.Print("%s\r\n%s\r\n", version.Banner(), m.CPU.ResumePoint())

	for {
		key, err := term.ReadKey()
		if err != nil {
			return err
		}

		if easyterm.IsQuit(key) {
			term.Print("\r\n")
			return nil
		}

		switch key {
		case '+':
			slice *= 2
			term.Print("! %d cycles per step\r\n", slice)
		case '-':
			slice = max(slice/2, 1)
			term.Print("! %d cycles per step\r\n", slice)
		case easyterm.KeySpace, easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			m.CPU.RunFor(slice)
			for _, r := range m.Trace.Records {
				term.Print("%s\r\n", r)
			}
			m.Trace.Reset()
			term.Print("%s\r\n%s\r\n", m.CPU, m.CPU.ResumePoint())
		}
	}
}

// parse a hex value, with or without a 0x or $ prefix
func parseHex(s string) (uint64, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	s = strings.TrimPrefix(s, "$")
	return strconv.ParseUint(s, 16, 32)
}

func decode(md *modalflag.Modes) error {
	md.NewMode()

	cpu := md.AddString("cpu", "ARM", "instruction set: ARM, 6502")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	args := md.RemainingArgs()
	if len(args) == 0 {
		return fmt.Errorf("opcode required for %s mode", md)
	}

	switch strings.ToUpper(*cpu) {
	case "ARM":
		for _, a := range args {
			v, err := parseHex(a)
			if err != nil {
				return fmt.Errorf("%s: not a hex value", a)
			}
			ins := arm.Instruction(v)
			fmt.Fprintf(md.Output, "%08x  %-12s %-4s %s\n", uint32(ins), ins.Operation(), ins.Condition(), ins.String())
		}

	case "6502":
		for _, a := range args {
			v, err := parseHex(a)
			if err != nil || v > 0xff {
				return fmt.Errorf("%s: not an 8 bit hex value", a)
			}
			fmt.Fprintln(md.Output, mos6502.GetDefinition(uint8(v)))
		}

	default:
		return fmt.Errorf("unknown instruction set: %s", *cpu)
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddAddress("origin", defaultOrigin, "address at which to load the program")
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "run performance check with profiling: comma separated CPU, MEM, TRACE or ALL")
	commandLinePrefs := md.AddString("prefs", "", "machine preferences (eg. \"slice::1024\")")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(md.Output)
	} else {
		logger.SetEcho(nil)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	m, err := newMachine(md, *origin, *commandLinePrefs, false)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, m, *duration, performance.Leadtime)
}
