// This file is part of nstfront.
//
// nstfront is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// nstfront is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with nstfront.  If not, see <https://www.gnu.org/licenses/>.

package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// Modes handles the command line for a program with modes. The Output field
// should be set before calling Parse() or help messages will not be seen.
type Modes struct {
	Output io.Writer

	// a new flag set is created for every mode
	flags *flag.FlagSet

	args    []string
	argsIdx int

	// modes that can be selected by the next call to Parse(). the first entry
	// is the default
	subModes []string

	// every mode selected so far
	path []string

	// flag name to preference key for flags added with AddPref()
	prefs map[string]string

	additionalHelp string
}

func (md *Modes) String() string {
	return strings.Join(md.path, "/")
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// NewArgs sets the arguments to parse and starts a new mode.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode forgets the flags and sub-modes of the previous mode.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.flags.SetOutput(io.Discard)
	md.subModes = md.subModes[:0]
	md.prefs = make(map[string]string)
	md.additionalHelp = ""
}

// AddSubModes adds to the modes that can be selected by the next call to
// Parse(). The first mode added is the default.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AdditionalHelp is printed after the flags when help is requested.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// AddBool flag for the next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddString flag for the next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddFloat64 flag for the next call to Parse().
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// AddPref adds a string flag bound to a preference key. The value of the
// flag is returned by Prefs() if the flag is present on the command line.
func (md *Modes) AddPref(name string, key string, usage string) {
	md.flags.String(name, "", usage)
	md.prefs[name] = key
}

// Prefs returns the values of every flag added with AddPref() that is
// present on the command line, as a string suitable for
// prefs.PushCommandLineStack(). Pairs are in flag name order.
func (md *Modes) Prefs() string {
	var s []string
	md.flags.Visit(func(f *flag.Flag) {
		if key, ok := md.prefs[f.Name]; ok {
			s = append(s, fmt.Sprintf("%s::%s", key, f.Value.String()))
		}
	})
	return strings.Join(s, "; ")
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with the program. if sub-modes were added then check Mode()
	ParseContinue ParseResult = iota

	// help was requested and has been printed to Output
	ParseHelp

	// the command line was not valid. the error is returned alongside this
	// value
	ParseError
)

// Parse the arguments of the current mode.
func (md *Modes) Parse() (ParseResult, error) {
	if len(md.subModes) > 0 {
		if md.argsIdx < len(md.args) && isHelp(md.args[md.argsIdx]) {
			md.help()
			return ParseHelp, nil
		}

		mode := md.subModes[0]
		if md.argsIdx < len(md.args) {
			arg := strings.ToUpper(md.args[md.argsIdx])
			for _, m := range md.subModes {
				if m == arg {
					mode = m
					md.argsIdx++
					break
				}
			}
		}
		md.path = append(md.path, mode)

		return ParseContinue, nil
	}

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err == flag.ErrHelp {
		md.help()
		return ParseHelp, nil
	}
	if err != nil {
		return ParseError, fmt.Errorf("%s: %w", md.banner(), err)
	}

	return ParseContinue, nil
}

func isHelp(arg string) bool {
	switch arg {
	case "-h", "-help", "--help", "--h":
		return true
	}
	return false
}

func (md *Modes) banner() string {
	if len(md.path) == 0 {
		return "usage"
	}
	return fmt.Sprintf("usage for %s mode", md)
}

// help writes a description of the flags and sub-modes to Output.
func (md *Modes) help() {
	if md.Output == nil {
		return
	}

	var b strings.Builder

	var nflags int
	md.flags.VisitAll(func(_ *flag.Flag) {
		nflags++
	})

	if nflags == 0 && len(md.subModes) == 0 {
		b.WriteString("no help available")
		if len(md.path) > 0 {
			fmt.Fprintf(&b, " for %s mode", md)
		}
		b.WriteString("\n")
	} else {
		b.WriteString(md.banner())
		b.WriteString(":\n")

		md.flags.SetOutput(&b)
		md.flags.PrintDefaults()
		md.flags.SetOutput(io.Discard)

		if len(md.subModes) > 0 {
			fmt.Fprintf(&b, "  modes: %s (default %s)\n", strings.Join(md.subModes, ", "), md.subModes[0])
		}
	}

	if md.additionalHelp != "" {
		fmt.Fprintf(&b, "\n%s\n", md.additionalHelp)
	}

	_, _ = io.WriteString(md.Output, b.String())
}

// RemainingArgs returns the arguments that are not flags or modes, after a
// call to Parse().
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument from RemainingArgs(). An empty string
// is returned if there is no such argument.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}
