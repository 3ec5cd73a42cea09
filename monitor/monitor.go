// This file is part of GopherBorg.
//
// GopherBorg is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherBorg is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherBorg.  If not, see <https://www.gnu.org/licenses/>.

package monitor

import (
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/gopherborg/curated"
	"github.com/jetsetilly/gopherborg/hardware/borg"
	"github.com/jetsetilly/gopherborg/hardware/memory/bus"
	"github.com/jetsetilly/gopherborg/hardware/tqv"
	"github.com/jetsetilly/gopherborg/monitor/easyterm"
	"github.com/jetsetilly/gopherborg/monitor/easyterm/ansi"
)

// sentinel error pattern indicating the user has asked to leave the monitor.
const quitMonitor = "monitor: quit"

// Monitor is an interactive terminal onto the modelled peripheral.
type Monitor struct {
	host *tqv.TQV

	// register inspection is through the debug bus so that the monitor never
	// disturbs the clock
	dbg bus.DebugBus

	term easyterm.Terminal
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(mode borg.ArithMode, settle int) (*Monitor, error) {
	mon := &Monitor{
		host: tqv.NewTQV(mode, settle),
	}
	mon.dbg = mon.host.Periph
	mon.host.Reset()

	if err := mon.term.Initialise(os.Stdin, os.Stdout); err != nil {
		return nil, curated.Errorf("monitor: %v", err)
	}

	return mon, nil
}

// Run the monitor loop until the user quits. The terminal is restored to
// canonical mode on return.
func (mon *Monitor) Run() error {
	mon.term.CBreakMode()
	defer mon.term.CleanUp()

	mon.term.Print("%s (settle latency %d). type HELP for commands\n",
		mon.host.Periph.Mode(), mon.host.Periph.SettleLatency())

	for {
		mon.term.Print("%sborg>%s ", ansi.Pens["cyan"], ansi.NormalPen)

		line, err := mon.readLine()
		if err != nil {
			if curated.Is(err, quitMonitor) {
				return nil
			}
			return err
		}

		if err := mon.command(strings.Fields(line)); err != nil {
			if curated.Is(err, quitMonitor) {
				return nil
			}
			mon.term.Print("%s%v%s\n", ansi.Pens["red"], err, ansi.NormalPen)
		}
	}
}

// readLine gathers a line of input a key at a time. only the backspace key is
// given any special meaning; there is no cursor movement or history.
func (mon *Monitor) readLine() (string, error) {
	s := strings.Builder{}

	for {
		r, err := mon.term.ReadRune()
		if err != nil {
			if err == io.EOF {
				return "", curated.Errorf(quitMonitor)
			}
			return "", curated.Errorf("monitor: %v", err)
		}

		switch r {
		case '\n', '\r':
			mon.term.Print("\n")
			return s.String(), nil

		case 0x03, 0x04: // ctrl-c and ctrl-d
			mon.term.Print("\n")
			return "", curated.Errorf(quitMonitor)

		case 0x08, 0x7f: // backspace and delete
			if s.Len() > 0 {
				t := s.String()
				s.Reset()
				s.WriteString(t[:len(t)-1])
				mon.term.Print("\b \b")
			}

		default:
			if r >= 0x20 && r < 0x7f {
				s.WriteRune(r)
				mon.term.Print("%c", r)
			}
		}
	}
}
