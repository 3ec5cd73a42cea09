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
	"bytes"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gopherborg/curated"
	"github.com/jetsetilly/gopherborg/hardware/borg"
	"github.com/jetsetilly/gopherborg/hardware/memory/addresses"
	"github.com/jetsetilly/gopherborg/logger"
)

const commandError = "monitor: %v"

const helpText = `  PEEK <A|B|RESULT>        read a register (no clocking side effects)
  POKE <A|B> <value>       write an operand register
  STEP [n]                 pulse the clock n times (default 1)
  RESET                    reset the peripheral and cycle counter
  CYCLES                   show the cycle count since the last reset
  LOG                      show the tail of the central log
  VIZ <file>               write a graphviz visualisation of the hardware
  QUIT                     leave the monitor`

func (mon *Monitor) command(tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	switch strings.ToUpper(tokens[0]) {
	case "HELP":
		mon.term.Print("%s\n", helpText)

	case "QUIT", "EXIT":
		return curated.Errorf(quitMonitor)

	case "PEEK":
		if len(tokens) != 2 {
			return curated.Errorf(commandError, "PEEK requires a register name")
		}
		address, err := registerAddress(tokens[1])
		if err != nil {
			return err
		}
		v, err := mon.dbg.Peek(address)
		if err != nil {
			return err
		}
		mon.printWord(addresses.ReadSymbols[address], v)

	case "POKE":
		if len(tokens) != 3 {
			return curated.Errorf(commandError, "POKE requires a register name and a value")
		}
		address, err := registerAddress(tokens[1])
		if err != nil {
			return err
		}
		data, err := parseWord(tokens[2])
		if err != nil {
			return err
		}
		if err := mon.dbg.Poke(address, data); err != nil {
			return err
		}
		logger.Logf(logger.Allow, "monitor", "poked %s with %#08x", addresses.WriteSymbols[address], data)

	case "STEP":
		n := 1
		if len(tokens) > 1 {
			var err error
			n, err = strconv.Atoi(tokens[1])
			if err != nil || n < 1 {
				return curated.Errorf(commandError, "STEP requires a positive cycle count")
			}
		}
		mon.host.ClockCycles(n)

	case "RESET":
		mon.host.Reset()

	case "CYCLES":
		mon.term.Print("%d\n", mon.host.Cycles())

	case "LOG":
		logger.Tail(logWriter{mon}, 10)

	case "VIZ":
		if len(tokens) != 2 {
			return curated.Errorf(commandError, "VIZ requires a filename")
		}
		buf := &bytes.Buffer{}
		memviz.Map(buf, mon.host)
		if err := os.WriteFile(tokens[1], buf.Bytes(), 0644); err != nil {
			return curated.Errorf(commandError, err)
		}
		mon.term.Print("written to %s\n", tokens[1])

	default:
		return curated.Errorf(commandError, "unrecognised command. type HELP")
	}

	return nil
}

// printWord shows the raw bits of a register and, for the float variant of
// the peripheral, its binary32 interpretation.
func (mon *Monitor) printWord(symbol string, v uint32) {
	if mon.host.Periph.Mode() == borg.Float {
		mon.term.Print("%s = %#08x (%v)\n", symbol, v, math.Float32frombits(v))
	} else {
		mon.term.Print("%s = %#08x (%d)\n", symbol, v, v)
	}
}

func registerAddress(symbol string) (uint16, error) {
	address, ok := addresses.Lookup(strings.ToUpper(symbol))
	if !ok {
		return 0, curated.Errorf(commandError, "no such register")
	}
	return address, nil
}

// parseWord accepts decimal, hex (0x prefix) and float (f suffix) values.
func parseWord(s string) (uint32, error) {
	if strings.HasSuffix(s, "f") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(s, "f"), 32)
		if err != nil {
			return 0, curated.Errorf(commandError, "unrecognised float value")
		}
		return math.Float32bits(float32(f)), nil
	}

	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, curated.Errorf(commandError, "unrecognised value")
	}
	return uint32(v), nil
}

// logWriter bridges the central log to the monitor terminal.
type logWriter struct {
	mon *Monitor
}

func (w logWriter) Write(p []byte) (int, error) {
	w.mon.term.Print("%s", string(p))
	return len(p), nil
}
