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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/gopherborg/hardware/borg"
	"github.com/jetsetilly/gopherborg/hardware/tqv"
	"github.com/jetsetilly/gopherborg/logger"
	"github.com/jetsetilly/gopherborg/modalflag"
	"github.com/jetsetilly/gopherborg/monitor"
	"github.com/jetsetilly/gopherborg/performance"
	"github.com/jetsetilly/gopherborg/regression"
	"github.com/jetsetilly/gopherborg/statsview"
	"github.com/jetsetilly/gopherborg/verify"
	"github.com/jetsetilly/gopherborg/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "MONITOR", "PERFORMANCE", "REGRESS", "VERSION")

	stats := md.AddBool("statsview", false, "run stats server (requires the statsview build tag)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Println("* stats server not available in this build")
			os.Exit(10)
		}
	}

	if *log {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "MONITOR":
		err = mon(md)

	case "PERFORMANCE":
		err = perform(md)

	case "REGRESS":
		err = regress(md)

	case "VERSION":
		vrsn, revision, _ := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, vrsn, revision)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md, err)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("no additional arguments required for %s mode", md)
	}

	return verify.RunAll(md.Output)
}

func mon(md *modalflag.Modes) error {
	md.NewMode()

	mode := md.AddString("mode", "float", "arithmetic mode: float, integer")
	settle := md.AddInt("settle", 1, "settle latency in clock cycles")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	arith, err := borg.ParseArithMode(*mode)
	if err != nil {
		return err
	}

	m, err := monitor.NewMonitor(arith, *settle)
	if err != nil {
		return err
	}

	return m.Run()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	mode := md.AddString("mode", "float", "arithmetic mode: float, integer")
	settle := md.AddInt("settle", 1, "settle latency in clock cycles")
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "NONE", "profile mode: NONE, CPU, MEM, ALL")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	arith, err := borg.ParseArithMode(*mode)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	host := tqv.NewTQV(arith, *settle)
	host.Reset()

	return performance.Check(md.Output, prf, host, *duration)
}

type yesReader struct{}

func (*yesReader) Read(p []byte) (n int, err error) {
	p[0] = 'y'
	return 1, nil
}

func regress(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		return regression.RegressRun(md.Output, md.RemainingArgs())

	case "LIST":
		md.NewMode()

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		if len(md.RemainingArgs()) > 0 {
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}

		return regression.RegressList(md.Output)

	case "DELETE":
		md.NewMode()

		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:
			// use stdin for confirmation unless "yes" flag has been set
			var confirmation io.Reader
			if *answerYes {
				confirmation = &yesReader{}
			} else {
				confirmation = os.Stdin
			}

			return regression.RegressDelete(md.Output, confirmation, md.GetArg(0))
		default:
			return fmt.Errorf("only one entry can be deleted at a time")
		}

	case "ADD":
		return regressAdd(md)
	}

	return nil
}

func regressAdd(md *modalflag.Modes) error {
	md.NewMode()

	mode := md.AddString("mode", "float", "arithmetic mode: float, integer")
	settle := md.AddInt("settle", 1, "settle latency in clock cycles")
	strategy := md.AddString("strategy", "epsilon", "comparison strategy: epsilon, exact-bits")
	wait := md.AddInt("wait", 0, "clock cycles to wait before reading the result")

	md.AdditionalHelp(
		`The operands for the new entry are given as the two remaining arguments. Operands
for a float vector are decimal numbers ("1.25"); operands for an integer vector are
decimal or hex numbers ("0x42").

The new entry is run once before it is added to the database. An entry that does not
pass is not stored.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("two operands required for %s mode", md)
	}

	reg, err := regression.NewVectorRegression(*mode, *settle, md.GetArg(0), md.GetArg(1), *strategy, *wait)
	if err != nil {
		return err
	}

	err = regression.RegressAdd(md.Output, reg)
	if err != nil {
		// carriage return (without newline) because we want to overwrite the
		// last output from RegressAdd()
		return fmt.Errorf("\rerror adding regression test: %v", err)
	}

	return nil
}
