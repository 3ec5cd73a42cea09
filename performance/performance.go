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

package performance

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/jetsetilly/gopherborg/curated"
	"github.com/jetsetilly/gopherborg/hardware/memory/addresses"
	"github.com/jetsetilly/gopherborg/hardware/tqv"
)

// number of transactions to run between checks of the timer channel.
// checking the channel is relatively expensive.
const performanceBrake = 10000

// operand pairs cycled through during the measurement. a small spread of
// exponents so the adder sees normalisation work as well as the trivial case.
var checkOperands = [][2]float32{
	{1.25, 2.5},
	{10.0, 20.0},
	{0.1, 0.2},
	{-5.5, 2.25},
	{100.0, 0.0},
}

// Check measures how many write/write/read transaction groups the model can
// service in the given duration. A cpu and/or memory profile is written
// according to the profile argument.
func Check(output io.Writer, profile Profile, periph *tqv.TQV, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	numTransactions := 0

	// the loop only checks the timer every performanceBrake transactions so it
	// always overruns the requested duration a little. the rate is calculated
	// over the measured time, not the requested time
	var elapsed time.Duration

	runner := func() error {
		// signals true when the measurement duration has expired
		timerChan := make(chan bool)

		startTime := time.Now()
		time.AfterFunc(dur, func() {
			timerChan <- true
		})

		done := false
		for !done {
			for i := 0; i < performanceBrake; i++ {
				v := checkOperands[numTransactions%len(checkOperands)]
				periph.WriteWordReg(addresses.RegA, math.Float32bits(v[0]))
				periph.WriteWordReg(addresses.RegB, math.Float32bits(v[1]))
				_, _ = periph.ReadWordReg(addresses.RegResult)
				numTransactions++
			}

			select {
			case <-timerChan:
				done = true
			default:
			}
		}

		elapsed = time.Since(startTime)

		return nil
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	rate := float64(numTransactions) / elapsed.Seconds()
	output.Write([]byte(fmt.Sprintf("%.0f transactions/sec (%d transactions in %.2f seconds)\n",
		rate, numTransactions, elapsed.Seconds())))

	return nil
}
