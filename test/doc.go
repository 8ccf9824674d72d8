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

// Package test contains helper functions that remove common boilerplate from
// tests.
//
// The Expect*() functions report failure with t.Errorf() and allow the test
// to continue. The Demand*() functions report failure with t.Fatalf() and stop
// the test immediately.
//
// ExpectSuccess() and ExpectFailure() understand bool and error values. A nil
// value is considered a success because that is how errors work.
//
// The CompareWriter and RingWriter types implement io.Writer and are useful for
// capturing output that needs to be compared with an expected string.
package test
