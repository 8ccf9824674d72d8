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

package test_test

import (
	"errors"
	"testing"

	"github.com/nstfront/nstfront/test"
)

func TestExpect(t *testing.T) {
	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, nil)
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("error"))
	test.ExpectEquality(t, 10, 10)
	test.ExpectInequality(t, "a", "b")
	test.ExpectApproximate(t, 50.1, 50.0, 0.01)
}

func TestRingWriter(t *testing.T) {
	r, err := test.NewRingWriter(5)
	test.DemandSuccess(t, err)

	r.Write([]byte("abc"))
	test.ExpectEquality(t, r.String(), "abc")

	r.Write([]byte("de"))
	test.ExpectEquality(t, r.String(), "abcde")

	r.Write([]byte("fg"))
	test.ExpectEquality(t, r.String(), "cdefg")

	r.Write([]byte("0123456789"))
	test.ExpectEquality(t, r.String(), "56789")

	r.Reset()
	test.ExpectEquality(t, r.String(), "")

	_, err = test.NewRingWriter(0)
	test.ExpectFailure(t, err)
}

func TestCompareWriter(t *testing.T) {
	w := &test.CompareWriter{}
	w.Write([]byte("hello"))
	test.ExpectSuccess(t, w.Compare("hello"))
	w.Clear()
	test.ExpectSuccess(t, w.Compare(""))
}
