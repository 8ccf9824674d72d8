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

package rewind

import "fmt"

// Timeline provides a summary of the rewind history.
type Timeline struct {
	// number of snapshots available
	Available int

	// number of snapshots taken since the last reset, including those that
	// have been forgotten or used
	Taken int

	// the number of frames between each snapshot
	Frequency int
}

func (tl Timeline) String() string {
	return fmt.Sprintf("%d snapshots (%d frames)", tl.Available, tl.Available*tl.Frequency)
}

// GetTimeline returns a summary of the current rewind history.
func (r *Rewind) GetTimeline() Timeline {
	return Timeline{
		Available: r.count,
		Taken:     r.taken,
		Frequency: r.Prefs.Frequency.Int(),
	}
}
