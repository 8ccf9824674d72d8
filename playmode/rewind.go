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

package playmode

import (
	"github.com/nstfront/nstfront/curated"
	"github.com/nstfront/nstfront/notifications"
	"github.com/nstfront/nstfront/rewind"
)

// doRewind restores the most recent snapshot in the rewind history.
func (pl *Controller) doRewind() {
	if pl.rewind == nil {
		return
	}

	// input recorded after the rewind point would no longer match
	pl.stopMovie()

	if err := pl.rewind.Rewind(); err != nil {
		if curated.Is(err, rewind.NothingToRewind) {
			pl.note(notifications.NotifyRewind, "Nothing to rewind")
			return
		}
		pl.note(notifications.NotifyError, err.Error())
		return
	}

	pl.note(notifications.NotifyRewind, pl.rewind.GetTimeline().String())
}
