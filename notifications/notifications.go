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

package notifications

import (
	"fmt"
	"io"
	"sync"

	"github.com/nstfront/nstfront/logger"
)

// Notice describes events that are of interest to the user.
type Notice string

// List of defined notifications.
const (
	NotifyLoadError     Notice = "NotifyLoadError"
	NotifyLoaded        Notice = "NotifyLoaded"
	NotifyStateSaved    Notice = "NotifyStateSaved"
	NotifyStateLoaded   Notice = "NotifyStateLoaded"
	NotifyNoState       Notice = "NotifyNoState"
	NotifySlot          Notice = "NotifySlot"
	NotifyMovieRecord   Notice = "NotifyMovieRecord"
	NotifyMoviePlayback Notice = "NotifyMoviePlayback"
	NotifyMovieStop     Notice = "NotifyMovieStop"
	NotifyPause         Notice = "NotifyPause"
	NotifyResume        Notice = "NotifyResume"
	NotifyReset         Notice = "NotifyReset"
	NotifyDisk          Notice = "NotifyDisk"
	NotifyRewind        Notice = "NotifyRewind"
	NotifyError         Notice = "NotifyError"
)

// Notify is used to present a notice and an accompanying message to the
// user.
type Notify interface {
	Notify(notice Notice, message string) error
}

// Log implements the Notify interface. Messages are written to the central
// logger and echoed to an io.Writer.
type Log struct {
	crit sync.Mutex
	w    io.Writer

	last Notice
}

// NewLog is the preferred method of initialisation for the Log type. The
// writer can be nil.
func NewLog(w io.Writer) *Log {
	return &Log{w: w}
}

// Notify implements the Notify interface.
func (n *Log) Notify(notice Notice, message string) error {
	n.crit.Lock()
	defer n.crit.Unlock()

	n.last = notice
	logger.Logf(logger.Allow, "notification", "%s: %s", notice, message)

	if n.w != nil {
		if _, err := fmt.Fprintln(n.w, message); err != nil {
			return err
		}
	}

	return nil
}

// Last returns the most recent notice.
func (n *Log) Last() Notice {
	n.crit.Lock()
	defer n.crit.Unlock()
	return n.last
}
