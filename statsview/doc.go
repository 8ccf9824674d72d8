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

// Package statsview runs a local HTTP server offering runtime statistics of
// the program, using github.com/go-echarts/statsview. The server is only
// compiled in when the statsview build tag is present. Without the tag,
// Available() returns false and Launch() only prints a message.
//
// After launch the graphs are at localhost:12600/debug/statsview and the
// standard pprof pages at localhost:12600/debug/pprof/
package statsview
