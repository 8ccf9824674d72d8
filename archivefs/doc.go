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

// Package archivefs is the front end's view of the filesystem. It lists the
// files in a directory and opens files that may be inside an archive.
//
// Supported archive types are ZIP, gzip (including tar.gz), 7z and RAR. The
// type of a file is detected from its first bytes. The file extension is only
// used when the first bytes are not conclusive. Files that are not archives
// are opened as they are.
//
// When a file is an archive, the first entry with one of the requested
// extensions is extracted. The rest of the archive is ignored.
package archivefs
