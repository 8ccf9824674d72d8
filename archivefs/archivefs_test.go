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

package archivefs_test

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/nstfront/nstfront/archivefs"
	"github.com/nstfront/nstfront/curated"
	"github.com/nstfront/nstfront/test"
)

var extensions = []string{".nes", ".fds"}

func writeFile(t *testing.T, dir string, name string, data []byte) string {
	t.Helper()
	pth := filepath.Join(dir, name)
	test.DemandSuccess(t, os.WriteFile(pth, data, 0o644))
	return pth
}

func readAll(t *testing.T, r io.Reader) []byte {
	t.Helper()
	d, err := io.ReadAll(r)
	test.DemandSuccess(t, err)
	return d
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.nes", []byte{1})
	writeFile(t, dir, "A.nes", []byte{2})
	writeFile(t, dir, "c.fds", []byte{3})
	test.DemandSuccess(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
	test.DemandSuccess(t, os.Symlink(filepath.Join(dir, "b.nes"), filepath.Join(dir, "link.nes")))
	test.DemandSuccess(t, os.Symlink(filepath.Join(dir, "missing"), filepath.Join(dir, "broken.nes")))

	entries, err := archivefs.List(dir)
	test.DemandSuccess(t, err)

	// directories and broken links are not listed
	test.DemandEquality(t, len(entries), 4)
	for _, e := range entries {
		test.ExpectInequality(t, e.Name, "subdir")
		test.ExpectInequality(t, e.Name, "broken.nes")
	}

	archivefs.Sort(entries)
	test.ExpectEquality(t, entries[0].Name, "A.nes")
	test.ExpectEquality(t, entries[1].Name, "b.nes")
	test.ExpectEquality(t, entries[2].Name, "c.fds")
	test.ExpectEquality(t, entries[3].Name, "link.nes")

	_, err = archivefs.List(filepath.Join(dir, "not here"))
	test.ExpectSuccess(t, curated.Is(err, archivefs.DirectoryNotFound))
}

func TestSortDirectoriesFirst(t *testing.T) {
	entries := []archivefs.Entry{
		{Name: "b"}, {Name: "z", IsDir: true}, {Name: "a"},
	}
	archivefs.Sort(entries)
	test.ExpectEquality(t, entries[0].Name, "z")
	test.ExpectEquality(t, entries[1].Name, "a")
	test.ExpectEquality(t, entries[2].Name, "b")
}

func TestOpenRaw(t *testing.T) {
	dir := t.TempDir()
	pth := writeFile(t, dir, "game.nes", []byte("NES\x1a data"))

	r, n, name, err := archivefs.Open(pth, extensions)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, 9)
	test.ExpectEquality(t, name, "game.nes")
	test.ExpectEquality(t, string(readAll(t, r)), "NES\x1a data")

	_, _, _, err = archivefs.Open(filepath.Join(dir, "missing.nes"), extensions)
	test.ExpectFailure(t, err)
}

func TestOpenZIP(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	fw, err := w.Create("readme.txt")
	test.DemandSuccess(t, err)
	fw.Write([]byte("not this one"))
	fw, err = w.Create("roms/Game.NES")
	test.DemandSuccess(t, err)
	fw.Write([]byte("zipped"))
	test.DemandSuccess(t, w.Close())

	pth := writeFile(t, t.TempDir(), "game.zip", buf.Bytes())

	r, n, name, err := archivefs.Open(pth, extensions)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, 6)
	test.ExpectEquality(t, name, "Game.NES")
	test.ExpectEquality(t, string(readAll(t, r)), "zipped")

	// no suitable entry in the archive
	_, _, _, err = archivefs.Open(pth, []string{".unf"})
	test.ExpectSuccess(t, curated.Is(err, archivefs.NoImage))
}

func TestOpenGzip(t *testing.T) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	w.Write([]byte("gzipped"))
	test.DemandSuccess(t, w.Close())

	pth := writeFile(t, t.TempDir(), "game.nes.gz", buf.Bytes())

	r, _, name, err := archivefs.Open(pth, extensions)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, name, "game.nes")
	test.ExpectEquality(t, string(readAll(t, r)), "gzipped")
}

func TestOpenTarGz(t *testing.T) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	data := []byte("tarred")
	test.DemandSuccess(t, tw.WriteHeader(&tar.Header{Name: "game.fds", Mode: 0o644, Size: int64(len(data)), Typeflag: tar.TypeReg}))
	tw.Write(data)
	test.DemandSuccess(t, tw.Close())
	test.DemandSuccess(t, gw.Close())

	pth := writeFile(t, t.TempDir(), "games.tar.gz", buf.Bytes())

	r, _, name, err := archivefs.Open(pth, extensions)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, name, "game.fds")
	test.ExpectEquality(t, string(readAll(t, r)), "tarred")
}

func TestOpenDamagedArchives(t *testing.T) {
	dir := t.TempDir()

	for _, n := range []string{"fake.7z", "fake.rar", "fake.zip"} {
		pth := writeFile(t, dir, n, []byte("not an archive"))
		_, _, _, err := archivefs.Open(pth, extensions)
		test.ExpectFailure(t, err, n)
	}

	// magic bytes identify the archive regardless of extension
	pth := writeFile(t, dir, "fake.nes", []byte("Rar!\x1a\x07\x00 truncated"))
	_, _, _, err := archivefs.Open(pth, extensions)
	test.ExpectFailure(t, err)
}

func TestTrimArchiveExt(t *testing.T) {
	test.ExpectEquality(t, archivefs.TrimArchiveExt("Zelda.zip"), "Zelda")
	test.ExpectEquality(t, archivefs.TrimArchiveExt("Zelda.tar.gz"), "Zelda")
	test.ExpectEquality(t, archivefs.TrimArchiveExt("Zelda.nes"), "Zelda.nes")
	test.ExpectSuccess(t, archivefs.IsArchive("x.7Z"))
}
