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

package archivefs

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"io"
	"path/filepath"
	"strings"

	"github.com/nstfront/nstfront/curated"

	"github.com/bodgit/sevenzip"
	"github.com/nwaples/rardecode/v2"
)

func extractFromZIP(filename string, extensions []string) ([]byte, string, error) {
	r, err := zip.OpenReader(filename)
	if err != nil {
		return nil, "", curated.Errorf("archivefs: zip: %v", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() || !hasExtension(f.Name, extensions) {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, "", curated.Errorf("archivefs: zip: %v", err)
		}
		defer rc.Close()

		data, err := limitedRead(rc, f.Name)
		if err != nil {
			return nil, "", err
		}
		return data, filepath.Base(f.Name), nil
	}

	return nil, "", noImage(filename, extensions)
}

func extractFrom7z(filename string, extensions []string) ([]byte, string, error) {
	r, err := sevenzip.OpenReader(filename)
	if err != nil {
		return nil, "", curated.Errorf("archivefs: 7z: %v", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() || !hasExtension(f.Name, extensions) {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, "", curated.Errorf("archivefs: 7z: %v", err)
		}
		defer rc.Close()

		data, err := limitedRead(rc, f.Name)
		if err != nil {
			return nil, "", err
		}
		return data, filepath.Base(f.Name), nil
	}

	return nil, "", noImage(filename, extensions)
}

func extractFromRAR(filename string, extensions []string) ([]byte, string, error) {
	r, err := rardecode.OpenReader(filename)
	if err != nil {
		return nil, "", curated.Errorf("archivefs: rar: %v", err)
	}
	defer r.Close()

	for {
		h, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, "", curated.Errorf("archivefs: rar: %v", err)
		}

		if h.IsDir || !hasExtension(h.Name, extensions) {
			continue
		}

		data, err := limitedRead(r, h.Name)
		if err != nil {
			return nil, "", err
		}
		return data, filepath.Base(h.Name), nil
	}

	return nil, "", noImage(filename, extensions)
}

// a gzip file is either a tarball or a single compressed file. the
// uncompressed name of a single file is taken from the gzip header if it is
// present, otherwise from the filename.
func extractFromGzip(r io.Reader, filename string, extensions []string) ([]byte, string, error) {
	gr, err := gzip.NewReader(r)
	if err != nil {
		return nil, "", curated.Errorf("archivefs: gzip: %v", err)
	}
	defer gr.Close()

	lower := strings.ToLower(filename)
	if strings.HasSuffix(lower, ".tar.gz") || strings.HasSuffix(lower, ".tgz") {
		return extractFromTar(gr, filename, extensions)
	}

	name := gr.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}

	data, err := limitedRead(gr, name)
	if err != nil {
		return nil, "", err
	}
	return data, filepath.Base(name), nil
}

func extractFromTar(r io.Reader, filename string, extensions []string) ([]byte, string, error) {
	tr := tar.NewReader(r)
	for {
		h, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, "", curated.Errorf("archivefs: tar: %v", err)
		}

		if h.Typeflag != tar.TypeReg || !hasExtension(h.Name, extensions) {
			continue
		}

		data, err := limitedRead(tr, h.Name)
		if err != nil {
			return nil, "", err
		}
		return data, filepath.Base(h.Name), nil
	}

	return nil, "", noImage(filename, extensions)
}
