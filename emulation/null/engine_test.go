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

package null_test

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/nstfront/nstfront/emulation"
	"github.com/nstfront/nstfront/emulation/null"
	"github.com/nstfront/nstfront/patch"
	"github.com/nstfront/nstfront/test"
)

// memFileIO implements emulation.FileIO with in-memory files.
type memFileIO struct {
	files map[string][]byte
}

func newMemFileIO() *memFileIO {
	return &memFileIO{files: make(map[string][]byte)}
}

type memWriter struct {
	bytes.Buffer
	name  string
	owner *memFileIO
}

func (w *memWriter) Close() error {
	w.owner.files[w.name] = w.Bytes()
	return nil
}

func (m *memFileIO) open(name string) (io.ReadCloser, error) {
	if d, ok := m.files[name]; ok {
		return io.NopCloser(bytes.NewReader(d)), nil
	}
	return nil, fs.ErrNotExist
}

func (m *memFileIO) LoadBattery() (io.ReadCloser, error) { return m.open("battery") }
func (m *memFileIO) SaveBattery() (io.WriteCloser, error) {
	return &memWriter{name: "battery", owner: m}, nil
}
func (m *memFileIO) LoadDiskPatch() (io.ReadCloser, error) { return m.open("disk") }
func (m *memFileIO) SaveDiskPatch() (io.WriteCloser, error) {
	return &memWriter{name: "disk", owner: m}, nil
}

func ines(prg, chr int, mapper int, battery bool, pal bool) []byte {
	h := make([]byte, 16)
	copy(h, "NES\x1a")
	h[4] = byte(prg)
	h[5] = byte(chr)
	h[6] = byte(mapper&0x0f) << 4
	h[7] = byte(mapper & 0xf0)
	if battery {
		h[6] |= 0x02
	}
	if pal {
		h[9] = 0x01
	}
	d := make([]byte, prg*16384+chr*8192)
	for i := range d {
		d[i] = byte(i * 7)
	}
	return append(h, d...)
}

func fds(sides int) []byte {
	h := make([]byte, 16)
	copy(h, "FDS\x1a")
	h[4] = byte(sides)
	return append(h, make([]byte, sides*65500)...)
}

func bios() []byte {
	return make([]byte, 8192)
}

func TestLoadErrors(t *testing.T) {
	eng := null.NewEngine(nil)

	err := eng.Load(bytes.NewReader([]byte("not a rom")), emulation.FavorAuto, nil, nil)
	test.ExpectSuccess(t, errors.Is(err, emulation.ResultInvalidFile))
	test.ExpectFailure(t, eng.Loaded())

	// truncated image
	d := ines(2, 1, 0, false, false)
	err = eng.Load(bytes.NewReader(d[:1000]), emulation.FavorAuto, nil, nil)
	test.ExpectSuccess(t, errors.Is(err, emulation.ResultCorruptFile))

	// no PRG
	err = eng.Load(bytes.NewReader(ines(0, 1, 0, false, false)), emulation.FavorAuto, nil, nil)
	test.ExpectSuccess(t, errors.Is(err, emulation.ResultCorruptFile))

	err = eng.Load(bytes.NewReader(ines(1, 1, 200, false, false)), emulation.FavorAuto, nil, nil)
	test.ExpectSuccess(t, errors.Is(err, emulation.ResultUnsupportedMapper))

	// header only
	err = eng.Load(bytes.NewReader(d[:16]), emulation.FavorAuto, nil, nil)
	test.ExpectSuccess(t, errors.Is(err, emulation.ResultCorruptFile))

	// shorter than the header
	err = eng.Load(bytes.NewReader(d[:6]), emulation.FavorAuto, nil, nil)
	test.ExpectSuccess(t, errors.Is(err, emulation.ResultCorruptFile))

	// disk images need the bios
	err = eng.Load(bytes.NewReader(fds(2)), emulation.FavorAuto, nil, nil)
	test.ExpectSuccess(t, errors.Is(err, emulation.ResultMissingBios))

	// disk image headers are checked before the bios
	withBios := null.NewEngine(bios())
	err = withBios.Load(bytes.NewReader([]byte("FDS\x1a\x01\x00\x00\x00")), emulation.FavorAuto, nil, nil)
	test.ExpectSuccess(t, errors.Is(err, emulation.ResultCorruptFile))
	err = withBios.Load(bytes.NewReader(fds(2)[:1000]), emulation.FavorAuto, nil, nil)
	test.ExpectSuccess(t, errors.Is(err, emulation.ResultCorruptFile))
	test.ExpectFailure(t, withBios.Loaded())

	// too large
	err = eng.Load(bytes.NewReader(make([]byte, 17*1024*1024)), emulation.FavorAuto, nil, nil)
	test.ExpectSuccess(t, errors.Is(err, emulation.ResultOutOfMemory))

	// corrupt patch
	err = eng.Load(bytes.NewReader(ines(1, 1, 0, false, false)), emulation.FavorAuto, bytes.NewReader([]byte("PATCH")), nil)
	test.ExpectSuccess(t, errors.Is(err, emulation.ResultCorruptFile))

	test.ExpectFailure(t, eng.Loaded())
}

func TestRegion(t *testing.T) {
	eng := null.NewEngine(nil)

	test.DemandSuccess(t, eng.Load(bytes.NewReader(ines(1, 1, 4, false, true)), emulation.FavorAuto, nil, nil))
	test.ExpectEquality(t, eng.DesiredRegion(), emulation.PAL)

	test.DemandSuccess(t, eng.Load(bytes.NewReader(ines(1, 1, 4, false, false)), emulation.FavorAuto, nil, nil))
	test.ExpectEquality(t, eng.DesiredRegion(), emulation.NTSC)

	// favored system overrides the image
	test.DemandSuccess(t, eng.Load(bytes.NewReader(ines(1, 1, 4, false, false)), emulation.FavorPAL, nil, nil))
	test.ExpectEquality(t, eng.DesiredRegion(), emulation.PAL)

	eng.SetRegion(emulation.NTSC)
	test.ExpectEquality(t, eng.Region(), emulation.NTSC)
}

func TestSoftPatch(t *testing.T) {
	eng := null.NewEngine(nil)

	// the patch changes the mapper to one that isn't supported
	p := []byte("PATCH\x00\x00\x06\x00\x01\xc0EOF")
	err := eng.Load(bytes.NewReader(ines(1, 1, 0, false, false)), emulation.FavorAuto, bytes.NewReader(p), nil)
	test.ExpectSuccess(t, errors.Is(err, emulation.ResultUnsupportedMapper))

	// and this one changes it to a supported mapper
	p = []byte("PATCH\x00\x00\x06\x00\x02\x10\x00EOF")
	err = eng.Load(bytes.NewReader(ines(1, 1, 200, false, false)), emulation.FavorAuto, bytes.NewReader(p), nil)
	test.ExpectSuccess(t, err)
}

func TestExecuteFrame(t *testing.T) {
	eng := null.NewEngine(nil)
	video := emulation.NewVideoOutput()
	audio := &emulation.AudioOutput{}
	input := &emulation.InputState{}

	// not loaded
	err := eng.ExecuteFrame(video, audio, input)
	test.ExpectSuccess(t, errors.Is(err, emulation.ResultNotReady))

	test.DemandSuccess(t, eng.Load(bytes.NewReader(ines(1, 1, 0, false, false)), emulation.FavorAuto, nil, nil))

	// not powered
	err = eng.ExecuteFrame(video, audio, input)
	test.ExpectSuccess(t, errors.Is(err, emulation.ResultNotReady))

	test.DemandSuccess(t, eng.Power(true))
	test.DemandSuccess(t, eng.ExecuteFrame(video, audio, input))
	test.ExpectEquality(t, eng.Frame(), uint64(1))
	test.ExpectEquality(t, len(audio.Samples), null.SampleRate/60)
	test.ExpectEquality(t, audio.Samples[0], int16(0))

	input.Set(0, emulation.ButtonA, true)
	test.DemandSuccess(t, eng.ExecuteFrame(video, audio, input))
	test.ExpectInequality(t, audio.Samples[0], int16(0))

	// invalid video buffer
	err = eng.ExecuteFrame(emulation.VideoOutput{}, audio, input)
	test.ExpectSuccess(t, errors.Is(err, emulation.ResultInvalidParam))
}

func TestStateRoundTrip(t *testing.T) {
	eng := null.NewEngine(nil)
	video := emulation.NewVideoOutput()
	input := &emulation.InputState{}

	test.DemandSuccess(t, eng.Load(bytes.NewReader(ines(1, 1, 1, true, false)), emulation.FavorAuto, nil, nil))
	test.DemandSuccess(t, eng.Power(true))

	input.Set(0, emulation.ButtonA, true)
	for i := 0; i < 10; i++ {
		test.DemandSuccess(t, eng.ExecuteFrame(video, nil, input))
	}

	var state bytes.Buffer
	test.DemandSuccess(t, eng.SaveState(&state))
	sum := eng.Checksum()

	for i := 0; i < 10; i++ {
		test.DemandSuccess(t, eng.ExecuteFrame(video, nil, input))
	}
	test.ExpectInequality(t, eng.Checksum(), sum)

	test.DemandSuccess(t, eng.LoadState(bytes.NewReader(state.Bytes())))
	test.ExpectEquality(t, eng.Checksum(), sum)
	test.ExpectEquality(t, eng.Frame(), uint64(10))

	// truncated state is refused and nothing changes
	test.DemandSuccess(t, eng.ExecuteFrame(video, nil, input))
	after := eng.Checksum()
	err := eng.LoadState(bytes.NewReader(state.Bytes()[:100]))
	test.ExpectSuccess(t, errors.Is(err, emulation.ResultCorruptFile))
	test.ExpectEquality(t, eng.Checksum(), after)

	// state for another image is refused
	test.DemandSuccess(t, eng.Load(bytes.NewReader(ines(2, 1, 1, true, false)), emulation.FavorAuto, nil, nil))
	err = eng.LoadState(bytes.NewReader(state.Bytes()))
	test.ExpectSuccess(t, errors.Is(err, emulation.ResultInvalidCRC))
}

func TestBattery(t *testing.T) {
	fio := newMemFileIO()
	eng := null.NewEngine(nil)
	video := emulation.NewVideoOutput()
	input := &emulation.InputState{}
	input.Set(0, emulation.ButtonA, true)

	rom := ines(1, 1, 1, true, false)

	test.DemandSuccess(t, eng.Load(bytes.NewReader(rom), emulation.FavorAuto, nil, fio))
	test.DemandSuccess(t, eng.Power(true))
	for i := 0; i < 5; i++ {
		test.DemandSuccess(t, eng.ExecuteFrame(video, nil, input))
	}

	// unloading writes battery RAM
	eng.Unload()
	battery, ok := fio.files["battery"]
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, len(battery), 8192)
	test.ExpectEquality(t, battery[1], byte(1))

	// and it is read back on power on
	test.DemandSuccess(t, eng.Load(bytes.NewReader(rom), emulation.FavorAuto, nil, fio))
	test.DemandSuccess(t, eng.Power(true))
	eng.Unload()
	test.ExpectEquality(t, string(fio.files["battery"]), string(battery))
}

func TestMedia(t *testing.T) {
	eng := null.NewEngine(bios())

	test.DemandSuccess(t, eng.Load(bytes.NewReader(fds(3)), emulation.FavorAuto, nil, nil))
	test.DemandSuccess(t, eng.IsDisk())

	m := eng.Media()
	test.ExpectEquality(t, m.NumSides(), 3)
	test.ExpectEquality(t, m.NumDisks(), 2)
	test.ExpectEquality(t, m.CurrentDisk(), -1)
	test.ExpectFailure(t, m.CanChangeSide())

	test.DemandSuccess(t, m.Insert(0, 0))
	test.ExpectSuccess(t, m.CanChangeSide())
	test.DemandSuccess(t, m.ChangeSide())
	test.ExpectEquality(t, m.CurrentSide(), 1)

	// second disk only has one side
	test.DemandSuccess(t, m.Insert(1, 0))
	test.ExpectFailure(t, m.CanChangeSide())
	test.ExpectFailure(t, m.Insert(1, 1))
	test.ExpectFailure(t, m.Insert(2, 0))

	test.DemandSuccess(t, m.Eject())
	test.ExpectEquality(t, m.CurrentSide(), -1)

	// cartridges have no media
	test.DemandSuccess(t, eng.Load(bytes.NewReader(ines(1, 1, 0, false, false)), emulation.FavorAuto, nil, nil))
	test.ExpectSuccess(t, eng.Media() == nil)
}

func TestDiskWrites(t *testing.T) {
	fio := newMemFileIO()
	eng := null.NewEngine(bios())
	video := emulation.NewVideoOutput()
	input := &emulation.InputState{}

	img := fds(2)

	test.DemandSuccess(t, eng.Load(bytes.NewReader(img), emulation.FavorAuto, nil, fio))
	test.DemandSuccess(t, eng.Media().Insert(0, 0))
	test.DemandSuccess(t, eng.Power(true))

	input.Set(0, emulation.ButtonSelect, true)
	for i := 0; i < 3; i++ {
		test.DemandSuccess(t, eng.ExecuteFrame(video, nil, input))
	}
	eng.Unload()

	// writes are saved as a UPS patch
	p, ok := fio.files["disk"]
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, patch.Detect(p), patch.UPS)

	// and applied when the image is next loaded
	test.DemandSuccess(t, eng.Load(bytes.NewReader(img), emulation.FavorAuto, nil, fio))
	test.DemandSuccess(t, eng.Media().Insert(0, 0))
	test.DemandSuccess(t, eng.Power(true))

	// compare with the same image loaded without the patch
	unpatched := null.NewEngine(bios())
	test.DemandSuccess(t, unpatched.Load(bytes.NewReader(img), emulation.FavorAuto, nil, nil))
	test.DemandSuccess(t, unpatched.Media().Insert(0, 0))
	test.DemandSuccess(t, unpatched.Power(true))
	test.ExpectEquality(t, eng.Frame(), unpatched.Frame())
	test.ExpectInequality(t, eng.Checksum(), unpatched.Checksum())
}

func TestStateCorrupt(t *testing.T) {
	eng := null.NewEngine(bios())
	video := emulation.NewVideoOutput()
	input := &emulation.InputState{}
	input.Set(0, emulation.ButtonSelect, true)

	test.DemandSuccess(t, eng.Load(bytes.NewReader(fds(1)), emulation.FavorAuto, nil, nil))
	test.DemandSuccess(t, eng.Media().Insert(0, 0))
	test.DemandSuccess(t, eng.Power(true))
	test.DemandSuccess(t, eng.ExecuteFrame(video, nil, input))

	var state bytes.Buffer
	test.DemandSuccess(t, eng.SaveState(&state))
	sum := eng.Checksum()

	// state header: magic(4) version(1) region(1) disk(1) side(1)
	corrupt := func(offset int, v byte) []byte {
		d := bytes.Clone(state.Bytes())
		d[offset] = v
		return d
	}

	for _, d := range [][]byte{
		corrupt(6, 5),
		corrupt(7, 1),
		corrupt(7, 0xff),
		corrupt(5, 9),
		state.Bytes()[:10],
		state.Bytes()[:state.Len()-1],
	} {
		err := eng.LoadState(bytes.NewReader(d))
		test.ExpectSuccess(t, errors.Is(err, emulation.ResultCorruptFile))
		test.ExpectEquality(t, eng.Checksum(), sum)
		test.ExpectEquality(t, eng.Media().CurrentDisk(), 0)
		test.ExpectEquality(t, eng.Media().CurrentSide(), 0)
	}

	// the engine still runs
	test.DemandSuccess(t, eng.ExecuteFrame(video, nil, input))

	// an ejected disk is valid
	test.DemandSuccess(t, eng.LoadState(bytes.NewReader(corrupt(6, 0xff))))
	test.ExpectEquality(t, eng.Media().CurrentDisk(), -1)
	test.DemandSuccess(t, eng.ExecuteFrame(video, nil, input))
}
