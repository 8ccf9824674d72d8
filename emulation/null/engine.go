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

package null

import (
	"errors"
	"hash/crc32"
	"io"
	"io/fs"

	"github.com/nstfront/nstfront/emulation"
	"github.com/nstfront/nstfront/logger"
	"github.com/nstfront/nstfront/patch"
)

const (
	ramLen     = 2048
	batteryLen = 8192
)

// the sample rate of the audio produced by ExecuteFrame()
const SampleRate = 48000

// Engine implements the emulation.Engine interface.
type Engine struct {
	bios []byte

	img *image
	fio emulation.FileIO

	// the disk sides as they were after loading. used to create the disk
	// patch when the image is unloaded
	original []byte
	diskDirty bool

	power   bool
	desired emulation.Region
	region  emulation.Region

	frame uint64
	ram   [ramLen]byte
	wram  [batteryLen]byte

	disk     int
	side     int
	inserted bool
}

// NewEngine is the preferred method of initialisation for the Engine type. The
// bios argument is required for disk images and can be nil otherwise.
func NewEngine(bios []byte) *Engine {
	return &Engine{bios: bios}
}

// Load implements the emulation.Engine interface.
func (eng *Engine) Load(r io.Reader, system emulation.FavoredSystem, p io.Reader, fio emulation.FileIO) error {
	eng.Unload()

	data, err := io.ReadAll(io.LimitReader(r, maxImageSize+1))
	if err != nil {
		return emulation.ResultCorruptFile
	}

	if p != nil {
		pd, err := io.ReadAll(p)
		if err != nil {
			return emulation.ResultCorruptFile
		}
		data, err = patch.Apply(data, pd)
		if err != nil {
			logger.Logf(logger.Allow, "null engine", "patch: %v", err)
			return emulation.ResultCorruptFile
		}
	}

	img, err := parseImage(data)
	if err != nil {
		return err
	}

	if img.disk {
		if len(eng.bios) != biosLen {
			return emulation.ResultMissingBios
		}
		if fio != nil {
			eng.loadDiskPatch(img, fio)
		}
	}

	eng.img = img
	eng.fio = fio
	eng.desired = img.region
	switch system {
	case emulation.FavorNTSC:
		eng.desired = emulation.NTSC
	case emulation.FavorPAL:
		eng.desired = emulation.PAL
	}
	eng.region = eng.desired

	eng.frame = 0
	eng.ram = [ramLen]byte{}
	eng.wram = [batteryLen]byte{}
	eng.inserted = false
	eng.diskDirty = false

	if img.disk {
		eng.original = img.flatten()
	}

	return nil
}

func (eng *Engine) loadDiskPatch(img *image, fio emulation.FileIO) {
	rc, err := fio.LoadDiskPatch()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Logf(logger.Allow, "null engine", "disk patch: %v", err)
		}
		return
	}
	defer rc.Close()

	pd, err := io.ReadAll(rc)
	if err != nil {
		logger.Logf(logger.Allow, "null engine", "disk patch: %v", err)
		return
	}

	d, err := patch.Apply(img.flatten(), pd)
	if err != nil || !img.unflatten(d) {
		logger.Logf(logger.Allow, "null engine", "disk patch: cannot apply: %v", err)
	}
}

// Unload implements the emulation.Engine interface.
func (eng *Engine) Unload() {
	if eng.img == nil {
		return
	}
	_ = eng.Power(false)
	eng.img = nil
	eng.fio = nil
	eng.original = nil
	eng.inserted = false
}

// Loaded implements the emulation.Engine interface.
func (eng *Engine) Loaded() bool {
	return eng.img != nil
}

// Power implements the emulation.Engine interface.
func (eng *Engine) Power(on bool) error {
	if eng.img == nil {
		return emulation.ResultNotReady
	}
	if on == eng.power {
		return nil
	}

	eng.power = on

	if on {
		eng.frame = 0
		eng.loadBattery()
	} else {
		eng.saveBattery()
		eng.saveDiskPatch()
	}

	return nil
}

func (eng *Engine) loadBattery() {
	if !eng.img.battery || eng.fio == nil {
		return
	}

	rc, err := eng.fio.LoadBattery()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Logf(logger.Allow, "null engine", "battery: %v", err)
		}
		return
	}
	defer rc.Close()

	if _, err := io.ReadFull(rc, eng.wram[:]); err != nil {
		logger.Logf(logger.Allow, "null engine", "battery: %v", err)
	}
}

func (eng *Engine) saveBattery() {
	if !eng.img.battery || eng.fio == nil {
		return
	}

	wc, err := eng.fio.SaveBattery()
	if err != nil {
		logger.Logf(logger.Allow, "null engine", "battery: %v", err)
		return
	}

	_, err = wc.Write(eng.wram[:])
	if cerr := wc.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		logger.Logf(logger.Allow, "null engine", "battery: %v", err)
	}
}

func (eng *Engine) saveDiskPatch() {
	if !eng.img.disk || !eng.diskDirty || eng.fio == nil {
		return
	}

	wc, err := eng.fio.SaveDiskPatch()
	if err != nil {
		logger.Logf(logger.Allow, "null engine", "disk patch: %v", err)
		return
	}

	_, err = wc.Write(patch.CreateUPS(eng.original, eng.img.flatten()))
	if cerr := wc.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		logger.Logf(logger.Allow, "null engine", "disk patch: %v", err)
		return
	}

	eng.diskDirty = false
}

// Reset implements the emulation.Engine interface. A hard reset clears RAM.
func (eng *Engine) Reset(hard bool) error {
	if eng.img == nil {
		return emulation.ResultNotReady
	}
	if hard {
		eng.ram = [ramLen]byte{}
	}
	eng.frame = 0
	return nil
}

// ExecuteFrame implements the emulation.Engine interface.
func (eng *Engine) ExecuteFrame(video emulation.VideoOutput, audio *emulation.AudioOutput, input *emulation.InputState) error {
	if eng.img == nil || !eng.power {
		return emulation.ResultNotReady
	}
	if !video.Valid() {
		return emulation.ResultInvalidParam
	}

	eng.frame++

	var pad emulation.Button
	if input != nil {
		pad = input.Pads[0]
	}

	eng.ram[eng.frame%ramLen] = byte(eng.frame) ^ byte(pad)

	if eng.img.battery && pad&emulation.ButtonA == emulation.ButtonA {
		eng.wram[eng.frame%batteryLen]++
	}

	if eng.img.disk && eng.inserted && pad&emulation.ButtonSelect == emulation.ButtonSelect {
		s := eng.img.sides[eng.disk*2+eng.side]
		s[eng.frame%fdsSideLen]++
		eng.diskDirty = true
	}

	eng.drawFrame(video)

	if audio != nil {
		eng.soundFrame(audio, pad)
	}

	return nil
}

func (eng *Engine) drawFrame(video emulation.VideoOutput) {
	sum := crc32.ChecksumIEEE(eng.ram[:])
	for y := 0; y < emulation.ScreenHeight; y++ {
		row := video.Pixels[y*video.Pitch:]
		c := byte(sum) + byte(y) + byte(eng.frame)
		for x := 0; x < emulation.ScreenWidth; x++ {
			i := x * emulation.BytesPerPixel
			row[i] = c
			row[i+1] = c ^ byte(x)
			row[i+2] = byte(sum >> 8)
			row[i+3] = 0xff
		}
	}
}

// a square wave is produced while any button on the first pad is held.
func (eng *Engine) soundFrame(audio *emulation.AudioOutput, pad emulation.Button) {
	audio.SampleRate = SampleRate
	n := SampleRate / eng.region.FrameRate()
	if cap(audio.Samples) < n {
		audio.Samples = make([]int16, n)
	}
	audio.Samples = audio.Samples[:n]

	const period = SampleRate / 440
	for i := range audio.Samples {
		if pad == 0 {
			audio.Samples[i] = 0
			continue
		}
		if (int(eng.frame)*n+i)%period < period/2 {
			audio.Samples[i] = 4000
		} else {
			audio.Samples[i] = -4000
		}
	}
}

// DesiredRegion implements the emulation.Engine interface.
func (eng *Engine) DesiredRegion() emulation.Region {
	return eng.desired
}

// SetRegion implements the emulation.Engine interface.
func (eng *Engine) SetRegion(region emulation.Region) {
	eng.region = region
}

// Region implements the emulation.Engine interface.
func (eng *Engine) Region() emulation.Region {
	return eng.region
}

// IsDisk implements the emulation.Engine interface.
func (eng *Engine) IsDisk() bool {
	return eng.img != nil && eng.img.disk
}

// Media implements the emulation.Engine interface.
func (eng *Engine) Media() emulation.Media {
	if !eng.IsDisk() {
		return nil
	}
	return media{eng: eng}
}

// Frame returns the number of frames executed since power on or reset.
func (eng *Engine) Frame() uint64 {
	return eng.frame
}

// Checksum summarises the machine state. Two engines with the same checksum
// are in the same state.
func (eng *Engine) Checksum() uint32 {
	h := crc32.NewIEEE()
	var f [8]byte
	for i := range f {
		f[i] = byte(eng.frame >> (i * 8))
	}
	h.Write(f[:])
	h.Write(eng.ram[:])
	h.Write(eng.wram[:])
	if eng.img != nil && eng.img.disk {
		h.Write(eng.img.flatten())
	}
	return h.Sum32()
}
