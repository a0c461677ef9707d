package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/dh1tw/gosamplerate"
	"github.com/ebitengine/oto/v3"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/mitchellh/go-homedir"
)

const (
	clickSampleRate    = 48000
	clickChannels      = 2
	clickMaxPlayers    = 16
	toneFrequency      = 1760.0
	toneDurationSecs   = 0.03
	toneDecayPerSecond = 120.0

	// libsamplerate converter type SRC_SINC_FASTEST
	srcSincFastest = 2
)

// Clicker plays a short sound whenever a key is pressed.
type Clicker struct {
	ctx     *oto.Context
	pcm     []byte
	players []*oto.Player
}

func NewClicker(samplePath string) (*Clicker, error) {
	samples := synthClick()
	if samplePath != "" {
		var err error
		samples, err = loadClick(samplePath)
		if err != nil {
			return nil, err
		}
	}
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   clickSampleRate,
		ChannelCount: clickChannels,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, err
	}
	<-ready
	return &Clicker{ctx: ctx, pcm: encodeFloat32LE(samples)}, nil
}

func (c *Clicker) Play() {
	live := c.players[:0]
	for _, p := range c.players {
		if p.IsPlaying() {
			live = append(live, p)
		}
	}
	c.players = live
	if len(c.players) >= clickMaxPlayers {
		return
	}
	p := c.ctx.NewPlayer(bytes.NewReader(c.pcm))
	p.Play()
	c.players = append(c.players, p)
}

func (c *Clicker) Close() error {
	for _, p := range c.players {
		p.Pause()
	}
	c.players = nil
	return nil
}

// synthClick returns an interleaved stereo decaying sine burst.
func synthClick() []float32 {
	nframes := int(clickSampleRate * toneDurationSecs)
	out := make([]float32, 0, nframes*clickChannels)
	for i := range nframes {
		t := float64(i) / clickSampleRate
		v := float32(0.4 * math.Sin(2*math.Pi*toneFrequency*t) * math.Exp(-toneDecayPerSecond*t))
		out = append(out, v, v)
	}
	return out
}

// loadClick decodes a WAV or MP3 file into interleaved stereo float32 frames
// at clickSampleRate.
func loadClick(path string) ([]float32, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var samples []float32
	var rate int
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		samples, rate, err = decodeWav(f)
	case ".mp3":
		samples, rate, err = decodeMp3(f)
	default:
		return nil, fmt.Errorf("unsupported click sample format: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if rate != clickSampleRate && len(samples) > 0 {
		ratio := float64(clickSampleRate) / float64(rate)
		samples, err = gosamplerate.Simple(samples, ratio, clickChannels, srcSincFastest)
		if err != nil {
			return nil, fmt.Errorf("resample %s: %w", path, err)
		}
	}
	return samples, nil
}

func decodeWav(r io.ReadSeeker) ([]float32, int, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, 0, fmt.Errorf("not a valid wav file")
	}
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, 0, err
	}
	channels := buf.Format.NumChannels
	if channels < 1 {
		return nil, 0, fmt.Errorf("wav file has no channels")
	}
	bitDepth := buf.SourceBitDepth
	if bitDepth <= 0 {
		bitDepth = 16
	}
	scale := float32(int(1) << (bitDepth - 1))
	nframes := len(buf.Data) / channels
	out := make([]float32, 0, nframes*clickChannels)
	for i := range nframes {
		left := float32(buf.Data[i*channels]) / scale
		right := left
		if channels > 1 {
			right = float32(buf.Data[i*channels+1]) / scale
		}
		out = append(out, left, right)
	}
	return out, buf.Format.SampleRate, nil
}

func decodeMp3(r io.Reader) ([]float32, int, error) {
	d, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, 0, err
	}
	// go-mp3 always produces 16-bit little endian stereo
	data, err := io.ReadAll(d)
	if err != nil {
		return nil, 0, err
	}
	out := make([]float32, len(data)/2)
	for i := range out {
		out[i] = float32(int16(binary.LittleEndian.Uint16(data[i*2:]))) / 32768
	}
	return out, d.SampleRate(), nil
}

func encodeFloat32LE(samples []float32) []byte {
	buf := make([]byte, 4*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(s))
	}
	return buf
}
