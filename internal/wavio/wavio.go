// Package wavio reads RIFF/WAVE files into normalized mono sample
// sequences for the command-line tools. It is a deliberately small decoding
// collaborator: the analysis packages take samples directly and never
// import it.
package wavio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// Errors returned by the decoder.
var (
	ErrNotWave     = errors.New("wavio: not a RIFF/WAVE stream")
	ErrUnsupported = errors.New("wavio: unsupported sample format")
	ErrNoData      = errors.New("wavio: missing fmt or data chunk")
)

const (
	formatPCM        = 1
	formatIEEEFloat  = 3
	formatExtensible = 0xFFFE
)

// Decode reads a complete WAVE stream and returns its samples mixed down to
// mono and normalized to [-1, 1], along with the sample rate in Hz.
//
// Supported encodings: PCM 8/16/24/32 bit and IEEE float 32/64 bit,
// any channel count (channels are averaged).
func Decode(r io.Reader) ([]float64, int, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, fmt.Errorf("wavio: read: %w", err)
	}

	if len(raw) < 12 || string(raw[0:4]) != "RIFF" || string(raw[8:12]) != "WAVE" {
		return nil, 0, ErrNotWave
	}

	var (
		haveFmt    bool
		format     uint16
		channels   int
		sampleRate int
		bits       int
		data       []byte
	)

	// Walk the chunk list. Chunk payloads are padded to even lengths.
	for pos := 12; pos+8 <= len(raw); {
		id := string(raw[pos : pos+4])
		size := int(binary.LittleEndian.Uint32(raw[pos+4 : pos+8]))
		body := raw[pos+8:]

		if size > len(body) {
			size = len(body)
		}
		body = body[:size]

		switch id {
		case "fmt ":
			if len(body) < 16 {
				return nil, 0, ErrNotWave
			}

			format = binary.LittleEndian.Uint16(body[0:2])
			channels = int(binary.LittleEndian.Uint16(body[2:4]))
			sampleRate = int(binary.LittleEndian.Uint32(body[4:8]))
			bits = int(binary.LittleEndian.Uint16(body[14:16]))

			// WAVE_FORMAT_EXTENSIBLE carries the real format code in the
			// first two bytes of the SubFormat GUID.
			if format == formatExtensible && len(body) >= 26 {
				format = binary.LittleEndian.Uint16(body[24:26])
			}

			haveFmt = true
		case "data":
			data = body
		}

		pos += 8 + size
		if size%2 == 1 {
			pos++
		}
	}

	if !haveFmt || data == nil {
		return nil, 0, ErrNoData
	}

	if channels < 1 || sampleRate < 1 {
		return nil, 0, fmt.Errorf("%w: %d channels at %d Hz", ErrUnsupported, channels, sampleRate)
	}

	frames, err := decodeFrames(data, format, bits)
	if err != nil {
		return nil, 0, err
	}

	return mixdown(frames, channels), sampleRate, nil
}

// DecodeFile reads a WAVE file from disk.
func DecodeFile(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("wavio: open: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// decodeFrames converts raw interleaved sample bytes to normalized float64.
func decodeFrames(data []byte, format uint16, bits int) ([]float64, error) {
	switch {
	case format == formatPCM && bits == 8:
		out := make([]float64, len(data))
		for i, b := range data {
			// 8-bit WAVE PCM is unsigned with a 128 midpoint.
			out[i] = (float64(b) - 128) / 128
		}

		return out, nil

	case format == formatPCM && bits == 16:
		n := len(data) / 2
		out := make([]float64, n)
		for i := 0; i < n; i++ {
			v := int16(binary.LittleEndian.Uint16(data[2*i:]))
			out[i] = float64(v) / 32768
		}

		return out, nil

	case format == formatPCM && bits == 24:
		n := len(data) / 3
		out := make([]float64, n)
		for i := 0; i < n; i++ {
			b := data[3*i : 3*i+3]
			v := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
			if v&0x800000 != 0 {
				v -= 1 << 24
			}
			out[i] = float64(v) / 8388608
		}

		return out, nil

	case format == formatPCM && bits == 32:
		n := len(data) / 4
		out := make([]float64, n)
		for i := 0; i < n; i++ {
			v := int32(binary.LittleEndian.Uint32(data[4*i:]))
			out[i] = float64(v) / 2147483648
		}

		return out, nil

	case format == formatIEEEFloat && bits == 32:
		n := len(data) / 4
		out := make([]float64, n)
		for i := 0; i < n; i++ {
			out[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(data[4*i:])))
		}

		return out, nil

	case format == formatIEEEFloat && bits == 64:
		n := len(data) / 8
		out := make([]float64, n)
		for i := 0; i < n; i++ {
			out[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[8*i:]))
		}

		return out, nil
	}

	return nil, fmt.Errorf("%w: format %d, %d bit", ErrUnsupported, format, bits)
}

// mixdown averages interleaved channels into a mono sequence.
func mixdown(frames []float64, channels int) []float64 {
	if channels == 1 {
		return frames
	}

	n := len(frames) / channels
	out := make([]float64, n)

	for i := 0; i < n; i++ {
		var sum float64
		for c := 0; c < channels; c++ {
			sum += frames[i*channels+c]
		}

		out[i] = sum / float64(channels)
	}

	return out
}
