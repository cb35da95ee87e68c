// Copyright 2024 The Geotrace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package img implements RawImage and the PPM/PFM encoders
// (kept in-module rather than farmed out, for reproducibility).
package img

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"math/rand/v2"

	"github.com/cpmech/gosl/chk"

	"github.com/dpedroso/geotrace/color"
)

// RawImage is the accumulator: width x height pixels, each an
// unclamped RGB sum across samples.
type RawImage struct {
	Width, Height int
	Pixels        []color.Color
}

// New returns a zeroed RawImage of the given dimensions.
func New(width, height int) *RawImage {
	if width <= 0 || height <= 0 {
		chk.Panic("img.New: dimensions must be positive, got %dx%d", width, height)
	}
	return &RawImage{Width: width, Height: height, Pixels: make([]color.Color, width*height)}
}

// Index returns the flat pixel index for (x, y), row-major, top-to-bottom.
func (im *RawImage) Index(x, y int) int {
	if x < 0 || x >= im.Width || y < 0 || y >= im.Height {
		chk.Panic("img.RawImage.Index: (%d,%d) out of bounds for %dx%d image", x, y, im.Width, im.Height)
	}
	return y*im.Width + x
}

// At returns the pixel at (x, y).
func (im *RawImage) At(x, y int) color.Color {
	return im.Pixels[im.Index(x, y)]
}

// AddAt accumulates c into the pixel at (x, y), the per-sample accumulation
// step.
func (im *RawImage) AddAt(x, y int, c color.Color) {
	i := im.Index(x, y)
	im.Pixels[i] = im.Pixels[i].Add(c)
}

// ScaleAll multiplies every pixel by s in place, used to divide the
// accumulator by the sample count.
func (im *RawImage) ScaleAll(s float64) {
	for i := range im.Pixels {
		im.Pixels[i] = im.Pixels[i].Scale(s)
	}
}

// Randomize fills every pixel with an independent uniform RGB color; mainly
// useful for exercising the image writers without a full render.
func (im *RawImage) Randomize(rng *rand.Rand) {
	for i := range im.Pixels {
		im.Pixels[i] = color.Color{R: rng.Float64(), G: rng.Float64(), B: rng.Float64()}
	}
}

// WritePPM writes im as ASCII PPM (P3), applying gamma correction and
// saturating to [0,255] per channel.
func WritePPM(w io.Writer, im *RawImage, gamma float64) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", im.Width, im.Height); err != nil {
		return err
	}
	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			c := im.At(x, y).Gamma(gamma)
			r, g, b := c.RGB8()
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// WritePFM writes im as binary PFM (PF, RGB), raw little-endian float32
// triples. The standard orientation is bottom-to-top; this implementation
// writes top-to-bottom instead and documents it here, picking one
// consistent direction for both WritePFM and ReadPFM below rather than
// leaving write and read orientation inconsistent with each other.
func WritePFM(w io.Writer, im *RawImage, scale float64) error {
	if scale <= 0 {
		scale = 1
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "PF\n%d %d\n%g\n", im.Width, im.Height, -scale); err != nil {
		return err
	}
	buf := make([]byte, 4)
	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			c := im.At(x, y)
			for _, ch := range [3]float64{c.R, c.G, c.B} {
				binary.LittleEndian.PutUint32(buf, math.Float32bits(float32(ch)))
				if _, err := bw.Write(buf); err != nil {
					return err
				}
			}
		}
	}
	return bw.Flush()
}

// ReadPFM parses a binary PFM (PF, RGB) stream written by WritePFM, using
// the same top-to-bottom orientation.
func ReadPFM(r io.Reader) (*RawImage, error) {
	br := bufio.NewReader(r)

	magic, err := readPFMToken(br)
	if err != nil {
		return nil, err
	}
	if magic != "PF" {
		return nil, chk.Err("img.ReadPFM: expected magic \"PF\", got %q", magic)
	}

	widthTok, err := readPFMToken(br)
	if err != nil {
		return nil, err
	}
	heightTok, err := readPFMToken(br)
	if err != nil {
		return nil, err
	}
	if _, err := readPFMToken(br); err != nil { // scale factor, unused on read
		return nil, err
	}

	var width, height int
	if _, err := fmt.Sscanf(widthTok, "%d", &width); err != nil {
		return nil, chk.Err("img.ReadPFM: bad width %q: %v", widthTok, err)
	}
	if _, err := fmt.Sscanf(heightTok, "%d", &height); err != nil {
		return nil, chk.Err("img.ReadPFM: bad height %q: %v", heightTok, err)
	}

	im := New(width, height)
	buf := make([]byte, 4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var rgb [3]float64
			for ch := 0; ch < 3; ch++ {
				if _, err := io.ReadFull(br, buf); err != nil {
					return nil, chk.Err("img.ReadPFM: %v", err)
				}
				rgb[ch] = float64(math.Float32frombits(binary.LittleEndian.Uint32(buf)))
			}
			im.Pixels[im.Index(x, y)] = color.Color{R: rgb[0], G: rgb[1], B: rgb[2]}
		}
	}
	return im, nil
}

// readPFMToken reads one whitespace-delimited header token.
func readPFMToken(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			return "", err
		}
		if b == ' ' || b == '\n' || b == '\t' || b == '\r' {
			if len(tok) == 0 {
				continue
			}
			return string(tok), nil
		}
		tok = append(tok, b)
	}
}
