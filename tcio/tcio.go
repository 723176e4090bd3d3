/*
 * tcio.go, part of tcint.
 *
 * Copyright 2024 The tcint Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package tcio writes and reads three-center integral tensors to and from
// compressed binary files.
//
// The file starts with the 4 bytes "TCT1", followed by the number of auxiliary
// and of orbital functions as little-endian uint64, and then the matrices, one per
// auxiliary function, each row-major, as little-endian float64. The whole stream
// goes through a compressor chosen by the extension of the file name:
// .zst (zstd, also the default for unknown extensions), .gz (gzip), .flate (deflate),
// .lzw (LZW) or .raw (none).
package tcio

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"compress/lzw"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/rmera/tcint/tcmatrix"
)

const (
	lzwLitwidth int = 8
	magic           = "TCT1"
	// maxDim bounds the dimensions read from a file, so a corrupt header
	// doesn't make Read try to allocate absurd amounts of memory.
	maxDim = 1 << 20
)

// Compression returns the compression used for a file name: "zstd", "gzip", "flate", "lzw" or "raw".
func Compression(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		return "gzip"
	case ".flate":
		return "flate"
	case ".lzw":
		return "lzw"
	case ".raw":
		return "raw"
	}
	return "zstd"
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// zstdReadCloser lets a *zstd.Decoder be used as an io.ReadCloser.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

func newWriter(w io.Writer, compression string) (io.WriteCloser, error) {
	switch compression {
	case "gzip":
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	case "flate":
		return flate.NewWriter(w, flate.BestCompression)
	case "lzw":
		return lzw.NewWriter(w, lzw.MSB, lzwLitwidth), nil
	case "raw":
		return nopWriteCloser{w}, nil
	}
	return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
}

func newReader(r io.Reader, compression string) (io.ReadCloser, error) {
	switch compression {
	case "gzip":
		return gzip.NewReader(r)
	case "flate":
		return flate.NewReader(r), nil
	case "lzw":
		return lzw.NewReader(r, lzw.MSB, lzwLitwidth), nil
	case "raw":
		return io.NopCloser(r), nil
	}
	d, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return zstdReadCloser{d}, nil
}

// Write writes the tensor t to the file name, compressed according to the extension of name.
func Write(name string, t *tcmatrix.Tensor) error {
	f, err := os.Create(name)
	if err != nil {
		return Error{err.Error(), name, []string{"Write"}, true, nil}
	}
	defer f.Close()
	if err := Encode(f, t, Compression(name)); err != nil {
		return errDecorate(err, "Write", name)
	}
	if err := f.Close(); err != nil {
		return Error{err.Error(), name, []string{"Write"}, true, nil}
	}
	return nil
}

// Encode writes the tensor to w with the given compression (see Compression).
func Encode(w io.Writer, t *tcmatrix.Tensor, compression string) error {
	c, err := newWriter(w, compression)
	if err != nil {
		return Error{"Can't create compressor: " + err.Error(), "", []string{"Encode"}, true, nil}
	}
	bw := bufio.NewWriter(c)
	naux, norb := t.Dims()
	bw.WriteString(magic)
	var buf [8]byte
	for _, v := range []int{naux, norb} {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		bw.Write(buf[:])
	}
	for k := 0; k < naux; k++ {
		M := t.Matrix(k)
		for i := 0; i < norb; i++ {
			for _, v := range M.RawRowView(i) {
				binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
				if _, err := bw.Write(buf[:]); err != nil {
					return Error{"Write failed: " + err.Error(), "", []string{"Encode"}, true, nil}
				}
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return Error{"Write failed: " + err.Error(), "", []string{"Encode"}, true, nil}
	}
	if err := c.Close(); err != nil {
		return Error{"Can't close compressor: " + err.Error(), "", []string{"Encode"}, true, nil}
	}
	return nil
}

// Read reads a tensor from the file name, decompressing it according to the extension of name.
func Read(name string) (*tcmatrix.Tensor, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{err.Error(), name, []string{"Read"}, true, nil}
	}
	defer f.Close()
	t, err := Decode(f, Compression(name))
	if err != nil {
		return nil, errDecorate(err, "Read", name)
	}
	return t, nil
}

// Decode reads a tensor from r, with the given compression.
func Decode(r io.Reader, compression string) (*tcmatrix.Tensor, error) {
	c, err := newReader(r, compression)
	if err != nil {
		return nil, Error{"Can't create decompressor: " + err.Error(), "", []string{"Decode"}, true, nil}
	}
	defer c.Close()
	br := bufio.NewReader(c)
	var head [4 + 16]byte
	if _, err := io.ReadFull(br, head[:]); err != nil {
		return nil, Error{ErrHeader + ": " + err.Error(), "", []string{"Decode"}, true, nil}
	}
	if string(head[:4]) != magic {
		return nil, Error{fmt.Sprintf("%s: bad magic %q", ErrHeader, head[:4]), "", []string{"Decode"}, true, nil}
	}
	naux := binary.LittleEndian.Uint64(head[4:12])
	norb := binary.LittleEndian.Uint64(head[12:20])
	if naux > maxDim || norb > maxDim {
		return nil, Error{fmt.Sprintf("%s: dimensions %d, %d", ErrHeader, naux, norb), "", []string{"Decode"}, true, nil}
	}
	t := tcmatrix.NewTensor(int(naux), int(norb))
	var buf [8]byte
	for k := 0; k < int(naux); k++ {
		M := t.Matrix(k)
		for i := 0; i < int(norb); i++ {
			row := M.RawRowView(i)
			for j := range row {
				if _, err := io.ReadFull(br, buf[:]); err != nil {
					return nil, Error{fmt.Sprintf("%s: matrix %d, row %d: %s", ErrTruncated, k, i, err.Error()), "", []string{"Decode"}, true, nil}
				}
				row[j] = math.Float64frombits(binary.LittleEndian.Uint64(buf[:]))
			}
		}
	}
	return t, nil
}
