// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package embedding

import (
	"encoding/binary"
	"fmt"
	"math"
)

const (
	blobHeaderSize = 4
	valueByteSize  = 4
)

// Encode packs a vector into a binary blob for columnar storage.
// Format: 4-byte little-endian dimension, then N little-endian float32 values.
func Encode(
	vec []float32,
) ([]byte, error) {
	if len(vec) == 0 {
		return nil, fmt.Errorf("encode vector: empty vector")
	}

	blob := make([]byte, blobHeaderSize+len(vec)*valueByteSize)
	binary.LittleEndian.PutUint32(blob[:blobHeaderSize], uint32(len(vec)))

	offset := blobHeaderSize
	for _, v := range vec {
		binary.LittleEndian.PutUint32(blob[offset:offset+valueByteSize], math.Float32bits(v))
		offset += valueByteSize
	}

	return blob, nil
}

// Decode unpacks a blob created by Encode.
func Decode(
	blob []byte,
) ([]float32, error) {
	if len(blob) < blobHeaderSize {
		return nil, fmt.Errorf("decode vector: blob too short: %d bytes", len(blob))
	}

	dim := int(binary.LittleEndian.Uint32(blob[:blobHeaderSize]))
	if dim <= 0 {
		return nil, fmt.Errorf("decode vector: invalid dimension: %d", dim)
	}

	if want := blobHeaderSize + dim*valueByteSize; len(blob) != want {
		return nil, fmt.Errorf(
			"decode vector: dimension mismatch: dim=%d payload=%d",
			dim,
			len(blob)-blobHeaderSize,
		)
	}

	vec := make([]float32, dim)
	offset := blobHeaderSize
	for i := range vec {
		vec[i] = math.Float32frombits(
			binary.LittleEndian.Uint32(blob[offset : offset+valueByteSize]),
		)
		offset += valueByteSize
	}

	return vec, nil
}
