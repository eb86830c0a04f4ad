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

// Package embedding provides the deterministic text embedder and
// cosine-similarity scoring used for related-entry lookup.
package embedding

// Dimensions is the fixed embedding vector length.
const Dimensions = 32

// TextEmbedder converts text into a fixed-length vector. Implementations
// must be deterministic: identical text always yields identical vectors.
type TextEmbedder interface {
	// Embed computes the vector for the given text.
	Embed(text string) []float32
}

// ensure CharFold implements TextEmbedder at compile time.
var _ TextEmbedder = (*CharFold)(nil)

// CharFold is a character-accumulation embedder: each rune's code point,
// scaled, is folded into the position-mod-length bucket. It is a placeholder
// semantic surrogate (order- and length-sensitive, not a learned model)
// kept behind TextEmbedder so a real embedding model can be substituted
// without touching the ranking logic.
type CharFold struct {
	dims int
}

// NewCharFold creates a CharFold embedder with the fixed dimension count.
func NewCharFold() *CharFold {
	return &CharFold{dims: Dimensions}
}

// Embed computes the folded character-accumulation vector.
func (c *CharFold) Embed(
	text string,
) []float32 {
	vec := make([]float32, c.dims)

	for i, r := range []rune(text) {
		vec[i%c.dims] += float32(r) / 1000.0
	}

	return vec
}
