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

package embedding_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/lux-io/ledger/internal/embedding"
)

type EmbeddingPublicTestSuite struct {
	suite.Suite

	embedder *embedding.CharFold
}

func (s *EmbeddingPublicTestSuite) SetupTest() {
	s.embedder = embedding.NewCharFold()
}

func (s *EmbeddingPublicTestSuite) TestEmbedIsDeterministic() {
	a := s.embedder.Embed("rollback database migration")
	b := s.embedder.Embed("rollback database migration")

	s.Len(a, embedding.Dimensions)
	s.Equal(a, b)
}

func (s *EmbeddingPublicTestSuite) TestEmbedDistinguishesText() {
	a := s.embedder.Embed("cache fix deployed")
	b := s.embedder.Embed("feature flag flipped")

	s.NotEqual(a, b)
}

func (s *EmbeddingPublicTestSuite) TestEmbedEmptyText() {
	vec := s.embedder.Embed("")

	s.Len(vec, embedding.Dimensions)
	for _, v := range vec {
		s.Zero(v)
	}
}

func (s *EmbeddingPublicTestSuite) TestEmbedFoldsLongText() {
	// Text longer than the dimension count must fold into existing buckets.
	long := make([]byte, embedding.Dimensions*3)
	for i := range long {
		long[i] = 'a'
	}

	vec := s.embedder.Embed(string(long))

	s.Len(vec, embedding.Dimensions)
	s.InDelta(float32('a')*3/1000.0, vec[0], 1e-6)
}

func (s *EmbeddingPublicTestSuite) TestCosine() {
	v := s.embedder.Embed("deploy cache fix")

	tests := []struct {
		name string
		a    []float32
		b    []float32
		want float64
	}{
		{
			name: "identical non-zero vectors score one",
			a:    v,
			b:    v,
			want: 1,
		},
		{
			name: "zero vector scores zero",
			a:    v,
			b:    make([]float32, embedding.Dimensions),
			want: 0,
		},
		{
			name: "mismatched lengths score zero",
			a:    v,
			b:    []float32{1, 2, 3},
			want: 0,
		},
		{
			name: "empty vectors score zero",
			a:    nil,
			b:    nil,
			want: 0,
		},
		{
			name: "orthogonal vectors score zero",
			a:    []float32{1, 0},
			b:    []float32{0, 1},
			want: 0,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.InDelta(tt.want, embedding.Cosine(tt.a, tt.b), 1e-9)
		})
	}
}

func (s *EmbeddingPublicTestSuite) TestEncodeDecodeRoundTrip() {
	vec := s.embedder.Embed("incident postmortem")

	blob, err := embedding.Encode(vec)
	s.Require().NoError(err)

	got, err := embedding.Decode(blob)
	s.Require().NoError(err)
	s.Equal(vec, got)
}

func (s *EmbeddingPublicTestSuite) TestEncodeEmptyVector() {
	_, err := embedding.Encode(nil)
	s.Error(err)
}

func (s *EmbeddingPublicTestSuite) TestDecodeInvalidBlobs() {
	tests := []struct {
		name string
		blob []byte
	}{
		{name: "too short", blob: []byte{1, 2}},
		{name: "zero dimension", blob: []byte{0, 0, 0, 0}},
		{name: "payload mismatch", blob: []byte{2, 0, 0, 0, 1, 2, 3, 4}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := embedding.Decode(tt.blob)
			s.Error(err)
		})
	}
}

func TestEmbeddingPublicTestSuite(t *testing.T) {
	suite.Run(t, new(EmbeddingPublicTestSuite))
}
