// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterReader_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, DefaultParams())
	require.NoError(t, err)

	data := bytes.Repeat([]byte("streaming through an io.Writer. "), 10000)
	n, err := w.Write(data)
	require.NoError(t, err)
	assert.Equal(t, len(data), n)
	require.NoError(t, w.Close())

	r, err := NewReader(bytes.NewReader(buf.Bytes()), DefaultParams())
	require.NoError(t, err)
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestWriterReader_MultipleWritesAndFlush(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, DefaultParams())
	require.NoError(t, err)

	parts := [][]byte{
		[]byte("first chunk\n"),
		[]byte("second chunk\n"),
		[]byte("third chunk\n"),
	}
	for _, p := range parts {
		_, err := w.Write(p)
		require.NoError(t, err)
	}
	require.NoError(t, w.Flush())
	require.NoError(t, w.Close())

	r, err := NewReader(bytes.NewReader(buf.Bytes()), DefaultParams())
	require.NoError(t, err)
	got, err := io.ReadAll(r)
	require.NoError(t, err)

	var want bytes.Buffer
	for _, p := range parts {
		want.Write(p)
	}
	assert.Equal(t, want.Bytes(), got)
}

func TestWriterReader_SmallReadBuffer(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, DefaultParams())
	require.NoError(t, err)
	data := bytes.Repeat([]byte("abcdefghij"), 5000)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := NewReader(bytes.NewReader(buf.Bytes()), DefaultParams())
	require.NoError(t, err)

	var got bytes.Buffer
	small := make([]byte, 7) // deliberately awkward, not a multiple of anything
	for {
		n, err := r.Read(small)
		got.Write(small[:n])
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}
	assert.Equal(t, data, got.Bytes())
}

func TestWriterReader_TruncatedStreamReturnsError(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, DefaultParams())
	require.NoError(t, err)
	_, err = w.Write(bytes.Repeat([]byte("not quite enough"), 200))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	truncated := buf.Bytes()[:buf.Len()-3]
	r, err := NewReader(bytes.NewReader(truncated), DefaultParams())
	require.NoError(t, err)
	_, err = io.ReadAll(r)
	assert.Error(t, err)
}

func TestWriterReader_GzipWrap(t *testing.T) {
	params := DefaultParams()
	params.WindowBits = MaxWindowBits + 16

	var buf bytes.Buffer
	w, err := NewWriter(&buf, params)
	require.NoError(t, err)
	data := []byte("gzip wrapped round trip through Writer/Reader")
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := NewReader(bytes.NewReader(buf.Bytes()), params)
	require.NoError(t, err)
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}
