// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdler32_KnownVectors(t *testing.T) {
	assert.Equal(t, uint32(1), Adler32(nil))
	assert.Equal(t, uint32(1), Adler32([]byte{}))
	assert.Equal(t, uint32(0x00620062), Adler32([]byte("a")))
	assert.Equal(t, uint32(0x11E60398), Adler32([]byte("Wikipedia")))
}

func TestAdler32_Incremental(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	whole := Adler32(data)

	running := Adler32(nil)
	for i := range data {
		running = adler32Update(running, data[i:i+1])
	}
	assert.Equal(t, whole, running)
}

func TestAdler32_CrossesNMAXBoundary(t *testing.T) {
	data := make([]byte, adler32NMAX*2+37)
	for i := range data {
		data[i] = byte(i)
	}
	whole := Adler32(data)

	split := adler32Update(Adler32(nil), data[:adler32NMAX+5])
	split = adler32Update(split, data[adler32NMAX+5:])
	assert.Equal(t, whole, split)
}

func TestCRC32_KnownVectors(t *testing.T) {
	assert.Equal(t, uint32(0), CRC32(nil))
	assert.Equal(t, uint32(0xCBF43926), CRC32([]byte("123456789")))
}

func TestCRC32_Incremental(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	whole := CRC32(data)

	running := CRC32(nil)
	for i := range data {
		running = crc32Update(running, data[i:i+1])
	}
	assert.Equal(t, whole, running)
}
