package pool

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ByteBuffer Tests
// =============================================================================

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len(), "new buffer should have zero length")
	assert.Equal(t, 1024, bb.Cap(), "new buffer should have specified capacity")
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(EncodeBufferDefaultSize)
	bb.MustWrite([]byte("some data"))
	originalCap := bb.Cap()

	bb.Reset()

	assert.Equal(t, 0, bb.Len(), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, bb.Cap(), "Reset should preserve capacity")
}

func TestByteBuffer_Writes(t *testing.T) {
	bb := NewByteBuffer(16)

	n, err := bb.Write([]byte("{a"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, bb.WriteByte(':'))

	n, err = bb.WriteString("1b}")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	bb.MustWrite(nil)

	assert.Equal(t, "{a:1b}", bb.String())
	assert.Equal(t, []byte("{a:1b}"), bb.Bytes())
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(EncodeBufferDefaultSize)
	bb.MustWrite([]byte("test data"))

	var buf bytes.Buffer
	n, err := bb.WriteTo(&buf)

	require.NoError(t, err)
	assert.Equal(t, int64(9), n)
	assert.Equal(t, "test data", buf.String())
}

func TestByteBuffer_WriteTo_ErrorPropagation(t *testing.T) {
	bb := NewByteBuffer(EncodeBufferDefaultSize)
	bb.MustWrite([]byte("test"))

	n, err := bb.WriteTo(&errorWriter{err: io.ErrShortWrite})

	require.ErrorIs(t, err, io.ErrShortWrite)
	assert.Equal(t, int64(0), n)
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity is a no-op", func(t *testing.T) {
		bb := NewByteBuffer(64)
		bb.Grow(32)
		assert.Equal(t, 64, bb.Cap())
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(8)
		bb.MustWrite([]byte("12345678"))
		bb.Grow(1)
		assert.Equal(t, 8+EncodeBufferDefaultSize, bb.Cap())
		assert.Equal(t, "12345678", bb.String(), "Grow must preserve data")
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		size := 8 * EncodeBufferDefaultSize
		bb := NewByteBuffer(size)
		bb.MustWrite(make([]byte, size))
		bb.Grow(1)
		assert.Equal(t, size+size/4, bb.Cap())
	})

	t.Run("request larger than growth step", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(10 * EncodeBufferDefaultSize)
		assert.GreaterOrEqual(t, bb.Cap(), 10*EncodeBufferDefaultSize)
	})
}

// =============================================================================
// ByteBufferPool Tests
// =============================================================================

func TestByteBufferPool_GetPut(t *testing.T) {
	pool := NewByteBufferPool(512, 4096)

	bb := pool.Get()
	require.NotNil(t, bb)
	assert.GreaterOrEqual(t, bb.Cap(), 512)

	bb.MustWrite([]byte("data"))
	pool.Put(bb)

	again := pool.Get()
	assert.Equal(t, 0, again.Len(), "pooled buffers must come back empty")
	pool.Put(again)
	pool.Put(nil)
}

func TestByteBufferPool_MaxThreshold_Discard(t *testing.T) {
	pool := NewByteBufferPool(1024, 4096)

	bb := pool.Get()
	bb.Grow(10000)
	assert.Greater(t, bb.Cap(), 4096)

	pool.Put(bb)

	bb2 := pool.Get()
	assert.LessOrEqual(t, bb2.Cap(), 4096, "should not reuse buffer larger than threshold")
}

func TestDefaultPools(t *testing.T) {
	enc := GetEncodeBuffer()
	txt := GetTextBuffer()

	require.NotNil(t, enc)
	require.NotNil(t, txt)
	assert.GreaterOrEqual(t, enc.Cap(), EncodeBufferDefaultSize)
	assert.GreaterOrEqual(t, txt.Cap(), TextBufferDefaultSize)

	PutEncodeBuffer(enc)
	PutTextBuffer(txt)
}

func TestPool_ConcurrentAccess(t *testing.T) {
	const numGoroutines = 32
	const numIterations = 200

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for range numGoroutines {
		go func() {
			defer wg.Done()
			for range numIterations {
				bb := GetTextBuffer()
				bb.MustWrite([]byte("data"))
				assert.Equal(t, 4, bb.Len())
				PutTextBuffer(bb)
			}
		}()
	}

	wg.Wait()
}

type errorWriter struct {
	err error
}

func (w *errorWriter) Write([]byte) (int, error) {
	return 0, w.err
}
