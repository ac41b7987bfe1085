package serialport_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/funtimes-nixiechain/nixie"
	"github.com/coreman2200/funtimes-nixiechain/serialport"
)

func TestOpenRequiresName(t *testing.T) {
	_, err := serialport.Open("")
	require.Error(t, err)
	assert.ErrorIs(t, err, nixie.ErrTransportUnavailable)
}

func TestOpenMissingDevice(t *testing.T) {
	_, err := serialport.Open("/dev/nonexistent-tty")
	require.Error(t, err)
	assert.ErrorIs(t, err, nixie.ErrTransportUnavailable)
}

func TestRecordCapturesWrites(t *testing.T) {
	rec := &serialport.Record{}

	require.NoError(t, rec.Flush())
	n, err := rec.Write([]byte("$5,N,N,128,000,000,255!"))
	require.NoError(t, err)
	assert.Equal(t, 23, n)
	require.NoError(t, rec.Close())

	assert.Equal(t, 1, rec.Flushes)
	assert.Equal(t, "$5,N,N,128,000,000,255!", string(rec.Last()))
	assert.True(t, rec.Closed)
}

func TestRecordCopiesFrames(t *testing.T) {
	rec := &serialport.Record{}
	buf := []byte("$1,N,N,000,000,000,000!")
	_, err := rec.Write(buf)
	require.NoError(t, err)

	buf[1] = '9'
	assert.Equal(t, byte('1'), rec.Last()[1], "recorded frame must not alias the caller's buffer")
}

func TestRecordInjectedErrors(t *testing.T) {
	boom := errors.New("boom")
	rec := &serialport.Record{FlushErr: boom, WriteErr: boom, CloseErr: boom}

	assert.ErrorIs(t, rec.Flush(), boom)
	_, err := rec.Write([]byte("!"))
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, rec.Close(), boom)
	assert.False(t, rec.Closed)
	assert.Nil(t, rec.Last())
}
