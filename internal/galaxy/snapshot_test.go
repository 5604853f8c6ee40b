package galaxy

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	opts := DefaultGeneratorOptions()
	opts.Count = 500
	field := Generate(opts, NewRand(3))

	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, field))

	loaded, err := ReadSnapshot(&buf)
	require.NoError(t, err)
	assert.Equal(t, field, loaded)
}

func TestSnapshot_SameSeedSameBytes(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, WriteSnapshot(&a, Generate(DefaultGeneratorOptions(), NewRand(77))))
	require.NoError(t, WriteSnapshot(&b, Generate(DefaultGeneratorOptions(), NewRand(77))))

	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestSnapshot_File(t *testing.T) {
	opts := DefaultGeneratorOptions()
	opts.Count = 10
	field := Generate(opts, NewRand(1))
	path := filepath.Join(t.TempDir(), "field.glx")

	require.NoError(t, SaveSnapshot(path, field))
	loaded, err := LoadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, field, loaded)
}

func TestSnapshot_RejectsBadMagic(t *testing.T) {
	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	_, err := zw.Write([]byte("NOPE\x01\x00\x00\x00\x00\x00\x00\x00"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = ReadSnapshot(&buf)
	assert.ErrorIs(t, err, ErrBadSnapshot)

	_, err = ReadSnapshot(bytes.NewReader([]byte("garbage")))
	assert.ErrorIs(t, err, ErrBadSnapshot)
}

func rawSnapshot(t *testing.T, version, count uint32, payload []float32) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	_, err := zw.Write([]byte(snapshotMagic))
	require.NoError(t, err)
	require.NoError(t, binary.Write(zw, binary.LittleEndian, []uint32{version, count}))
	if len(payload) > 0 {
		require.NoError(t, binary.Write(zw, binary.LittleEndian, payload))
	}
	require.NoError(t, zw.Close())
	return &buf
}

func TestSnapshot_RejectsUndecodable(t *testing.T) {
	tests := []struct {
		name    string
		version uint32
		count   uint32
		payload []float32
	}{
		{"unknown version", snapshotVersion + 1, 1, make([]float32, 8)},
		{"truncated payload", snapshotVersion, 5, nil},
		{"partial payload", snapshotVersion, 2, make([]float32, 7)},
		{"huge count", snapshotVersion, 1 << 30, nil},
		{"count just over limit", snapshotVersion, MaxParticles + 1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, err := ReadSnapshot(rawSnapshot(t, tt.version, tt.count, tt.payload))
			assert.ErrorIs(t, err, ErrBadSnapshot)
			assert.Nil(t, field)
		})
	}
}

func TestSnapshot_AcceptsHandWrittenField(t *testing.T) {
	payload := []float32{1, 2, 3, 0.1, 0.2, 0.3, 1.5, 0.25}
	field, err := ReadSnapshot(rawSnapshot(t, snapshotVersion, 1, payload))
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3}, field.Positions)
	assert.Equal(t, []float32{1.5}, field.Sizes)
	assert.Equal(t, []float32{0.25}, field.Phases)
}
