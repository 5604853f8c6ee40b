package galaxy

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pierrec/lz4/v4"
)

const (
	snapshotMagic   = "GLXY"
	snapshotVersion = uint32(1)
)

var ErrBadSnapshot = errors.New("not a galaxy snapshot")

// WriteSnapshot stores the field as lz4-compressed little-endian float32 arrays.
// Two fields generated from the same seed produce identical snapshots.
func WriteSnapshot(w io.Writer, field *Field) error {
	zw := lz4.NewWriter(w)

	header := struct {
		Magic   [4]byte
		Version uint32
		Count   uint32
	}{Version: snapshotVersion, Count: uint32(field.Count())}
	copy(header.Magic[:], snapshotMagic)

	if err := binary.Write(zw, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("write snapshot header: %w", err)
	}
	for _, buf := range [][]float32{field.Positions, field.Colors, field.Sizes, field.Phases} {
		if err := binary.Write(zw, binary.LittleEndian, buf); err != nil {
			return fmt.Errorf("write snapshot data: %w", err)
		}
	}
	return zw.Close()
}

func ReadSnapshot(r io.Reader) (*Field, error) {
	zr := lz4.NewReader(r)

	var header struct {
		Magic   [4]byte
		Version uint32
		Count   uint32
	}
	if err := binary.Read(zr, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	if string(header.Magic[:]) != snapshotMagic {
		return nil, ErrBadSnapshot
	}
	if header.Version != snapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrBadSnapshot, header.Version)
	}
	if header.Count > MaxParticles {
		return nil, fmt.Errorf("%w: particle count %d exceeds %d", ErrBadSnapshot, header.Count, MaxParticles)
	}

	count := int(header.Count)
	field := &Field{
		Positions: make([]float32, count*3),
		Colors:    make([]float32, count*3),
		Sizes:     make([]float32, count),
		Phases:    make([]float32, count),
	}
	for _, buf := range [][]float32{field.Positions, field.Colors, field.Sizes, field.Phases} {
		if err := binary.Read(zr, binary.LittleEndian, buf); err != nil {
			return nil, fmt.Errorf("%w: read snapshot data: %v", ErrBadSnapshot, err)
		}
	}
	return field, nil
}

func SaveSnapshot(path string, field *Field) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := WriteSnapshot(bw, field); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return f.Close()
}

func LoadSnapshot(path string) (*Field, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadSnapshot(bufio.NewReader(f))
}
