package codec

import (
	"io"

	"github.com/google/uuid"
)

// WriteUUID writes the 16 raw bytes of id with no length prefix.
func WriteUUID(w io.Writer, id uuid.UUID) error {
	return writeFull(w, id[:])
}

// ReadUUID reads 16 raw bytes.
func ReadUUID(r io.Reader) (uuid.UUID, error) {
	var id uuid.UUID
	if err := readFull(r, id[:]); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
