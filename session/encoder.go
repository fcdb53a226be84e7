package session

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/inklet/canvasacl/permission"
)

// ErrSnapshotCorrupt is returned when a snapshot blob is truncated or
// structurally invalid.
var ErrSnapshotCorrupt = errors.New("snapshot corrupt")

// ErrSnapshotVersion is returned when a snapshot blob carries an unknown
// schema version.
var ErrSnapshotVersion = errors.New("unsupported snapshot version")

const (
	snapshotVersion = 1

	userFieldBytes = 32 // 256 user IDs as a bitfield

	flagAllLocked   = 0x01
	flagLayerLocked = 0x01

	headerLen     = 1 + 1 + 4*userFieldBytes + permission.FeatureCount
	layerEntryLen = 2 + 1 + 1 + userFieldBytes
)

// Encode serializes the snapshot into the versioned binary form stored in
// Redis.
func Encode(snap Snapshot) []byte {
	size := headerLen + 2 + len(snap.Layers)*layerEntryLen + 2 + len(snap.Protected)*2
	buf := make([]byte, 0, size)

	buf = append(buf, snapshotVersion)

	var flags byte
	if snap.AllLocked {
		flags |= flagAllLocked
	}
	buf = append(buf, flags)

	buf = appendUserField(buf, snap.Operators)
	buf = appendUserField(buf, snap.Trusted)
	buf = appendUserField(buf, snap.Authenticated)
	buf = appendUserField(buf, snap.Locked)

	buf = append(buf, snap.FeatureTiers[:]...)

	buf = binary.BigEndian.AppendUint16(buf, uint16(len(snap.Layers)))
	for _, layer := range snap.Layers {
		buf = binary.BigEndian.AppendUint16(buf, layer.ID)
		var lf byte
		if layer.Locked {
			lf |= flagLayerLocked
		}
		buf = append(buf, lf, layer.Tier)
		buf = appendUserField(buf, layer.Exclusive)
	}

	buf = binary.BigEndian.AppendUint16(buf, uint16(len(snap.Protected)))
	for _, id := range snap.Protected {
		buf = binary.BigEndian.AppendUint16(buf, id)
	}

	return buf
}

// Decode parses a snapshot blob produced by Encode.
func Decode(data []byte) (Snapshot, error) {
	if len(data) == 0 {
		return Snapshot{}, fmt.Errorf("%w: empty blob", ErrSnapshotCorrupt)
	}
	if data[0] != snapshotVersion {
		return Snapshot{}, fmt.Errorf("%w: version %d", ErrSnapshotVersion, data[0])
	}
	if len(data) < headerLen+2 {
		return Snapshot{}, fmt.Errorf("%w: truncated header", ErrSnapshotCorrupt)
	}

	var snap Snapshot
	snap.AllLocked = data[1]&flagAllLocked != 0

	idx := 2
	snap.Operators = usersFromField(data[idx : idx+userFieldBytes])
	idx += userFieldBytes
	snap.Trusted = usersFromField(data[idx : idx+userFieldBytes])
	idx += userFieldBytes
	snap.Authenticated = usersFromField(data[idx : idx+userFieldBytes])
	idx += userFieldBytes
	snap.Locked = usersFromField(data[idx : idx+userFieldBytes])
	idx += userFieldBytes

	copy(snap.FeatureTiers[:], data[idx:idx+permission.FeatureCount])
	idx += permission.FeatureCount

	layerCount := int(binary.BigEndian.Uint16(data[idx : idx+2]))
	idx += 2
	if len(data) < idx+layerCount*layerEntryLen+2 {
		return Snapshot{}, fmt.Errorf("%w: truncated layer section", ErrSnapshotCorrupt)
	}
	if layerCount > 0 {
		snap.Layers = make([]LayerEntry, 0, layerCount)
	}
	for i := 0; i < layerCount; i++ {
		entry := LayerEntry{
			ID:     binary.BigEndian.Uint16(data[idx : idx+2]),
			Locked: data[idx+2]&flagLayerLocked != 0,
			Tier:   data[idx+3],
		}
		entry.Exclusive = usersFromField(data[idx+4 : idx+4+userFieldBytes])
		snap.Layers = append(snap.Layers, entry)
		idx += layerEntryLen
	}

	protectedCount := int(binary.BigEndian.Uint16(data[idx : idx+2]))
	idx += 2
	if len(data) < idx+protectedCount*2 {
		return Snapshot{}, fmt.Errorf("%w: truncated annotation section", ErrSnapshotCorrupt)
	}
	if protectedCount > 0 {
		snap.Protected = make([]uint16, 0, protectedCount)
	}
	for i := 0; i < protectedCount; i++ {
		snap.Protected = append(snap.Protected, binary.BigEndian.Uint16(data[idx:idx+2]))
		idx += 2
	}

	return snap, nil
}

func appendUserField(buf []byte, users []uint8) []byte {
	var field [userFieldBytes]byte
	for _, id := range users {
		field[id/8] |= 1 << (id % 8)
	}
	return append(buf, field[:]...)
}

func usersFromField(field []byte) []uint8 {
	var users []uint8
	for i := 0; i < 256; i++ {
		if field[i/8]&(1<<(i%8)) != 0 {
			users = append(users, uint8(i))
		}
	}
	return users
}
