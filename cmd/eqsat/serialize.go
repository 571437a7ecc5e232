package main

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// snapshotSchemaVersion is bumped whenever the Snapshot wire format changes.
const snapshotSchemaVersion uint16 = 1

// Snapshot is the on-disk, msgpack-encoded record of a build command's
// inputs. E-graphs themselves hold function-valued analyses and interned
// node pointers that don't round-trip through a serializer, so a snapshot
// instead records the term sources that produced the graph plus the class
// count observed at save time, and "load --snapshot" replays the sources
// to reconstruct an equivalent graph and checks the count still matches.
type Snapshot struct {
	Schema     uint16
	Sources    []string
	ClassCount int
}

func saveSnapshot(path string, sources []string, classCount int) error {
	snap := Snapshot{
		Schema:     snapshotSchemaVersion,
		Sources:    sources,
		ClassCount: classCount,
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := msgpack.NewEncoder(f)
	return enc.Encode(&snap)
}

func loadSnapshotFile(path string) (Snapshot, error) {
	var snap Snapshot
	f, err := os.Open(path)
	if err != nil {
		return Snapshot{}, err
	}
	defer f.Close()

	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&snap); err != nil {
		return Snapshot{}, err
	}
	if snap.Schema != snapshotSchemaVersion {
		return Snapshot{}, fmt.Errorf("snapshot %s: unsupported schema version %d", path, snap.Schema)
	}
	return snap, nil
}
