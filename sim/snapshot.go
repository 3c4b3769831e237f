package sim

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/pthm-cable/lattice/rule"
)

// SnapshotVersion is incremented when the on-disk format changes.
const SnapshotVersion = 1

// snapshotV1 is the zstd-compressed JSON snapshot payload. Values
// serialize as base64; neighbor counts are kept so a resumed run does
// not need a brute-force recount.
type snapshotV1 struct {
	Version   int          `json:"version"`
	Bound     int32        `json:"bound"`
	Tick      int64        `json:"tick"`
	Rule      snapshotRule `json:"rule"`
	Values    []byte       `json:"values"`
	Neighbors []int32      `json:"neighbors"`
}

// snapshotRule pins the rule the grid state was built under. The
// neighbor counts mean "full-value neighbors" only relative to that
// rule's states and topology, so a load under a different rule must be
// refused rather than silently resumed.
type snapshotRule struct {
	Survival uint32 `json:"survival"`
	Birth    uint32 `json:"birth"`
	States   uint8  `json:"states"`
	Topology string `json:"topology"`
}

func makeSnapshotRule(r *rule.Rule) snapshotRule {
	return snapshotRule{
		Survival: uint32(r.Survival),
		Birth:    uint32(r.Birth),
		States:   r.States,
		Topology: r.Topology.String(),
	}
}

// SaveSnapshot writes the full grid state to path.
func (e *Engine) SaveSnapshot(path string, tick int64, r *rule.Rule) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("creating zstd writer: %w", err)
	}

	bw := bufio.NewWriterSize(enc, 256*1024)
	snap := snapshotV1{
		Version:   SnapshotVersion,
		Bound:     e.grid.Bound(),
		Tick:      tick,
		Rule:      makeSnapshotRule(r),
		Values:    e.grid.values,
		Neighbors: e.grid.neighbors,
	}
	if err := json.NewEncoder(bw).Encode(&snap); err != nil {
		enc.Close()
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := bw.Flush(); err != nil {
		enc.Close()
		return fmt.Errorf("flushing snapshot: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing zstd writer: %w", err)
	}
	return nil
}

// LoadSnapshot replaces the grid with the snapshot's state and returns
// the tick it was taken at. The snapshot must have been taken under
// the given rule, and the saved bound must survive this engine's
// SetBounds rounding unchanged; a snapshot taken under a chunked
// strategy always does, since its bound is a ChunkSize multiple.
func (e *Engine) LoadSnapshot(path string, r *rule.Rule) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return 0, fmt.Errorf("creating zstd reader: %w", err)
	}
	defer dec.Close()

	var snap snapshotV1
	if err := json.NewDecoder(bufio.NewReaderSize(dec, 256*1024)).Decode(&snap); err != nil {
		return 0, fmt.Errorf("decoding snapshot: %w", err)
	}
	if snap.Version != SnapshotVersion {
		return 0, fmt.Errorf("unsupported snapshot version %d", snap.Version)
	}
	if want := makeSnapshotRule(r); snap.Rule != want {
		return 0, fmt.Errorf("snapshot was taken under a different rule (%+v, active %+v)",
			snap.Rule, want)
	}
	n := int(snap.Bound) * int(snap.Bound) * int(snap.Bound)
	if len(snap.Values) != n || len(snap.Neighbors) != n {
		return 0, fmt.Errorf("snapshot is corrupt: bound %d implies %d cells, have %d/%d",
			snap.Bound, n, len(snap.Values), len(snap.Neighbors))
	}
	if got := e.SetBounds(snap.Bound); got != snap.Bound {
		return 0, fmt.Errorf("snapshot bound %d is not usable under strategy %s (would become %d)",
			snap.Bound, e.strategy, got)
	}

	copy(e.grid.values, snap.Values)
	copy(e.grid.neighbors, snap.Neighbors)
	return snap.Tick, nil
}
