package pkguid

import (
	"crypto/rand"
	"encoding/binary"
	"sync"

	"github.com/bwmarrin/snowflake"
)

// epochMillis is Thu Oct 01 2026 00:00:00 UTC.
const epochMillis int64 = 1790812800000

//nolint:gochecknoglobals // the snowflake epoch is package state of the library
var setEpoch sync.Once

// Snowflake hands out time-ordered int64 IDs, unique per process.
type Snowflake struct {
	node *snowflake.Node
}

// randomNodeID picks a node number in [0, 1<<snowflake.NodeBits).
func randomNodeID() (int64, error) {
	var b [2]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint16(b[:])) & (1<<snowflake.NodeBits - 1), nil
}

// NewSnowflake returns a generator on a random node, so two processes sharing
// a temp dir are unlikely to collide.
func NewSnowflake() (*Snowflake, error) {
	setEpoch.Do(func() { snowflake.Epoch = epochMillis })

	nodeID, err := randomNodeID()
	if err != nil {
		return nil, err
	}

	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}

	return &Snowflake{node: node}, nil
}

func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}
