package scene

import "sync/atomic"

// NodeID uniquely identifies a node within a process.
// IDs are assigned eagerly at construction and never reused.
type NodeID uint64

var nodeIDCounter atomic.Uint64

// nextNodeID returns a fresh, process-unique node ID.
func nextNodeID() NodeID {
	return NodeID(nodeIDCounter.Add(1))
}
