package storage

import (
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
)

// IDGenerator hands out time-ordered message ids.
// Two ids from the same node never collide and always grow.
type IDGenerator struct {
	node *snowflake.Node
}

func NewIDGenerator(node int64) (*IDGenerator, error) {
	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, fmt.Errorf("snowflake node %d: %w", node, err)
	}
	return &IDGenerator{node: n}, nil
}

// Next returns a new id and the millisecond timestamp embedded in it.
func (g *IDGenerator) Next() (int64, time.Time) {
	id := g.node.Generate()
	return id.Int64(), time.UnixMilli(id.Time()).UTC()
}
