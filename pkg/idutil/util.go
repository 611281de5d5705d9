package idutil

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/questx-lab/raffle/pkg/xcontext"
)

type Generator interface {
	Generate() int64
}

type snowflakeGenerator struct {
	node *snowflake.Node
}

// NewSnowflakeGenerator creates an id generator for the node configured in context.
func NewSnowflakeGenerator(ctx context.Context) (*snowflakeGenerator, error) {
	node, err := snowflake.NewNode(xcontext.Configs(ctx).Snowflake.NodeID)
	if err != nil {
		return nil, err
	}

	return &snowflakeGenerator{node: node}, nil
}

func (g *snowflakeGenerator) Generate() int64 {
	return g.node.Generate().Int64()
}

// TimeOf returns the moment the id was generated.
func TimeOf(id int64) time.Time {
	return time.UnixMilli(snowflake.ParseInt64(id).Time())
}
