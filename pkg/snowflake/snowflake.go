package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenRunID 每次同步任务一个 ID，日志和状态接口都用它串起来
func GenRunID() int64 {
	return node.Generate().Int64()
}
