package snowflake

import (
	"errors"
	"strconv"

	"github.com/bwmarrin/snowflake"
)

// ErrInvalidID is returned by ParseID for anything that is not a positive
// decimal id.
var ErrInvalidID = errors.New("invalid id")

var node *snowflake.Node

// Init configures the generator. nodeID must be in 0-1023 and unique per
// process writing to the same database.
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return err
	}
	node = n
	return nil
}

// NextID generates a new record id.
func NextID() int64 {
	return node.Generate().Int64()
}

// FormatID renders an id the way the API exposes it. Ids travel as strings
// because they exceed the integer precision of JavaScript clients.
func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// ParseID is the inverse of FormatID.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
