package redis

import (
	"fmt"

	"github.com/mcoot/shopsim/internal/model"
)

// Key prefix for all shop data
const keyPrefix = "shopsim"

// productKey returns the Redis key for a Product
func productKey(id model.ProductID) string {
	return fmt.Sprintf("%s:product:%d", keyPrefix, id)
}

// productIndexKey returns the Redis key for the SET of product keys
func productIndexKey() string {
	return fmt.Sprintf("%s:idx:products", keyPrefix)
}
