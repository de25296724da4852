package state

import (
	"time"

	"thesisdoc/common"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start:   time.Now(),
		Variant: common.VariantFull,
	}
}
