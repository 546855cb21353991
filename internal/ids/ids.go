package ids

import (
	"fmt"
	"time"

	"github.com/segmentio/ksuid"
)

// New returns a timestamp-prefixed identifier. The millisecond prefix keeps
// IDs lexically close to insertion order; the ksuid suffix makes them unique.
func New() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), ksuid.New().String())
}
