package store

import (
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID generates an invoice identifier: six upper-case hex characters drawn
// from a random UUID, joined with the last five digits of the millisecond
// clock. Short enough to read aloud, random enough that collisions are not a
// practical concern, and safe to embed in URLs and share messages.
func NewID(now time.Time) string {
	u := uuid.New()
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	return strings.ToUpper(hex.EncodeToString(u[:3])) + "-" + ms[len(ms)-5:]
}
