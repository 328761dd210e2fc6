package pgconv

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// ExpiryToPgtype returns now+ttl, or SQL NULL when ttl is not positive.
func ExpiryToPgtype(now time.Time, ttl time.Duration) pgtype.Timestamptz {
	if ttl <= 0 {
		return pgtype.Timestamptz{Valid: false}
	}
	return pgtype.Timestamptz{Time: now.Add(ttl).UTC(), Valid: true}
}
