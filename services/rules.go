package services

import (
	"os"
	"strconv"
)

// Rules carries the policy decisions the engines leave configurable:
// whether users may vote on their own content, whether deleting an
// already-deleted item is an error or a no-op, and an optional cap on the
// total bounty a question can accumulate (0 means uncapped).
type Rules struct {
	AllowSelfVote bool
	StrictDelete  bool
	MaxBounty     int64
}

func LoadRules() Rules {
	maxBounty, _ := strconv.ParseInt(os.Getenv("MAX_BOUNTY_AMOUNT"), 10, 64)
	return Rules{
		AllowSelfVote: os.Getenv("ALLOW_SELF_VOTE") == "true",
		StrictDelete:  os.Getenv("STRICT_DELETE") == "true",
		MaxBounty:     maxBounty,
	}
}
