package mapper

import (
	"fmt"

	"github.com/google/uuid"
)

// Record ids are name-based UUIDs so that mapping the same document twice
// produces identical records.
func rootID(documentID uuid.UUID, kind string) uuid.UUID {
	return uuid.NewSHA1(documentID, []byte(kind))
}

func childID(parent uuid.UUID, collection string, position int) uuid.UUID {
	return uuid.NewSHA1(parent, []byte(fmt.Sprintf("%s/%d", collection, position)))
}
