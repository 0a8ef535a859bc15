package sr

import (
	"math/big"

	"github.com/google/uuid"
)

// NewUID generates a unique DICOM UID under the 2.25 UUID-derived root
// (PS3.5 B.2): the decimal form of a random 128-bit UUID.
func NewUID() string {
	u := uuid.New()
	var n big.Int
	n.SetBytes(u[:])
	return "2.25." + n.String()
}
