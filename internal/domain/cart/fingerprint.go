package cart

import (
	"encoding/json"
	"strconv"

	"storefront/internal/domain/entity"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes the JSON form of the whole state, so any field a client can see
// changes it while equal carts share a fingerprint regardless of how they were reached.
// Absent stores encode as null and cannot be confused with a present one.
func Fingerprint(state entity.CartState) string {
	canonical := state.Clone()
	for i := range canonical.Lines {
		if canonical.Lines[i].Addons == nil {
			canonical.Lines[i].Addons = []entity.AddonSelection{}
		}
	}

	h := xxhash.New()
	// Every field of the state marshals without error.
	_ = json.NewEncoder(h).Encode(canonical)

	return strconv.FormatUint(h.Sum64(), 16)
}
