package data

import (
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a digest of every entry in the catalog. Two catalogs
// built from the same resource tree have the same fingerprint.
func (c *Catalog) Fingerprint() string {
	h, err := blake2b.New256(nil)
	if err != nil {
		// New256 fails only for keys longer than 64 bytes.
		panic(err)
	}
	writeTable(h, "equip", c.equip)
	writeTable(h, "bundle", c.bundle)
	writeTable(h, "state_change", c.stateChange)
	writeTable(h, "portal_scroll", c.portalScroll)
	writeTable(h, "upgrade", c.upgrade)
	writeTable(h, "item_name", c.itemNames)
	writeTable(h, "map_name", c.mapNames)
	return hex.EncodeToString(h.Sum(nil))
}

func writeTable[V any](w io.Writer, table string, m map[int32]V) {
	fmt.Fprintf(w, "%s:%d\n", table, len(m))
	for _, id := range sortedKeys(m) {
		fmt.Fprintf(w, "%d=%+v\n", id, m[id])
	}
}
