package borrow

import (
	"bytes"

	"github.com/nbtkit/nbtkit/internal/hash"
	"github.com/nbtkit/nbtkit/mutf8"
)

// IndexedCompound is the opt-in O(1) alternative to Compound's default
// linear scan. Building the index costs one pass over the compound's
// children; callers who expect to look up many names in a large compound
// should build one once and reuse it, rather than paying the linear scan
// on every Get.
type IndexedCompound struct {
	c   Compound
	idx map[uint64][]int // hash(raw name bytes) -> indices into c.names()
}

// NewIndexedCompound builds an IndexedCompound over c. c itself is
// unmodified; the default Compound remains available for callers that
// don't need indexed lookup.
func NewIndexedCompound(c Compound) IndexedCompound {
	rows := c.names()
	idx := make(map[uint64][]int, len(rows))
	for i, row := range rows {
		h := hash.Name(c.doc.NameBytes(NameRef{Offset: row.NameOffset, Len: row.NameLen}))
		idx[h] = append(idx[h], i)
	}

	return IndexedCompound{c: c, idx: idx}
}

// Get looks up name via the hash index, falling back to a byte comparison
// among same-hash candidates to resolve collisions. Duplicate names still
// return the first match in insertion order, matching Compound.Get.
func (ic IndexedCompound) Get(name string) (TagView, bool) {
	key := mutf8.AppendMUTF8(nil, name)
	rows := ic.c.names()

	candidates := ic.idx[hash.Name(key)]
	best := -1
	for _, i := range candidates {
		row := rows[i]
		if bytes.Equal(ic.c.doc.NameBytes(NameRef{Offset: row.NameOffset, Len: row.NameLen}), key) {
			if best == -1 || i < best {
				best = i
			}
		}
	}
	if best == -1 {
		return TagView{}, false
	}

	return TagView{doc: ic.c.doc, idx: rows[best].ChildIndex}, true
}

// Len returns the number of direct children.
func (ic IndexedCompound) Len() int { return ic.c.Len() }
