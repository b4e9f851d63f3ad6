// slots.go holds the per-slot primitives behind Store.
//
// writeSlots is the only place that touches more than one key
// on the write path: it writes the same blob to every aliased slot in order
// and stops at the first failure. There is no rollback. A failure after the
// primary slot succeeded leaves the legacy slot holding the previous list.

package store

import (
	"fmt"

	"howett.net/plist"
)

// readSlot returns the strings stored in one slot, or nil when the slot is
// missing or does not hold a plist array. Non-string elements are dropped.
func (s *Store) readSlot(key string) []string {
	blob, err := s.attrs.Get(key)
	if err != nil {
		s.log.Debug().Str("key", key).Err(err).Msg("tag slot skipped")
		return nil
	}
	tags, err := decodeList(blob)
	if err != nil {
		s.log.Debug().Str("key", key).Err(err).Msg("tag slot undecodable")
		return nil
	}
	return tags
}

// writeSlots writes blob to every slot, primary first.
func (s *Store) writeSlots(blob []byte) error {
	for _, key := range s.keys {
		if err := s.attrs.Set(key, blob); err != nil {
			return fmt.Errorf("write %s: %w", key, err)
		}
	}
	return nil
}

// encodeList serialises tags as a binary plist array. An empty list is
// encoded as an empty array, not omitted.
func encodeList(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	blob, err := plist.Marshal(tags, plist.BinaryFormat)
	if err != nil {
		return nil, fmt.Errorf("encode tag list: %w", err)
	}
	return blob, nil
}

// decodeList accepts any plist format and keeps only string elements.
func decodeList(blob []byte) ([]string, error) {
	var raw []any
	if _, err := plist.Unmarshal(blob, &raw); err != nil {
		return nil, fmt.Errorf("decode tag list: %w", err)
	}
	tags := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			tags = append(tags, s)
		}
	}
	return tags, nil
}
