package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"hypermap/internal/domain/tile"
	errs "hypermap/internal/errors"
)

// EncodeMap returns the compact JSON array form of m, one object per node in id order.
func EncodeMap(m tile.Map) ([]byte, error) {
	if m == nil {
		m = tile.Map{}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to encode map: %w", err)
	}
	return data, nil
}

// nodeJSON mirrors tile.Node with types that expose missing or short fields.
type nodeJSON struct {
	Neighbors []int       `json:"neighbors"`
	State     *tile.State `json:"state"`
}

// DecodeMap reads exactly one JSON array of nodes. Every node must carry both
// keys and exactly tile.Arity neighbor slots.
func DecodeMap(r io.Reader) (tile.Map, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read map: %w", errs.ErrDecode, err)
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields()

	var raw []nodeJSON
	if err = decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %w", errs.ErrDecode, err)
	}
	if _, err = decoder.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after map", errs.ErrDecode)
	}

	m := make(tile.Map, len(raw))
	for id, node := range raw {
		if len(node.Neighbors) != tile.Arity {
			return nil, fmt.Errorf("%w: node %d has %d neighbor slots, expected %d", errs.ErrDecode, id, len(node.Neighbors), tile.Arity)
		}
		if node.State == nil {
			return nil, fmt.Errorf("%w: node %d has no state", errs.ErrDecode, id)
		}
		copy(m[id].Neighbors[:], node.Neighbors)
		m[id].State = *node.State
	}
	return m, nil
}
