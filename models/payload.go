package models

import "encoding/json"

// ItemPayload is the stored shape of an item's values: a flat mapping from
// template field key to string value.
type ItemPayload struct {
	Values map[string]string `json:"values"`
}

// UnmarshalJSON defaults a missing values member to an empty map.
func (p *ItemPayload) UnmarshalJSON(data []byte) error {
	var wire struct {
		Values *map[string]string `json:"values"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	p.Values = valueOr(wire.Values, map[string]string{})
	if p.Values == nil {
		p.Values = map[string]string{}
	}
	return nil
}
