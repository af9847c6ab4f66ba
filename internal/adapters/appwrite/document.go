package appwrite

import "encoding/json"

// Document is a stored record. System attributes ($-prefixed on the wire) are
// promoted to fields; everything else lands in Data
type Document struct {
	ID          string
	CreatedAt   string
	UpdatedAt   string
	Permissions []string
	Data        map[string]any
}

// DocumentList is a page of documents plus the store's total count.
// Total reflects the full matching set, independent of limit/offset
type DocumentList struct {
	Total     int        `json:"total"`
	Documents []Document `json:"documents"`
}

// UnmarshalJSON splits system attributes from custom data attributes
func (d *Document) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	d.Data = make(map[string]any, len(raw))
	for k, v := range raw {
		switch k {
		case "$id":
			_ = json.Unmarshal(v, &d.ID)
		case "$createdAt":
			_ = json.Unmarshal(v, &d.CreatedAt)
		case "$updatedAt":
			_ = json.Unmarshal(v, &d.UpdatedAt)
		case "$permissions":
			_ = json.Unmarshal(v, &d.Permissions)
		case "$collectionId", "$databaseId", "$sequence":
			// not consumed
		default:
			var val any
			if err := json.Unmarshal(v, &val); err != nil {
				return err
			}
			d.Data[k] = val
		}
	}
	return nil
}

// String returns a string data attribute, or "" when absent or not a string
func (d Document) String(key string) string {
	if v, ok := d.Data[key].(string); ok {
		return v
	}
	return ""
}

// Strings returns a string-array data attribute; non-string elements are skipped
func (d Document) Strings(key string) []string {
	raw, ok := d.Data[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
