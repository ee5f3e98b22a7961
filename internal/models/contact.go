package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Contact is a stored contact row. Name and Category are first-class
// columns; every other field ("Phone (Cell)", "Email", ...) lives in Extra,
// an insertion-ordered map persisted as JSON in the extra_fields column.
type Contact struct {
	ID       int64
	Name     string
	Category string
	Extra    *orderedmap.OrderedMap[string, string]
}

// MarshalJSON flattens the contact into a single JSON object:
// id, Name, Category, then the extra fields in stored order.
func (c Contact) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `{"id":%d`, c.ID)

	name, err := json.Marshal(c.Name)
	if err != nil {
		return nil, err
	}
	category, err := json.Marshal(c.Category)
	if err != nil {
		return nil, err
	}
	buf.WriteString(`,"Name":`)
	buf.Write(name)
	buf.WriteString(`,"Category":`)
	buf.Write(category)

	if c.Extra != nil {
		for pair := c.Extra.Oldest(); pair != nil; pair = pair.Next() {
			k, err := json.Marshal(pair.Key)
			if err != nil {
				return nil, err
			}
			v, err := json.Marshal(pair.Value)
			if err != nil {
				return nil, err
			}
			buf.WriteByte(',')
			buf.Write(k)
			buf.WriteByte(':')
			buf.Write(v)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
