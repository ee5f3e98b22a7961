package vcard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// maxNumberedKeys bounds the auto-numbering search. Realistic vCards never
// get close; past the bound the field is dropped instead of overwriting data.
const maxNumberedKeys = 20

// Contact is one parsed contact record: an insertion-ordered mapping from
// field key to value, plus a duplicate flag set after parsing by
// FlagDuplicates. Field keys beyond Name and Category are generated
// dynamically ("Phone", "Phone 2", "Phone (Work)", ...).
type Contact struct {
	fields    *orderedmap.OrderedMap[string, string]
	Duplicate bool
}

// NewContact returns an empty contact record.
func NewContact() *Contact {
	return &Contact{fields: orderedmap.New[string, string]()}
}

// Set stores a field value, overwriting any previous value under the key.
func (c *Contact) Set(key, value string) {
	c.fields.Set(key, value)
}

// Get returns the value stored under key.
func (c *Contact) Get(key string) (string, bool) {
	return c.fields.Get(key)
}

// Has reports whether the key is present.
func (c *Contact) Has(key string) bool {
	_, ok := c.fields.Get(key)
	return ok
}

// Delete removes a field. It reports whether the key was present.
func (c *Contact) Delete(key string) bool {
	_, ok := c.fields.Delete(key)
	return ok
}

// Name returns the contact's Name field, or "" if unset.
func (c *Contact) Name() string {
	name, _ := c.fields.Get("Name")
	return name
}

// Len returns the number of fields.
func (c *Contact) Len() int {
	return c.fields.Len()
}

// Each calls fn for every field in insertion order.
func (c *Contact) Each(fn func(key, value string)) {
	for pair := c.fields.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Keys returns the field keys in insertion order.
func (c *Contact) Keys() []string {
	keys := make([]string, 0, c.fields.Len())
	for pair := c.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// AddField stores a value under an auto-numbered key so repeated properties
// never overwrite each other.
//
// First occurrence  -> "Phone" (or "Phone (Cell)" with a type label)
// Second occurrence -> "Phone 2" / "Phone 2 (Cell)"
// and so on. If every numbered slot is taken the field is dropped.
func (c *Contact) AddField(base, value, typeLabel string) {
	suffix := ""
	if typeLabel != "" {
		suffix = " (" + typeLabel + ")"
	}

	key := base + suffix
	if !c.Has(key) {
		c.fields.Set(key, value)
		return
	}

	for n := 2; n < maxNumberedKeys; n++ {
		key = fmt.Sprintf("%s %d%s", base, n, suffix)
		if !c.Has(key) {
			c.fields.Set(key, value)
			return
		}
	}

	// Pathological input: every numbered slot up to the bound is taken.
	log.Printf("vcard: dropping %q field, all numbered keys in use", base)
}

// MarshalJSON renders the contact as a flat JSON object with fields in
// insertion order, followed by the "_duplicate" flag.
func (c *Contact) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for pair := c.fields.Oldest(); pair != nil; pair = pair.Next() {
		k, err := json.Marshal(pair.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(pair.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		buf.WriteByte(',')
	}
	fmt.Fprintf(&buf, `"_duplicate":%t}`, c.Duplicate)
	return buf.Bytes(), nil
}

// UnmarshalJSON rebuilds a contact from a flat JSON object, preserving key
// order. Non-string values are stringified; "_duplicate" is read into the
// flag rather than stored as a field.
func (c *Contact) UnmarshalJSON(data []byte) error {
	raw := orderedmap.New[string, any]()
	if err := json.Unmarshal(data, raw); err != nil {
		return err
	}

	c.fields = orderedmap.New[string, string]()
	c.Duplicate = false
	for pair := raw.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key == "_duplicate" {
			if b, ok := pair.Value.(bool); ok {
				c.Duplicate = b
			}
			continue
		}
		switch v := pair.Value.(type) {
		case string:
			c.fields.Set(pair.Key, v)
		case nil:
			// skip nulls
		default:
			c.fields.Set(pair.Key, fmt.Sprint(v))
		}
	}
	return nil
}
