package collection

import "strings"

// Tag is a single key/value pair attached to an EC2 resource
type Tag struct {
	Key   string
	Value string
}

// Tags is an ordered set of tags with unique keys. The zero value is empty and
// ready to use. Copies never share storage, so a propagated set can be
// modified without touching its source.
type Tags struct {
	tags []Tag
}

// NewTags builds a tag set; later duplicates overwrite earlier values
func NewTags(tags ...Tag) Tags {
	t := Tags{}
	for _, tag := range tags {
		t.Set(tag.Key, tag.Value)
	}
	return t
}

// FromMap builds a tag set from a map, ordered by insertion into the set
func FromMap(m map[string]string) Tags {
	t := Tags{}
	for k, v := range m {
		t.Set(k, v)
	}
	return t
}

func (t *Tags) Set(key, value string) {
	for i := range t.tags {
		if t.tags[i].Key == key {
			t.tags[i].Value = value
			return
		}
	}
	t.tags = append(t.tags, Tag{Key: key, Value: value})
}

func (t Tags) Get(key string) (string, bool) {
	for _, tag := range t.tags {
		if tag.Key == key {
			return tag.Value, true
		}
	}
	return "", false
}

func (t Tags) Len() int {
	return len(t.tags)
}

// All returns a copy of the tags in insertion order
func (t Tags) All() []Tag {
	all := make([]Tag, len(t.tags))
	copy(all, t.tags)
	return all
}

// Map returns the tags keyed by tag key
func (t Tags) Map() map[string]string {
	m := make(map[string]string, len(t.tags))
	for _, tag := range t.tags {
		m[tag.Key] = tag.Value
	}
	return m
}

func (t Tags) Copy() Tags {
	return Tags{tags: t.All()}
}

// Without returns a copy of the set with key removed
func (t Tags) Without(key string) Tags {
	out := Tags{}
	for _, tag := range t.tags {
		if tag.Key != key {
			out.tags = append(out.tags, tag)
		}
	}
	return out
}

// WithoutPrefix returns a copy of the set without the tags whose key starts
// with prefix
func (t Tags) WithoutPrefix(prefix string) Tags {
	out := Tags{}
	for _, tag := range t.tags {
		if !strings.HasPrefix(tag.Key, prefix) {
			out.tags = append(out.tags, tag)
		}
	}
	return out
}

// Split returns a copy holding the first n tags and the tags past n
func (t Tags) Split(n int) (Tags, []Tag) {
	if n < 0 {
		n = 0
	}
	if len(t.tags) <= n {
		return t.Copy(), nil
	}

	head := Tags{tags: make([]Tag, n)}
	copy(head.tags, t.tags[:n])

	rest := make([]Tag, len(t.tags)-n)
	copy(rest, t.tags[n:])

	return head, rest
}

// Rename returns a copy of the set where the tag stored under from is moved to
// to. The renamed tag replaces any existing value under to.
func (t Tags) Rename(from, to string) Tags {
	value, ok := t.Get(from)
	if !ok {
		return t.Copy()
	}

	out := t.Without(from)
	out.Set(to, value)
	return out
}
