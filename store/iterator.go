package store

import (
	"bytes"
)

// combine merges the parent iterator with the cached items, both in
// ascending order. Cached items win over the parent on equal keys and
// deleted items hide the parent entry. The parent is always closed.
func combine(parent Iterator, cached []keyer) ([]Model, error) {
	defer parent.Close()

	var res []Model
	i := 0
	for parent.Valid() {
		pk := parent.Key()
		// take every cached item sorted before the parent key
		for i < len(cached) && bytes.Compare(cached[i].Key(), pk) < 0 {
			res = appendItem(res, cached[i])
			i++
		}
		if i < len(cached) && bytes.Equal(cached[i].Key(), pk) {
			res = appendItem(res, cached[i])
			i++
		} else {
			res = append(res, Model{Key: pk, Value: parent.Value()})
		}
		if err := parent.Next(); err != nil {
			return nil, err
		}
	}
	for ; i < len(cached); i++ {
		res = appendItem(res, cached[i])
	}
	return res, nil
}

func appendItem(res []Model, item keyer) []Model {
	if s, ok := item.(setItem); ok {
		return append(res, Model{Key: s.key, Value: s.value})
	}
	return res
}
