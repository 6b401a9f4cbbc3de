package orm

import "github.com/iov-one/nftswap"

// ConsumeIterator will read all remaining data into an
// array and close the iterator
func ConsumeIterator(itr nftswap.Iterator) ([]nftswap.Model, error) {
	defer itr.Close()

	var res []nftswap.Model
	for itr.Valid() {
		res = append(res, nftswap.Pair(itr.Key(), itr.Value()))
		if err := itr.Next(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// prefixEnd returns the smallest key that is greater than all keys
// starting with prefix, or nil if there is no such key.
func prefixEnd(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xFF {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}
