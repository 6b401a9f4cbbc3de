package app

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
)

// ResultSet holds the keys or the values of a query response. Key and
// Value of a response always carry a ResultSet of the same length.
type ResultSet struct {
	Results [][]byte `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
}

type resultSet ResultSet

func (m *resultSet) Reset()         { *m = resultSet{} }
func (m *resultSet) String() string { return proto.CompactTextString(m) }
func (*resultSet) ProtoMessage()    {}

func (m *ResultSet) Marshal() ([]byte, error) {
	return proto.Marshal((*resultSet)(m))
}

func (m *ResultSet) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*resultSet)(m))
}

// ResultsFromKeys returns a ResultSet of all keys
// given a set of models
func ResultsFromKeys(models []nftswap.Model) *ResultSet {
	res := make([][]byte, len(models))
	for i, m := range models {
		res[i] = m.Key
	}
	return &ResultSet{Results: res}
}

// ResultsFromValues returns a ResultSet of all values
// given a set of models
func ResultsFromValues(models []nftswap.Model) *ResultSet {
	res := make([][]byte, len(models))
	for i, m := range models {
		res[i] = m.Value
	}
	return &ResultSet{Results: res}
}

// JoinResults inverts ResultsFromKeys and ResultsFromValues
// and makes then a consistent whole again
func JoinResults(keys, values *ResultSet) ([]nftswap.Model, error) {
	kref, vref := keys.Results, values.Results
	if len(kref) != len(vref) {
		return nil, errors.Wrapf(errors.ErrState, "%d keys and %d values", len(kref), len(vref))
	}
	mods := make([]nftswap.Model, len(kref))
	for i := range mods {
		mods[i] = nftswap.Pair(kref[i], vref[i])
	}
	return mods, nil
}

// UnmarshalOneResult will parse a resultset, and
// it if is not empty, unmarshal the first result into o
func UnmarshalOneResult(bz []byte, o nftswap.Persistent) error {
	var res ResultSet
	if err := res.Unmarshal(bz); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if len(res.Results) == 0 {
		return errors.ErrNotFound
	}
	return o.Unmarshal(res.Results[0])
}
