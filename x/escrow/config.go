package escrow

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/orm"
)

const (
	configBucketName = "escrowconf"
	optKey           = "escrow"
)

var configKey = []byte("config")

var _ orm.Model = (*Configuration)(nil)

// Validate always passes, any deposit value is acceptable.
func (c *Configuration) Validate() error {
	return nil
}

func newConfigBucket() orm.ModelBucket {
	return orm.NewModelBucket(configBucketName, &Configuration{})
}

// loadConfiguration returns the zero configuration if none was stored.
func loadConfiguration(db nftswap.ReadOnlyKVStore) (*Configuration, error) {
	var conf Configuration
	err := newConfigBucket().One(db, configKey, &conf)
	switch {
	case err == nil, errors.ErrNotFound.Is(err):
		return &conf, nil
	default:
		return nil, errors.Wrap(err, "cannot load configuration")
	}
}

// Initializer stores the escrow configuration from the genesis file.
type Initializer struct{}

var _ nftswap.Initializer = Initializer{}

// FromGenesis reads the "escrow" key, for example
//
//	"escrow": {"record_deposit": 10}
func (Initializer) FromGenesis(opts nftswap.Options, kv nftswap.KVStore) error {
	var conf Configuration
	if err := opts.ReadOptions(optKey, &conf); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	return newConfigBucket().Put(kv, configKey, &conf)
}
