package main

import (
	"fmt"

	"github.com/kotaroooo0/invindex"
	"github.com/kotaroooo0/invindex/internal/config"
)

// newStorage builds the storage policy selected by cfg. The returned close
// function releases whatever the policy holds open.
func newStorage(cfg *config.Config) (invindex.Storage, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Storage.Policy {
	case config.PolicyPlain:
		return invindex.NewStoragePlainImpl(), noop, nil
	case config.PolicyCompressed:
		s, err := invindex.NewStorageCompressedImpl(cfg.Storage.Level, cfg.Storage.Encoding)
		return s, noop, err
	case config.PolicyPacked:
		s, err := invindex.NewStoragePackedImpl(cfg.Storage.Encoding)
		return s, noop, err
	case config.PolicyBolt:
		return invindex.NewStorageBoltImpl(), noop, nil
	case config.PolicyRdb:
		db, err := invindex.NewDBClient(invindex.NewDBConfig(
			cfg.MySQL.User, cfg.MySQL.Password, cfg.MySQL.Addr, cfg.MySQL.Port, cfg.MySQL.Database))
		if err != nil {
			return nil, nil, err
		}
		s := invindex.NewStorageRdbImpl(db)
		if err := s.Migrate(); err != nil {
			db.Close()
			return nil, nil, err
		}
		return s, db.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", invindex.ErrUnknownPolicy, cfg.Storage.Policy)
	}
}
