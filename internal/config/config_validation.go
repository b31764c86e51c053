// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// validate checks that the merged configuration carries everything the
// server cannot run without and fills in defaults for the token parameters
// that have safe ones. Secrets are never defaulted.
func (c *StructuredConfig) validate() error {
	var err error

	if c.Storage.DB.DSN == "" {
		err = errors.Join(err, ErrNoDatabaseDSN)
	}

	if c.App.TokenSignKey == "" {
		err = errors.Join(err, ErrNoTokenSignKey)
	}

	if c.Server.HTTPAddress == "" {
		err = errors.Join(err, ErrNoServerAddress)
	}

	if c.App.TokenIssuer == "" {
		c.App.TokenIssuer = DefaultTokenIssuer
	}

	if c.App.TokenDuration <= 0 {
		c.App.TokenDuration = DefaultTokenDuration
	}

	return err
}
