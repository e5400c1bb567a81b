package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Signing tokens with an empty secret would make every issued credential
// forgeable, so an empty TokenSignKey aborts startup instead of degrading
// into insecure behavior. Likewise the service cannot run without a
// database DSN.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrEmptyTokenSignKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
