package config

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. Server-side requirements
// (non-empty DSN, sign key) are enforced by the server main, not here,
// because the same structured config also backs the client binary.
func (cfg *StructuredConfig) validate() error {
	if cfg.Client.Transport != "" &&
		cfg.Client.Transport != TransportBearer &&
		cfg.Client.Transport != TransportCookie {
		return ErrInvalidTransportConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.ServerURL == "" || cfg.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.DBPath == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Transport != TransportBearer && cfg.Transport != TransportCookie {
		return ErrInvalidTransportConfigs
	}

	return nil
}
