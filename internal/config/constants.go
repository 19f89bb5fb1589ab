package config

const (
	// Field length bounds (characters, counted after trimming)
	MaxTitleLen = 200
	MaxTextLen  = 5000

	// Message window on chat retrieval
	DefaultMessageLimit = 20
	MaxMessageLimit     = 100
)
