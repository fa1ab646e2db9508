package email

// Config is injected into the gateway at construction.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	UseTLS    bool

	// RedirectInDebug sends every message to VerifiedEmail instead of the real recipient.
	RedirectInDebug bool
	VerifiedEmail   string
}

func DefaultConfig() *Config {
	return &Config{
		Host:   "localhost",
		Port:   587,
		UseTLS: true,
	}
}
