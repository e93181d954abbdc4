package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/stellar/go/network"
)

// Server captures process-level configuration, loaded once at startup.
// The issuer secret is held here and handed to the ledger client at wiring
// time; nothing reloads or re-reads it per request.
type Server struct {
	Addr              string
	HorizonURL        string
	NetworkPassphrase string
	IssuerSecret      string

	// IPFSAPIURL is the IPFS HTTP API address (host:port or multiaddr).
	// Empty selects the in-memory metadata store for local development.
	IPFSAPIURL     string
	AllowedOrigins []string
	LedgerTimeout  time.Duration
}

// DefaultLedgerTimeout bounds every Horizon call so a hung submission surfaces
// as a distinct timeout/ambiguous error instead of hanging the request.
var DefaultLedgerTimeout = 30 * time.Second

// FromEnv builds a Server config from environment variables so main stays lean.
// A .env file is loaded first when present, matching local development setups.
func FromEnv() Server {
	_ = godotenv.Load()

	addr := os.Getenv("CREDCHAIN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	horizonURL := os.Getenv("HORIZON_URL")
	if horizonURL == "" {
		horizonURL = "https://horizon-testnet.stellar.org"
	}

	passphrase := os.Getenv("STELLAR_NETWORK_PASSPHRASE")
	if passphrase == "" {
		passphrase = network.TestNetworkPassphrase
	}

	ledgerTimeout := DefaultLedgerTimeout
	if raw := os.Getenv("LEDGER_TIMEOUT"); raw != "" {
		if duration, err := time.ParseDuration(raw); err == nil {
			ledgerTimeout = duration
		}
	}

	origins := []string{"http://localhost:5173"}
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		origins = splitAndTrim(raw)
	}

	return Server{
		Addr:              addr,
		HorizonURL:        horizonURL,
		NetworkPassphrase: passphrase,
		IssuerSecret:      os.Getenv("STELLAR_ISSUER_SECRET"),
		IPFSAPIURL:        os.Getenv("IPFS_API_URL"),
		AllowedOrigins:    origins,
		LedgerTimeout:     ledgerTimeout,
	}
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
