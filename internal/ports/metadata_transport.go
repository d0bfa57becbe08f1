package ports

import (
	"context"

	"github.com/bnema/nickserv-gender/internal/domain"
)

// Dialect names the server-to-server protocol spoken on the uplink.
type Dialect string

const (
	DialectInspIRCd Dialect = "inspircd"
	DialectUnreal   Dialect = "unreal"
	DialectSolanum  Dialect = "solanum"
)

func (d Dialect) Valid() bool {
	switch d {
	case DialectInspIRCd, DialectUnreal, DialectSolanum:
		return true
	default:
		return false
	}
}

// SupportsUserMetadata reports whether the dialect can carry per-user METADATA.
func (d Dialect) SupportsUserMetadata() bool {
	return d == DialectInspIRCd
}

type MetadataTransport interface {
	Dialect() Dialect
	SendMetadata(ctx context.Context, target domain.SessionUID, key, value string) error
}
