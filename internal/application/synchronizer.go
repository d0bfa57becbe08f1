package application

import (
	"context"

	"github.com/bnema/nickserv-gender/internal/domain"
	"github.com/bnema/nickserv-gender/internal/logging"
	"github.com/bnema/nickserv-gender/internal/ports"
)

// GenderWireKey is the METADATA key carried on the uplink.
const GenderWireKey = "gender"

// Synchronizer pushes the network-visible gender of a session over the uplink.
type Synchronizer struct {
	transport ports.MetadataTransport
	logger    logging.Logger
}

func NewSynchronizer(transport ports.MetadataTransport, logger logging.Logger) *Synchronizer {
	if logger == nil {
		logger = logging.Discard()
	}

	return &Synchronizer{transport: transport, logger: logger}
}

// Announce sets the gender metadata of uid to gender; an empty gender clears it.
// Delivery is best effort and silently skipped on dialects without user metadata.
func (s *Synchronizer) Announce(ctx context.Context, uid domain.SessionUID, gender string) {
	dialect := s.transport.Dialect()
	if !dialect.SupportsUserMetadata() {
		s.logger.Debug(ctx, "metadata not supported by dialect", "dialect", dialect, "uid", uid)
		return
	}

	if err := s.transport.SendMetadata(ctx, uid, GenderWireKey, gender); err != nil {
		s.logger.Warn(ctx, "send gender metadata", "uid", uid, "error", err)
		return
	}

	s.logger.Debug(ctx, "sent gender metadata", "uid", uid, "value", gender)
}
