// Package link writes server-to-server protocol lines for the services uplink.
package link

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"

	"github.com/bnema/nickserv-gender/internal/domain"
	"github.com/bnema/nickserv-gender/internal/ports"
)

var (
	ErrMetadataUnsupported = errors.New("dialect does not support user metadata")

	serverIDPattern = regexp.MustCompile(`^[0-9][0-9A-Z]{2}$`)
	lineBreaks      = strings.NewReplacer("\r", "", "\n", "", "\x00", "")
)

// Link serialises protocol lines onto one uplink writer.
type Link struct {
	mu      sync.Mutex
	w       io.Writer
	sid     string
	dialect ports.Dialect
}

var _ ports.MetadataTransport = (*Link)(nil)

func New(w io.Writer, sid string, dialect ports.Dialect) (*Link, error) {
	if !serverIDPattern.MatchString(sid) {
		return nil, fmt.Errorf("invalid server id %q", sid)
	}
	if !dialect.Valid() {
		return nil, fmt.Errorf("unsupported protocol %q", dialect)
	}

	return &Link{w: w, sid: sid, dialect: dialect}, nil
}

func (l *Link) Dialect() ports.Dialect {
	return l.dialect
}

func (l *Link) ServerID() string {
	return l.sid
}

// SendMetadata emits ":<sid> METADATA <uid> <key> :<value>".
func (l *Link) SendMetadata(ctx context.Context, target domain.SessionUID, key, value string) error {
	if !l.dialect.SupportsUserMetadata() {
		return fmt.Errorf("%w: %s", ErrMetadataUnsupported, l.dialect)
	}

	return l.send(ctx, ":%s METADATA %s %s :%s", l.sid, target, key, value)
}

// Kill emits ":<sid> KILL <uid> :<reason>".
func (l *Link) Kill(ctx context.Context, target domain.SessionUID, reason string) error {
	return l.send(ctx, ":%s KILL %s :%s", l.sid, target, reason)
}

// Notice emits ":<from> NOTICE <uid> :<text>", one line per text line.
func (l *Link) Notice(ctx context.Context, from string, target domain.SessionUID, text string) error {
	for _, line := range strings.Split(text, "\n") {
		if err := l.send(ctx, ":%s NOTICE %s :%s", from, target, line); err != nil {
			return err
		}
	}

	return nil
}

func (l *Link) send(ctx context.Context, format string, args ...any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	line := lineBreaks.Replace(fmt.Sprintf(format, args...))

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := io.WriteString(l.w, line+"\r\n"); err != nil {
		return fmt.Errorf("write uplink line: %w", err)
	}

	return nil
}
