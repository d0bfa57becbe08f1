package host

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/nickserv-gender/internal/domain"
	"github.com/bnema/nickserv-gender/internal/logging"
)

// Script replays uplink events, one per line:
//
//	CONNECT <uid> <nick>
//	REGISTER <uid> <account>
//	IDENTIFY <uid> <account>
//	MSG <uid> <service> <command line>
//	INFO <uid> <account>
//	QUIT <uid>
//	LOAD
//	UNLOAD
//
// Blank lines and lines starting with '#' are ignored.
type Script struct {
	Bus    *Bus
	Module Module
	Logger logging.Logger
}

func (s Script) Run(ctx context.Context, r io.Reader) error {
	logger := s.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		err := s.apply(ctx, line)
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrAccountNotFound):
			logger.Warn(ctx, "skipping event", "line", lineNo, "error", err)
		default:
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read events: %w", err)
	}

	return nil
}

func (s Script) apply(ctx context.Context, line string) error {
	event, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToUpper(event) {
	case "CONNECT":
		args, err := fields(event, rest, 2)
		if err != nil {
			return err
		}
		return s.Bus.Connect(ctx, domain.SessionUID(args[0]), args[1])
	case "REGISTER":
		args, err := fields(event, rest, 2)
		if err != nil {
			return err
		}
		return s.Bus.Dispatch(ctx, domain.SessionUID(args[0]), NickServService, "REGISTER "+args[1])
	case "IDENTIFY":
		args, err := fields(event, rest, 2)
		if err != nil {
			return err
		}
		return s.Bus.Identify(ctx, domain.SessionUID(args[0]), domain.NewAccountID(args[1]))
	case "MSG":
		uid, tail, _ := strings.Cut(rest, " ")
		service, text, _ := strings.Cut(strings.TrimSpace(tail), " ")
		if uid == "" || service == "" {
			return fmt.Errorf("MSG needs a uid and a service")
		}
		return s.Bus.Dispatch(ctx, domain.SessionUID(uid), service, text)
	case "INFO":
		args, err := fields(event, rest, 2)
		if err != nil {
			return err
		}
		return s.Bus.Dispatch(ctx, domain.SessionUID(args[0]), NickServService, "INFO "+args[1])
	case "QUIT":
		args, err := fields(event, rest, 1)
		if err != nil {
			return err
		}
		return s.Bus.Quit(ctx, domain.SessionUID(args[0]))
	case "LOAD":
		return s.Bus.Load(ctx, s.Module)
	case "UNLOAD":
		return s.Bus.Unload(ctx, s.Module.Name())
	default:
		return fmt.Errorf("unknown event %q", event)
	}
}

func fields(event, rest string, n int) ([]string, error) {
	args := strings.Fields(rest)
	if len(args) != n {
		return nil, fmt.Errorf("%s takes %d arguments, got %d", strings.ToUpper(event), n, len(args))
	}

	return args, nil
}
