package session

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/apparata/appconsole/catalog"
	"github.com/apparata/appconsole/frame"
	"github.com/apparata/appconsole/handler"
	"github.com/apparata/appconsole/observability"
	"github.com/apparata/appconsole/parser"
)

// Service is the service-side session dispatcher: it accepts
// connections, greets each with generalInfo, then answers
// listCommands and executeCommand per the message-order contract.
type Service struct {
	Catalog  *catalog.Document
	Handlers *handler.Registry
	Info     HostInfo
	Logger   Logger
	Metrics  *observability.Metrics

	registry *Registry
}

// NewService builds a Service ready to Serve.
func NewService(doc *catalog.Document, handlers *handler.Registry, info HostInfo, logger Logger) *Service {
	if logger == nil {
		logger = NoopLogger()
	}
	return &Service{
		Catalog:  doc,
		Handlers: handlers,
		Info:     info,
		Logger:   logger,
		registry: NewRegistry(),
	}
}

// Connections returns the service's active-connection registry.
func (s *Service) Connections() *Registry { return s.registry }

// Serve accepts connections from ln until it stops accepting
// (Listener.Cancel elsewhere), handling each on its own goroutine.
func (s *Service) Serve(ln *frame.Listener) error {
	for {
		conn, err := ln.Accept()
		if err != nil {
			var ferr *frame.Error
			if errors.As(err, &ferr) && ferr.Kind == frame.ErrHandshakeFailed {
				s.Metrics.RecordConnection("service", "handshakeFailed")
				continue
			}
			s.Metrics.RecordConnection("service", "acceptError")
			return err
		}
		s.Metrics.RecordConnection("service", "accepted")
		go s.handle(conn)
	}
}

func (s *Service) handle(conn *frame.Conn) {
	id := uuid.NewString()
	s.registry.Add(&Connection{ID: id, Conn: conn})
	s.Metrics.ConnectionOpened()
	defer func() {
		s.registry.Remove(id)
		s.Metrics.ConnectionClosed()
		conn.Cancel()
	}()

	info, err := json.Marshal(s.Info)
	if err != nil {
		s.Logger.Errorf("session: encoding host info: %v", err)
		return
	}
	if err := conn.Send(EncodeMetadata(MessageGeneralInfo), info); err != nil {
		s.Logger.Errorf("session: sending generalInfo: %v", err)
		return
	}
	s.Metrics.RecordFrame("send", string(MessageGeneralInfo), len(info))

	err = conn.Run(func(ev frame.Event) {
		env := DecodeEnvelope(ev)
		s.Metrics.RecordFrame("recv", string(env.Type), len(env.Payload))

		switch env.Type {
		case MessageListCommands:
			s.handleListCommands(conn)
		case MessageExecuteCommand:
			s.handleExecuteCommand(conn, env.Payload)
		default:
			s.Logger.Debugf("session: ignoring unknown message type %q", env.Type)
		}
	})
	if err != nil {
		s.Logger.Infof("session: connection %s ended: %v", id, err)
	}
}

func (s *Service) handleListCommands(conn *frame.Conn) {
	data, err := catalog.Encode(s.Catalog)
	if err != nil {
		s.Logger.Errorf("session: encoding catalog: %v", err)
		return
	}
	if err := conn.Send(EncodeMetadata(MessageCommandsSpecification), data); err != nil {
		s.Logger.Errorf("session: sending commandsSpecification: %v", err)
		return
	}
	s.sendReady(conn)
}

func (s *Service) handleExecuteCommand(conn *frame.Conn, payload []byte) {
	defer s.sendReady(conn)

	ctx, span := observability.Tracer().Start(context.Background(), "parser.Parse")
	defer span.End()

	inv, err := parser.DecodeInvocation(payload)
	if err != nil {
		s.Metrics.RecordParseOutcome(parseOutcomeKind(err))
		span.RecordError(err)
		s.sendConsoleOutput(conn, err.Error())
		return
	}
	s.Metrics.RecordParseOutcome("")

	result, err := s.Handlers.Dispatch(ctx, inv)
	if err != nil {
		s.sendConsoleOutput(conn, err.Error())
		return
	}

	if result.Output != "" {
		s.sendConsoleOutput(conn, result.Output)
	}
	if result.Screenshot != nil {
		conn.Send(EncodeMetadata(MessageScreenshot), result.Screenshot)
	}
	for _, f := range result.Files {
		doc, err := json.Marshal(FileDocument{Filename: f.Name, Filedata: f.Data})
		if err != nil {
			s.Logger.Errorf("session: encoding file message: %v", err)
			continue
		}
		conn.Send(EncodeMetadata(MessageFile), doc)
	}
}

// parseOutcomeKind extracts the parser.Error kind label for metrics,
// falling back to a generic label for errors outside the parser's own
// *Error type. DecodeInvocation reports malformed wire bytes as a
// *parser.Error of kind ErrUnexpected, so they are counted under that
// kind.
func parseOutcomeKind(err error) string {
	var perr *parser.Error
	if errors.As(err, &perr) {
		return string(perr.Kind)
	}
	return "decodeError"
}

func (s *Service) sendConsoleOutput(conn *frame.Conn, text string) {
	if err := conn.Send(EncodeMetadata(MessageConsoleOutput), []byte(text)); err != nil {
		s.Logger.Errorf("session: sending consoleOutput: %v", err)
	}
}

func (s *Service) sendReady(conn *frame.Conn) {
	if err := conn.Send(EncodeMetadata(MessageReadyForCommand), nil); err != nil {
		s.Logger.Errorf("session: sending readyForCommand: %v", err)
	}
}
