package session

import (
	"encoding/json"
	"fmt"

	"github.com/apparata/appconsole/catalog"
	"github.com/apparata/appconsole/frame"
	"github.com/apparata/appconsole/observability"
	"github.com/apparata/appconsole/parser"
)

// LineReader is the terminal-input collaborator: reading a line of
// user input is outside the core protocol stack.
type LineReader interface {
	ReadLine() (string, error)
}

// OutputSink is the terminal-output collaborator: rendering
// consoleOutput/screenshot/file responses is outside the core
// protocol stack.
type OutputSink interface {
	ConsoleOutput(text string)
	Screenshot(data []byte)
	File(doc FileDocument)
}

// stdoutSink is the simple default OutputSink.
type stdoutSink struct{}

// StdoutSink returns an OutputSink that prints to standard output.
func StdoutSink() OutputSink { return stdoutSink{} }

func (stdoutSink) ConsoleOutput(text string) { fmt.Println(text) }
func (stdoutSink) Screenshot(data []byte)    { fmt.Printf("[screenshot: %d bytes]\n", len(data)) }
func (stdoutSink) File(doc FileDocument)     { fmt.Printf("[file: %s, %d bytes]\n", doc.Filename, len(doc.Filedata)) }

// Client holds at most one connection, to the service at Addr. It
// does not reconnect: when the session ends, RunOne returns the
// transport error and a new Connect is needed to start another
// session. A Client object is not safe for concurrent use from
// multiple goroutines.
type Client struct {
	Addr    string
	Logger  Logger
	Metrics *observability.Metrics
	Lines   LineReader
	Output  OutputSink

	conn    *frame.Conn
	catalog *catalog.Document
}

// NewClient builds a Client dialing addr.
func NewClient(addr string, lines LineReader, logger Logger) *Client {
	if logger == nil {
		logger = NoopLogger()
	}
	return &Client{Addr: addr, Logger: logger, Lines: lines, Output: StdoutSink()}
}

// Connect dials the service and performs the client's connect
// ordering: wait generalInfo, send listCommands, wait
// commandsSpecification, wait readyForCommand.
func (c *Client) Connect() (HostInfo, error) {
	conn, err := frame.NewClient(c.Addr)
	if err != nil {
		c.Metrics.RecordConnection("client", "dialError")
		return HostInfo{}, err
	}
	c.conn = conn
	c.Metrics.RecordConnection("client", "connected")
	c.Metrics.ConnectionOpened()

	infoEv, err := conn.ReadOne()
	if err != nil {
		return HostInfo{}, err
	}
	var info HostInfo
	if err := json.Unmarshal(infoEv.Payload, &info); err != nil {
		return HostInfo{}, &Error{Kind: ErrProtocol, Msg: "decoding generalInfo: " + err.Error()}
	}

	if err := conn.Send(EncodeMetadata(MessageListCommands), nil); err != nil {
		return HostInfo{}, err
	}

	specEv, err := conn.ReadOne()
	if err != nil {
		return HostInfo{}, err
	}
	if DecodeEnvelope(specEv).Type != MessageCommandsSpecification {
		return HostInfo{}, &Error{Kind: ErrProtocol, Msg: "expected commandsSpecification"}
	}
	doc, err := catalog.Decode(specEv.Payload)
	if err != nil {
		return HostInfo{}, err
	}
	c.catalog = doc

	readyEv, err := conn.ReadOne()
	if err != nil {
		return HostInfo{}, err
	}
	if DecodeEnvelope(readyEv).Type != MessageReadyForCommand {
		return HostInfo{}, &Error{Kind: ErrProtocol, Msg: "expected readyForCommand"}
	}

	return info, nil
}

// Catalog returns the command catalog received during Connect.
func (c *Client) Catalog() *catalog.Document { return c.catalog }

// RunOne reads one line, parses it, sends executeCommand, and
// delivers interleaved consoleOutput/screenshot/file responses to
// Output until readyForCommand arrives.
func (c *Client) RunOne() error {
	line, err := c.Lines.ReadLine()
	if err != nil {
		return err
	}

	inv, perr := parser.Parse(c.catalog.Commands, line)
	if perr != nil {
		if asParserError(perr) == parser.ErrUsageRequested {
			c.Output.ConsoleOutput(parserErrorUsage(perr))
			return nil
		}
		c.Output.ConsoleOutput(perr.Error())
		return nil
	}

	payload, err := parser.EncodeInvocation(inv)
	if err != nil {
		return err
	}
	if err := c.conn.Send(EncodeMetadata(MessageExecuteCommand), payload); err != nil {
		return err
	}

	for {
		ev, err := c.conn.ReadOne()
		if err != nil {
			return err
		}
		env := DecodeEnvelope(ev)
		switch env.Type {
		case MessageConsoleOutput:
			c.Output.ConsoleOutput(string(env.Payload))
		case MessageScreenshot:
			c.Output.Screenshot(env.Payload)
		case MessageFile:
			var doc FileDocument
			if err := json.Unmarshal(env.Payload, &doc); err == nil {
				c.Output.File(doc)
			}
		case MessageReadyForCommand:
			return nil
		default:
			c.Logger.Debugf("session: ignoring unknown message type %q", env.Type)
		}
	}
}

// Close tears down the connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	c.Metrics.ConnectionClosed()
	return c.conn.Cancel()
}

func asParserError(err error) parser.ErrorKind {
	if perr, ok := err.(*parser.Error); ok {
		return perr.Kind
	}
	return ""
}

func parserErrorUsage(err error) string {
	if perr, ok := err.(*parser.Error); ok {
		return perr.Usage
	}
	return ""
}
