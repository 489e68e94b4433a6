package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/wordsolve/internal/logger"
	"github.com/bastiangx/wordsolve/pkg/config"
	"github.com/bastiangx/wordsolve/pkg/engine"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Handler answers engine requests. *engine.Engine implements it.
type Handler interface {
	Handle(ctx context.Context, req engine.Request) (engine.Response, error)
}

// Server handles the IPC for the solver
type Server struct {
	handler  Handler
	config   *config.Config
	reader   io.Reader
	writer   *bufio.Writer
	log      *log.Logger
	requests int
}

// NewServer creates a solver server using stdin/stdout for IPC
func NewServer(handler Handler, cfg *config.Config) *Server {
	return NewServerWithIO(handler, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server on the given streams.
func NewServerWithIO(handler Handler, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		handler: handler,
		config:  cfg,
		reader:  bufio.NewReader(r),
		writer:  bufio.NewWriter(w),
		log:     logger.New("server"),
	}
}

// Start begins listening for IPC requests and returns when the input stream
// ends or ctx is done.
func (s *Server) Start(ctx context.Context) error {
	s.log.Debug("Starting server")
	if err := s.send(StatusResponse{Type: TypeReady}); err != nil {
		return err
	}

	dec := msgpack.NewDecoder(s.reader)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		var req engine.Request
		if err := dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				s.log.Debug("Input closed", "requests", s.requests)
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			// the stream position is unknown after a bad message
			if sendErr := s.sendError("", "Invalid msgpack request", CodeBadRequest); sendErr != nil {
				return sendErr
			}
			return fmt.Errorf("decode request: %w", err)
		}
		if err := s.handleRequest(ctx, req); err != nil {
			return err
		}
	}
}

// handleRequest validates one request, runs it and writes the answer.
func (s *Server) handleRequest(ctx context.Context, req engine.Request) error {
	s.requests++
	maxInput := s.config.Server.MaxInput
	if maxInput > 0 && (len(req.Letters) > maxInput || len(req.Word) > maxInput) {
		s.log.Debug("Input too long", "id", req.ID, "max", maxInput)
		return s.sendError(req.ID, fmt.Sprintf("Input exceeds maximum length of %d characters", maxInput), CodeInputTooLarge)
	}

	start := time.Now()
	resp, err := s.handler.Handle(ctx, req)
	if err != nil {
		s.log.Debug("Rejected request", "id", req.ID, "err", err)
		return s.sendError(req.ID, err.Error(), CodeBadRequest)
	}
	if s.config.Server.LogTiming {
		s.log.Info("Handled request", "id", req.ID, "type", req.Type, "took", time.Since(start))
	}
	return s.send(resp)
}

// send encodes one message and flushes it so the client sees it at once.
func (s *Server) send(v any) error {
	data, err := msgpack.Marshal(v)
	if err != nil {
		s.log.Errorf("Marshaling response: %v", err)
		data, err = msgpack.Marshal(ErrorResponse{Type: TypeError, Error: "Internal server error", Code: CodeInternal})
		if err != nil {
			return err
		}
	}
	if _, err := s.writer.Write(data); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return s.writer.Flush()
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) error {
	return s.send(ErrorResponse{ID: id, Type: TypeError, Error: message, Code: code})
}

// Requests returns how many requests were handled.
func (s *Server) Requests() int {
	return s.requests
}
