package server

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/preproc-tools/abbrevserve/pkg/abbrev"
	"github.com/preproc-tools/abbrevserve/pkg/config"
	"github.com/preproc-tools/abbrevserve/pkg/dictionary"
	"github.com/preproc-tools/abbrevserve/pkg/segment"
)

// Server handles the IPC for abbreviation detection.
type Server struct {
	det  *abbrev.Detector
	dict *dictionary.Dict
	cfg  *config.Config
	dec  *msgpack.Decoder
	enc  *msgpack.Encoder
}

// NewServer creates a detection server reading requests from r and writing
// responses to w. main wires these to stdin/stdout; tests use buffers.
func NewServer(det *abbrev.Detector, dict *dictionary.Dict, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		det:  det,
		dict: dict,
		cfg:  cfg,
		dec:  msgpack.NewDecoder(r),
		enc:  msgpack.NewEncoder(w),
	}
}

// Start begins the synchronous request loop. It signals readiness first,
// then processes requests until the input stream closes.
func (s *Server) Start() error {
	log.Debug("Starting server.")
	s.send(StatusResponse{Status: "ready", Entries: s.dict.Len()})

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req Request) {
	switch req.Op {
	case "detect":
		s.handleDetect(req)
	case "sentences":
		s.handleSentences(req)
	case "chunks":
		s.handleChunks(req)
	case "dict_info":
		s.send(StatusResponse{ID: req.ID, Status: "ok", Entries: s.dict.Len()})
	case "health":
		s.send(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown op: %s", req.Op), 400)
	}
}

func (s *Server) handleDetect(req Request) {
	if !s.checkText(req) {
		return
	}
	start := time.Now()
	known, unknown := s.det.Detect(req.Text)
	elapsed := time.Since(start)

	s.send(DetectResponse{
		ID:        req.ID,
		Known:     toSpans(known),
		Unknown:   toSpans(unknown),
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleSentences(req Request) {
	if !s.checkText(req) {
		return
	}
	start := time.Now()
	sentences := segment.Sentences(req.Text, s.det)
	elapsed := time.Since(start)

	s.send(SegmentResponse{
		ID:        req.ID,
		Spans:     segSpans(sentences),
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleChunks(req Request) {
	if !s.checkText(req) {
		return
	}
	start := time.Now()
	chunks := segment.Chunks(req.Text, s.det, s.cfg.Segment.ChunkWordLength, s.cfg.Segment.SentOverlap)
	elapsed := time.Since(start)

	s.send(SegmentResponse{
		ID:        req.ID,
		Spans:     segSpans(chunks),
		TimeTaken: elapsed.Microseconds(),
	})
}

// checkText enforces the configured size limit. Empty text is valid and
// simply yields empty results.
func (s *Server) checkText(req Request) bool {
	if max := s.cfg.Server.MaxTextLen; max > 0 && len(req.Text) > max {
		s.sendError(req.ID, fmt.Sprintf("Text exceeds maximum length of %d bytes", max), 400)
		log.Debugf("Text too long in request %s: %d bytes", req.ID, len(req.Text))
		return false
	}
	return true
}

// send marshals the response and writes it to the client.
func (s *Server) send(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}

func toSpans(abbrevs []abbrev.Abbreviation) []Span {
	spans := make([]Span, len(abbrevs))
	for i, a := range abbrevs {
		spans[i] = Span{Text: a.Text, Start: a.Start, End: a.End}
	}
	return spans
}

func segSpans(in []segment.Span) []Span {
	spans := make([]Span, len(in))
	for i, s := range in {
		spans[i] = Span{Text: s.Text, Start: s.Start, End: s.End}
	}
	return spans
}
