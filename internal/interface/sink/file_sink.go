package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"departure-board-service/internal/domain/entity"
	"departure-board-service/templates"
)

// HTMLFileSink writes the rendered board page to a local file
type HTMLFileSink struct {
	path     string
	renderer *templates.BoardRenderer
}

// NewHTMLFileSink creates a sink writing HTML to path
func NewHTMLFileSink(path string, renderer *templates.BoardRenderer) *HTMLFileSink {
	return &HTMLFileSink{path: path, renderer: renderer}
}

func (s *HTMLFileSink) Name() string { return "html_file" }

// Publish renders board and replaces the file
func (s *HTMLFileSink) Publish(ctx context.Context, board *entity.Board) error {
	data, err := s.renderer.RenderBytes(board)
	if err != nil {
		return err
	}
	return writeFileAtomic(s.path, data)
}

// JSONFileSink writes the board as JSON to a local file
type JSONFileSink struct {
	path string
}

// NewJSONFileSink creates a sink writing JSON to path
func NewJSONFileSink(path string) *JSONFileSink {
	return &JSONFileSink{path: path}
}

func (s *JSONFileSink) Name() string { return "json_file" }

// Publish encodes board and replaces the file
func (s *JSONFileSink) Publish(ctx context.Context, board *entity.Board) error {
	data, err := MarshalBoard(board)
	if err != nil {
		return err
	}
	return writeFileAtomic(s.path, data)
}

// MarshalBoard encodes board the way every JSON sink publishes it
func MarshalBoard(board *entity.Board) ([]byte, error) {
	out := *board
	if out.Rows == nil {
		out.Rows = []entity.BoardRow{}
	}
	data, err := json.MarshalIndent(&out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal board: %w", err)
	}
	return append(data, '\n'), nil
}

// writeFileAtomic writes to a temp file next to path and renames it into
// place, so readers never see a partial file
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tmp.Name()
	defer os.Remove(tempPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tempPath, 0o644); err != nil {
		return err
	}

	return os.Rename(tempPath, path)
}
