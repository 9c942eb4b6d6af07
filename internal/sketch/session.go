package sketch

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/kidandcat/geolog/internal/model"
)

var ErrNotReady = errors.New("sketch is still loading")

// Image is a Surface that can load a background image and export itself.
type Image interface {
	Surface
	// Paint draws src at the origin and returns once it is decoded and drawn.
	Paint(ctx context.Context, src string) error
	DataURI() (string, error)
}

type Backend interface {
	Sketch(ctx context.Context, projectID int64) (model.Sketch, error)
	SaveSketch(ctx context.Context, projectID int64, dataURI string) error
}

// Session is one project's sketch: load once, draw locally, save wholesale.
type Session struct {
	ProjectID int64

	backend  Backend
	image    Image
	engine   *Engine
	previous bool
}

func NewSession(b Backend, img Image, projectID int64) *Session {
	return &Session{
		ProjectID: projectID,
		backend:   b,
		image:     img,
		engine:    NewEngine(img),
	}
}

func (s *Session) Engine() *Engine {
	return s.engine
}

// Previous reports whether a saved sketch was loaded as the background.
func (s *Session) Previous() bool {
	return s.previous
}

// Load fetches the project's saved sketch, paints it, and only then enables
// drawing. A "no sketch" answer enables drawing on a blank surface. On error
// drawing stays disabled so a later Save cannot overwrite a sketch that
// failed to load.
func (s *Session) Load(ctx context.Context) error {
	sk, err := s.backend.Sketch(ctx, s.ProjectID)
	if err != nil {
		return err
	}
	if sk.Empty() {
		s.engine.Enable()
		return nil
	}
	if err := s.image.Paint(ctx, sk.Img); err != nil {
		log.Printf("sketch: project %d: paint saved sketch: %v", s.ProjectID, err)
		return fmt.Errorf("load sketch: %w", err)
	}
	s.previous = true
	s.engine.Enable()
	return nil
}

// Save uploads the whole surface, replacing the project's saved sketch.
func (s *Session) Save(ctx context.Context) error {
	if !s.engine.Ready() {
		return ErrNotReady
	}
	uri, err := s.image.DataURI()
	if err != nil {
		return err
	}
	if err := s.backend.SaveSketch(ctx, s.ProjectID, uri); err != nil {
		log.Printf("sketch: project %d: save: %v", s.ProjectID, err)
		return err
	}
	s.previous = true
	return nil
}

// Clear erases the surface locally; the server keeps its copy until Save.
func (s *Session) Clear() {
	s.engine.Clear()
}
