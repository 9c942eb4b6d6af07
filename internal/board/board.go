// Package board is a project's message board: a paginated list of messages
// plus the post action.
package board

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/kidandcat/geolog/internal/gateway"
	"github.com/kidandcat/geolog/internal/model"
	"github.com/kidandcat/geolog/internal/pager"
)

var ErrEmpty = errors.New("message is empty")

type Backend interface {
	Messages(ctx context.Context, projectID int64, page int) (gateway.MessagesPage, error)
	PostMessage(ctx context.Context, projectID int64, body string) error
}

type Board struct {
	ProjectID int64

	backend Backend

	mu       sync.Mutex
	gen      uint64
	messages []model.Message
	state    pager.State
}

func New(b Backend, projectID int64) *Board {
	return &Board{ProjectID: projectID, backend: b}
}

// Load replaces the shown page. A failed or superseded load leaves the board as it was.
func (b *Board) Load(ctx context.Context, page int) error {
	b.mu.Lock()
	b.gen++
	gen := b.gen
	b.mu.Unlock()

	p, err := b.backend.Messages(ctx, b.ProjectID, page)

	b.mu.Lock()
	defer b.mu.Unlock()
	if gen != b.gen {
		return nil
	}
	if err != nil {
		log.Printf("board: project %d page %d: %v", b.ProjectID, page, err)
		return err
	}
	b.messages = p.Messages
	b.state = p.State
	return nil
}

// Post appends a message and shows the first page, where it now sits.
func (b *Board) Post(ctx context.Context, body string) error {
	body = strings.TrimSpace(body)
	if body == "" {
		return ErrEmpty
	}
	if err := b.backend.PostMessage(ctx, b.ProjectID, body); err != nil {
		log.Printf("board: post to project %d: %v", b.ProjectID, err)
		return err
	}
	return b.Load(ctx, 1)
}

func (b *Board) Messages() []model.Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.messages
}

func (b *Board) State() pager.State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Controls binds the Previous/Next controls to load, keyed by the project id.
func (b *Board) Controls(load pager.LoadFunc) pager.Controls {
	return pager.Bind(b.State(), b.ProjectID, load)
}
