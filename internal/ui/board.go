package ui

import (
	"errors"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/kidandcat/geolog/internal/board"
	"github.com/kidandcat/geolog/internal/gateway"
	"github.com/kidandcat/geolog/internal/model"
	"github.com/kidandcat/geolog/internal/pager"
	"github.com/kidandcat/geolog/internal/render"
)

// MessageBoard is a project's message list. It paginates independently of the
// project's borehole list.
type MessageBoard struct {
	app.Compo

	ProjectID int64
	Client    *gateway.Client

	board    *board.Board
	messages []model.Message
	state    pager.State
}

const messageInputID = "message-input"

func (m *MessageBoard) OnMount(ctx app.Context) {
	m.reset(ctx)
}

func (m *MessageBoard) OnUpdate(ctx app.Context) {
	if m.board == nil || m.board.ProjectID != m.ProjectID {
		m.reset(ctx)
	}
}

func (m *MessageBoard) reset(ctx app.Context) {
	m.board = board.New(m.Client, m.ProjectID)
	m.messages = nil
	m.state = pager.State{}
	m.load(ctx, m.ProjectID, 1)
}

func (m *MessageBoard) load(ctx app.Context, _ int64, page int) {
	b := m.board
	ctx.Async(func() {
		err := b.Load(ctx, page)
		ctx.Dispatch(func(ctx app.Context) {
			m.refresh(b)
			alert(err)
		})
	})
}

func (m *MessageBoard) refresh(b *board.Board) {
	if b != m.board {
		return
	}
	m.messages = b.Messages()
	m.state = b.State()
}

func (m *MessageBoard) post(ctx app.Context, e app.Event) {
	body := inputValue(messageInputID)
	b := m.board
	ctx.Async(func() {
		err := b.Post(ctx, body)
		ctx.Dispatch(func(ctx app.Context) {
			m.refresh(b)
			if errors.Is(err, board.ErrEmpty) {
				return
			}
			if err == nil {
				app.Window().GetElementByID(messageInputID).Set("value", "")
			}
			alert(err)
		})
	})
}

func (m *MessageBoard) Render() app.UI {
	return app.Div().Class("message-board").Body(
		app.If(len(m.messages) == 0, func() app.UI {
			return emptyState("No messages yet.")
		}).Else(func() app.UI {
			return app.Ul().Class("messages").Body(
				app.Range(m.messages).Slice(func(i int) app.UI {
					msg := m.messages[i]
					return app.Li().Class("message").Body(
						app.Div().Class("message-meta").Body(
							app.Strong().Text(msg.User),
							app.Span().Class("message-date").Text(msg.Date),
						),
						app.Raw(`<div class="message-body">`+render.Markdown(msg.Body)+`</div>`),
					)
				}),
			)
		}),
		pagination(m.state, m.ProjectID, m.load),
		app.Div().Class("message-compose").Body(
			app.Textarea().ID(messageInputID).Rows(3).Placeholder("Write a message"),
			app.Button().Class("btn btn-primary").Text("Post").OnClick(m.post),
		),
	)
}
