package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// BracketView renders a bracket as one column per round.
func BracketView(data BracketData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}

		p.printf(`<section class="bracket">`)
		p.printf(`<header><h2>%s</h2>`, templ.EscapeString(data.Title))
		if data.Code != "" {
			p.printf(`<span class="code">%s</span>`, templ.EscapeString(data.Code))
		}
		if data.Draft {
			p.printf(`<span class="draft">Rascunho - ainda não salvo</span>`)
		}
		p.printf(`</header><div class="rounds">`)

		for _, round := range data.Rounds {
			p.printf(`<div class="round"><h3>%s</h3>`, templ.EscapeString(round.Label))
			for _, m := range round.Matches {
				class := "match"
				if m.Bye {
					class += " bye"
				}
				p.printf(`<div class="%s" id="match-%s">`, class, templ.EscapeString(m.ID))
				p.player(m.Player1, m.Bye)
				p.player(m.Player2, m.Bye)
				p.printf(`</div>`)
			}
			p.printf(`</div>`)
		}

		p.printf(`</div></section>`)
		return p.err
	})
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) player(pv *PlayerView, bye bool) {
	if pv == nil {
		if bye {
			p.printf(`<div class="player empty">BYE</div>`)
		} else {
			p.printf(`<div class="player empty">-</div>`)
		}
		return
	}

	class := "player"
	if pv.Winner {
		class += " winner"
	}
	p.printf(`<div class="%s"><span class="name">%s</span>`, class, templ.EscapeString(pv.Name))
	if pv.Organization != "" {
		p.printf(`<span class="org">%s</span>`, templ.EscapeString(pv.Organization))
	}
	p.printf(`</div>`)
}
