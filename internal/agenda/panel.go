package agenda

import "context"

// ======================================================
// PANEL PLACEMENT
// ======================================================

type Point struct {
	X int
	Y int
}

type Size struct {
	Width  int
	Height int
}

// Place ancre le panneau d'édition au pointeur, puis le rabat de l'autre
// côté du point de clic quand il déborderait de la fenêtre. Un seul rabat
// par axe, rien de plus : un panneau plus grand que la fenêtre peut encore
// déborder.
func Place(pointer Point, panel Size, viewport Size) Point {
	pos := pointer

	if pointer.X+panel.Width > viewport.Width {
		pos.X = pointer.X - panel.Width
	}

	if pointer.Y+panel.Height > viewport.Height {
		pos.Y = pointer.Y - panel.Height
	}

	return pos
}

// ======================================================
// PANEL STATE MACHINE
// ======================================================

type PanelState int

const (
	PanelClosed PanelState = iota
	PanelEditing
	PanelConfirming
)

// confirmAction est une action destructive en attente de confirmation
// explicite. Elle ne survit jamais à une fermeture du panneau.
type confirmAction struct {
	message string
	run     func(context.Context) error
}

// panel est l'état du panneau flottant : fermé, en édition d'un brouillon,
// ou en attente de confirmation d'une action.
type panel struct {
	state    PanelState
	position Point
	draft    *Draft
	pending  *confirmAction
}

func (p *panel) openEditing(draft *Draft, position Point) {
	p.state = PanelEditing
	p.position = position
	p.draft = draft
	p.pending = nil
}

func (p *panel) openConfirm(message string, run func(context.Context) error) {
	p.state = PanelConfirming
	p.draft = nil
	p.pending = &confirmAction{message: message, run: run}
}

func (p *panel) close() {
	p.state = PanelClosed
	p.draft = nil
	p.pending = nil
}
