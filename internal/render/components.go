package render

// Rect is the position and size of a visual element in terminal cells.
type Rect struct {
	Row, Col      int
	Height, Width int
}

// LayerPriority orders entities for compositing: lower values paint
// first, higher values paint over them. The concrete values match the
// teacher's layer.rs ordering (content below the status bar, the
// command/search window above that, notifications always on top).
type LayerPriority int

const (
	LayerContent LayerPriority = iota
	LayerStatusBar
	LayerFloatingWindow
	LayerNotification
)

// Renderable is the visual payload attached to an entity. Exactly one
// concrete type is stored per entity; RenderSystem type-switches on it
// when painting.
type Renderable interface{ isRenderable() }

type ContentRenderable struct{ State ContentDrawState }

type StatusBarRenderable struct{ State StatusDrawState }

type WindowRenderable struct{ State CommandDrawState }

type NotificationRenderable struct{ State NotificationDrawState }

// ModalRenderable marks an entity whose drawing is delegated to an
// active overlay component (internal/component) rather than painted
// directly by RenderSystem.
type ModalRenderable struct{ Layer LayerPriority }

func (ContentRenderable) isRenderable()      {}
func (StatusBarRenderable) isRenderable()    {}
func (WindowRenderable) isRenderable()       {}
func (NotificationRenderable) isRenderable() {}
func (ModalRenderable) isRenderable()        {}
