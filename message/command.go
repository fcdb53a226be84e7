package message

// UndoPoint marks a spot in the command stream that undo can rewind to.
// Always allowed.
type UndoPoint struct {
	User UserID
}

func (m UndoPoint) Sender() UserID { return m.User }
func (UndoPoint) command()         {}

// CanvasResize grows or shrinks the canvas.
type CanvasResize struct {
	User   UserID
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

func (m CanvasResize) Sender() UserID { return m.User }
func (CanvasResize) command()         {}

// LayerCreate creates a new layer. Non-operators may only create layers
// whose ID carries their own user ID in the high byte.
type LayerCreate struct {
	User   UserID
	Layer  LayerID
	Source LayerID
	Fill   uint32
	Title  string
}

func (m LayerCreate) Sender() UserID { return m.User }
func (LayerCreate) command()         {}

// LayerAttributes changes a layer's opacity, blend mode, or flags.
type LayerAttributes struct {
	User    UserID
	Layer   LayerID
	Opacity uint8
	Blend   uint8
}

func (m LayerAttributes) Sender() UserID { return m.User }
func (LayerAttributes) command()         {}

// LayerRetitle renames a layer.
type LayerRetitle struct {
	User  UserID
	Layer LayerID
	Title string
}

func (m LayerRetitle) Sender() UserID { return m.User }
func (LayerRetitle) command()         {}

// LayerOrder rearranges the layer stack.
type LayerOrder struct {
	User   UserID
	Layers []LayerID
}

func (m LayerOrder) Sender() UserID { return m.User }
func (LayerOrder) command()         {}

// LayerDelete removes a layer, optionally merging it into the one below.
type LayerDelete struct {
	User  UserID
	Layer LayerID
	Merge bool
}

func (m LayerDelete) Sender() UserID { return m.User }
func (LayerDelete) command()         {}

// LayerVisibility toggles a layer's local visibility.
type LayerVisibility struct {
	User    UserID
	Layer   LayerID
	Visible bool
}

func (m LayerVisibility) Sender() UserID { return m.User }
func (LayerVisibility) command()         {}

// PutImage pastes pixel data onto a layer.
type PutImage struct {
	User  UserID
	Layer LayerID
	Mode  uint8
	X     uint32
	Y     uint32
	Image []byte
}

func (m PutImage) Sender() UserID { return m.User }
func (PutImage) command()         {}

// FillRect fills a rectangle with a solid color.
type FillRect struct {
	User   UserID
	Layer  LayerID
	Mode   uint8
	X      uint32
	Y      uint32
	Width  uint32
	Height uint32
	Color  uint32
}

func (m FillRect) Sender() UserID { return m.User }
func (FillRect) command()         {}

// MoveRect moves a region of a layer without transformation.
type MoveRect struct {
	User  UserID
	Layer LayerID
	SX    int32
	SY    int32
	TX    int32
	TY    int32
	W     int32
	H     int32
}

func (m MoveRect) Sender() UserID { return m.User }
func (MoveRect) command()         {}

// PenUp ends a stroke. Always allowed.
type PenUp struct {
	User UserID
}

func (m PenUp) Sender() UserID { return m.User }
func (PenUp) command()         {}

// AnnotationCreate creates a text annotation. Non-operators may only use
// annotation IDs prefixed with their own user ID.
type AnnotationCreate struct {
	User UserID
	ID   AnnotationID
	X    int32
	Y    int32
	W    uint16
	H    uint16
}

func (m AnnotationCreate) Sender() UserID { return m.User }
func (AnnotationCreate) command()         {}

// AnnotationReshape moves or resizes an annotation.
type AnnotationReshape struct {
	User UserID
	ID   AnnotationID
	X    int32
	Y    int32
	W    uint16
	H    uint16
}

func (m AnnotationReshape) Sender() UserID { return m.User }
func (AnnotationReshape) command()         {}

// AnnotationEdit changes an annotation's text and protection flag. When
// Protect is set the annotation is shielded from edits by users who are
// neither its creator nor operators.
type AnnotationEdit struct {
	User    UserID
	ID      AnnotationID
	Protect bool
	Text    string
}

func (m AnnotationEdit) Sender() UserID { return m.User }
func (AnnotationEdit) command()         {}

// AnnotationDelete removes an annotation.
type AnnotationDelete struct {
	User UserID
	ID   AnnotationID
}

func (m AnnotationDelete) Sender() UserID { return m.User }
func (AnnotationDelete) command()         {}

// PutTile writes a raw tile. Operators only; used during session resets.
type PutTile struct {
	User   UserID
	Layer  LayerID
	Col    uint16
	Row    uint16
	Repeat uint16
	Image  []byte
}

func (m PutTile) Sender() UserID { return m.User }
func (PutTile) command()         {}

// CanvasBackground changes the canvas background tile or color.
type CanvasBackground struct {
	User  UserID
	Image []byte
}

func (m CanvasBackground) Sender() UserID { return m.User }
func (CanvasBackground) command()         {}

// DrawDabsClassic draws a run of soft brush dabs.
type DrawDabsClassic struct {
	User  UserID
	Layer LayerID
	X     int32
	Y     int32
	Dabs  []byte
}

func (m DrawDabsClassic) Sender() UserID { return m.User }
func (DrawDabsClassic) command()         {}

// DrawDabsPixel draws a run of hard round pixel dabs.
type DrawDabsPixel struct {
	User  UserID
	Layer LayerID
	X     int32
	Y     int32
	Dabs  []byte
}

func (m DrawDabsPixel) Sender() UserID { return m.User }
func (DrawDabsPixel) command()         {}

// DrawDabsPixelSquare draws a run of square pixel dabs.
type DrawDabsPixelSquare struct {
	User  UserID
	Layer LayerID
	X     int32
	Y     int32
	Dabs  []byte
}

func (m DrawDabsPixelSquare) Sender() UserID { return m.User }
func (DrawDabsPixelSquare) command()         {}

// Undo undoes or redoes another user's undo point.
type Undo struct {
	User     UserID
	Override UserID
	Redo     bool
}

func (m Undo) Sender() UserID { return m.User }
func (Undo) command()         {}
