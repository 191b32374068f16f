package entities

// The canvas document is the canonical JSON shape shared by the public API
// response, the admin export endpoint, the sync utility and the viewer's
// design-mode output.

// CanvasDocument is the top-level payload. Canvas and Settings are pointers
// and Hotspots is nilable so that import can distinguish an absent section
// from an empty one; read paths always populate all three, so an empty store
// still serializes with "hotspots": [].
type CanvasDocument struct {
	Canvas   *CanvasDimensions `json:"canvas,omitempty"`
	Settings *ZoomDocument     `json:"settings,omitempty"`
	Hotspots []HotspotDocument `json:"hotspots"`
}

type CanvasDimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type ZoomDocument struct {
	ZoomOnClick float64 `json:"zoomOnClick"`
	MinZoom     float64 `json:"minZoom"`
	MaxZoom     float64 `json:"maxZoom"`
}

type Region struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Content struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Video       string `json:"video"`
}

// HotspotDocument is one hotspot in the shared shape. Enabled is a pointer
// to carry the elision rule: absent means true on input, and the serializer
// only sets it when the stored value is false. Region, Content and Sequence
// are pointers so import can reject entries that omit them.
type HotspotDocument struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Enabled  *bool       `json:"enabled,omitempty"`
	Type     HotspotType `json:"type,omitempty"`
	Region   *Region     `json:"region"`
	Content  *Content    `json:"content"`
	Sequence *int        `json:"sequence"`
}

// IsEnabled applies the absent-means-true rule.
func (d HotspotDocument) IsEnabled() bool {
	return d.Enabled == nil || *d.Enabled
}

// Valid reports whether the entry carries every required field. Title may be
// empty, but the content object itself must exist; a nil sequence is
// rejected at write time.
func (d HotspotDocument) Valid() bool {
	return d.ID != "" && d.Name != "" && d.Region != nil && d.Content != nil && d.Sequence != nil
}

// ToHotspot converts a document entry to the stored entity, applying the
// enabled and type defaults. Callers must have checked Valid first.
func (d HotspotDocument) ToHotspot() Hotspot {
	typ := d.Type
	if typ == "" {
		typ = HotspotTypeText
	}
	return Hotspot{
		ID:          d.ID,
		Name:        d.Name,
		Enabled:     d.IsEnabled(),
		Type:        typ,
		X:           d.Region.X,
		Y:           d.Region.Y,
		Width:       d.Region.Width,
		Height:      d.Region.Height,
		Title:       d.Content.Title,
		Description: d.Content.Description,
		Image:       d.Content.Image,
		Video:       d.Content.Video,
		Sequence:    *d.Sequence,
	}
}

// ToHotspotLenient converts a document entry without requiring the optional
// sections to be present. Used by bulk replace, which inserts rows verbatim
// and leaves enforcement to the schema.
func (d HotspotDocument) ToHotspotLenient() Hotspot {
	region := Region{}
	if d.Region != nil {
		region = *d.Region
	}
	content := Content{}
	if d.Content != nil {
		content = *d.Content
	}
	sequence := 0
	if d.Sequence != nil {
		sequence = *d.Sequence
	}
	typ := d.Type
	if typ == "" {
		typ = HotspotTypeText
	}
	return Hotspot{
		ID:          d.ID,
		Name:        d.Name,
		Enabled:     d.IsEnabled(),
		Type:        typ,
		X:           region.X,
		Y:           region.Y,
		Width:       region.Width,
		Height:      region.Height,
		Title:       content.Title,
		Description: content.Description,
		Image:       content.Image,
		Video:       content.Video,
		Sequence:    sequence,
	}
}

// ToDocument serializes a stored hotspot into the shared shape. Type and all
// content fields are always emitted so that export round-trips losslessly;
// enabled follows the elision rule.
func (h Hotspot) ToDocument() HotspotDocument {
	typ := h.Type
	if typ == "" {
		typ = HotspotTypeText
	}
	seq := h.Sequence
	doc := HotspotDocument{
		ID:   h.ID,
		Name: h.Name,
		Type: typ,
		Region: &Region{
			X:      h.X,
			Y:      h.Y,
			Width:  h.Width,
			Height: h.Height,
		},
		Content: &Content{
			Title:       h.Title,
			Description: h.Description,
			Image:       h.Image,
			Video:       h.Video,
		},
		Sequence: &seq,
	}
	if !h.Enabled {
		disabled := false
		doc.Enabled = &disabled
	}
	return doc
}
