package icons

// Options controls a Renderer. With zero Options a Renderer matches Render,
// except that an empty color selects DefaultColor.
type Options struct {
	DefaultColor string // used when a call passes an empty color (default: DefaultColor)
	StrictColor  bool   // reject fills ValidateColor refuses and NaN/Inf rotations
	Escape       bool   // XML-escape the fill before interpolating it
}

// Renderer renders icons with fixed options.
type Renderer struct {
	opts Options
}

// NewRenderer creates a renderer with the given options.
func NewRenderer(opts Options) *Renderer {
	if opts.DefaultColor == "" {
		opts.DefaultColor = DefaultColor
	}
	return &Renderer{opts: opts}
}

// Options returns the renderer's effective options.
func (r *Renderer) Options() Options { return r.opts }

// Render resolves and renders an icon. An empty color selects the configured
// default fill.
func (r *Renderer) Render(typeDesignator, category, color string, rotation float64) (string, error) {
	if color == "" {
		color = r.opts.DefaultColor
	}

	if r.opts.StrictColor {
		if err := ValidateColor(color); err != nil {
			return "", err
		}
		if err := ValidateRotation(rotation); err != nil {
			return "", err
		}
	}
	if r.opts.Escape {
		color = xmlEscape(color)
	}

	return newIconMarkup(Resolve(typeDesignator, category), color, rotation).String(), nil
}
