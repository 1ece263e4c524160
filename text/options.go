package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	index int
}

func defaultSourceConfig() sourceConfig {
	return sourceConfig{}
}

// WithCollectionIndex selects the font inside a TTC or OTC collection.
// The default is 0. Single font files accept only 0.
func WithCollectionIndex(i int) SourceOption {
	return func(c *sourceConfig) {
		c.index = i
	}
}

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for Face.
type faceConfig struct {
	direction Direction
	hinting   Hinting
	language  string
	shaper    Shaper
}

func defaultFaceConfig() faceConfig {
	return faceConfig{
		direction: DirectionAuto,
		hinting:   HintingNone,
		language:  "en",
	}
}

// WithDirection sets the writing direction. The default is DirectionAuto.
func WithDirection(d Direction) FaceOption {
	return func(c *faceConfig) {
		c.direction = d
	}
}

// WithHinting sets the hinting mode. The default is HintingNone.
func WithHinting(h Hinting) FaceOption {
	return func(c *faceConfig) {
		c.hinting = h
	}
}

// WithLanguage sets the BCP 47 language tag passed to the shaper.
func WithLanguage(lang string) FaceOption {
	return func(c *faceConfig) {
		c.language = lang
	}
}

// WithShaper pins a shaper to the face instead of the process-wide one.
func WithShaper(s Shaper) FaceOption {
	return func(c *faceConfig) {
		c.shaper = s
	}
}
