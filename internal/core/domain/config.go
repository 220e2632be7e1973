package domain

// Default configuration values.
const (
	DefaultDir       = "./exhibits"
	DefaultExtension = ".md"
	DefaultVariant   = "final"
)

// Config holds the settings for a normaliser run.
type Config struct {
	// Dir is the directory of documents to process.
	Dir string `toml:"dir"`

	// Extension filters which files in Dir are documents.
	Extension string `toml:"extension"`

	// Variant names the rule set to run.
	Variant string `toml:"variant"`

	// Categories is the category remapping table.
	Categories CategoryTable `toml:"categories"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Dir:        DefaultDir,
		Extension:  DefaultExtension,
		Variant:    DefaultVariant,
		Categories: DefaultCategoryTable(),
	}
}

// WithDefaults fills unset values from DefaultConfig.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.Dir == "" {
		c.Dir = d.Dir
	}
	if c.Extension == "" {
		c.Extension = d.Extension
	}
	if c.Variant == "" {
		c.Variant = d.Variant
	}
	if len(c.Categories.Mapping) == 0 {
		c.Categories.Mapping = d.Categories.Mapping
		if c.Categories.Version == "" {
			c.Categories.Version = d.Categories.Version
		}
	}
	if len(c.Categories.Approved) == 0 {
		c.Categories.Approved = d.Categories.Approved
	}
	if c.Categories.Version == "" {
		c.Categories.Version = "custom"
	}
	return c
}
