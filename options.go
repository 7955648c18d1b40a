package diagsync

// Option is a function that configures a sync run
type Option func(*config) error

// config holds the resolved sync configuration.
type config struct {
	root          string
	cataloguePath string
	referencePath string
	includeFile   string
	excludeFile   string
	prefix        string
	codeRange     string
	fillOnly      bool
	semanticOnly  bool
	dryRun        bool
}

func newConfig(opts ...Option) (*config, error) {
	c := &config{
		root:          ".",
		cataloguePath: DefaultCataloguePath,
		referencePath: DefaultReferencePath,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// WithRoot configures the project root directory that relative paths are
// resolved against.
func WithRoot(root string) Option {
	return func(c *config) error {
		if root != "" {
			c.root = root
		}
		return nil
	}
}

// WithCataloguePath overrides the catalogue file path.
func WithCataloguePath(path string) Option {
	return func(c *config) error {
		if path != "" {
			c.cataloguePath = path
		}
		return nil
	}
}

// WithReferencePath overrides the reference document path.
func WithReferencePath(path string) Option {
	return func(c *config) error {
		if path != "" {
			c.referencePath = path
		}
		return nil
	}
}

// WithFillOnly configures fill-only mode: blank cells on existing rows are
// backfilled but no new rows are appended.
func WithFillOnly(enabled bool) Option {
	return func(c *config) error {
		c.fillOnly = enabled
		return nil
	}
}

// WithPrefix restricts the merge to codes starting with the given prefix.
func WithPrefix(prefix string) Option {
	return func(c *config) error {
		c.prefix = prefix
		return nil
	}
}

// WithRange restricts the merge to an inclusive code span, e.g.
// "CS0100-CS0199".
func WithRange(codeRange string) Option {
	return func(c *config) error {
		c.codeRange = codeRange
		return nil
	}
}

// WithSemanticOnly keeps only diagnostics classified as semantic (or force
// included).
func WithSemanticOnly(enabled bool) Option {
	return func(c *config) error {
		c.semanticOnly = enabled
		return nil
	}
}

// WithIncludeFile configures the forced-include code list file.
func WithIncludeFile(path string) Option {
	return func(c *config) error {
		c.includeFile = path
		return nil
	}
}

// WithExcludeFile configures the forced-exclude code list file.
func WithExcludeFile(path string) Option {
	return func(c *config) error {
		c.excludeFile = path
		return nil
	}
}

// WithDryRun configures dry-run mode: the catalogue is left untouched and a
// unified diff of the pending changes is reported instead.
func WithDryRun(enabled bool) Option {
	return func(c *config) error {
		c.dryRun = enabled
		return nil
	}
}
