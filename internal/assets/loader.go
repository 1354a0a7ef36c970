package assets

// Built-in asset names.
const (
	DefaultStyleName    = "default"
	DefaultTemplateName = "default"
)

// AssetLoader loads CSS styles and host page templates by name.
type AssetLoader interface {
	// LoadStyle returns the CSS of the named style (no .css extension).
	// Returns ErrStyleNotFound or ErrInvalidAssetName.
	LoadStyle(name string) (string, error)

	// LoadTemplate returns the named host template (no .html extension).
	// Returns ErrTemplateNotFound or ErrInvalidAssetName.
	LoadTemplate(name string) (string, error)
}
