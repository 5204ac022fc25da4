package assets

// DefaultName names the built-in page template and its stylesheet.
const DefaultName = "rewired"

// AssetLoader returns the page template and stylesheet of a named asset set.
// Names carry no extension; "rewired" maps to templates/rewired.html and
// styles/rewired.css.
type AssetLoader interface {
	LoadStyle(name string) (string, error)
	LoadTemplate(name string) (string, error)
}
