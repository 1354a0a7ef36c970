// Package assets provides the stylesheets and host page templates that
// wrap a converted respec body.
//
// Loaders:
//
//	AssetLoader (interface)
//	    ├── EmbeddedLoader    built-in assets (go:embed)
//	    ├── FilesystemLoader  {basePath}/styles/{name}.css, {basePath}/templates/{name}.html
//	    └── AssetResolver     custom directory first, embedded as fallback
//
// Host templates are text/template documents with the slim-sprig function
// map. They receive a HostData value; see RenderHost.
package assets
