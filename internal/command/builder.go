package command

// Plugin contributes a named capability and its commands.
type Plugin interface {
	Name() string
	Register(r *Registry)
}

// Builder assembles a Registry from plugins and handlers.
type Builder struct {
	plugins  []Plugin
	handlers []namedHandler
}

type namedHandler struct {
	name string
	h    Handler
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Plugin installs p when the registry is built.
func (b *Builder) Plugin(p Plugin) *Builder {
	b.plugins = append(b.plugins, p)
	return b
}

// Handler registers h under name when the registry is built.
func (b *Builder) Handler(name string, h Handler) *Builder {
	b.handlers = append(b.handlers, namedHandler{name: name, h: h})
	return b
}

// Build returns the assembled Registry.
func (b *Builder) Build() *Registry {
	r := NewRegistry()
	for _, p := range b.plugins {
		p.Register(r)
		r.addPlugin(p.Name())
	}
	for _, nh := range b.handlers {
		r.Register(nh.name, nh.h)
	}
	return r
}
