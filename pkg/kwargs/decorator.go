package kwargs

// HandlerFunc is a function taking a flat map of keyword options.
type HandlerFunc func(kw map[string]any) (any, error)

// Adapter pre-processes the option map before grouping, e.g. renaming
// legacy keys.
type Adapter func(kw map[string]any)

// Extract returns a decorator that groups kw according to specs before
// each call. Adapters run first, in order.
func Extract(specs Specs, adapters ...Adapter) func(HandlerFunc) HandlerFunc {
	return func(next HandlerFunc) HandlerFunc {
		return func(kw map[string]any) (any, error) {
			for _, adapt := range adapters {
				if adapt != nil {
					adapt(kw)
				}
			}
			Group(kw, specs)
			return next(kw)
		}
	}
}
