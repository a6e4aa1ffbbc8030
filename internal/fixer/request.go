package fixer

// RequestOption configures a single Latest or Historical call.
type RequestOption func(*requestOptions)

// symbolFilter distinguishes a filter that was never given from one given
// with no codes.
type symbolFilter struct {
	present bool
	codes   []string
}

type requestOptions struct {
	symbols symbolFilter
}

// WithSymbols restricts the returned rates to codes, in the given order.
// It overrides the client's default filter; called with no codes it sends
// no filter at all, even when a default is configured.
func WithSymbols(codes ...string) RequestOption {
	return func(o *requestOptions) {
		o.symbols = symbolFilter{
			present: true,
			codes:   append([]string(nil), codes...),
		}
	}
}

func (c *Client) effectiveSymbols(opts []RequestOption) []string {
	var o requestOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.symbols.present {
		return o.symbols.codes
	}
	return c.defaultSymbols
}
