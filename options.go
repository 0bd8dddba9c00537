package forthcore

import (
	"io"
	"io/ioutil"

	"forthcore/internal/flushio"
)

// Option configures a Core at construction time (spec.md §6 "Public Core
// operations": Init/set_file_input/set_file_output/set_string_input,
// modeled as functional options the way gothird's api.go/options.go
// compose VMOption).
type Option interface{ apply(c *Core) }

func WithInput(r io.Reader, name string) Option { return inputOption{r, name} }
func WithOutput(w io.Writer) Option             { return outputOption{w} }
func WithErrorOutput(w io.Writer) Option        { return errorOutputOption{w} }
func WithBlockStore(bs BlockStore) Option       { return blockStoreOption{bs} }
func WithLogf(logf func(mark, mess string, args ...interface{})) Option {
	return logfOption(logf)
}

// WithCoreSize overrides DefaultCoreSize (spec.md §3's "core_size... a
// configuration parameter"), modeled on gothird's WithMemLimit -- a
// construction-only setting consumed by Init before the image exists, not
// applied to a *Core like the rest of the Option set.
func WithCoreSize(n uint64) Option { return coreSizeOption(n) }

// Options flattens any number of Option values into one, the same
// zero/one/many collapsing gothird's VMOptions performs.
func Options(opts ...Option) Option {
	var res optionList
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil, noption:
		case optionList:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	switch len(res) {
	case 0:
		return noption{}
	case 1:
		return res[0]
	default:
		return res
	}
}

type noption struct{}

func (noption) apply(*Core) {}

type optionList []Option

func (opts optionList) apply(c *Core) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(c)
		}
	}
}

// flattenOptions expands the Options(...)-flattening result back into a
// plain slice, so Init can pull out the construction-only settings
// (coreSizeOption, inputOption) that can't apply to a *Core that doesn't
// exist yet.
func flattenOptions(opts ...Option) []Option {
	switch o := Options(opts...).(type) {
	case noption:
		return nil
	case optionList:
		return o
	default:
		return []Option{o}
	}
}

type coreSizeOption uint64

func (coreSizeOption) apply(*Core) {}

type inputOption struct {
	io.Reader
	name string
}

func (o inputOption) apply(c *Core) {
	c.in.Set(o.Reader, o.name)
	if cl, ok := o.Reader.(io.Closer); ok {
		c.closers = append(c.closers, cl)
	}
}

type outputOption struct{ io.Writer }

func (o outputOption) apply(c *Core) {
	if c.out != nil {
		c.out.Flush()
	}
	c.out = flushio.NewWriteFlusher(o.Writer)
	if cl, ok := o.Writer.(io.Closer); ok {
		c.closers = append(c.closers, cl)
	}
}

type errorOutputOption struct{ io.Writer }

func (o errorOutputOption) apply(c *Core) { c.errw = o.Writer }

type blockStoreOption struct{ BlockStore }

func (o blockStoreOption) apply(c *Core) { c.blocks = o.BlockStore }

type logfOption func(mark, mess string, args ...interface{})

func (o logfOption) apply(c *Core) { c.logf = o }

var defaultOptions = Options(
	outputOption{ioutil.Discard},
	errorOutputOption{ioutil.Discard},
)
