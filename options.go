package forth

// Option configures an Interpreter under New.
type Option interface{ apply(in *Interpreter) }

// Options combines any number of options into one, applied in order; nil
// options are skipped.
func Options(opts ...Option) Option {
	var all options
	for _, opt := range opts {
		if many, ok := opt.(options); ok {
			all = append(all, many...)
		} else if opt != nil {
			all = append(all, opt)
		}
	}
	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	default:
		return all
	}
}

// WithLogf sets a printf-style function that receives a trace of every token
// read and every operation run.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// WithStack pushes initial values onto the stack, bottom first.
func WithStack(values ...int32) Option { return stackOption(values) }

type options []Option

func (opts options) apply(in *Interpreter) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(in)
		}
	}
}

type withLogfn func(mess string, args ...interface{})
type stackOption []int32

func (logfn withLogfn) apply(in *Interpreter) {
	in.logfn = logfn
}

func (values stackOption) apply(in *Interpreter) {
	in.push(values...)
}
