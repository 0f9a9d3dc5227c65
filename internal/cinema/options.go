package cinema

import "github.com/sirupsen/logrus"

// Option configures a Movie or a Customer.
type Option func(*options)

type options struct {
	logger logrus.FieldLogger
}

// WithLogger routes notices through l instead of the standard logrus logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
