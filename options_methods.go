package xsd

import "log/slog"

// NewOptions returns a default, valid options value: UTF-8 strings, no
// literal size limit and no logging.
func NewOptions() Options {
	return Options{}
}

// Validate validates options values.
func (o Options) Validate() error {
	_, err := o.withDefaults()
	return err
}

// WithEncoding sets the IANA charset that string values must be well formed
// in ("" uses UTF-8).
func (o Options) WithEncoding(name string) Options {
	o.encoding = stringOption{value: name, set: true}
	return o
}

// WithLogger sets the logger for rejected literals and unknown types (nil
// discards).
func (o Options) WithLogger(logger *slog.Logger) Options {
	o.logger = logger
	return o
}

// WithMaxLiteralSize rejects literals longer than value bytes (0 means no
// limit).
func (o Options) WithMaxLiteralSize(value int) Options {
	o.maxLiteralSize = intOption{value: value, set: true}
	return o
}
