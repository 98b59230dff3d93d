package vtu

import (
	"fmt"

	"github.com/arloliu/vtkio/format"
	"github.com/arloliu/vtkio/internal/markup"
	"github.com/arloliu/vtkio/internal/options"
	"github.com/sirupsen/logrus"
)

// writerConfig holds the settings that survive Reset.
type writerConfig struct {
	logger      logrus.FieldLogger
	compression format.CompressionType
	indent      int
	atomic      bool
}

func defaultConfig() writerConfig {
	return writerConfig{
		logger:      logrus.StandardLogger(),
		compression: format.CompressionNone,
		indent:      markup.DefaultIndent,
		atomic:      true,
	}
}

// WriterOption configures a Writer.
type WriterOption = options.Option[*Writer]

// WithCompression selects the payload codec. Unavailable codecs are not an
// error: the file is written uncompressed and the Report says so.
func WithCompression(ct format.CompressionType) WriterOption {
	return options.NoError(func(w *Writer) {
		w.SetCompression(ct)
	})
}

// WithLogger sets the logger for fallback warnings and write summaries.
// A nil logger restores the logrus standard logger.
func WithLogger(logger logrus.FieldLogger) WriterOption {
	return options.NoError(func(w *Writer) {
		if logger == nil {
			logger = logrus.StandardLogger()
		}
		w.cfg.logger = logger
	})
}

// WithIndent sets the number of spaces per nesting level of the header.
func WithIndent(spaces int) WriterOption {
	return options.New(func(w *Writer) error {
		if spaces < 0 {
			return fmt.Errorf("invalid indent: %d", spaces)
		}
		w.cfg.indent = spaces

		return nil
	})
}

// WithAtomicWrite controls whether Write goes through a temporary file that
// is renamed over the target on success. It is enabled by default.
func WithAtomicWrite(enabled bool) WriterOption {
	return options.NoError(func(w *Writer) {
		w.cfg.atomic = enabled
	})
}
