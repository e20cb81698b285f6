package logger

import (
	"io"
	stdlog "log"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// ZeroConfig configures NewZerolog. Zero values mean "library default".
type ZeroConfig struct {
	Level             string
	TimeFieldFormat   string
	PrettyPrint       bool
	DisableSampling   bool
	RedirectStdLogger bool
	ErrorStack        bool
	ShowCaller        bool
}

type Zerolog struct {
	log zerolog.Logger
}

const defaultLevel = zerolog.InfoLevel

func NewDefaultZerolog() *Zerolog {
	return NewZerolog(ZeroConfig{
		Level:           "info",
		TimeFieldFormat: time.RFC3339,
		PrettyPrint:     true,
	})
}

func NewZerolog(cfg ZeroConfig) *Zerolog {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = defaultLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.TimeFieldFormat != "" {
		zerolog.TimeFieldFormat = cfg.TimeFieldFormat
	}
	zerolog.DisableSampling(cfg.DisableSampling)
	if cfg.ErrorStack {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	}

	var out io.Writer = os.Stderr
	if cfg.PrettyPrint {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"}
	}

	zctx := zerolog.New(out).With().Timestamp()
	if cfg.ShowCaller {
		zctx = zctx.Caller()
	}
	l := zctx.Logger()

	if cfg.RedirectStdLogger {
		stdlog.SetFlags(0)
		stdlog.SetOutput(l)
	}

	return &Zerolog{log: l}
}

// NewNop returns a logger that discards everything. Used by tests.
func NewNop() *Zerolog {
	return &Zerolog{log: zerolog.Nop()}
}

// With returns a child logger that tags every event with component.
func (l *Zerolog) With(component string) *Zerolog {
	return &Zerolog{log: l.log.With().Str("component", component).Logger()}
}

func (l *Zerolog) Debug() *zerolog.Event {
	return l.log.Debug()
}

func (l *Zerolog) Info() *zerolog.Event {
	return l.log.Info()
}

func (l *Zerolog) Warn() *zerolog.Event {
	return l.log.Warn()
}

func (l *Zerolog) Error() *zerolog.Event {
	return l.log.Error()
}

func (l *Zerolog) Fatal() *zerolog.Event {
	return l.log.Fatal()
}
