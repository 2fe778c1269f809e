package cmd

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/fitpath/internal/catalog"
	"github.com/spigell/fitpath/internal/logger"
	"github.com/spigell/fitpath/internal/metrics"
	"github.com/spigell/fitpath/internal/recommender"
)

// session bundles what every command needs: config, logger, a loaded engine and metrics.
type session struct {
	config   *Config
	logger   *zap.Logger
	engine   *recommender.Engine
	recorder *metrics.Recorder
}

func newSession() *session {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Debug("starting the fitpath", zap.String("version", version), zap.String("config", viper.ConfigFileUsed()))

	c, err := loadCatalog()
	if err != nil {
		logger.Fatal("loading the catalog", zap.Error(err))
	}

	recorder := metrics.New()
	engine := c.Engine(logger)
	engine.SetObserver(recorder)

	logger.Debug("catalog loaded",
		zap.Int("users", len(c.Users)),
		zap.Int("opportunities", len(c.Opportunities)),
		zap.Int("learning_resources", len(c.Resources)),
	)

	return &session{config: config, logger: logger, engine: engine, recorder: recorder}
}

func loadCatalog() (*catalog.Catalog, error) {
	if viper.GetBool("sample") {
		return catalog.Sample(), nil
	}

	c, err := catalog.Load(viper.GetViper())
	if err != nil {
		return nil, err
	}
	if len(c.Users) == 0 {
		return nil, errors.New("no users configured; add a users section to the config or use --sample")
	}
	return c, nil
}

// close flushes metrics and the logger.
func (s *session) close() {
	if path := s.config.MetricsFile; path != "" {
		if err := s.recorder.WriteTextfile(path); err != nil {
			s.logger.Error("writing metrics", zap.Error(err))
		} else {
			s.logger.Debug("metrics written", zap.String("filename", path))
		}
	}
	_ = s.logger.Sync()
}

// fatal flushes metrics and the logger before exiting; Fatal skips deferred calls.
func (s *session) fatal(msg string, fields ...zap.Field) {
	s.close()
	s.logger.Fatal(msg, fields...)
}

// fail logs err and exits, telling NotFound apart from other failures.
func (s *session) fail(msg string, err error) {
	if errors.Is(err, recommender.ErrNotFound) {
		s.fatal(msg,
			zap.Error(err),
			zap.String("hint", fmt.Sprintf("known users: %v, known opportunities: %v", s.engine.Users(), s.engine.Opportunities())),
		)
		return
	}
	s.fatal(msg, zap.Error(err))
}
