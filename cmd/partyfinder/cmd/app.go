// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-party-finder/pkg/common"
	"github.com/AccelByte/extend-party-finder/pkg/config"
	"github.com/AccelByte/extend-party-finder/pkg/constants"
	"github.com/AccelByte/extend-party-finder/pkg/envelope"
	"github.com/AccelByte/extend-party-finder/pkg/metrics"
	"github.com/AccelByte/extend-party-finder/pkg/models"
	"github.com/AccelByte/extend-party-finder/pkg/partyfinder"
	"github.com/AccelByte/extend-party-finder/pkg/presenter"
	"github.com/AccelByte/extend-party-finder/pkg/tracing"
)

const serviceName = "extend-party-finder"

// app holds what every sub-command shares. It is set up once before a command runs.
type app struct {
	cfg      *config.Config
	registry *prometheus.Registry
	metrics  metrics.PartyFinderMetrics

	metricsServer   *http.Server
	shutdownTracing func(context.Context) error
}

func newApp(cfg *config.Config) *app {
	registry := prometheus.NewRegistry()
	return &app{
		cfg:      cfg,
		registry: registry,
		metrics:  metrics.NewMetrics(registry),
	}
}

func (a *app) start() error {
	common.ConfigureLogging(a.cfg.LogLevel)

	if a.cfg.LevelCap <= 0 {
		return fmt.Errorf("level cap must be positive, got %d", a.cfg.LevelCap)
	}

	shutdown, err := tracing.Setup(serviceName, a.cfg.ZipkinEndpoint)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	a.shutdownTracing = shutdown

	if a.cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))
		a.metricsServer = &http.Server{Addr: a.cfg.MetricsAddr, Handler: mux}
		go func() {
			if err := a.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logrus.Errorf("metrics server stopped: %s", err)
			}
		}()
		logrus.Infof("serving metrics on %s", a.cfg.MetricsAddr)
	}
	return nil
}

func (a *app) stop(ctx context.Context) error {
	if a.metricsServer != nil {
		_ = a.metricsServer.Close()
	}
	if a.shutdownTracing != nil {
		return a.shutdownTracing(ctx)
	}
	return nil
}

// findAndPresent runs the search on party and walks the user through the results.
func (a *app) findAndPresent(scope *envelope.Scope, out io.Writer, in *bufio.Scanner, party models.Party) error {
	if party.Size() < constants.PartyMinSize {
		fmt.Fprintln(out, "Party must consist of at least two characters!")
		return nil
	}
	if err := party.Validate(); err != nil {
		scope.Log.WithField("code", models.ValidationErrorCode(err)).Errorf("invalid party: %s", err)
		return err
	}

	fmt.Fprintln(out, "Determining best possible party configurations for levelling...")
	fmt.Fprintln(out)

	finder := partyfinder.New(partyfinder.Rules{LevelCap: a.cfg.LevelCap}, a.metrics)
	store, snapshot := finder.Search(scope, party)
	if store.IsEmpty() {
		fmt.Fprintln(out, "No valid party configuration found.")
		return nil
	}

	_, err := presenter.New(in, out).Present(scope, snapshot, store)
	return err
}
