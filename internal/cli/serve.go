package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"vaccine-assistant/internal/actions"
	"vaccine-assistant/internal/catalogue"
	"vaccine-assistant/internal/common/config"
	"vaccine-assistant/internal/common/database"
	"vaccine-assistant/internal/common/logger"
	"vaccine-assistant/internal/common/observability"
	"vaccine-assistant/internal/conversation"
	"vaccine-assistant/internal/fetcher"
	"vaccine-assistant/internal/knowledge"
	"vaccine-assistant/internal/outofscope"
	"vaccine-assistant/internal/resolver"
	"vaccine-assistant/internal/server"
	"vaccine-assistant/internal/session"
	"vaccine-assistant/pkg/catalog"
)

const (
	connectRetries = 5
	connectDelay   = 2 * time.Second
	shutdownGrace  = 30 * time.Second
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the action webhook and session API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return fmt.Errorf("config load failed: %w", err)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg)
		},
	}
}

// app holds what serve builds, so shutdown can release it in one place.
type app struct {
	server  *server.Server
	checks  map[string]server.Check
	closers []func() error
}

func runServe(ctx context.Context, cfg *config.Config) error {
	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	log.Info("starting vaccine assistant", map[string]interface{}{
		"version":     Version,
		"environment": cfg.App.Environment,
		"listenAddr":  cfg.Server.ListenAddr,
	})

	obs := observability.New(server.ServiceName)
	defer obs.Shutdown()

	a, err := build(ctx, cfg, log, obs)
	defer a.close(log)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.server.Listen(cfg.Server.ListenAddr)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutdown signal received, stopping server", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		log.Error("error stopping http server", map[string]interface{}{"error": err.Error()})
	}
	log.Info("vaccine assistant stopped gracefully", nil)
	return nil
}

// build wires every component from configuration. The returned app is never
// nil so whatever was opened before a failure still gets closed.
func build(ctx context.Context, cfg *config.Config, log logger.Logger, obs *observability.Observability) (*app, error) {
	a := &app{checks: make(map[string]server.Check)}

	kb := knowledge.Load(cfg.Knowledge.DocumentPath, log)
	res := resolver.New(kb)

	client, err := catalogue.New(cfg.Catalogue)
	if err != nil {
		return a, fmt.Errorf("catalogue client: %w", err)
	}
	facts, err := fetcher.New(client, kb, res.Normalizer(), cfg.Cache.FactCapacity, log)
	if err != nil {
		return a, fmt.Errorf("fact fetcher: %w", err)
	}

	sink, err := a.openSink(ctx, cfg, log)
	if err != nil {
		return a, err
	}

	store, err := a.openStore(ctx, cfg, log)
	if err != nil {
		return a, err
	}

	dispatcher := actions.NewDispatcher(actions.Deps{
		Resolver:  res,
		Knowledge: kb,
		Facts:     facts,
		Catalogue: client,
		Recorder:  outofscope.NewRecorder(sink, log),
		Logger:    log,
	}, actions.Options{Actions: cfg.Actions, Observability: obs})

	cat, err := catalog.LoadCatalog(cfg.Server.CatalogPath)
	if err != nil {
		return a, fmt.Errorf("action catalog %s: %w", cfg.Server.CatalogPath, err)
	}
	if missing := cat.Missing(dispatcher.Has); len(missing) > 0 {
		log.Warn("catalog actions not registered, their intents fall back", map[string]interface{}{"actions": missing})
	}
	log.Info("actions registered", map[string]interface{}{"count": len(dispatcher.Names())})

	engine := conversation.NewEngine(dispatcher, conversation.NewPolicy(cat, res), store, log)
	a.server = server.New(cfg.Server, server.Deps{
		Dispatcher:    dispatcher,
		Conversations: engine,
		Catalog:       cat,
		Checks:        a.checks,
		Logger:        log,
		Version:       Version,
	})
	return a, nil
}

func (a *app) openSink(ctx context.Context, cfg *config.Config, log logger.Logger) (outofscope.Sink, error) {
	switch cfg.OutOfScope.Sink {
	case "postgres":
		var pg *database.PostgresClient
		err := retryWithBackoff(ctx, func() error {
			var err error
			if pg, err = database.NewPostgres(cfg.Database.Postgres); err != nil {
				return err
			}
			if err = pg.Ping(ctx); err != nil {
				pg.Close()
			}
			return err
		}, connectRetries, connectDelay, log, "PostgreSQL connection")
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, pg.Close)
		a.checks["postgres"] = pg.Ping

		sink, err := outofscope.NewPostgresSink(pg.DB, cfg.OutOfScope.Table)
		if err != nil {
			return nil, err
		}
		if err := sink.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("out-of-scope table: %w", err)
		}
		log.Info("out-of-scope queries go to postgres", map[string]interface{}{"table": cfg.OutOfScope.Table})
		return sink, nil

	case "elasticsearch":
		var es *database.ElasticsearchClient
		err := retryWithBackoff(ctx, func() error {
			var err error
			if es, err = database.NewElasticsearch(cfg.Database.Elasticsearch); err != nil {
				return err
			}
			return es.Ping(ctx)
		}, connectRetries, connectDelay, log, "Elasticsearch connection")
		if err != nil {
			return nil, err
		}
		a.checks["elasticsearch"] = es.Ping
		if err := es.EnsureIndex(ctx, cfg.OutOfScope.Index, outofscope.IndexMapping); err != nil {
			return nil, err
		}
		log.Info("out-of-scope queries go to elasticsearch", map[string]interface{}{"index": cfg.OutOfScope.Index})
		return outofscope.NewElasticsearchSink(es.Client, cfg.OutOfScope.Index), nil

	default:
		log.Info("out-of-scope queries go to csv", map[string]interface{}{"path": cfg.OutOfScope.CSVPath})
		return outofscope.NewCSVSink(cfg.OutOfScope.CSVPath), nil
	}
}

func (a *app) openStore(ctx context.Context, cfg *config.Config, log logger.Logger) (session.Store, error) {
	var rc *database.RedisClient
	if cfg.Session.Store == session.StoreRedis {
		err := retryWithBackoff(ctx, func() error {
			var err error
			if rc, err = database.NewRedis(cfg.Database.Redis); err != nil {
				return err
			}
			if err = rc.Ping(ctx); err != nil {
				rc.Close()
			}
			return err
		}, connectRetries, connectDelay, log, "Redis connection")
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, rc.Close)
		a.checks["redis"] = rc.Ping
	}

	store, err := session.NewStore(cfg.Session, rc)
	if err != nil {
		return nil, err
	}
	log.Info("session store ready", map[string]interface{}{"store": cfg.Session.Store, "ttlSeconds": cfg.Session.TTL})
	return store, nil
}

func (a *app) close(log logger.Logger) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			log.Warn("error closing connection", map[string]interface{}{"error": err.Error()})
		}
	}
}

// retryWithBackoff runs operation up to maxRetries times, doubling the delay
// between attempts. It gives up early when ctx ends.
func retryWithBackoff(ctx context.Context, operation func() error, maxRetries int, initialDelay time.Duration, log logger.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		if err = operation(); err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName), map[string]interface{}{
				"error":       err.Error(),
				"attempt":     i + 1,
				"maxRetries":  maxRetries,
				"nextRetryIn": delay.String(),
			})
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return fmt.Errorf("%s aborted: %w", operationName, ctx.Err())
			}
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}
