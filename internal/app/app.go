package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"

	config "github.com/schnuffelll/shop-backend/internal/cfg"
	v1Http "github.com/schnuffelll/shop-backend/internal/delivery/v1/http"
	"github.com/schnuffelll/shop-backend/internal/infrastructure/kafka"
	minioInfra "github.com/schnuffelll/shop-backend/internal/infrastructure/minio"
	s3Repo "github.com/schnuffelll/shop-backend/internal/repository/minio"
	"github.com/schnuffelll/shop-backend/internal/repository/pgdb"
	pgdbConv "github.com/schnuffelll/shop-backend/internal/repository/pgdb/converter/generated"
	"github.com/schnuffelll/shop-backend/internal/repository/redis"
	redisConv "github.com/schnuffelll/shop-backend/internal/repository/redis/converter/generated"
	"github.com/schnuffelll/shop-backend/internal/usecase"
	"github.com/schnuffelll/shop-backend/pkg/clients"
	"github.com/schnuffelll/shop-backend/pkg/closer"
	"github.com/schnuffelll/shop-backend/pkg/e"
	"github.com/schnuffelll/shop-backend/pkg/logger"
	"github.com/schnuffelll/shop-backend/pkg/postgres"
)

type App struct {
	cfg    *config.Config
	logger logger.Logger

	outboxWorker *kafka.OutboxWorker
	httpSrv      *v1Http.Server
	closer       *closer.Closer

	appCtx    context.Context
	appCancel context.CancelFunc
}

// NewApp собирает все зависимости приложения: БД с миграциями, Redis,
// MinIO, Kafka-продюсер с outbox-воркером, юзкейсы и HTTP-роутер.
func NewApp(cfg *config.Config, logger logger.Logger) (*App, error) {
	db, err := initPGDB(logger, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	catConv := pgdbConv.NewCategoryConverterImpl()
	prConv := pgdbConv.NewProductConverterImpl()
	varConv := pgdbConv.NewVariantConverterImpl()
	couponConv := pgdbConv.NewCouponConverterImpl()
	orderConv := pgdbConv.NewOrderConverterImpl()
	orderItemConv := pgdbConv.NewOrderItemConverterImpl()
	userConv := pgdbConv.NewUserConverterImpl()
	uploadConv := pgdbConv.NewUploadConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	cacheConv := redisConv.NewProductConverterImpl()

	categoryRepo := pgdb.NewCategoryRepo(db.Pool, catConv)
	productRepo := pgdb.NewProductRepo(db.Pool, prConv, varConv, catConv)
	couponRepo := pgdb.NewCouponRepo(db.Pool, couponConv)
	orderRepo := pgdb.NewOrderRepo(db.Pool, orderConv, orderItemConv)
	userRepo := pgdb.NewUserRepo(db.Pool, userConv)
	uploadRepo := pgdb.NewUploadRepo(db.Pool, uploadConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	minioClient, err := clients.NewMinIOClient(cfg)
	if err != nil {
		db.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		db.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	minioCancel()

	fileRepo := s3Repo.NewFileRepo(minioClient, cfg.Minio)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		db.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cacheRepo := redis.NewCacheRepo(redisClient, cacheConv, cfg.Redis, logger)

	appCtx, appCancel := context.WithCancel(context.Background())

	filesInfra := minioInfra.NewMinioInfrastructure(fileRepo, cfg.Minio, logger, appCtx)

	producer, err := kafka.NewProducer(logger, cfg.Kafka)
	if err != nil {
		appCancel()
		db.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		appCancel()
		db.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	outboxWorker := kafka.NewOutboxWorker(outboxRepo, logger, producer, db.Dsn)

	authUC := usecase.NewAuthUC(userRepo, cfg.Jwt, logger)
	categoryUC := usecase.NewCategoryUC(categoryRepo, productRepo, logger)
	productUC := usecase.NewProductUC(productRepo, categoryRepo, cacheRepo, db.Pool, logger)
	couponUC := usecase.NewCouponUC(couponRepo, logger)
	orderUC := usecase.NewOrderUC(orderRepo, productRepo, couponRepo, userRepo, outboxRepo, cacheRepo, db.Pool, logger)
	uploadUC := usecase.NewUploadUC(uploadRepo, filesInfra, cfg.Minio, cfg.Upload, logger)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, logger)
	router.Init(db, authUC, categoryUC, productUC, couponUC, orderUC, uploadUC, cfg.Upload)

	// Ресурсы закрываются в обратном порядке регистрации.
	cl := closer.NewCloser(2 * time.Second)
	cl.Add(func(context.Context) error {
		db.Close()
		return nil
	})
	cl.Add(func(context.Context) error {
		return redisClient.Client.Close()
	})
	cl.Add(func(ctx context.Context) error {
		return filesInfra.WaitForCleanup(ctx)
	})
	cl.Add(func(context.Context) error {
		return producer.Close()
	})
	cl.Add(func(context.Context) error {
		outboxWorker.Stop()
		return nil
	})

	return &App{
		cfg:          cfg,
		logger:       logger,
		outboxWorker: outboxWorker,
		httpSrv:      v1Http.NewServer(r, cfg.Http),
		closer:       cl,
		appCtx:       appCtx,
		appCancel:    appCancel,
	}, nil
}

// Run запускает HTTP-сервер и outbox-воркер и блокируется до сигнала
// завершения или фатальной ошибки сервера.
func (a *App) Run() error {
	a.outboxWorker.Start(a.appCtx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed: %v", err)
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	a.appCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("resource shutdown: %v", err)
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
