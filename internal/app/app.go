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
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	config "github.com/thuli-tech/style-backend/internal/cfg"
	v1Http "github.com/thuli-tech/style-backend/internal/delivery/v1/http"
	"github.com/thuli-tech/style-backend/internal/engine"
	"github.com/thuli-tech/style-backend/internal/infrastructure/embedder"
	"github.com/thuli-tech/style-backend/internal/infrastructure/kafka"
	"github.com/thuli-tech/style-backend/internal/proto"
	"github.com/thuli-tech/style-backend/internal/repository/pgdb"
	pgdbConv "github.com/thuli-tech/style-backend/internal/repository/pgdb/converter/generated"
	"github.com/thuli-tech/style-backend/internal/repository/redis"
	redisConv "github.com/thuli-tech/style-backend/internal/repository/redis/converter/generated"
	"github.com/thuli-tech/style-backend/internal/usecase"
	"github.com/thuli-tech/style-backend/pkg/clients"
	"github.com/thuli-tech/style-backend/pkg/closer"
	"github.com/thuli-tech/style-backend/pkg/e"
	"github.com/thuli-tech/style-backend/pkg/logger"
	"github.com/thuli-tech/style-backend/pkg/postgres"
)

// App держит собранный граф зависимостей приложения; все компоненты
// конструируются явно в NewApp, без сайд-эффектов на уровне импортов.
type App struct {
	cfg    *config.Config
	logger logger.Logger
	closer *closer.Closer

	engine       *engine.Engine
	outboxWorker *kafka.OutboxWorker
	httpSrv      *v1Http.Server
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	const shutdownForcedTimeout = 2 * time.Second

	cl := closer.NewCloser(shutdownForcedTimeout)

	db, err := initPGDB(log, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	profileConv := pgdbConv.NewProfileConverterImpl()
	quizConv := pgdbConv.NewQuizImageConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	itemConv := redisConv.NewItemInfoConverterImpl()

	userRepo := pgdb.NewUserRepo(db.Pool)
	profileRepo := pgdb.NewProfileRepo(db.Pool, profileConv)
	catalogRepo := pgdb.NewCatalogRepo(db.Pool, quizConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	minioClient, err := clients.NewMinIOClient(cfg)
	if err != nil {
		log.Errorf(err, "failed to initialize minio client")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	for _, bucket := range []string{
		cfg.Minio.InitialQuizBucket,
		cfg.Minio.RefineQuizBucket,
		cfg.Minio.QuizPoolBucket,
		cfg.Minio.InventoryBucket,
	} {
		if err := clients.EnsureBucket(minioCtx, minioClient, bucket); err != nil {
			minioCancel()
			log.Errorf(err, "failed to initialize MinIO bucket %s", bucket)
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}
	minioCancel()

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		log.Errorf(err, "failed to connect to redis")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})
	cacheRepo := redis.NewCacheRepo(redisClient, itemConv, cfg.Redis, log)

	conn, err := grpc.NewClient(
		cfg.Embedder.Addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()), // явное указание gRPC-клиенту использовать НЕзащищённое соединение (без TLS).
	)
	if err != nil {
		log.Errorf(err, "failed to initialize grpc client")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return conn.Close()
	})

	embClient := proto.NewEmbedderServiceClient(conn)
	emb := embedder.NewEmbedder(embClient, cfg.Embedder, cfg.Engine.VectorSize, log)

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		log.Errorf(err, "failed to initialize kafka producer")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		log.Warnf("failed to ensure kafka topic, continuing: %v", err)
	}

	eng := engine.New(cfg.Engine, log)

	tasteUC := usecase.NewTasteUC(
		userRepo,
		profileRepo,
		catalogRepo,
		outboxRepo,
		db.Pool,
		producer,
		log,
	)

	recUC := usecase.NewRecommendationUC(
		eng,
		profileRepo,
		catalogRepo,
		cacheRepo,
		emb,
		usecase.NewDefaultFiller(),
		log,
	)

	outboxWorker := kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)
	cl.Add(func(ctx context.Context) error {
		outboxWorker.Stop()
		return nil
	})

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(tasteUC, recUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	cl.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	return &App{
		cfg:          cfg,
		logger:       log,
		closer:       cl,
		engine:       eng,
		outboxWorker: outboxWorker,
		httpSrv:      httpSrv,
	}, nil
}

// Run запускает фоновые компоненты и HTTP-сервер, после чего блокируется до
// сигнала остановки или фатальной ошибки сервера. Возвращает ошибку, с которой
// приложение завершилось.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.outboxWorker.Start(ctx)

	// Артефакты индекса могут появиться позже старта сервиса; неуспешная
	// инициализация здесь не фатальна, Generate повторит её по требованию.
	go func() {
		if err := a.engine.Init(ctx); err != nil {
			a.logger.Warnf("engine init at startup failed: %v", err)
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed: %v", err)
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("shutdown finished with errors: %v", err)
	} else {
		a.logger.Infof("Application shutdown complete")
	}

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
