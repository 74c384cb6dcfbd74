package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	config "github.com/thuli-tech/style-backend/internal/cfg"
	"github.com/thuli-tech/style-backend/internal/infrastructure/embedder"
	"github.com/thuli-tech/style-backend/internal/pipeline"
	"github.com/thuli-tech/style-backend/internal/proto"
	s3Repo "github.com/thuli-tech/style-backend/internal/repository/minio"
	"github.com/thuli-tech/style-backend/internal/repository/pgdb"
	pgdbConv "github.com/thuli-tech/style-backend/internal/repository/pgdb/converter/generated"
	"github.com/thuli-tech/style-backend/pkg/clients"
	"github.com/thuli-tech/style-backend/pkg/logger"
	"github.com/thuli-tech/style-backend/pkg/postgres"
)

const (
	quizPoolSize      = 2000
	inventoryPoolSize = 4001
	initialQuizSize   = 40
	refineQuizSize    = 20
)

func main() {
	var (
		annotationsPath = flag.String("annotations", "data/train.csv", "путь к CSV-аннотациям датасета")
		labelsPath      = flag.String("labels", "data/label_descriptions.json", "путь к описаниям категорий и атрибутов")
		imageDir        = flag.String("images", "data/train", "директория с изображениями датасета")
		priceListPath   = flag.String("prices", "", "необязательный прайс-лист name,brand,price")
		seed            = flag.Int64("seed", time.Now().UnixNano(), "сид перемешивания датасета")
	)
	flag.Parse()

	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	if err := run(cfg, log, *annotationsPath, *labelsPath, *imageDir, *priceListPath, *seed); err != nil {
		log.Errorf(err, "pipeline failed")
		os.Exit(1)
	}

	log.Infof("pipeline finished successfully")
}

func run(cfg *config.Config, log logger.Logger, annotationsPath, labelsPath, imageDir, priceListPath string, seed int64) error {
	ctx := context.Background()

	items, err := pipeline.LoadDataset(annotationsPath, labelsPath, imageDir, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	log.Infof("dataset loaded: %d items", len(items))

	if priceListPath != "" {
		if err := pipeline.ApplyPriceList(items, priceListPath); err != nil {
			return err
		}
	}

	quizPool := items
	inventoryPool := items
	if len(items) > quizPoolSize {
		quizPool = items[:quizPoolSize]
		end := quizPoolSize + inventoryPoolSize
		if end > len(items) {
			end = len(items)
		}
		inventoryPool = items[quizPoolSize:end]
	}
	log.Infof("data split: %d for quizzes, %d for recommendations", len(quizPool), len(inventoryPool))

	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.RunMigrations(log); err != nil {
		return err
	}

	catalogRepo := pgdb.NewCatalogRepo(db.Pool, pgdbConv.NewQuizImageConverterImpl())

	minioClient, err := clients.NewMinIOClient(cfg)
	if err != nil {
		return err
	}
	for _, bucket := range []string{
		cfg.Minio.InitialQuizBucket,
		cfg.Minio.RefineQuizBucket,
		cfg.Minio.QuizPoolBucket,
		cfg.Minio.InventoryBucket,
	} {
		if err := clients.EnsureBucket(ctx, minioClient, bucket); err != nil {
			return err
		}
	}
	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)

	conn, err := grpc.NewClient(
		cfg.Embedder.Addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return err
	}
	defer conn.Close()
	emb := embedder.NewEmbedder(proto.NewEmbedderServiceClient(conn), cfg.Embedder, cfg.Engine.VectorSize, log)

	uploader := pipeline.NewUploader(imageRepo, catalogRepo, cfg.Minio.UploadLimit, log)

	initialQuiz := quizPool
	if len(initialQuiz) > initialQuizSize {
		initialQuiz = quizPool[:initialQuizSize]
	}
	refineQuiz := quizPool[len(initialQuiz):]
	if len(refineQuiz) > refineQuizSize {
		refineQuiz = refineQuiz[:refineQuizSize]
	}

	if err := uploader.UploadQuiz(ctx, cfg.Minio.InitialQuizBucket, pgdb.TableInitialQuiz, initialQuiz); err != nil {
		return err
	}
	if err := uploader.UploadQuiz(ctx, cfg.Minio.RefineQuizBucket, pgdb.TableRefineQuiz, refineQuiz); err != nil {
		return err
	}
	if err := uploader.UploadQuiz(ctx, cfg.Minio.QuizPoolBucket, pgdb.TableQuizPool, quizPool); err != nil {
		return err
	}
	if err := uploader.UploadInventory(ctx, cfg.Minio.InventoryBucket, inventoryPool); err != nil {
		return err
	}

	builder := pipeline.NewBuilder(emb, cfg.Engine.VectorSize, cfg.Embedder.MaxConcurrent, log)
	return builder.Build(ctx, inventoryPool, cfg.Engine.IndexPath, cfg.Engine.MetadataPath)
}
