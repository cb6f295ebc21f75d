package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sngm3741/property-match-services/api/internal/importer"
	mongodoc "github.com/sngm3741/property-match-services/api/internal/infrastructure/mongo"
)

type importOptions struct {
	envFile string
	dataDir string
	timeout time.Duration
}

func main() {
	opts := parseFlags()

	if err := godotenv.Load(opts.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("環境変数の読み込みに失敗しました: %v", err)
	}

	mongoURI := envOrDefault("MONGO_URI", "mongodb://localhost:27017")
	dbName := envOrDefault("MONGO_DB", "property-match")
	propertyCollection := envOrDefault("PROPERTY_COLLECTION", "properties")

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("MongoDB 接続に失敗しました: %v", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	db := client.Database(dbName)
	if err := mongodoc.EnsureIndexes(ctx, db, mongodoc.Collections{Properties: propertyCollection}); err != nil {
		log.Fatalf("インデックス作成に失敗しました: %v", err)
	}

	files := importer.Files{
		Basics:          filepath.Join(opts.dataDir, "basics.json"),
		Characteristics: filepath.Join(opts.dataDir, "characteristics.json"),
		Images:          filepath.Join(opts.dataDir, "images.json"),
	}
	store := mongodoc.NewPropertyImportRepository(db, propertyCollection)

	summary, err := importer.Run(ctx, store, files)
	if err != nil {
		log.Printf("取り込み途中で失敗しました inserted=%d updated=%d", summary.Inserted, summary.Updated)
		log.Fatalf("物件データの取り込みに失敗しました: %v", err)
	}

	log.Printf("Import 完了: inserted=%d updated=%d unchanged=%d", summary.Inserted, summary.Updated, summary.Unchanged)
	log.Printf("Mongo: %s / %s.%s", mongoURI, dbName, propertyCollection)
}

func parseFlags() importOptions {
	var opts importOptions
	flag.StringVar(&opts.envFile, "env", ".env", "読み込む env ファイル (存在しなければ無視)")
	flag.StringVar(&opts.dataDir, "data", "data/property", "basics.json / characteristics.json / images.json を含むディレクトリ")
	flag.DurationVar(&opts.timeout, "timeout", 5*time.Minute, "取り込み全体のタイムアウト")
	flag.Parse()

	if strings.TrimSpace(opts.dataDir) == "" {
		log.Fatal("data は空にできません")
	}
	if opts.timeout <= 0 {
		log.Fatal("timeout は正の値を指定してください")
	}
	return opts
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
