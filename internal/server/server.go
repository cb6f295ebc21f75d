package server

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	adminapp "github.com/sngm3741/property-match-services/api/internal/admin/application"
	"github.com/sngm3741/property-match-services/api/internal/config"
	mongodoc "github.com/sngm3741/property-match-services/api/internal/infrastructure/mongo"
	rediscache "github.com/sngm3741/property-match-services/api/internal/infrastructure/redis"
	adminhttp "github.com/sngm3741/property-match-services/api/internal/interfaces/http/admin"
	commonhttp "github.com/sngm3741/property-match-services/api/internal/interfaces/http/common"
	publichttp "github.com/sngm3741/property-match-services/api/internal/interfaces/http/public"
	searchapp "github.com/sngm3741/property-match-services/api/internal/search/application"
)

// Server は HTTP サーバーのライフサイクルを管理し、Public/Admin の各ハンドラへ依存注入するコンポジションルート。
type Server struct {
	logger         *log.Logger
	client         *mongo.Client
	database       *mongo.Database
	collections    mongodoc.Collections
	redis          *goredis.Client
	cache          *rediscache.PropertyCache
	location       *time.Location
	jwtConfigs     []config.JWTConfig
	jwtAudience    string
	adminAPIKey    string
	addr           string
	allowedOrigins []string
	requestTimeout time.Duration

	telemetry         *searchapp.TelemetryRecorder
	searchService     searchapp.SearchService
	propertyQueries   searchapp.PropertyQueryService
	preferenceService searchapp.PreferenceService
	adminProperties   adminapp.PropertyService
	adminSearchEvents adminapp.SearchEventService
}

type authenticatedUser = commonhttp.AuthenticatedUser

// Run はインデックスを用意した上で HTTP サーバーを起動し、シグナル受信まで待機する。
func (s *Server) Run() error {
	indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := mongodoc.EnsureIndexes(indexCtx, s.database, s.collections); err != nil {
		s.logger.Printf("インデックス作成に失敗しました: %v", err)
	}
	cancel()

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Printf("HTTP サーバー起動: http://%s", s.addr)
		errChan <- httpServer.ListenAndServe()
	}()

	waitForShutdown(httpServer, errChan, s)
	return nil
}

// Router assembles middleware and mounts the public and admin routes.
func (s *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(withCORS(s.allowedOrigins))

	router.Get("/healthz", s.healthHandler())

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:         s.logger,
		Search:         s.searchService,
		Properties:     s.propertyQueries,
		Preferences:    s.preferenceService,
		RequestTimeout: s.requestTimeout,
	})
	router.Route("/api/v1", func(r chi.Router) {
		publicHandler.Register(r, s.authMiddleware)
	})

	if s.adminAPIKey == "" {
		s.logger.Printf("ADMIN_API_KEY が未設定のため /admin を公開しません")
		return router
	}
	adminHandler := adminhttp.NewHandler(adminhttp.Config{
		Logger:             s.logger,
		PropertyService:    s.adminProperties,
		SearchEventService: s.adminSearchEvents,
	})
	router.Route("/admin", func(r chi.Router) {
		r.Use(s.apiKeyMiddleware)
		adminHandler.Register(r)
	})
	return router
}

// withCORS は許可されたオリジン情報をもとに CORS ヘッダーを付与するミドルウェアを返す。
func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && len(allowed) > 0 && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization,Content-Type,X-API-Key")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// originAllowed は指定された Origin が許可リストに含まれるか判定する。
func originAllowed(origin string, allowed map[string]struct{}) bool {
	if len(allowed) == 0 {
		return true
	}
	_, ok := allowed[origin]
	return ok
}

// healthHandler は MongoDB と (設定されていれば) Redis への疎通を確認する。
// Redis 障害はキャッシュを迂回できるため degraded 扱いにはしない。
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
			commonhttp.WriteJSON(s.logger, w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}

		cache := "disabled"
		if s.cache != nil {
			cache = "ok"
			if err := s.cache.Ping(ctx); err != nil {
				cache = "unavailable"
			}
		}

		commonhttp.WriteJSON(s.logger, w, http.StatusOK, map[string]string{
			"status": "ok",
			"cache":  cache,
			"time":   time.Now().In(s.location).Format(time.RFC3339),
		})
	}
}

// apiKeyMiddleware は X-API-Key ヘッダーを ADMIN_API_KEY と定数時間で比較する。
func (s *Server) apiKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimSpace(r.Header.Get("X-API-Key"))
		if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(s.adminAPIKey)) != 1 {
			commonhttp.WriteFailure(s.logger, w, http.StatusForbidden, "Forbidden: Invalid API Key")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// authMiddleware は Authorization ヘッダーから JWT を検証し、認証済みユーザーをコンテキストへ詰める。
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
		if authHeader == "" {
			commonhttp.WriteFailure(s.logger, w, http.StatusUnauthorized, "Authorization header is missing")
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			commonhttp.WriteFailure(s.logger, w, http.StatusUnauthorized, "Bearer token is required")
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if tokenString == "" {
			commonhttp.WriteFailure(s.logger, w, http.StatusUnauthorized, "Access token is empty")
			return
		}

		claims, err := s.parseAuthToken(tokenString)
		if err != nil {
			commonhttp.WriteFailure(s.logger, w, http.StatusUnauthorized, err.Error())
			return
		}

		user := authenticatedUser{
			ID:       claims.Subject,
			Name:     claims.Name,
			Username: claims.PreferredUsername,
			Picture:  claims.Picture,
		}

		ctx := commonhttp.ContextWithUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// parseAuthToken は JWT 設定を順番に試し、署名検証と Issuer/Audience の整合性を確認する。
func (s *Server) parseAuthToken(tokenString string) (*authClaims, error) {
	if len(s.jwtConfigs) == 0 {
		return nil, fmt.Errorf("authentication is not configured")
	}

	for _, cfg := range s.jwtConfigs {
		claims := &authClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
			if token.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
			}
			return cfg.Secret, nil
		}, jwt.WithLeeway(30*time.Second))

		if err != nil || !token.Valid {
			continue
		}

		if cfg.Issuer != "" && claims.Issuer != cfg.Issuer {
			continue
		}
		if claims.Subject == "" {
			continue
		}
		if s.jwtAudience != "" && !contains(claims.Audience, s.jwtAudience) {
			continue
		}

		return claims, nil
	}

	return nil, fmt.Errorf("invalid access token")
}

// contains は Audience 等の検証で利用する単純な包含チェック。
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

type authClaims struct {
	jwt.RegisteredClaims
	Name              string `json:"name,omitempty"`
	Picture           string `json:"picture,omitempty"`
	PreferredUsername string `json:"preferred_username,omitempty"`
}

// shutdown は保留中のテレメトリを書き切ってから Redis / MongoDB を切断する。
func (s *Server) shutdown(ctx context.Context) {
	if s.telemetry != nil {
		s.telemetry.Close()
	}
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Printf("Redis 切断時にエラー: %v", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(shutdownCtx); err != nil {
		s.logger.Printf("MongoDB 切断時にエラー: %v", err)
	}
}

// waitForShutdown は ListenAndServe の終了と OS シグナルを監視し、graceful shutdown を実現する。
func waitForShutdown(httpServer *http.Server, errChan <-chan error, srv *Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			srv.logger.Fatalf("サーバーが異常終了: %v", err)
		}
	case sig := <-sigChan:
		srv.logger.Printf("シグナル %s を受信。サーバー停止処理を開始します。", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			srv.logger.Printf("サーバー停止時にエラー: %v", err)
		}
	}

	srv.shutdown(context.Background())
}

// New は Config と Mongo クライアントを受け取り、アプリケーションサービスとハンドラを組み立てた Server を返す。
// REDIS_ADDR が空の場合はキャッシュなしで動作する。
func New(cfg config.Config, client *mongo.Client) *Server {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.FixedZone("JST", 9*60*60)
		cfg.ServerLog.Printf("タイムゾーン %s の読み込みに失敗: %v, JST を使用します", cfg.Timezone, err)
	}

	srv := &Server{
		logger:   cfg.ServerLog,
		client:   client,
		database: client.Database(cfg.MongoDatabase),
		collections: mongodoc.Collections{
			Properties:   cfg.PropertyCollection,
			SearchEvents: cfg.SearchEventCollection,
			Users:        cfg.UserCollection,
		},
		location:       loc,
		jwtConfigs:     append([]config.JWTConfig(nil), cfg.JWTConfigs...),
		jwtAudience:    cfg.JWTAudience,
		adminAPIKey:    cfg.AdminAPIKey,
		addr:           cfg.Addr,
		allowedOrigins: append([]string(nil), cfg.AllowedOrigins...),
		requestTimeout: cfg.RequestTimeout,
	}

	propertyRepo := mongodoc.NewPropertyRepository(srv.database, cfg.PropertyCollection)
	eventRepo := mongodoc.NewSearchEventRepository(srv.database, cfg.SearchEventCollection)
	preferenceRepo := mongodoc.NewPreferenceRepository(srv.database, cfg.UserCollection)

	var cache searchapp.PropertyCache
	if cfg.RedisAddr != "" {
		srv.redis = goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		srv.cache = rediscache.NewPropertyCache(srv.redis, cfg.MostSearchedTTL)
		cache = srv.cache
	}

	srv.telemetry = searchapp.NewTelemetryRecorder(searchapp.TelemetryConfig{
		Repo:        propertyRepo,
		Logger:      cfg.ServerLog,
		WorkerCount: cfg.TelemetryWorkers,
		Timeout:     cfg.TelemetryTimeout,
	})
	srv.searchService = searchapp.NewSearchService(searchapp.SearchServiceConfig{
		Matcher:     searchapp.NewMatcher(propertyRepo, cfg.QueryTimeout),
		Events:      eventRepo,
		Preferences: preferenceRepo,
		Recorder:    srv.telemetry,
	})
	srv.propertyQueries = searchapp.NewPropertyQueryService(propertyRepo, cache, cfg.ServerLog, cfg.MostSearchedLimit)
	srv.preferenceService = searchapp.NewPreferenceService(preferenceRepo)

	srv.adminProperties = adminapp.NewPropertyService(mongodoc.NewAdminPropertyRepository(srv.database, cfg.PropertyCollection))
	srv.adminSearchEvents = adminapp.NewSearchEventService(eventRepo)

	return srv
}
