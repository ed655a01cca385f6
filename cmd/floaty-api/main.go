// @title         Floaty API
// @version       0.1.0
// @description   Capture, task extraction and assist endpoints for the Floaty extension
// @BasePath      /api/v1

//go:generate go run github.com/swaggo/swag/v2/cmd/swag@v2.0.0-rc4 init --v3.1 -d ../.. -g cmd/floaty-api/main.go -o ../../internal/services/api/docs --outputTypes go --parseInternal

package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"floaty/internal/core/version"
	"floaty/internal/modkit/repokit"
	"floaty/internal/platform/config"
	"floaty/internal/platform/logger"
	phttp "floaty/internal/platform/net/http"
	"floaty/internal/platform/store"

	"floaty/internal/services/api"
)

func main() {
	root := config.New()
	apiCfg := root.Prefix("FLOATY_API_")

	// bring up logging early
	l := logger.Get()
	l.Info().Str("build", version.Info().String()).Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// open the platform store (postgres KV + CH capture log), both optional
	st, err := store.Open(ctx, store.LoadConfig(root, version.Service), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	// http server (reads FLOATY_API_HOST / FLOATY_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	recorderDone, err := api.Mount(ctx, srv.Router(), api.Options{
		Config:         root,
		Store:          st,
		Logger:         l,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
	})
	if err != nil {
		l.Panic().Err(err).Msg("api.Mount failed")
	}

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			l.Error().Err(err).Msg("http shutdown")
		}
	}()

	// run
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
	stop()
	<-recorderDone
	l.Info().Msg("stopped")
}
