package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/crjhappy123/museum-tender-notifier/api"
	"github.com/crjhappy123/museum-tender-notifier/api/bid"
	"github.com/crjhappy123/museum-tender-notifier/config"
	"github.com/crjhappy123/museum-tender-notifier/db"
	fetch "github.com/crjhappy123/museum-tender-notifier/http"
	"github.com/crjhappy123/museum-tender-notifier/runner"
	"github.com/crjhappy123/museum-tender-notifier/utils/graceful"
	"github.com/crjhappy123/museum-tender-notifier/utils/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Fatal(err)
	}
	conf, err := config.ReadConfig("")
	if err != nil {
		log.Fatal(err)
	}
	l, err := logger.New(conf.Log)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = l.Sync() }()

	var opts []runner.Option
	if conf.MySQL.Enabled() {
		store, err := db.Open(conf.MySQL)
		if err != nil {
			l.Error("归档库不可用，本次不归档", zap.Error(err))
		} else {
			defer func() { _ = store.Close() }()
			if err := store.Migrate(); err != nil {
				l.Error("归档表迁移失败，本次不归档", zap.Error(err))
			} else {
				opts = append(opts, runner.WithArchiver(store))
			}
		}
	}

	r := runner.New(conf, fetch.NewBrowser(conf.Browser), l, opts...)

	if !conf.Server.Enabled {
		r.Run(context.Background())
		return
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.Default()
	api.RegisterHandler(engine, bid.NewHandler(r, l))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", conf.Server.Port),
		Handler: engine,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Error("监听到服务异常", zap.Error(err))
		}
	}()

	graceful.Welcome(conf.Server.Port)
	graceful.Shutdown(srv, 2*time.Second, l)
}
