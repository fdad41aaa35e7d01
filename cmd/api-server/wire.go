//go:build wireinject
// +build wireinject

package main

import (
	"github.com/ysEthan/magic-sync/config"
	"github.com/ysEthan/magic-sync/dao"
	"github.com/ysEthan/magic-sync/handler"
	"github.com/ysEthan/magic-sync/pkg/database"
	"github.com/ysEthan/magic-sync/pkg/imagestore"
	"github.com/ysEthan/magic-sync/pkg/locker"
	"github.com/ysEthan/magic-sync/pkg/openapi"
	"github.com/ysEthan/magic-sync/pkg/server"
	"github.com/ysEthan/magic-sync/service"

	"github.com/google/wire"
)

var syncSet = wire.NewSet(
	database.NewDB,
	dao.ProviderSet,
	wire.Bind(new(service.ProductStore), new(*dao.Product)),
	wire.Bind(new(service.CatalogCounter), new(*dao.Product)),

	openapi.ProvideClient,
	wire.Bind(new(service.ItemClient), new(*openapi.Client)),

	imagestore.NewUploader,
	imagestore.ProvideRehoster,
	wire.Bind(new(service.ImageRehoster), new(*imagestore.Rehoster)),

	locker.ProvideLocker,
	config.ProvideSyncConfig,
	service.ProviderSet,
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		syncSet,
		handler.NewProductSync,
		server.NewSyncScheduler,
		server.NewGinEngine,
		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}

func InitSyncer(cfg *config.Config) *service.ProductSyncService {
	wire.Build(syncSet)
	return nil
}

func InitMigrator(cfg *config.Config) *dao.Product {
	wire.Build(
		database.NewDB,
		dao.ProviderSet,
	)
	return nil
}
