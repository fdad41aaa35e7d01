package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewProductFetchService,
	wire.Bind(new(IProductFetchService), new(*ProductFetchService)),

	NewDeclareService,
	wire.Bind(new(IDeclareService), new(*DeclareService)),

	NewProductImportService,
	wire.Bind(new(IProductImportService), new(*ProductImportService)),

	NewProductSyncService,
	wire.Bind(new(IProductSyncService), new(*ProductSyncService)),
)
