package server

import (
	"github.com/ysEthan/magic-sync/handler"
)

type Handlers struct {
	ProductSync *handler.ProductSync
}
