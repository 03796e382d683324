// Copyright 2025 lakshaytakkar
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package product

import (
	"github.com/lakshaytakkar/team-portal/internal/pkg/resolver"
	"github.com/lakshaytakkar/team-portal/internal/product/internal/domain"
	"github.com/lakshaytakkar/team-portal/internal/product/internal/service"
	"github.com/lakshaytakkar/team-portal/internal/product/internal/web"
)

type (
	Handler      = web.Handler
	Service      = service.ProductService
	Product      = domain.Product
	Status       = domain.Status
	ListingState = domain.ListingState
	Filter       = domain.Filter
	// Resolver 把 SKU/品名解析成商品的规范 UUID
	Resolver = resolver.Resolver
)

const (
	StatusActive       = domain.StatusActive
	StatusDiscontinued = domain.StatusDiscontinued

	ListingDraft       = domain.ListingDraft
	ListingPublished   = domain.ListingPublished
	ListingUnpublished = domain.ListingUnpublished
)

type Module struct {
	Hdl *Handler
	Svc Service
	Rsv *Resolver
}
