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

package domain

// Status 商品自身的生命周期
type Status string

const (
	StatusActive       Status = "ACTIVE"
	StatusDiscontinued Status = "DISCONTINUED"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusDiscontinued
}

func (s Status) String() string {
	return string(s)
}

// ListingState 商品在 Faire 批发平台上的上架状态
type ListingState string

const (
	ListingDraft       ListingState = "DRAFT"
	ListingPublished   ListingState = "PUBLISHED"
	ListingUnpublished ListingState = "UNPUBLISHED"
)

func (l ListingState) IsValid() bool {
	switch l {
	case ListingDraft, ListingPublished, ListingUnpublished:
		return true
	default:
		return false
	}
}

func (l ListingState) String() string {
	return string(l)
}

type Product struct {
	ID string
	// SKU 业务编码，备用键，大小写不敏感唯一
	SKU      string
	Name     string
	Category string
	// 价格一律以分存储
	WholesalePriceCents int64
	RetailPriceCents    int64
	Stock               int64
	Status              Status
	ListingState        ListingState
}

func (p Product) IsValid() bool {
	if p.SKU == "" || p.Name == "" {
		return false
	}
	return p.WholesalePriceCents >= 0 && p.RetailPriceCents >= 0 && p.Stock >= 0
}

type Filter struct {
	Category     string
	Status       Status
	ListingState ListingState
}
