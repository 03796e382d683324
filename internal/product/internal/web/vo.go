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

package web

type Product struct {
	ID                  string `json:"id"`
	SKU                 string `json:"sku"`
	Name                string `json:"name"`
	Category            string `json:"category"`
	WholesalePriceCents int64  `json:"wholesalePriceCents"`
	RetailPriceCents    int64  `json:"retailPriceCents"`
	Stock               int64  `json:"stock"`
	Status              string `json:"status"`
	ListingState        string `json:"listingState"`
}

type SaveReq struct {
	Product Product `json:"product"`
}

type ListReq struct {
	Category     string `json:"category"`
	Status       string `json:"status"`
	ListingState string `json:"listingState"`
	Offset       int    `json:"offset"`
	Limit        int    `json:"limit"`
}

// DetailReq Identifier 接受规范 ID、SKU 或品名
type DetailReq struct {
	Identifier string `json:"identifier"`
}

type ListingStateReq struct {
	Identifier string `json:"identifier"`
	State      string `json:"state"`
}

type DeleteReq struct {
	Identifier string `json:"identifier"`
}
