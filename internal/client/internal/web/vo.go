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

type Client struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
	ContactName string `json:"contactName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	State       string `json:"state"`
	EIN         string `json:"ein"`
	Notes       string `json:"notes"`
	Stage       string `json:"stage"`
}

type Column struct {
	Name    string   `json:"name"`
	Clients []Client `json:"clients"`
}

type SaveReq struct {
	Client Client `json:"client"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type DetailReq struct {
	ID string `json:"id"`
}

type StepReq struct {
	ID string `json:"id"`
}

type SetStageReq struct {
	ID    string `json:"id"`
	Stage string `json:"stage"`
}

type DeleteReq struct {
	ID string `json:"id"`
}
